// Библиотека пресетов и шаблонов конструктора.
// Пресет - именованная последовательность заготовок блоков, вставляемая как
// единое целое. Шаблон - полное определение документа: заготовки блоков плюс
// стили документа. Определения библиотеки неизменяемы; каждое использование
// дает глубокие копии со свежими идентификаторами.
//
// Основные возможности:
//   - Фиксированный каталог пресетов и шаблонов с контентом NGO-рассылок.
//   - Разворачивание пресета/шаблона с переидентификацией блоков.
//   - Словарь тегов персонализации (merge tags).
package library

import (
	"github.com/givehope/givehope.go/internal/givehope/editor"
)

// Preset - именованная переиспользуемая последовательность заготовок блоков.
type Preset struct {
	Id     string            `json:"id"`
	Label  string            `json:"label"`
	Blocks []editor.BlockDef `json:"blocks"`
}

// Template - полное определение документа: блоки и стили документа.
type Template struct {
	Id          string            `json:"id"`
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Blocks      []editor.BlockDef `json:"blocks"`
	BodyStyles  editor.BodyStyles `json:"body_styles"`
}

// MergeTag - непрозрачный токен персонализации. Подстановка значений
// выполняется внешней системой доставки во время отправки.
type MergeTag struct {
	Label string `json:"label"`
	Tag   string `json:"tag"`
}

// MergeTags - фиксированный словарь тегов персонализации.
var MergeTags = []MergeTag{
	{Label: "First Name", Tag: "{{first_name}}"},
	{Label: "Last Name", Tag: "{{last_name}}"},
	{Label: "Email", Tag: "{{email}}"},
	{Label: "Donation Amount", Tag: "{{donation_amount}}"},
	{Label: "Unsubscribe Link", Tag: "{{unsubscribe_url}}"},
}

// KnownMergeTag сообщает, входит ли тег в словарь персонализации.
func KnownMergeTag(tag string) bool {
	for _, mt := range MergeTags {
		if mt.Tag == tag {
			return true
		}
	}
	return false
}

// Library - каталог пресетов и шаблонов. Шаблоны компонуются из пресетов
// один раз, при создании библиотеки, а не при использовании: потребитель
// всегда видит плоскую последовательность заготовок.
type Library struct {
	presets       map[string]*Preset
	presetOrder   []string
	templates     map[string]*Template
	templateOrder []string
}

// New создает библиотеку со встроенным каталогом.
func New() *Library {
	l := &Library{
		presets:   map[string]*Preset{},
		templates: map[string]*Template{},
	}
	for _, p := range buildPresets() {
		l.presets[p.Id] = p
		l.presetOrder = append(l.presetOrder, p.Id)
	}
	for _, t := range buildTemplates(l) {
		l.templates[t.Id] = t
		l.templateOrder = append(l.templateOrder, t.Id)
	}
	return l
}

// Presets возвращает каталог пресетов в порядке панели.
func (l *Library) Presets() []*Preset {
	res := make([]*Preset, 0, len(l.presetOrder))
	for _, id := range l.presetOrder {
		res = append(res, l.presets[id])
	}
	return res
}

// Templates возвращает каталог шаблонов в порядке панели.
func (l *Library) Templates() []*Template {
	res := make([]*Template, 0, len(l.templateOrder))
	for _, id := range l.templateOrder {
		res = append(res, l.templates[id])
	}
	return res
}

// ExpandPreset разворачивает пресет в свежие блоки: структурная глубокая
// копия каждой заготовки с новым идентификатором. Для неизвестного
// идентификатора возвращает пустую последовательность.
func (l *Library) ExpandPreset(id string) []editor.Block {
	p, ok := l.presets[id]
	if !ok {
		return nil
	}
	return materialize(p.Blocks)
}

// ExpandTemplate разворачивает шаблон: свежие блоки той же дисциплиной
// копирования плюс стили документа для слияния на стороне вызывающего.
func (l *Library) ExpandTemplate(id string) ([]editor.Block, editor.BodyStyles, bool) {
	t, ok := l.templates[id]
	if !ok {
		return nil, editor.BodyStyles{}, false
	}
	return materialize(t.Blocks), t.BodyStyles.Clone(), true
}

func materialize(defs []editor.BlockDef) []editor.Block {
	blocks := make([]editor.Block, len(defs))
	for i, d := range defs {
		blocks[i] = d.Materialize()
	}
	return blocks
}

// presetBlocks возвращает копии заготовок пресета для компоновки шаблонов.
// Вызывается только из buildTemplates во время конструирования библиотеки.
func (l *Library) presetBlocks(id string) []editor.BlockDef {
	p, ok := l.presets[id]
	if !ok {
		return nil
	}
	defs := make([]editor.BlockDef, len(p.Blocks))
	for i, d := range p.Blocks {
		defs[i] = editor.BlockDef{Type: d.Type, Content: d.Content, Styles: d.Styles.Clone()}
	}
	return defs
}

// styles - каталог записан в свободной CSS-форме, как авторят пресеты руками.
func styles(m map[string]string) editor.Styles {
	return editor.StylesFromMap(m)
}
