// Модель контентного блока конструктора писем и PDF.
// Блок - единица содержимого документа: тип, полезная нагрузка и стили.
//
// Основные возможности:
//   - Закрытый набор типов блоков (text, heading, image, button, divider, html, video).
//   - Контент и стили по умолчанию для каждого типа.
//   - Глубокое копирование блока с выдачей нового идентификатора.
package editor

import (
	"github.com/gofrs/uuid"
)

type BlockType string

const (
	BlockText    BlockType = "text"
	BlockHeading BlockType = "heading"
	BlockImage   BlockType = "image"
	BlockButton  BlockType = "button"
	BlockDivider BlockType = "divider"
	BlockHTML    BlockType = "html"
	BlockVideo   BlockType = "video"
)

// BlockTypes - все допустимые типы блоков в порядке панели инструментов.
var BlockTypes = []BlockType{
	BlockText, BlockHeading, BlockImage, BlockButton, BlockDivider, BlockHTML, BlockVideo,
}

func (t BlockType) Valid() bool {
	switch t {
	case BlockText, BlockHeading, BlockImage, BlockButton, BlockDivider, BlockHTML, BlockVideo:
		return true
	}
	return false
}

// Content - полезная нагрузка блока. Набор полей закрыт, но ни одно не
// обязательно: кнопка без URL легальна и просто никуда не ведет.
type Content struct {
	Text string `json:"text,omitempty"`
	URL  string `json:"url,omitempty"`
	Alt  string `json:"alt,omitempty"`
	HTML string `json:"html,omitempty"`
}

// Block - один блок документа. Id уникален в пределах документа и стабилен
// на все время жизни блока.
type Block struct {
	Id      uuid.UUID `json:"id"`
	Type    BlockType `json:"type"`
	Content Content   `json:"content"`
	Styles  Styles    `json:"styles"`
}

// BlockDef - заготовка блока без идентификатора. Из таких заготовок состоят
// пресеты и шаблоны библиотеки.
type BlockDef struct {
	Type    BlockType `json:"type"`
	Content Content   `json:"content"`
	Styles  Styles    `json:"styles"`
}

// Materialize создает живой блок из заготовки: стили копируются по значению,
// идентификатор выдается новый.
func (d BlockDef) Materialize() Block {
	return Block{
		Id:      uuid.Must(uuid.NewV4()),
		Type:    d.Type,
		Content: d.Content,
		Styles:  d.Styles.Clone(),
	}
}

// Clone возвращает глубокую копию блока с новым идентификатором.
func (b Block) Clone() Block {
	return Block{
		Id:      uuid.Must(uuid.NewV4()),
		Type:    b.Type,
		Content: b.Content,
		Styles:  b.Styles.Clone(),
	}
}

// NewBlock создает блок заданного типа с контентом и стилями по умолчанию.
func NewBlock(t BlockType) Block {
	return Block{
		Id:      uuid.Must(uuid.NewV4()),
		Type:    t,
		Content: DefaultContent(t),
		Styles:  DefaultStyles(t),
	}
}

// DefaultContent возвращает контент по умолчанию для свежесозданного блока.
// Покрывает все типы; для нераспознанного типа возвращает пустой контент.
func DefaultContent(t BlockType) Content {
	switch t {
	case BlockText:
		return Content{Text: "Type your text here..."}
	case BlockHeading:
		return Content{Text: "Heading"}
	case BlockButton:
		return Content{Text: "Click Me", URL: "#"}
	case BlockImage:
		return Content{Alt: "Image"}
	case BlockHTML:
		return Content{HTML: `<div style="padding:10px; text-align:center; color:#888;">Custom HTML</div>`}
	case BlockVideo:
		return Content{URL: "https://www.youtube.com/watch?v=xyz"}
	}
	return Content{}
}

// DefaultStyles возвращает стили по умолчанию для свежесозданного блока.
// Для нераспознанного типа возвращает только базовый отступ.
func DefaultStyles(t BlockType) Styles {
	base := Styles{Padding: &Spacing{Top: 10, Right: 10, Bottom: 10, Left: 10}}
	switch t {
	case BlockHeading:
		base.TextAlign = AlignCenter
		base.Color = mustColor("#0f172a")
		base.FontSize = 24
		base.FontWeight = "bold"
	case BlockButton:
		base.TextAlign = AlignCenter
		base.Display = "inline-block"
		base.Background = mustColor("#2563eb")
		base.Color = mustColor("#ffffff")
		base.Padding = &Spacing{Top: 12, Right: 24, Bottom: 12, Left: 24}
		base.BorderRadius = 6
		base.TextDecoration = "none"
	case BlockImage:
		base.Width = Size{Value: 100, Percent: true}
		base.Display = "block"
	}
	return base
}

func mustColor(raw string) *Color {
	c, err := ParseColor(raw)
	if err != nil {
		panic(err)
	}
	return &c
}
