// Структурная модель форматированного текста: документ из блочных элементов
// (параграфы, заголовки, цитаты, списки), каждый из которых состоит из
// пробегов текста с инлайновым форматированием.
//
// Основные возможности:
//   - Явная машина состояний форматирования поверх модели (editor.go).
//   - Парсинг HTML, порождаемого contentEditable-поверхностью (parser.go).
//   - Сериализация обратно в нормализованный HTML (serializer.go).
package richtext

type BlockKind int

const (
	Paragraph BlockKind = iota
	Heading1
	Heading2
	Blockquote
	BulletList
	OrderedList
)

// Span - пробег текста с одинаковым инлайновым форматированием.
type Span struct {
	Text      string
	Bold      bool
	Italic    bool
	Underline bool
}

func (s Span) sameFormat(o Span) bool {
	return s.Bold == o.Bold && s.Italic == o.Italic && s.Underline == o.Underline
}

// ListItem - один пункт списка.
type ListItem struct {
	Spans []Span
}

// BlockElement - блочный элемент документа. Для списков заполнено Items,
// для остальных видов - Spans.
type BlockElement struct {
	Kind  BlockKind
	Spans []Span
	Items []ListItem
}

// Document - форматированный текст как последовательность блочных элементов.
type Document struct {
	Blocks []BlockElement
}

// Text возвращает документ без форматирования, блоки через перевод строки.
func (d *Document) Text() string {
	var out []byte
	for i, b := range d.Blocks {
		if i > 0 {
			out = append(out, '\n')
		}
		if b.Kind == BulletList || b.Kind == OrderedList {
			for j, item := range b.Items {
				if j > 0 {
					out = append(out, '\n')
				}
				for _, s := range item.Spans {
					out = append(out, s.Text...)
				}
			}
			continue
		}
		for _, s := range b.Spans {
			out = append(out, s.Text...)
		}
	}
	return string(out)
}

// normalizeSpans сливает соседние пробеги с одинаковым форматированием и
// выбрасывает пустые.
func normalizeSpans(spans []Span) []Span {
	res := make([]Span, 0, len(spans))
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		if len(res) > 0 && res[len(res)-1].sameFormat(s) {
			res[len(res)-1].Text += s.Text
			continue
		}
		res = append(res, s)
	}
	return res
}

// Normalize приводит документ к каноническому виду: слитые пробеги, без
// пустых элементов (кроме единственного пустого параграфа).
func (d *Document) Normalize() {
	blocks := make([]BlockElement, 0, len(d.Blocks))
	for _, b := range d.Blocks {
		if b.Kind == BulletList || b.Kind == OrderedList {
			items := make([]ListItem, 0, len(b.Items))
			for _, item := range b.Items {
				item.Spans = normalizeSpans(item.Spans)
				if len(item.Spans) > 0 {
					items = append(items, item)
				}
			}
			if len(items) == 0 {
				continue
			}
			b.Items = items
			b.Spans = nil
			blocks = append(blocks, b)
			continue
		}
		b.Spans = normalizeSpans(b.Spans)
		b.Items = nil
		blocks = append(blocks, b)
	}
	if len(blocks) == 0 {
		blocks = []BlockElement{{Kind: Paragraph}}
	}
	d.Blocks = blocks
}
