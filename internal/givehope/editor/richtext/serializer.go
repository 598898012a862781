package richtext

import (
	"html"
	"strings"
)

// Serialize сериализует документ в нормализованный HTML: p, h1, h2,
// blockquote, ul/ol/li и вложенные b/i/u. Повторный Parse результата дает
// эквивалентный документ.
func (d *Document) Serialize() string {
	var sb strings.Builder

	for _, b := range d.Blocks {
		switch b.Kind {
		case Heading1:
			writeWrapped(&sb, "h1", b.Spans)
		case Heading2:
			writeWrapped(&sb, "h2", b.Spans)
		case Blockquote:
			writeWrapped(&sb, "blockquote", b.Spans)
		case BulletList, OrderedList:
			tag := "ul"
			if b.Kind == OrderedList {
				tag = "ol"
			}
			sb.WriteString("<" + tag + ">")
			for _, item := range b.Items {
				writeWrapped(&sb, "li", item.Spans)
			}
			sb.WriteString("</" + tag + ">")
		default:
			writeWrapped(&sb, "p", b.Spans)
		}
	}

	return sb.String()
}

func writeWrapped(sb *strings.Builder, tag string, spans []Span) {
	sb.WriteString("<" + tag + ">")
	for _, s := range spans {
		writeSpan(sb, s)
	}
	sb.WriteString("</" + tag + ">")
}

func writeSpan(sb *strings.Builder, s Span) {
	var open, closing string
	if s.Bold {
		open += "<b>"
		closing = "</b>" + closing
	}
	if s.Italic {
		open += "<i>"
		closing = "</i>" + closing
	}
	if s.Underline {
		open += "<u>"
		closing = "</u>" + closing
	}
	sb.WriteString(open)
	sb.WriteString(html.EscapeString(s.Text))
	sb.WriteString(closing)
}
