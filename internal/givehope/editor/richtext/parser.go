package richtext

import (
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Parse разбирает HTML, порождаемый contentEditable-поверхностью, в
// структурный документ. Понимает p, div, h1, h2, blockquote, ul/ol/li, br
// и инлайновые b/strong, i/em, u; все прочее сводится к тексту.
func Parse(r io.Reader) (*Document, error) {
	rootNode, err := html.Parse(r)
	if err != nil {
		return nil, err
	}

	var doc Document

	body := findElementByTagName(rootNode, "body")
	if body == nil {
		doc.Normalize()
		return &doc, nil
	}

	// Голый текст и инлайновые узлы без блочной обертки собираются в один
	// ведущий параграф.
	var loose BlockElement
	flushLoose := func() {
		if len(loose.Spans) > 0 {
			doc.Blocks = append(doc.Blocks, loose)
			loose = BlockElement{}
		}
	}

	for el := body.FirstChild; el != nil; el = el.NextSibling {
		if el.Type == html.TextNode {
			if t := strings.TrimSpace(el.Data); t != "" {
				loose.Spans = append(loose.Spans, Span{Text: collapseSpace(el.Data)})
			}
			continue
		}
		if el.Type != html.ElementNode {
			continue
		}

		switch el.Data {
		case "p", "div":
			flushLoose()
			doc.Blocks = append(doc.Blocks, BlockElement{Kind: Paragraph, Spans: parseSpans(el, Span{})})
		case "h1":
			flushLoose()
			doc.Blocks = append(doc.Blocks, BlockElement{Kind: Heading1, Spans: parseSpans(el, Span{})})
		case "h2":
			flushLoose()
			doc.Blocks = append(doc.Blocks, BlockElement{Kind: Heading2, Spans: parseSpans(el, Span{})})
		case "blockquote":
			flushLoose()
			doc.Blocks = append(doc.Blocks, BlockElement{Kind: Blockquote, Spans: parseSpans(el, Span{})})
		case "ul", "ol":
			flushLoose()
			if list := parseList(el); list != nil {
				doc.Blocks = append(doc.Blocks, *list)
			}
		case "br":
			flushLoose()
		default:
			loose.Spans = append(loose.Spans, parseSpans(el, Span{})...)
		}
	}
	flushLoose()

	doc.Normalize()
	return &doc, nil
}

// parseSpans собирает инлайновые пробеги, накапливая форматирование по
// мере спуска по дереву.
func parseSpans(root *html.Node, format Span) []Span {
	var spans []Span

	for el := root.FirstChild; el != nil; el = el.NextSibling {
		switch el.Type {
		case html.TextNode:
			s := format
			s.Text = collapseSpace(el.Data)
			if s.Text != "" {
				spans = append(spans, s)
			}
		case html.ElementNode:
			f := format
			switch el.Data {
			case "b", "strong":
				f.Bold = true
			case "i", "em":
				f.Italic = true
			case "u":
				f.Underline = true
			case "br":
				continue
			}
			spans = append(spans, parseSpans(el, f)...)
		}
	}

	return spans
}

func parseList(root *html.Node) *BlockElement {
	list := BlockElement{Kind: BulletList}
	if root.Data == "ol" {
		list.Kind = OrderedList
	}

	for li := root.FirstChild; li != nil; li = li.NextSibling {
		if li.Type != html.ElementNode || li.Data != "li" {
			continue
		}
		list.Items = append(list.Items, ListItem{Spans: parseSpans(li, Span{})})
	}

	if len(list.Items) == 0 {
		return nil
	}
	return &list
}

func findElementByTagName(rootNode *html.Node, tagName string) *html.Node {
	var el *html.Node
	iterNodes(rootNode, func(child *html.Node) bool {
		if child.Type == html.ElementNode && child.Data == tagName {
			el = child
			return true
		}
		return false
	})
	return el
}

func iterNodes(node *html.Node, f func(child *html.Node) bool) {
	if f(node) {
		return
	}
	for p := node.FirstChild; p != nil; p = p.NextSibling {
		iterNodes(p, f)
	}
}

var spaceReplacer = strings.NewReplacer("\n", " ", "\t", " ", "\r", " ")

func collapseSpace(raw string) string {
	raw = spaceReplacer.Replace(raw)
	for strings.Contains(raw, "  ") {
		raw = strings.ReplaceAll(raw, "  ", " ")
	}
	return raw
}
