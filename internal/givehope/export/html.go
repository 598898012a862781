package export

import (
	"bytes"
	"fmt"
	"html/template"
	"io"
	"strconv"
	"strings"

	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/microcosm-cc/bluemonday"
	"github.com/tdewolff/minify/v2"
	mhtml "github.com/tdewolff/minify/v2/html"
)

var (
	htmlBlockPolicy *bluemonday.Policy = newHTMLBlockPolicy()
	minifier        *minify.M          = minify.New()
)

func init() {
	// Кавычки атрибутов сохраняем: старые почтовые клиенты спотыкаются
	// о src=url без кавычек.
	minifier.Add("text/html", &mhtml.Minifier{KeepQuotes: true})
}

// newHTMLBlockPolicy - политика для пользовательских html-блоков: верстка
// письма с инлайновыми стилями разрешена, скрипты и обработчики вырезаются.
func newHTMLBlockPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AllowAttrs("style").Globally()
	p.AllowAttrs("width", "height", "cellpadding", "cellspacing", "border", "valign", "align", "colspan", "rowspan").Globally()
	p.AllowImages()
	p.AllowTables()
	return p
}

var pageTemplate = template.Must(template.New("email").Parse(
	`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="margin: 0; padding: 0; background-color: {{.PageBackground}};">
<table width="100%" cellpadding="0" cellspacing="0" border="0" style="background-color: {{.PageBackground}};">
<tr><td align="center" style="padding: 20px 0;">
<table width="{{.Width}}" cellpadding="0" cellspacing="0" border="0" style="{{.BodyCSS}}">
{{range .Rows}}<tr><td style="{{.CSS}}">{{.Body}}</td></tr>
{{end}}</table>
</td></tr>
</table>
</body>
</html>`))

type htmlRow struct {
	CSS  template.CSS
	Body template.HTML
}

// HTML рендерит снимок документа в самодостаточный email-совместимый
// HTML-документ: центрированная таблица на ширину документа, по строке
// таблицы на блок, все стили инлайновые. Результат минифицируется.
func HTML(snapshot Snapshot, out io.Writer) error {
	body := snapshot.BodyStyles

	width := body.Width
	if width == 0 {
		width = 600
	}

	page := struct {
		PageBackground string
		Width          int
		BodyCSS        template.CSS
		Rows           []htmlRow
	}{
		PageBackground: colorOr(body.Background, "#ffffff"),
		Width:          width,
		BodyCSS:        template.CSS(bodyCSS(body)),
	}

	for _, b := range snapshot.Blocks {
		page.Rows = append(page.Rows, htmlRow{
			CSS:  template.CSS(b.Styles.InlineCSS()),
			Body: renderBlock(b, body),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, page); err != nil {
		return err
	}

	return minifier.Minify("text/html", out, &buf)
}

func renderBlock(b editor.Block, body editor.BodyStyles) template.HTML {
	esc := template.HTMLEscapeString

	switch b.Type {
	case editor.BlockHeading:
		return template.HTML(fmt.Sprintf(`<h1 style="margin: 0; font-size: inherit; font-weight: inherit; text-align: inherit;">%s</h1>`,
			textWithBreaks(b.Content.Text)))
	case editor.BlockText:
		return template.HTML(fmt.Sprintf(`<div style="white-space: pre-wrap; word-break: break-word;">%s</div>`,
			textWithBreaks(b.Content.Text)))
	case editor.BlockButton:
		align := b.Styles.TextAlign
		if align == editor.AlignNone {
			align = editor.AlignCenter
		}
		return template.HTML(fmt.Sprintf(
			`<div style="text-align: %s;"><a href="%s" style="%s">%s</a></div>`,
			align, esc(b.Content.URL), buttonCSS(b.Styles), textWithBreaks(b.Content.Text)))
	case editor.BlockImage:
		if b.Content.URL == "" {
			return ""
		}
		return template.HTML(fmt.Sprintf(
			`<img src="%s" alt="%s" style="max-width: 100%%; height: auto; display: block; margin: 0 auto;" />`,
			esc(b.Content.URL), esc(b.Content.Alt)))
	case editor.BlockDivider:
		color := colorOr(b.Styles.Color, "#e2e8f0")
		return template.HTML(fmt.Sprintf(`<hr style="border: none; border-top: 2px solid %s; margin: 0;" />`, color))
	case editor.BlockHTML:
		return template.HTML(htmlBlockPolicy.Sanitize(b.Content.HTML))
	case editor.BlockVideo:
		// В письме видео - ссылка на просмотр
		return template.HTML(fmt.Sprintf(
			`<a href="%s" style="color: %s; font-weight: bold;">&#9654; Watch the video</a>`,
			esc(b.Content.URL), colorOr(body.LinkColor, "#2563eb")))
	}
	return ""
}

func textWithBreaks(text string) string {
	return strings.ReplaceAll(template.HTMLEscapeString(text), "\n", "<br />")
}

func bodyCSS(body editor.BodyStyles) string {
	var parts []string
	parts = append(parts, "background-color: "+colorOr(body.Background, "#ffffff"))
	if body.FontFamily != "" {
		parts = append(parts, "font-family: "+body.FontFamily)
	}
	if body.FontSize != 0 {
		parts = append(parts, "font-size: "+strconv.Itoa(body.FontSize)+"px")
	}
	if body.LineHeight != 0 {
		parts = append(parts, "line-height: "+strconv.FormatFloat(body.LineHeight, 'f', -1, 64))
	}
	parts = append(parts, "color: "+colorOr(body.Color, "#334155"))
	return strings.Join(parts, "; ")
}

// buttonCSS - стили кнопки переносятся на тег  ссылки, а выравнивание
// остается на обертке.
func buttonCSS(s editor.Styles) string {
	link := s.Clone()
	link.TextAlign = editor.AlignNone
	link.Margin = nil
	if link.Display == "" {
		link.Display = "inline-block"
	}
	if link.TextDecoration == "" {
		link.TextDecoration = "none"
	}
	return link.InlineCSS()
}

func colorOr(c *editor.Color, fallback string) string {
	if c == nil {
		return fallback
	}
	return c.Hex()
}
