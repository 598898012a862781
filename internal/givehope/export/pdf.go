// Пакет для экспорта снимков документов студии во внешние форматы.
// Предоставляет функциональность для генерации email-совместимого HTML
// и печатных PDF из дерева блоков.
//
// Основные возможности:
//   - Рендеринг снимка документа в самодостаточный HTML для рассылок.
//   - Генерация PDF обхода дерева блоков.
//   - Вставка удаленных изображений в PDF.
//   - Поддержка стилизации блоков (цвета, отступы, выравнивание).
package export

import (
	"fmt"
	"html"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"codeberg.org/go-pdf/fpdf"
	"github.com/givehope/givehope.go/internal/givehope/editor"
	"github.com/microcosm-cc/bluemonday"
)

var stripPolicy = bluemonday.StrictPolicy()

type pdfWriter struct {
	pdf      *fpdf.Fpdf
	snapshot Snapshot
	webURL   *url.URL
	tr       func(string) string

	defaultMargins Margins
}

type Margins struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
}

func (m *Margins) GetMargins(pdf fpdf.Pdf) {
	m.Left, m.Top, m.Right, m.Bottom = pdf.GetMargins()
}

// PDF генерирует PDF документ из снимка: блоки обходятся по порядку,
// каждый получает свои цвета, выравнивание и вертикальные отступы.
func PDF(snapshot Snapshot, title string, webURL *url.URL, out io.Writer) error {
	pdf := fpdf.New("P", "mm", "A4", "") // 210*297 mm
	pdf.SetTitle(title, true)

	w := pdfWriter{
		pdf:      pdf,
		snapshot: snapshot,
		webURL:   webURL,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
	}

	w.defaultMargins.GetMargins(w.pdf)

	pdf.AddPage()

	for _, b := range snapshot.Blocks {
		w.writeBlock(b)
	}

	return pdf.Output(out)
}

func (w *pdfWriter) writeBlock(b editor.Block) {
	w.applyPadding(b.Styles, true)
	defer w.applyPadding(b.Styles, false)

	body := w.snapshot.BodyStyles

	switch b.Type {
	case editor.BlockHeading:
		w.setBlockFont(b.Styles, 24, "B")
		w.setTextColor(b.Styles.Color, body.Color)
		w.writeAligned(b.Content.Text, b.Styles.TextAlign, 10)
	case editor.BlockText:
		w.setBlockFont(b.Styles, fontSizeOr(body.FontSize, 16), "")
		w.setTextColor(b.Styles.Color, body.Color)
		w.writeAligned(b.Content.Text, b.Styles.TextAlign, 6)
	case editor.BlockButton:
		w.writeButton(b)
	case editor.BlockDivider:
		w.writeDivider(b)
	case editor.BlockImage:
		w.writeImage(b)
	case editor.BlockHTML:
		// Пользовательский html печатается как чистый текст
		text := html.UnescapeString(stripPolicy.Sanitize(b.Content.HTML))
		text = strings.TrimSpace(text)
		if text == "" {
			return
		}
		w.setBlockFont(b.Styles, fontSizeOr(body.FontSize, 16), "")
		w.setTextColor(b.Styles.Color, body.Color)
		w.writeAligned(text, b.Styles.TextAlign, 6)
	case editor.BlockVideo:
		w.setBlockFont(b.Styles, fontSizeOr(body.FontSize, 16), "")
		w.pdf.SetTextColor(37, 99, 235)
		link := b.Content.URL
		w.pdf.WriteLinkString(6, w.tr("Watch the video: "+link), link)
		w.pdf.Ln(6)
	}
}

func (w *pdfWriter) writeAligned(text string, align editor.TextAlign, lineHeight float64) {
	alignStr := "L"
	switch align {
	case editor.AlignCenter:
		alignStr = "C"
	case editor.AlignRight:
		alignStr = "R"
	}
	w.pdf.MultiCell(0, lineHeight, w.tr(text), "", alignStr, false)
	w.pdf.Ln(1)
}

func (w *pdfWriter) writeButton(b editor.Block) {
	w.setBlockFont(b.Styles, 16, "B")

	if b.Styles.Background != nil {
		w.SetHexFillColor(b.Styles.Background.Hex())
	} else {
		w.SetHexFillColor("#2563eb")
	}
	if b.Styles.Color != nil {
		w.setTextColor(b.Styles.Color, nil)
	} else {
		w.pdf.SetTextColor(255, 255, 255)
	}

	label := w.tr(b.Content.Text)
	width := w.pdf.GetStringWidth(label) + 16
	left, _, right, _ := w.pdf.GetMargins()
	pageW, _ := w.pdf.GetPageSize()
	// Кнопка по центру независимо от выравнивания текста
	w.pdf.SetX(left + (pageW-left-right-width)/2)

	link := b.Content.URL
	w.pdf.CellFormat(width, 12, label, "", 1, "C", true, 0, link)
	w.pdf.Ln(2)
}

func (w *pdfWriter) writeDivider(b editor.Block) {
	if b.Styles.Color != nil {
		r, g, bl := rgb(*b.Styles.Color)
		w.pdf.SetDrawColor(r, g, bl)
	} else {
		w.pdf.SetDrawColor(226, 232, 240)
	}
	left, _, right, _ := w.pdf.GetMargins()
	pageW, _ := w.pdf.GetPageSize()
	y := w.pdf.GetY() + 2
	w.pdf.Line(left, y, pageW-right, y)
	w.pdf.SetY(y + 2)
	w.pdf.SetDrawColor(0, 0, 0)
}

func (w *pdfWriter) getImageInfo(b editor.Block) *fpdf.ImageInfoType {
	info := w.pdf.GetImageInfo(b.Content.URL)
	if info == nil {
		u, err := url.Parse(b.Content.URL)
		if err != nil {
			return nil
		}
		if u.Host == "" && w.webURL != nil {
			u = w.webURL.ResolveReference(u)
		}

		resp, err := http.Get(u.String())
		if err != nil {
			fmt.Println(err)
			return nil
		}
		defer resp.Body.Close()

		options := fpdf.ImageOptions{ImageType: w.pdf.ImageTypeFromMime(resp.Header.Get("Content-Type")), ReadDpi: true}

		// unsupported image type
		if options.ImageType == "" {
			w.pdf.ClearError()
			return nil
		}

		info = w.pdf.RegisterImageOptionsReader(b.Content.URL, options, resp.Body)
	}
	return info
}

func (w *pdfWriter) writeImage(b editor.Block) {
	if b.Content.URL == "" {
		return
	}
	if w.getImageInfo(b) == nil {
		return
	}

	left, _, right, _ := w.pdf.GetMargins()
	pageW, _ := w.pdf.GetPageSize()
	width := pageW - left - right
	if !b.Styles.Width.IsZero() && !b.Styles.Width.Percent {
		width = min(w.PxToUnit(b.Styles.Width.Value), width)
	}

	w.pdf.ImageOptions(b.Content.URL, -1, -1, width, 0, true, fpdf.ImageOptions{ReadDpi: true}, 0, b.Content.URL)
	w.pdf.Ln(2)
}

func (w *pdfWriter) setBlockFont(s editor.Styles, defaultPx int, defaultStyle string) {
	size := s.FontSize
	if size == 0 {
		size = defaultPx
	}
	styleStr := defaultStyle
	switch s.FontWeight {
	case "bold", "600", "700", "800":
		styleStr = "B"
	case "normal", "400":
		styleStr = ""
	}
	if s.FontStyle == "italic" {
		styleStr += "I"
	}
	w.pdf.SetFont("Helvetica", styleStr, w.PxToUnit(size)*3)
}

func (w *pdfWriter) setTextColor(c *editor.Color, fallback *editor.Color) {
	if c == nil {
		c = fallback
	}
	if c == nil {
		w.pdf.SetTextColor(51, 65, 85)
		return
	}
	r, g, b := rgb(*c)
	w.pdf.SetTextColor(r, g, b)
}

// applyPadding переносит горизонтальные отступы блока в поля страницы,
// вертикальные - в смещение курсора.
func (w *pdfWriter) applyPadding(s editor.Styles, enter bool) {
	if s.Padding == nil {
		if !enter {
			w.resetMargins()
		}
		return
	}
	if enter {
		w.pdf.SetLeftMargin(w.defaultMargins.Left + w.PxToUnit(s.Padding.Left))
		w.pdf.SetRightMargin(w.defaultMargins.Right + w.PxToUnit(s.Padding.Right))
		w.pdf.SetY(w.pdf.GetY() + w.PxToUnit(s.Padding.Top))
	} else {
		w.resetMargins()
		w.pdf.SetY(w.pdf.GetY() + w.PxToUnit(s.Padding.Bottom))
	}
}

func (w *pdfWriter) PxToUnit(px int) float64 {
	return w.pdf.PointConvert(float64(px) * 0.75)
}

func (w *pdfWriter) SetHexFillColor(hex string) {
	hex = strings.TrimPrefix(hex, "#")
	values, err := strconv.ParseUint(string(hex), 16, 32)
	if err != nil {
		return
	}
	w.pdf.SetFillColor(
		int(uint8(values>>16)),
		int(uint8((values>>8)&0xFF)),
		int(uint8(values&0xFF)),
	)
}

func (w *pdfWriter) resetMargins() {
	w.pdf.SetMargins(w.defaultMargins.Left, w.defaultMargins.Top, w.defaultMargins.Right)
}

func rgb(c editor.Color) (int, int, int) {
	return int(c.R), int(c.G), int(c.B)
}

func fontSizeOr(size, fallback int) int {
	if size == 0 {
		return fallback
	}
	return size
}
