package export

import (
	"bytes"
	"net/url"
	"strings"
	"testing"

	"codeberg.org/go-pdf/fpdf"
	"github.com/givehope/givehope.go/internal/givehope/editor"
)

func TestPDF(t *testing.T) {
	btn := blockWithText(editor.BlockButton, "Donate Now")
	btn.Content.URL = "https://example.org/donate"

	snapshot := Snapshot{
		Blocks: []editor.Block{
			blockWithText(editor.BlockHeading, "Annual Report"),
			blockWithText(editor.BlockText, "We served 12 000 meals this year.\nThank you."),
			btn,
			editor.NewBlock(editor.BlockDivider),
		},
		BodyStyles: editor.DefaultBodyStyles(),
	}

	webURL, _ := url.Parse("https://givehope.example.org")

	var buf bytes.Buffer
	if err := PDF(snapshot, "Annual Report", webURL, &buf); err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatal("output is not a PDF document")
	}
	if buf.Len() < 1000 {
		t.Fatalf("suspiciously small PDF: %d bytes", buf.Len())
	}
}

func TestPDFEmptyDocument(t *testing.T) {
	var buf bytes.Buffer
	if err := PDF(Snapshot{}, "Empty", nil, &buf); err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(buf.String(), "%PDF") {
		t.Fatal("empty document must still produce a valid PDF")
	}
}

func TestPxToUnit(t *testing.T) {
	w := pdfWriter{pdf: fpdf.New("P", "mm", "A4", "")}

	if w.PxToUnit(0) != 0 {
		t.Fatal("zero pixels must convert to zero")
	}
	if w.PxToUnit(16) <= 0 {
		t.Fatal("conversion must be positive for positive input")
	}
	if w.PxToUnit(32) <= w.PxToUnit(16) {
		t.Fatal("conversion must be monotonic")
	}
}
