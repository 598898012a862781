package export

import (
	"bytes"
	"strings"
	"testing"

	"github.com/givehope/givehope.go/internal/givehope/editor"
)

func renderHTML(t *testing.T, snapshot Snapshot) string {
	t.Helper()
	var buf bytes.Buffer
	if err := HTML(snapshot, &buf); err != nil {
		t.Fatal(err)
	}
	return buf.String()
}

func blockWithText(bt editor.BlockType, text string) editor.Block {
	b := editor.NewBlock(bt)
	b.Content.Text = text
	return b
}

func TestHTMLRendersBlocks(t *testing.T) {
	img := editor.NewBlock(editor.BlockImage)
	img.Content.URL = "https://cdn.example.org/field.jpg"
	img.Content.Alt = "Field team"

	btn := blockWithText(editor.BlockButton, "Donate Now")
	btn.Content.URL = "https://example.org/donate"

	snapshot := Snapshot{
		Blocks: []editor.Block{
			blockWithText(editor.BlockHeading, "October Update"),
			blockWithText(editor.BlockText, "Dear {{first_name}},"),
			img,
			btn,
			editor.NewBlock(editor.BlockDivider),
		},
		BodyStyles: editor.DefaultBodyStyles(),
	}

	out := renderHTML(t, snapshot)

	for _, want := range []string{
		"October Update",
		"Dear {{first_name}},",
		`src="https://cdn.example.org/field.jpg"`,
		`alt="Field team"`,
		`href="https://example.org/donate"`,
		"Donate Now",
		"<hr",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("output missing %q:\n%s", want, out)
		}
	}
}

func TestHTMLDefaultWidth(t *testing.T) {
	out := renderHTML(t, Snapshot{Blocks: []editor.Block{blockWithText(editor.BlockText, "hi")}})
	if !strings.Contains(out, `width="600"`) {
		t.Fatal("document without explicit width must default to 600")
	}

	out = renderHTML(t, Snapshot{BodyStyles: editor.BodyStyles{Width: 720}})
	if !strings.Contains(out, `width="720"`) {
		t.Fatal("explicit width not honored")
	}
}

func TestHTMLSanitizesCustomBlocks(t *testing.T) {
	b := editor.NewBlock(editor.BlockHTML)
	b.Content.HTML = `<table width="100%"><tr><td style="color: red;" onclick="steal()">ok</td></tr></table><script>alert(1)</script>`

	out := renderHTML(t, Snapshot{Blocks: []editor.Block{b}})

	if strings.Contains(out, "<script") || strings.Contains(out, "alert(1)") {
		t.Fatal("script must be stripped from custom html")
	}
	if strings.Contains(out, "onclick") {
		t.Fatal("event handlers must be stripped from custom html")
	}
	if !strings.Contains(out, "color: red") {
		t.Fatal("inline styles must survive sanitization")
	}
	if !strings.Contains(out, "ok") {
		t.Fatal("legitimate table content lost")
	}
}

func TestHTMLEscapesUserText(t *testing.T) {
	out := renderHTML(t, Snapshot{
		Blocks: []editor.Block{blockWithText(editor.BlockText, `<img src=x onerror=alert(1)>`)},
	})
	if strings.Contains(out, "<img") {
		t.Fatal("text content must be escaped, not parsed as markup")
	}
}

func TestHTMLSkipsEmptyImage(t *testing.T) {
	out := renderHTML(t, Snapshot{Blocks: []editor.Block{editor.NewBlock(editor.BlockImage)}})
	if strings.Contains(out, "<img") {
		t.Fatal("image block without url must render nothing")
	}
}

func TestHTMLVideoBecomesLink(t *testing.T) {
	v := editor.NewBlock(editor.BlockVideo)
	v.Content.URL = "https://www.youtube.com/watch?v=abc"

	out := renderHTML(t, Snapshot{Blocks: []editor.Block{v}})
	if !strings.Contains(out, `href="https://www.youtube.com/watch?v=abc"`) {
		t.Fatal("video block must render as a link in email output")
	}
	if strings.Contains(out, "<video") || strings.Contains(out, "<iframe") {
		t.Fatal("email output must not embed players")
	}
}

func TestTakeSnapshot(t *testing.T) {
	s := editor.NewState()
	snap := TakeSnapshot(s)
	if len(snap.Blocks) != len(s.Blocks) {
		t.Fatal("snapshot must carry all blocks")
	}
	// snapshot is detached from the live state
	s.InsertNewBlock(editor.BlockDivider, 0)
	if len(snap.Blocks) == len(s.Blocks) {
		t.Fatal("snapshot must not track later edits")
	}
}
