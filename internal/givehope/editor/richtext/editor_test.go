package richtext

import (
	"strings"
	"testing"
)

func parseDoc(t *testing.T, in string) *Document {
	t.Helper()
	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	return doc
}

func hasFormat(formats []Format, f Format) bool {
	for _, g := range formats {
		if g == f {
			return true
		}
	}
	return false
}

func TestToggleBoldRange(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p>hello world</p>"))
	e.Select(Selection{Block: 0, Start: 0, End: 5})

	e.ToggleBold()
	if got := e.Document().Serialize(); got != "<p><b>hello</b> world</p>" {
		t.Fatalf("got %q", got)
	}
	if !hasFormat(e.ActiveFormats(), FormatBold) {
		t.Fatal("bold must be active over a fully bold range")
	}

	e.ToggleBold()
	if got := e.Document().Serialize(); got != "<p>hello world</p>" {
		t.Fatalf("second toggle must undo: %q", got)
	}
}

func TestToggleOverMixedRange(t *testing.T) {
	// range covering bold and plain text: toggle bolds the whole range
	e := NewEditor(parseDoc(t, "<p><b>he</b>llo</p>"))
	e.Select(Selection{Block: 0, Start: 0, End: 5})

	if hasFormat(e.ActiveFormats(), FormatBold) {
		t.Fatal("partially bold range must not report bold active")
	}

	e.ToggleBold()
	if got := e.Document().Serialize(); got != "<p><b>hello</b></p>" {
		t.Fatalf("got %q", got)
	}
}

func TestCaretPendingFormat(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p>ab</p>"))
	e.Select(Selection{Block: 0, Start: 1, End: 1})

	e.ToggleItalic()
	if !hasFormat(e.ActiveFormats(), FormatItalic) {
		t.Fatal("caret toggle must arm the pending format")
	}

	e.InsertText("X")
	if got := e.Document().Serialize(); got != "<p>a<i>X</i>b</p>" {
		t.Fatalf("inserted text must carry the pending format: %q", got)
	}
}

func TestCaretInheritsLeftFormat(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p><b>ab</b>cd</p>"))
	e.Select(Selection{Block: 0, Start: 2, End: 2})

	if !hasFormat(e.ActiveFormats(), FormatBold) {
		t.Fatal("caret at a boundary must inherit the format to its left")
	}

	e.InsertText("x")
	if got := e.Document().Serialize(); got != "<p><b>abx</b>cd</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestInsertReplacesSelection(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p>hello world</p>"))
	e.Select(Selection{Block: 0, Start: 6, End: 11})

	e.InsertText("there")
	if got := e.Document().Serialize(); got != "<p>hello there</p>" {
		t.Fatalf("got %q", got)
	}
}

func TestSetBlockType(t *testing.T) {
	tests := []struct {
		name string
		in   string
		kind BlockKind
		want string
	}{
		{name: "paragraph to h1", in: "<p>Title</p>", kind: Heading1, want: "<h1>Title</h1>"},
		{name: "h1 to h2", in: "<h1>Title</h1>", kind: Heading2, want: "<h2>Title</h2>"},
		{name: "same kind reverts to paragraph", in: "<h2>Title</h2>", kind: Heading2, want: "<p>Title</p>"},
		{name: "paragraph to quote", in: "<p>said so</p>", kind: Blockquote, want: "<blockquote>said so</blockquote>"},
		{name: "paragraph to list", in: "<p><b>item</b></p>", kind: BulletList, want: "<ul><li><b>item</b></li></ul>"},
		{name: "bullet list to ordered", in: "<ul><li>a</li><li>b</li></ul>", kind: OrderedList, want: "<ol><li>a</li><li>b</li></ol>"},
		{name: "list to same kind flattens", in: "<ol><li>a</li><li>b</li></ol>", kind: OrderedList, want: "<p>ab</p>"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := NewEditor(parseDoc(t, tt.in))
			e.Select(Selection{Block: 0})
			e.SetBlockType(tt.kind)
			if got := e.Document().Serialize(); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestActiveBlockFormat(t *testing.T) {
	e := NewEditor(parseDoc(t, "<blockquote>q</blockquote>"))
	e.Select(Selection{Block: 0})
	if !hasFormat(e.ActiveFormats(), FormatQuote) {
		t.Fatal("blockquote must be reported active")
	}
}

func TestSelectionClamped(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p>abc</p>"))
	e.Select(Selection{Block: 5, Start: -2, End: 100})

	e.ToggleBold()
	if got := e.Document().Serialize(); got != "<p><b>abc</b></p>" {
		t.Fatalf("got %q", got)
	}
}

func TestUnicodeOffsets(t *testing.T) {
	e := NewEditor(parseDoc(t, "<p>привет мир</p>"))
	e.Select(Selection{Block: 0, Start: 0, End: 6})

	e.ToggleUnderline()
	if got := e.Document().Serialize(); got != "<p><u>привет</u> мир</p>" {
		t.Fatalf("selection offsets must count runes, got %q", got)
	}
}
