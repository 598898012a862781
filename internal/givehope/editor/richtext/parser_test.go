package richtext

import (
	"strings"
	"testing"
)

func TestParseSerialize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "paragraph",
			in:   "<p>Hello world</p>",
			want: "<p>Hello world</p>",
		},
		{
			name: "bare text gets a paragraph",
			in:   "Hello",
			want: "<p>Hello</p>",
		},
		{
			name: "div normalizes to p",
			in:   "<div>Hello</div>",
			want: "<p>Hello</p>",
		},
		{
			name: "strong and em normalize to b and i",
			in:   "<p><strong>bold</strong> and <em>italic</em></p>",
			want: "<p><b>bold</b> and <i>italic</i></p>",
		},
		{
			name: "nested marks",
			in:   "<p><b><i>both</i></b></p>",
			want: "<p><b><i>both</i></b></p>",
		},
		{
			name: "headings and quote",
			in:   "<h1>Title</h1><h2>Sub</h2><blockquote>Quote</blockquote>",
			want: "<h1>Title</h1><h2>Sub</h2><blockquote>Quote</blockquote>",
		},
		{
			name: "bullet list",
			in:   "<ul><li>one</li><li>two</li></ul>",
			want: "<ul><li>one</li><li>two</li></ul>",
		},
		{
			name: "ordered list",
			in:   "<ol><li>first</li></ol>",
			want: "<ol><li>first</li></ol>",
		},
		{
			name: "adjacent same-format spans merge",
			in:   "<p><b>a</b><b>b</b></p>",
			want: "<p><b>ab</b></p>",
		},
		{
			name: "unknown tags reduce to text",
			in:   "<p><span>plain</span></p>",
			want: "<p>plain</p>",
		},
		{
			name: "empty input yields empty paragraph",
			in:   "",
			want: "<p></p>",
		},
		{
			name: "text escaped on output",
			in:   "<p>a &lt; b</p>",
			want: "<p>a &lt; b</p>",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse(strings.NewReader(tt.in))
			if err != nil {
				t.Fatal(err)
			}
			if got := doc.Serialize(); got != tt.want {
				t.Fatalf("want %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseRoundTripStable(t *testing.T) {
	in := `<h1>Ann<b>ual</b> report</h1><p>We served <b>12 000</b> meals and <i>counting</i>.</p><ul><li>food</li><li><u>shelter</u></li></ul>`

	doc, err := Parse(strings.NewReader(in))
	if err != nil {
		t.Fatal(err)
	}
	first := doc.Serialize()

	doc2, err := Parse(strings.NewReader(first))
	if err != nil {
		t.Fatal(err)
	}
	if second := doc2.Serialize(); second != first {
		t.Fatalf("serialization not stable:\nfirst:  %q\nsecond: %q", first, second)
	}
}

func TestDocumentText(t *testing.T) {
	doc, err := Parse(strings.NewReader("<h1>Title</h1><p><b>bo</b>dy</p><ul><li>a</li><li>b</li></ul>"))
	if err != nil {
		t.Fatal(err)
	}
	want := "Title\nbody\na\nb"
	if got := doc.Text(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}
