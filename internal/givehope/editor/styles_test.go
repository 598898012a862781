package editor

import (
	"encoding/json"
	"testing"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Color
		wantErr bool
	}{
		{name: "hex", raw: "#2563eb", want: Color{R: 0x25, G: 0x63, B: 0xeb}},
		{name: "hex digits a and b", raw: "#0f172a", want: Color{R: 0x0f, G: 0x17, B: 0x2a}},
		{name: "hex all letter digits", raw: "#aabbcc", want: Color{R: 0xaa, G: 0xbb, B: 0xcc}},
		{name: "quoted hex", raw: `"#abcdef"`, want: Color{R: 0xab, G: 0xcd, B: 0xef}},
		{name: "hex short", raw: "#fa0", want: Color{R: 0xff, G: 0xaa, B: 0x00}},
		{name: "hex with alpha", raw: "#ff000080", want: Color{R: 0xff, A: 0x80}},
		{name: "rgb", raw: "rgb(37, 99, 235)", want: Color{R: 37, G: 99, B: 235}},
		{name: "rgba", raw: "rgba(0, 0, 0, 128)", want: Color{A: 128}},
		{name: "empty", raw: "", wantErr: true},
		{name: "garbage", raw: "bright red", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColor(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestColorHex(t *testing.T) {
	if got := (Color{R: 0x25, G: 0x63, B: 0xeb}).Hex(); got != "#2563eb" {
		t.Fatalf("opaque color must render 6 digits, got %q", got)
	}
	if got := (Color{R: 0xff, A: 0x80}).Hex(); got != "#ff000080" {
		t.Fatalf("translucent color must render 8 digits, got %q", got)
	}
}

func TestParseSpacing(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    Spacing
		wantErr bool
	}{
		{name: "single", raw: "10px", want: Spacing{Top: 10, Right: 10, Bottom: 10, Left: 10}},
		{name: "vertical horizontal", raw: "12px 24px", want: Spacing{Top: 12, Right: 24, Bottom: 12, Left: 24}},
		{name: "auto centering", raw: "0 auto", want: Spacing{AutoLeft: true, AutoRight: true}},
		{name: "four values", raw: "1px 2px 3px 4px", want: Spacing{Top: 1, Right: 2, Bottom: 3, Left: 4}},
		{name: "bare numbers", raw: "5 6", want: Spacing{Top: 5, Bottom: 5, Right: 6, Left: 6}},
		{name: "empty", raw: "", wantErr: true},
		{name: "too many", raw: "1 2 3 4 5", wantErr: true},
		{name: "not a number", raw: "1em", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSpacing(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if got != tt.want {
				t.Fatalf("want %+v, got %+v", tt.want, got)
			}
		})
	}
}

func TestParseSize(t *testing.T) {
	if s, err := ParseSize("50%"); err != nil || s != (Size{Value: 50, Percent: true}) {
		t.Fatalf("percent: got %+v, %v", s, err)
	}
	if s, err := ParseSize("320px"); err != nil || s != (Size{Value: 320}) {
		t.Fatalf("pixels: got %+v, %v", s, err)
	}
	if !(Size{}).IsZero() {
		t.Fatal("empty size must be zero")
	}
	if (Size{Percent: true}).IsZero() {
		t.Fatal("0% is a valid explicit width")
	}
}

func TestStylesRoundTrip(t *testing.T) {
	raw := map[string]string{
		"padding":         "12px 24px",
		"color":           "#ffffff",
		"backgroundColor": "#2563eb",
		"fontSize":        "18px",
		"fontWeight":      "bold",
		"textAlign":       "center",
		"width":           "50%",
		"borderRadius":    "6px",
		"boxShadow":       "0 1px 2px rgba(0,0,0,.2)", // unknown key
	}

	s := StylesFromMap(raw)
	if s.Padding == nil || s.Padding.Right != 24 {
		t.Fatalf("padding not parsed: %+v", s.Padding)
	}
	if s.FontSize != 18 || s.FontWeight != "bold" {
		t.Fatal("font properties not parsed")
	}
	if s.Width != (Size{Value: 50, Percent: true}) {
		t.Fatalf("width not parsed: %+v", s.Width)
	}
	if s.Extra["boxShadow"] != raw["boxShadow"] {
		t.Fatal("unknown key must survive in Extra")
	}

	back := s.Map()
	// spacing shorthands normalize to the four-value form
	if back["padding"] != "12px 24px 12px 24px" {
		t.Fatalf("padding: got %q", back["padding"])
	}
	delete(raw, "padding")
	for k, v := range raw {
		if back[k] != v {
			t.Fatalf("key %q: want %q, got %q", k, v, back[k])
		}
	}
}

func TestStylesJSON(t *testing.T) {
	s := StylesFromMap(map[string]string{"color": "#0f172a", "textAlign": "right"})

	data, err := json.Marshal(s)
	if err != nil {
		t.Fatal(err)
	}

	var decoded Styles
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatal(err)
	}
	if decoded.Color == nil || decoded.Color.Hex() != "#0f172a" {
		t.Fatalf("color lost in round trip: %+v", decoded.Color)
	}
	if decoded.TextAlign != AlignRight {
		t.Fatalf("textAlign lost in round trip: %q", decoded.TextAlign)
	}
}

func TestInlineCSS(t *testing.T) {
	s := StylesFromMap(map[string]string{
		"backgroundColor": "#2563eb",
		"fontSize":        "16px",
	})
	want := "background-color: #2563eb; font-size: 16px"
	if got := s.InlineCSS(); got != want {
		t.Fatalf("want %q, got %q", want, got)
	}
}

func TestStylesMergeExtra(t *testing.T) {
	s := Styles{}
	s.Merge(Styles{Extra: map[string]string{"letterSpacing": "1px"}})
	if s.Extra["letterSpacing"] != "1px" {
		t.Fatal("merge must carry Extra keys")
	}
}

func TestBodyStylesMerge(t *testing.T) {
	b := DefaultBodyStyles()
	link := mustColor("#16a34a")
	b.Merge(BodyStyles{Width: 720, LinkColor: link})

	if b.Width != 720 {
		t.Fatalf("width not merged: %d", b.Width)
	}
	if b.LinkColor == link {
		t.Fatal("merge must copy the color, not alias the pointer")
	}
	if b.FontSize == 0 {
		t.Fatal("unset fields must keep their previous values")
	}
}
