package library

import (
	"testing"

	"github.com/givehope/givehope.go/internal/givehope/editor"
)

func TestCatalog(t *testing.T) {
	l := New()

	presets := l.Presets()
	if len(presets) != 23 {
		t.Fatalf("want 23 presets, got %d", len(presets))
	}
	for _, p := range presets {
		if p.Id == "" || p.Label == "" {
			t.Fatalf("preset without id or label: %+v", p)
		}
		if len(p.Blocks) == 0 {
			t.Fatalf("preset %q has no blocks", p.Id)
		}
		for _, d := range p.Blocks {
			if !d.Type.Valid() {
				t.Fatalf("preset %q uses unknown block type %q", p.Id, d.Type)
			}
		}
	}

	templates := l.Templates()
	if len(templates) != 4 {
		t.Fatalf("want 4 templates, got %d", len(templates))
	}
	for _, tpl := range templates {
		if len(tpl.Blocks) == 0 {
			t.Fatalf("template %q has no blocks", tpl.Id)
		}
	}
}

func TestExpandPreset(t *testing.T) {
	l := New()

	first := l.ExpandPreset("hero")
	if len(first) == 0 {
		t.Fatal("hero preset expanded to nothing")
	}

	second := l.ExpandPreset("hero")
	if len(second) != len(first) {
		t.Fatal("expansions differ in length")
	}
	for i := range first {
		if first[i].Id == second[i].Id {
			t.Fatal("every expansion must get fresh block ids")
		}
		if first[i].Type != second[i].Type {
			t.Fatal("expansions must share structure")
		}
	}

	if l.ExpandPreset("no_such_preset") != nil {
		t.Fatal("unknown preset must expand to nil")
	}
}

func TestExpandPresetIsolation(t *testing.T) {
	l := New()

	blocks := l.ExpandPreset("urgent")
	if len(blocks) == 0 {
		t.Fatal("urgent preset expanded to nothing")
	}
	blocks[0].Content.Text = "mutated"
	if blocks[0].Styles.Padding != nil {
		blocks[0].Styles.Padding.Top = 999
	}

	again := l.ExpandPreset("urgent")
	if again[0].Content.Text == "mutated" {
		t.Fatal("mutation leaked back into the catalog")
	}
	if again[0].Styles.Padding != nil && again[0].Styles.Padding.Top == 999 {
		t.Fatal("style mutation leaked back into the catalog")
	}
}

func TestExpandTemplate(t *testing.T) {
	l := New()

	blocks, body, ok := l.ExpandTemplate("newsletter_monthly")
	if !ok {
		t.Fatal("known template not found")
	}
	if len(blocks) == 0 {
		t.Fatal("template expanded to nothing")
	}
	if body.Width == 0 {
		t.Fatal("template must carry document width")
	}

	if _, _, ok := l.ExpandTemplate("no_such_template"); ok {
		t.Fatal("unknown template must report !ok")
	}
}

func TestTemplateCompositionIsolation(t *testing.T) {
	l := New()

	// templates embed preset blocks; mutating an expanded template must not
	// affect later preset expansions
	blocks, _, _ := l.ExpandTemplate("crisis_appeal")
	for i := range blocks {
		blocks[i].Content.Text = "overwritten"
	}

	urgent := l.ExpandPreset("urgent")
	for _, b := range urgent {
		if b.Content.Text == "overwritten" {
			t.Fatal("template mutation leaked into preset catalog")
		}
	}
}

func TestLoadTemplateIntoState(t *testing.T) {
	l := New()
	s := editor.NewState()

	blocks, body, _ := l.ExpandTemplate("welcome_series")
	s.LoadTemplate(blocks, body)

	if len(s.Blocks) != len(blocks) {
		t.Fatal("state must carry exactly the template blocks")
	}
	seen := map[string]bool{}
	for _, b := range s.Blocks {
		if seen[b.Id.String()] {
			t.Fatalf("duplicate block id %s", b.Id)
		}
		seen[b.Id.String()] = true
	}
}

func TestKnownMergeTag(t *testing.T) {
	for _, mt := range MergeTags {
		if !KnownMergeTag(mt.Tag) {
			t.Fatalf("dictionary tag %q not recognized", mt.Tag)
		}
	}
	if KnownMergeTag("{{favorite_color}}") {
		t.Fatal("unknown tag accepted")
	}
}
