package editor

import (
	"testing"

	"github.com/gofrs/uuid"
)

func newTestState(types ...BlockType) *State {
	s := &State{BodyStyles: DefaultBodyStyles()}
	for _, t := range types {
		s.Blocks = append(s.Blocks, NewBlock(t))
	}
	return s
}

func order(s *State) []uuid.UUID {
	ids := make([]uuid.UUID, len(s.Blocks))
	for i, b := range s.Blocks {
		ids[i] = b.Id
	}
	return ids
}

func TestInsertNewBlock(t *testing.T) {
	s := newTestState(BlockText, BlockText)

	b := s.InsertNewBlock(BlockHeading, 1)
	if b == nil {
		t.Fatal("InsertNewBlock returned nil")
	}
	if len(s.Blocks) != 3 {
		t.Fatalf("want 3 blocks, got %d", len(s.Blocks))
	}
	if s.Blocks[1].Id != b.Id {
		t.Fatal("block not inserted at index 1")
	}
	if s.SelectedBlockId != b.Id {
		t.Fatal("inserted block must be selected")
	}
	if b.Content.Text != "Heading" {
		t.Fatalf("unexpected default content: %q", b.Content.Text)
	}
}

func TestInsertNewBlockUnknownType(t *testing.T) {
	s := newTestState(BlockText)
	if b := s.InsertNewBlock("carousel", 0); b != nil {
		t.Fatal("unknown type must not create a block")
	}
	if len(s.Blocks) != 1 {
		t.Fatal("state changed on unknown type")
	}
}

func TestInsertIndexClamped(t *testing.T) {
	s := newTestState(BlockText)

	s.InsertNewBlock(BlockDivider, 100)
	if s.Blocks[len(s.Blocks)-1].Type != BlockDivider {
		t.Fatal("out of range index must append")
	}

	s.InsertNewBlock(BlockButton, -5)
	if s.Blocks[0].Type != BlockButton {
		t.Fatal("negative index must prepend")
	}
}

func TestReorderBlock(t *testing.T) {
	tests := []struct {
		name    string
		from    int
		toIndex int
		want    []int // expected permutation of original positions
	}{
		{name: "forward", from: 0, toIndex: 2, want: []int{1, 0, 2}},
		{name: "forward to end", from: 0, toIndex: 3, want: []int{1, 2, 0}},
		{name: "backward", from: 2, toIndex: 0, want: []int{2, 0, 1}},
		{name: "same position", from: 1, toIndex: 1, want: []int{0, 1, 2}},
		{name: "drop right below itself", from: 1, toIndex: 2, want: []int{0, 1, 2}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestState(BlockText, BlockHeading, BlockButton)
			before := order(s)

			s.ReorderBlock(before[tt.from], tt.toIndex)

			after := order(s)
			for i, origPos := range tt.want {
				if after[i] != before[origPos] {
					t.Fatalf("position %d: want block %d, got wrong block", i, origPos)
				}
			}
		})
	}
}

func TestReorderUnknownBlock(t *testing.T) {
	s := newTestState(BlockText, BlockHeading)
	before := order(s)

	s.ReorderBlock(uuid.Must(uuid.NewV4()), 0)

	after := order(s)
	for i := range before {
		if before[i] != after[i] {
			t.Fatal("reorder of unknown block must be no-op")
		}
	}
}

func TestDuplicateBlock(t *testing.T) {
	s := newTestState(BlockText)
	orig := &s.Blocks[0]
	orig.Content.Text = "original"
	orig.Styles.FontSize = 20

	dup := s.DuplicateBlock(orig.Id)
	if dup == nil {
		t.Fatal("DuplicateBlock returned nil")
	}
	if dup.Id == s.Blocks[0].Id {
		t.Fatal("duplicate must get a fresh id")
	}
	if dup.Content.Text != "original" || dup.Styles.FontSize != 20 {
		t.Fatal("duplicate must copy content and styles")
	}
	if s.SelectedBlockId != dup.Id {
		t.Fatal("duplicate must be selected")
	}

	// deep copy: mutating the duplicate must not touch the original
	s.UpdateBlockStyles(dup.Id, Styles{FontSize: 40})
	if s.Blocks[0].Styles.FontSize != 20 {
		t.Fatal("style mutation leaked into the original block")
	}
}

func TestDeleteBlockClearsSelection(t *testing.T) {
	s := newTestState(BlockText, BlockHeading)
	id := s.Blocks[0].Id
	s.SelectBlock(id)

	s.DeleteBlock(id)
	if len(s.Blocks) != 1 {
		t.Fatal("block not deleted")
	}
	if s.SelectedBlockId != uuid.Nil {
		t.Fatal("deleting the selected block must clear the selection")
	}
}

func TestDeleteOtherBlockKeepsSelection(t *testing.T) {
	s := newTestState(BlockText, BlockHeading)
	s.SelectBlock(s.Blocks[1].Id)

	s.DeleteBlock(s.Blocks[0].Id)
	if s.SelectedBlockId == uuid.Nil {
		t.Fatal("selection must survive deletion of another block")
	}
}

func TestUpdateBlockContent(t *testing.T) {
	s := newTestState(BlockImage)
	id := s.Blocks[0].Id

	s.UpdateBlockContent(id, "url", "https://example.org/photo.jpg")
	s.UpdateBlockContent(id, "alt", "Photo")
	s.UpdateBlockContent(id, "unknown", "ignored")

	b := s.Block(id)
	if b.Content.URL != "https://example.org/photo.jpg" || b.Content.Alt != "Photo" {
		t.Fatalf("content not updated: %+v", b.Content)
	}
}

func TestInsertMergeTag(t *testing.T) {
	s := newTestState(BlockText, BlockDivider)

	// no selection - no-op
	s.InsertMergeTag("{{first_name}}")

	s.SelectBlock(s.Blocks[0].Id)
	s.Blocks[0].Content.Text = "Hello"
	s.InsertMergeTag("{{first_name}}")
	if s.Blocks[0].Content.Text != "Hello {{first_name}}" {
		t.Fatalf("unexpected text: %q", s.Blocks[0].Content.Text)
	}

	// divider has no text content
	s.SelectBlock(s.Blocks[1].Id)
	s.InsertMergeTag("{{email}}")
	if s.Blocks[1].Content.Text != "" {
		t.Fatal("merge tag inserted into a non-text block")
	}
}

func TestLoadTemplateReplacesBlocks(t *testing.T) {
	s := newTestState(BlockText, BlockHeading)
	s.SelectBlock(s.Blocks[0].Id)

	repl := []Block{NewBlock(BlockButton)}
	s.LoadTemplate(repl, BodyStyles{Width: 720})

	if len(s.Blocks) != 1 || s.Blocks[0].Type != BlockButton {
		t.Fatal("template blocks must replace the document")
	}
	if s.BodyStyles.Width != 720 {
		t.Fatal("template body styles must be merged")
	}
	if s.SelectedBlockId != uuid.Nil {
		t.Fatal("selection must be cleared on template load")
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s := newTestState(BlockText)
	s.Blocks[0].Styles.Padding = &Spacing{Top: 10}

	blocks, _ := s.Snapshot()
	blocks[0].Styles.Padding.Top = 99

	if s.Blocks[0].Styles.Padding.Top != 10 {
		t.Fatal("snapshot must not share style pointers with the state")
	}
}

func TestDropIndex(t *testing.T) {
	s := newTestState(BlockText, BlockHeading, BlockButton)

	if got := s.DropIndex(nil); got != 3 {
		t.Fatalf("nil target: want 3, got %d", got)
	}
	if got := s.DropIndex(&DropTarget{BlockId: s.Blocks[1].Id, Side: SideTop}); got != 1 {
		t.Fatalf("top side: want 1, got %d", got)
	}
	if got := s.DropIndex(&DropTarget{BlockId: s.Blocks[1].Id, Side: SideBottom}); got != 2 {
		t.Fatalf("bottom side: want 2, got %d", got)
	}
	if got := s.DropIndex(&DropTarget{BlockId: uuid.Must(uuid.NewV4()), Side: SideTop}); got != 3 {
		t.Fatalf("missing block: want 3, got %d", got)
	}
}

func TestSideFor(t *testing.T) {
	if SideFor(10, 0, 40) != SideTop {
		t.Fatal("upper half must resolve to top")
	}
	if SideFor(30, 0, 40) != SideBottom {
		t.Fatal("lower half must resolve to bottom")
	}
}

type stubExpander struct {
	blocks []Block
}

func (s stubExpander) ExpandPreset(id string) []Block { return s.blocks }

func TestDrop(t *testing.T) {
	s := newTestState(BlockText, BlockHeading)

	// empty payload is a no-op
	s.Drop(DragPayload{}, nil, nil)
	if len(s.Blocks) != 2 {
		t.Fatal("empty drop changed the state")
	}

	// new block by type
	s.Drop(DragPayload{BlockType: BlockDivider}, &DropTarget{BlockId: s.Blocks[0].Id, Side: SideBottom}, nil)
	if s.Blocks[1].Type != BlockDivider {
		t.Fatal("type drop must insert after the target")
	}

	// preset expansion
	preset := stubExpander{blocks: []Block{NewBlock(BlockImage), NewBlock(BlockButton)}}
	s.Drop(DragPayload{PresetId: "hero"}, nil, preset)
	n := len(s.Blocks)
	if s.Blocks[n-2].Type != BlockImage || s.Blocks[n-1].Type != BlockButton {
		t.Fatal("preset drop must append expanded blocks in order")
	}

	// dropping onto an empty canvas yields a single block
	empty := &State{}
	empty.Drop(DragPayload{BlockType: BlockText}, nil, nil)
	if len(empty.Blocks) != 1 || empty.Blocks[0].Type != BlockText {
		t.Fatalf("drop on empty canvas: got %d blocks", len(empty.Blocks))
	}

	// reorder takes precedence over other payload fields
	first := s.Blocks[0].Id
	s.Drop(DragPayload{ReorderId: first, PresetId: "hero"}, nil, preset)
	if s.Blocks[len(s.Blocks)-1].Id != first {
		t.Fatal("reorder payload must win over preset")
	}
	if len(s.Blocks) != n {
		t.Fatal("reorder drop must not add blocks")
	}
}
