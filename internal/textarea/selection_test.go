package textarea

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gesture/internal/engine/selection"
)

func TestMarkPosition(t *testing.T) {
	tests := []struct {
		name  string
		sel   *selection.Selection
		caret int
		want  int
	}{
		{"no selection", nil, 4, 4},
		{"caret at end", &selection.Selection{Start: 2, End: 6}, 6, 2},
		{"caret at start", &selection.Selection{Start: 2, End: 6}, 2, 6},
		{"caret inside", &selection.Selection{Start: 2, End: 6}, 4, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestArea("hello world")
			if tt.sel != nil {
				ta.SetSelection(*tt.sel)
			}
			ta.MoveCaretPosition(tt.caret, false)

			if got := ta.MarkPosition(); got != tt.want {
				t.Errorf("MarkPosition() = %d, want %d", got, tt.want)
			}
			if got := ta.MarkLine(); got != 0 {
				t.Errorf("MarkLine() = %d, want 0", got)
			}
		})
	}
}

func TestResizeSelection(t *testing.T) {
	reversed := selection.NewRect(2, 8)
	reversed.ExtraStartVirt = 3
	forward := selection.NewRect(2, 8)
	forward.ExtraEndVirt = 3

	tests := []struct {
		name    string
		initial []selection.Selection
		anchor  int
		end     int
		extra   int
		rect    bool
		want    []selection.Selection
	}{
		{
			name:   "new range",
			anchor: 2,
			end:    6,
			want:   []selection.Selection{selection.NewRange(2, 6)},
		},
		{
			name:    "replaces selection at anchor",
			initial: []selection.Selection{selection.NewRange(2, 6)},
			anchor:  2,
			end:     4,
			want:    []selection.Selection{selection.NewRange(2, 4)},
		},
		{
			name:    "keeps other selections",
			initial: []selection.Selection{selection.NewRange(0, 1), selection.NewRange(5, 7)},
			anchor:  7,
			end:     9,
			want:    []selection.Selection{selection.NewRange(0, 1), selection.NewRange(7, 9)},
		},
		{
			name:   "rectangle forward",
			anchor: 2,
			end:    8,
			extra:  3,
			rect:   true,
			want:   []selection.Selection{forward},
		},
		{
			name:   "rectangle reversed",
			anchor: 8,
			end:    2,
			extra:  3,
			rect:   true,
			want:   []selection.Selection{reversed},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ta := newTestArea("hello world")
			ta.features.MultipleSelection = true
			for _, s := range tt.initial {
				ta.AddToSelection(s)
			}

			ta.ResizeSelection(tt.anchor, tt.end, tt.extra, tt.rect)

			if diff := cmp.Diff(tt.want, ta.Selections()); diff != "" {
				t.Errorf("selections mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestInsideSelection(t *testing.T) {
	ta := newTestArea("hello world")
	ta.SetSelection(selection.NewRange(2, 5))

	tests := []struct {
		x, y int
		want bool
	}{
		{25, 5, true},
		{50, 5, true},
		{15, 5, false},
		{55, 5, false},
	}

	for _, tt := range tests {
		if got := ta.InsideSelection(tt.x, tt.y); got != tt.want {
			t.Errorf("InsideSelection(%d, %d) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestInsideSelectionMultiLine(t *testing.T) {
	ta := newTestArea("ab\ncd")
	ta.SetSelection(selection.NewRange(1, 4))

	if !ta.InsideSelection(150, 5) {
		t.Error("space past a selected line end should be inside")
	}
	if ta.InsideSelection(5, 5) {
		t.Error("text before the selection start should be outside")
	}
}

func TestInsideRectangle(t *testing.T) {
	ta := newTestArea("abcd\nabcd\nabcd")
	ta.SetSelection(selection.NewRect(1, 13))

	if !ta.InsideSelection(25, 25) {
		t.Error("(25, 25) should be inside the rectangle")
	}
	if ta.InsideSelection(35, 25) {
		t.Error("(35, 25) should be outside the rectangle")
	}

	if !ta.IsSelected(6) {
		t.Error("offset 6 should be selected")
	}
	if ta.IsSelected(8) {
		t.Error("offset 8 should not be selected")
	}
	if got := ta.SelectedText(); got != "bc\nbc\nbc" {
		t.Errorf("SelectedText() = %q, want %q", got, "bc\nbc\nbc")
	}
}

func TestSelectedText(t *testing.T) {
	ta := newTestArea("hello world")
	ta.features.MultipleSelection = true
	ta.AddToSelection(selection.NewRange(0, 5))
	ta.AddToSelection(selection.NewRange(6, 11))

	if got := ta.SelectedText(); got != "hello\nworld" {
		t.Errorf("SelectedText() = %q, want %q", got, "hello\nworld")
	}
	if !ta.IsSelected(0) || ta.IsSelected(5) {
		t.Error("IsSelected should cover [0,5) and [6,11) only")
	}
}

func TestSelectAll(t *testing.T) {
	ta := newTestArea("one\ntwo")
	ta.SelectAll()

	if diff := cmp.Diff([]selection.Selection{selection.NewRange(0, 7)}, ta.Selections()); diff != "" {
		t.Errorf("selections mismatch (-want +got):\n%s", diff)
	}
	if ta.Caret() != 7 {
		t.Errorf("Caret() = %d, want 7", ta.Caret())
	}

	ta.SelectNone()
	if len(ta.Selections()) != 0 {
		t.Error("SelectNone should clear")
	}
}

func TestSelectionsFollowEdits(t *testing.T) {
	ta := newTestArea("hello world")
	ta.SetSelection(selection.NewRange(2, 5))

	if err := ta.Insert(0, "XX"); err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if diff := cmp.Diff([]selection.Selection{selection.NewRange(4, 7)}, ta.Selections()); diff != "" {
		t.Errorf("selections mismatch (-want +got):\n%s", diff)
	}
}
