package mouse

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/dshills/gesture/internal/engine/selection"
	"github.com/dshills/gesture/internal/input/key"
)

func press(x, y, clicks int) Event {
	return Event{
		Position:   Position{X: x, Y: y},
		Buttons:    Button1,
		Action:     ActionPress,
		ClickCount: clicks,
	}
}

func newTestInterpreter(h *fakeHost, opts ...Option) *Interpreter {
	opts = append([]Option{WithPlatform(PlatformOther)}, opts...)
	return NewInterpreter(h, opts...)
}

func assertSelections(t *testing.T, h *fakeHost, want []selection.Selection) {
	t.Helper()
	got := h.sels.All()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("selections mismatch (-want +got):\n%s", diff)
	}
}

func TestSingleClickClearsSelection(t *testing.T) {
	h := newFakeHost("hello world\nsecond")
	h.sels.Set(selection.NewRange(0, 5))
	in := newTestInterpreter(h)

	in.OnPress(press(32, 5, 1))

	if h.caret != 3 {
		t.Errorf("caret = %d, want 3", h.caret)
	}
	assertSelections(t, h, nil)
	if h.focusRequests != 1 {
		t.Errorf("focusRequests = %d, want 1", h.focusRequests)
	}
	if h.actionResets != 1 {
		t.Errorf("actionResets = %d, want 1", h.actionResets)
	}
	if h.shape != CursorText {
		t.Errorf("shape = %v, want CursorText", h.shape)
	}
	if !h.blink {
		t.Error("caret blink should be on")
	}
	if diff := cmp.Diff([]int{0}, h.invalidated); diff != "" {
		t.Errorf("invalidated lines mismatch (-want +got):\n%s", diff)
	}

	st := in.State()
	if st.DragStart != 3 || st.DragStartLine != 0 || st.DragStartOffset != 3 {
		t.Errorf("drag start = %d line %d col %d, want 3 line 0 col 3",
			st.DragStart, st.DragStartLine, st.DragStartOffset)
	}
	if st.Dragged {
		t.Error("single click should not mark the press dragged")
	}
}

func TestSingleClickRounding(t *testing.T) {
	tests := []struct {
		name      string
		block     bool
		overwrite bool
		x         int
		want      int
	}{
		{"round left", false, false, 34, 3},
		{"round right", false, false, 36, 4},
		{"block truncates", true, false, 39, 3},
		{"overwrite truncates", false, true, 39, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost("hello world")
			h.block = tt.block
			h.overwrite = tt.overwrite
			in := newTestInterpreter(h)

			in.OnPress(press(tt.x, 0, 1))

			if h.caret != tt.want {
				t.Errorf("caret = %d, want %d", h.caret, tt.want)
			}
		})
	}
}

func TestSingleClickOnSecondLine(t *testing.T) {
	h := newFakeHost("hello\nworld")
	in := newTestInterpreter(h)

	in.OnPress(press(20, 25, 1))

	if h.caret != 8 {
		t.Errorf("caret = %d, want 8", h.caret)
	}
	st := in.State()
	if st.DragStartLine != 1 || st.DragStartOffset != 2 {
		t.Errorf("drag start line %d col %d, want line 1 col 2",
			st.DragStartLine, st.DragStartOffset)
	}
}

func TestDoubleClickSelectsWord(t *testing.T) {
	tests := []struct {
		name      string
		text      string
		noWordSep string
		x, y      int
		want      selection.Selection
		caret     int
	}{
		{"underscore splits", "foo_bar baz", "", 10, 0, selection.NewRange(0, 3), 3},
		{"underscore joins", "foo_bar baz", "_", 10, 0, selection.NewRange(0, 7), 7},
		{"last word", "foo_bar baz", "", 90, 0, selection.NewRange(8, 11), 11},
		{"line end", "foo bar\nx", "", 200, 0, selection.NewRange(4, 7), 7},
		{"second line", "foo\nbar baz", "", 60, 20, selection.NewRange(8, 11), 11},
		{"whitespace run", "a   b", "", 20, 0, selection.NewRange(1, 4), 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost(tt.text)
			h.noWordSep = tt.noWordSep
			in := newTestInterpreter(h)

			in.OnPress(press(tt.x, tt.y, 2))

			assertSelections(t, h, []selection.Selection{tt.want})
			if h.caret != tt.caret {
				t.Errorf("caret = %d, want %d", h.caret, tt.caret)
			}
			if !in.State().Dragged {
				t.Error("double click should mark the press dragged")
			}
		})
	}
}

func TestDoubleClickJoinsSymbols(t *testing.T) {
	tests := []struct {
		join bool
		want selection.Selection
	}{
		{false, selection.NewRange(3, 4)},
		{true, selection.NewRange(2, 5)},
	}

	for _, tt := range tests {
		h := newFakeHost("ab+=-cd")
		h.join = tt.join
		in := newTestInterpreter(h)

		in.OnPress(press(30, 0, 2))

		assertSelections(t, h, []selection.Selection{tt.want})
	}
}

func TestDoubleClickEmptyLine(t *testing.T) {
	h := newFakeHost("a\n\nb")
	h.caret = 4
	in := newTestInterpreter(h)

	in.OnPress(press(0, 20, 2))

	assertSelections(t, h, nil)
	if h.caret != 4 {
		t.Errorf("caret = %d, want 4", h.caret)
	}
	if in.State().Dragged {
		t.Error("double click on an empty line should not mark the press dragged")
	}
}

func TestTripleClickSelectsLine(t *testing.T) {
	tests := []struct {
		name   string
		y      int
		clicks int
		want   selection.Selection
	}{
		{"middle line keeps newline", 25, 3, selection.NewRange(4, 8)},
		{"first line", 0, 3, selection.NewRange(0, 4)},
		{"last line", 45, 3, selection.NewRange(8, 13)},
		{"more clicks", 25, 5, selection.NewRange(4, 8)},
		{"zero count", 25, 0, selection.NewRange(4, 8)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost("one\ntwo\nthree")
			in := newTestInterpreter(h)

			in.OnPress(press(10, tt.y, tt.clicks))

			assertSelections(t, h, []selection.Selection{tt.want})
			if h.caret != tt.want.End {
				t.Errorf("caret = %d, want %d", h.caret, tt.want.End)
			}
			if !in.State().Dragged {
				t.Error("triple click should mark the press dragged")
			}
		})
	}
}

func TestMultipleSelection(t *testing.T) {
	h := newFakeHost("foo bar baz")
	h.multi = true
	h.sels.Set(selection.NewRange(0, 3))
	in := newTestInterpreter(h)

	in.OnPress(press(90, 0, 2))

	assertSelections(t, h, []selection.Selection{
		selection.NewRange(0, 3),
		selection.NewRange(8, 11),
	})

	// a single click keeps existing selections
	in.OnPress(press(50, 0, 1))
	if got := h.sels.Count(); got != 2 {
		t.Errorf("selection count after single click = %d, want 2", got)
	}
	if h.caret != 5 {
		t.Errorf("caret = %d, want 5", h.caret)
	}
}

func TestShiftClickExtendsFromMark(t *testing.T) {
	h := newFakeHost("hello world")
	h.caret = 2
	in := newTestInterpreter(h)

	ev := press(80, 0, 1)
	ev.Modifiers = key.ModShift
	in.OnPress(ev)

	assertSelections(t, h, []selection.Selection{selection.NewRange(2, 8)})
	if h.caret != 8 {
		t.Errorf("caret = %d, want 8", h.caret)
	}
	st := in.State()
	if st.DragStart != 2 || st.DragStartLine != 0 || st.DragStartOffset != 2 {
		t.Errorf("drag start = %d line %d col %d, want the mark at 2",
			st.DragStart, st.DragStartLine, st.DragStartOffset)
	}
	if !st.Dragged {
		t.Error("shift click should mark the press dragged")
	}

	// a second shift click resizes from the same anchor
	ev = press(40, 0, 1)
	ev.Modifiers = key.ModShift
	in.OnPress(ev)

	assertSelections(t, h, []selection.Selection{selection.NewRange(2, 4)})
	if h.caret != 4 {
		t.Errorf("caret = %d, want 4", h.caret)
	}
}

func TestShiftClickAcrossLines(t *testing.T) {
	h := newFakeHost("one\ntwo\nthree")
	h.caret = 9
	in := newTestInterpreter(h)

	ev := press(10, 0, 1)
	ev.Modifiers = key.ModShift
	in.OnPress(ev)

	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 9)})
	st := in.State()
	if st.DragStart != 9 || st.DragStartLine != 2 || st.DragStartOffset != 1 {
		t.Errorf("drag start = %d line %d col %d, want 9 line 2 col 1",
			st.DragStart, st.DragStartLine, st.DragStartOffset)
	}
}

func TestQuickCopyPress(t *testing.T) {
	SetFocused(nil)
	h := newFakeHost("hello world")
	h.quickCopy = true
	h.caret = 1
	h.sels.Set(selection.NewRange(0, 5))
	in := newTestInterpreter(h)

	ev := press(80, 0, 2)
	ev.Buttons = Button2
	in.OnPress(ev)

	if h.caret != 1 {
		t.Errorf("caret = %d, want 1", h.caret)
	}
	assertSelections(t, h, []selection.Selection{selection.NewRange(0, 5)})
	if h.focusRequests != 0 {
		t.Errorf("focusRequests = %d, want 0", h.focusRequests)
	}
	if Focused() != nil {
		t.Error("quick copy press should not take focus")
	}
	st := in.State()
	if !st.QuickCopyDrag {
		t.Error("QuickCopyDrag should be set")
	}
	if st.Dragged {
		t.Error("a double middle click takes the single click path")
	}
	if st.DragStart != 8 {
		t.Errorf("DragStart = %d, want 8", st.DragStart)
	}
}

func TestQuickCopyDisabledMiddleClick(t *testing.T) {
	h := newFakeHost("hello world")
	in := newTestInterpreter(h)

	ev := press(80, 0, 1)
	ev.Buttons = Button2
	in.OnPress(ev)

	if in.State().QuickCopyDrag {
		t.Error("QuickCopyDrag requires quick copy to be enabled")
	}
	if h.caret != 8 {
		t.Errorf("caret = %d, want 8", h.caret)
	}
}

func TestQuickCopyOnMac(t *testing.T) {
	h := newFakeHost("hello world")
	h.quickCopy = true
	in := NewInterpreter(h, WithPlatform(PlatformMac))

	ev := press(80, 0, 1)
	ev.Modifiers = key.ModAlt
	in.OnPress(ev)

	if !in.State().QuickCopyDrag {
		t.Error("Alt with Button1 is the middle button on macOS")
	}
	if h.caret != 0 {
		t.Errorf("caret = %d, want 0", h.caret)
	}
}

func TestPressInsideSelectionMaybeDragAndDrop(t *testing.T) {
	h := newFakeHost("hello world")
	h.drag = true
	h.caret = 5
	h.sels.Set(selection.NewRange(0, 5))
	in := newTestInterpreter(h)

	in.OnPress(press(20, 0, 1))

	if !in.State().MaybeDragAndDrop {
		t.Error("MaybeDragAndDrop should be set")
	}
	if h.caret != 2 {
		t.Errorf("caret = %d, want 2", h.caret)
	}
	assertSelections(t, h, []selection.Selection{selection.NewRange(0, 5)})

	in.OnRelease(Event{Position: Position{X: 20}, Buttons: Button1, Action: ActionRelease})

	assertSelections(t, h, nil)
	if in.State().MaybeDragAndDrop {
		t.Error("release should clear MaybeDragAndDrop")
	}
}

func TestPressInsideSelectionNotDragAndDrop(t *testing.T) {
	tests := []struct {
		name   string
		drag   bool
		clicks int
		mods   key.Modifier
	}{
		{"drag disabled", false, 1, key.ModNone},
		{"double click", true, 2, key.ModNone},
		{"shift held", true, 1, key.ModShift},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost("hello world")
			h.drag = tt.drag
			h.sels.Set(selection.NewRange(0, 5))
			in := newTestInterpreter(h)

			ev := press(20, 0, tt.clicks)
			ev.Modifiers = tt.mods
			in.OnPress(ev)

			if in.State().MaybeDragAndDrop {
				t.Error("MaybeDragAndDrop should not be set")
			}
		})
	}
}

func TestPressWhileLoading(t *testing.T) {
	h := newFakeHost("hello world")
	h.buf.SetLoading(true)
	h.caret = 4
	hooks := &recordingHooks{}
	in := newTestInterpreter(h, WithHooks(hooks))

	in.OnPress(press(80, 0, 1))

	want := []hookCall{
		{"sync", ScopeTextArea},
		{"sync", ScopeMouseHandler},
	}
	if diff := cmp.Diff(want, hooks.calls, cmp.AllowUnexported(hookCall{})); diff != "" {
		t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
	}
	if h.caret != 4 {
		t.Errorf("caret = %d, want 4", h.caret)
	}
	if h.focusRequests != 1 {
		t.Errorf("focusRequests = %d, want 1", h.focusRequests)
	}
	if in.Drag().Active {
		t.Error("no drag should start while loading")
	}
}

func TestHookOrder(t *testing.T) {
	h := newFakeHost("hello world")
	hooks := &recordingHooks{}
	in := newTestInterpreter(h, WithHooks(hooks))

	in.OnPress(press(80, 0, 1))

	want := []hookCall{
		{"sync", ScopeTextArea},
		{"sync", ScopeMouseHandler},
		{"position", ScopeTextArea},
	}
	if diff := cmp.Diff(want, hooks.calls, cmp.AllowUnexported(hookCall{})); diff != "" {
		t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
	}
}

func TestPopupTrigger(t *testing.T) {
	tests := []struct {
		name     string
		platform Platform
		buttons  ButtonMask
		mods     key.Modifier
	}{
		{"right button", PlatformOther, Button3, key.ModNone},
		{"mac right button", PlatformMac, Button3, key.ModNone},
		{"mac control click", PlatformMac, Button1, key.ModCtrl},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost("hello world")
			h.popup = true
			h.caret = 1
			hooks := &recordingHooks{}
			in := NewInterpreter(h, WithPlatform(tt.platform), WithHooks(hooks))

			ev := press(80, 0, 1)
			ev.Buttons = tt.buttons
			ev.Modifiers = tt.mods
			in.OnPress(ev)

			want := []hookCall{
				{"sync", ScopeTextArea},
				{"sync", ScopeMouseHandler},
				{"position", ScopeTextArea},
				{"popup", ScopeMouseHandler},
				{"popup", ScopeTextArea},
			}
			if diff := cmp.Diff(want, hooks.calls, cmp.AllowUnexported(hookCall{})); diff != "" {
				t.Errorf("hook calls mismatch (-want +got):\n%s", diff)
			}
			if h.caret != 1 {
				t.Errorf("caret = %d, want 1", h.caret)
			}
			if h.blink {
				t.Error("a popup press should not touch the caret blink")
			}
			if in.State().DragStart != 8 {
				t.Errorf("DragStart = %d, want 8", in.State().DragStart)
			}
		})
	}
}

func TestRightClickWithoutPopup(t *testing.T) {
	h := newFakeHost("hello world")
	hooks := &recordingHooks{}
	in := newTestInterpreter(h, WithHooks(hooks))

	ev := press(80, 0, 1)
	ev.Buttons = Button3
	in.OnPress(ev)

	for _, c := range hooks.calls {
		if c.name == "popup" {
			t.Fatal("popup hook called without a popup")
		}
	}
	if h.caret != 8 {
		t.Errorf("caret = %d, want 8", h.caret)
	}
}

func TestRectangularClickInVirtualSpace(t *testing.T) {
	tests := []struct {
		name      string
		x         int
		block     bool
		readOnly  bool
		mods      key.Modifier
		ctrlRect  bool
		rect      bool
		wantText  string
		wantStart int
	}{
		{"ctrl rect", 50, false, false, key.ModCtrl, true, false, "ab   ", 5},
		{"ctrl rect rounds up", 56, false, false, key.ModCtrl, true, false, "ab    ", 6},
		{"block caret truncates", 56, true, false, key.ModCtrl, true, false, "ab   ", 5},
		{"rect mode", 50, false, false, key.ModNone, false, true, "ab   ", 5},
		{"ctrl without preference", 50, false, false, key.ModCtrl, false, false, "ab", 2},
		{"preference without ctrl", 50, false, false, key.ModNone, true, false, "ab", 2},
		{"read only", 50, false, true, key.ModCtrl, true, false, "ab", 2},
		{"inside line", 10, false, false, key.ModCtrl, true, false, "ab", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newFakeHost("ab")
			h.block = tt.block
			h.readOnly = tt.readOnly
			h.rect = tt.rect
			in := newTestInterpreter(h, WithHooks(&recordingHooks{ctrlRect: tt.ctrlRect}))

			ev := press(tt.x, 0, 1)
			ev.Modifiers = tt.mods
			in.OnPress(ev)

			if got := h.buf.Text(); got != tt.wantText {
				t.Errorf("text = %q, want %q", got, tt.wantText)
			}
			if got := in.State().DragStart; got != tt.wantStart {
				t.Errorf("DragStart = %d, want %d", got, tt.wantStart)
			}
			if h.caret != tt.wantStart {
				t.Errorf("caret = %d, want %d", h.caret, tt.wantStart)
			}
		})
	}
}

func TestRectangularClickReadOnlyBuffer(t *testing.T) {
	h := newFakeHost("ab")
	h.rect = true
	h.buf.SetReadOnly(true)
	in := newTestInterpreter(h)

	in.OnPress(press(50, 0, 1))

	if got := h.buf.Text(); got != "ab" {
		t.Errorf("text = %q, want %q", got, "ab")
	}
	if got := in.State().DragStart; got != 2 {
		t.Errorf("DragStart = %d, want 2 after a failed insert", got)
	}
}

func TestShiftRectangularClick(t *testing.T) {
	h := newFakeHost("ab")
	h.rect = true
	in := newTestInterpreter(h)

	ev := press(50, 0, 1)
	ev.Modifiers = key.ModShift
	in.OnPress(ev)

	want := selection.NewRect(0, 5)
	want.ExtraEndVirt = 3
	assertSelections(t, h, []selection.Selection{want})
	if h.caret != 5 {
		t.Errorf("caret = %d, want 5", h.caret)
	}
	if got := in.State().DragStart; got != 0 {
		t.Errorf("DragStart = %d, want the mark at 0", got)
	}
}

func TestVirtualColumnsOnlyPastLineEnd(t *testing.T) {
	h := newFakeHost("abc\nlonger line")
	in := newTestInterpreter(h)

	tests := []struct {
		x, y int
		want int
	}{
		{20, 0, 0},
		{30, 0, 0},
		{60, 0, 3},
		{64, 0, 3},
		{66, 0, 4},
		{100, 20, 0},
		{200, 20, 9},
	}

	for _, tt := range tests {
		if got := in.virtualColumns(tt.x, tt.y, true); got != tt.want {
			t.Errorf("virtualColumns(%d, %d) = %d, want %d", tt.x, tt.y, got, tt.want)
		}
	}
}

func TestDragExtendsSelection(t *testing.T) {
	h := newFakeHost("hello world")
	in := newTestInterpreter(h)

	in.OnPress(press(10, 0, 1))
	if !in.Drag().Active {
		t.Fatal("press should start a drag")
	}

	in.OnDrag(Event{Position: Position{X: 40}, Buttons: Button1, Action: ActionDrag})
	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 4)})
	if h.caret != 4 {
		t.Errorf("caret = %d, want 4", h.caret)
	}

	in.OnDrag(Event{Position: Position{X: 80}, Buttons: Button1, Action: ActionDrag})
	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 8)})
	if got := in.Drag().LastPos; got != (Position{X: 80}) {
		t.Errorf("LastPos = %v, want {80 0}", got)
	}
	if !in.State().Dragged {
		t.Error("drag should mark the press dragged")
	}

	in.OnRelease(Event{Position: Position{X: 80}, Buttons: Button1, Action: ActionRelease})
	if in.Drag().Active {
		t.Error("release should end the drag")
	}
	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 8)})

	// motion after release is ignored
	in.OnDrag(Event{Position: Position{X: 20}, Buttons: Button1, Action: ActionDrag})
	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 8)})
}

func TestDragAfterDragAndDropPress(t *testing.T) {
	h := newFakeHost("hello world")
	h.drag = true
	h.sels.Set(selection.NewRange(0, 5))
	in := newTestInterpreter(h)

	in.OnPress(press(20, 0, 1))
	in.OnDrag(Event{Position: Position{X: 80}, Buttons: Button1, Action: ActionDrag})

	assertSelections(t, h, []selection.Selection{selection.NewRange(2, 8)})
	if in.State().MaybeDragAndDrop {
		t.Error("drag should clear MaybeDragAndDrop")
	}

	in.OnRelease(Event{Position: Position{X: 80}, Buttons: Button1, Action: ActionRelease})
	assertSelections(t, h, []selection.Selection{selection.NewRange(2, 8)})
}

func TestQuickCopyDragKeepsCaret(t *testing.T) {
	h := newFakeHost("hello world")
	h.quickCopy = true
	h.caret = 0
	in := newTestInterpreter(h)

	ev := press(10, 0, 1)
	ev.Buttons = Button2
	in.OnPress(ev)
	in.OnDrag(Event{Position: Position{X: 50}, Buttons: Button2, Action: ActionDrag})

	assertSelections(t, h, []selection.Selection{selection.NewRange(1, 5)})
	if h.caret != 0 {
		t.Errorf("caret = %d, want 0", h.caret)
	}
}

func TestDragWithoutPress(t *testing.T) {
	h := newFakeHost("hello world")
	in := newTestInterpreter(h)

	in.OnDrag(Event{Position: Position{X: 40}, Buttons: Button1, Action: ActionDrag})
	in.OnRelease(Event{Position: Position{X: 40}, Buttons: Button1, Action: ActionRelease})

	assertSelections(t, h, nil)
	if h.caret != 0 {
		t.Errorf("caret = %d, want 0", h.caret)
	}
}

func TestFocused(t *testing.T) {
	SetFocused(nil)
	h1 := newFakeHost("one")
	h2 := newFakeHost("two")
	h1.quickCopy = true

	NewInterpreter(h1).OnPress(press(0, 0, 1))
	if Focused() != h1 {
		t.Error("first press should focus h1")
	}

	NewInterpreter(h2).OnPress(press(0, 0, 1))
	if Focused() != h2 {
		t.Error("second press should focus h2")
	}

	ev := press(0, 0, 1)
	ev.Buttons = Button2
	NewInterpreter(h1, WithPlatform(PlatformOther)).OnPress(ev)
	if Focused() != h2 {
		t.Error("quick copy press should leave focus on h2")
	}
	SetFocused(nil)
}

func TestWithHooksNil(t *testing.T) {
	h := newFakeHost(strings.Repeat("x", 4))
	in := NewInterpreter(h, WithHooks(nil))

	if _, ok := in.hooks.(NopHooks); !ok {
		t.Errorf("hooks = %T, want NopHooks", in.hooks)
	}
	in.OnPress(press(10, 0, 1))
	if h.caret != 1 {
		t.Errorf("caret = %d, want 1", h.caret)
	}
}

func TestMultiHooks(t *testing.T) {
	a, b := &recordingHooks{}, &recordingHooks{ctrlRect: true}
	h := newFakeHost("ab")
	in := newTestInterpreter(h, WithHooks(MultiHooks{a, b}))

	in.OnPress(press(0, 0, 1))

	if len(a.calls) != 3 || len(b.calls) != 3 {
		t.Errorf("calls = %d, %d, want 3 each", len(a.calls), len(b.calls))
	}
	if !in.State().CtrlForRectangularSelection {
		t.Error("the last hook should decide CtrlForRectangularSelection")
	}
}
