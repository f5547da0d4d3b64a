package listkit

import (
	"fmt"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// textRecorder keeps the text drawn by the last Repaint.
type textRecorder struct {
	texts []string
}

func (r *textRecorder) Render(dl *DrawList) error {
	for _, run := range dl.TextRuns {
		r.texts = append(r.texts, run.Text)
	}
	return nil
}

func (r *textRecorder) FontTextureID() uint32 { return 1 }

func (r *textRecorder) Resize(width, height int) {}

// listHarness drives a ListView through scripted frames.
type listHarness struct {
	t    *testing.T
	ui   *GUI
	rec  *textRecorder
	q    *EventQueue
	lv   *ListView
	size Vec2
	now  float64
}

func newListHarness(t *testing.T, lv *ListView, w, h float32) *listHarness {
	t.Helper()
	rec := &textRecorder{}
	hs := &listHarness{t: t, ui: New(rec), rec: rec, q: NewEventQueue(), lv: lv, size: Vec2{w, h}}
	hs.frame()
	return hs
}

// frame runs the queued events, a Layout and a Repaint pass.
func (h *listHarness) frame() {
	h.t.Helper()
	h.now += 1
	h.rec.texts = h.rec.texts[:0]
	require.NoError(h.t, h.ui.Frame(h.q.Drain(), h.size, h.now, h.lv.Display))
}

func (h *listHarness) key(k Key) {
	h.q.KeyPressed(k, 0)
	h.frame()
}

func (h *listHarness) click(p Vec2, b MouseButton) {
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(b, true, 0)
	h.q.SetMouseButton(b, false, 0)
	h.frame()
}

// rowTop returns the top of the visible row slot.
func (h *listHarness) rowTop(slot int) float32 {
	return h.lv.layout.ListContent.Y + float32(slot)*h.lv.theme.Element.Height
}

// handle returns a point on the drag handle of the visible row slot.
func (h *listHarness) handle(slot int) Vec2 {
	r := h.lv.dragHandleRect(Rect{X: h.lv.layout.ListContent.X, Y: h.rowTop(slot), W: 100, H: 20})
	return Vec2{r.X + r.W/2, r.Y + r.H/2}
}

func (h *listHarness) label(slot int) Vec2 {
	r := h.lv.labelRect(Rect{X: h.lv.layout.ListContent.X, Y: h.rowTop(slot), W: h.lv.layout.ListContent.W, H: 20})
	return Vec2{r.X + 10, r.Y + r.H/2}
}

func (h *listHarness) drew(text string) bool {
	return slices.Contains(h.rec.texts, text)
}

func letters(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%02d", i)
	}
	return out
}

type recorder struct {
	events []string
}

func (r *recorder) callbacks() ListCallbacks {
	add := func(s string) { r.events = append(r.events, s) }
	return ListCallbacks{
		SelectionChanged:     func() { add("selection") },
		ListChanged:          func() { add("changed") },
		ElementAdded:         func(i int) { add(fmt.Sprintf("added %d", i)) },
		ElementRemoved:       func(i int) { add(fmt.Sprintf("removed %d", i)) },
		Reordered:            func() { add("reordered") },
		ReorderedWithDetails: func(from, to int) { add(fmt.Sprintf("reordered %d->%d", from, to)) },
		UndoCheckpoint:       func(msg string) { add("undo " + msg) },
	}
}

func (r *recorder) has(event string) bool {
	return slices.Contains(r.events, event)
}

func TestPaginationCount(t *testing.T) {
	tests := []struct {
		count  int
		height float32
	}{
		{0, 200}, {1, 200}, {8, 200}, {9, 200}, {14, 200}, {15, 200},
		{50, 244}, {51, 244}, {3, 60}, {200, 600},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d in %v", tt.count, tt.height), func(t *testing.T) {
			items := letters(tt.count)
			lv := NewListView(NewSliceSource(&items))
			newListHarness(t, lv, 200, tt.height)
			l := lv.Layout()
			st := lv.State()
			if tt.count > l.MaxElementCount {
				require.True(t, l.Paginated)
				require.Positive(t, l.PageElementCount)
				want := (tt.count + l.PageElementCount - 1) / l.PageElementCount
				assert.Equal(t, want, st.PagesCount)
			} else {
				assert.False(t, l.Paginated)
				assert.Equal(t, 1, st.PagesCount)
			}
		})
	}
}

func TestPageSizeFromHeight(t *testing.T) {
	items := letters(50)
	lv := NewListView(NewSliceSource(&items))
	newListHarness(t, lv, 200, 244)

	l := lv.Layout()
	assert.Equal(t, 11, l.MaxElementCount)
	assert.Equal(t, 10, l.PageElementCount)
	assert.Equal(t, 5, lv.PagesCount())
}

func TestSelectionFollowsKeyboardAcrossPages(t *testing.T) {
	items := letters(30)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	require.True(t, lv.Layout().Paginated)

	for range 30 {
		h.key(KeyDown)
		l := lv.Layout()
		st := lv.State()
		di := st.DisplayIndexOf(lv.SelectedIndex())
		assert.GreaterOrEqual(t, di, l.PageBeginIndex)
		assert.Less(t, di, l.PageBeginIndex+l.PageElementCount)
	}
	assert.Equal(t, 29, lv.SelectedIndex())
	assert.Equal(t, lv.PagesCount()-1, lv.CurrentPage())

	for range 29 {
		h.key(KeyUp)
		l := lv.Layout()
		st := lv.State()
		di := st.DisplayIndexOf(lv.SelectedIndex())
		assert.GreaterOrEqual(t, di, l.PageBeginIndex)
		assert.Less(t, di, l.PageBeginIndex+l.PageElementCount)
	}
	assert.Equal(t, 0, lv.SelectedIndex())
	assert.Equal(t, 0, lv.CurrentPage())
}

func TestSetSelectedIndexMovesPage(t *testing.T) {
	items := letters(30)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)

	lv.SetSelectedIndex(20)
	h.frame()
	l := lv.Layout()
	assert.Equal(t, 20/l.PageElementCount, lv.CurrentPage())
	assert.True(t, h.drew("item-20"))
}

func TestMoveToSameIndexIsNoop(t *testing.T) {
	items := letters(5)
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	lv.SetSelectedIndex(2)
	rec.events = nil

	for i := range items {
		assert.False(t, lv.MoveElement(i, i))
	}
	assert.Equal(t, letters(5), items)
	assert.Equal(t, 2, lv.SelectedIndex())
	assert.Empty(t, rec.events)
}

func TestDragReorder(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e"}
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	h := newListHarness(t, lv, 200, 200)
	require.False(t, lv.Layout().Paginated)

	p := h.handle(1)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	// Row center lands on slot 3.
	h.q.MouseMoved(p.X, p.Y+30, 0)
	h.frame()

	st := lv.State()
	require.True(t, st.Dragging)
	assert.Equal(t, 1, st.StartDragIndex)
	assert.Equal(t, 3, st.CurrentDragIndex)

	h.q.SetMouseButton(MouseButtonLeft, false, 0)
	h.frame()

	assert.False(t, lv.State().Dragging)
	assert.Equal(t, []string{"a", "c", "d", "b", "e"}, items)
	assert.Equal(t, 3, lv.SelectedIndex())
	assert.True(t, rec.has("reordered"))
	assert.True(t, rec.has("reordered 1->3"))
	assert.True(t, rec.has("undo Reorder b"))
}

func TestDragWithoutMovementKeepsOrder(t *testing.T) {
	items := []string{"a", "b", "c"}
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	h := newListHarness(t, lv, 200, 200)

	p := h.handle(0)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.MouseMoved(p.X, p.Y+3, 0)
	h.q.SetMouseButton(MouseButtonLeft, false, 0)
	h.frame()

	assert.Equal(t, []string{"a", "b", "c"}, items)
	assert.False(t, rec.has("reordered"))
}

func TestDragOutsideHandleDoesNotStart(t *testing.T) {
	items := []string{"a", "b", "c"}
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)

	p := h.label(0)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.MouseMoved(p.X, p.Y+40, 0)
	h.frame()

	assert.False(t, lv.State().Dragging)
}

func TestDragStartGates(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)

	p := h.handle(1)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	// Jumps of 5px or more are not drags.
	h.q.Push(Event{Type: EventMouseDrag, Pos: Vec2{p.X, p.Y + 0.5}, Delta: Vec2{0, 5}, Button: MouseButtonLeft})
	// Neither is a first drag event more than 1px from the press.
	h.q.Push(Event{Type: EventMouseDrag, Pos: Vec2{p.X, p.Y + 2}, Delta: Vec2{0, 0.5}, Button: MouseButtonLeft})
	h.frame()
	require.False(t, lv.State().Dragging)

	// The press stays armed, so a fine-grained drag still starts.
	h.q.Push(Event{Type: EventMouseDrag, Pos: Vec2{p.X, p.Y + 0.5}, Delta: Vec2{0, 0.5}, Button: MouseButtonLeft})
	h.frame()
	assert.True(t, lv.State().Dragging)
	assert.Equal(t, 1, lv.State().StartDragIndex)
}

func TestDragTargetIsClamped(t *testing.T) {
	t.Run("unpaginated", func(t *testing.T) {
		items := letters(5)
		lv := NewListView(NewSliceSource(&items))
		h := newListHarness(t, lv, 200, 200)

		p := h.handle(2)
		h.q.MouseMoved(p.X, p.Y, 0)
		h.q.SetMouseButton(MouseButtonLeft, true, 0)
		for _, y := range []float32{-5000, 5000, -1, 10000, p.Y} {
			h.q.MouseMoved(p.X, y, 0)
			h.frame()
			st := lv.State()
			require.True(t, st.Dragging)
			assert.GreaterOrEqual(t, st.CurrentDragIndex, 0)
			assert.LessOrEqual(t, st.CurrentDragIndex, 4)
		}
	})

	t.Run("paginated", func(t *testing.T) {
		items := letters(30)
		lv := NewListView(NewSliceSource(&items))
		h := newListHarness(t, lv, 200, 200)
		lv.SetCurrentPage(1)
		h.frame()
		l := lv.Layout()
		require.True(t, l.Paginated)

		p := h.handle(1)
		h.q.MouseMoved(p.X, p.Y, 0)
		h.q.SetMouseButton(MouseButtonLeft, true, 0)
		for _, y := range []float32{-5000, 5000} {
			h.q.MouseMoved(p.X, y, 0)
			h.frame()
			st := lv.State()
			assert.GreaterOrEqual(t, st.CurrentDragIndex, l.PageBeginIndex)
			assert.Less(t, st.CurrentDragIndex, l.PageBeginIndex+l.PageElementCount)
		}

		h.q.SetMouseButton(MouseButtonLeft, false, 0)
		h.frame()
		assert.Equal(t, l.PageBeginIndex+l.PageElementCount-1, lv.SelectedIndex())
	})
}

func TestDragIgnoredWhileSearching(t *testing.T) {
	items := []string{"apple", "apricot", "banana"}
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	lv.SetSearchQuery("ap")
	h.frame()

	p := h.handle(0)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.MouseMoved(p.X, p.Y+30, 0)
	h.frame()
	assert.False(t, lv.State().Dragging)
}

func TestDragStaleStartIndex(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)

	p := h.handle(4)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.MouseMoved(p.X, p.Y-25, 0)
	h.frame()
	require.True(t, lv.State().Dragging)

	// The owner shrinks the collection mid-drag.
	items = items[:2]
	h.q.SetMouseButton(MouseButtonLeft, false, 0)
	h.frame()

	assert.False(t, lv.State().Dragging)
	assert.Equal(t, letters(2), items)
}

func TestSearchRoundTrip(t *testing.T) {
	items := letters(40)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	lv.SetCurrentPage(2)
	h.frame()

	for _, q := range []string{"item-1", "zzz", "0"} {
		lv.SetSearchQuery(q)
		h.frame()
		assert.True(t, lv.IsSearchActive())

		lv.SetSearchQuery("")
		h.frame()
		st := lv.State()
		assert.False(t, lv.IsSearchActive())
		assert.Empty(t, st.FilteredIndices)
		assert.Equal(t, 0, lv.CurrentPage())
	}
}

func TestSearchNarrowsPagination(t *testing.T) {
	items := letters(50)
	items[7], items[23], items[41] = "golden apple", "apple pie", "crab apple"
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 244)
	require.Equal(t, 5, lv.PagesCount())
	lv.SetCurrentPage(3)
	h.frame()

	lv.SetSearchQuery("apple")
	h.frame()

	assert.Equal(t, 1, lv.PagesCount())
	assert.Equal(t, 0, lv.CurrentPage())
	assert.Equal(t, []int{7, 23, 41}, lv.State().FilteredIndices)
	for _, s := range []string{"golden apple", "apple pie", "crab apple"} {
		assert.True(t, h.drew(s), s)
	}
	for _, s := range h.rec.texts {
		assert.False(t, strings.HasPrefix(s, "item-"), s)
	}

	lv.SetSearchQuery("no such thing")
	h.frame()
	assert.True(t, h.drew("No results found"))
}

func TestPaginationLabel(t *testing.T) {
	items := letters(50)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 244)
	assert.True(t, h.drew("1 / 5"))

	lv.SetSearchQuery("item-1")
	h.frame()
	assert.Equal(t, 10, len(lv.State().FilteredIndices))
	assert.False(t, lv.Layout().Paginated)

	lv.SetSearchQuery("item")
	h.frame()
	assert.True(t, h.drew("1 / 5 (50 results)"))
}

func TestEmptyListMessage(t *testing.T) {
	var items []string
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	assert.True(t, h.drew("List is empty"))
}

func TestSearchStaysInSyncWithOwnerChanges(t *testing.T) {
	items := []string{"apple", "banana"}
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	lv.SetSearchQuery("an")
	h.frame()
	require.Equal(t, []int{1}, lv.State().FilteredIndices)

	items = append(items, "mango")
	h.frame()
	assert.Equal(t, []int{1, 2}, lv.State().FilteredIndices)
}

func TestOwnerShrinkClearsSelection(t *testing.T) {
	items := letters(5)
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	h := newListHarness(t, lv, 200, 200)
	lv.SetSelectedIndex(4)
	rec.events = nil

	items = items[:2]
	h.frame()
	assert.Equal(t, -1, lv.SelectedIndex())
	assert.Equal(t, []string{"selection"}, rec.events)
}

func TestKeyboardNavigation(t *testing.T) {
	items := letters(30)
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	h := newListHarness(t, lv, 200, 200)
	last := lv.PagesCount() - 1

	h.key(KeyDown)
	assert.Equal(t, 0, lv.SelectedIndex())

	h.key(KeyEnd)
	assert.Equal(t, 29, lv.SelectedIndex())
	assert.Equal(t, last, lv.CurrentPage())

	h.key(KeyHome)
	assert.Equal(t, 0, lv.SelectedIndex())
	assert.Equal(t, 0, lv.CurrentPage())

	h.key(KeyRight)
	assert.Equal(t, 1, lv.CurrentPage())
	assert.Equal(t, -1, lv.SelectedIndex())

	h.key(KeyPageDown)
	assert.Equal(t, last, lv.CurrentPage())

	h.key(KeyLeft)
	assert.Equal(t, last-1, lv.CurrentPage())

	h.key(KeyPageUp)
	assert.Equal(t, 0, lv.CurrentPage())

	h.key(KeyDown)
	h.key(KeyDown)
	require.Equal(t, 1, lv.SelectedIndex())
	h.key(KeyDelete)
	assert.Len(t, items, 29)
	assert.Equal(t, "item-02", items[1])
	assert.Equal(t, 1, lv.SelectedIndex())
	assert.True(t, rec.has("removed 1"))
}

func TestKeyboardFollowsFilter(t *testing.T) {
	items := []string{"apple", "banana", "apricot", "cherry", "avocado"}
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	lv.SetSearchQuery("a")
	h.frame()
	lv.SetSearchQuery("ap")
	h.frame()

	h.key(KeyDown)
	assert.Equal(t, 0, lv.SelectedIndex())
	h.key(KeyDown)
	assert.Equal(t, 2, lv.SelectedIndex())
	h.key(KeyDown)
	assert.Equal(t, 2, lv.SelectedIndex())
	h.key(KeyUp)
	assert.Equal(t, 0, lv.SelectedIndex())
}

func TestScrollPages(t *testing.T) {
	items := letters(30)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	c := lv.Layout().ListContent
	h.q.MouseMoved(c.X+20, c.Y+20, 0)

	h.q.Scrolled(0, 1, 0)
	h.frame()
	assert.Equal(t, 1, lv.CurrentPage())

	h.q.Scrolled(0, -1, 0)
	h.q.Scrolled(0, -1, 0)
	h.frame()
	assert.Equal(t, 0, lv.CurrentPage())

	// Outside the list nothing happens.
	h.q.MouseMoved(c.X+20, lv.Layout().FooterButtons.Y+5, 0)
	h.q.Scrolled(0, 1, 0)
	h.frame()
	assert.Equal(t, 0, lv.CurrentPage())
}

func TestPaginationButtons(t *testing.T) {
	items := letters(50)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 244)
	center := func(r Rect) Vec2 { return Vec2{r.X + r.W/2, r.Y + r.H/2} }

	h.click(center(lv.Layout().LastPage), MouseButtonLeft)
	assert.Equal(t, 4, lv.CurrentPage())
	h.click(center(lv.Layout().PrevPage), MouseButtonLeft)
	assert.Equal(t, 3, lv.CurrentPage())
	h.click(center(lv.Layout().FirstPage), MouseButtonLeft)
	assert.Equal(t, 0, lv.CurrentPage())
	h.click(center(lv.Layout().NextPage), MouseButtonLeft)
	assert.Equal(t, 1, lv.CurrentPage())
	assert.True(t, h.drew("2 / 5"))
}

func TestClickSelectsAndDoubleClickNotifies(t *testing.T) {
	items := letters(5)
	var opened []int
	lv := NewListView(NewSliceSource(&items), WithCallbacks(ListCallbacks{
		ElementDoubleClicked: func(i int) { opened = append(opened, i) },
	}))
	h := newListHarness(t, lv, 200, 200)

	p := h.label(3)
	h.q.MouseMoved(p.X, p.Y, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.SetMouseButton(MouseButtonLeft, false, 0.0)
	h.frame()
	assert.Equal(t, 3, lv.SelectedIndex())
	assert.Empty(t, opened)

	h.q.SetMouseButton(MouseButtonLeft, true, 10)
	h.q.SetMouseButton(MouseButtonLeft, false, 10.1)
	h.q.SetMouseButton(MouseButtonLeft, true, 10.15)
	h.q.SetMouseButton(MouseButtonLeft, false, 10.2)
	h.frame()
	assert.Equal(t, []int{3}, opened)

	// A third quick click starts a new pair instead of firing again.
	h.q.SetMouseButton(MouseButtonLeft, true, 10.22)
	h.q.SetMouseButton(MouseButtonLeft, false, 10.25)
	h.frame()
	assert.Equal(t, []int{3}, opened)

	// Slow clicks are two single clicks.
	h.q.SetMouseButton(MouseButtonLeft, true, 20)
	h.q.SetMouseButton(MouseButtonLeft, false, 20)
	h.q.SetMouseButton(MouseButtonLeft, true, 21)
	h.q.SetMouseButton(MouseButtonLeft, false, 21)
	h.frame()
	assert.Equal(t, []int{3}, opened)
}

func TestRightClickOpensContextMenu(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 300, 300)

	p := h.label(2)
	h.click(p, MouseButtonRight)
	assert.Equal(t, 2, lv.SelectedIndex())
	require.True(t, lv.Menu().IsOpen())
	assert.True(t, h.drew("Duplicate"))
	assert.True(t, h.drew("Move to Top"))

	labels := make([]string, 0)
	for _, it := range lv.Menu().Items() {
		labels = append(labels, it.Label)
	}
	assert.Equal(t, []string{"Duplicate", "", "Move to Top", "Move to Bottom", "", "Delete"}, labels)

	// Keyboard: first selectable entry is Duplicate.
	h.key(KeyDown)
	h.key(KeyEnter)
	assert.False(t, lv.Menu().IsOpen())
	assert.Equal(t, []string{"item-00", "item-01", "item-02", "item-02", "item-03", "item-04"}, items)
	assert.Equal(t, 3, lv.SelectedIndex())
}

func TestContextMenuClickOutsideCloses(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 300, 300)

	h.click(h.label(0), MouseButtonRight)
	require.True(t, lv.Menu().IsOpen())

	h.click(Vec2{290, 290}, MouseButtonLeft)
	assert.False(t, lv.Menu().IsOpen())
	assert.Equal(t, letters(5), items)
}

func TestContextMenuCallbackReplacesMenu(t *testing.T) {
	items := letters(5)
	var asked []int
	lv := NewListView(NewSliceSource(&items), WithCallbacks(ListCallbacks{
		ContextMenu: func(i int) { asked = append(asked, i) },
	}))
	h := newListHarness(t, lv, 300, 300)

	h.click(h.label(1), MouseButtonRight)
	assert.Equal(t, []int{1}, asked)
	assert.False(t, lv.Menu().IsOpen())
}

func TestFooterButtons(t *testing.T) {
	items := letters(3)
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))
	h := newListHarness(t, lv, 200, 200)

	tab := lv.footerTab()
	f := lv.theme.Footer
	add := Vec2{tab.X + f.PaddingLeft + f.ButtonsWidth/2, tab.Y + tab.H/2}
	remove := Vec2{add.X + f.ButtonsWidth, add.Y}

	h.click(remove, MouseButtonLeft)
	assert.Len(t, items, 3, "remove is disabled without a selection")

	h.click(add, MouseButtonLeft)
	assert.Len(t, items, 4)
	assert.Equal(t, 3, lv.SelectedIndex())
	assert.True(t, rec.has("added 3"))
	assert.True(t, rec.has("undo Add Element"))

	h.click(remove, MouseButtonLeft)
	assert.Equal(t, letters(3), items)
	assert.Equal(t, 2, lv.SelectedIndex())
}

func TestAddWithDropdown(t *testing.T) {
	items := letters(3)
	var at []Rect
	lv := NewListView(NewSliceSource(&items), WithCallbacks(ListCallbacks{
		AddWithDropdown: func(r Rect) { at = append(at, r) },
	}))
	h := newListHarness(t, lv, 200, 200)

	tab := lv.footerTab()
	h.click(Vec2{tab.X + lv.theme.Footer.PaddingLeft + 5, tab.Y + tab.H/2}, MouseButtonLeft)
	assert.Len(t, at, 1)
	assert.Len(t, items, 3)
	assert.True(t, h.drew("+v"))
}

func TestRowRemoveButton(t *testing.T) {
	items := letters(4)
	theme := DefaultTheme()
	theme.EnableElementRemoveButton = true
	lv := NewListView(NewSliceSource(&items), WithTheme(theme))
	h := newListHarness(t, lv, 200, 200)

	r := lv.removeButtonRect(Rect{X: lv.layout.ListContent.X, Y: h.rowTop(1), W: lv.layout.ListContent.W, H: 20})
	h.click(Vec2{r.X + r.W/2, r.Y + r.H/2}, MouseButtonLeft)
	assert.Equal(t, []string{"item-00", "item-02", "item-03"}, items)
}

func TestRemoveKeepsSelectionInPlace(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))

	lv.SetSelectedIndex(4)
	lv.RemoveElement(4)
	assert.Equal(t, 3, lv.SelectedIndex())

	lv.RemoveElement(0)
	assert.Equal(t, 2, lv.SelectedIndex(), "selection follows the element up")

	lv.RemoveElement(2)
	assert.Equal(t, 1, lv.SelectedIndex())

	lv.RemoveElement(1)
	lv.RemoveElement(0)
	assert.Empty(t, items)
	assert.Equal(t, -1, lv.SelectedIndex())

	lv.RemoveElement(0)
	assert.Empty(t, items)
}

func TestMoveToTopAndBottom(t *testing.T) {
	items := []string{"a", "b", "c", "d"}
	rec := &recorder{}
	lv := NewListView(NewSliceSource(&items), WithCallbacks(rec.callbacks()))

	lv.MoveToTop(2)
	assert.Equal(t, []string{"c", "a", "b", "d"}, items)
	assert.Equal(t, 0, lv.SelectedIndex())
	assert.Equal(t, []string{"undo Move c to Top", "undo Reorder c"}, filter(rec.events, "undo"))

	lv.MoveToBottom(1)
	assert.Equal(t, []string{"c", "b", "d", "a"}, items)
	assert.Equal(t, 3, lv.SelectedIndex())

	rec.events = nil
	lv.MoveToTop(0)
	lv.MoveToBottom(3)
	assert.Empty(t, rec.events)
}

func filter(events []string, prefix string) []string {
	var out []string
	for _, e := range events {
		if strings.HasPrefix(e, prefix) {
			out = append(out, e)
		}
	}
	return out
}

func TestDuplicateNeedsCapability(t *testing.T) {
	list := []Property{Record{"name": "a"}, Record{"name": "b"}}
	rec := &recorder{}
	lv := NewListView(NewHandleListSource(&list, nil), WithLabelField("name"), WithCallbacks(rec.callbacks()))

	lv.DuplicateElement(0)
	assert.Len(t, list, 2)
	assert.Empty(t, rec.events)

	arr := &RecordArray{Records: []Record{{"name": "a"}, {"name": "b"}}}
	lv = NewListView(NewPropertyArraySource(arr), WithLabelField("name"))
	lv.DuplicateElement(0)
	require.Len(t, arr.Records, 3)
	assert.Equal(t, "a", arr.Records[1]["name"])
	assert.Equal(t, 1, lv.SelectedIndex())
}

func TestAddRequestedReplacesInsert(t *testing.T) {
	items := letters(2)
	lv := NewListView(NewSliceSource(&items))
	lv.cb.AddRequested = func() { items = append([]string{"first"}, items...) }

	lv.AddElement()
	assert.Equal(t, []string{"first", "item-00", "item-01"}, items)
	assert.Equal(t, 2, lv.SelectedIndex())
}

func TestInsertUnsupported(t *testing.T) {
	list := []Property{Record{"name": "a"}}
	rec := &recorder{}
	lv := NewListView(NewHandleListSource(&list, nil), WithCallbacks(rec.callbacks()))

	lv.AddElement()
	assert.Len(t, list, 1)
	assert.False(t, rec.has("changed"))
}

func TestLabels(t *testing.T) {
	list := []Property{Record{"name": "alpha"}, Record{"other": "x"}}
	lv := NewListView(NewHandleListSource(&list, nil), WithLabelField("name"))
	assert.Equal(t, "alpha", lv.ElementLabel(0))
	assert.Equal(t, "Element 1", lv.ElementLabel(1))
	assert.Equal(t, "Element 7", lv.ElementLabel(7))

	ints := []int{4, 5}
	lv = NewListView(NewSliceSource(&ints))
	assert.Equal(t, "Element 1", lv.ElementLabel(1))

	lv = NewListView(NewSliceSource(&ints), WithLabelFunc(func(h ElementHandle, i int) string {
		return fmt.Sprintf("#%d", h.(int))
	}))
	assert.Equal(t, "#5", lv.ElementLabel(1))
}

func TestSearchPredicate(t *testing.T) {
	ints := []int{1, 2, 3, 4, 5, 6}
	lv := NewListView(NewSliceSource(&ints), WithSearchPredicate(func(h ElementHandle, i int, q string) bool {
		return q == "even" && h.(int)%2 == 0
	}))
	lv.SetSearchQuery("even")
	assert.Equal(t, []int{1, 3, 5}, lv.State().FilteredIndices)
}

func TestSearchFieldTyping(t *testing.T) {
	items := []string{"apple", "banana", "cherry"}
	theme := DefaultTheme()
	theme.EnableSearch = true
	lv := NewListView(NewSliceSource(&items), WithTheme(theme))
	h := newListHarness(t, lv, 200, 200)

	f := lv.Layout().SearchField
	h.click(Vec2{f.X + 5, f.Y + f.H/2}, MouseButtonLeft)
	for _, r := range "an" {
		h.q.CharTyped(r, 0)
	}
	h.frame()
	assert.Equal(t, "an", lv.SearchQuery())
	assert.Equal(t, []int{1}, lv.State().FilteredIndices)

	// Navigation keys belong to the field while it has focus.
	h.key(KeyDown)
	assert.Equal(t, -1, lv.SelectedIndex())

	c := lv.Layout().SearchClear
	h.click(Vec2{c.X + c.W/2, c.Y + c.H/2}, MouseButtonLeft)
	assert.Equal(t, "", lv.SearchQuery())
	assert.False(t, lv.IsSearchActive())
}

func TestTinyAllocationKeepsGeometry(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	before := lv.Layout()

	// Layout passes hand out a 1px placeholder; the geometry must survive.
	ctx := h.ui.Begin(Event{Type: EventLayout}, h.size)
	lv.Display(ctx)
	require.NoError(t, h.ui.End())
	assert.Equal(t, before.ListContent, lv.Layout().ListContent)
}

func TestLayoutCachedAcrossInteractionEvents(t *testing.T) {
	items := letters(5)
	lv := NewListView(NewSliceSource(&items))
	h := newListHarness(t, lv, 200, 200)
	lv.layout.MaxElementCount = -1

	pass := func(typ EventType) {
		ctx := h.ui.Begin(Event{Type: typ, Pos: Vec2{10, 10}}, h.size)
		lv.DoCalculations(ctx)
		require.NoError(t, h.ui.End())
	}

	// Same rect, interaction event: geometry is reused.
	pass(EventMouseMove)
	assert.Equal(t, -1, lv.Layout().MaxElementCount)

	// Repaint always recomputes.
	pass(EventRepaint)
	assert.Positive(t, lv.Layout().MaxElementCount)

	// A resize is picked up by the next pass, whatever its type.
	h.size = Vec2{200, 400}
	lv.layout.MaxElementCount = -1
	pass(EventMouseMove)
	assert.Equal(t, float32(400), lv.Layout().Global.H)
	assert.Positive(t, lv.Layout().MaxElementCount)

	h.size = Vec2{300, 300}
	h.frame()
	assert.Equal(t, Rect{W: 300, H: 300}, lv.Layout().Global)
}

func TestHeaderShowsSize(t *testing.T) {
	items := letters(12)
	theme := DefaultTheme()
	theme.EnableHeader = true
	lv := NewListView(NewSliceSource(&items), WithTheme(theme), WithHeaderLabel(func() string { return "Levels" }))
	h := newListHarness(t, lv, 200, 300)
	assert.True(t, h.drew("Levels"))
	assert.True(t, h.drew("Size:  12"))
}
