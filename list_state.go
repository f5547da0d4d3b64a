package listkit

// ListViewState is the transient view state of one ListView. Indices in
// SelectedIndex, StartDragIndex and CurrentDragIndex always refer to the
// full backing collection, never to the filtered view.
type ListViewState struct {
	SelectedIndex int
	CurrentPage   int
	PagesCount    int

	SearchQuery     string
	FilteredIndices []int
	SearchActive    bool

	Dragging         bool
	StartDragIndex   int
	CurrentDragIndex int
	// DragOffset is the distance from the grab point to the row top.
	DragOffset    float32
	DraggedY      float32
	DraggedHeight float32

	// Left press captured on a drag handle, -1 when none is armed.
	mouseDownIndex  int
	mouseDownPos    Vec2
	mouseDownHeight float32

	// Last left click in a label, for double-click detection.
	lastClickTime  float64
	lastClickIndex int

	// Collection size seen when FilteredIndices was built.
	filteredCount int
}

func newListViewState() ListViewState {
	return ListViewState{
		SelectedIndex:    -1,
		PagesCount:       1,
		StartDragIndex:   -1,
		CurrentDragIndex: -1,
		mouseDownIndex:   -1,
		lastClickIndex:   -1,
	}
}

// DisplayCount returns how many elements the view shows out of total.
func (s *ListViewState) DisplayCount(total int) int {
	if s.SearchActive {
		return len(s.FilteredIndices)
	}
	return total
}

// DisplayIndexOf maps a collection index to its position in the view, or
// -1 when the element is filtered out.
func (s *ListViewState) DisplayIndexOf(index int) int {
	if !s.SearchActive {
		return index
	}
	for i, v := range s.FilteredIndices {
		if v == index {
			return i
		}
	}
	return -1
}

// ActualIndex maps a view position to its collection index.
func (s *ListViewState) ActualIndex(display int) int {
	if !s.SearchActive {
		return display
	}
	if display < 0 || display >= len(s.FilteredIndices) {
		return -1
	}
	return s.FilteredIndices[display]
}

func (s *ListViewState) disarmDrag() {
	s.mouseDownIndex = -1
}

func (s *ListViewState) resetClicks() {
	s.lastClickTime = 0
	s.lastClickIndex = -1
}
