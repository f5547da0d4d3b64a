package listkit

import "math"

// minLayoutHeight is the smallest allocated height worth laying out. Below
// it the host is mid-transition and the previous geometry stays in effect.
const minLayoutHeight = 5

// ListLayout is the geometry derived by DoCalculations.
type ListLayout struct {
	Global Rect
	List   Rect

	Header        Rect
	HeaderContent Rect

	Search      Rect
	SearchField Rect
	SearchClear Rect

	ListContent    Rect
	FilledElements Rect
	// ElementHeader is the first row slot; DragHandle, Label and
	// RemoveButton are its sub-rects.
	ElementHeader Rect
	DragHandle    Rect
	Label         Rect
	RemoveButton  Rect

	Pagination        Rect
	PaginationContent Rect
	FirstPage         Rect
	PrevPage          Rect
	NextPage          Rect
	LastPage          Rect
	PaginationLabel   Rect

	FooterButtons Rect

	Paginated        bool
	MaxElementCount  int
	PageElementCount int
	PageBeginIndex   int

	calculated Rect
	valid      bool
}

// PageEnd returns one past the last display index on the current page.
func (l *ListLayout) PageEnd(displayCount int) int {
	if !l.Paginated {
		return displayCount
	}
	return min(l.PageBeginIndex+l.PageElementCount, displayCount)
}

// RowY returns the top of the row slot holding displayIndex on the current
// page.
func (l *ListLayout) RowY(displayIndex int) float32 {
	return l.ListContent.Y + float32(displayIndex-l.PageBeginIndex)*l.ElementHeader.H
}

// PageOf returns the page that shows displayIndex.
func (l *ListLayout) PageOf(displayIndex int) int {
	if !l.Paginated || l.PageElementCount <= 0 || displayIndex < 0 {
		return 0
	}
	return displayIndex / l.PageElementCount
}

// DoCalculations allocates the list rect from the host layout and derives
// every sub-rect and the pagination window from it. Geometry is reused for
// interaction events while the allocated rect is unchanged.
func (lv *ListView) DoCalculations(ctx *Context) {
	t := lv.theme
	r := ctx.GetRect(t.MinWidth, t.MinHeight, t.StretchWidth, t.StretchHeight)
	if r.H < minLayoutHeight || !(t.Element.Height > 0) {
		return
	}
	l := &lv.layout
	if l.valid && r == l.calculated && !isLayoutAffecting(ctx.Event) {
		return
	}
	l.valid = true
	l.calculated = r

	st := &lv.state
	rowH := t.Element.Height
	count := lv.src.Count()
	display := st.DisplayCount(count)

	avail := r.H
	if t.EnableHeader {
		avail -= t.Header.Height
	}
	if t.EnableSearch {
		avail -= t.Search.Height
	}
	avail -= t.Footer.Height
	avail -= t.List.Content.Top + t.List.Content.Bottom

	l.MaxElementCount = int(math.Floor(float64(avail / rowH)))
	l.Paginated = display > l.MaxElementCount
	if l.Paginated {
		avail -= t.Pagination.Height
		l.PageElementCount = max(int(math.Floor(float64(avail/rowH))), 1)
	} else {
		l.PageElementCount = l.MaxElementCount
	}

	if l.Paginated {
		st.PagesCount = (display + l.PageElementCount - 1) / l.PageElementCount
		if st.PagesCount > 1 {
			st.CurrentPage = clampi(st.CurrentPage, 0, st.PagesCount-1)
			if st.SelectedIndex != -1 {
				if di := st.DisplayIndexOf(st.SelectedIndex); di >= 0 {
					st.CurrentPage = l.PageOf(di)
				}
			}
		} else {
			st.CurrentPage = 0
		}
		l.PageBeginIndex = st.CurrentPage * l.PageElementCount
	} else {
		st.CurrentPage = 0
		st.PagesCount = 1
		l.PageBeginIndex = 0
	}

	l.Global = r
	list := r

	if t.EnableHeader {
		l.Header = Rect{X: r.X, Y: r.Y, W: r.W, H: t.Header.Height}
		l.HeaderContent = LayerRect(l.Header, t.Header.Content)
		list.Y += t.Header.Height
		list.H -= t.Header.Height
	}

	if t.EnableSearch {
		y := r.Y
		if t.EnableHeader {
			y = l.Header.YMax()
		}
		l.Search = Rect{X: r.X, Y: y, W: r.W, H: t.Search.Height}
		l.SearchField = LayerRect(l.Search, t.Search.Content)
		l.SearchClear = Rect{X: l.SearchField.XMax() - 18, Y: l.SearchField.Y - 1, W: 20, H: l.SearchField.H - 2}
		list.Y += t.Search.Height
		list.H -= t.Search.Height
	}

	// The footer tab overlaps the bottom border of the global background.
	var borderBottom float32
	if b := t.Global.GetLayerByType(LayerBorder); b != nil {
		borderBottom = b.BorderWidth[3]
	}
	l.FooterButtons = Rect{X: r.X, Y: r.YMax() - t.Footer.Height + borderBottom - 1, W: r.W, H: t.Footer.Height}
	list.H -= t.Footer.Height

	if l.Paginated {
		p := &t.Pagination
		l.Pagination = Rect{X: r.X, Y: l.FooterButtons.Y - p.Height, W: r.W, H: p.Height}
		list.H -= p.Height

		c := LayerRect(l.Pagination, p.Content)
		l.PaginationContent = c
		bw, bh := p.ButtonsWidth, p.ButtonsHeight
		by := c.Y + (c.H-bh)/2
		l.FirstPage = Rect{X: c.X, Y: by, W: bw, H: bh}
		l.PrevPage = Rect{X: l.FirstPage.XMax(), Y: by, W: bw, H: bh}
		l.NextPage = Rect{X: c.XMax() - 2*bw, Y: by, W: bw, H: bh}
		l.LastPage = Rect{X: c.XMax() - bw, Y: by, W: bw, H: bh}
		l.PaginationLabel = Rect{X: l.PrevPage.XMax(), Y: by, W: l.NextPage.X - l.PrevPage.XMax(), H: bh}
	}

	l.List = list
	l.ListContent = LayerRect(list, t.List.Content)

	l.ElementHeader = Rect{X: l.ListContent.X, Y: l.ListContent.Y, W: l.ListContent.W, H: rowH}
	l.DragHandle = lv.dragHandleRect(l.ElementHeader)
	l.Label = lv.labelRect(l.ElementHeader)
	if t.EnableElementRemoveButton {
		l.RemoveButton = lv.removeButtonRect(l.ElementHeader)
	}

	filled := display
	if l.Paginated {
		filled = min(l.PageElementCount, display-l.PageBeginIndex)
	}
	l.FilledElements = Rect{
		X: l.ListContent.X,
		Y: l.ListContent.Y,
		W: l.ListContent.W,
		H: float32(max(filled, 0)) * rowH,
	}
}

// dragHandleRect places the handle near the bottom left of a row.
func (lv *ListView) dragHandleRect(row Rect) Rect {
	d := &lv.theme.DragHandle
	return Rect{
		X: row.X + d.PaddingLeft,
		Y: row.Y + lv.theme.Element.Height - d.PaddingBottom - d.Height,
		W: d.Width,
		H: d.Height,
	}
}

// labelRect is the row minus the handle slice and, when enabled, the
// remove button slice.
func (lv *ListView) labelRect(row Rect) Rect {
	t := lv.theme
	r := Rect{
		X: row.X + t.DragHandle.Allocated,
		Y: row.Y,
		W: row.W - t.DragHandle.Allocated,
		H: t.Element.Height,
	}
	if t.EnableElementRemoveButton {
		r.W -= t.RemoveButton.Allocated
	}
	return r
}

func (lv *ListView) removeButtonRect(row Rect) Rect {
	t := lv.theme
	return Rect{X: row.XMax() - t.RemoveButton.Width, Y: row.Y, W: t.RemoveButton.Width, H: t.Element.Height}
}
