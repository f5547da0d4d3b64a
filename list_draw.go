package listkit

import (
	"fmt"
	"strconv"
)

// doubleClickTime is the longest gap between two clicks on the same row
// that still counts as a double-click, in seconds.
const doubleClickTime = 0.3

func (lv *ListView) drawHeader(ctx *Context) {
	l := &lv.layout
	t := lv.theme
	DrawLayers(ctx, l.Header, &t.Header.Background)
	if !ctx.IsRepaint() {
		return
	}
	color := t.Header.TextColor.Packed()
	size := "Size:  " + strconv.Itoa(lv.src.Count())
	sizeW := ctx.MeasureText(size).X

	label := l.HeaderContent
	label.W -= sizeW + ctx.charWidth()
	ctx.addTextIn(label, TruncateTextWithSuffix(ctx, lv.headerText(), label.W, "…"), color, false)

	right := l.HeaderContent
	right.X = right.XMax() - sizeW
	right.W = sizeW
	ctx.addTextIn(right, size, color, false)
}

func (lv *ListView) drawSearch(ctx *Context) {
	l := &lv.layout
	t := lv.theme
	st := &lv.state
	DrawLayers(ctx, l.Search, &t.Search.Background)

	field := l.SearchField
	if st.SearchQuery != "" {
		field.W -= 20
	}
	query := st.SearchQuery
	if ctx.TextField(lv.searchID(), field, &query, "Search...") {
		lv.SetSearchQuery(query)
		ctx.RequestRepaint()
	}

	if st.SearchQuery == "" {
		return
	}
	opts := ButtonOptions{
		NoFrame:   true,
		TextColor: t.Search.ClearTextColor.Packed(),
		HoverText: t.Search.ClearHoverColor.Packed(),
	}
	if ctx.Button(lv.id.Child("search-clear"), l.SearchClear, t.Search.ClearButtonText, opts) {
		lv.SetSearchQuery("")
		ctx.ClearFocus()
		ctx.RequestRepaint()
	}
}

func (lv *ListView) searchID() ID {
	return lv.id.Child("search")
}

func (lv *ListView) drawPlaceholder(ctx *Context, msg string) {
	if !ctx.IsRepaint() {
		return
	}
	c := lv.layout.ListContent
	r := Rect{X: c.X + 2, Y: c.Y, W: c.W - 2, H: lv.theme.Element.Height}
	ctx.addTextIn(r, TruncateTextWithSuffix(ctx, msg, r.W, "…"), lv.theme.Element.TextColor.Packed(), false)
}

func (lv *ListView) drawList(ctx *Context) {
	l := &lv.layout
	t := lv.theme
	st := &lv.state
	DrawLayers(ctx, l.List, &t.List.Background)

	count := lv.src.Count()
	if st.SearchActive && len(st.FilteredIndices) == 0 {
		lv.drawPlaceholder(ctx, t.NoResultsMessage)
		return
	}
	if count == 0 {
		lv.drawPlaceholder(ctx, t.EmptyListMessage)
		return
	}

	rowH := t.Element.Height
	content := l.ListContent
	end := l.PageEnd(st.DisplayCount(count))
	y := content.Y

	if !st.Dragging {
		for i := l.PageBeginIndex; i < end; i++ {
			index := st.ActualIndex(i)
			if lv.drawRow(ctx, Rect{X: content.X, Y: y, W: content.W, H: rowH}, index, index == st.SelectedIndex) {
				return
			}
			y += rowH
		}
		return
	}

	// The dragged row leaves the flow and a one-row gap opens where it
	// would land.
	gap := st.CurrentDragIndex - l.PageBeginIndex
	slot := 0
	for i := l.PageBeginIndex; i < end; i++ {
		index := st.ActualIndex(i)
		if index == st.StartDragIndex {
			continue
		}
		if slot == gap {
			y += rowH
		}
		lv.drawRow(ctx, Rect{X: content.X, Y: y, W: content.W, H: rowH}, index, false)
		y += rowH
		slot++
	}
	if st.StartDragIndex >= 0 && st.StartDragIndex < count {
		lv.drawRow(ctx, Rect{X: content.X, Y: st.DraggedY, W: content.W, H: st.DraggedHeight}, st.StartDragIndex, true)
	}
}

// drawRow draws one element and handles row input. It returns true when
// the row changed the collection and the rest of the page is stale.
func (lv *ListView) drawRow(ctx *Context, rect Rect, index int, selected bool) bool {
	t := lv.theme
	st := &lv.state
	ev := ctx.Event

	bg := Rect{X: rect.X, Y: rect.Y, W: rect.W, H: t.Element.Height}
	if selected {
		DrawLayers(ctx, bg, &t.Element.Selected)
	} else {
		DrawLayers(ctx, bg, &t.Element.Unselected)
		if !st.Dragging && !lv.menu.IsOpen() && ctx.isHovered(bg) {
			DrawLayers(ctx, bg, &t.Element.Hover)
		}
	}

	if ctx.IsRepaint() {
		lv.drawDragHandle(ctx, lv.dragHandleRect(rect))
	}

	label := lv.labelRect(rect)
	if ctx.IsRepaint() {
		text := TruncateTextWithSuffix(ctx, lv.ElementLabel(index), label.W, "…")
		ctx.addTextIn(label, text, t.Element.TextColor.Packed(), false)
	}

	if t.EnableElementRemoveButton && !st.Dragging {
		opts := ButtonOptions{NoFrame: true, TextColor: t.RemoveButton.TextColor.Packed()}
		if ctx.Button(lv.id.ChildN("remove", index), lv.removeButtonRect(rect), t.RemoveButton.Text, opts) {
			lv.RemoveElement(index)
			ctx.RequestRepaint()
			return true
		}
	}

	if st.Dragging || ev == nil {
		return false
	}

	switch ev.Type {
	case EventMouseDown:
		if ev.Button == MouseButtonRight && rect.Contains(ev.Pos) {
			if st.SelectedIndex != index {
				lv.selectIndex(index)
			}
			ev.Use()
			ctx.RequestRepaint()
			return false
		}
		if ev.Button == MouseButtonLeft {
			grab := lv.dragHandleRect(rect)
			grab.Y -= 3
			grab.H += 6
			if grab.Contains(ev.Pos) {
				st.mouseDownIndex = index
				st.mouseDownPos = ev.Pos
				st.mouseDownHeight = rect.H
			}
		}

	case EventContextClick:
		if rect.Contains(ev.Pos) {
			if lv.cb.ContextMenu != nil {
				lv.cb.ContextMenu(index)
			} else {
				lv.openContextMenu(index, ev.Pos)
			}
			ev.Use()
			ctx.RequestRepaint()
		}

	case EventMouseUp:
		if ev.Button != MouseButtonLeft || !label.Contains(ev.Pos) {
			return false
		}
		double := st.lastClickIndex == index && ev.Time-st.lastClickTime < doubleClickTime
		if double {
			st.resetClicks()
		} else {
			st.lastClickTime = ev.Time
			st.lastClickIndex = index
		}
		if double && lv.cb.ElementDoubleClicked != nil {
			lv.cb.ElementDoubleClicked(index)
		} else if st.SelectedIndex != index {
			lv.selectIndex(index)
		}
		ev.Use()
		ctx.RequestRepaint()
	}
	return false
}

// drawDragHandle draws three horizontal bars.
func (lv *ListView) drawDragHandle(ctx *Context, r Rect) {
	color := lv.theme.DragHandle.Color.Packed()
	for i := range 3 {
		ctx.DrawList.AddRect(r.X, r.Y+float32(i)*2, r.W, 1, color)
	}
}

func (lv *ListView) paginationText() string {
	st := &lv.state
	if st.SearchActive {
		return fmt.Sprintf("%d / %d (%d results)", st.CurrentPage+1, st.PagesCount, len(st.FilteredIndices))
	}
	return fmt.Sprintf("%d / %d", st.CurrentPage+1, st.PagesCount)
}

func (lv *ListView) drawPagination(ctx *Context) {
	l := &lv.layout
	t := lv.theme
	st := &lv.state
	DrawLayers(ctx, l.Pagination, &t.Pagination.Background)

	opts := func(disabled bool) ButtonOptions {
		return ButtonOptions{NoFrame: true, Disabled: disabled, TextColor: t.Element.TextColor.Packed()}
	}

	if ctx.Button(lv.id.Child("page-first"), l.FirstPage, "<<", opts(st.CurrentPage <= 0)) {
		lv.setPage(0)
	}
	if ctx.Button(lv.id.Child("page-prev"), l.PrevPage, "<", opts(st.CurrentPage == 0)) {
		lv.setPage(st.CurrentPage - 1)
	}
	if ctx.IsRepaint() {
		text := TruncateTextWithSuffix(ctx, lv.paginationText(), l.PaginationLabel.W, "…")
		ctx.addTextIn(l.PaginationLabel, text, t.Element.TextColor.Packed(), true)
	}
	if ctx.Button(lv.id.Child("page-next"), l.NextPage, ">", opts(st.CurrentPage == st.PagesCount-1)) {
		lv.setPage(st.CurrentPage + 1)
	}
	if ctx.Button(lv.id.Child("page-last"), l.LastPage, ">>", opts(st.CurrentPage >= st.PagesCount-1)) {
		lv.setPage(st.PagesCount - 1)
	}
}

// setPage switches page from a pagination control, dropping the selection.
func (lv *ListView) setPage(page int) {
	lv.state.CurrentPage = page
	lv.ClearSelection()
	lv.requestRepaint()
}

// footerTab returns the rect of the add/remove button tab.
func (lv *ListView) footerTab() Rect {
	t := lv.theme
	f := &t.Footer
	right := lv.layout.FooterButtons.XMax() - f.MarginRight
	left := right - f.PaddingLeft - f.PaddingRight - f.ButtonsWidth
	if t.EnableFooterAddButton && t.EnableFooterRemoveButton {
		left -= f.ButtonsWidth
	}
	var borderRight float32
	if b := t.Global.GetLayerByType(LayerBorder); b != nil {
		borderRight = b.BorderWidth[2]
	}
	return Rect{X: left, Y: lv.layout.FooterButtons.Y - borderRight, W: right - left, H: f.Height}
}

func (lv *ListView) drawFooter(ctx *Context) {
	t := lv.theme
	f := &t.Footer
	tab := lv.footerTab()
	DrawLayers(ctx, tab, &f.Background)

	btn := Rect{
		X: tab.X + f.PaddingLeft,
		Y: tab.Y + (tab.H-f.ButtonsHeight)/2,
		W: f.ButtonsWidth,
		H: f.ButtonsHeight,
	}
	text := t.Element.TextColor.Packed()

	if t.EnableFooterAddButton {
		label := "+"
		if lv.cb.AddWithDropdown != nil {
			label = "+v"
		}
		if ctx.Button(lv.id.Child("add"), btn, label, ButtonOptions{NoFrame: true, TextColor: text}) {
			if lv.cb.AddWithDropdown != nil {
				lv.cb.AddWithDropdown(btn)
			} else {
				lv.AddElement()
			}
			ctx.RequestRepaint()
		}
		btn.X += f.ButtonsWidth
	}

	if t.EnableFooterRemoveButton {
		sel := lv.state.SelectedIndex
		disabled := sel < 0 || sel >= lv.src.Count()
		if ctx.Button(lv.id.Child("remove"), btn, "-", ButtonOptions{NoFrame: true, Disabled: disabled, TextColor: text}) {
			lv.RemoveSelected()
			ctx.RequestRepaint()
		}
	}
}
