package listkit

// handleScroll pages with the wheel while the pointer is over the list.
// Positive Delta.Y pages forward.
func (lv *ListView) handleScroll(ctx *Context) {
	ev := ctx.Event
	st := &lv.state
	l := &lv.layout
	if !l.Paginated || !l.List.Contains(ev.Pos) {
		return
	}

	handled := false
	switch {
	case ev.Delta.Y > 0 && st.CurrentPage < st.PagesCount-1:
		st.CurrentPage++
		handled = true
	case ev.Delta.Y < 0 && st.CurrentPage > 0:
		st.CurrentPage--
		handled = true
	}
	if handled {
		lv.ClearSelection()
		ev.Use()
		ctx.RequestRepaint()
	}
}

// handleKeys applies one navigation key. Up and Down walk the visible
// order, so they follow the filter while a search is active.
func (lv *ListView) handleKeys(ctx *Context) {
	ev := ctx.Event
	if ev.Key == KeyNone || ctx.IsFocused(lv.searchID()) {
		return
	}
	st := &lv.state
	l := &lv.layout
	display := st.DisplayCount(lv.src.Count())
	cur := -1
	if st.SelectedIndex >= 0 {
		cur = st.DisplayIndexOf(st.SelectedIndex)
	}

	handled := false
	switch ev.Key {
	case KeyUp:
		if cur > 0 {
			lv.selectIndex(st.ActualIndex(cur - 1))
			if l.Paginated && cur-1 < l.PageBeginIndex {
				st.CurrentPage--
			}
			handled = true
		}

	case KeyDown:
		if cur < display-1 {
			lv.selectIndex(st.ActualIndex(cur + 1))
			if l.Paginated && cur+1 >= l.PageBeginIndex+l.PageElementCount {
				st.CurrentPage++
			}
			handled = true
		}

	case KeyLeft:
		if l.Paginated && st.CurrentPage > 0 {
			st.CurrentPage--
			lv.ClearSelection()
			handled = true
		}

	case KeyRight:
		if l.Paginated && st.CurrentPage < st.PagesCount-1 {
			st.CurrentPage++
			lv.ClearSelection()
			handled = true
		}

	case KeyHome:
		if display > 0 {
			lv.selectIndex(st.ActualIndex(0))
			if l.Paginated {
				st.CurrentPage = 0
			}
			handled = true
		}

	case KeyEnd:
		if display > 0 {
			lv.selectIndex(st.ActualIndex(display - 1))
			if l.Paginated {
				st.CurrentPage = st.PagesCount - 1
			}
			handled = true
		}

	case KeyDelete, KeyBackspace:
		if st.SelectedIndex >= 0 && st.SelectedIndex < lv.src.Count() {
			lv.RemoveSelected()
			handled = true
		}

	case KeyPageUp:
		if l.Paginated && st.CurrentPage > 0 {
			st.CurrentPage = 0
			lv.ClearSelection()
			handled = true
		}

	case KeyPageDown:
		if l.Paginated && st.CurrentPage < st.PagesCount-1 {
			st.CurrentPage = st.PagesCount - 1
			lv.ClearSelection()
			handled = true
		}
	}

	if handled {
		ev.Use()
		ctx.RequestRepaint()
	}
}
