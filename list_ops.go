package listkit

import (
	"errors"

	"github.com/sirupsen/logrus"
)

func (lv *ListView) undo(msg string) {
	if lv.cb.UndoCheckpoint != nil {
		lv.cb.UndoCheckpoint(msg)
	}
}

func (lv *ListView) listChanged() {
	if lv.state.SearchActive {
		lv.refilter()
	}
	if lv.cb.ListChanged != nil {
		lv.cb.ListChanged()
	}
	lv.requestRepaint()
}

// logSourceError reports a failed source call. Unsupported operations are
// warnings; everything else is a logic error.
func logSourceError(op string, err error, fields logrus.Fields) {
	entry := logger.WithFields(fields).WithError(err)
	if errors.Is(err, ErrUnsupported) {
		entry.Warn(op + " not supported")
		return
	}
	entry.Error(op + " failed")
}

func (lv *ListView) validIndex(op string, index int) bool {
	count := lv.src.Count()
	if index < 0 || index >= count {
		logger.WithFields(logrus.Fields{"index": index, "count": count}).
			Error(op + ": index out of range")
		return false
	}
	return true
}

// selectIndex selects index and notifies the owner when it changed.
func (lv *ListView) selectIndex(index int) {
	if lv.state.SelectedIndex == index {
		return
	}
	lv.state.SelectedIndex = index
	if lv.cb.SelectionChanged != nil {
		lv.cb.SelectionChanged()
	}
}

// SelectedIndex returns the selected collection index, or -1.
func (lv *ListView) SelectedIndex() int {
	return lv.state.SelectedIndex
}

// SetSelectedIndex selects index. Out of range values clear the selection.
func (lv *ListView) SetSelectedIndex(index int) {
	if index < 0 || index >= lv.src.Count() {
		index = -1
	}
	lv.selectIndex(index)
}

// ClearSelection deselects.
func (lv *ListView) ClearSelection() {
	lv.selectIndex(-1)
}

// CurrentPage returns the zero-based page shown.
func (lv *ListView) CurrentPage() int {
	return lv.state.CurrentPage
}

// PagesCount returns the page count of the last layout.
func (lv *ListView) PagesCount() int {
	return lv.state.PagesCount
}

// SetCurrentPage shows page, clamped on the next layout, and clears the
// selection.
func (lv *ListView) SetCurrentPage(page int) {
	lv.state.CurrentPage = clampi(page, 0, max(lv.state.PagesCount-1, 0))
	lv.ClearSelection()
	lv.requestRepaint()
}

// MoveElement relocates element from to position to. It reports whether
// the collection changed.
func (lv *ListView) MoveElement(from, to int) bool {
	if from == to {
		return false
	}
	if !lv.validIndex("move", from) || !lv.validIndex("move", to) {
		return false
	}
	lv.undo("Reorder " + lv.ElementLabel(from))
	if err := lv.src.Move(from, to); err != nil {
		logSourceError("move", err, logrus.Fields{"from": from, "to": to})
		return false
	}
	lv.listChanged()
	return true
}

// AddElement appends an element, or asks the owner to through
// AddRequested, and selects the new last element.
func (lv *ListView) AddElement() {
	lv.undo("Add Element")
	before := lv.src.Count()
	if lv.cb.AddRequested != nil {
		lv.cb.AddRequested()
	} else if err := lv.src.Insert(before); err != nil {
		logSourceError("insert", err, logrus.Fields{"index": before, "count": before})
		return
	}
	if after := lv.src.Count(); after > before {
		lv.selectIndex(after - 1)
		if lv.cb.ElementAdded != nil {
			lv.cb.ElementAdded(after - 1)
		}
	}
	lv.listChanged()
}

// RemoveElement removes element index. The selection stays on the same
// position when possible and follows elements that shift up.
func (lv *ListView) RemoveElement(index int) {
	if !lv.validIndex("remove", index) {
		return
	}
	lv.undo("Remove " + lv.ElementLabel(index))
	if err := lv.src.Remove(index); err != nil {
		logSourceError("remove", err, logrus.Fields{"index": index})
		return
	}

	count := lv.src.Count()
	switch sel := lv.state.SelectedIndex; {
	case sel == index:
		lv.selectIndex(min(index, count-1))
	case sel > index:
		lv.selectIndex(sel - 1)
	}
	if lv.cb.ElementRemoved != nil {
		lv.cb.ElementRemoved(index)
	}
	lv.listChanged()
}

// RemoveSelected removes the selected element, if any.
func (lv *ListView) RemoveSelected() {
	if sel := lv.state.SelectedIndex; sel >= 0 {
		lv.RemoveElement(sel)
	}
}

// DuplicateElement inserts a copy of element index after it and selects
// the copy. Sources without Duplicator only log a warning.
func (lv *ListView) DuplicateElement(index int) {
	if !lv.validIndex("duplicate", index) {
		return
	}
	d, ok := lv.src.(Duplicator)
	if !ok {
		logger.WithFields(logrus.Fields{"index": index}).Warn("duplicate not supported by this source")
		return
	}
	lv.undo("Duplicate " + lv.ElementLabel(index))
	if err := d.Duplicate(index); err != nil {
		logSourceError("duplicate", err, logrus.Fields{"index": index})
		return
	}
	lv.listChanged()
	lv.selectIndex(index + 1)
}

// MoveToTop moves element index to the front and selects it.
func (lv *ListView) MoveToTop(index int) {
	if index <= 0 || !lv.validIndex("move to top", index) {
		return
	}
	lv.undo("Move " + lv.ElementLabel(index) + " to Top")
	if lv.MoveElement(index, 0) {
		lv.selectIndex(0)
	}
}

// MoveToBottom moves element index to the end and selects it.
func (lv *ListView) MoveToBottom(index int) {
	last := lv.src.Count() - 1
	if index >= last || !lv.validIndex("move to bottom", index) {
		return
	}
	lv.undo("Move " + lv.ElementLabel(index) + " to Bottom")
	if lv.MoveElement(index, last) {
		lv.selectIndex(last)
	}
}

// contextMenuItems builds the built-in menu for element index.
func (lv *ListView) contextMenuItems(index int) []MenuItem {
	last := lv.src.Count() - 1
	return []MenuItem{
		{Label: "Duplicate", Action: func() { lv.DuplicateElement(index) }},
		MenuSeparator(),
		{Label: "Move to Top", Disabled: index <= 0, Action: func() { lv.MoveToTop(index) }},
		{Label: "Move to Bottom", Disabled: index >= last, Action: func() { lv.MoveToBottom(index) }},
		MenuSeparator(),
		{Label: "Delete", Action: func() { lv.RemoveElement(index) }},
	}
}

func (lv *ListView) openContextMenu(index int, at Vec2) {
	lv.menu.Open(at, lv.contextMenuItems(index))
}
