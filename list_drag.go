package listkit

import (
	"math"

	"github.com/sirupsen/logrus"
)

// dragJumpLimit filters synthetic pointer jumps out of drag starts.
const dragJumpLimit = 5

// dragStartSlop is how far the first drag event may sit from the press.
const dragStartSlop = 1 + 1e-5

// handleDrag runs the reorder state machine for a pointer event.
func (lv *ListView) handleDrag(ctx *Context) {
	ev := ctx.Event
	st := &lv.state
	if !st.Dragging {
		if ev.Type == EventMouseDrag &&
			lv.layout.ListContent.Contains(ev.Pos) &&
			st.mouseDownIndex >= 0 &&
			ev.Delta.Len() < dragJumpLimit &&
			st.mouseDownPos.Sub(ev.Pos).Len() <= dragStartSlop {
			lv.startDrag(ctx)
		}
		return
	}
	switch ev.Type {
	case EventMouseDrag:
		lv.updateDrag(ctx)
	case EventMouseUp:
		lv.finishDrag(ctx)
	}
}

// clampDraggedY keeps the floating row inside the filled rows.
func (lv *ListView) clampDraggedY(pointerY float32) float32 {
	f := lv.layout.FilledElements
	st := &lv.state
	return clampf(pointerY-st.DragOffset, f.Y, maxf(f.YMax()-st.DraggedHeight, f.Y))
}

func (lv *ListView) startDrag(ctx *Context) {
	st := &lv.state
	l := &lv.layout
	st.Dragging = true
	st.StartDragIndex = st.mouseDownIndex
	st.CurrentDragIndex = st.StartDragIndex
	st.DraggedHeight = st.mouseDownHeight

	st.DragOffset = st.mouseDownPos.Y - l.RowY(st.StartDragIndex)
	st.DraggedY = lv.clampDraggedY(ctx.Event.Pos.Y)

	logger.WithFields(logrus.Fields{"from": st.StartDragIndex}).Debug("drag started")
	ctx.Event.Use()
	ctx.RequestRepaint()
}

// dragTargetRange returns the inclusive index range a drop may land in.
func (lv *ListView) dragTargetRange() (int, int) {
	l := &lv.layout
	count := lv.src.Count()
	if l.Paginated {
		return l.PageBeginIndex, max(l.PageEnd(count)-1, l.PageBeginIndex)
	}
	return 0, max(count-1, 0)
}

func (lv *ListView) updateDrag(ctx *Context) {
	st := &lv.state
	l := &lv.layout
	st.DraggedY = lv.clampDraggedY(ctx.Event.Pos.Y)

	// The target is the slot holding the floating row's center. Rounding
	// would move a row that rests exactly on its own slot boundary.
	center := st.DraggedY - l.ListContent.Y + st.DraggedHeight/2
	rel := int(math.Floor(float64(center / lv.theme.Element.Height)))
	lo, hi := lv.dragTargetRange()
	st.CurrentDragIndex = clampi(l.PageBeginIndex+rel, lo, hi)

	ctx.Event.Use()
	ctx.RequestRepaint()
}

func (lv *ListView) finishDrag(ctx *Context) {
	st := &lv.state
	count := lv.src.Count()
	st.Dragging = false
	defer ctx.Event.Use()
	ctx.RequestRepaint()

	if st.StartDragIndex < 0 || st.StartDragIndex >= count {
		logger.WithFields(logrus.Fields{"from": st.StartDragIndex, "count": count}).
			Error("invalid drag start index")
		return
	}

	lo, hi := lv.dragTargetRange()
	target := clampi(st.CurrentDragIndex, lo, hi)
	logger.WithFields(logrus.Fields{"from": st.StartDragIndex, "to": target}).Debug("drag finished")

	if target == st.StartDragIndex {
		return
	}
	from := st.StartDragIndex
	if !lv.MoveElement(from, target) {
		return
	}
	lv.selectIndex(target)
	if lv.cb.Reordered != nil {
		lv.cb.Reordered()
	}
	if lv.cb.ReorderedWithDetails != nil {
		lv.cb.ReorderedWithDetails(from, target)
	}
}
