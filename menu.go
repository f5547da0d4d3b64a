package listkit

// MenuItem is one entry of a PopupMenu.
type MenuItem struct {
	Label     string
	Disabled  bool
	Separator bool
	Action    func()
}

// MenuSeparator returns a separator entry.
func MenuSeparator() MenuItem {
	return MenuItem{Separator: true}
}

const menuSeparatorHeight = 7

// PopupMenu is a context menu drawn on the foreground list. While open it
// takes every input event before the widget that owns it.
type PopupMenu struct {
	items   []MenuItem
	open    bool
	pos     Vec2
	hovered int
}

// NewPopupMenu creates a closed menu.
func NewPopupMenu() *PopupMenu {
	return &PopupMenu{hovered: -1}
}

// Open shows items with the top-left corner at pos.
func (m *PopupMenu) Open(pos Vec2, items []MenuItem) {
	m.items = items
	m.pos = pos
	m.open = true
	m.hovered = -1
}

// Close hides the menu.
func (m *PopupMenu) Close() {
	m.open = false
	m.hovered = -1
}

// IsOpen returns true if the menu is open.
func (m *PopupMenu) IsOpen() bool {
	return m != nil && m.open
}

// Items returns the current entries.
func (m *PopupMenu) Items() []MenuItem {
	return m.items
}

// Hovered returns the highlighted entry, or -1.
func (m *PopupMenu) Hovered() int {
	return m.hovered
}

func (m *PopupMenu) itemHeight(ctx *Context, it MenuItem) float32 {
	if it.Separator {
		return menuSeparatorHeight
	}
	return ctx.style.MenuItemHeight
}

// bounds returns the menu rect, shifted to stay inside the display.
func (m *PopupMenu) bounds(ctx *Context) Rect {
	pad := ctx.style.MenuPadding
	w, h := float32(0), pad*2
	for _, it := range m.items {
		h += m.itemHeight(ctx, it)
		if !it.Separator {
			w = maxf(w, ctx.MeasureText(it.Label).X)
		}
	}
	r := Rect{X: m.pos.X, Y: m.pos.Y, W: w + pad*4, H: h}
	if ds := ctx.DisplaySize; ds.X > 0 && ds.Y > 0 {
		r.X = clampf(r.X, 0, maxf(ds.X-r.W, 0))
		r.Y = clampf(r.Y, 0, maxf(ds.Y-r.H, 0))
	}
	return r
}

// itemRects lays out entries top to bottom inside b.
func (m *PopupMenu) itemRects(ctx *Context, b Rect) []Rect {
	rects := make([]Rect, len(m.items))
	y := b.Y + ctx.style.MenuPadding
	for i, it := range m.items {
		h := m.itemHeight(ctx, it)
		rects[i] = Rect{X: b.X, Y: y, W: b.W, H: h}
		y += h
	}
	return rects
}

func (m *PopupMenu) selectable(i int) bool {
	return i >= 0 && i < len(m.items) && !m.items[i].Separator && !m.items[i].Disabled
}

// step moves the highlight by dir, skipping separators and disabled entries.
func (m *PopupMenu) step(dir int) {
	n := len(m.items)
	i := m.hovered
	for range n {
		i += dir
		if i < 0 || i >= n {
			return
		}
		if m.selectable(i) {
			m.hovered = i
			return
		}
	}
}

// confirm runs the entry's action and closes the menu.
func (m *PopupMenu) confirm(i int) {
	if !m.selectable(i) {
		return
	}
	action := m.items[i].Action
	m.Close()
	if action != nil {
		action()
	}
}

// HandleEvent lets the open menu process the current event. It returns true
// when the event was consumed.
func (m *PopupMenu) HandleEvent(ctx *Context) bool {
	ev := ctx.Event
	if !m.IsOpen() || ev == nil {
		return false
	}
	b := m.bounds(ctx)
	rects := m.itemRects(ctx, b)

	hit := func(p Vec2) int {
		for i, r := range rects {
			if r.Contains(p) {
				return i
			}
		}
		return -1
	}

	switch ev.Type {
	case EventMouseMove, EventMouseDrag:
		if i := hit(ev.Pos); m.selectable(i) {
			m.hovered = i
		} else {
			m.hovered = -1
		}
		ctx.RequestRepaint()
		return false
	case EventMouseDown, EventContextClick:
		if !b.Contains(ev.Pos) {
			m.Close()
		}
		ev.Use()
	case EventMouseUp:
		if b.Contains(ev.Pos) {
			m.confirm(hit(ev.Pos))
		}
		ev.Use()
	case EventKeyDown:
		switch ev.Key {
		case KeyUp:
			m.step(-1)
		case KeyDown:
			m.step(1)
		case KeyEnter, KeySpace:
			m.confirm(m.hovered)
		case KeyEscape:
			m.Close()
		}
		ev.Use()
	case EventScrollWheel:
		ev.Use()
	default:
		return false
	}
	ctx.RequestRepaint()
	return true
}

// Draw paints the open menu on the foreground draw list.
func (m *PopupMenu) Draw(ctx *Context) {
	if !m.IsOpen() || !ctx.IsRepaint() {
		return
	}
	dl := ctx.ForegroundDrawList
	st := &ctx.style
	b := m.bounds(ctx)

	dl.AddRect(b.X, b.Y, b.W, b.H, st.MenuBgColor)
	dl.AddRectOutline(b.X, b.Y, b.W, b.H, st.MenuBorderColor, 1)

	for i, r := range m.itemRects(ctx, b) {
		it := m.items[i]
		if it.Separator {
			y := r.Y + r.H/2
			dl.AddLine(r.X+st.MenuPadding, y, r.XMax()-st.MenuPadding, y, st.MenuSeparatorColor, 1)
			continue
		}
		if i == m.hovered {
			dl.AddRect(r.X+1, r.Y, r.W-2, r.H, st.MenuHoveredColor)
		}
		color := st.TextColor
		if it.Disabled {
			color = st.TextDisabledColor
		}
		size := ctx.MeasureText(it.Label)
		ctx.AddTextTo(dl, r.X+st.MenuPadding*2, r.Y+(r.H-size.Y)/2, it.Label, color)
	}
}
