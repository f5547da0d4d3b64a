package listkit

// LayoutType defines the direction of a layout.
type LayoutType uint8

const (
	LayoutVertical   LayoutType = iota // Items stack vertically (default)
	LayoutHorizontal                   // Items stack horizontally
)

// Layout tracks one host layout region. GetRect hands out space from it
// in order.
type Layout struct {
	Type   LayoutType
	Region Rect
	Cursor Vec2
	Gap    float32
}

// layoutPlaceholder is what GetRect returns during Layout passes, before
// the host has resolved any geometry.
var layoutPlaceholder = Rect{X: 0, Y: 0, W: 1, H: 1}

func (ctx *Context) pushLayout(region Rect) *Layout {
	l := &Layout{Region: region, Cursor: Vec2{region.X, region.Y}}
	ctx.layoutStack = append(ctx.layoutStack, l)
	return l
}

func (ctx *Context) popLayout() {
	if n := len(ctx.layoutStack); n > 1 {
		ctx.layoutStack = ctx.layoutStack[:n-1]
	}
}

func (ctx *Context) currentLayout() *Layout {
	if n := len(ctx.layoutStack); n > 0 {
		return ctx.layoutStack[n-1]
	}
	return ctx.pushLayout(Rect{W: ctx.DisplaySize.X, H: ctx.DisplaySize.Y})
}

// Area runs contents with GetRect allocating from region.
//
// Usage:
//
//	ctx.Area(sidebar, LayoutVertical)(func() {
//	    list.Display(ctx)
//	})
func (ctx *Context) Area(region Rect, typ LayoutType) func(func()) {
	return func(contents func()) {
		l := ctx.pushLayout(region)
		l.Type = typ
		contents()
		ctx.popLayout()
	}
}

// GetRect allocates a rect from the current layout honoring minimum size
// and stretch flags. During Layout passes the host has no geometry yet and
// the placeholder rect is returned instead.
func (ctx *Context) GetRect(minW, minH float32, stretchW, stretchH bool) Rect {
	if ctx.EventType() == EventLayout {
		return layoutPlaceholder
	}
	l := ctx.currentLayout()

	availW := l.Region.XMax() - l.Cursor.X
	availH := l.Region.YMax() - l.Cursor.Y
	if l.Type == LayoutVertical {
		availW = l.Region.W
	} else {
		availH = l.Region.H
	}

	w := minW
	if stretchW && availW > w {
		w = availW
	}
	h := minH
	if stretchH && availH > h {
		h = availH
	}

	r := Rect{X: l.Cursor.X, Y: l.Cursor.Y, W: w, H: h}
	if l.Type == LayoutVertical {
		l.Cursor.Y += h + l.Gap
	} else {
		l.Cursor.X += w + l.Gap
	}
	return r
}
