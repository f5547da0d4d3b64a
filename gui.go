package listkit

// Renderer is the interface for rendering GUI draw data.
type Renderer interface {
	Render(dl *DrawList) error
	FontTextureID() uint32
	Resize(width, height int)
}

// GUI drives passes over an immediate-mode UI: one pass per input event,
// then a Layout pass and a Repaint pass.
type GUI struct {
	renderer   Renderer
	stateStore StateStore
	style      Style
	ctx        *Context
	event      Event
	mousePos   Vec2
}

// GUIOption configures a GUI instance.
type GUIOption func(*GUI)

// WithStyle sets the control style.
func WithStyle(style Style) GUIOption {
	return func(g *GUI) { g.style = style }
}

// WithStateStore sets a custom state store.
func WithStateStore(store StateStore) GUIOption {
	return func(g *GUI) { g.stateStore = store }
}

// New creates a new GUI instance. renderer may be nil for headless use, in
// which case nothing is submitted.
func New(renderer Renderer, opts ...GUIOption) *GUI {
	g := &GUI{
		renderer:   renderer,
		stateStore: make(MapStateStore),
		style:      DefaultStyle(),
		ctx:        NewContext(),
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// Begin starts a pass for ev and returns the GUI context.
func (g *GUI) Begin(ev Event, displaySize Vec2) *Context {
	ctx := g.ctx

	ctx.DrawList = AcquireDrawList()
	ctx.ForegroundDrawList = AcquireDrawList()

	if ev.IsMouse() || ev.Type == EventScrollWheel || ev.Type == EventContextClick {
		g.mousePos = ev.Pos
	}
	if ev.Type == EventLayout || ev.Type == EventRepaint {
		ev.Pos = g.mousePos
	}
	g.event = ev

	ctx.Event = &g.event
	ctx.Time = ev.Time
	ctx.MousePos = g.mousePos
	ctx.stateStore = g.stateStore
	ctx.SetStyle(g.style)
	if g.renderer != nil {
		ctx.FontTextureID = g.renderer.FontTextureID()
	}
	ctx.Reset(displaySize)

	return ctx
}

// End finishes the pass. Draw lists are submitted to the renderer only
// for Repaint passes.
func (g *GUI) End() error {
	ctx := g.ctx
	if ctx.DrawList == nil {
		return nil
	}

	var err error
	if g.renderer != nil && g.event.Type == EventRepaint {
		err = g.renderer.Render(ctx.DrawList)
		if err == nil && len(ctx.ForegroundDrawList.VtxBuffer) > 0 {
			err = g.renderer.Render(ctx.ForegroundDrawList)
		}
	}

	ReleaseDrawList(ctx.DrawList)
	ReleaseDrawList(ctx.ForegroundDrawList)
	ctx.DrawList = nil
	ctx.ForegroundDrawList = nil
	ctx.Event = nil

	return err
}

// Frame runs one pass per queued event followed by a Layout pass and a
// Repaint pass, calling draw in each.
func (g *GUI) Frame(events []Event, displaySize Vec2, now float64, draw func(ctx *Context)) error {
	g.ctx.repaintRequested = false
	for _, ev := range events {
		if ev.Time == 0 {
			ev.Time = now
		}
		if err := g.pass(ev, displaySize, draw); err != nil {
			return err
		}
	}
	if err := g.pass(Event{Type: EventLayout, Time: now}, displaySize, draw); err != nil {
		return err
	}
	return g.pass(Event{Type: EventRepaint, Time: now}, displaySize, draw)
}

func (g *GUI) pass(ev Event, displaySize Vec2, draw func(ctx *Context)) error {
	ctx := g.Begin(ev, displaySize)
	draw(ctx)
	return g.End()
}

// NeedsRepaint reports whether a control asked for another Repaint during
// the last Frame.
func (g *GUI) NeedsRepaint() bool {
	return g.ctx.repaintRequested
}

// Context returns the GUI context.
// Only valid between Begin() and End() calls.
func (g *GUI) Context() *Context {
	return g.ctx
}

// Style returns the current control style.
func (g *GUI) Style() Style {
	return g.style
}

// SetStyle sets the control style.
func (g *GUI) SetStyle(style Style) {
	g.style = style
}

// Resize notifies the GUI of a display size change.
func (g *GUI) Resize(width, height int) {
	if g.renderer != nil {
		g.renderer.Resize(width, height)
	}
}
