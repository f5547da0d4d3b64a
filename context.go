package listkit

import (
	"github.com/mattn/go-runewidth"
)

// Context holds all state for one pass over the UI.
// This is NOT context.Context - it's a dedicated GUI context type.
type Context struct {
	// Drawing output
	DrawList           *DrawList
	ForegroundDrawList *DrawList // For popups (drawn on top)

	// The one event this pass processes. Handlers call Event.Use to
	// consume it.
	Event *Event

	// Screen
	DisplaySize Vec2

	// Host clock in seconds
	Time float64

	// Last known pointer position, valid in every pass
	MousePos Vec2

	// Font texture ID (set by renderer)
	FontTextureID uint32

	style      Style
	stateStore StateStore

	// Layout
	layoutStack []*Layout

	// Press and keyboard focus tracking; both persist across passes.
	activeID  ID
	focusedID ID

	repaintRequested bool

	// Text measurement cache, cleared each pass.
	textMeasureCache map[string]Vec2
}

// NewContext creates a new GUI context with default settings.
func NewContext() *Context {
	return &Context{
		style:            DefaultStyle(),
		stateStore:       make(MapStateStore),
		layoutStack:      make([]*Layout, 0, 8),
		textMeasureCache: make(map[string]Vec2, 64),
	}
}

// Style returns the current style.
func (ctx *Context) Style() Style {
	return ctx.style
}

// SetStyle sets the base style.
func (ctx *Context) SetStyle(style Style) {
	ctx.style = style
}

// Reset prepares the context for a new pass.
func (ctx *Context) Reset(displaySize Vec2) {
	ctx.DisplaySize = displaySize
	ctx.layoutStack = ctx.layoutStack[:0]
	ctx.pushLayout(Rect{W: displaySize.X, H: displaySize.Y})
	clear(ctx.textMeasureCache)
}

// EventType returns the type of the current event, or EventNone.
func (ctx *Context) EventType() EventType {
	if ctx.Event == nil {
		return EventNone
	}
	return ctx.Event.Type
}

// IsRepaint reports whether this pass paints.
func (ctx *Context) IsRepaint() bool {
	return ctx.EventType() == EventRepaint
}

// RequestRepaint asks the host to run another Repaint pass.
func (ctx *Context) RequestRepaint() {
	ctx.repaintRequested = true
}

// isHovered returns true if the pointer is inside rect.
func (ctx *Context) isHovered(rect Rect) bool {
	return rect.Contains(ctx.MousePos)
}

// IsHovered returns true if the pointer is inside rect (public API).
func (ctx *Context) IsHovered(rect Rect) bool {
	return ctx.isHovered(rect)
}

// SetFocused gives a control keyboard focus.
func (ctx *Context) SetFocused(id ID) {
	ctx.focusedID = id
}

// IsFocused returns true if the control has keyboard focus.
func (ctx *Context) IsFocused(id ID) bool {
	return id != 0 && ctx.focusedID == id
}

// ClearFocus removes keyboard focus.
func (ctx *Context) ClearFocus() {
	ctx.focusedID = 0
}

// HasWidgetFocus returns true if any control has keyboard focus.
func (ctx *Context) HasWidgetFocus() bool {
	return ctx.focusedID != 0
}

// lineHeight returns the height of a single line of text.
func (ctx *Context) lineHeight() float32 {
	return ctx.style.CharHeight * ctx.style.FontScale
}

// LineHeight returns the height of a single line of text (public API).
func (ctx *Context) LineHeight() float32 {
	return ctx.lineHeight()
}

// charWidth returns the width of one monospace cell.
func (ctx *Context) charWidth() float32 {
	return ctx.style.CharWidth * ctx.style.FontScale
}

// MeasureText returns the size of rendered text. Wide runes take two cells.
// Results are cached per pass.
func (ctx *Context) MeasureText(text string) Vec2 {
	if cached, ok := ctx.textMeasureCache[text]; ok {
		return cached
	}
	result := Vec2{
		X: float32(runewidth.StringWidth(text)) * ctx.charWidth(),
		Y: ctx.lineHeight(),
	}
	if ctx.textMeasureCache != nil {
		ctx.textMeasureCache[text] = result
	}
	return result
}

// AddTextTo draws text to a specific DrawList (for foreground rendering).
func (ctx *Context) AddTextTo(dl *DrawList, x, y float32, text string, color uint32) {
	if dl == nil {
		return
	}
	dl.SetTexture(ctx.FontTextureID)
	dl.AddText(x, y, text, color, ctx.style.FontScale, ctx.style.CharWidth, ctx.style.CharHeight)
	dl.SetTexture(0)
}

// AddText draws text with the current style.
func (ctx *Context) AddText(x, y float32, text string, color uint32) {
	ctx.AddTextTo(ctx.DrawList, x, y, text, color)
}

// addTextIn draws text centered vertically in r, starting at its left
// edge, or centered both ways when center is set.
func (ctx *Context) addTextIn(r Rect, text string, color uint32, center bool) {
	size := ctx.MeasureText(text)
	x := r.X
	if center {
		x = r.X + (r.W-size.X)/2
	}
	ctx.AddText(x, r.Y+(r.H-size.Y)/2, text, color)
}
