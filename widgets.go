package listkit

import (
	"unicode"
	"unicode/utf8"
)

// ButtonOptions tweaks a Button.
type ButtonOptions struct {
	Disabled  bool
	TextColor uint32 // 0 = style text color
	NoFrame   bool   // draw only the label
	HoverText uint32 // label color while hovered, 0 = unchanged
}

// Button draws a push button in r and reports whether it was clicked this
// pass. A click is a left press and release that both land inside r.
// Disabled buttons ignore input before any click processing.
func (ctx *Context) Button(id ID, r Rect, label string, opts ButtonOptions) bool {
	ev := ctx.Event
	clicked := false

	if ev != nil && !opts.Disabled {
		switch ev.Type {
		case EventMouseDown:
			if ev.Button == MouseButtonLeft && r.Contains(ev.Pos) {
				ctx.activeID = id
				ev.Use()
			}
		case EventMouseUp:
			if ctx.activeID == id {
				ctx.activeID = 0
				ev.Use()
				clicked = r.Contains(ev.Pos)
			}
		}
	}

	if ctx.IsRepaint() {
		hovered := ctx.isHovered(r) && !opts.Disabled
		pressed := hovered && ctx.activeID == id

		if !opts.NoFrame {
			bg := ctx.style.ButtonColor
			switch {
			case opts.Disabled:
				bg = ctx.style.ButtonDisabledColor
			case pressed:
				bg = ctx.style.ButtonActiveColor
			case hovered:
				bg = ctx.style.ButtonHoveredColor
			}
			ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
		}

		textColor := ctx.style.TextColor
		if opts.TextColor != 0 {
			textColor = opts.TextColor
		}
		if hovered && opts.HoverText != 0 {
			textColor = opts.HoverText
		}
		if opts.Disabled {
			textColor = ctx.style.TextDisabledColor
		}
		ctx.addTextIn(r, label, textColor, true)
	}

	return clicked
}

// TextField draws a single-line editable field in r bound to value and
// reports whether the value changed this pass. A left press inside the
// field takes keyboard focus; a press elsewhere, Enter or Escape drops it.
func (ctx *Context) TextField(id ID, r Rect, value *string, placeholder string) bool {
	ev := ctx.Event
	state := GetState(ctx, id, TextFieldState{CursorPos: utf8.RuneCountInString(*value)})
	runes := []rune(*value)
	state.CursorPos = clampi(state.CursorPos, 0, len(runes))
	changed := false

	if ev != nil {
		switch ev.Type {
		case EventMouseDown:
			if r.Contains(ev.Pos) {
				ctx.SetFocused(id)
				state.CursorPos = ctx.cursorFromX(runes, ev.Pos.X-r.X-ctx.style.InputPadding+state.ScrollOffset)
				ev.Use()
			} else if ctx.IsFocused(id) {
				ctx.ClearFocus()
			}
		case EventKeyDown:
			if ctx.IsFocused(id) {
				changed = ctx.editText(ev, &runes, &state)
				ev.Use()
				ctx.RequestRepaint()
			}
		}
	}
	if changed {
		*value = string(runes)
	}

	if ctx.IsRepaint() {
		focused := ctx.IsFocused(id)
		bg := ctx.style.InputBgColor
		if focused {
			bg = ctx.style.InputFocusedBgColor
		}
		ctx.DrawList.AddRect(r.X, r.Y, r.W, r.H, bg)
		ctx.DrawList.AddRectOutline(r.X, r.Y, r.W, r.H, ctx.style.InputBorderColor, 1)

		textX := r.X + ctx.style.InputPadding
		maxWidth := r.W - ctx.style.InputPadding*2
		caretX := ctx.MeasureText(string(runes[:state.CursorPos])).X
		if caretX-state.ScrollOffset > maxWidth {
			state.ScrollOffset = caretX - maxWidth
		}
		if caretX < state.ScrollOffset {
			state.ScrollOffset = caretX
		}

		ctx.DrawList.PushClipRect(textX, r.Y, textX+maxWidth, r.YMax())
		textY := r.Y + (r.H-ctx.lineHeight())/2
		switch {
		case len(runes) > 0:
			ctx.AddText(textX-state.ScrollOffset, textY, string(runes), ctx.style.TextColor)
		case !focused && placeholder != "":
			ctx.AddText(textX, textY, placeholder, ctx.style.PlaceholderColor)
		}
		ctx.DrawList.PopClipRect()

		// Blink every half second
		if focused && int(ctx.Time*2)%2 == 0 {
			cx := textX + caretX - state.ScrollOffset
			ctx.DrawList.AddLine(cx, r.Y+2, cx, r.YMax()-2, ctx.style.TextColor, 1)
		}
	}

	SetState(ctx, id, state)
	return changed
}

// editText applies one key event to the field. It returns true when the
// text changed.
func (ctx *Context) editText(ev *Event, runes *[]rune, state *TextFieldState) bool {
	rs := *runes
	switch ev.Key {
	case KeyBackspace:
		if state.CursorPos > 0 {
			*runes = append(rs[:state.CursorPos-1], rs[state.CursorPos:]...)
			state.CursorPos--
			return true
		}
	case KeyDelete:
		if state.CursorPos < len(rs) {
			*runes = append(rs[:state.CursorPos], rs[state.CursorPos+1:]...)
			return true
		}
	case KeyLeft:
		state.CursorPos = max(0, state.CursorPos-1)
	case KeyRight:
		state.CursorPos = min(len(rs), state.CursorPos+1)
	case KeyHome:
		state.CursorPos = 0
	case KeyEnd:
		state.CursorPos = len(rs)
	case KeyEnter, KeyEscape:
		ctx.ClearFocus()
	case KeyNone:
		if ev.Char != 0 && unicode.IsPrint(ev.Char) {
			out := make([]rune, 0, len(rs)+1)
			out = append(out, rs[:state.CursorPos]...)
			out = append(out, ev.Char)
			out = append(out, rs[state.CursorPos:]...)
			*runes = out
			state.CursorPos++
			return true
		}
	}
	return false
}

// cursorFromX maps a horizontal offset into the text to a rune index.
func (ctx *Context) cursorFromX(runes []rune, x float32) int {
	pos := 0
	for i := 0; i <= len(runes); i++ {
		if ctx.MeasureText(string(runes[:i])).X > x {
			break
		}
		pos = i
	}
	return pos
}
