package listkit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type menuHarness struct {
	t    *testing.T
	ui   *GUI
	q    *EventQueue
	menu *PopupMenu
	// consumed counts events the menu took.
	consumed int
	bounds   Rect
}

func newMenuHarness(t *testing.T) *menuHarness {
	return &menuHarness{t: t, ui: New(nil), q: NewEventQueue(), menu: NewPopupMenu()}
}

func (h *menuHarness) frame() {
	h.t.Helper()
	require.NoError(h.t, h.ui.Frame(h.q.Drain(), Vec2{400, 300}, 1, func(ctx *Context) {
		if h.menu.HandleEvent(ctx) {
			h.consumed++
		}
		if h.menu.IsOpen() {
			h.bounds = h.menu.bounds(ctx)
		}
		h.menu.Draw(ctx)
	}))
}

func TestPopupMenuOpenClose(t *testing.T) {
	var m *PopupMenu
	assert.False(t, m.IsOpen())

	m = NewPopupMenu()
	m.Open(Vec2{1, 2}, []MenuItem{{Label: "A"}})
	assert.True(t, m.IsOpen())
	assert.Equal(t, -1, m.Hovered())
	assert.Len(t, m.Items(), 1)
	m.Close()
	assert.False(t, m.IsOpen())
}

func TestPopupMenuKeyboardSkipsSeparatorsAndDisabled(t *testing.T) {
	h := newMenuHarness(t)
	ran := ""
	h.menu.Open(Vec2{10, 10}, []MenuItem{
		{Label: "A", Action: func() { ran = "A" }},
		MenuSeparator(),
		{Label: "B", Disabled: true, Action: func() { ran = "B" }},
		{Label: "C", Action: func() { ran = "C" }},
	})

	h.q.KeyPressed(KeyDown, 0)
	h.frame()
	assert.Equal(t, 0, h.menu.Hovered())

	h.q.KeyPressed(KeyDown, 0)
	h.frame()
	assert.Equal(t, 3, h.menu.Hovered())

	h.q.KeyPressed(KeyDown, 0)
	h.frame()
	assert.Equal(t, 3, h.menu.Hovered())

	h.q.KeyPressed(KeyUp, 0)
	h.q.KeyPressed(KeyDown, 0)
	h.q.KeyPressed(KeyEnter, 0)
	h.frame()
	assert.Equal(t, "C", ran)
	assert.False(t, h.menu.IsOpen())
	assert.Equal(t, 6, h.consumed)
}

func TestPopupMenuMouse(t *testing.T) {
	h := newMenuHarness(t)
	ran := ""
	h.menu.Open(Vec2{10, 10}, []MenuItem{
		{Label: "One", Action: func() { ran = "One" }},
		{Label: "Two", Action: func() { ran = "Two" }},
	})
	h.frame()
	b := h.bounds
	pad, rowH := DefaultStyle().MenuPadding, DefaultStyle().MenuItemHeight
	second := Vec2{b.X + 10, b.Y + pad + rowH*1.5}

	h.q.MouseMoved(second.X, second.Y, 0)
	h.frame()
	assert.Equal(t, 1, h.menu.Hovered())

	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.q.SetMouseButton(MouseButtonLeft, false, 0)
	h.frame()
	assert.Equal(t, "Two", ran)
	assert.False(t, h.menu.IsOpen())
}

func TestPopupMenuClickOutsideCloses(t *testing.T) {
	h := newMenuHarness(t)
	ran := false
	h.menu.Open(Vec2{10, 10}, []MenuItem{{Label: "One", Action: func() { ran = true }}})
	h.q.MouseMoved(300, 250, 0)
	h.q.SetMouseButton(MouseButtonLeft, true, 0)
	h.frame()

	assert.False(t, h.menu.IsOpen())
	assert.False(t, ran)
	assert.Equal(t, 1, h.consumed)
}

func TestPopupMenuEscapeAndScroll(t *testing.T) {
	h := newMenuHarness(t)
	h.menu.Open(Vec2{10, 10}, []MenuItem{{Label: "One"}})
	h.q.Scrolled(0, 1, 0)
	h.frame()
	assert.True(t, h.menu.IsOpen())
	assert.Equal(t, 1, h.consumed)

	h.q.KeyPressed(KeyEscape, 0)
	h.frame()
	assert.False(t, h.menu.IsOpen())
}

func TestPopupMenuStaysOnScreen(t *testing.T) {
	h := newMenuHarness(t)
	h.menu.Open(Vec2{395, 295}, []MenuItem{{Label: "Move to Bottom"}, MenuSeparator(), {Label: "Delete"}})
	h.frame()

	b := h.bounds
	assert.LessOrEqual(t, b.XMax(), float32(400))
	assert.LessOrEqual(t, b.YMax(), float32(300))
	assert.GreaterOrEqual(t, b.X, float32(0))
	st := DefaultStyle()
	assert.Equal(t, st.MenuPadding*2+st.MenuItemHeight*2+menuSeparatorHeight, b.H)
}
