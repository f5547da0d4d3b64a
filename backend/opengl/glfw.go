package opengl

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/listkit"
)

// GLFWInputAdapter feeds GLFW window callbacks into a listkit.EventQueue.
type GLFWInputAdapter struct {
	window *glfw.Window
	queue  *listkit.EventQueue
	now    func() float64
}

// NewGLFWInputAdapter installs input callbacks on window.
func NewGLFWInputAdapter(window *glfw.Window) *GLFWInputAdapter {
	adapter := &GLFWInputAdapter{
		window: window,
		queue:  listkit.NewEventQueue(),
		now:    glfw.GetTime,
	}

	window.SetKeyCallback(adapter.keyCallback)
	window.SetCharCallback(adapter.charCallback)
	window.SetMouseButtonCallback(adapter.mouseButtonCallback)
	window.SetScrollCallback(adapter.scrollCallback)
	window.SetCursorPosCallback(adapter.cursorPosCallback)

	return adapter
}

// Queue returns the event queue the callbacks write to.
func (a *GLFWInputAdapter) Queue() *listkit.EventQueue {
	return a.queue
}

// Events drains the events collected since the last call. Call it once per
// frame after glfw.PollEvents.
func (a *GLFWInputAdapter) Events() []listkit.Event {
	return a.queue.Drain()
}

func (a *GLFWInputAdapter) keyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if action == glfw.Release {
		return
	}
	if k := glfwKeyToKey(key); k != listkit.KeyNone {
		a.queue.KeyPressed(k, a.now())
	}
}

func (a *GLFWInputAdapter) charCallback(w *glfw.Window, char rune) {
	a.queue.CharTyped(char, a.now())
}

func (a *GLFWInputAdapter) mouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	b := glfwMouseButton(button)
	if b < 0 {
		return
	}
	a.queue.SetMouseButton(b, action == glfw.Press, a.now())
}

// GLFW reports positive yoff for wheel-up; listkit pages forward on
// positive deltas.
func (a *GLFWInputAdapter) scrollCallback(w *glfw.Window, xoff, yoff float64) {
	a.queue.Scrolled(float32(xoff), float32(-yoff), a.now())
}

func (a *GLFWInputAdapter) cursorPosCallback(w *glfw.Window, xpos, ypos float64) {
	a.queue.MouseMoved(float32(xpos), float32(ypos), a.now())
}

// glfwKeyToKey maps GLFW keys to listkit keys.
func glfwKeyToKey(key glfw.Key) listkit.Key {
	switch key {
	case glfw.KeyTab:
		return listkit.KeyTab
	case glfw.KeyLeft:
		return listkit.KeyLeft
	case glfw.KeyRight:
		return listkit.KeyRight
	case glfw.KeyUp:
		return listkit.KeyUp
	case glfw.KeyDown:
		return listkit.KeyDown
	case glfw.KeyPageUp:
		return listkit.KeyPageUp
	case glfw.KeyPageDown:
		return listkit.KeyPageDown
	case glfw.KeyHome:
		return listkit.KeyHome
	case glfw.KeyEnd:
		return listkit.KeyEnd
	case glfw.KeyInsert:
		return listkit.KeyInsert
	case glfw.KeyDelete:
		return listkit.KeyDelete
	case glfw.KeyBackspace:
		return listkit.KeyBackspace
	case glfw.KeySpace:
		return listkit.KeySpace
	case glfw.KeyEnter, glfw.KeyKPEnter:
		return listkit.KeyEnter
	case glfw.KeyEscape:
		return listkit.KeyEscape
	default:
		return listkit.KeyNone
	}
}

// glfwMouseButton maps GLFW mouse buttons, returning -1 for unsupported ones.
func glfwMouseButton(button glfw.MouseButton) listkit.MouseButton {
	switch button {
	case glfw.MouseButtonLeft:
		return listkit.MouseButtonLeft
	case glfw.MouseButtonRight:
		return listkit.MouseButtonRight
	case glfw.MouseButtonMiddle:
		return listkit.MouseButtonMiddle
	default:
		return -1
	}
}
