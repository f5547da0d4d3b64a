package main

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/spf13/cobra"

	"github.com/go-theft-auto/listkit"
	"github.com/go-theft-auto/listkit/backend/opengl"
)

func newGLCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "gl",
		Short: "Run the demo in an OpenGL window",
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runGL()
		},
	}
}

func (a *app) runGL() error {
	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	width, height := a.cfg.Window.Width, a.cfg.Window.Height
	window, err := glfw.CreateWindow(width, height, "listdemo", nil, nil)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	renderer, err := opengl.NewRenderer(width, height)
	if err != nil {
		return fmt.Errorf("list renderer: %w", err)
	}
	defer renderer.Delete()

	input := opengl.NewGLFWInputAdapter(window)
	ui := listkit.New(renderer)
	d := newDemo(a.cfg, a.theme())

	for !window.ShouldClose() {
		if ui.NeedsRepaint() {
			glfw.PollEvents()
		} else {
			glfw.WaitEventsTimeout(0.5)
		}

		w, h := window.GetSize()
		fw, fh := window.GetFramebufferSize()
		ui.Resize(w, h)
		gl.Viewport(0, 0, int32(fw), int32(fh))
		gl.ClearColor(0.12, 0.12, 0.14, 1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		size := listkit.Vec2{X: float32(w), Y: float32(h)}
		if err := ui.Frame(input.Events(), size, glfw.GetTime(), d.draw); err != nil {
			return fmt.Errorf("list render: %w", err)
		}
		window.SetTitle("listdemo  " + d.status())
		window.SwapBuffers()
	}
	return nil
}
