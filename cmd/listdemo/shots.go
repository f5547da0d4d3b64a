package main

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-theft-auto/listkit"
	"github.com/go-theft-auto/listkit/raster"
)

// screenshot defines a single list screenshot to capture.
type screenshot struct {
	name   string         // filename without extension
	width  int            // viewport width
	height int            // viewport height
	theme  *listkit.Theme // list theme
	// input queues events after the first frame, when the list geometry
	// is known. It may be nil.
	input  func(lv *listkit.ListView, q *listkit.EventQueue)
	frames int // frames to render after input (0 = default 2)
}

func newShotsCmd(a *app) *cobra.Command {
	var out string
	cmd := &cobra.Command{
		Use:   "shots",
		Short: "Render JPEG screenshots of every theme",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := os.MkdirAll(out, 0o755); err != nil {
				return fmt.Errorf("mkdir: %w", err)
			}
			shots := buildScreenshots(a.themes)
			for _, s := range shots {
				if err := capture(a, s, out); err != nil {
					return fmt.Errorf("capture %s: %w", s.name, err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "  %s.jpg (%dx%d)\n", s.name, s.width, s.height)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "\nGenerated %d screenshots in %s/\n", len(shots), out)
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", filepath.Join("doc", "imgs"), "output directory")
	return cmd
}

// rowCenter returns the center of the visible row slot.
func rowCenter(lv *listkit.ListView, slot int) listkit.Vec2 {
	c := lv.Layout().ListContent
	h := lv.Theme().Element.Height
	return listkit.Vec2{X: c.X + c.W/2, Y: c.Y + float32(slot)*h + h/2}
}

// handlePoint returns a point on the drag handle of the visible row slot.
func handlePoint(lv *listkit.ListView, slot int) listkit.Vec2 {
	c := lv.Layout().ListContent
	h := lv.Theme().Element.Height
	return listkit.Vec2{X: c.X + 8, Y: c.Y + float32(slot+1)*h - 9}
}

func click(q *listkit.EventQueue, p listkit.Vec2, b listkit.MouseButton) {
	q.MouseMoved(p.X, p.Y, 0)
	q.SetMouseButton(b, true, 0)
	q.SetMouseButton(b, false, 0)
}

func buildScreenshots(db *listkit.ThemeDatabase) []screenshot {
	var shots []screenshot
	for _, t := range db.Themes() {
		shots = append(shots, screenshot{
			name:   "list-" + strings.ToLower(strings.ReplaceAll(t.Name, " ", "-")),
			width:  320,
			height: 400,
			theme:  t,
			input: func(lv *listkit.ListView, q *listkit.EventQueue) {
				click(q, rowCenter(lv, 2), listkit.MouseButtonLeft)
			},
		})
	}

	dark := db.StyleByName("Dark")
	shots = append(shots,
		screenshot{
			name:   "list-search",
			width:  320,
			height: 400,
			theme:  dark,
			input: func(lv *listkit.ListView, q *listkit.EventQueue) {
				lv.SetSearchQuery("the")
			},
		},
		screenshot{
			name:   "list-drag",
			width:  320,
			height: 400,
			theme:  dark,
			input: func(lv *listkit.ListView, q *listkit.EventQueue) {
				p := handlePoint(lv, 1)
				q.MouseMoved(p.X, p.Y, 0)
				q.SetMouseButton(listkit.MouseButtonLeft, true, 0)
				q.MouseMoved(p.X, p.Y+47, 0)
			},
		},
		screenshot{
			name:   "list-context-menu",
			width:  320,
			height: 400,
			theme:  dark,
			input: func(lv *listkit.ListView, q *listkit.EventQueue) {
				click(q, rowCenter(lv, 3), listkit.MouseButtonRight)
			},
		},
		screenshot{
			name:   "list-empty",
			width:  320,
			height: 240,
			theme:  dark,
			input: func(lv *listkit.ListView, q *listkit.EventQueue) {
				for lv.Source().Count() > 0 {
					lv.RemoveElement(0)
				}
			},
		},
	)
	return shots
}

func capture(a *app, s screenshot, outDir string) error {
	r := raster.New(s.width, s.height, raster.WithClearColor(color.RGBA{R: 31, G: 31, B: 36, A: 255}))

	// Fresh GUI and list per screenshot to avoid state leaking between captures.
	ui := listkit.New(r)
	cfg := a.cfg
	cfg.Demo.Samples = 25
	d := newDemo(cfg, s.theme)

	size := listkit.Vec2{X: float32(s.width), Y: float32(s.height)}
	q := listkit.NewEventQueue()
	frame := func(t float64) error {
		r.Clear()
		return ui.Frame(q.Drain(), size, t, d.draw)
	}

	if err := frame(0); err != nil {
		return err
	}
	if s.input != nil {
		s.input(d.list, q)
	}
	frames := 2
	if s.frames > 0 {
		frames = s.frames
	}
	for i := range frames {
		if err := frame(float64(i+1) / 60); err != nil {
			return err
		}
	}

	path := filepath.Join(outDir, s.name+".jpg")
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := r.EncodeJPEG(f, 90); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
