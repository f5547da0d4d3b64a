// Package terminal hosts listkit widgets in a terminal through bubbletea.
//
// Every frame is rasterized in software and shown with half-block cells:
// each terminal cell covers CellWidth x CellHeight pixels and shows its top
// and bottom halves as foreground and background colors. Text is not
// rasterized; it is placed from the frame's text runs at cell resolution.
package terminal

import (
	"fmt"
	"image"
	"image/color"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/go-theft-auto/listkit"
	"github.com/go-theft-auto/listkit/raster"
)

// Size of one terminal cell in widget pixels.
const (
	CellWidth  = 8
	CellHeight = 16
)

const repaintInterval = 50 * time.Millisecond

// repaintMsg asks for a frame without input.
type repaintMsg struct{}

// Model is a bubbletea model that runs a listkit draw function.
type Model struct {
	gui    *listkit.GUI
	target *capture
	queue  *listkit.EventQueue
	draw   func(ctx *listkit.Context)
	status func() string
	now    func() float64

	cols, rows int
	held       listkit.MouseButton
	holding    bool
	view       string
}

// Option configures a Model.
type Option func(*Model)

// WithStyle sets the control style.
func WithStyle(s listkit.Style) Option {
	return func(m *Model) { m.gui.SetStyle(s) }
}

// WithStatus shows the returned text on the bottom line.
func WithStatus(f func() string) Option {
	return func(m *Model) { m.status = f }
}

// WithClock replaces the wall clock used for event times.
func WithClock(now func() float64) Option {
	return func(m *Model) { m.now = now }
}

// capture rasterizes without glyphs and keeps the text runs of the frame.
type capture struct {
	*raster.Renderer
	runs []listkit.TextRun
}

func (c *capture) Render(dl *listkit.DrawList) error {
	c.runs = append(c.runs, dl.TextRuns...)
	return c.Renderer.Render(dl)
}

// New creates a model drawing with draw. The initial size is 80x24 until
// the first WindowSizeMsg arrives.
func New(draw func(ctx *listkit.Context), opts ...Option) *Model {
	target := &capture{Renderer: raster.New(80*CellWidth, 23*CellHeight, raster.WithoutText())}
	start := time.Now()
	m := &Model{
		gui:    listkit.New(target),
		target: target,
		queue:  listkit.NewEventQueue(),
		draw:   draw,
		now:    func() float64 { return time.Since(start).Seconds() },
		cols:   80,
		rows:   24,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Run starts a full-screen program with mouse motion reporting.
func Run(draw func(ctx *listkit.Context), opts ...Option) error {
	p := tea.NewProgram(New(draw, opts...), tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal program: %w", err)
	}
	return nil
}

func (m *Model) Init() tea.Cmd {
	return func() tea.Msg { return repaintMsg{} }
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.Type == tea.KeyCtrlC {
		return m, tea.Quit
	}
	if _, ok := msg.(repaintMsg); !ok && !m.translate(msg) {
		return m, nil
	}
	if err := m.frame(); err != nil {
		listkit.Logger().WithError(err).Error("terminal frame failed")
	}
	if m.gui.NeedsRepaint() {
		return m, tea.Tick(repaintInterval, func(time.Time) tea.Msg { return repaintMsg{} })
	}
	return m, nil
}

func (m *Model) View() string {
	return m.view
}

// displaySize is the widget area in pixels. The last row holds the status.
func (m *Model) displaySize() listkit.Vec2 {
	return listkit.Vec2{X: float32(m.cols * CellWidth), Y: float32(max(m.rows-1, 1) * CellHeight)}
}

// cellCenter converts a cell position to widget pixels.
func cellCenter(x, y int) (float32, float32) {
	return float32(x*CellWidth + CellWidth/2), float32(y*CellHeight + CellHeight/2)
}

// translate turns a bubbletea message into queued events. It reports
// whether the message was relevant.
func (m *Model) translate(msg tea.Msg) bool {
	t := m.now()
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.cols, m.rows = max(msg.Width, 1), max(msg.Height, 1)
		size := m.displaySize()
		m.gui.Resize(int(size.X), int(size.Y))
		return true

	case tea.KeyMsg:
		return m.translateKey(msg, t)

	case tea.MouseMsg:
		x, y := cellCenter(msg.X, msg.Y)
		switch {
		case msg.Button == tea.MouseButtonWheelUp:
			m.queue.Scrolled(0, -1, t)
		case msg.Button == tea.MouseButtonWheelDown:
			m.queue.Scrolled(0, 1, t)
		case msg.Action == tea.MouseActionMotion:
			m.queue.MouseMoved(x, y, t)
		case msg.Action == tea.MouseActionPress:
			b, ok := mouseButton(msg.Button)
			if !ok {
				return false
			}
			m.queue.MouseMoved(x, y, t)
			m.queue.SetMouseButton(b, true, t)
			m.held, m.holding = b, true
		case msg.Action == tea.MouseActionRelease:
			// Some terminals do not report which button was released.
			b, ok := mouseButton(msg.Button)
			if !ok {
				if !m.holding {
					return false
				}
				b = m.held
			}
			m.queue.MouseMoved(x, y, t)
			m.queue.SetMouseButton(b, false, t)
			m.holding = false
		default:
			return false
		}
		return true
	}
	return false
}

func (m *Model) translateKey(msg tea.KeyMsg, t float64) bool {
	switch msg.Type {
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			m.queue.CharTyped(r, t)
		}
		return len(msg.Runes) > 0
	case tea.KeySpace:
		m.queue.KeyPressed(listkit.KeySpace, t)
		m.queue.CharTyped(' ', t)
		return true
	}
	k := keyFor(msg.Type)
	if k == listkit.KeyNone {
		return false
	}
	m.queue.KeyPressed(k, t)
	return true
}

func keyFor(t tea.KeyType) listkit.Key {
	switch t {
	case tea.KeyUp:
		return listkit.KeyUp
	case tea.KeyDown:
		return listkit.KeyDown
	case tea.KeyLeft:
		return listkit.KeyLeft
	case tea.KeyRight:
		return listkit.KeyRight
	case tea.KeyHome:
		return listkit.KeyHome
	case tea.KeyEnd:
		return listkit.KeyEnd
	case tea.KeyPgUp:
		return listkit.KeyPageUp
	case tea.KeyPgDown:
		return listkit.KeyPageDown
	case tea.KeyDelete:
		return listkit.KeyDelete
	case tea.KeyBackspace:
		return listkit.KeyBackspace
	case tea.KeyEnter:
		return listkit.KeyEnter
	case tea.KeyEsc:
		return listkit.KeyEscape
	case tea.KeyTab:
		return listkit.KeyTab
	case tea.KeyInsert:
		return listkit.KeyInsert
	}
	return listkit.KeyNone
}

func mouseButton(b tea.MouseButton) (listkit.MouseButton, bool) {
	switch b {
	case tea.MouseButtonLeft:
		return listkit.MouseButtonLeft, true
	case tea.MouseButtonRight:
		return listkit.MouseButtonRight, true
	case tea.MouseButtonMiddle:
		return listkit.MouseButtonMiddle, true
	}
	return 0, false
}

// frame runs the queued events through the GUI and rebuilds the view.
func (m *Model) frame() error {
	m.target.Clear()
	m.target.runs = m.target.runs[:0]
	if err := m.gui.Frame(m.queue.Drain(), m.displaySize(), m.now(), m.draw); err != nil {
		return err
	}
	grid := cells(m.target.Image(), m.cols, max(m.rows-1, 1))
	placeText(grid, m.target.runs)

	var b strings.Builder
	b.WriteString(renderCells(grid))
	b.WriteByte('\n')
	status := ""
	if m.status != nil {
		status = m.status()
	}
	b.WriteString(statusStyle.Width(m.cols).MaxWidth(m.cols).Render(status))
	m.view = b.String()
	return nil
}

var statusStyle = lipgloss.NewStyle().Faint(true)

// cell is one terminal cell. An empty glyph continues a wide rune to the
// left of it.
type cell struct {
	glyph  string
	fg, bg color.RGBA
}

const upperHalf = "▀"

// cells samples img into a cols x rows half-block grid.
func cells(img *image.RGBA, cols, rows int) [][]cell {
	grid := make([][]cell, rows)
	half := CellHeight / 2
	for y := range grid {
		grid[y] = make([]cell, cols)
		for x := range grid[y] {
			r := image.Rect(x*CellWidth, y*CellHeight, (x+1)*CellWidth, y*CellHeight+half)
			grid[y][x] = cell{
				glyph: upperHalf,
				fg:    average(img, r),
				bg:    average(img, r.Add(image.Pt(0, half))),
			}
		}
	}
	return grid
}

func average(img *image.RGBA, r image.Rectangle) color.RGBA {
	r = r.Intersect(img.Rect)
	n := r.Dx() * r.Dy()
	if n == 0 {
		return color.RGBA{A: 255}
	}
	var sr, sg, sb int
	for y := r.Min.Y; y < r.Max.Y; y++ {
		off := img.PixOffset(r.Min.X, y)
		for x := 0; x < r.Dx(); x++ {
			p := img.Pix[off+x*4:]
			sr += int(p[0])
			sg += int(p[1])
			sb += int(p[2])
		}
	}
	return color.RGBA{R: uint8(sr / n), G: uint8(sg / n), B: uint8(sb / n), A: 255}
}

// placeText writes text runs into the grid. A glyph lands in the cell
// holding its center and is dropped when that center is clipped.
func placeText(grid [][]cell, runs []listkit.TextRun) {
	for _, run := range runs {
		r, g, b, _ := listkit.UnpackRGBA(run.Color)
		fg := color.RGBA{R: r, G: g, B: b, A: 255}
		cy := run.Y + run.CharH/2
		row := int(cy) / CellHeight
		if row < 0 || row >= len(grid) || cy < run.Clip[1] || cy >= run.Clip[3] {
			continue
		}
		line := grid[row]
		offset := 0
		for _, ch := range run.Text {
			w := runewidth.RuneWidth(ch)
			if w == 0 {
				continue
			}
			cx := run.X + float32(offset)*run.CharW + float32(w)*run.CharW/2
			offset += w
			col := int(cx) / CellWidth
			if cx < 0 || cx < run.Clip[0] || cx >= run.Clip[2] || col+w > len(line) {
				continue
			}
			bg := blendHalves(line[col])
			line[col] = cell{glyph: string(ch), fg: fg, bg: bg}
			if w == 2 {
				line[col+1] = cell{fg: fg, bg: bg}
			}
		}
	}
}

// blendHalves returns the color a text cell shows behind its glyph.
func blendHalves(c cell) color.RGBA {
	if c.glyph != upperHalf {
		return c.bg
	}
	return color.RGBA{
		R: uint8((int(c.fg.R) + int(c.bg.R)) / 2),
		G: uint8((int(c.fg.G) + int(c.bg.G)) / 2),
		B: uint8((int(c.fg.B) + int(c.bg.B)) / 2),
		A: 255,
	}
}

func hex(c color.RGBA) lipgloss.Color {
	return lipgloss.Color(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

// renderCells styles the grid, merging neighbours that share colors.
func renderCells(grid [][]cell) string {
	var b strings.Builder
	for y, line := range grid {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < len(line); {
			start := line[x]
			var run strings.Builder
			for x < len(line) && line[x].fg == start.fg && line[x].bg == start.bg {
				run.WriteString(line[x].glyph)
				x++
			}
			style := lipgloss.NewStyle().Foreground(hex(start.fg)).Background(hex(start.bg))
			b.WriteString(style.Render(run.String()))
		}
	}
	return b.String()
}
