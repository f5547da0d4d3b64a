package listkit

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// LayerKind selects the primitive a layer draws.
type LayerKind int

const (
	LayerSolidColor LayerKind = iota
	LayerBorder
	LayerRoundedRect
	LayerGradient
)

var layerKindNames = map[LayerKind]string{
	LayerSolidColor:  "solid",
	LayerBorder:      "border",
	LayerRoundedRect: "rounded",
	LayerGradient:    "gradient",
}

func (k LayerKind) String() string {
	if s, ok := layerKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("LayerKind(%d)", int(k))
}

// MarshalText implements encoding.TextMarshaler.
func (k LayerKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *LayerKind) UnmarshalText(text []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(text)))
	for kind, s := range layerKindNames {
		if s == name {
			*k = kind
			return nil
		}
	}
	return fmt.Errorf("unknown layer kind %q", text)
}

// GradientDirection is the axis a gradient layer varies along.
type GradientDirection int

const (
	GradientVertical GradientDirection = iota
	GradientHorizontal
)

func (d GradientDirection) String() string {
	if d == GradientHorizontal {
		return "horizontal"
	}
	return "vertical"
}

// MarshalText implements encoding.TextMarshaler.
func (d GradientDirection) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *GradientDirection) UnmarshalText(text []byte) error {
	switch strings.ToLower(strings.TrimSpace(string(text))) {
	case "horizontal":
		*d = GradientHorizontal
	case "vertical":
		*d = GradientVertical
	default:
		return fmt.Errorf("unknown gradient direction %q", text)
	}
	return nil
}

// Layer is one visual primitive of a LayerConfig.
type Layer struct {
	Enabled           bool              `toml:"enabled" yaml:"enabled"`
	Kind              LayerKind         `toml:"kind" yaml:"kind"`
	Color             Color             `toml:"color" yaml:"color"`
	GradientEndColor  Color             `toml:"gradient_end_color" yaml:"gradient_end_color"`
	GradientDirection GradientDirection `toml:"gradient_direction" yaml:"gradient_direction"`
	Padding           Padding           `toml:"padding" yaml:"padding"`
	BorderWidth       Vec4              `toml:"border_width" yaml:"border_width"`
	BorderRadius      Vec4              `toml:"border_radius" yaml:"border_radius"`
}

// NewLayer returns an enabled white solid-color layer.
func NewLayer() Layer {
	return Layer{
		Enabled:           true,
		Kind:              LayerSolidColor,
		Color:             Color{1, 1, 1, 1},
		GradientEndColor:  Color{0, 0, 0, 1},
		GradientDirection: GradientVertical,
	}
}

// layerFields has Layer's fields without its decoding methods.
type layerFields Layer

// UnmarshalYAML decodes a layer on top of NewLayer, so omitted keys keep
// their defaults and layers are enabled unless a file says otherwise.
func (l *Layer) UnmarshalYAML(n *yaml.Node) error {
	p := layerFields(NewLayer())
	if err := n.Decode(&p); err != nil {
		return err
	}
	*l = Layer(p)
	return nil
}

// UnmarshalTOML decodes a layer table on top of NewLayer.
func (l *Layer) UnmarshalTOML(data any) error {
	table, ok := data.(map[string]any)
	if !ok {
		return fmt.Errorf("layer: want table, got %T", data)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(table); err != nil {
		return fmt.Errorf("layer: %w", err)
	}
	p := layerFields(NewLayer())
	if _, err := toml.Decode(buf.String(), &p); err != nil {
		return fmt.Errorf("layer: %w", err)
	}
	*l = Layer(p)
	return nil
}

// LayerRect returns target shrunk by p. Nothing is clamped, so large
// paddings produce inverted rects.
func LayerRect(target Rect, p Padding) Rect {
	r := target
	r.X += p.Left
	r.Y += p.Top
	r.W -= p.Left + p.Right
	r.H -= p.Top + p.Bottom
	return r
}

// LayerConfig is an ordered stack of layers drawn back to front.
type LayerConfig struct {
	Layers []Layer `toml:"layers" yaml:"layers"`
}

// AddLayer appends a layer and returns a pointer to it for further tweaks.
func (c *LayerConfig) AddLayer(l Layer) *Layer {
	c.Layers = append(c.Layers, l)
	return &c.Layers[len(c.Layers)-1]
}

// AddSolidColor appends a flat fill.
func (c *LayerConfig) AddSolidColor(color Color) *Layer {
	l := NewLayer()
	l.Color = color
	return c.AddLayer(l)
}

// AddBorder appends a stroke with per-edge widths and a uniform radius.
func (c *LayerConfig) AddBorder(color Color, width Vec4, radius float32) *Layer {
	l := NewLayer()
	l.Kind = LayerBorder
	l.Color = color
	l.BorderWidth = width
	l.BorderRadius = Uniform(radius)
	return c.AddLayer(l)
}

// AddRoundedRect appends a rounded fill.
func (c *LayerConfig) AddRoundedRect(color Color, radius Vec4) *Layer {
	l := NewLayer()
	l.Kind = LayerRoundedRect
	l.Color = color
	l.BorderWidth = Uniform(1)
	l.BorderRadius = radius
	return c.AddLayer(l)
}

// AddGradient appends a two-color gradient.
func (c *LayerConfig) AddGradient(start, end Color, dir GradientDirection) *Layer {
	l := NewLayer()
	l.Kind = LayerGradient
	l.Color = start
	l.GradientEndColor = end
	l.GradientDirection = dir
	return c.AddLayer(l)
}

// GetLayerByType returns the first layer of the given kind, or nil.
func (c *LayerConfig) GetLayerByType(kind LayerKind) *Layer {
	if c == nil {
		return nil
	}
	for i := range c.Layers {
		if c.Layers[i].Kind == kind {
			return &c.Layers[i]
		}
	}
	return nil
}

// Clone returns a deep copy.
func (c LayerConfig) Clone() LayerConfig {
	if c.Layers == nil {
		return LayerConfig{}
	}
	out := make([]Layer, len(c.Layers))
	copy(out, c.Layers)
	return LayerConfig{Layers: out}
}

// IsEmpty reports whether the config has no layers.
func (c *LayerConfig) IsEmpty() bool {
	return c == nil || len(c.Layers) == 0
}

// CreateSimpleBackground returns a single solid fill.
func CreateSimpleBackground(color Color) LayerConfig {
	var c LayerConfig
	c.AddSolidColor(color)
	return c
}

// CreateBackgroundWithBorder returns a rounded fill with a border on top.
func CreateBackgroundWithBorder(bg, border Color, width, radius float32) LayerConfig {
	var c LayerConfig
	c.AddRoundedRect(bg, Uniform(radius))
	c.AddBorder(border, Uniform(width), radius)
	return c
}

// CreateCardStyle returns a card with a drop shadow offset to the bottom right.
func CreateCardStyle(card, shadow Color, radius float32) LayerConfig {
	var c LayerConfig
	c.AddRoundedRect(shadow, Uniform(radius)).Padding = Padding{Left: 0, Right: 2, Top: 2, Bottom: 0}
	c.AddRoundedRect(card, Uniform(radius))
	return c
}

// CreateRoundedRect returns a single rounded fill with the default radius.
func CreateRoundedRect(color Color) LayerConfig {
	var c LayerConfig
	c.AddRoundedRect(color, Uniform(4))
	return c
}

// roundedFillScale stretches border widths far past any rect size so the
// border primitive fills the whole shape.
const roundedFillScale = 100

// gradientSteps is the sample count of a gradient ramp.
const gradientSteps = 256

// DrawLayers renders cfg into target. It only draws during Repaint passes.
func DrawLayers(ctx *Context, target Rect, cfg *LayerConfig) {
	if ctx == nil || ctx.Event == nil || ctx.Event.Type != EventRepaint {
		return
	}
	if cfg.IsEmpty() {
		return
	}
	cfg.Render(ctx.DrawList, target)
}

// Render draws every enabled layer into dl, each inset from target by its
// own padding.
func (c *LayerConfig) Render(dl *DrawList, target Rect) {
	if dl == nil || c.IsEmpty() {
		return
	}
	for i := range c.Layers {
		l := &c.Layers[i]
		if !l.Enabled {
			continue
		}
		r := LayerRect(target, l.Padding)
		switch l.Kind {
		case LayerSolidColor:
			dl.AddRect(r.X, r.Y, r.W, r.H, l.Color.Packed())
		case LayerBorder:
			dl.AddBorder(r, l.Color.Packed(), l.BorderWidth, l.BorderRadius)
		case LayerRoundedRect:
			if l.BorderWidth.IsZero() {
				dl.AddRoundedRect(r, l.Color.Packed(), l.BorderRadius)
				continue
			}
			dl.AddBorder(r, l.Color.Packed(), l.BorderWidth.Scale(roundedFillScale), l.BorderRadius)
		case LayerGradient:
			drawGradient(dl, r, l.Color, l.GradientEndColor, l.GradientDirection)
		}
	}
}

// GradientRamp samples a gradient at gradientSteps evenly spaced points,
// start first.
func GradientRamp(start, end Color) []Color {
	ramp := make([]Color, gradientSteps)
	for i := range ramp {
		ramp[i] = start.Lerp(end, float32(i)/float32(gradientSteps-1))
	}
	return ramp
}

// drawGradient stretches a freshly sampled ramp across r. Horizontal ramps
// run left to right; vertical ramps run from the bottom edge to the top.
func drawGradient(dl *DrawList, r Rect, start, end Color, dir GradientDirection) {
	ramp := GradientRamp(start, end)
	n := float32(len(ramp) - 1)
	for i := 0; i < len(ramp)-1; i++ {
		a, b := ramp[i].Packed(), ramp[i+1].Packed()
		t0, t1 := float32(i)/n, float32(i+1)/n
		if dir == GradientHorizontal {
			x0 := r.X + r.W*t0
			dl.AddRectMultiColor(x0, r.Y, r.W*(t1-t0), r.H, a, b, b, a)
			continue
		}
		y1 := r.YMax() - r.H*t0
		y0 := r.YMax() - r.H*t1
		dl.AddRectMultiColor(r.X, y0, r.W, y1-y0, b, b, a, a)
	}
}
