package listkit

import (
	"fmt"
	"math"
	"strings"
)

// Vec2 represents a 2D vector for positions and sizes.
type Vec2 struct {
	X, Y float32
}

// Add returns the sum of two vectors.
func (v Vec2) Add(other Vec2) Vec2 {
	return Vec2{X: v.X + other.X, Y: v.Y + other.Y}
}

// Sub returns the difference of two vectors.
func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

// Len returns the vector magnitude.
func (v Vec2) Len() float32 {
	return float32(math.Hypot(float64(v.X), float64(v.Y)))
}

// Rect represents a rectangle with position and size.
type Rect struct {
	X, Y float32 // Top-left position
	W, H float32 // Width and height
}

// XMax returns the right edge.
func (r Rect) XMax() float32 { return r.X + r.W }

// YMax returns the bottom edge.
func (r Rect) YMax() float32 { return r.Y + r.H }

// SetXMax moves the right edge, keeping X.
func (r *Rect) SetXMax(v float32) { r.W = v - r.X }

// SetYMax moves the bottom edge, keeping Y.
func (r *Rect) SetYMax(v float32) { r.H = v - r.Y }

// Contains returns true if the point is inside the rectangle.
func (r Rect) Contains(p Vec2) bool {
	return p.X >= r.X && p.X < r.X+r.W && p.Y >= r.Y && p.Y < r.Y+r.H
}

// Intersects returns true if two rectangles overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && r.X+r.W > other.X &&
		r.Y < other.Y+other.H && r.Y+r.H > other.Y
}

// Inset shrinks the rect by dx on the left and right and dy on the top and bottom.
func (r Rect) Inset(dx, dy float32) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W - 2*dx, H: r.H - 2*dy}
}

// Padding is an inset from the four edges of a rect.
type Padding struct {
	Left   float32 `toml:"left" yaml:"left"`
	Right  float32 `toml:"right" yaml:"right"`
	Top    float32 `toml:"top" yaml:"top"`
	Bottom float32 `toml:"bottom" yaml:"bottom"`
}

// Vec4 holds four per-edge or per-corner values.
// Border widths are (left, top, right, bottom); corner radii are
// (topLeft, topRight, bottomRight, bottomLeft).
type Vec4 [4]float32

// Uniform returns a Vec4 with every component set to v.
func Uniform(v float32) Vec4 { return Vec4{v, v, v, v} }

// Scale multiplies every component by s.
func (v Vec4) Scale(s float32) Vec4 {
	return Vec4{v[0] * s, v[1] * s, v[2] * s, v[3] * s}
}

// IsZero reports whether all components are zero.
func (v Vec4) IsZero() bool { return v == Vec4{} }

// Vertex represents a vertex for UI rendering.
// Memory layout matches OpenGL vertex attribute expectations.
type Vertex struct {
	Pos      [2]float32 // Position (x, y)
	TexCoord [2]float32 // Texture coordinates (u, v)
	Color    uint32     // RGBA packed color
}

// DrawCmd represents a single draw command.
// Commands are batched by texture to minimize state changes.
type DrawCmd struct {
	ElemCount    uint32     // Number of indices to draw
	ClipRect     [4]float32 // Clip rectangle (x1, y1, x2, y2)
	TextureID    uint32     // OpenGL texture ID (0 = no texture)
	VertexOffset uint32     // Offset into vertex buffer
	IndexOffset  uint32     // Offset into index buffer
}

// Color is a floating point RGBA color with components in 0..1.
type Color struct {
	R, G, B, A float32
}

// Gray returns an opaque gray.
func Gray(v float32) Color { return Color{v, v, v, 1} }

// Packed converts the color to the 0xAABBGGRR form used by the draw list.
func (c Color) Packed() uint32 {
	return RGBAf(c.R, c.G, c.B, c.A)
}

// Lerp interpolates between c and to by t in 0..1.
func (c Color) Lerp(to Color, t float32) Color {
	t = clampf(t, 0, 1)
	return Color{
		R: c.R + (to.R-c.R)*t,
		G: c.G + (to.G-c.G)*t,
		B: c.B + (to.B-c.B)*t,
		A: c.A + (to.A-c.A)*t,
	}
}

// MarshalText encodes the color as #RRGGBBAA.
func (c Color) MarshalText() ([]byte, error) {
	r, g, b, a := UnpackRGBA(c.Packed())
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", r, g, b, a)), nil
}

// UnmarshalText accepts #RRGGBB or #RRGGBBAA.
func (c *Color) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(strings.TrimSpace(string(text)), "#")
	var r, g, b, a uint8
	a = 255
	switch len(s) {
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return fmt.Errorf("parse color %q: %w", text, err)
		}
	case 8:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x%02x", &r, &g, &b, &a); err != nil {
			return fmt.Errorf("parse color %q: %w", text, err)
		}
	default:
		return fmt.Errorf("parse color %q: want #RRGGBB or #RRGGBBAA", text)
	}
	*c = Color{float32(r) / 255, float32(g) / 255, float32(b) / 255, float32(a) / 255}
	return nil
}

// Color constants (RGBA packed as 0xAABBGGRR for OpenGL compatibility)
const (
	ColorWhite       uint32 = 0xFFFFFFFF
	ColorBlack       uint32 = 0xFF000000
	ColorRed         uint32 = 0xFF0000FF
	ColorGreen       uint32 = 0xFF00FF00
	ColorBlue        uint32 = 0xFFFF0000
	ColorGray        uint32 = 0xFF808080
	ColorDarkGray    uint32 = 0xFF404040
	ColorTransparent uint32 = 0x00000000
)

// RGBA creates a packed color from individual components (0-255).
func RGBA(r, g, b, a uint8) uint32 {
	return uint32(a)<<24 | uint32(b)<<16 | uint32(g)<<8 | uint32(r)
}

// RGBAf creates a packed color from float components (0.0-1.0).
func RGBAf(r, g, b, a float32) uint32 {
	return RGBA(
		uint8(clampf(r, 0, 1)*255+0.5),
		uint8(clampf(g, 0, 1)*255+0.5),
		uint8(clampf(b, 0, 1)*255+0.5),
		uint8(clampf(a, 0, 1)*255+0.5),
	)
}

// UnpackRGBA extracts RGBA components from a packed color.
func UnpackRGBA(c uint32) (r, g, b, a uint8) {
	return uint8(c), uint8(c >> 8), uint8(c >> 16), uint8(c >> 24)
}

func clampf(v, minVal, maxVal float32) float32 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func clampi(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

func maxf(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func absf(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
