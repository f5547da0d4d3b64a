// Package raster renders listkit draw lists into an in-memory RGBA image.
// It serves headless hosts: screenshot generation, golden tests and the
// terminal backend, none of which have a GPU context.
package raster

import (
	"image"
	"image/color"
	"image/jpeg"
	"io"

	"github.com/go-theft-auto/listkit"
)

// FontTextureID is the texture ID the rasterizer reports for the built-in
// font atlas. Commands bound to any other non-zero texture are skipped.
const FontTextureID = 1

// Renderer implements listkit.Renderer on top of an *image.RGBA.
// Render does not clear the target; call Clear before each frame.
type Renderer struct {
	img      *image.RGBA
	atlas    *image.Alpha
	clear    color.RGBA
	skipText bool
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithClearColor sets the color Clear fills the target with.
func WithClearColor(c color.RGBA) Option {
	return func(r *Renderer) { r.clear = c }
}

// WithoutText skips glyph quads. Hosts that place text themselves from
// DrawList.TextRuns use it.
func WithoutText() Option {
	return func(r *Renderer) { r.skipText = true }
}

// New creates a renderer with a width x height target.
func New(width, height int, opts ...Option) *Renderer {
	r := &Renderer{
		atlas: listkit.FontAtlas(),
		clear: color.RGBA{A: 255},
	}
	for _, opt := range opts {
		opt(r)
	}
	r.Resize(width, height)
	return r
}

// FontTextureID implements listkit.Renderer.
func (r *Renderer) FontTextureID() uint32 {
	return FontTextureID
}

// Resize reallocates the target when the size changes.
func (r *Renderer) Resize(width, height int) {
	width, height = max(width, 1), max(height, 1)
	if r.img != nil && r.img.Rect.Dx() == width && r.img.Rect.Dy() == height {
		return
	}
	r.img = image.NewRGBA(image.Rect(0, 0, width, height))
	r.Clear()
}

// Clear fills the target with the clear color.
func (r *Renderer) Clear() {
	c := r.clear
	pix := r.img.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = c.R, c.G, c.B, c.A
	}
}

// Image returns the render target. It is reused across frames.
func (r *Renderer) Image() *image.RGBA {
	return r.img
}

// Snapshot returns a copy of the render target.
func (r *Renderer) Snapshot() *image.RGBA {
	out := image.NewRGBA(r.img.Rect)
	copy(out.Pix, r.img.Pix)
	return out
}

// EncodeJPEG writes the target as a JPEG.
func (r *Renderer) EncodeJPEG(w io.Writer, quality int) error {
	return jpeg.Encode(w, r.img, &jpeg.Options{Quality: quality})
}

// Render rasterizes every command of dl into the target.
func (r *Renderer) Render(dl *listkit.DrawList) error {
	if dl == nil || len(dl.VtxBuffer) == 0 {
		return nil
	}
	dl.Finalize()

	bounds := r.img.Rect
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount == 0 {
			continue
		}
		textured := cmd.TextureID != 0
		if textured && (r.skipText || cmd.TextureID != FontTextureID) {
			continue
		}

		clip := image.Rect(
			int(cmd.ClipRect[0]), int(cmd.ClipRect[1]),
			ceil(cmd.ClipRect[2]), ceil(cmd.ClipRect[3]),
		).Intersect(bounds)
		if clip.Empty() {
			continue
		}

		idx := dl.IdxBuffer[cmd.IndexOffset : cmd.IndexOffset+cmd.ElemCount]
		vtx := dl.VtxBuffer[cmd.VertexOffset:]
		for i := 0; i+2 < len(idx); i += 3 {
			r.triangle(clip, vtx[idx[i]], vtx[idx[i+1]], vtx[idx[i+2]], textured)
		}
	}
	return nil
}

func ceil(v float32) int {
	i := int(v)
	if float32(i) < v {
		i++
	}
	return i
}

// edge is twice the signed area of (a, b, p).
func edge(a, b [2]float32, px, py float32) float32 {
	return (b[0]-a[0])*(py-a[1]) - (b[1]-a[1])*(px-a[0])
}

// owns breaks ties for pixel centers exactly on an edge. It is
// antisymmetric, so a pixel on an edge shared by two triangles is drawn by
// exactly one of them.
func owns(a, b [2]float32) bool {
	return b[1] > a[1] || (b[1] == a[1] && b[0] < a[0])
}

func inside(w float32, a, b [2]float32) bool {
	return w > 0 || (w == 0 && owns(a, b))
}

func (r *Renderer) triangle(clip image.Rectangle, v0, v1, v2 listkit.Vertex, textured bool) {
	p0, p1, p2 := v0.Pos, v1.Pos, v2.Pos
	area := edge(p0, p1, p2[0], p2[1])
	if area == 0 {
		return
	}
	if area < 0 {
		v1, v2 = v2, v1
		p1, p2 = p2, p1
		area = -area
	}

	minX := max(int(min(p0[0], p1[0], p2[0])), clip.Min.X)
	minY := max(int(min(p0[1], p1[1], p2[1])), clip.Min.Y)
	maxX := min(ceil(max(p0[0], p1[0], p2[0])), clip.Max.X)
	maxY := min(ceil(max(p0[1], p1[1], p2[1])), clip.Max.Y)

	c0, c1, c2 := unpack(v0.Color), unpack(v1.Color), unpack(v2.Color)
	flat := v0.Color == v1.Color && v1.Color == v2.Color

	for y := minY; y < maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x < maxX; x++ {
			px := float32(x) + 0.5
			w0 := edge(p1, p2, px, py)
			w1 := edge(p2, p0, px, py)
			w2 := edge(p0, p1, px, py)
			if !inside(w0, p1, p2) || !inside(w1, p2, p0) || !inside(w2, p0, p1) {
				continue
			}
			b0, b1, b2 := w0/area, w1/area, w2/area

			src := c0
			if !flat {
				for k := range src {
					src[k] = c0[k]*b0 + c1[k]*b1 + c2[k]*b2
				}
			}
			if textured {
				u := v0.TexCoord[0]*b0 + v1.TexCoord[0]*b1 + v2.TexCoord[0]*b2
				v := v0.TexCoord[1]*b0 + v1.TexCoord[1]*b1 + v2.TexCoord[1]*b2
				src[3] *= r.sample(u, v)
			}
			r.blend(x, y, src)
		}
	}
}

// sample reads the font atlas with nearest filtering.
func (r *Renderer) sample(u, v float32) float32 {
	b := r.atlas.Rect
	tx := min(max(int(u*float32(b.Dx())), 0), b.Dx()-1)
	ty := min(max(int(v*float32(b.Dy())), 0), b.Dy()-1)
	return float32(r.atlas.Pix[ty*r.atlas.Stride+tx]) / 255
}

// unpack splits a 0xAABBGGRR color into 0..1 components.
func unpack(c uint32) [4]float32 {
	rr, gg, bb, aa := listkit.UnpackRGBA(c)
	return [4]float32{float32(rr) / 255, float32(gg) / 255, float32(bb) / 255, float32(aa) / 255}
}

// blend composites src over the pixel at (x, y).
func (r *Renderer) blend(x, y int, src [4]float32) {
	a := src[3]
	if a <= 0 {
		return
	}
	off := r.img.PixOffset(x, y)
	p := r.img.Pix[off : off+4 : off+4]
	for k := range 3 {
		p[k] = to8(src[k]*a + float32(p[k])/255*(1-a))
	}
	p[3] = to8(a + float32(p[3])/255*(1-a))
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
