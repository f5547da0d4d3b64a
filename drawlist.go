package listkit

import (
	"math"
	"sync"

	"github.com/mattn/go-runewidth"
)

// drawListPool provides efficient reuse of DrawList buffers.
// Immediate-mode code rebuilds the whole draw list every pass.
var drawListPool = sync.Pool{
	New: func() any {
		return &DrawList{
			VtxBuffer: make([]Vertex, 0, 1024),
			IdxBuffer: make([]uint16, 0, 2048),
			CmdBuffer: make([]DrawCmd, 0, 16),
			clipStack: make([][4]float32, 0, 8),
		}
	},
}

// AcquireDrawList gets a DrawList from the pool.
// Call ReleaseDrawList when done to return it.
func AcquireDrawList() *DrawList {
	dl := drawListPool.Get().(*DrawList)
	dl.Clear()
	return dl
}

// ReleaseDrawList returns a DrawList to the pool for reuse.
func ReleaseDrawList(dl *DrawList) {
	if dl != nil {
		drawListPool.Put(dl)
	}
}

// TextRun records one AddText call so backends without a GPU font
// texture (terminal, software raster) can place text themselves.
type TextRun struct {
	X, Y         float32
	Text         string
	Color        uint32
	CharW, CharH float32
	Clip         [4]float32
}

// DrawList accumulates draw commands for a pass.
// It batches primitives by texture to minimize GPU state changes.
type DrawList struct {
	CmdBuffer []DrawCmd // Draw commands
	VtxBuffer []Vertex  // Vertex data
	IdxBuffer []uint16  // Index data
	TextRuns  []TextRun // Text drawn this pass, in order

	clipStack    [][4]float32 // Clip rectangle stack
	currentClip  [4]float32   // Current clip rectangle
	textureID    uint32       // Current texture for batching
	cmdOffset    uint32       // Vertex offset for current command
	idxCmdOffset uint32       // Index offset for current command
}

// Clear resets the DrawList for a new pass.
// Retains allocated capacity to avoid reallocations.
func (dl *DrawList) Clear() {
	dl.CmdBuffer = dl.CmdBuffer[:0]
	dl.VtxBuffer = dl.VtxBuffer[:0]
	dl.IdxBuffer = dl.IdxBuffer[:0]
	dl.TextRuns = dl.TextRuns[:0]
	dl.clipStack = dl.clipStack[:0]
	dl.currentClip = [4]float32{-1e9, -1e9, 1e9, 1e9}
	dl.textureID = 0
	dl.cmdOffset = 0
	dl.idxCmdOffset = 0
}

// PushClipRect pushes a new clip rectangle onto the stack.
// All subsequent primitives will be clipped to this rectangle.
func (dl *DrawList) PushClipRect(x1, y1, x2, y2 float32) {
	dl.clipStack = append(dl.clipStack, dl.currentClip)
	dl.currentClip = [4]float32{x1, y1, x2, y2}
	dl.splitDraw()
}

// PopClipRect pops the clip rectangle stack.
func (dl *DrawList) PopClipRect() {
	n := len(dl.clipStack)
	if n > 0 {
		dl.currentClip = dl.clipStack[n-1]
		dl.clipStack = dl.clipStack[:n-1]
		dl.splitDraw()
	}
}

// SetTexture sets the current texture for subsequent primitives.
func (dl *DrawList) SetTexture(textureID uint32) {
	if dl.textureID != textureID {
		dl.textureID = textureID
		dl.splitDraw()
	}
}

// splitDraw finalizes the current command and starts a new one.
func (dl *DrawList) splitDraw() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	dl.CmdBuffer = append(dl.CmdBuffer, DrawCmd{
		ClipRect:     dl.currentClip,
		TextureID:    dl.textureID,
		VertexOffset: uint32(len(dl.VtxBuffer)),
		IndexOffset:  uint32(len(dl.IdxBuffer)),
	})
	dl.cmdOffset = uint32(len(dl.VtxBuffer))
	dl.idxCmdOffset = uint32(len(dl.IdxBuffer))
}

// addVertices adds vertices and returns the starting index relative to
// the current command. A new command is started before the 16-bit index
// range overflows.
func (dl *DrawList) addVertices(verts ...Vertex) uint16 {
	if len(dl.CmdBuffer) == 0 || len(dl.VtxBuffer)-int(dl.cmdOffset)+len(verts) > math.MaxUint16 {
		dl.splitDraw()
	}
	startIdx := uint16(len(dl.VtxBuffer) - int(dl.cmdOffset))
	dl.VtxBuffer = append(dl.VtxBuffer, verts...)
	return startIdx
}

func (dl *DrawList) addIndices(indices ...uint16) {
	dl.IdxBuffer = append(dl.IdxBuffer, indices...)
}

// AddRect draws a filled rectangle.
func (dl *DrawList) AddRect(x, y, w, h float32, color uint32) {
	dl.AddRectMultiColor(x, y, w, h, color, color, color, color)
}

// AddRectMultiColor draws a filled rectangle with one color per corner.
// The rasterizer interpolates between them.
func (dl *DrawList) AddRectMultiColor(x, y, w, h float32, topLeft, topRight, bottomRight, bottomLeft uint32) {
	if (topLeft|topRight|bottomRight|bottomLeft)&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x, y}, Color: topLeft},
		Vertex{Pos: [2]float32{x + w, y}, Color: topRight},
		Vertex{Pos: [2]float32{x + w, y + h}, Color: bottomRight},
		Vertex{Pos: [2]float32{x, y + h}, Color: bottomLeft},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddRectOutline draws a rectangle outline.
func (dl *DrawList) AddRectOutline(x, y, w, h float32, color uint32, thickness float32) {
	dl.AddBorder(Rect{x, y, w, h}, color, Uniform(thickness), Vec4{})
}

// AddLine draws a line between two points.
// Uses a quad to create thickness.
func (dl *DrawList) AddLine(x1, y1, x2, y2 float32, color uint32, thickness float32) {
	if color&0xFF000000 == 0 {
		return
	}

	dx := x2 - x1
	dy := y2 - y1
	inv := float32(1.0)
	if dx != 0 || dy != 0 {
		inv = 1.0 / sqrtf(dx*dx+dy*dy)
	}

	nx := -dy * inv * thickness * 0.5
	ny := dx * inv * thickness * 0.5

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1 + nx, y1 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 + nx, y2 + ny}, Color: color},
		Vertex{Pos: [2]float32{x2 - nx, y2 - ny}, Color: color},
		Vertex{Pos: [2]float32{x1 - nx, y1 - ny}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2, idx, idx+2, idx+3)
}

// AddTriangle draws a filled triangle.
func (dl *DrawList) AddTriangle(x1, y1, x2, y2, x3, y3 float32, color uint32) {
	if color&0xFF000000 == 0 {
		return
	}

	idx := dl.addVertices(
		Vertex{Pos: [2]float32{x1, y1}, Color: color},
		Vertex{Pos: [2]float32{x2, y2}, Color: color},
		Vertex{Pos: [2]float32{x3, y3}, Color: color},
	)

	dl.addIndices(idx, idx+1, idx+2)
}

// cornerSegments is the number of arc segments per rounded corner.
const cornerSegments = 8

// roundedPath returns the clockwise outline of a rect with per-corner radii
// (topLeft, topRight, bottomRight, bottomLeft). Every corner contributes the
// same number of points, so two paths can be stitched index by index.
func roundedPath(x0, y0, x1, y1 float32, radii Vec4, segments int) []Vec2 {
	limit := minf(absf(x1-x0), absf(y1-y0)) / 2
	centers := [4]Vec2{}
	r := [4]float32{}
	for i := range r {
		r[i] = clampf(radii[i], 0, limit)
	}
	centers[0] = Vec2{x0 + r[0], y0 + r[0]}
	centers[1] = Vec2{x1 - r[1], y0 + r[1]}
	centers[2] = Vec2{x1 - r[2], y1 - r[2]}
	centers[3] = Vec2{x0 + r[3], y1 - r[3]}

	pts := make([]Vec2, 0, 4*(segments+1))
	for corner := 0; corner < 4; corner++ {
		start := math.Pi + float64(corner)*math.Pi/2
		for s := 0; s <= segments; s++ {
			a := start
			if segments > 0 {
				a += float64(s) * (math.Pi / 2) / float64(segments)
			}
			pts = append(pts, Vec2{
				X: centers[corner].X + float32(math.Cos(a))*r[corner],
				Y: centers[corner].Y + float32(math.Sin(a))*r[corner],
			})
		}
	}
	return pts
}

// innerEdges insets [lo, hi] by a and b; when the insets overlap they meet
// at the point dividing the span in proportion a:b.
func innerEdges(lo, hi, a, b float32) (float32, float32) {
	in0, in1 := lo+a, hi-b
	if in0 <= in1 {
		return in0, in1
	}
	mid := lo + (hi-lo)/2
	if a+b > 0 {
		mid = lo + (hi-lo)*a/(a+b)
	}
	return mid, mid
}

// AddBorder strokes a rect with per-edge widths (left, top, right, bottom)
// and per-corner radii (topLeft, topRight, bottomRight, bottomLeft).
// Widths that meet or exceed half the rect fill it completely.
func (dl *DrawList) AddBorder(r Rect, color uint32, widths, radii Vec4) {
	if color&0xFF000000 == 0 {
		return
	}

	x0, y0, x1, y1 := r.X, r.Y, r.XMax(), r.YMax()
	ix0, ix1 := innerEdges(x0, x1, widths[0], widths[2])
	iy0, iy1 := innerEdges(y0, y1, widths[1], widths[3])
	inner := Vec4{
		maxf(0, radii[0]-maxf(widths[0], widths[1])),
		maxf(0, radii[1]-maxf(widths[2], widths[1])),
		maxf(0, radii[2]-maxf(widths[2], widths[3])),
		maxf(0, radii[3]-maxf(widths[0], widths[3])),
	}

	segments := cornerSegments
	if radii.IsZero() {
		segments = 0
	}
	outerPts := roundedPath(x0, y0, x1, y1, radii, segments)
	innerPts := roundedPath(ix0, iy0, ix1, iy1, inner, segments)
	n := len(outerPts)

	verts := make([]Vertex, 0, 2*n)
	for _, p := range outerPts {
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	for _, p := range innerPts {
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	base := dl.addVertices(verts...)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		o0, o1 := base+uint16(i), base+uint16(j)
		i0, i1 := base+uint16(n+i), base+uint16(n+j)
		dl.addIndices(o0, o1, i1, o0, i1, i0)
	}
}

// AddRoundedRect fills a rect with per-corner radii.
func (dl *DrawList) AddRoundedRect(r Rect, color uint32, radii Vec4) {
	if color&0xFF000000 == 0 {
		return
	}
	if radii.IsZero() {
		dl.AddRect(r.X, r.Y, r.W, r.H, color)
		return
	}

	pts := roundedPath(r.X, r.Y, r.XMax(), r.YMax(), radii, cornerSegments)
	verts := make([]Vertex, 0, len(pts)+1)
	verts = append(verts, Vertex{Pos: [2]float32{r.X + r.W/2, r.Y + r.H/2}, Color: color})
	for _, p := range pts {
		verts = append(verts, Vertex{Pos: [2]float32{p.X, p.Y}, Color: color})
	}
	base := dl.addVertices(verts...)
	n := uint16(len(pts))
	for i := uint16(0); i < n; i++ {
		dl.addIndices(base, base+1+i, base+1+(i+1)%n)
	}
}

// AddText draws text at the specified position using the 8x8 bitmap font
// atlas bound as the current texture. Wide runes advance two cells.
// charWidth and charHeight define the size of each character cell.
func (dl *DrawList) AddText(x, y float32, text string, color uint32, fontScale float32, charWidth, charHeight float32) {
	if color&0xFF000000 == 0 || len(text) == 0 {
		return
	}

	cw := charWidth * fontScale
	cellH := charHeight * fontScale
	dl.TextRuns = append(dl.TextRuns, TextRun{
		X: x, Y: y, Text: text, Color: color, CharW: cw, CharH: cellH, Clip: dl.currentClip,
	})

	cell := 0
	for _, r := range text {
		width := runewidth.RuneWidth(r)
		if width == 0 {
			continue
		}
		char := GlyphFor(r)
		u0, v0, u1, v1 := glyphUV(char)
		px := x + float32(cell)*cw
		cell += width

		vtxIdx := dl.addVertices(
			Vertex{Pos: [2]float32{px, y}, TexCoord: [2]float32{u0, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y}, TexCoord: [2]float32{u1, v0}, Color: color},
			Vertex{Pos: [2]float32{px + cw, y + cellH}, TexCoord: [2]float32{u1, v1}, Color: color},
			Vertex{Pos: [2]float32{px, y + cellH}, TexCoord: [2]float32{u0, v1}, Color: color},
		)

		dl.addIndices(vtxIdx, vtxIdx+1, vtxIdx+2, vtxIdx, vtxIdx+2, vtxIdx+3)
	}
}

// glyphUV returns texture coordinates of a glyph in the 16x6 grid of the
// 128x48 font atlas.
func glyphUV(char rune) (u0, v0, u1, v1 float32) {
	idx := int(char - 32)
	col := float32(idx % FontAtlasColumns)
	row := float32(idx / FontAtlasColumns)
	u0 = col * GlyphSize / FontAtlasWidth
	v0 = row * GlyphSize / FontAtlasHeight
	u1 = (col + 1) * GlyphSize / FontAtlasWidth
	v1 = (row + 1) * GlyphSize / FontAtlasHeight
	return
}

// Finalize prepares the DrawList for rendering.
// Must be called after all primitives are added.
func (dl *DrawList) Finalize() {
	if len(dl.CmdBuffer) > 0 {
		lastCmd := &dl.CmdBuffer[len(dl.CmdBuffer)-1]
		lastCmd.ElemCount = uint32(len(dl.IdxBuffer)) - dl.idxCmdOffset
	}

	filtered := dl.CmdBuffer[:0]
	for _, cmd := range dl.CmdBuffer {
		if cmd.ElemCount > 0 {
			filtered = append(filtered, cmd)
		}
	}
	dl.CmdBuffer = filtered
}

func sqrtf(x float32) float32 {
	if x <= 0 {
		return 0
	}
	return float32(math.Sqrt(float64(x)))
}
