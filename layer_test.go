package listkit

import (
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func repaintContext(t *testing.T, typ EventType) *Context {
	t.Helper()
	ctx := NewContext()
	ctx.DrawList = AcquireDrawList()
	t.Cleanup(func() { ReleaseDrawList(ctx.DrawList) })
	ctx.Event = &Event{Type: typ}
	return ctx
}

func TestGradientRamp(t *testing.T) {
	start, end := Color{1, 0, 0, 1}, Color{0, 0, 1, 1}
	ramp := GradientRamp(start, end)
	require.Len(t, ramp, 256)
	assert.Equal(t, start, ramp[0])
	assert.Equal(t, end, ramp[255])
	for i := 1; i < len(ramp); i++ {
		assert.LessOrEqual(t, ramp[i].R, ramp[i-1].R)
		assert.GreaterOrEqual(t, ramp[i].B, ramp[i-1].B)
	}
}

func TestLayerRectDoesNotClamp(t *testing.T) {
	target := Rect{X: 10, Y: 10, W: 20, H: 20}
	assert.Equal(t, Rect{X: 12, Y: 11, W: 14, H: 15}, LayerRect(target, Padding{Left: 2, Right: 4, Top: 1, Bottom: 4}))

	inverted := LayerRect(target, Padding{Left: 15, Right: 15})
	assert.Equal(t, float32(-10), inverted.W)
}

func TestGetLayerByType(t *testing.T) {
	var cfg LayerConfig
	assert.Nil(t, cfg.GetLayerByType(LayerBorder))
	assert.Nil(t, (*LayerConfig)(nil).GetLayerByType(LayerBorder))

	cfg.AddSolidColor(Gray(0.5))
	first := cfg.AddBorder(Gray(0.1), Uniform(1), 2)
	first.Padding.Top = 3
	cfg.AddBorder(Gray(0.9), Uniform(2), 0)

	got := cfg.GetLayerByType(LayerBorder)
	require.NotNil(t, got)
	assert.Equal(t, float32(3), got.Padding.Top)
	assert.Equal(t, Uniform(2), got.BorderRadius)
}

func TestFactories(t *testing.T) {
	bg := CreateSimpleBackground(Gray(0.2))
	require.Len(t, bg.Layers, 1)
	assert.Equal(t, LayerSolidColor, bg.Layers[0].Kind)

	bordered := CreateBackgroundWithBorder(Gray(0.2), Gray(0.8), 1, 0)
	require.Len(t, bordered.Layers, 2)
	assert.Equal(t, LayerRoundedRect, bordered.Layers[0].Kind)
	assert.Equal(t, LayerBorder, bordered.Layers[1].Kind)
	assert.Equal(t, Uniform(1), bordered.Layers[1].BorderWidth)

	card := CreateCardStyle(Gray(0.3), Color{0, 0, 0, 0.5}, 4)
	require.Len(t, card.Layers, 2)
	assert.Equal(t, Padding{Right: 2, Top: 2}, card.Layers[0].Padding)
	assert.Equal(t, Color{0, 0, 0, 0.5}, card.Layers[0].Color)
	assert.Equal(t, Padding{}, card.Layers[1].Padding)

	rounded := CreateRoundedRect(Gray(1))
	assert.Equal(t, Uniform(4), rounded.Layers[0].BorderRadius)
	assert.Equal(t, Uniform(1), rounded.Layers[0].BorderWidth)
}

func TestCloneIsDeep(t *testing.T) {
	cfg := CreateSimpleBackground(Gray(0.2))
	c := cfg.Clone()
	c.Layers[0].Color = Gray(0.9)
	assert.Equal(t, Gray(0.2), cfg.Layers[0].Color)
	assert.True(t, (&LayerConfig{}).IsEmpty())
}

func TestDrawLayersOnlyOnRepaint(t *testing.T) {
	cfg := CreateSimpleBackground(Gray(0.5))
	target := Rect{W: 10, H: 10}

	for _, typ := range []EventType{EventLayout, EventMouseDown, EventKeyDown, EventUsed} {
		ctx := repaintContext(t, typ)
		DrawLayers(ctx, target, &cfg)
		assert.Empty(t, ctx.DrawList.VtxBuffer, typ.String())
	}

	ctx := repaintContext(t, EventRepaint)
	DrawLayers(ctx, target, &cfg)
	assert.Len(t, ctx.DrawList.VtxBuffer, 4)

	ctx = repaintContext(t, EventRepaint)
	DrawLayers(ctx, target, &LayerConfig{})
	DrawLayers(ctx, target, nil)
	DrawLayers(nil, target, &cfg)
	assert.Empty(t, ctx.DrawList.VtxBuffer)
}

func TestRenderSkipsDisabledAndUnknownLayers(t *testing.T) {
	var cfg LayerConfig
	cfg.AddSolidColor(Gray(1)).Enabled = false
	bogus := NewLayer()
	bogus.Kind = LayerKind(42)
	cfg.AddLayer(bogus)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	cfg.Render(dl, Rect{W: 10, H: 10})
	assert.Empty(t, dl.VtxBuffer)
}

func TestRenderDegenerateRects(t *testing.T) {
	var cfg LayerConfig
	cfg.AddSolidColor(Gray(1)).Padding = Padding{Left: 50}
	cfg.AddBorder(Gray(1), Uniform(3), 6)
	cfg.AddRoundedRect(Gray(1), Uniform(8))
	cfg.AddGradient(Gray(0), Gray(1), GradientHorizontal)

	dl := AcquireDrawList()
	defer ReleaseDrawList(dl)
	assert.NotPanics(t, func() {
		cfg.Render(dl, Rect{W: 0, H: 0})
		cfg.Render(dl, Rect{X: 5, Y: 5, W: -10, H: 2})
	})
}

func TestGradientOrientation(t *testing.T) {
	start, end := Color{1, 0, 0, 1}, Color{0, 0, 1, 1}
	r := Rect{X: 0, Y: 0, W: 100, H: 50}

	extreme := func(dir GradientDirection, pick func(v Vertex) float32) (lo, hi uint32) {
		dl := AcquireDrawList()
		defer ReleaseDrawList(dl)
		drawGradient(dl, r, start, end, dir)
		minV, maxV := dl.VtxBuffer[0], dl.VtxBuffer[0]
		for _, v := range dl.VtxBuffer {
			if pick(v) < pick(minV) {
				minV = v
			}
			if pick(v) > pick(maxV) {
				maxV = v
			}
		}
		return minV.Color, maxV.Color
	}

	left, right := extreme(GradientHorizontal, func(v Vertex) float32 { return v.Pos[0] })
	assert.Equal(t, start.Packed(), left)
	assert.Equal(t, end.Packed(), right)

	top, bottom := extreme(GradientVertical, func(v Vertex) float32 { return v.Pos[1] })
	assert.Equal(t, end.Packed(), top)
	assert.Equal(t, start.Packed(), bottom)
}

func TestLayerKindText(t *testing.T) {
	for kind, name := range layerKindNames {
		text, err := kind.MarshalText()
		require.NoError(t, err)
		assert.Equal(t, name, string(text))

		var back LayerKind
		require.NoError(t, back.UnmarshalText([]byte(strings.ToUpper(name))))
		assert.Equal(t, kind, back)
	}
	var k LayerKind
	assert.Error(t, k.UnmarshalText([]byte("sparkle")))

	var d GradientDirection
	require.NoError(t, d.UnmarshalText([]byte("horizontal")))
	assert.Equal(t, GradientHorizontal, d)
	assert.Error(t, d.UnmarshalText([]byte("diagonal")))
}

func TestDecodedLayersDefaultToEnabled(t *testing.T) {
	const tomlDoc = `
[[layers]]
kind = "border"
color = "#0000ff"
border_width = [1.0, 1.0, 1.0, 1.0]

[[layers]]
enabled = false
`
	var fromTOML LayerConfig
	_, err := toml.Decode(tomlDoc, &fromTOML)
	require.NoError(t, err)
	require.Len(t, fromTOML.Layers, 2)
	assert.True(t, fromTOML.Layers[0].Enabled)
	assert.Equal(t, LayerBorder, fromTOML.Layers[0].Kind)
	assert.Equal(t, Color{0, 0, 1, 1}, fromTOML.Layers[0].Color)
	assert.Equal(t, Uniform(1), fromTOML.Layers[0].BorderWidth)
	assert.False(t, fromTOML.Layers[1].Enabled)
	assert.Equal(t, Color{1, 1, 1, 1}, fromTOML.Layers[1].Color)

	const yamlDoc = `
layers:
  - kind: gradient
    gradient_direction: horizontal
  - enabled: false
`
	var fromYAML LayerConfig
	require.NoError(t, yaml.Unmarshal([]byte(yamlDoc), &fromYAML))
	require.Len(t, fromYAML.Layers, 2)
	assert.True(t, fromYAML.Layers[0].Enabled)
	assert.Equal(t, LayerGradient, fromYAML.Layers[0].Kind)
	assert.Equal(t, GradientHorizontal, fromYAML.Layers[0].GradientDirection)
	assert.Equal(t, Color{0, 0, 0, 1}, fromYAML.Layers[0].GradientEndColor)
	assert.False(t, fromYAML.Layers[1].Enabled)

	var bad LayerConfig
	assert.Error(t, yaml.Unmarshal([]byte("layers:\n  - kind: sparkle\n"), &bad))
}
