package listkit

import (
	"github.com/mattn/go-runewidth"
)

// TruncateText truncates text to fit within maxWidth, adding ".." if needed.
func TruncateText(ctx *Context, text string, maxWidth float32) string {
	return TruncateTextWithSuffix(ctx, text, maxWidth, "..")
}

// TruncateTextWithSuffix truncates text at a cell boundary and appends
// suffix. Returns "" when not even the suffix fits.
func TruncateTextWithSuffix(ctx *Context, text string, maxWidth float32, suffix string) string {
	if maxWidth <= 0 {
		return ""
	}
	if ctx.MeasureText(text).X <= maxWidth {
		return text
	}
	cells := int(maxWidth / ctx.charWidth())
	if runewidth.StringWidth(suffix) > cells {
		return ""
	}
	return runewidth.Truncate(text, cells, suffix)
}
