package listkit

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatHints(t *testing.T) {
	assert.Equal(t, "[↑↓] Select  [Del] Remove",
		FormatHints(Hint(HintKeyUpDown, "Select"), Hint(HintKeyDelete, "Remove")))
	assert.Empty(t, FormatHints())
}

func hintKeys(hints []HintAction) []HintKey {
	keys := make([]HintKey, len(hints))
	for i, h := range hints {
		keys[i] = h.Key
	}
	return keys
}

func TestListHintsFollowTheme(t *testing.T) {
	items := []string{"a", "b"}
	lv := NewListView(NewSliceSource(&items))
	assert.Equal(t, []HintKey{HintKeyUpDown, HintKeyDrag, HintKeyDelete, HintKeyRightBtn}, hintKeys(ListHints(lv)))

	th := DefaultTheme()
	th.EnableSearch = true
	th.IgnoreDragEvents = true
	lv = NewListView(NewSliceSource(&items), WithTheme(th))
	assert.Equal(t, []HintKey{HintKeyUpDown, HintKeyType, HintKeyDelete, HintKeyRightBtn}, hintKeys(ListHints(lv)))
}

func TestListHintsPaging(t *testing.T) {
	items := make([]string, 50)
	for i := range items {
		items[i] = fmt.Sprint(i)
	}
	lv := NewListView(NewSliceSource(&items))
	newListHarness(t, lv, 300, 300)
	require.Greater(t, lv.PagesCount(), 1)
	assert.Contains(t, hintKeys(ListHints(lv)), HintKeyLeftRight)
	assert.Contains(t, hintKeys(ListHints(lv)), HintKeyPage)
}

func TestHintBarTruncates(t *testing.T) {
	r := &textRecorder{}
	ui := New(r)
	require.NoError(t, ui.Frame(nil, Vec2{400, 300}, 1, func(ctx *Context) {
		ctx.HintBar(Rect{X: 0, Y: 0, W: 80, H: 12}, Hint(HintKeyUpDown, "Select"), Hint(HintKeyDrag, "Reorder"))
	}))
	require.Len(t, r.texts, 1)
	assert.Equal(t, "[↑↓] Sel..", r.texts[0])
}
