package listkit

import (
	"fmt"
	"strings"
)

// HintKey is the key label shown in brackets.
type HintKey string

const (
	HintKeyUpDown    HintKey = "↑↓"
	HintKeyLeftRight HintKey = "←→"
	HintKeyDelete    HintKey = "Del"
	HintKeyPage      HintKey = "PgUp/PgDn"
	HintKeyType      HintKey = "Type"
	HintKeyDrag      HintKey = "Drag"
	HintKeyRightBtn  HintKey = "RMB"
)

// HintAction pairs a key with what it does.
type HintAction struct {
	Key    HintKey
	Action string
}

func Hint(key HintKey, action string) HintAction {
	return HintAction{Key: key, Action: action}
}

// FormatHints renders hints as "[↑↓] Select  [Del] Remove".
func FormatHints(hints ...HintAction) string {
	parts := make([]string, 0, len(hints))
	for _, h := range hints {
		parts = append(parts, fmt.Sprintf("[%s] %s", h.Key, h.Action))
	}
	return strings.Join(parts, "  ")
}

// ListHints returns the hints that apply to lv as currently themed:
// paging, drag and search hints only appear when they can be used.
func ListHints(lv *ListView) []HintAction {
	t := lv.Theme()
	hints := []HintAction{Hint(HintKeyUpDown, "Select")}
	if lv.PagesCount() > 1 {
		hints = append(hints, Hint(HintKeyLeftRight, "Page"), Hint(HintKeyPage, "First/Last"))
	}
	if !t.IgnoreDragEvents && !lv.IsSearchActive() {
		hints = append(hints, Hint(HintKeyDrag, "Reorder"))
	}
	if t.EnableSearch {
		hints = append(hints, Hint(HintKeyType, "Search"))
	}
	hints = append(hints, Hint(HintKeyDelete, "Remove"), Hint(HintKeyRightBtn, "Menu"))
	return hints
}

// HintBar draws hints in gray inside r, truncated to its width.
func (ctx *Context) HintBar(r Rect, hints ...HintAction) {
	if len(hints) == 0 || !ctx.IsRepaint() {
		return
	}
	text := TruncateText(ctx, FormatHints(hints...), r.W)
	ctx.addTextIn(r, text, ColorGray, false)
}
