package listkit

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// LabelFunc resolves the display text of an element.
type LabelFunc func(h ElementHandle, index int) string

// SearchPredicate decides whether an element matches a search query.
type SearchPredicate func(h ElementHandle, index int, query string) bool

// ListCallbacks are notifications a ListView sends to its owner. Every
// field is optional.
type ListCallbacks struct {
	SelectionChanged     func()
	ListChanged          func()
	ElementAdded         func(index int)
	ElementRemoved       func(index int)
	Reordered            func()
	ReorderedWithDetails func(from, to int)
	ElementDoubleClicked func(index int)
	// ContextMenu replaces the built-in context menu.
	ContextMenu func(index int)
	// UndoCheckpoint is called with a description before every mutation.
	UndoCheckpoint func(message string)
	// AddRequested replaces the default insertion at the end.
	AddRequested func()
	// AddWithDropdown is called with the add button rect instead of adding.
	AddWithDropdown func(buttonRect Rect)
}

// ListOption configures a ListView.
type ListOption func(*ListView)

// WithTheme sets the theme. The ListView keeps its own copy.
func WithTheme(t *Theme) ListOption {
	return func(lv *ListView) {
		if t != nil {
			lv.theme = t.Clone()
		}
	}
}

// WithLabelField labels elements with a named field of their Property.
func WithLabelField(name string) ListOption {
	return func(lv *ListView) {
		lv.label = func(h ElementHandle, index int) string {
			if p, ok := h.(Property); ok {
				if v, ok := p.Field(name); ok {
					return v
				}
			}
			return fallbackLabel(index)
		}
	}
}

// WithLabelFunc labels elements with fn.
func WithLabelFunc(fn LabelFunc) ListOption {
	return func(lv *ListView) {
		if fn != nil {
			lv.label = fn
		}
	}
}

// WithSearchPredicate replaces label matching with fn.
func WithSearchPredicate(fn SearchPredicate) ListOption {
	return func(lv *ListView) { lv.predicate = fn }
}

// WithMatcher sets how labels are matched against the search query.
func WithMatcher(m Matcher) ListOption {
	return func(lv *ListView) {
		if m != nil {
			lv.matcher = m
		}
	}
}

// WithCallbacks sets the owner notifications.
func WithCallbacks(cb ListCallbacks) ListOption {
	return func(lv *ListView) { lv.cb = cb }
}

// WithHeaderLabel sets the header text provider.
func WithHeaderLabel(fn func() string) ListOption {
	return func(lv *ListView) { lv.headerLabel = fn }
}

// ListView is a paginated, searchable, drag-reorderable list over an
// ElementSource. It owns only view state; the elements belong to the
// source. Call Display once per pass.
type ListView struct {
	id          ID
	src         ElementSource
	theme       *Theme
	label       LabelFunc
	predicate   SearchPredicate
	matcher     Matcher
	headerLabel func() string
	cb          ListCallbacks

	state  ListViewState
	layout ListLayout
	menu   *PopupMenu

	// Context of the pass being displayed, nil outside Display.
	ctx *Context
}

// NewListView creates a list over src.
func NewListView(src ElementSource, opts ...ListOption) *ListView {
	lv := &ListView{
		id:      NewID(),
		src:     src,
		theme:   DefaultTheme(),
		label:   defaultLabel,
		matcher: SubstringMatcher{},
		state:   newListViewState(),
		menu:    NewPopupMenu(),
	}
	for _, opt := range opts {
		opt(lv)
	}
	return lv
}

func fallbackLabel(index int) string {
	return fmt.Sprintf("Element %d", index)
}

// defaultLabel shows strings and Stringers as themselves.
func defaultLabel(h ElementHandle, index int) string {
	switch v := h.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	}
	return fallbackLabel(index)
}

// Source returns the backing collection.
func (lv *ListView) Source() ElementSource { return lv.src }

// Theme returns the list's theme.
func (lv *ListView) Theme() *Theme { return lv.theme }

// State returns a copy of the view state.
func (lv *ListView) State() ListViewState { return lv.state }

// Layout returns the geometry of the last calculation.
func (lv *ListView) Layout() ListLayout { return lv.layout }

// Menu returns the built-in context menu.
func (lv *ListView) Menu() *PopupMenu { return lv.menu }

// ElementLabel resolves the display text of element index.
func (lv *ListView) ElementLabel(index int) string {
	h, err := lv.src.Get(index)
	if err != nil {
		logger.WithFields(logrus.Fields{"index": index, "count": lv.src.Count()}).
			WithError(err).Error("label lookup failed")
		return fallbackLabel(index)
	}
	return lv.label(h, index)
}

func (lv *ListView) headerText() string {
	if lv.headerLabel != nil {
		return lv.headerLabel()
	}
	return "List"
}

func (lv *ListView) requestRepaint() {
	if lv.ctx != nil {
		lv.ctx.RequestRepaint()
	}
}

// Display runs one pass of the list: geometry, drawing, then at most one
// interaction update from the pass event.
func (lv *ListView) Display(ctx *Context) {
	ev := ctx.Event
	if ev == nil {
		return
	}
	lv.ctx = ctx
	defer func() { lv.ctx = nil }()

	lv.syncWithSource()

	if lv.menu.IsOpen() {
		lv.menu.HandleEvent(ctx)
	}

	lv.DoCalculations(ctx)

	t := lv.theme
	l := &lv.layout
	// A fresh left press disarms any earlier handle grab.
	if ev.Type == EventMouseDown && ev.Button == MouseButtonLeft {
		lv.state.disarmDrag()
	}
	typ := ev.Type

	DrawLayers(ctx, l.Global, &t.Global)
	if t.EnableHeader {
		lv.drawHeader(ctx)
	}
	if t.EnableSearch {
		lv.drawSearch(ctx)
	}
	lv.drawList(ctx)
	if l.Paginated {
		lv.drawPagination(ctx)
	}
	if t.EnableFooterAddButton || t.EnableFooterRemoveButton {
		lv.drawFooter(ctx)
	}

	count := lv.src.Count()
	if ev.IsMouse() && count > 0 && !t.IgnoreDragEvents && !lv.state.SearchActive {
		lv.handleDrag(ctx)
	}
	if typ == EventMouseUp {
		lv.state.disarmDrag()
	}
	if ev.Type == EventScrollWheel && count > 0 {
		lv.handleScroll(ctx)
	}
	if ev.Type == EventKeyDown && count > 0 {
		lv.handleKeys(ctx)
	}

	lv.menu.Draw(ctx)
}

// syncWithSource re-derives state that depends on the collection, which
// its owner may have changed since the last pass.
func (lv *ListView) syncWithSource() {
	count := lv.src.Count()
	st := &lv.state
	if st.SelectedIndex >= count {
		lv.selectIndex(-1)
	}
	if st.SearchActive && st.filteredCount != count {
		lv.refilter()
	}
}
