package listkit

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// HeaderStyle styles the header band. The search band reuses its shape.
type HeaderStyle struct {
	Height     float32     `toml:"height" yaml:"height"`
	Content    Padding     `toml:"content_padding" yaml:"content_padding"`
	TextColor  Color       `toml:"text_color" yaml:"text_color"`
	Background LayerConfig `toml:"background" yaml:"background"`
}

// SearchStyle styles the search band and its clear button.
type SearchStyle struct {
	Height           float32     `toml:"height" yaml:"height"`
	Content          Padding     `toml:"content_padding" yaml:"content_padding"`
	ClearButtonWidth float32     `toml:"clear_button_width" yaml:"clear_button_width"`
	ClearButtonText  string      `toml:"clear_button_text" yaml:"clear_button_text"`
	ClearTextColor   Color       `toml:"clear_text_color" yaml:"clear_text_color"`
	ClearHoverColor  Color       `toml:"clear_hover_color" yaml:"clear_hover_color"`
	Background       LayerConfig `toml:"background" yaml:"background"`
}

// ListStyle styles the element area.
type ListStyle struct {
	Content    Padding     `toml:"content_padding" yaml:"content_padding"`
	Background LayerConfig `toml:"background" yaml:"background"`
}

// ElementStyle styles one row.
type ElementStyle struct {
	Height     float32     `toml:"height" yaml:"height"`
	TextColor  Color       `toml:"text_color" yaml:"text_color"`
	Selected   LayerConfig `toml:"selected" yaml:"selected"`
	Unselected LayerConfig `toml:"unselected" yaml:"unselected"`
	Hover      LayerConfig `toml:"hover" yaml:"hover"`
}

// DragHandleStyle places the drag handle inside a row.
type DragHandleStyle struct {
	PaddingLeft   float32 `toml:"padding_left" yaml:"padding_left"`
	PaddingBottom float32 `toml:"padding_bottom" yaml:"padding_bottom"`
	Width         float32 `toml:"width" yaml:"width"`
	Height        float32 `toml:"height" yaml:"height"`
	// Allocated is the horizontal slice reserved before the label.
	Allocated float32 `toml:"allocated" yaml:"allocated"`
	Color     Color   `toml:"color" yaml:"color"`
}

// RemoveButtonStyle styles the per-row remove button.
type RemoveButtonStyle struct {
	Width     float32 `toml:"width" yaml:"width"`
	Allocated float32 `toml:"allocated" yaml:"allocated"`
	Text      string  `toml:"text" yaml:"text"`
	TextColor Color   `toml:"text_color" yaml:"text_color"`
}

// PaginationStyle styles the pagination band.
type PaginationStyle struct {
	Height        float32     `toml:"height" yaml:"height"`
	Content       Padding     `toml:"content_padding" yaml:"content_padding"`
	ButtonsWidth  float32     `toml:"buttons_width" yaml:"buttons_width"`
	ButtonsHeight float32     `toml:"buttons_height" yaml:"buttons_height"`
	Background    LayerConfig `toml:"background" yaml:"background"`
}

// FooterStyle styles the add/remove button tab.
type FooterStyle struct {
	Height        float32     `toml:"height" yaml:"height"`
	MarginRight   float32     `toml:"margin_right" yaml:"margin_right"`
	PaddingLeft   float32     `toml:"padding_left" yaml:"padding_left"`
	PaddingRight  float32     `toml:"padding_right" yaml:"padding_right"`
	ButtonsWidth  float32     `toml:"buttons_width" yaml:"buttons_width"`
	ButtonsHeight float32     `toml:"buttons_height" yaml:"buttons_height"`
	Background    LayerConfig `toml:"background" yaml:"background"`
}

// Theme bundles everything a ListView reads from its look: feature flags,
// sizes, colors, layer stacks and placeholder messages. A ListView copies
// what it needs at construction.
type Theme struct {
	Name string `toml:"name" yaml:"name"`

	EnableHeader              bool `toml:"enable_header" yaml:"enable_header"`
	EnableSearch              bool `toml:"enable_search" yaml:"enable_search"`
	EnableFooterAddButton     bool `toml:"enable_footer_add" yaml:"enable_footer_add"`
	EnableFooterRemoveButton  bool `toml:"enable_footer_remove" yaml:"enable_footer_remove"`
	EnableElementRemoveButton bool `toml:"enable_element_remove" yaml:"enable_element_remove"`
	IgnoreDragEvents          bool `toml:"ignore_drag_events" yaml:"ignore_drag_events"`

	MinWidth      float32 `toml:"min_width" yaml:"min_width"`
	MinHeight     float32 `toml:"min_height" yaml:"min_height"`
	StretchWidth  bool    `toml:"stretch_width" yaml:"stretch_width"`
	StretchHeight bool    `toml:"stretch_height" yaml:"stretch_height"`

	Header       HeaderStyle       `toml:"header" yaml:"header"`
	Search       SearchStyle       `toml:"search" yaml:"search"`
	List         ListStyle         `toml:"list" yaml:"list"`
	Element      ElementStyle      `toml:"element" yaml:"element"`
	DragHandle   DragHandleStyle   `toml:"drag_handle" yaml:"drag_handle"`
	RemoveButton RemoveButtonStyle `toml:"remove_button" yaml:"remove_button"`
	Pagination   PaginationStyle   `toml:"pagination" yaml:"pagination"`
	Footer       FooterStyle       `toml:"footer" yaml:"footer"`
	Global       LayerConfig       `toml:"global" yaml:"global"`

	EmptyListMessage string `toml:"empty_list_message" yaml:"empty_list_message"`
	NoResultsMessage string `toml:"no_results_message" yaml:"no_results_message"`
}

var (
	borderGray = Color{0.22, 0.22, 0.22, 1}
	panelGray  = Color{0.302, 0.302, 0.302, 1}
	edgeGray   = Color{0.141, 0.141, 0.141, 1}
)

// DefaultTheme returns the dark theme every ListView falls back to.
func DefaultTheme() *Theme {
	t := &Theme{
		Name:                     "Dark",
		EnableFooterAddButton:    true,
		EnableFooterRemoveButton: true,
		MinWidth:                 150,
		MinHeight:                200,
		StretchWidth:             true,
		StretchHeight:            true,
		EmptyListMessage:         "List is empty",
		NoResultsMessage:         "No results found",
	}
	content := Padding{Left: 6, Right: 6, Top: 2, Bottom: 2}

	t.Header = HeaderStyle{Height: 20, Content: content, TextColor: Color{1, 1, 1, 1}}
	t.Header.Background.AddBorder(borderGray, Vec4{0, 0, 0, 1}, 0)

	t.Search = SearchStyle{
		Height:           22,
		Content:          content,
		ClearButtonWidth: 16,
		ClearButtonText:  "×",
		ClearTextColor:   Color{0.5, 0.5, 0.5, 0.8},
		ClearHoverColor:  Color{1, 0.3, 0.3, 1},
	}
	t.Search.Background.AddBorder(borderGray, Vec4{0, 0, 0, 1}, 0)

	t.List = ListStyle{Content: content}

	t.Element = ElementStyle{Height: 20, TextColor: Color{1, 1, 1, 1}}
	t.Element.Selected.AddSolidColor(Color{0.172549, 0.3647059, 0.5294118, 1})
	t.Element.Hover.AddSolidColor(Color{0.3, 0.3, 0.3, 0.5})

	t.DragHandle = DragHandleStyle{
		PaddingLeft:   5,
		PaddingBottom: 6,
		Width:         10,
		Height:        6,
		Allocated:     20,
		Color:         Color{0.55, 0.55, 0.55, 1},
	}
	t.RemoveButton = RemoveButtonStyle{Width: 20, Allocated: 26, Text: "X", TextColor: Color{1, 1, 1, 1}}

	t.Pagination = PaginationStyle{Height: 20, Content: content, ButtonsWidth: 25, ButtonsHeight: 16}
	t.Pagination.Background.AddBorder(borderGray, Vec4{0, 1, 0, 0}, 0)

	t.Footer = FooterStyle{
		Height:        20,
		MarginRight:   10,
		PaddingLeft:   4,
		PaddingRight:  4,
		ButtonsWidth:  25,
		ButtonsHeight: 16,
	}
	t.Footer.Background.AddRoundedRect(panelGray, Vec4{0, 0, 4, 4}).BorderWidth = Uniform(100)
	t.Footer.Background.AddBorder(edgeGray, Vec4{1, 0, 1, 1}, 0).BorderRadius = Vec4{0, 0, 4, 4}

	t.Global.AddRoundedRect(panelGray, Uniform(4)).Padding = Padding{Top: 1, Bottom: 21}
	t.Global.AddBorder(edgeGray, Uniform(1), 4).Padding = Padding{Bottom: 20}
	return t
}

// recolor applies the palette shared by the alternative built-ins. The
// fields mirror one another across themes: header band, rows, panel,
// footer tab and pagination band.
func (t *Theme) recolor(headerText, headerBg, elementText, selected, panel, edge, pagination Color) {
	t.Header.TextColor = headerText
	t.Header.Background.Layers[0].Color = headerBg
	t.Element.TextColor = elementText
	t.Element.Selected.Layers[0].Color = selected
	t.Global.Layers[0].Color = panel
	t.Global.Layers[1].Color = edge
	t.Footer.Background.Layers[0].Color = panel
	t.Footer.Background.Layers[1].Color = edge
	t.Pagination.Background.Layers[0].Color = pagination
}

// LightTheme returns a light gray theme.
func LightTheme() *Theme {
	t := DefaultTheme()
	t.Name = "Light"
	t.recolor(
		Color{0.1, 0.1, 0.1, 1}, Color{0.75, 0.75, 0.75, 1},
		Color{0.1, 0.1, 0.1, 1}, Color{0.3, 0.5, 0.8, 1},
		Color{0.85, 0.85, 0.85, 1}, Color{0.6, 0.6, 0.6, 1},
		Color{0.75, 0.75, 0.75, 1},
	)
	return t
}

// BlueTheme returns a navy theme.
func BlueTheme() *Theme {
	t := DefaultTheme()
	t.Name = "Blue"
	t.recolor(
		Color{0.8, 0.9, 1, 1}, Color{0.2, 0.3, 0.45, 1},
		Color{0.9, 0.95, 1, 1}, Color{0.3, 0.5, 0.8, 1},
		Color{0.15, 0.2, 0.3, 1}, Color{0.1, 0.15, 0.25, 1},
		Color{0.2, 0.3, 0.45, 1},
	)
	return t
}

// GreenTheme returns a green-on-black terminal look.
func GreenTheme() *Theme {
	t := DefaultTheme()
	t.Name = "Green"
	t.recolor(
		Color{0.3, 1, 0.3, 1}, Color{0.1, 0.2, 0.1, 1},
		Color{0.4, 1, 0.4, 1}, Color{0.2, 0.6, 0.2, 1},
		Color{0.05, 0.15, 0.05, 1}, Color{0.1, 0.3, 0.1, 1},
		Color{0.1, 0.2, 0.1, 1},
	)
	return t
}

// PurpleTheme returns a purple theme.
func PurpleTheme() *Theme {
	t := DefaultTheme()
	t.Name = "Purple"
	t.recolor(
		Color{1, 0.7, 1, 1}, Color{0.3, 0.15, 0.45, 1},
		Color{1, 0.8, 1, 1}, Color{0.6, 0.3, 0.9, 1},
		Color{0.2, 0.1, 0.3, 1}, Color{0.4, 0.2, 0.6, 1},
		Color{0.3, 0.15, 0.45, 1},
	)
	return t
}

// BuiltinThemes returns fresh copies of every built-in theme, dark first.
func BuiltinThemes() []*Theme {
	return []*Theme{DefaultTheme(), LightTheme(), BlueTheme(), GreenTheme(), PurpleTheme()}
}

// Clone returns a deep copy of t.
func (t *Theme) Clone() *Theme {
	c := *t
	for _, lc := range []*LayerConfig{
		&c.Header.Background, &c.Search.Background, &c.List.Background,
		&c.Element.Selected, &c.Element.Unselected, &c.Element.Hover,
		&c.Pagination.Background, &c.Footer.Background, &c.Global,
	} {
		*lc = lc.Clone()
	}
	return &c
}

// ThemeDatabase is an ordered, named collection of themes.
type ThemeDatabase struct {
	themes []*Theme
}

// NewThemeDatabase returns a database holding themes in order.
func NewThemeDatabase(themes ...*Theme) *ThemeDatabase {
	return &ThemeDatabase{themes: themes}
}

// Len returns the number of themes.
func (db *ThemeDatabase) Len() int { return len(db.themes) }

// Themes returns the themes in order.
func (db *ThemeDatabase) Themes() []*Theme { return db.themes }

// Add appends a theme.
func (db *ThemeDatabase) Add(t *Theme) { db.themes = append(db.themes, t) }

// AddDefaultStyle appends a default theme named after its position.
func (db *ThemeDatabase) AddDefaultStyle() *Theme {
	t := DefaultTheme()
	t.Name = fmt.Sprintf("Style %d", len(db.themes)+1)
	db.themes = append(db.themes, t)
	return t
}

// Style returns the theme at index, clamped into range. An empty database
// gets a default theme first.
func (db *ThemeDatabase) Style(index int) *Theme {
	if len(db.themes) == 0 {
		logger.Warn("theme database is empty, creating default style")
		db.AddDefaultStyle()
	}
	return db.themes[clampi(index, 0, len(db.themes)-1)]
}

// StyleByName returns the first theme called name, or the first theme.
func (db *ThemeDatabase) StyleByName(name string) *Theme {
	for _, t := range db.themes {
		if t.Name == name {
			return t
		}
	}
	logger.WithFields(logrus.Fields{"name": name}).Warn("theme not found, returning first style")
	return db.Style(0)
}

// StyleNames lists theme names in order.
func (db *ThemeDatabase) StyleNames() []string {
	names := make([]string, len(db.themes))
	for i, t := range db.themes {
		names[i] = t.Name
	}
	return names
}
