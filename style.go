package listkit

// Style defines the look of the small controls the list draws itself:
// pagination and footer buttons, the search field and the popup menu.
// List backgrounds come from Theme layers instead.
type Style struct {
	// Colors
	TextColor         uint32
	TextDisabledColor uint32

	// Button colors
	ButtonColor         uint32
	ButtonHoveredColor  uint32
	ButtonActiveColor   uint32
	ButtonDisabledColor uint32

	// Input colors
	InputBgColor        uint32
	InputFocusedBgColor uint32
	InputBorderColor    uint32
	PlaceholderColor    uint32

	// Popup menu colors
	MenuBgColor        uint32
	MenuBorderColor    uint32
	MenuHoveredColor   uint32
	MenuSeparatorColor uint32

	// Toast colors
	ToastInfoColor    uint32
	ToastSuccessColor uint32
	ToastWarningColor uint32
	ToastErrorColor   uint32

	// Sizing
	FontScale      float32
	CharWidth      float32
	CharHeight     float32
	ButtonPadding  float32
	InputPadding   float32
	MenuItemHeight float32
	MenuPadding    float32
}

// DefaultStyle returns the default dark control style.
func DefaultStyle() Style {
	return Style{
		TextColor:         ColorWhite,
		TextDisabledColor: ColorGray,

		ButtonColor:         RGBA(70, 70, 70, 255),
		ButtonHoveredColor:  RGBA(90, 90, 90, 255),
		ButtonActiveColor:   RGBA(110, 110, 110, 255),
		ButtonDisabledColor: RGBA(50, 50, 50, 255),

		InputBgColor:        RGBA(42, 42, 42, 255),
		InputFocusedBgColor: RGBA(50, 50, 58, 255),
		InputBorderColor:    RGBA(36, 36, 36, 255),
		PlaceholderColor:    RGBA(120, 120, 120, 255),

		MenuBgColor:        RGBA(40, 40, 40, 250),
		MenuBorderColor:    RGBA(25, 25, 25, 255),
		MenuHoveredColor:   RGBA(44, 93, 135, 255),
		MenuSeparatorColor: RGBA(70, 70, 70, 255),

		ToastInfoColor:    RGBA(50, 70, 100, 255),
		ToastSuccessColor: RGBA(40, 100, 50, 255),
		ToastWarningColor: RGBA(130, 100, 30, 255),
		ToastErrorColor:   RGBA(130, 40, 40, 255),

		FontScale:      1.0,
		CharWidth:      8,
		CharHeight:     8,
		ButtonPadding:  4,
		InputPadding:   3,
		MenuItemHeight: 18,
		MenuPadding:    4,
	}
}

// LightStyle returns a light control style.
func LightStyle() Style {
	s := DefaultStyle()
	s.TextColor = RGBA(20, 20, 20, 255)
	s.TextDisabledColor = RGBA(150, 150, 150, 255)
	s.ButtonColor = RGBA(220, 220, 220, 255)
	s.ButtonHoveredColor = RGBA(200, 200, 200, 255)
	s.ButtonActiveColor = RGBA(180, 180, 180, 255)
	s.ButtonDisabledColor = RGBA(235, 235, 235, 255)
	s.InputBgColor = ColorWhite
	s.InputFocusedBgColor = ColorWhite
	s.InputBorderColor = RGBA(150, 150, 150, 255)
	s.PlaceholderColor = RGBA(160, 160, 160, 255)
	s.MenuBgColor = RGBA(250, 250, 250, 250)
	s.MenuBorderColor = RGBA(180, 180, 180, 255)
	s.MenuHoveredColor = RGBA(0, 120, 215, 255)
	s.MenuSeparatorColor = RGBA(210, 210, 210, 255)
	return s
}
