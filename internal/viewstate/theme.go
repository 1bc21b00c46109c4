package viewstate

// Theme is the page colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// DefaultTheme applies when no preference has been stored.
const DefaultTheme = ThemeLight

// ParseTheme accepts only the two known theme names.
func ParseTheme(value string) (Theme, bool) {
	switch Theme(value) {
	case ThemeLight:
		return ThemeLight, true
	case ThemeDark:
		return ThemeDark, true
	default:
		return "", false
	}
}

// Toggle returns the other theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// Glyph is the toggle button label: it shows the theme a press switches to.
func (t Theme) Glyph() string {
	if t == ThemeDark {
		return "☀"
	}
	return "🌙"
}
