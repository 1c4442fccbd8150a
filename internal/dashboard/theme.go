package dashboard

import (
	"popdash/pkg/serrors"
	"strings"
)

// Theme is the color scheme of the page.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Themes lists every supported theme in the order the selector shows them.
func Themes() []Theme { return []Theme{ThemeLight, ThemeDark} }

// ParseTheme accepts "light" or "dark" in any case. Empty input is rejected;
// callers pick their own default.
func ParseTheme(s string) (Theme, error) {
	switch t := Theme(strings.ToLower(strings.TrimSpace(s))); t {
	case ThemeLight, ThemeDark:
		return t, nil
	default:
		return "", serrors.With(serrors.ErrBadRequest, "unknown theme %q", s)
	}
}

// Style is the page text and background color.
type Style struct {
	Color      string `json:"color"`
	Background string `json:"backgroundColor"`
}

// Style returns the page colors of t.
func (t Theme) Style() Style {
	if t == ThemeDark {
		return Style{Color: "white", Background: "black"}
	}

	return Style{Color: "black", Background: "white"}
}

// ChartTheme returns the ECharts theme name for t. ECharts registers "dark"
// and treats "light" as its built-in default.
func (t Theme) ChartTheme() string {
	if t == ThemeDark {
		return "dark"
	}

	return "light"
}

// Label is the human readable name used by the theme selector.
func (t Theme) Label() string {
	if t == ThemeDark {
		return "Dark"
	}

	return "Light"
}
