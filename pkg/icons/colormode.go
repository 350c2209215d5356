package icons

import "strings"

// ColorIndex selects a color slot on an Icon. ColorNone renders no color.
type ColorIndex int

const (
	ColorNone  ColorIndex = -1
	ColorLight ColorIndex = 0
	ColorDark  ColorIndex = 1
)

// ColorMode is the user-facing color preference
type ColorMode string

const (
	ColorModeLight ColorMode = "light"
	ColorModeDark  ColorMode = "dark"
	ColorModeMono  ColorMode = "mono"
)

// ParseColorMode maps s to a ColorMode. Unrecognized values resolve to
// light rather than failing, since the value usually comes from callers.
func ParseColorMode(s string) ColorMode {
	switch ColorMode(strings.ToLower(strings.TrimSpace(s))) {
	case ColorModeDark:
		return ColorModeDark
	case ColorModeMono:
		return ColorModeMono
	default:
		return ColorModeLight
	}
}

// Index returns the color slot for the mode. Mono has no slot.
func (m ColorMode) Index() ColorIndex {
	switch ParseColorMode(string(m)) {
	case ColorModeDark:
		return ColorDark
	case ColorModeMono:
		return ColorNone
	default:
		return ColorLight
	}
}

// String returns the normalized mode name
func (m ColorMode) String() string {
	return string(ParseColorMode(string(m)))
}
