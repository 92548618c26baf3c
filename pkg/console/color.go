package console

import "github.com/charmbracelet/lipgloss"

// Color is an ANSI terminal color understood by lipgloss.
type Color string

const (
	Black    Color = "0"
	DarkRed  Color = "1"
	Green    Color = "2"
	DarkCyan Color = "6"
	Gray     Color = "7"
	DarkGray Color = "8"
	Red      Color = "9"
	Yellow   Color = "11"
	Blue     Color = "12"
	Magenta  Color = "13"
	Cyan     Color = "14"
	White    Color = "15"
)

func (c Color) lipgloss() lipgloss.Color {
	return lipgloss.Color(c)
}

// pick returns the first explicit color or the fallback.
func pick(colors []Color, fallback Color) Color {
	if len(colors) > 0 && colors[0] != "" {
		return colors[0]
	}
	return fallback
}
