package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/bakery-catch/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault: lipgloss.NewStyle(),
	core.ColorRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:   lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorWhite:   lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorGray:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	core.ColorGold:    bakeryStyle(core.ColorGold, "178"),
	core.ColorAmber:   bakeryStyle(core.ColorAmber, "172"),
	core.ColorCream:   bakeryStyle(core.ColorCream, "223"),
	core.ColorBrown:   bakeryStyle(core.ColorBrown, "94"),
	core.ColorPeach:   bakeryStyle(core.ColorPeach, "216").Bold(true),
}

// bakeryStyle uses the true color value where the terminal supports it and
// degrades to the nearest ANSI 256 entry elsewhere.
func bakeryStyle(c core.Color, ansi256 string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.CompleteColor{
		TrueColor: c.Hex(),
		ANSI256:   ansi256,
		ANSI:      "3",
	})
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
