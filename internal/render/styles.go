package render

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/palettedex/palettedex/internal/colour"
)

var (
	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	MutedStyle = lipgloss.NewStyle().
			Faint(true)

	BadgeStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Bold(true)

	HintStyle = lipgloss.NewStyle().
			Italic(true).
			Faint(true)
)

// textForeground picks the lipgloss foreground for text sitting on bg. Each
// surface calls this independently instead of sharing a cached decision.
func textForeground(bg colour.RGB) lipgloss.Color {
	if colour.Evaluate(bg).Text == colour.TextLight {
		return lipgloss.Color("#ffffff")
	}
	return lipgloss.Color("#111111")
}

// swatchStyle renders text on a colour chip with a contrast-safe foreground.
func swatchStyle(bg colour.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(textForeground(bg)).
		Padding(0, 1)
}
