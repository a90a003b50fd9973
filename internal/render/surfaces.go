// Package render draws the independent palette surfaces: navbar, hero band,
// info panel, gallery cards and the game board. Every surface derives its
// presentation from a store snapshot on each call, so a palette change is
// reflected everywhere on the next render without cross-surface coordination.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/palettedex/palettedex/internal/collections"
	"github.com/palettedex/palettedex/internal/colour"
	"github.com/palettedex/palettedex/internal/game"
	"github.com/palettedex/palettedex/internal/palette"
)

// DefaultWidth is used when the terminal size cannot be determined.
const DefaultWidth = 80

// TerminalWidth returns the current terminal width, or DefaultWidth when
// stdout is not a terminal.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return DefaultWidth
	}
	return w
}

// Navbar renders the brand bar on the palette's dominant colour.
func Navbar(snap palette.Snapshot, width int) string {
	if width <= 0 {
		width = DefaultWidth
	}
	bg, ok := snap.Color(0)
	if !ok {
		bg = colour.Fallback().Colors[0]
	}

	label := "palettedex"
	if snap.Subject.Name != "" {
		label += "  |  " + snap.Subject.String()
	}
	if snap.Extracting {
		label += "  (extracting)"
	}

	return lipgloss.NewStyle().
		Background(lipgloss.Color(bg.Hex())).
		Foreground(textForeground(bg)).
		Bold(true).
		Width(width).
		Padding(0, 1).
		Render(label)
}

// Hero renders the palette band: one chip per slot, labelled with its hex
// value, locked slots marked.
func Hero(snap palette.Snapshot, width int) string {
	if len(snap.Colors) == 0 {
		return MutedStyle.Render("no palette loaded")
	}
	if width <= 0 {
		width = DefaultWidth
	}

	chipWidth := width / len(snap.Colors)
	if chipWidth < 9 {
		chipWidth = 9
	}

	chips := make([]string, 0, len(snap.Colors))
	for i, c := range snap.Colors {
		label := c.Hex()
		if i < len(snap.Locks) && snap.Locks[i] {
			label += " *"
		}
		chip := lipgloss.NewStyle().
			Background(lipgloss.Color(c.Hex())).
			Foreground(textForeground(c)).
			Width(chipWidth).
			Height(3).
			Align(lipgloss.Center, lipgloss.Center).
			Render(label)
		chips = append(chips, chip)
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, chips...)
}

// InfoPanel renders one line per slot with all three encodings and the
// contrast decision for that background.
func InfoPanel(snap palette.Snapshot) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("palette detail"))
	b.WriteString("\n")

	for i, c := range snap.Colors {
		treatment := colour.Evaluate(c)
		locked := " "
		if i < len(snap.Locks) && snap.Locks[i] {
			locked = "*"
		}
		line := fmt.Sprintf("%s%d  %s  %-18s %-18s text:%s",
			locked, i+1, swatchStyle(c).Render(c.Hex()), c.String(), c.HSL(), treatment.Text)
		b.WriteString(line)
		b.WriteString("\n")
	}

	return PanelStyle.Render(strings.TrimRight(b.String(), "\n"))
}

// GalleryCard renders a saved design as a compact card: title, creator,
// like count and a colour strip.
func GalleryCard(d collections.Design, liked bool) string {
	var strip strings.Builder
	for _, c := range d.Colors {
		strip.WriteString(swatchStyle(c).Render(c.Hex()))
	}

	heart := "♡"
	if liked {
		heart = "♥"
	}
	header := TitleStyle.Render(d.Title) + MutedStyle.Render(" by "+d.Creator)
	footer := fmt.Sprintf("%s %d  %s", heart, d.Likes, MutedStyle.Render(d.Category))

	return PanelStyle.Render(header + "\n" + strip.String() + "\n" + footer)
}

// GameBoard renders the guess history, remaining attempts and, once the
// round ends, the revealed answer.
func GameBoard(g *game.Game, snap palette.Snapshot) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("who's that pokemon?"))
	b.WriteString("\n")
	b.WriteString(Hero(snap, 45))
	b.WriteString("\n")

	for _, fb := range g.Guesses() {
		if fb.Correct {
			b.WriteString(BadgeStyle.Render("✓ " + fb.Name))
		} else {
			hint := fb.DexHint
			if len(fb.TypeMatches) > 0 {
				hint += " · type: " + strings.Join(fb.TypeMatches, ", ")
			}
			b.WriteString(fmt.Sprintf("✗ %-14s %s", fb.Name, HintStyle.Render(hint)))
		}
		b.WriteString("\n")
	}

	switch g.Status() {
	case game.StatusWon:
		b.WriteString(fmt.Sprintf("it was %s! score %d", g.Reveal(), g.Score()))
	case game.StatusLost:
		b.WriteString(fmt.Sprintf("out of guesses. it was %s", g.Reveal()))
	default:
		b.WriteString(MutedStyle.Render(fmt.Sprintf("%d guesses left", g.Remaining())))
	}

	return PanelStyle.Render(b.String())
}
