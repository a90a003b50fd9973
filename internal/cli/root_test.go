package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/palettedex/palettedex/internal/colour"
)

func TestApplyNoColor(t *testing.T) {
	prevProfile := lipgloss.ColorProfile()
	prevDisable := colour.DisableColourOutput
	defer func() {
		lipgloss.SetColorProfile(prevProfile)
		colour.DisableColourOutput = prevDisable
	}()

	applyNoColor()

	if !colour.DisableColourOutput {
		t.Error("applyNoColor() did not disable colour previews")
	}
	if got := colour.Preview(colour.RGB{R: 247, G: 208, B: 44}, 4); strings.Contains(got, "\x1b[") {
		t.Errorf("Preview() = %q, still emits escape codes", got)
	}

	styled := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#f7d02c")).
		Background(lipgloss.Color("#1a1a2e")).
		Render("pikachu")
	if strings.Contains(styled, "\x1b[") {
		t.Errorf("lipgloss output %q still carries escape codes", styled)
	}
	if !strings.Contains(styled, "pikachu") {
		t.Errorf("lipgloss output %q lost its text", styled)
	}
}
