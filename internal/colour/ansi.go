package colour

import (
	"fmt"
	"strings"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// DisableColourOutput can be used to disable colour output.
var DisableColourOutput = false

// Preview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
// Uses background colour with spaces for a solid block.
func Preview(c RGB, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	if DisableColourOutput {
		return strings.Repeat(" ", width)
	}

	// Build ANSI background colour escape sequence.
	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)

	// Create solid colour block using spaces with background colour.
	block := strings.Repeat(" ", width)

	return bgColour + block + ansiReset
}

// PreviewWithText returns a colour preview with a text overlay. The text
// colour is chosen via the contrast evaluator so it stays legible.
func PreviewWithText(c RGB, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	if DisableColourOutput {
		return displayText
	}

	var fgR, fgG, fgB uint8
	if Evaluate(c).Text == TextLight {
		fgR, fgG, fgB = 255, 255, 255
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fgR, fgG, fgB, ansiSuffix)

	return bgColour + fgColour + displayText + ansiReset
}

// FormatWithPreview formats a colour with its preview and hex code.
func FormatWithPreview(rgb RGB, width int) string {
	return fmt.Sprintf("%s %s", Preview(rgb, width), rgb.Hex())
}

// FormatWithLabel formats a colour with a label and preview.
func FormatWithLabel(rgb RGB, label string, width int) string {
	return fmt.Sprintf("%s  %-20s %s", Preview(rgb, width), label, rgb.Hex())
}
