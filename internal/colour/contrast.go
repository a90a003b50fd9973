package colour

import "math"

// MinContrastRatio is the WCAG AA contrast threshold for normal text.
const MinContrastRatio = 4.5

// TextTone is the text colour chosen for a given background.
type TextTone string

const (
	// TextLight means light (white) text should be used.
	TextLight TextTone = "light"

	// TextDark means dark (black) text should be used.
	TextDark TextTone = "dark"
)

// Treatment is the contrast-safe presentation decision for a background
// colour: which text tone to use, and whether a semi-transparent overlay
// should be composited behind the text to boost effective contrast.
type Treatment struct {
	Text    TextTone `json:"text"`
	Overlay bool     `json:"overlay"`
}

// defaultTreatment is returned for empty or unparseable backgrounds. A dark
// foreground on an assumed-neutral surface is always legible.
var defaultTreatment = Treatment{Text: TextDark, Overlay: false}

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(rgb RGB) float64 {
	rf := gammaCorrect(float64(rgb.R) / 255.0)
	gf := gammaCorrect(float64(rgb.G) / 255.0)
	bf := gammaCorrect(float64(rgb.B) / 255.0)

	return 0.2126*rf + 0.7152*gf + 0.0722*bf
}

// gammaCorrect applies the sRGB piecewise linearization to a colour component.
func gammaCorrect(v float64) float64 {
	if v <= 0.03928 {
		return v / 12.92
	}
	return math.Pow((v+0.055)/1.055, 2.4)
}

// ContrastRatio calculates the contrast ratio between two colours according
// to WCAG 2.0. Returns a value between 1 and 21, where 21 is maximum contrast
// (black vs white). WCAG AA requires 4.5:1 for normal text.
// https://www.w3.org/TR/WCAG20/#contrast-ratiodef.
func ContrastRatio(c1, c2 RGB) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// Evaluate decides the text treatment for a background colour. The endpoint
// (white or black) with the higher contrast ratio wins; when even the better
// endpoint falls below the AA threshold the overlay flag is set.
func Evaluate(bg RGB) Treatment {
	white := RGB{R: 255, G: 255, B: 255}
	black := RGB{R: 0, G: 0, B: 0}

	vsWhite := ContrastRatio(bg, white)
	vsBlack := ContrastRatio(bg, black)

	t := Treatment{Text: TextDark}
	best := vsBlack
	if vsWhite > vsBlack {
		t.Text = TextLight
		best = vsWhite
	}
	t.Overlay = best < MinContrastRatio

	return t
}

// EvaluateBackground decides the text treatment for a background colour given
// in any supported string encoding. Empty or unparseable input degrades to
// the safe default rather than failing: this sits directly in a render path.
func EvaluateBackground(s string) Treatment {
	rgb, err := Parse(s)
	if err != nil {
		return defaultTreatment
	}
	return Evaluate(rgb)
}
