// Package colour provides colour math, format conversion and palette
// extraction for Pokemon artwork.
package colour

import (
	"encoding/json"
	"fmt"
	"image/color"
)

// RGB represents a colour in RGB format.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// String returns the RGB colour as a string in the format "rgb(r, g, b)".
func (rgb RGB) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
}

// Hex returns the RGB colour as a hex string (e.g., "#1a2b3c").
func (rgb RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B)
}

// HSL returns the RGB colour as an hsl string with degree/percent components
// rounded to the nearest integer (e.g., "hsl(204, 70%, 53%)").
func (rgb RGB) HSL() string {
	h, s, l := RGBToHSL(rgb)
	return fmt.Sprintf("hsl(%d, %d%%, %d%%)", int(h+0.5), int(s*100+0.5), int(l*100+0.5))
}

// ToRGB converts a color.Color to RGB.
func ToRGB(c color.Color) RGB {
	r, g, b, _ := c.RGBA()
	// RGBA returns values in the range [0, 65535], convert to [0, 255]
	return RGB{
		R: uint8(r >> 8),
		G: uint8(g >> 8),
		B: uint8(b >> 8),
	}
}

// ToColor converts an RGB value to a color.Color (RGBA).
func ToColor(rgb RGB) color.Color {
	return color.RGBA{R: rgb.R, G: rgb.G, B: rgb.B, A: 255}
}

// Palette represents an ordered collection of colours extracted from an
// image. Slot position is meaningful: slot 0 is the dominant colour, slot 1
// the secondary, and so on.
type Palette struct {
	Colors  []RGB
	Weights []float64
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []RGB) *Palette {
	return &Palette{Colors: colors}
}

// NewPaletteWithWeights creates a Palette with per-colour dominance weights.
// Weights may be nil; when present, len(weights) must equal len(colors).
func NewPaletteWithWeights(colors []RGB, weights []float64) *Palette {
	return &Palette{Colors: colors, Weights: weights}
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Get returns the colour at the specified slot.
// Returns an error if the slot is out of bounds.
func (p *Palette) Get(slot int) (RGB, error) {
	if slot < 0 || slot >= len(p.Colors) {
		return RGB{}, fmt.Errorf("slot out of bounds: %d (palette has %d colours)", slot, len(p.Colors))
	}
	return p.Colors[slot], nil
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ToRGBStrings converts the palette colours to "rgb(r, g, b)" strings.
func (p *Palette) ToRGBStrings() []string {
	rgbColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		rgbColors[i] = c.String()
	}
	return rgbColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex string `json:"hex"`
	RGB RGB    `json:"rgb"`
	HSL string `json:"hsl"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex: c.Hex(),
			RGB: c,
			HSL: c.HSL(),
		}
	}

	paletteJSON := PaletteJSON{
		Count:  len(p.Colors),
		Colors: colors,
	}

	return json.MarshalIndent(paletteJSON, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}

// Fallback returns the fixed neutral palette used when extraction fails.
// Dependent contrast and background logic always has valid input this way.
func Fallback() *Palette {
	return NewPalette([]RGB{
		{R: 0x6b, G: 0x72, B: 0x80},
		{R: 0x9c, G: 0xa3, B: 0xaf},
		{R: 0xd1, G: 0xd5, B: 0xdb},
		{R: 0x4b, G: 0x55, B: 0x63},
		{R: 0xe5, G: 0xe7, B: 0xeb},
	})
}
