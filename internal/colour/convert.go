package colour

import (
	"fmt"
	"strings"
)

// Format identifies a colour string encoding.
type Format string

const (
	// FormatHex is the "#rrggbb" encoding.
	FormatHex Format = "hex"

	// FormatRGB is the "rgb(r, g, b)" encoding.
	FormatRGB Format = "rgb"

	// FormatHSL is the "hsl(h, s%, l%)" encoding.
	FormatHSL Format = "hsl"
)

// ValidFormats returns the supported colour string formats.
func ValidFormats() []Format {
	return []Format{FormatHex, FormatRGB, FormatHSL}
}

// IsValidFormat checks if the given format name is supported.
func IsValidFormat(f Format) bool {
	for _, valid := range ValidFormats() {
		if f == valid {
			return true
		}
	}
	return false
}

// Parse parses a colour string in hex ("#rrggbb" or "#rgb"), "rgb(r, g, b)"
// or "hsl(h, s%, l%)" form into an RGB value.
func Parse(s string) (RGB, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return RGB{}, fmt.Errorf("empty colour string")
	}

	switch {
	case strings.HasPrefix(s, "#"):
		return parseHex(s)
	case strings.HasPrefix(strings.ToLower(s), "rgb"):
		return parseRGBFunc(s)
	case strings.HasPrefix(strings.ToLower(s), "hsl"):
		return parseHSLFunc(s)
	default:
		// Bare hex without the leading hash.
		if rgb, err := parseHex("#" + s); err == nil {
			return rgb, nil
		}
		return RGB{}, fmt.Errorf("unrecognised colour format: %q", s)
	}
}

// Convert converts a colour string to the target format. The conversion is
// format-idempotent: input already in the target format is re-normalized, not
// passed through. Unparseable input is returned unchanged so callers in
// render paths see a visible no-op instead of an error.
func Convert(s string, target Format) string {
	rgb, err := Parse(s)
	if err != nil {
		return s
	}

	switch target {
	case FormatHex:
		return rgb.Hex()
	case FormatRGB:
		return rgb.String()
	case FormatHSL:
		return rgb.HSL()
	default:
		return s
	}
}

// parseHex parses "#rrggbb" or "#rgb" into an RGB value.
func parseHex(s string) (RGB, error) {
	hex := strings.TrimPrefix(s, "#")

	// Expand the shorthand form: #abc -> #aabbcc.
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}

	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid hex colour: %q", s)
	}

	var r, g, b uint8
	if _, err := fmt.Sscanf(strings.ToLower(hex), "%02x%02x%02x", &r, &g, &b); err != nil {
		return RGB{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}

	return RGB{R: r, G: g, B: b}, nil
}

// parseRGBFunc parses "rgb(r, g, b)" via a permissive numeric scan: any
// non-digit characters act as separators, so "rgb(1,2,3)" and
// "rgba(1, 2, 3, 0.5)" both yield the first three components.
func parseRGBFunc(s string) (RGB, error) {
	nums := scanNumbers(s)
	if len(nums) < 3 {
		return RGB{}, fmt.Errorf("invalid rgb colour: %q", s)
	}
	for _, n := range nums[:3] {
		if n < 0 || n > 255 {
			return RGB{}, fmt.Errorf("rgb component out of range in %q", s)
		}
	}
	return RGB{R: uint8(nums[0]), G: uint8(nums[1]), B: uint8(nums[2])}, nil
}

// parseHSLFunc parses "hsl(h, s%, l%)" into an RGB value.
func parseHSLFunc(s string) (RGB, error) {
	nums := scanNumbers(s)
	if len(nums) < 3 {
		return RGB{}, fmt.Errorf("invalid hsl colour: %q", s)
	}
	h, sat, l := float64(nums[0]), float64(nums[1]), float64(nums[2])
	if h < 0 || h > 360 || sat < 0 || sat > 100 || l < 0 || l > 100 {
		return RGB{}, fmt.Errorf("hsl component out of range in %q", s)
	}
	return HSLToRGB(h, sat/100.0, l/100.0), nil
}

// maxScanValue caps accumulated numbers in scanNumbers. Every caller
// rejects anything above 360, so runs of digits saturate here instead of
// overflowing int and wrapping back into a valid range.
const maxScanValue = 1 << 16

// scanNumbers extracts the decimal integers embedded in a string, in order.
// Fractional parts are truncated ("0.5" scans as 0 then 5, which is why
// callers only read the leading components).
func scanNumbers(s string) []int {
	var nums []int
	cur := -1
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= '0' && c <= '9' {
			if cur < 0 {
				cur = 0
			}
			if cur < maxScanValue {
				cur = cur*10 + int(c-'0')
			}
		} else if cur >= 0 {
			nums = append(nums, cur)
			cur = -1
		}
	}
	if cur >= 0 {
		nums = append(nums, cur)
	}
	return nums
}
