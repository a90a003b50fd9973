package colour

import (
	"math"
	"testing"
)

func TestLuminance(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want float64
	}{
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: 0.0,
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: 1.0,
		},
		{
			name: "pure red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: 0.2126,
		},
		{
			name: "pure green",
			rgb:  RGB{R: 0, G: 255, B: 0},
			want: 0.7152,
		},
		{
			name: "pure blue",
			rgb:  RGB{R: 0, G: 0, B: 255},
			want: 0.0722,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Luminance(tt.rgb)
			if math.Abs(got-tt.want) > 0.0001 {
				t.Errorf("Luminance() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContrastRatio(t *testing.T) {
	black := RGB{R: 0, G: 0, B: 0}
	white := RGB{R: 255, G: 255, B: 255}

	// Black vs white is the maximum possible contrast.
	if got := ContrastRatio(black, white); math.Abs(got-21.0) > 0.0001 {
		t.Errorf("ContrastRatio(black, white) = %f, want 21.0", got)
	}

	// Order of arguments must not matter.
	if ContrastRatio(black, white) != ContrastRatio(white, black) {
		t.Error("ContrastRatio is not symmetric")
	}

	// A colour against itself has ratio 1.
	grey := RGB{R: 128, G: 128, B: 128}
	if got := ContrastRatio(grey, grey); math.Abs(got-1.0) > 0.0001 {
		t.Errorf("ContrastRatio(grey, grey) = %f, want 1.0", got)
	}
}

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name string
		bg   RGB
		want Treatment
	}{
		{
			name: "bright yellow gets dark text",
			bg:   RGB{R: 247, G: 208, B: 44},
			want: Treatment{Text: TextDark, Overlay: false},
		},
		{
			name: "charcoal gets light text",
			bg:   RGB{R: 61, G: 61, B: 61},
			want: Treatment{Text: TextLight, Overlay: false},
		},
		{
			name: "white gets dark text",
			bg:   RGB{R: 255, G: 255, B: 255},
			want: Treatment{Text: TextDark, Overlay: false},
		},
		{
			name: "black gets light text",
			bg:   RGB{R: 0, G: 0, B: 0},
			want: Treatment{Text: TextLight, Overlay: false},
		},
		{
			name: "mid grey still clears the threshold",
			bg:   RGB{R: 128, G: 128, B: 128},
			want: Treatment{Text: TextDark, Overlay: false},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.bg)
			if got != tt.want {
				t.Errorf("Evaluate(%v) = %+v, want %+v", tt.bg, got, tt.want)
			}
		})
	}
}

// Evaluate must be a pure function: same input, same output, every time.
func TestEvaluateDeterminism(t *testing.T) {
	samples := []RGB{
		{R: 247, G: 208, B: 44},
		{R: 61, G: 61, B: 61},
		{R: 0, G: 128, B: 255},
		{R: 200, G: 30, B: 90},
	}

	for _, bg := range samples {
		first := Evaluate(bg)
		for i := 0; i < 3; i++ {
			if got := Evaluate(bg); got != first {
				t.Errorf("Evaluate(%v) changed between calls: %+v vs %+v", bg, first, got)
			}
		}
	}
}

func TestEvaluateBackgroundSafeDefaults(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty string", input: ""},
		{name: "whitespace", input: "   "},
		{name: "garbage", input: "not-a-colour"},
		{name: "truncated hex", input: "#12"},
		{name: "rgb with too few components", input: "rgb(1, 2)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EvaluateBackground(tt.input)
			if got != defaultTreatment {
				t.Errorf("EvaluateBackground(%q) = %+v, want safe default %+v", tt.input, got, defaultTreatment)
			}
		})
	}
}

func TestEvaluateBackgroundParsesAllEncodings(t *testing.T) {
	// The same colour in all three encodings must give the same decision.
	encodings := []string{"#3d3d3d", "rgb(61, 61, 61)", "hsl(0, 0%, 24%)"}

	want := Treatment{Text: TextLight, Overlay: false}
	for _, enc := range encodings {
		if got := EvaluateBackground(enc); got != want {
			t.Errorf("EvaluateBackground(%q) = %+v, want %+v", enc, got, want)
		}
	}
}
