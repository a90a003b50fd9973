package colour

import (
	"encoding/json"
	"testing"
)

func TestNewPalette(t *testing.T) {
	colors := []RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 255, B: 0},
		{R: 0, G: 0, B: 255},
	}

	palette := NewPalette(colors)

	if palette == nil {
		t.Fatal("NewPalette returned nil")
	}

	if palette.Len() != 3 {
		t.Errorf("Expected palette length 3, got %d", palette.Len())
	}
}

func TestRGBString(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "rgb(255, 0, 0)",
		},
		{
			name: "pikachu yellow",
			rgb:  RGB{R: 247, G: 208, B: 44},
			want: "rgb(247, 208, 44)",
		},
		{
			name: "black",
			rgb:  RGB{R: 0, G: 0, B: 0},
			want: "rgb(0, 0, 0)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.String(); got != tt.want {
				t.Errorf("String() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	tests := []struct {
		name string
		rgb  RGB
		want string
	}{
		{
			name: "red",
			rgb:  RGB{R: 255, G: 0, B: 0},
			want: "#ff0000",
		},
		{
			name: "white",
			rgb:  RGB{R: 255, G: 255, B: 255},
			want: "#ffffff",
		},
		{
			name: "leading zeros",
			rgb:  RGB{R: 1, G: 2, B: 3},
			want: "#010203",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.rgb.Hex(); got != tt.want {
				t.Errorf("Hex() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestPaletteGet(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 1, G: 1, B: 1},
		{R: 2, G: 2, B: 2},
	})

	got, err := palette.Get(1)
	if err != nil {
		t.Fatalf("Get(1) unexpected error: %v", err)
	}
	if got != (RGB{R: 2, G: 2, B: 2}) {
		t.Errorf("Get(1) = %+v", got)
	}

	if _, err := palette.Get(2); err == nil {
		t.Error("Get(2) expected out of bounds error")
	}
	if _, err := palette.Get(-1); err == nil {
		t.Error("Get(-1) expected out of bounds error")
	}
}

func TestPaletteToJSON(t *testing.T) {
	palette := NewPalette([]RGB{
		{R: 255, G: 0, B: 0},
		{R: 0, G: 0, B: 255},
	})

	data, err := palette.ToJSON()
	if err != nil {
		t.Fatalf("ToJSON() unexpected error: %v", err)
	}

	var decoded PaletteJSON
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("ToJSON() produced invalid JSON: %v", err)
	}

	if decoded.Count != 2 {
		t.Errorf("Count = %d, want 2", decoded.Count)
	}
	if decoded.Colors[0].Hex != "#ff0000" {
		t.Errorf("Colors[0].Hex = %q, want #ff0000", decoded.Colors[0].Hex)
	}
}

func TestFallback(t *testing.T) {
	fb := Fallback()

	if fb.Len() != 5 {
		t.Fatalf("Fallback palette has %d colours, want 5", fb.Len())
	}

	// Fallback colours are neutral greys: the contrast evaluator must be
	// able to make a decision for every slot without the overlay flag.
	for i, c := range fb.Colors {
		tr := Evaluate(c)
		if tr.Overlay {
			t.Errorf("Fallback slot %d (%s) requires an overlay", i, c.Hex())
		}
	}
}
