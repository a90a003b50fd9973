package colour

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    RGB
		wantErr bool
	}{
		{
			name:  "hex lowercase",
			input: "#1a2b3c",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:  "hex uppercase",
			input: "#1A2B3C",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:  "hex shorthand",
			input: "#abc",
			want:  RGB{R: 0xaa, G: 0xbb, B: 0xcc},
		},
		{
			name:  "hex without hash",
			input: "1a2b3c",
			want:  RGB{R: 0x1a, G: 0x2b, B: 0x3c},
		},
		{
			name:  "rgb with spaces",
			input: "rgb(247, 208, 44)",
			want:  RGB{R: 247, G: 208, B: 44},
		},
		{
			name:  "rgb without spaces",
			input: "rgb(1,2,3)",
			want:  RGB{R: 1, G: 2, B: 3},
		},
		{
			name:  "hsl",
			input: "hsl(0, 100%, 50%)",
			want:  RGB{R: 255, G: 0, B: 0},
		},
		{
			name:  "surrounding whitespace",
			input: "  #ffffff ",
			want:  RGB{R: 255, G: 255, B: 255},
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
		{
			name:    "garbage",
			input:   "bananas",
			wantErr: true,
		},
		{
			name:    "rgb out of range",
			input:   "rgb(300, 0, 0)",
			wantErr: true,
		},
		{
			name:    "rgb too few components",
			input:   "rgb(10, 20)",
			wantErr: true,
		},
		{
			name:    "rgb component wider than int",
			input:   "rgb(92233720368547758080, 0, 0)",
			wantErr: true,
		},
		{
			name:    "hsl hue wider than int",
			input:   "hsl(92233720368547758080, 50%, 50%)",
			wantErr: true,
		},
		{
			name:    "hex wrong length",
			input:   "#12345",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse(%q) expected error, got %v", tt.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %+v, want %+v", tt.input, got, tt.want)
			}
		})
	}
}

func TestConvert(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		target Format
		want   string
	}{
		{
			name:   "hex to rgb",
			input:  "#f7d02c",
			target: FormatRGB,
			want:   "rgb(247, 208, 44)",
		},
		{
			name:   "rgb to hex",
			input:  "rgb(247, 208, 44)",
			target: FormatHex,
			want:   "#f7d02c",
		},
		{
			name:   "rgb to hsl",
			input:  "rgb(52, 152, 219)",
			target: FormatHSL,
			want:   "hsl(204, 70%, 53%)",
		},
		{
			name:   "hex to hex normalizes case",
			input:  "#F7D02C",
			target: FormatHex,
			want:   "#f7d02c",
		},
		{
			name:   "rgb to rgb normalizes spacing",
			input:  "rgb(1,2,3)",
			target: FormatRGB,
			want:   "rgb(1, 2, 3)",
		},
		{
			name:   "unparseable input is a visible no-op",
			input:  "not-a-colour",
			target: FormatHex,
			want:   "not-a-colour",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Convert(tt.input, tt.target); got != tt.want {
				t.Errorf("Convert(%q, %s) = %q, want %q", tt.input, tt.target, got, tt.want)
			}
		})
	}
}

// Hex carries full 8-bit precision, so rgb -> hex -> rgb must be exact.
func TestHexRoundTrip(t *testing.T) {
	samples := []RGB{
		{R: 0, G: 0, B: 0},
		{R: 255, G: 255, B: 255},
		{R: 247, G: 208, B: 44},
		{R: 1, G: 2, B: 3},
		{R: 128, G: 64, B: 32},
		{R: 200, G: 0, B: 111},
	}

	for _, want := range samples {
		got, err := Parse(want.Hex())
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", want.Hex(), err)
		}
		if got != want {
			t.Errorf("hex round-trip of %+v gave %+v", want, got)
		}
	}
}

// HSL display strings round components to integers, so the round-trip is
// lossy. The drift is bounded at one unit per channel.
func TestHSLRoundTripTolerance(t *testing.T) {
	samples := []RGB{
		{R: 247, G: 208, B: 44},
		{R: 61, G: 61, B: 61},
		{R: 255, G: 255, B: 255},
		{R: 0, G: 0, B: 0},
		{R: 255, G: 0, B: 0},
		{R: 26, G: 43, B: 60},
		{R: 107, G: 114, B: 128},
		{R: 52, G: 152, B: 219},
		{R: 231, G: 76, B: 60},
		{R: 155, G: 89, B: 182},
	}

	for _, orig := range samples {
		back, err := Parse(orig.HSL())
		if err != nil {
			t.Fatalf("Parse(%q) unexpected error: %v", orig.HSL(), err)
		}

		if diff := channelDiff(orig.R, back.R); diff > 1 {
			t.Errorf("%+v -> %q -> %+v: R drifted by %d", orig, orig.HSL(), back, diff)
		}
		if diff := channelDiff(orig.G, back.G); diff > 1 {
			t.Errorf("%+v -> %q -> %+v: G drifted by %d", orig, orig.HSL(), back, diff)
		}
		if diff := channelDiff(orig.B, back.B); diff > 1 {
			t.Errorf("%+v -> %q -> %+v: B drifted by %d", orig, orig.HSL(), back, diff)
		}
	}
}

// Digit runs longer than an int must saturate rather than wrap back into
// the valid component range.
func TestScanNumbersSaturates(t *testing.T) {
	nums := scanNumbers("rgb(92233720368547758080, 7, 42)")
	if len(nums) != 3 {
		t.Fatalf("scanNumbers() returned %d numbers, want 3", len(nums))
	}
	if nums[0] < maxScanValue {
		t.Errorf("scanNumbers() first component = %d, want saturated value >= %d", nums[0], maxScanValue)
	}
	if nums[1] != 7 || nums[2] != 42 {
		t.Errorf("scanNumbers() trailing components = %d, %d, want 7, 42", nums[1], nums[2])
	}
}

func channelDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
