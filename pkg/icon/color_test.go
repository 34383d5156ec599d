package icon

import (
	"image/color"
	"testing"
)

func TestParseHex(t *testing.T) {
	testCases := []struct {
		name    string
		hex     string
		want    color.RGBA
		wantErr bool
	}{
		{"gradient start", "#66BB6A", color.RGBA{102, 187, 106, 255}, false},
		{"gradient end", "#2E7D32", color.RGBA{46, 125, 50, 255}, false},
		{"white", "#FFFFFF", color.RGBA{255, 255, 255, 255}, false},
		{"black", "#000000", color.RGBA{0, 0, 0, 255}, false},
		{"lowercase", "#66bb6a", color.RGBA{102, 187, 106, 255}, false},
		{"no prefix", "66BB6A", color.RGBA{102, 187, 106, 255}, false},
		{"too short", "#FFF", color.RGBA{}, true},
		{"too long", "#66BB6A00", color.RGBA{}, true},
		{"bad red", "#GG0000", color.RGBA{}, true},
		{"bad green", "#00GG00", color.RGBA{}, true},
		{"bad blue", "#0000GG", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHex(tc.hex)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseHex(%q) error = %v, wantErr %v", tc.hex, err, tc.wantErr)
			}
			if !tc.wantErr && got != tc.want {
				t.Errorf("ParseHex(%q) = %v, want %v", tc.hex, got, tc.want)
			}
		})
	}
}

func TestHexRGBAFallback(t *testing.T) {
	white := color.RGBA{255, 255, 255, 255}
	if got := hexRGBA("not-a-color"); got != white {
		t.Errorf("hexRGBA on invalid input = %v, want white", got)
	}
	if got := hexRGBA("#2E7D32"); got != (color.RGBA{46, 125, 50, 255}) {
		t.Errorf("hexRGBA(#2E7D32) = %v", got)
	}
}

func TestLerp(t *testing.T) {
	a := color.RGBA{102, 187, 106, 255}
	b := color.RGBA{46, 125, 50, 255}

	testCases := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"start", 0, a},
		{"end", 1, b},
		{"midpoint", 0.5, color.RGBA{74, 156, 78, 255}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := lerp(a, b, tc.t); got != tc.want {
				t.Errorf("lerp(a, b, %v) = %v, want %v", tc.t, got, tc.want)
			}
		})
	}
}
