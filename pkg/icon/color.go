// color.go — hex color parsing and channel interpolation.
package icon

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ParseHex parses a "#rrggbb" color string into an opaque color.RGBA.
// The leading "#" is optional.
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("invalid color %q: expected 6-char hex", s)
	}

	r, err := strconv.ParseUint(hex[0:2], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid red channel in %q: %w", s, err)
	}
	g, err := strconv.ParseUint(hex[2:4], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid green channel in %q: %w", s, err)
	}
	b, err := strconv.ParseUint(hex[4:6], 16, 8)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid blue channel in %q: %w", s, err)
	}

	return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, nil
}

// hexRGBA converts a "#rrggbb" string to color.RGBA.
// Returns white on any parse error (safe default for rendering).
func hexRGBA(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		return color.RGBA{255, 255, 255, 255}
	}
	return c
}

// lerp interpolates between a and b channel-wise with rounding. t is
// expected in [0, 1]; t=0 yields a exactly and t=1 yields b exactly.
// The result is always opaque.
func lerp(a, b color.RGBA, t float64) color.RGBA {
	ch := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x)*(1-t) + float64(y)*t))
	}
	return color.RGBA{ch(a.R, b.R), ch(a.G, b.G), ch(a.B, b.B), 255}
}
