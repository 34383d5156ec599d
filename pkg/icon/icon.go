// Package icon renders the carbon-tracker application icon: a rounded-square
// green gradient with a white leaf mark.
//
// The output is fully deterministic; every run produces identical pixels.
package icon

import (
	"image"
	"image/color"

	"github.com/fogleman/gg"
)

// Size is the icon's width and height in pixels.
const Size = 512

const (
	// cornerRadius is 20% of Size and stays constant for every gradient
	// step; the inner rectangles keep the full radius even as their
	// bounds shrink.
	cornerRadius = Size / 5

	// leafScale sets the leaf's extent relative to the canvas.
	leafScale = 0.35 * Size

	gradientSteps = 50
)

// Gradient endpoints, matching the app bar colors (green shade 400 → 700).
var (
	gradientStart = hexRGBA("#66BB6A")
	gradientEnd   = hexRGBA("#2E7D32")
)

// leafOutline holds the silhouette vertices as offsets from the canvas
// center, in units of leafScale.
var leafOutline = [][2]float64{
	{0, -1},      // tip
	{0.6, -0.3},  // upper right
	{0.8, 0.2},   // right
	{0.3, 0.6},   // lower right
	{0, 0.4},     // notch
	{-0.3, 0.6},  // lower left
	{-0.8, 0.2},  // left
	{-0.6, -0.3}, // upper left
}

// detailDots are small highlight positions around the vein, in the same
// center-relative units as leafOutline.
var detailDots = [][2]float64{
	{-0.4, -0.1},
	{0.4, 0.1},
	{-0.1, 0.4},
}

// Render draws the icon onto a fresh transparent canvas and returns it.
func Render() *image.RGBA {
	dc := gg.NewContext(Size, Size)

	drawGradient(dc)
	drawLeaf(dc)

	return dc.Image().(*image.RGBA)
}

// drawGradient approximates a diagonal gradient by stacking progressively
// smaller rounded rectangles, each one step further along the color ramp.
func drawGradient(dc *gg.Context) {
	for i := 0; i < gradientSteps; i++ {
		offset := float64(2 * i)
		dc.SetColor(gradientStop(i))
		dc.DrawRoundedRectangle(offset, offset, Size-2*offset, Size-2*offset, cornerRadius)
		dc.Fill()
	}
}

// gradientStop returns the fill color for step i of the ramp.
func gradientStop(i int) color.RGBA {
	ratio := float64(i) / float64(gradientSteps-1)
	return lerp(gradientStart, gradientEnd, ratio)
}

// drawLeaf draws the white leaf silhouette, its vein, and the detail dots
// on top of the gradient.
func drawLeaf(dc *gg.Context) {
	const cx, cy = Size / 2.0, Size / 2.0

	dc.NewSubPath()
	for _, p := range leafOutline {
		dc.LineTo(cx+p[0]*leafScale, cy+p[1]*leafScale)
	}
	dc.ClosePath()
	dc.SetRGBA255(255, 255, 255, 255)
	dc.Fill()

	dc.SetRGBA255(255, 255, 255, 200)
	dc.SetLineWidth(6)
	dc.DrawLine(cx, cy-0.8*leafScale, cx, cy+0.3*leafScale)
	dc.Stroke()

	dc.SetRGBA255(255, 255, 255, 180)
	for _, p := range detailDots {
		dc.DrawCircle(cx+p[0]*leafScale, cy+p[1]*leafScale, 4)
		dc.Fill()
	}
}
