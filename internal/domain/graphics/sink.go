// Package graphics defines the write-only drawing surface screens and game
// objects render into.
package graphics

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// Paint carries optional per-draw styling. A nil *Paint draws the bitmap
// unmodified.
type Paint struct {
	Alpha  float32 // 0 means opaque
	Tint   color.Color
	Smooth bool // linear filtering instead of nearest
}

// Sink accepts draw commands. It has no return values; failures are the
// sink's own concern.
type Sink interface {
	// DrawBitmap stretches src (the whole bitmap when nil) over dst.
	DrawBitmap(img *ebiten.Image, src *image.Rectangle, dst image.Rectangle, paint *Paint)

	// DrawText draws a single line of text with its top-left corner at (x, y).
	DrawText(s string, x, y int, clr color.Color)

	// Size returns the surface size in pixels.
	Size() (int, int)
}
