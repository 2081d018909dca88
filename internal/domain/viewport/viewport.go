// Package viewport maps the scrolling world (the layer) onto the display
// (the screen).
//
// World space is measured in floating-point units with the layer viewport
// positioned by its center. Screen space is measured in integer pixels with
// the screen viewport positioned by its top-left corner. Both axes grow
// right and down.
package viewport

import (
	"errors"
	"fmt"
)

// WorldExtent is the number of world units given to the larger screen
// dimension when a layer viewport is fitted to a screen.
const WorldExtent = 240.0

// ErrInvalidExtent is returned when a viewport is built with a non-positive
// width or height.
var ErrInvalidExtent = errors.New("viewport: width and height must be positive")

// LayerViewport is the visible window onto world space.
// X and Y are mutated directly by whichever screen animates the camera.
type LayerViewport struct {
	X, Y          float64
	Width, Height float64
}

// NewLayerViewport creates a layer viewport centred on (x, y).
func NewLayerViewport(x, y, width, height float64) (*LayerViewport, error) {
	if !(width > 0) || !(height > 0) {
		return nil, fmt.Errorf("layer %gx%g: %w", width, height, ErrInvalidExtent)
	}
	return &LayerViewport{X: x, Y: y, Width: width, Height: height}, nil
}

// MustLayerViewport is like NewLayerViewport but panics on invalid extents.
func MustLayerViewport(x, y, width, height float64) *LayerViewport {
	lv, err := NewLayerViewport(x, y, width, height)
	if err != nil {
		panic(err)
	}
	return lv
}

// FitLayerViewport creates a layer viewport with the same aspect ratio as sv.
// The larger screen dimension spans WorldExtent units and the smaller one is
// scaled to match. The layer starts with its top-left corner at the world
// origin.
func FitLayerViewport(sv ScreenViewport) (*LayerViewport, error) {
	if sv.Width <= 0 || sv.Height <= 0 {
		return nil, fmt.Errorf("screen %dx%d: %w", sv.Width, sv.Height, ErrInvalidExtent)
	}

	w, h := WorldExtent, WorldExtent
	if sv.Width > sv.Height {
		h = WorldExtent * float64(sv.Height) / float64(sv.Width)
	} else if sv.Height > sv.Width {
		w = WorldExtent * float64(sv.Width) / float64(sv.Height)
	}
	return NewLayerViewport(w/2, h/2, w, h)
}

// Bounds returns the world rectangle covered by the layer.
func (lv *LayerViewport) Bounds() Rect {
	return Rect{X: lv.X, Y: lv.Y, Width: lv.Width, Height: lv.Height}
}

// Aspect returns width / height.
func (lv *LayerViewport) Aspect() float64 {
	return lv.Width / lv.Height
}

// Clone returns an independent copy.
func (lv *LayerViewport) Clone() *LayerViewport {
	c := *lv
	return &c
}

func (lv *LayerViewport) String() string {
	return fmt.Sprintf("layer(%.2f,%.2f %.2fx%.2f)", lv.X, lv.Y, lv.Width, lv.Height)
}

// ScreenViewport is the device rectangle the layer is projected onto.
// It is immutable once built for a given device size.
type ScreenViewport struct {
	Left, Top     int
	Width, Height int
}

// NewScreenViewport creates a screen viewport.
func NewScreenViewport(left, top, width, height int) (ScreenViewport, error) {
	if width <= 0 || height <= 0 {
		return ScreenViewport{}, fmt.Errorf("screen %dx%d: %w", width, height, ErrInvalidExtent)
	}
	return ScreenViewport{Left: left, Top: top, Width: width, Height: height}, nil
}

// Right returns the exclusive right edge in pixels.
func (sv ScreenViewport) Right() int { return sv.Left + sv.Width }

// Bottom returns the exclusive bottom edge in pixels.
func (sv ScreenViewport) Bottom() int { return sv.Top + sv.Height }

// Aspect returns width / height.
func (sv ScreenViewport) Aspect() float64 {
	return float64(sv.Width) / float64(sv.Height)
}

// Landscape reports whether the screen is wider than it is tall.
func (sv ScreenViewport) Landscape() bool {
	return sv.Width > sv.Height
}
