package entity

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
)

// Owner is the screen a game object belongs to.
type Owner interface {
	Name() string
}

// GameObject is a positioned, sized bitmap in world space.
type GameObject struct {
	X, Y          float64 // world-space center
	Width, Height float64

	bitmap *ebiten.Image
	owner  Owner
}

// NewGameObject creates a game object centred on (x, y).
// Game objects are built after their screen has loaded its assets, so a nil
// bitmap is a construction-order bug and panics.
func NewGameObject(x, y, width, height float64, bitmap *ebiten.Image, owner Owner) *GameObject {
	if bitmap == nil {
		panic("entity: game object requires a bitmap")
	}
	return &GameObject{
		X:      x,
		Y:      y,
		Width:  width,
		Height: height,
		bitmap: bitmap,
		owner:  owner,
	}
}

// Bound returns the world rectangle covered by the object.
func (o *GameObject) Bound() viewport.Rect {
	return viewport.Rect{X: o.X, Y: o.Y, Width: o.Width, Height: o.Height}
}

// SetPosition moves the object's center.
func (o *GameObject) SetPosition(x, y float64) {
	o.X = x
	o.Y = y
}

// Bitmap returns the object's bitmap.
func (o *GameObject) Bitmap() *ebiten.Image {
	return o.bitmap
}

// Owner returns the screen the object belongs to.
func (o *GameObject) Owner() Owner {
	return o.owner
}

// Draw projects the visible part of the object through the layer/screen
// pair and submits it to sink. Objects outside the layer draw nothing.
func (o *GameObject) Draw(_ clock.ElapsedTime, sink graphics.Sink, lv *viewport.LayerViewport, sv viewport.ScreenViewport) {
	b := o.bitmap.Bounds()
	src, dst, ok := viewport.Clip(o.Bound(), b.Dx(), b.Dy(), lv, sv)
	if !ok {
		return
	}
	src = src.Add(b.Min)
	sink.DrawBitmap(o.bitmap, &src, dst, nil)
}
