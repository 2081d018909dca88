package screen

import (
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/entity"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
)

// BackgroundImage is the bitmap behind every menu-style screen.
const BackgroundImage = "SpaceBackground"

// Backdrop is the slowly drifting space background shared by the menu,
// options and about screens. It spans two layer widths; the layer drifts
// from one end to the other and back.
type Backdrop struct {
	env   *Env
	lv    *viewport.LayerViewport
	obj   *entity.GameObject // nil when the bitmap is missing
	drift *viewport.Drift
}

// NewBackdrop creates a backdrop for the layer lv.
func NewBackdrop(env *Env, lv *viewport.LayerViewport, owner entity.Owner) *Backdrop {
	speed := 1.0
	if env.Gameplay != nil && env.Gameplay.DriftSpeed > 0 {
		speed = env.Gameplay.DriftSpeed
	}
	worldWidth := 2 * lv.Width

	b := &Backdrop{
		env:   env,
		lv:    lv,
		drift: viewport.NewDrift(lv, worldWidth, speed),
	}
	if img, ok := env.Assets.Bitmap(BackgroundImage); ok {
		b.obj = entity.NewGameObject(worldWidth/2, lv.Height/2, worldWidth, lv.Height, img, owner)
	}
	return b
}

// Step drifts the layer by one frame.
func (b *Backdrop) Step() {
	b.drift.Step(b.lv)
}

// Draw draws the visible part of the background.
func (b *Backdrop) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	if b.obj != nil {
		b.obj.Draw(t, sink, b.lv, b.env.Screen)
	}
}

// Layer returns the drifting layer viewport.
func (b *Backdrop) Layer() *viewport.LayerViewport {
	return b.lv
}
