package entity

import (
	"image"
	"image/color"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
)

type drawCall struct {
	img *ebiten.Image
	src *image.Rectangle
	dst image.Rectangle
}

// recordingSink captures draw commands instead of rendering them.
type recordingSink struct {
	calls []drawCall
}

func (s *recordingSink) DrawBitmap(img *ebiten.Image, src *image.Rectangle, dst image.Rectangle, _ *graphics.Paint) {
	s.calls = append(s.calls, drawCall{img: img, src: src, dst: dst})
}

func (s *recordingSink) DrawText(string, int, int, color.Color) {}

func (s *recordingSink) Size() (int, int) { return 320, 240 }

type namedOwner string

func (n namedOwner) Name() string { return string(n) }

func TestNewGameObject_RequiresBitmap(t *testing.T) {
	assert.Panics(t, func() {
		NewGameObject(0, 0, 10, 10, nil, namedOwner("test"))
	})
}

func TestGameObject_Bound(t *testing.T) {
	img := ebiten.NewImage(8, 8)
	o := NewGameObject(10, 20, 4, 6, img, namedOwner("MenuScreen"))

	b := o.Bound()
	assert.InDelta(t, 8, b.Left(), 1e-9)
	assert.InDelta(t, 17, b.Top(), 1e-9)
	assert.Equal(t, "MenuScreen", o.Owner().Name())

	o.SetPosition(0, 0)
	assert.InDelta(t, -2, o.Bound().Left(), 1e-9)
}

func TestGameObject_Draw(t *testing.T) {
	img := ebiten.NewImage(64, 32)
	lv := viewport.MustLayerViewport(120, 90, 240, 180)
	sv := viewport.ScreenViewport{Width: 320, Height: 240}

	t.Run("visible object is projected", func(t *testing.T) {
		sink := &recordingSink{}
		o := NewGameObject(120, 90, 30, 15, img, namedOwner("test"))

		o.Draw(clock.ElapsedTime{}, sink, lv, sv)

		require.Len(t, sink.calls, 1)
		assert.Same(t, img, sink.calls[0].img)
		require.NotNil(t, sink.calls[0].src)
		assert.Equal(t, image.Rect(0, 0, 64, 32), *sink.calls[0].src)
		assert.Equal(t, image.Rect(140, 110, 180, 130), sink.calls[0].dst)
	})

	t.Run("object outside the layer is culled", func(t *testing.T) {
		sink := &recordingSink{}
		o := NewGameObject(1000, 90, 30, 15, img, namedOwner("test"))

		o.Draw(clock.ElapsedTime{}, sink, lv, sv)

		assert.Empty(t, sink.calls)
	})

	t.Run("projection follows the camera", func(t *testing.T) {
		sink := &recordingSink{}
		moved := lv.Clone()
		moved.X += 15
		o := NewGameObject(120, 90, 30, 15, img, namedOwner("test"))

		o.Draw(clock.ElapsedTime{}, sink, moved, sv)

		require.Len(t, sink.calls, 1)
		assert.Equal(t, image.Rect(120, 110, 160, 130), sink.calls[0].dst)
	})
}
