// Package about implements the about screen.
package about

import (
	"image"

	"golang.org/x/image/colornames"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
)

const (
	AboutTitle = "AboutTitle"
	BackIcon   = "BackIcon"

	ZoneBack = "back"
)

// Lines is the text shown below the title.
var Lines = []string{
	"Space Wars",
	"Touch anywhere to steer your ship through the level.",
	"The pause button returns to the main menu.",
	"Sound level and difficulty can be changed under options.",
}

const lineHeight = 16

// Screen shows information about the game.
type Screen struct {
	env      *screen.Env
	backdrop *screen.Backdrop
	title    image.Rectangle
	text     image.Point
	back     screen.HotZones
}

var _ screen.Screen = (*Screen)(nil)

// New creates the about screen over the layer of the previous screen.
func New(env *screen.Env, lv *viewport.LayerViewport) (*Screen, error) {
	env.LoadAssets("common")
	env.LoadAssets("about")

	lv, err := env.LayerViewport(lv)
	if err != nil {
		return nil, err
	}

	s := &Screen{env: env}
	s.backdrop = screen.NewBackdrop(env, lv, s)

	l := screen.NewLayout(env.Screen)
	s.title = l.CenteredAt(0.4, 0.2, l.PadY*2)
	s.text = image.Pt(l.PadX*2, s.title.Max.Y+l.PadY*2)
	s.back = screen.HotZones{{Name: ZoneBack, Bounds: l.BottomLeft(0.078, 0.138)}}
	return s, nil
}

// Factory builds about screens for the screen registry.
func Factory(env *screen.Env, lv *viewport.LayerViewport) (screen.Screen, error) {
	return New(env, lv)
}

func (s *Screen) Name() string { return state.ScreenAbout.String() }

func (s *Screen) Update(_ clock.ElapsedTime, touches []input.TouchEvent) error {
	if _, ok := s.back.Hit(touches); ok {
		return s.env.Transition(s, state.ScreenMenu, s.backdrop.Layer())
	}
	s.backdrop.Step()
	return nil
}

func (s *Screen) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	s.backdrop.Draw(t, sink)
	s.env.DrawBitmap(sink, AboutTitle, s.title)
	s.env.DrawBitmap(sink, BackIcon, s.back[0].Bounds)

	for i, line := range Lines {
		sink.DrawText(line, s.text.X, s.text.Y+i*lineHeight, colornames.White)
	}
}

func (s *Screen) OnEnter() {}
func (s *Screen) OnExit()  {}

// Zones returns the touch targets.
func (s *Screen) Zones() screen.HotZones {
	return s.back
}
