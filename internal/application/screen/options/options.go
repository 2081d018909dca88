// Package options implements the preferences screen: sound level and
// difficulty.
package options

import (
	"fmt"
	"image"
	"log"

	"golang.org/x/image/colornames"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/settings"
)

// Asset and hot-zone names.
const (
	OptionsTitle   = "OptionsTitle"
	MinusIcon      = "MinusIcon"
	PlusIcon       = "PlusIcon"
	DifficultyIcon = "DifficultyIcon"
	BackIcon       = "BackIcon"

	ZoneBack       = "back"
	ZoneSoundDown  = "sound-"
	ZoneSoundUp    = "sound+"
	ZoneDifficulty = "difficulty"
)

var zoneIcons = map[string]string{
	ZoneBack:       BackIcon,
	ZoneSoundDown:  MinusIcon,
	ZoneSoundUp:    PlusIcon,
	ZoneDifficulty: DifficultyIcon,
}

// Screen shows and edits the preferences.
type Screen struct {
	env      *screen.Env
	backdrop *screen.Backdrop
	title    image.Rectangle
	zones    screen.HotZones

	soundLabel      image.Point
	difficultyLabel image.Point
}

var _ screen.Screen = (*Screen)(nil)

// New creates the options screen over the layer of the previous screen.
func New(env *screen.Env, lv *viewport.LayerViewport) (*Screen, error) {
	env.LoadAssets("common")
	env.LoadAssets("options")

	lv, err := env.LayerViewport(lv)
	if err != nil {
		return nil, err
	}

	s := &Screen{env: env}
	s.backdrop = screen.NewBackdrop(env, lv, s)

	l := screen.NewLayout(env.Screen)
	s.title = l.CenteredAt(0.4, 0.2, l.PadY*2)

	bw, bh := l.Size(0.078, 0.138)
	rowTop := int(float64(l.Height) * 0.35)
	minus := image.Rect(l.Width/4, rowTop, l.Width/4+bw, rowTop+bh)
	plus := image.Rect(l.Width*3/4-bw, rowTop, l.Width*3/4, rowTop+bh)
	difficulty := l.CenteredAt(0.208, 0.138, int(float64(l.Height)*0.6))

	s.zones = screen.HotZones{
		{Name: ZoneBack, Bounds: l.BottomLeft(0.078, 0.138)},
		{Name: ZoneSoundDown, Bounds: minus},
		{Name: ZoneSoundUp, Bounds: plus},
		{Name: ZoneDifficulty, Bounds: difficulty},
	}
	s.soundLabel = image.Pt(minus.Max.X+l.PadX, rowTop+bh/2)
	s.difficultyLabel = image.Pt(difficulty.Min.X, difficulty.Max.Y+l.PadY)
	return s, nil
}

// Factory builds options screens for the screen registry.
func Factory(env *screen.Env, lv *viewport.LayerViewport) (screen.Screen, error) {
	return New(env, lv)
}

func (s *Screen) Name() string { return state.ScreenOptions.String() }

// Update applies button presses to the settings store.
func (s *Screen) Update(_ clock.ElapsedTime, touches []input.TouchEvent) error {
	if zone, ok := s.zones.Hit(touches); ok {
		switch zone.Name {
		case ZoneBack:
			return s.env.Transition(s, state.ScreenMenu, s.backdrop.Layer())
		case ZoneSoundDown:
			s.setSound(s.env.Settings.Sound() - 1)
		case ZoneSoundUp:
			s.setSound(s.env.Settings.Sound() + 1)
		case ZoneDifficulty:
			next := s.env.Settings.Difficulty().Next()
			if err := s.env.Settings.SetDifficulty(next); err != nil {
				log.Printf("options: cannot save difficulty: %v", err)
			}
			s.env.PlaySound(screen.ClickSound)
		}
	}

	s.backdrop.Step()
	return nil
}

func (s *Screen) setSound(level int) {
	if err := s.env.Settings.SetSound(settings.ClampSound(level)); err != nil {
		log.Printf("options: cannot save sound level: %v", err)
	}
	// Played after the change so the new level is audible.
	s.env.PlaySound(screen.ClickSound)
}

// Draw draws the background, the buttons and the current values.
func (s *Screen) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	s.backdrop.Draw(t, sink)

	s.env.DrawBitmap(sink, OptionsTitle, s.title)
	for _, zone := range s.zones {
		s.env.DrawBitmap(sink, zoneIcons[zone.Name], zone.Bounds)
	}

	sink.DrawText(fmt.Sprintf("Sound: %d", s.env.Settings.Sound()), s.soundLabel.X, s.soundLabel.Y, colornames.White)
	sink.DrawText(fmt.Sprintf("Difficulty: %s", s.env.Settings.Difficulty()), s.difficultyLabel.X, s.difficultyLabel.Y, colornames.White)
}

func (s *Screen) OnEnter() {}
func (s *Screen) OnExit()  {}

// Zones returns the touch targets.
func (s *Screen) Zones() screen.HotZones {
	return s.zones
}

// Layer returns the layer viewport.
func (s *Screen) Layer() *viewport.LayerViewport {
	return s.backdrop.Layer()
}
