// Package menu implements the main menu: title, play button, and links to
// the options and about screens over a drifting space background.
package menu

import (
	"image"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/asset"
)

// Asset and hot-zone names.
const (
	TitleImage   = "TitleImage"
	PlayIcon     = "PlayIcon"
	SettingsIcon = "SettingsIcon"
	AboutIcon    = "AboutIcon"
	MainTheme    = "MainTheme"

	ZonePlay     = "play"
	ZoneSettings = "settings"
	ZoneAbout    = "about"
)

var zoneIcons = map[string]string{
	ZonePlay:     PlayIcon,
	ZoneSettings: SettingsIcon,
	ZoneAbout:    AboutIcon,
}

// themeVolume scales the preferred volume for the menu music.
const themeVolume = 0.75

// Screen is the main menu.
type Screen struct {
	env      *screen.Env
	backdrop *screen.Backdrop
	title    image.Rectangle
	zones    screen.HotZones
	theme    *asset.Playback
}

var _ screen.Screen = (*Screen)(nil)

// New creates the menu. lv keeps the background position of the previous
// screen; nil starts a fresh layer.
func New(env *screen.Env, lv *viewport.LayerViewport) (*Screen, error) {
	env.LoadAssets("common")
	env.LoadAssets("menu")

	lv, err := env.LayerViewport(lv)
	if err != nil {
		return nil, err
	}

	s := &Screen{env: env}
	s.backdrop = screen.NewBackdrop(env, lv, s)

	l := screen.NewLayout(env.Screen)
	s.title = l.CenteredAt(0.583, 0.373, l.PadY*2)
	s.zones = screen.HotZones{
		{Name: ZonePlay, Bounds: l.CenteredAt(0.208, 0.373, l.Height/2+l.PadY)},
		{Name: ZoneSettings, Bounds: l.BottomLeft(0.078, 0.138)},
		{Name: ZoneAbout, Bounds: l.BottomRight(0.078, 0.138)},
	}
	return s, nil
}

// Factory builds menus for the screen registry.
func Factory(env *screen.Env, lv *viewport.LayerViewport) (screen.Screen, error) {
	return New(env, lv)
}

func (s *Screen) Name() string { return state.ScreenMenu.String() }

// Update handles the buttons and drifts the background.
func (s *Screen) Update(_ clock.ElapsedTime, touches []input.TouchEvent) error {
	if zone, ok := s.zones.Hit(touches); ok {
		switch zone.Name {
		case ZonePlay:
			return s.env.Transition(s, state.ScreenGameplay, nil)
		case ZoneSettings:
			return s.env.Transition(s, state.ScreenOptions, s.backdrop.Layer())
		case ZoneAbout:
			return s.env.Transition(s, state.ScreenAbout, s.backdrop.Layer())
		}
	}

	s.backdrop.Step()
	return nil
}

// Draw draws the background, then the static icons on top.
func (s *Screen) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	s.backdrop.Draw(t, sink)

	s.env.DrawBitmap(sink, TitleImage, s.title)
	for _, zone := range s.zones {
		s.env.DrawBitmap(sink, zoneIcons[zone.Name], zone.Bounds)
	}
}

// OnEnter starts the looping theme.
func (s *Screen) OnEnter() {
	music, ok := s.env.Assets.Music(MainTheme)
	if !ok {
		return
	}
	s.theme = music.NewPlayback()
	s.theme.SetVolume(s.env.Volume() * themeVolume)
	s.theme.SetLooping(true)
	s.theme.Play()
}

// OnExit releases the theme.
func (s *Screen) OnExit() {
	if s.theme != nil {
		s.theme.Dispose()
	}
}

// Theme returns the playback started by OnEnter, nil before it.
func (s *Screen) Theme() *asset.Playback {
	return s.theme
}

// Zones returns the touch targets.
func (s *Screen) Zones() screen.HotZones {
	return s.zones
}

// Layer returns the layer viewport.
func (s *Screen) Layer() *viewport.LayerViewport {
	return s.backdrop.Layer()
}
