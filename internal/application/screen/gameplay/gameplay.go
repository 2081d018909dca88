// Package gameplay implements the level: a player ship steered by touch
// across a space background larger than the display, with a camera that
// follows the ship.
package gameplay

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/entity"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/asset"
	"github.com/younwookim/spacewars/internal/infrastructure/config"
)

// Asset and hot-zone names.
const (
	PlayerShip = "PlayerShip"
	PauseIcon  = "PauseIcon"
	GameTheme  = "GameTheme"

	ZonePause = "pause"
)

// Screen is the playable level.
type Screen struct {
	env   *screen.Env
	lv    *viewport.LayerViewport
	level viewport.Rect

	background *entity.GameObject // nil when the bitmap is missing
	ship       *entity.GameObject
	speed      float64 // world units per second

	targetX, targetY float64
	steering         bool

	zones screen.HotZones
	theme *asset.Playback
}

var _ screen.Screen = (*Screen)(nil)

// New creates the level. The ship starts in the middle with the camera
// centred on it.
func New(env *screen.Env, lv *viewport.LayerViewport) (*Screen, error) {
	env.LoadAssets("common")
	env.LoadAssets("gameplay")

	lv, err := env.LayerViewport(lv)
	if err != nil {
		return nil, err
	}

	cfg := env.Gameplay
	if cfg == nil {
		cfg = &config.GameplayConfig{}
	}
	wScale, hScale := max(cfg.LevelWidthScale, 1), max(cfg.LevelHeightScale, 1)
	level := viewport.Rect{
		X:      lv.Width * wScale / 2,
		Y:      lv.Height * hScale / 2,
		Width:  lv.Width * wScale,
		Height: lv.Height * hScale,
	}

	s := &Screen{env: env, lv: lv, level: level}

	if img, ok := env.Assets.Bitmap(screen.BackgroundImage); ok {
		s.background = entity.NewGameObject(level.X, level.Y, level.Width, level.Height, img, s)
	}

	shipW, shipH := cfg.Ship.Width, cfg.Ship.Height
	if shipW <= 0 || shipH <= 0 {
		shipW, shipH = 20, 20
	}
	img, ok := env.Assets.Bitmap(PlayerShip)
	if !ok {
		img = placeholder()
	}
	s.ship = entity.NewGameObject(level.X, level.Y, shipW, shipH, img, s)

	s.speed = cfg.Ship.SpeedFor(env.Settings.Difficulty().String())
	if s.speed <= 0 {
		s.speed = 90
	}

	l := screen.NewLayout(env.Screen)
	s.zones = screen.HotZones{{Name: ZonePause, Bounds: l.TopRight(0.078, 0.138)}}

	s.follow()
	return s, nil
}

func placeholder() *ebiten.Image {
	img := ebiten.NewImage(1, 1)
	img.Fill(colornames.Lime)
	return img
}

// Factory builds levels for the screen registry.
func Factory(env *screen.Env, lv *viewport.LayerViewport) (screen.Screen, error) {
	return New(env, lv)
}

func (s *Screen) Name() string { return state.ScreenGameplay.String() }

// Update steers the ship towards the last touch and moves the camera.
func (s *Screen) Update(t clock.ElapsedTime, touches []input.TouchEvent) error {
	if _, ok := s.zones.Hit(touches); ok {
		return s.env.Transition(s, state.ScreenMenu, nil)
	}

	for _, e := range touches {
		switch e.Type {
		case input.TouchDown, input.TouchMove:
			s.targetX, s.targetY = viewport.ToLayer(s.lv, s.env.Screen, e.X, e.Y)
			s.steering = true
		case input.TouchUp:
			s.steering = false
		}
	}

	if s.steering {
		s.moveShip(t.Step)
	}
	s.follow()
	return nil
}

func (s *Screen) moveShip(dt float64) {
	dx, dy := s.targetX-s.ship.X, s.targetY-s.ship.Y
	dist := math.Hypot(dx, dy)
	if dist == 0 {
		return
	}
	step := math.Min(dist, s.speed*dt)
	x := s.ship.X + dx/dist*step
	y := s.ship.Y + dy/dist*step

	// Keep the whole ship inside the level.
	hw, hh := s.ship.Width/2, s.ship.Height/2
	x = clamp(x, s.level.Left()+hw, s.level.Right()-hw)
	y = clamp(y, s.level.Top()+hh, s.level.Bottom()-hh)
	s.ship.SetPosition(x, y)
}

// follow centres the camera on the ship without showing anything outside
// the level.
func (s *Screen) follow() {
	s.lv.X = clamp(s.ship.X, s.level.Left()+s.lv.Width/2, s.level.Right()-s.lv.Width/2)
	s.lv.Y = clamp(s.ship.Y, s.level.Top()+s.lv.Height/2, s.level.Bottom()-s.lv.Height/2)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return (lo + hi) / 2
	}
	return min(max(v, lo), hi)
}

// Draw draws the level, the ship and the HUD.
func (s *Screen) Draw(t clock.ElapsedTime, sink graphics.Sink) {
	if s.background != nil {
		s.background.Draw(t, sink, s.lv, s.env.Screen)
	}
	s.ship.Draw(t, sink, s.lv, s.env.Screen)

	s.env.DrawBitmap(sink, PauseIcon, s.zones[0].Bounds)
	l := screen.NewLayout(s.env.Screen)
	sink.DrawText(fmt.Sprintf("Difficulty: %s", s.env.Settings.Difficulty()), l.PadX, l.PadY, colornames.White)
}

// OnEnter starts the level music.
func (s *Screen) OnEnter() {
	music, ok := s.env.Assets.Music(GameTheme)
	if !ok {
		return
	}
	s.theme = music.NewPlayback()
	s.theme.SetVolume(s.env.Volume())
	s.theme.SetLooping(true)
	s.theme.Play()
}

// OnExit releases the level music.
func (s *Screen) OnExit() {
	if s.theme != nil {
		s.theme.Dispose()
	}
}

// Ship returns the player ship.
func (s *Screen) Ship() *entity.GameObject {
	return s.ship
}

// Level returns the world bounds of the level.
func (s *Screen) Level() viewport.Rect {
	return s.level
}

// Layer returns the camera.
func (s *Screen) Layer() *viewport.LayerViewport {
	return s.lv
}

// Speed returns the ship speed in world units per second.
func (s *Screen) Speed() float64 {
	return s.speed
}

// Theme returns the playback started by OnEnter, nil before it.
func (s *Screen) Theme() *asset.Playback {
	return s.theme
}

// Zones returns the touch targets.
func (s *Screen) Zones() screen.HotZones {
	return s.zones
}
