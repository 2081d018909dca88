// Package screentest provides test doubles for building screens without a
// window, audio device or asset directory.
package screentest

import (
	"errors"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/asset"
	"github.com/younwookim/spacewars/internal/infrastructure/config"
	"github.com/younwookim/spacewars/internal/infrastructure/settings"
)

// Player is a silent asset.Player.
type Player struct {
	Playing bool
	Vol     float64
	Loop    bool
	Closed  bool
	Plays   int
}

func (p *Player) Play() {
	if p.Closed {
		return
	}
	p.Playing = true
	p.Plays++
}
func (p *Player) Pause()              { p.Playing = false }
func (p *Player) IsPlaying() bool     { return p.Playing }
func (p *Player) Rewind() error       { return nil }
func (p *Player) SetVolume(v float64) { p.Vol = v }
func (p *Player) Close() error {
	p.Closed = true
	p.Playing = false
	return nil
}

// Mixer records every player it creates.
type Mixer struct {
	Players []*Player
}

func (m *Mixer) SampleRate() int { return asset.DefaultSampleRate }

func (m *Mixer) NewPlayer(_ []byte, loop bool) (asset.Player, error) {
	p := &Player{Loop: loop}
	m.Players = append(m.Players, p)
	return p, nil
}

// Looping returns the players created for looping music.
func (m *Mixer) Looping() []*Player {
	var out []*Player
	for _, p := range m.Players {
		if p.Loop {
			out = append(out, p)
		}
	}
	return out
}

// OneShots returns the players created for sound effects.
func (m *Mixer) OneShots() []*Player {
	var out []*Player
	for _, p := range m.Players {
		if !p.Loop {
			out = append(out, p)
		}
	}
	return out
}

// ErrMissing is returned for paths marked missing.
var ErrMissing = errors.New("file does not exist")

// Loader serves blank assets for every path, except those marked missing.
type Loader struct {
	Mixer   *Mixer
	Missing map[string]bool
	Calls   map[string]int
}

// NewLoader creates a loader. The listed paths fail to load.
func NewLoader(missing ...string) *Loader {
	l := &Loader{
		Mixer:   &Mixer{},
		Missing: make(map[string]bool),
		Calls:   make(map[string]int),
	}
	for _, p := range missing {
		l.Missing[p] = true
	}
	return l
}

func (l *Loader) LoadBitmap(path string) (*ebiten.Image, error) {
	l.Calls[path]++
	if l.Missing[path] {
		return nil, ErrMissing
	}
	return ebiten.NewImage(16, 16), nil
}

func (l *Loader) LoadMusic(path string) (*asset.Music, error) {
	l.Calls[path]++
	if l.Missing[path] {
		return nil, ErrMissing
	}
	return asset.NewMusic(make([]byte, 16), l.Mixer), nil
}

func (l *Loader) LoadSound(path string) (*asset.Sound, error) {
	l.Calls[path]++
	if l.Missing[path] {
		return nil, ErrMissing
	}
	return asset.NewSound(make([]byte, 16), l.Mixer), nil
}

// DrawCall is one recorded bitmap draw.
type DrawCall struct {
	Img *ebiten.Image
	Src *image.Rectangle
	Dst image.Rectangle
}

// Sink records draw commands.
type Sink struct {
	W, H    int
	Bitmaps []DrawCall
	Texts   []string
}

func (s *Sink) DrawBitmap(img *ebiten.Image, src *image.Rectangle, dst image.Rectangle, _ *graphics.Paint) {
	s.Bitmaps = append(s.Bitmaps, DrawCall{Img: img, Src: src, Dst: dst})
}

func (s *Sink) DrawText(str string, _, _ int, _ color.Color) {
	s.Texts = append(s.Texts, str)
}

func (s *Sink) Size() (int, int) { return s.W, s.H }

// Manifest mirrors the shipped asset groups.
func Manifest() config.AssetManifest {
	return config.AssetManifest{
		"common": {
			{Name: "SpaceBackground", Kind: "image", Path: "img/backgrounds/bgSpace.png"},
			{Name: "BackIcon", Kind: "image", Path: "img/buttons/btnBack.png"},
			{Name: "ButtonClick", Kind: "sound", Path: "sfx/sfx_buttonclick.wav"},
		},
		"menu": {
			{Name: "PlayIcon", Kind: "image", Path: "img/buttons/btnPlay.png"},
			{Name: "SettingsIcon", Kind: "image", Path: "img/buttons/btnSettings.png"},
			{Name: "TitleImage", Kind: "image", Path: "img/titles/ttlLogo.png"},
			{Name: "AboutIcon", Kind: "image", Path: "img/buttons/btnAbout.png"},
			{Name: "MainTheme", Kind: "music", Path: "sfx/sfx_maintheme.ogg"},
		},
		"options": {
			{Name: "OptionsTitle", Kind: "image", Path: "img/titles/ttlOptions.png"},
			{Name: "MinusIcon", Kind: "image", Path: "img/buttons/btnMinus.png"},
			{Name: "PlusIcon", Kind: "image", Path: "img/buttons/btnPlus.png"},
			{Name: "DifficultyIcon", Kind: "image", Path: "img/buttons/btnDifficulty.png"},
		},
		"about": {
			{Name: "AboutTitle", Kind: "image", Path: "img/titles/ttlAbout.png"},
		},
		"gameplay": {
			{Name: "PlayerShip", Kind: "image", Path: "img/sprites/sprPlayer.png"},
			{Name: "PauseIcon", Kind: "image", Path: "img/buttons/btnPause.png"},
			{Name: "GameTheme", Kind: "music", Path: "sfx/sfx_gametheme.ogg"},
		},
	}
}

// Gameplay returns a small gameplay configuration.
func Gameplay() *config.GameplayConfig {
	return &config.GameplayConfig{
		LevelWidthScale:  4,
		LevelHeightScale: 3,
		DriftSpeed:       1,
		Ship: config.ShipConfig{
			Width:  20,
			Height: 20,
			Speed:  map[string]float64{"Easy": 60, "Normal": 90, "Hard": 130},
		},
	}
}

// NewEnv creates an env for a 320x240 display backed by loader and an
// in-memory settings store.
func NewEnv(loader *Loader) *screen.Env {
	return &screen.Env{
		Assets:   asset.NewStore(loader),
		Screens:  screen.NewManager(),
		Settings: settings.NewMemoryStore(),
		Screen:   viewport.ScreenViewport{Width: 320, Height: 240},
		Registry: screen.Registry{},
		Manifest: Manifest(),
		Gameplay: Gameplay(),
	}
}

// Stub is a minimal screen used as a transition target.
type Stub struct {
	ID      string
	LV      *viewport.LayerViewport
	Entered int
	Exited  int
	Updates int
	Touches [][]input.TouchEvent
}

func (s *Stub) Name() string { return s.ID }

func (s *Stub) Update(_ clock.ElapsedTime, touches []input.TouchEvent) error {
	s.Updates++
	s.Touches = append(s.Touches, touches)
	return nil
}

func (s *Stub) Draw(clock.ElapsedTime, graphics.Sink) {}
func (s *Stub) OnEnter()                             { s.Entered++ }
func (s *Stub) OnExit()                              { s.Exited++ }

// StubFactory returns a factory that builds a Stub named name and stores it
// in *out.
func StubFactory(name string, out **Stub) screen.Factory {
	return func(_ *screen.Env, lv *viewport.LayerViewport) (screen.Screen, error) {
		s := &Stub{ID: name, LV: lv}
		if out != nil {
			*out = s
		}
		return s, nil
	}
}
