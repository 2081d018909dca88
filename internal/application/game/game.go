// Package game provides the main game loop that drives the active screens.
package game

import (
	"fmt"
	"log"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/replay"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/infrastructure/render"
)

// Game implements ebiten.Game. Each Update polls input, ticks the clock
// and runs one update pass over the active screens; each Draw runs one draw
// pass. The game terminates when no screen is left.
type Game struct {
	env      *screen.Env
	clock    *clock.Clock
	source   input.Source
	recorder *replay.Recorder
	replayer *replay.Replayer
	reloads  <-chan struct{}
	debug    bool
}

// Option configures a Game.
type Option func(*Game)

// WithRecorder records every frame's touches.
func WithRecorder(r *replay.Recorder) Option {
	return func(g *Game) { g.recorder = r }
}

// WithReplay feeds the recorded touches of r instead of the given source.
// The game terminates once every recorded frame has been played.
func WithReplay(r *replay.Replayer) Option {
	return func(g *Game) {
		g.source = r
		g.replayer = r
	}
}

// WithDebug draws the TPS and the active screens on top.
func WithDebug(debug bool) Option {
	return func(g *Game) { g.debug = debug }
}

// WithSettingsReloads logs the preferences whenever ch fires.
func WithSettingsReloads(ch <-chan struct{}) Option {
	return func(g *Game) { g.reloads = ch }
}

// New creates a Game showing initial. The initial screen's OnEnter is
// called immediately.
func New(env *screen.Env, source input.Source, initial screen.Screen, opts ...Option) *Game {
	g := &Game{
		env:    env,
		clock:  clock.New(1.0 / 60.0), // Default to 60 FPS
		source: source,
	}
	for _, opt := range opts {
		opt(g)
	}
	env.Screens.Add(initial)
	return g
}

// Update updates the active screens.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	g.pollReloads()

	g.source.Poll()
	touches := g.source.TouchEvents()
	if g.recorder != nil {
		g.recorder.RecordFrame(touches)
	}

	t := g.clock.Tick()
	if err := g.env.Screens.Update(t, touches); err != nil {
		return fmt.Errorf("frame %d: %w", t.Frame, err)
	}

	if g.env.Screens.Len() == 0 {
		return ebiten.Termination
	}
	if g.replayer != nil && g.replayer.Done() {
		log.Printf("game: replay finished after %d of %d frames", g.replayer.CurrentFrame(), g.replayer.TotalFrames())
		return ebiten.Termination
	}
	return nil
}

func (g *Game) pollReloads() {
	if g.reloads == nil {
		return
	}
	select {
	case <-g.reloads:
		if s := g.env.Settings; s != nil {
			log.Printf("game: settings reloaded (sound %d, difficulty %s)", s.Sound(), s.Difficulty())
		}
	default:
	}
}

// Draw renders the active screens back to front.
// Implements ebiten.Game interface.
func (g *Game) Draw(target *ebiten.Image) {
	canvas := render.NewCanvas(target)
	canvas.Fill(colornames.Black)
	g.env.Screens.Draw(g.clock.Elapsed(), canvas)

	if g.debug {
		ebitenutil.DebugPrintAt(target, g.debugText(), 0, 0)
	}
}

func (g *Game) debugText() string {
	return fmt.Sprintf("TPS: %0.1f\nFrame: %d\nScreens: %s",
		ebiten.ActualTPS(), g.clock.Elapsed().Frame, strings.Join(g.env.Screens.Names(), ", "))
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.env.Screen.Width, g.env.Screen.Height
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.clock.SetDT(dt)
}

// Elapsed returns the time of the last update.
func (g *Game) Elapsed() clock.ElapsedTime {
	return g.clock.Elapsed()
}

// Close stops the recorder, exits every remaining screen and releases the
// cached assets.
func (g *Game) Close() {
	if g.recorder != nil && g.recorder.IsRecording() {
		g.recorder.Stop()
	}
	g.env.Screens.Clear()
	g.env.Assets.Close()
}
