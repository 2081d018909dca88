package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/spacewars/internal/application/game"
	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/replay"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/screen/about"
	"github.com/younwookim/spacewars/internal/application/screen/gameplay"
	"github.com/younwookim/spacewars/internal/application/screen/menu"
	"github.com/younwookim/spacewars/internal/application/screen/options"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/asset"
	"github.com/younwookim/spacewars/internal/infrastructure/config"
	"github.com/younwookim/spacewars/internal/infrastructure/settings"
)

//go:embed configs
var configFS embed.FS

type cliFlags struct {
	assets   string
	settings string
	record   string
	replay   string
	start    string
	watch    bool
	debug    bool
}

func main() {
	// Parse command line flags
	var opts cliFlags
	flag.StringVar(&opts.assets, "assets", "assets", "Directory holding img/ and sfx/")
	flag.StringVar(&opts.settings, "settings", "settings.yaml", "Preferences file")
	flag.StringVar(&opts.record, "record", "", "Record touches to file (e.g., -record replay.json, or -record auto)")
	flag.StringVar(&opts.replay, "replay", "", "Replay touches from file instead of reading input")
	flag.StringVar(&opts.start, "start", state.ScreenMenu.String(), "Screen to start on")
	flag.BoolVar(&opts.watch, "watch", false, "Reload the preferences file when it changes")
	flag.BoolVar(&opts.debug, "debug", false, "Show the debug overlay")
	flag.Parse()

	if err := run(opts); err != nil {
		log.Fatalf("spacewars: %v", err)
	}
}

// loadConfig loads the configurations embedded in the binary.
func loadConfig() (*config.GameConfig, error) {
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	cfg, err := config.NewFSLoader(fsys, "configs").LoadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// newRegistry registers every screen the game can show.
func newRegistry() screen.Registry {
	r := screen.Registry{}
	r.Register(state.ScreenMenu, menu.Factory)
	r.Register(state.ScreenOptions, options.Factory)
	r.Register(state.ScreenAbout, about.Factory)
	r.Register(state.ScreenGameplay, gameplay.Factory)
	return r
}

// recordPath resolves the -record flag. "auto" picks a timestamped name.
func recordPath(flagValue string) string {
	if flagValue == "auto" {
		return replay.GenerateFilename()
	}
	return flagValue
}

func run(opts cliFlags) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	display := cfg.Display
	if opts.debug {
		display.Debug = true
	}

	sv, err := viewport.NewScreenViewport(0, 0, display.ScreenWidth, display.ScreenHeight)
	if err != nil {
		return err
	}

	prefs, err := settings.Open(opts.settings)
	if err != nil {
		return fmt.Errorf("failed to open settings: %w", err)
	}
	var reloads <-chan struct{}
	if opts.watch {
		w, err := settings.Watch(prefs)
		if err != nil {
			return fmt.Errorf("failed to watch settings: %w", err)
		}
		defer func() { _ = w.Close() }()
		reloads = w.Reloads
	}

	mixer := asset.NewEbitenMixer(asset.DefaultSampleRate)
	env := &screen.Env{
		Assets:   asset.NewStore(asset.NewLoader(opts.assets, mixer)),
		Screens:  screen.NewManager(),
		Settings: prefs,
		Screen:   sv,
		Registry: newRegistry(),
		Manifest: cfg.Assets,
		Gameplay: cfg.Gameplay,
	}

	start, err := state.ParseScreenID(opts.start)
	if err != nil {
		return err
	}

	gameOpts := []game.Option{
		game.WithDebug(display.Debug),
		game.WithSettingsReloads(reloads),
	}

	if opts.replay != "" {
		data, err := replay.LoadReplay(opts.replay)
		if err != nil {
			return err
		}
		rp := replay.NewReplayer(*data)
		if start, err = state.ParseScreenID(rp.Screen()); err != nil {
			return fmt.Errorf("replay %s: %w", opts.replay, err)
		}
		gameOpts = append(gameOpts, game.WithReplay(rp))
		log.Printf("Replaying %s (%d frames)", opts.replay, rp.TotalFrames())
	}

	var recorder *replay.Recorder
	recordFile := recordPath(opts.record)
	if recordFile != "" {
		recorder = replay.NewRecorder(start.String(), sv.Width, sv.Height)
		gameOpts = append(gameOpts, game.WithRecorder(recorder))
		log.Printf("Recording enabled: %s", recordFile)
	}

	initial, err := env.Build(start, nil)
	if err != nil {
		return err
	}

	// Create game
	g := game.New(env, input.NewEbitenSource(true), initial, gameOpts...)
	defer g.Close()
	g.SetDT(1.0 / float64(display.Framerate))

	// Set up ebiten
	ebiten.SetWindowSize(display.ScreenWidth*display.Scale, display.ScreenHeight*display.Scale)
	ebiten.SetWindowTitle(display.Title)
	ebiten.SetTPS(display.Framerate)

	// Run game
	runErr := ebiten.RunGame(g)

	if recorder != nil {
		recorder.Stop()
		if err := recorder.Save(recordFile); err != nil {
			log.Printf("Failed to save recording: %v", err)
		} else {
			log.Printf("Recording saved: %s (%d frames)", recordFile, recorder.FrameCount())
		}
	}
	return runErr
}
