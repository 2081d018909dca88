package screen

import (
	"errors"
	"fmt"
	"image"
	"log"

	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/graphics"
	"github.com/younwookim/spacewars/internal/domain/viewport"
	"github.com/younwookim/spacewars/internal/infrastructure/asset"
	"github.com/younwookim/spacewars/internal/infrastructure/config"
	"github.com/younwookim/spacewars/internal/infrastructure/settings"
)

// ErrScreenActive is returned when a screen with the same name is already
// active.
var ErrScreenActive = errors.New("screen already active")

// ClickSound is the sound played on every screen transition.
const ClickSound = "ButtonClick"

// Factory builds a screen. lv carries the camera over from the previous
// screen; nil asks for a fresh viewport fitted to the display.
type Factory func(env *Env, lv *viewport.LayerViewport) (Screen, error)

// Registry maps screen ids to their factories.
type Registry map[state.ScreenID]Factory

// Register adds or replaces the factory for id.
func (r Registry) Register(id state.ScreenID, f Factory) {
	r[id] = f
}

// Env is the session shared by every screen: the caches, the active screen
// set, the preferences and the display.
type Env struct {
	Assets   *asset.Store
	Screens  *Manager
	Settings settings.Store
	Screen   viewport.ScreenViewport
	Registry Registry
	Manifest config.AssetManifest
	Gameplay *config.GameplayConfig
}

// Build constructs the screen registered for id.
func (e *Env) Build(id state.ScreenID, lv *viewport.LayerViewport) (Screen, error) {
	f, ok := e.Registry[id]
	if !ok {
		return nil, fmt.Errorf("no screen registered for %s", id)
	}
	s, err := f(e, lv)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s screen: %w", id, err)
	}
	return s, nil
}

// Open builds the screen for id and activates it.
func (e *Env) Open(id state.ScreenID, lv *viewport.LayerViewport) error {
	s, err := e.Build(id, lv)
	if err != nil {
		return err
	}
	if !e.Screens.Add(s) {
		return fmt.Errorf("%w: %s", ErrScreenActive, s.Name())
	}
	return nil
}

// Transition replaces from with the screen registered for to: the click
// sound plays, from is removed, and the destination is built and added.
// All of it is queued when called from inside an update pass.
func (e *Env) Transition(from Screen, to state.ScreenID, lv *viewport.LayerViewport) error {
	e.PlaySound(ClickSound)
	e.Screens.Remove(from.Name())
	return e.Open(to, lv)
}

// LoadAssets loads every entry of a manifest group and returns the names
// that could not be loaded. Entries already cached are not reloaded.
func (e *Env) LoadAssets(group string) []string {
	var failed []string
	for _, entry := range e.Manifest.Group(group) {
		kind, err := asset.ParseKind(entry.Kind)
		if err != nil {
			log.Printf("screen: asset %s in group %s: %v", entry.Name, group, err)
			failed = append(failed, entry.Name)
			continue
		}
		if e.Assets.Has(kind, entry.Name) {
			continue
		}
		if !e.Assets.LoadAndAdd(kind, entry.Name, entry.Path) {
			failed = append(failed, entry.Name)
		}
	}
	return failed
}

// Volume returns the preferred volume in [0, 1].
func (e *Env) Volume() float64 {
	if e.Settings == nil {
		return 1
	}
	return settings.Volume(e.Settings)
}

// PlaySound plays a cached sound at the preferred volume. A missing sound
// is skipped.
func (e *Env) PlaySound(name string) {
	if snd, ok := e.Assets.Sound(name); ok {
		snd.Play(e.Volume())
	}
}

// LayerViewport returns lv, or a viewport fitted to the display when lv is
// nil.
func (e *Env) LayerViewport(lv *viewport.LayerViewport) (*viewport.LayerViewport, error) {
	if lv != nil {
		return lv, nil
	}
	return viewport.FitLayerViewport(e.Screen)
}

// DrawBitmap draws a cached bitmap stretched over dst. A missing bitmap is
// skipped.
func (e *Env) DrawBitmap(sink graphics.Sink, name string, dst image.Rectangle) {
	if img, ok := e.Assets.Bitmap(name); ok {
		sink.DrawBitmap(img, nil, dst, nil)
	}
}
