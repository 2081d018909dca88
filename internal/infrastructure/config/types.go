package config

import "fmt"

// DisplayConfig is the root config for display.json
type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Debug        bool   `json:"debug"`
}

// Validate checks that the display can back a screen viewport.
func (d *DisplayConfig) Validate() error {
	if d.ScreenWidth <= 0 || d.ScreenHeight <= 0 {
		return fmt.Errorf("display: screen size %dx%d must be positive", d.ScreenWidth, d.ScreenHeight)
	}
	if d.Framerate <= 0 {
		return fmt.Errorf("display: framerate %d must be positive", d.Framerate)
	}
	if d.Scale <= 0 {
		d.Scale = 1
	}
	return nil
}

// AssetEntry names one file of a screen's material list.
type AssetEntry struct {
	Name string `json:"name"`
	Kind string `json:"kind"` // image, music or sound
	Path string `json:"path"`
}

// AssetManifest is the root config for assets.json: asset groups keyed by
// the screen that loads them.
type AssetManifest map[string][]AssetEntry

// Group returns the entries of a group, nil when it does not exist.
func (m AssetManifest) Group(name string) []AssetEntry {
	return m[name]
}

// GameplayConfig is the root config for gameplay.json
type GameplayConfig struct {
	// Level size as a multiple of the layer viewport.
	LevelWidthScale  float64 `json:"levelWidthScale"`
	LevelHeightScale float64 `json:"levelHeightScale"`

	Ship ShipConfig `json:"ship"`

	// Menu background scroll speed in world units per frame.
	DriftSpeed float64 `json:"driftSpeed"`
}

// ShipConfig configures the player ship.
type ShipConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	// Speed in world units per second, indexed by difficulty name.
	Speed map[string]float64 `json:"speed"`
}

// SpeedFor returns the ship speed for a difficulty name, falling back to
// the slowest configured speed.
func (s ShipConfig) SpeedFor(difficulty string) float64 {
	if v, ok := s.Speed[difficulty]; ok {
		return v
	}
	slowest := 0.0
	for _, v := range s.Speed {
		if slowest == 0 || v < slowest {
			slowest = v
		}
	}
	return slowest
}

// GameConfig holds all loaded configurations
type GameConfig struct {
	Display  *DisplayConfig
	Assets   AssetManifest
	Gameplay *GameplayConfig
}
