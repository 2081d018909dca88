package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

func (l *Loader) readJSON(name string, v any) error {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", name, err)
	}
	return nil
}

// LoadDisplay loads display.json
func (l *Loader) LoadDisplay() (*DisplayConfig, error) {
	var cfg DisplayConfig
	if err := l.readJSON("display.json", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAssets loads assets.json
func (l *Loader) LoadAssets() (AssetManifest, error) {
	var m AssetManifest
	if err := l.readJSON("assets.json", &m); err != nil {
		return nil, err
	}
	for group, entries := range m {
		for i, e := range entries {
			if e.Name == "" || e.Path == "" {
				return nil, fmt.Errorf("assets.json: %s[%d]: name and path are required", group, i)
			}
		}
	}
	return m, nil
}

// LoadGameplay loads gameplay.json
func (l *Loader) LoadGameplay() (*GameplayConfig, error) {
	var cfg GameplayConfig
	if err := l.readJSON("gameplay.json", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadAll loads all base configurations (display, assets, gameplay)
func (l *Loader) LoadAll() (*GameConfig, error) {
	display, err := l.LoadDisplay()
	if err != nil {
		return nil, err
	}

	assets, err := l.LoadAssets()
	if err != nil {
		return nil, err
	}

	gameplay, err := l.LoadGameplay()
	if err != nil {
		return nil, err
	}

	return &GameConfig{
		Display:  display,
		Assets:   assets,
		Gameplay: gameplay,
	}, nil
}
