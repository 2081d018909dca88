package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"sync"

	"gopkg.in/yaml.v3"
)

// FileStore persists preferences to a YAML file. Every setter writes the
// file, so values survive across sessions.
type FileStore struct {
	path string

	mu sync.RWMutex
	v  values
}

// Open loads the store at path. A missing file yields the defaults; the file
// is created on the first write.
func Open(path string) (*FileStore, error) {
	s := &FileStore{path: path, v: defaults()}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the backing file.
func (s *FileStore) Path() string {
	return s.path
}

// fileValues mirrors values, keeping the difficulty undecoded so that an
// unknown level falls back to the default instead of failing the load.
type fileValues struct {
	Sound      int       `yaml:"sound"`
	Difficulty yaml.Node `yaml:"difficulty"`
}

// Reload re-reads the file, keeping the current values when it is missing.
func (s *FileStore) Reload() error {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read settings %s: %w", s.path, err)
	}

	v := defaults()
	raw := fileValues{Sound: v.Sound}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("failed to parse settings %s: %w", s.path, err)
	}
	v.Sound = ClampSound(raw.Sound)
	if raw.Difficulty.Kind != 0 {
		if err := raw.Difficulty.Decode(&v.Difficulty); err != nil {
			log.Printf("settings: %s: %v, using %s", s.path, err, DefaultDifficulty)
			v.Difficulty = DefaultDifficulty
		}
	}

	s.mu.Lock()
	s.v = v
	s.mu.Unlock()
	return nil
}

func (s *FileStore) Sound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Sound
}

func (s *FileStore) SetSound(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.v
	next.Sound = ClampSound(level)
	return s.save(next)
}

func (s *FileStore) Difficulty() Difficulty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Difficulty
}

func (s *FileStore) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	next := s.v
	next.Difficulty = d
	return s.save(next)
}

// save writes v through a temp file and rename, then adopts it. Callers hold
// the write lock.
func (s *FileStore) save(v values) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create settings dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".settings-*.yaml")
	if err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to write settings: %w", err)
	}

	s.v = v
	return nil
}
