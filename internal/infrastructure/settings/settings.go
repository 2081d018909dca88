// Package settings persists the player's preferences: sound level and
// difficulty.
package settings

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// Sound level bounds.
const (
	MinSound     = 0
	MaxSound     = 10
	DefaultSound = MaxSound
)

// ErrInvalidDifficulty is returned for values outside the Difficulty enum.
var ErrInvalidDifficulty = errors.New("settings: invalid difficulty")

// Difficulty is the enumerated game difficulty.
type Difficulty int

const (
	Easy Difficulty = iota + 1
	Normal
	Hard
)

// DefaultDifficulty is used until the player picks one.
const DefaultDifficulty = Normal

// String returns the string representation of the difficulty
func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "Easy"
	case Normal:
		return "Normal"
	case Hard:
		return "Hard"
	default:
		return "Unknown"
	}
}

// Valid reports whether d is one of the defined levels.
func (d Difficulty) Valid() bool {
	return d >= Easy && d <= Hard
}

// Next cycles Easy -> Normal -> Hard -> Easy.
func (d Difficulty) Next() Difficulty {
	if !d.Valid() || d == Hard {
		return Easy
	}
	return d + 1
}

// ParseDifficulty accepts a level name (case-insensitive).
func ParseDifficulty(s string) (Difficulty, error) {
	for d := Easy; d <= Hard; d++ {
		if strings.EqualFold(s, d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDifficulty, s)
}

// MarshalYAML writes the level by name.
func (d Difficulty) MarshalYAML() (any, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	return strings.ToLower(d.String()), nil
}

// UnmarshalYAML reads either a level name or its number.
func (d *Difficulty) UnmarshalYAML(value *yaml.Node) error {
	var n int
	if err := value.Decode(&n); err == nil {
		if !Difficulty(n).Valid() {
			return fmt.Errorf("%w: %d", ErrInvalidDifficulty, n)
		}
		*d = Difficulty(n)
		return nil
	}

	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseDifficulty(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Store reads and writes preferences.
type Store interface {
	Sound() int
	SetSound(level int) error
	Difficulty() Difficulty
	SetDifficulty(d Difficulty) error
}

// Volume maps the sound level of s onto [0, 1].
func Volume(s Store) float64 {
	return float64(s.Sound()) / MaxSound
}

// ClampSound limits level to [MinSound, MaxSound].
func ClampSound(level int) int {
	return min(max(level, MinSound), MaxSound)
}

type values struct {
	Sound      int        `yaml:"sound"`
	Difficulty Difficulty `yaml:"difficulty"`
}

func defaults() values {
	return values{Sound: DefaultSound, Difficulty: DefaultDifficulty}
}

// MemoryStore keeps preferences in memory only.
type MemoryStore struct {
	mu sync.RWMutex
	v  values
}

// NewMemoryStore creates a store holding the defaults.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{v: defaults()}
}

func (s *MemoryStore) Sound() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Sound
}

func (s *MemoryStore) SetSound(level int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Sound = ClampSound(level)
	return nil
}

func (s *MemoryStore) Difficulty() Difficulty {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.v.Difficulty
}

func (s *MemoryStore) SetDifficulty(d Difficulty) error {
	if !d.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidDifficulty, int(d))
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.v.Difficulty = d
	return nil
}
