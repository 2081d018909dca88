// Package asset caches decoded media by logical name.
//
// Loading is fallible and touches the file system; lookups are infallible
// and only touch memory. Screens load their material list while they are
// being built and then fetch assets every frame.
package asset

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Kind identifies one of the three asset namespaces. Names only need to be
// unique within a kind.
type Kind int

const (
	KindImage Kind = iota
	KindMusic
	KindSound
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindImage:
		return "image"
	case KindMusic:
		return "music"
	case KindSound:
		return "sound"
	default:
		return "unknown"
	}
}

// ParseKind converts a manifest kind name into a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindImage; k <= KindSound; k++ {
		if s == k.String() {
			return k, nil
		}
	}
	return 0, fmt.Errorf("asset: unknown kind %q", s)
}

// Store holds loaded assets for the lifetime of a game session.
type Store struct {
	loader  Loader
	bitmaps cache[*ebiten.Image]
	music   cache[*Music]
	sounds  cache[*Sound]
}

// NewStore creates an empty store that loads through loader.
func NewStore(loader Loader) *Store {
	return &Store{
		loader:  loader,
		bitmaps: newCache[*ebiten.Image](),
		music:   newCache[*Music](),
		sounds:  newCache[*Sound](),
	}
}

// AddBitmap stores img under name. It returns false, leaving the existing
// entry in place, if the name is taken.
func (s *Store) AddBitmap(name string, img *ebiten.Image) bool {
	if img == nil {
		return false
	}
	return s.bitmaps.add(name, img)
}

// AddMusic stores m under name. It returns false if the name is taken.
func (s *Store) AddMusic(name string, m *Music) bool {
	if m == nil {
		return false
	}
	return s.music.add(name, m)
}

// AddSound stores snd under name. It returns false if the name is taken.
func (s *Store) AddSound(name string, snd *Sound) bool {
	if snd == nil {
		return false
	}
	return s.sounds.add(name, snd)
}

// LoadAndAddBitmap decodes the image at path and stores it under name.
// Load failures are logged and reported as false.
func (s *Store) LoadAndAddBitmap(name, path string) bool {
	return loadAndAdd(&s.bitmaps, s.loader, KindImage, name, path, func(l Loader, p string) (*ebiten.Image, error) {
		return l.LoadBitmap(p)
	})
}

// LoadAndAddMusic decodes the track at path and stores it under name.
func (s *Store) LoadAndAddMusic(name, path string) bool {
	return loadAndAdd(&s.music, s.loader, KindMusic, name, path, func(l Loader, p string) (*Music, error) {
		return l.LoadMusic(p)
	})
}

// LoadAndAddSound decodes the effect at path and stores it under name.
func (s *Store) LoadAndAddSound(name, path string) bool {
	return loadAndAdd(&s.sounds, s.loader, KindSound, name, path, func(l Loader, p string) (*Sound, error) {
		return l.LoadSound(p)
	})
}

// LoadAndAdd dispatches to the kind-specific loader.
func (s *Store) LoadAndAdd(kind Kind, name, path string) bool {
	switch kind {
	case KindImage:
		return s.LoadAndAddBitmap(name, path)
	case KindMusic:
		return s.LoadAndAddMusic(name, path)
	case KindSound:
		return s.LoadAndAddSound(name, path)
	default:
		log.Printf("asset: unknown kind %d for [%s]", kind, name)
		return false
	}
}

// Bitmap returns the image stored under name.
func (s *Store) Bitmap(name string) (*ebiten.Image, bool) {
	return s.bitmaps.get(name)
}

// Music returns the track stored under name.
func (s *Store) Music(name string) (*Music, bool) {
	return s.music.get(name)
}

// Sound returns the effect stored under name.
func (s *Store) Sound(name string) (*Sound, bool) {
	return s.sounds.get(name)
}

// Has reports whether kind holds an entry for name.
func (s *Store) Has(kind Kind, name string) bool {
	switch kind {
	case KindImage:
		return s.bitmaps.has(name)
	case KindMusic:
		return s.music.has(name)
	case KindSound:
		return s.sounds.has(name)
	}
	return false
}

// Len returns the number of entries of kind.
func (s *Store) Len(kind Kind) int {
	switch kind {
	case KindImage:
		return len(s.bitmaps.order)
	case KindMusic:
		return len(s.music.order)
	case KindSound:
		return len(s.sounds.order)
	}
	return 0
}

// Names returns the names of kind in insertion order.
func (s *Store) Names(kind Kind) []string {
	var order []string
	switch kind {
	case KindImage:
		order = s.bitmaps.order
	case KindMusic:
		order = s.music.order
	case KindSound:
		order = s.sounds.order
	}
	return append([]string(nil), order...)
}

// Close stops every sound effect still playing. Cached decodes are dropped
// with the store.
func (s *Store) Close() {
	for _, name := range s.sounds.order {
		s.sounds.items[name].Close()
	}
	s.bitmaps = newCache[*ebiten.Image]()
	s.music = newCache[*Music]()
	s.sounds = newCache[*Sound]()
}

func loadAndAdd[T any](c *cache[T], l Loader, kind Kind, name, path string, load func(Loader, string) (T, error)) bool {
	// A present name is never decoded twice.
	if c.has(name) {
		return false
	}
	if l == nil {
		log.Printf("asset: cannot load %s [%s]: no loader", kind, path)
		return false
	}

	v, err := load(l, path)
	if err != nil {
		log.Printf("asset: cannot load %s [%s]: %v", kind, path, err)
		return false
	}
	return c.add(name, v)
}

type cache[T any] struct {
	items map[string]T
	order []string
}

func newCache[T any]() cache[T] {
	return cache[T]{items: make(map[string]T)}
}

func (c *cache[T]) add(name string, v T) bool {
	if _, ok := c.items[name]; ok {
		return false
	}
	c.items[name] = v
	c.order = append(c.order, name)
	return true
}

func (c *cache[T]) get(name string) (T, bool) {
	v, ok := c.items[name]
	return v, ok
}

func (c *cache[T]) has(name string) bool {
	_, ok := c.items[name]
	return ok
}
