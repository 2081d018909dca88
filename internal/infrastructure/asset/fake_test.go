package asset

import (
	"errors"

	"github.com/hajimehoshi/ebiten/v2"
)

// fakePlayer is a test double for Player.
type fakePlayer struct {
	playing bool
	volume  float64
	loop    bool
	closed  bool
	plays   int
}

func (p *fakePlayer) Play() {
	if p.closed {
		return
	}
	p.playing = true
	p.plays++
}
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) Rewind() error       { return nil }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }
func (p *fakePlayer) Close() error {
	p.closed = true
	p.playing = false
	return nil
}

// fakeMixer records every player it hands out.
type fakeMixer struct {
	players []*fakePlayer
	err     error
}

func (m *fakeMixer) SampleRate() int { return DefaultSampleRate }

func (m *fakeMixer) NewPlayer(_ []byte, loop bool) (Player, error) {
	if m.err != nil {
		return nil, m.err
	}
	p := &fakePlayer{loop: loop}
	m.players = append(m.players, p)
	return p, nil
}

// fakeLoader serves assets from maps and counts decode calls.
type fakeLoader struct {
	mixer   *fakeMixer
	missing map[string]bool
	calls   map[string]int
}

func newFakeLoader(missing ...string) *fakeLoader {
	l := &fakeLoader{
		mixer:   &fakeMixer{},
		missing: make(map[string]bool),
		calls:   make(map[string]int),
	}
	for _, m := range missing {
		l.missing[m] = true
	}
	return l
}

var errMissing = errors.New("file does not exist")

func (l *fakeLoader) LoadBitmap(path string) (*ebiten.Image, error) {
	l.calls[path]++
	if l.missing[path] {
		return nil, errMissing
	}
	return ebiten.NewImage(4, 4), nil
}

func (l *fakeLoader) LoadMusic(path string) (*Music, error) {
	l.calls[path]++
	if l.missing[path] {
		return nil, errMissing
	}
	return NewMusic([]byte{0, 0, 0, 0}, l.mixer), nil
}

func (l *fakeLoader) LoadSound(path string) (*Sound, error) {
	l.calls[path]++
	if l.missing[path] {
		return nil, errMissing
	}
	return NewSound([]byte{0, 0, 0, 0}, l.mixer), nil
}
