package asset

import (
	"bytes"
	"log"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// DefaultSampleRate is the sample rate all audio is decoded to.
const DefaultSampleRate = 44100

// MaxConcurrentSounds caps the live players of a single sound effect.
const MaxConcurrentSounds = 20

// Player is a single playback instance. *audio.Player satisfies it.
type Player interface {
	Play()
	Pause()
	IsPlaying() bool
	Rewind() error
	SetVolume(volume float64)
	Close() error
}

// Mixer creates playback instances from decoded 16-bit stereo PCM.
type Mixer interface {
	SampleRate() int
	NewPlayer(pcm []byte, loop bool) (Player, error)
}

// EbitenMixer plays audio through ebiten's audio context.
type EbitenMixer struct {
	ctx *audio.Context
}

// NewEbitenMixer returns a mixer on the process audio context, creating the
// context with sampleRate if none exists yet.
func NewEbitenMixer(sampleRate int) *EbitenMixer {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	return &EbitenMixer{ctx: ctx}
}

// SampleRate returns the context's sample rate.
func (m *EbitenMixer) SampleRate() int {
	return m.ctx.SampleRate()
}

// NewPlayer creates a player over pcm. Looping players wrap the data in an
// infinite loop stream.
func (m *EbitenMixer) NewPlayer(pcm []byte, loop bool) (Player, error) {
	if !loop {
		return m.ctx.NewPlayerFromBytes(pcm), nil
	}
	stream := audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm)))
	p, err := m.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Music is a decoded track. The decode is cached by the store; playback
// instances are created and disposed by the screen that plays the track.
type Music struct {
	pcm   []byte
	mixer Mixer
}

// NewMusic wraps decoded PCM.
func NewMusic(pcm []byte, mixer Mixer) *Music {
	return &Music{pcm: pcm, mixer: mixer}
}

// Size returns the decoded size in bytes.
func (m *Music) Size() int {
	return len(m.pcm)
}

// NewPlayback creates a stopped playback instance at full volume.
func (m *Music) NewPlayback() *Playback {
	return &Playback{music: m, volume: 1}
}

// Playback is one playing instance of a Music track.
// Once disposed it never plays again.
type Playback struct {
	music    *Music
	player   Player
	volume   float64
	looping  bool
	disposed bool
}

// SetVolume sets the volume, clamped to [0, 1].
func (p *Playback) SetVolume(v float64) {
	p.volume = clamp01(v)
	if p.player != nil {
		p.player.SetVolume(p.volume)
	}
}

// Volume returns the current volume.
func (p *Playback) Volume() float64 {
	return p.volume
}

// SetLooping chooses whether the track restarts when it ends. Changing it
// stops the current player; the next Play starts from the beginning.
func (p *Playback) SetLooping(loop bool) {
	if p.looping == loop {
		return
	}
	p.looping = loop
	p.release()
}

// Looping reports whether the track loops.
func (p *Playback) Looping() bool {
	return p.looping
}

// Play starts or resumes playback. It does not block.
func (p *Playback) Play() {
	if p.disposed {
		return
	}
	if p.player == nil {
		player, err := p.music.mixer.NewPlayer(p.music.pcm, p.looping)
		if err != nil {
			log.Printf("asset: cannot start music: %v", err)
			return
		}
		p.player = player
		p.player.SetVolume(p.volume)
	}
	p.player.Play()
}

// Pause pauses playback, keeping the position.
func (p *Playback) Pause() {
	if p.player != nil {
		p.player.Pause()
	}
}

// Stop pauses playback and rewinds to the start.
func (p *Playback) Stop() {
	if p.player == nil {
		return
	}
	p.player.Pause()
	if err := p.player.Rewind(); err != nil {
		log.Printf("asset: cannot rewind music: %v", err)
	}
}

// IsPlaying reports whether the track is audible.
func (p *Playback) IsPlaying() bool {
	return !p.disposed && p.player != nil && p.player.IsPlaying()
}

// Dispose stops playback and releases the player. It is safe to call more
// than once.
func (p *Playback) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.release()
}

// Disposed reports whether Dispose has been called.
func (p *Playback) Disposed() bool {
	return p.disposed
}

func (p *Playback) release() {
	if p.player == nil {
		return
	}
	p.player.Pause()
	if err := p.player.Close(); err != nil {
		log.Printf("asset: cannot close music player: %v", err)
	}
	p.player = nil
}

// Sound is a decoded sound effect. Each Play fires an independent one-shot
// player.
type Sound struct {
	pcm   []byte
	mixer Mixer
	live  []Player
}

// NewSound wraps decoded PCM.
func NewSound(pcm []byte, mixer Mixer) *Sound {
	return &Sound{pcm: pcm, mixer: mixer}
}

// Play fires the effect at volume in [0, 1] and returns whether it started.
// A silent volume or a full set of live players skips the effect.
func (s *Sound) Play(volume float64) bool {
	volume = clamp01(volume)
	if volume == 0 {
		return false
	}

	s.reap()
	if len(s.live) >= MaxConcurrentSounds {
		return false
	}

	p, err := s.mixer.NewPlayer(s.pcm, false)
	if err != nil {
		log.Printf("asset: cannot start sound: %v", err)
		return false
	}
	p.SetVolume(volume)
	p.Play()
	s.live = append(s.live, p)
	return true
}

// Playing returns the number of live players.
func (s *Sound) Playing() int {
	s.reap()
	return len(s.live)
}

// Close stops and releases every live player.
func (s *Sound) Close() {
	for _, p := range s.live {
		p.Pause()
		_ = p.Close()
	}
	s.live = nil
}

func (s *Sound) reap() {
	kept := s.live[:0]
	for _, p := range s.live {
		if p.IsPlaying() {
			kept = append(kept, p)
			continue
		}
		_ = p.Close()
	}
	clear(s.live[len(kept):])
	s.live = kept
}

func clamp01(v float64) float64 {
	return min(max(v, 0), 1)
}
