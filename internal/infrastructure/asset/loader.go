package asset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio/mp3"
	"github.com/hajimehoshi/ebiten/v2/audio/vorbis"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// ErrUnsupportedFormat is returned for audio files with an unknown extension.
var ErrUnsupportedFormat = errors.New("unsupported audio format")

// Loader reads and decodes raw asset files. Every method may fail with an
// I/O or decode error; the Store turns those into a false result.
type Loader interface {
	LoadBitmap(path string) (*ebiten.Image, error)
	LoadMusic(path string) (*Music, error)
	LoadSound(path string) (*Sound, error)
}

// FSLoader loads assets from a file system using ebiten's decoders.
type FSLoader struct {
	fsys  fs.FS
	mixer Mixer
}

// NewLoader creates a loader rooted at a directory.
func NewLoader(dir string, mixer Mixer) *FSLoader {
	return NewFSLoader(os.DirFS(dir), mixer)
}

// NewFSLoader creates a loader over fsys.
func NewFSLoader(fsys fs.FS, mixer Mixer) *FSLoader {
	return &FSLoader{fsys: fsys, mixer: mixer}
}

// LoadBitmap decodes a PNG or JPEG into an ebiten image.
func (l *FSLoader) LoadBitmap(name string) (*ebiten.Image, error) {
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadMusic decodes a track into PCM.
func (l *FSLoader) LoadMusic(name string) (*Music, error) {
	pcm, err := l.decodePCM(name)
	if err != nil {
		return nil, err
	}
	return NewMusic(pcm, l.mixer), nil
}

// LoadSound decodes a sound effect into PCM.
func (l *FSLoader) LoadSound(name string) (*Sound, error) {
	pcm, err := l.decodePCM(name)
	if err != nil {
		return nil, err
	}
	return NewSound(pcm, l.mixer), nil
}

func (l *FSLoader) decodePCM(name string) ([]byte, error) {
	if l.mixer == nil {
		return nil, fmt.Errorf("decode %s: no mixer", name)
	}
	data, err := fs.ReadFile(l.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}

	rate := l.mixer.SampleRate()
	var stream io.Reader
	switch strings.ToLower(path.Ext(name)) {
	case ".wav":
		stream, err = wav.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".mp3":
		stream, err = mp3.DecodeWithSampleRate(rate, bytes.NewReader(data))
	case ".ogg":
		stream, err = vorbis.DecodeWithSampleRate(rate, bytes.NewReader(data))
	default:
		return nil, fmt.Errorf("decode %s: %w", name, ErrUnsupportedFormat)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}

	pcm, err := io.ReadAll(stream)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", name, err)
	}
	return pcm, nil
}
