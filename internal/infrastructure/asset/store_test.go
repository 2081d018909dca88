package asset

import (
	"bytes"
	"log"
	"os"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLog(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	log.SetOutput(&buf)
	t.Cleanup(func() { log.SetOutput(os.Stderr) })
	return &buf
}

func TestKind_String(t *testing.T) {
	tests := []struct {
		kind     Kind
		expected string
	}{
		{KindImage, "image"},
		{KindMusic, "music"},
		{KindSound, "sound"},
		{Kind(99), "unknown"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.kind.String())
		})
	}
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind("music")
	require.NoError(t, err)
	assert.Equal(t, KindMusic, k)

	_, err = ParseKind("video")
	assert.Error(t, err)
}

func TestStore_AddBitmap_NoOverwrite(t *testing.T) {
	s := NewStore(nil)
	first := ebiten.NewImage(2, 2)
	second := ebiten.NewImage(3, 3)

	assert.True(t, s.AddBitmap("PlayIcon", first))
	assert.False(t, s.AddBitmap("PlayIcon", second))

	got, ok := s.Bitmap("PlayIcon")
	require.True(t, ok)
	assert.Same(t, first, got)
	assert.Equal(t, 1, s.Len(KindImage))
}

func TestStore_AddMusic_NoOverwrite(t *testing.T) {
	s := NewStore(nil)
	mixer := &fakeMixer{}
	first := NewMusic([]byte{1}, mixer)
	second := NewMusic([]byte{2}, mixer)

	assert.True(t, s.AddMusic("MainTheme", first))
	assert.False(t, s.AddMusic("MainTheme", second))

	got, ok := s.Music("MainTheme")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestStore_AddSound_NoOverwrite(t *testing.T) {
	s := NewStore(nil)
	mixer := &fakeMixer{}
	first := NewSound([]byte{1}, mixer)
	second := NewSound([]byte{2}, mixer)

	assert.True(t, s.AddSound("ButtonClick", first))
	assert.False(t, s.AddSound("ButtonClick", second))

	got, ok := s.Sound("ButtonClick")
	require.True(t, ok)
	assert.Same(t, first, got)
}

func TestStore_KindsAreSeparateNamespaces(t *testing.T) {
	s := NewStore(nil)
	mixer := &fakeMixer{}

	assert.True(t, s.AddBitmap("Shared", ebiten.NewImage(1, 1)))
	assert.True(t, s.AddMusic("Shared", NewMusic(nil, mixer)))
	assert.True(t, s.AddSound("Shared", NewSound(nil, mixer)))

	assert.True(t, s.Has(KindImage, "Shared"))
	assert.True(t, s.Has(KindMusic, "Shared"))
	assert.True(t, s.Has(KindSound, "Shared"))
}

func TestStore_AddRejectsNil(t *testing.T) {
	s := NewStore(nil)
	assert.False(t, s.AddBitmap("x", nil))
	assert.False(t, s.AddMusic("x", nil))
	assert.False(t, s.AddSound("x", nil))
	assert.Equal(t, 0, s.Len(KindImage))
}

func TestStore_GetMissing(t *testing.T) {
	s := NewStore(nil)

	img, ok := s.Bitmap("nope")
	assert.False(t, ok)
	assert.Nil(t, img)

	m, ok := s.Music("nope")
	assert.False(t, ok)
	assert.Nil(t, m)

	snd, ok := s.Sound("nope")
	assert.False(t, ok)
	assert.Nil(t, snd)
}

func TestStore_LoadAndAdd(t *testing.T) {
	loader := newFakeLoader()
	s := NewStore(loader)

	assert.True(t, s.LoadAndAddBitmap("PlayIcon", "img/buttons/btnPlay.png"))
	assert.True(t, s.LoadAndAddMusic("MainTheme", "sfx/sfx_maintheme.mp3"))
	assert.True(t, s.LoadAndAddSound("ButtonClick", "sfx/sfx_buttonclick.wav"))

	_, ok := s.Bitmap("PlayIcon")
	assert.True(t, ok)
	_, ok = s.Music("MainTheme")
	assert.True(t, ok)
	_, ok = s.Sound("ButtonClick")
	assert.True(t, ok)
}

func TestStore_LoadAndAdd_DecodesOnce(t *testing.T) {
	loader := newFakeLoader()
	s := NewStore(loader)

	require.True(t, s.LoadAndAddBitmap("PlayIcon", "btnPlay.png"))
	first, _ := s.Bitmap("PlayIcon")

	// Screens reload their material list every time they are built.
	assert.False(t, s.LoadAndAddBitmap("PlayIcon", "btnPlay.png"))
	for i := 0; i < 10; i++ {
		got, ok := s.Bitmap("PlayIcon")
		require.True(t, ok)
		assert.Same(t, first, got)
	}

	assert.Equal(t, 1, loader.calls["btnPlay.png"])
}

func TestStore_LoadAndAdd_Failure(t *testing.T) {
	buf := captureLog(t)
	loader := newFakeLoader("missing.png", "missing.mp3", "missing.wav")
	s := NewStore(loader)

	assert.False(t, s.LoadAndAddBitmap("Missing", "missing.png"))
	assert.False(t, s.LoadAndAddMusic("Missing", "missing.mp3"))
	assert.False(t, s.LoadAndAddSound("Missing", "missing.wav"))

	assert.False(t, s.Has(KindImage, "Missing"))
	assert.False(t, s.Has(KindMusic, "Missing"))
	assert.False(t, s.Has(KindSound, "Missing"))
	assert.Contains(t, buf.String(), "cannot load image [missing.png]")
	assert.Contains(t, buf.String(), "cannot load music [missing.mp3]")
	assert.Contains(t, buf.String(), "cannot load sound [missing.wav]")
}

func TestStore_LoadAndAdd_NoLoader(t *testing.T) {
	captureLog(t)
	s := NewStore(nil)
	assert.False(t, s.LoadAndAddBitmap("PlayIcon", "btnPlay.png"))
}

func TestStore_DuplicateIsNotLogged(t *testing.T) {
	buf := captureLog(t)
	s := NewStore(newFakeLoader())

	require.True(t, s.LoadAndAddSound("ButtonClick", "click.wav"))
	assert.False(t, s.LoadAndAddSound("ButtonClick", "click.wav"))
	assert.Empty(t, buf.String())
}

func TestStore_LoadAndAddByKind(t *testing.T) {
	buf := captureLog(t)
	s := NewStore(newFakeLoader())

	assert.True(t, s.LoadAndAdd(KindImage, "a", "a.png"))
	assert.True(t, s.LoadAndAdd(KindMusic, "b", "b.ogg"))
	assert.True(t, s.LoadAndAdd(KindSound, "c", "c.wav"))
	assert.False(t, s.LoadAndAdd(Kind(42), "d", "d.bin"))
	assert.Contains(t, buf.String(), "unknown kind")
}

func TestStore_Names(t *testing.T) {
	s := NewStore(newFakeLoader())
	s.LoadAndAddBitmap("b", "b.png")
	s.LoadAndAddBitmap("a", "a.png")

	names := s.Names(KindImage)
	assert.Equal(t, []string{"b", "a"}, names)

	names[0] = "mutated"
	assert.Equal(t, []string{"b", "a"}, s.Names(KindImage), "Names returns a copy")
}

func TestStore_Close(t *testing.T) {
	loader := newFakeLoader()
	s := NewStore(loader)
	require.True(t, s.LoadAndAddSound("ButtonClick", "click.wav"))

	snd, _ := s.Sound("ButtonClick")
	require.True(t, snd.Play(1))
	p := loader.mixer.players[0]

	s.Close()

	assert.True(t, p.closed)
	assert.Equal(t, 0, s.Len(KindSound))
}
