package menu

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/screen/screentest"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
)

type fixture struct {
	loader   *screentest.Loader
	env      *screen.Env
	menu     *Screen
	gameplay *screentest.Stub
	options  *screentest.Stub
	about    *screentest.Stub
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{loader: screentest.NewLoader()}
	f.env = screentest.NewEnv(f.loader)
	f.env.Registry.Register(state.ScreenGameplay, screentest.StubFactory("Gameplay", &f.gameplay))
	f.env.Registry.Register(state.ScreenOptions, screentest.StubFactory("Options", &f.options))
	f.env.Registry.Register(state.ScreenAbout, screentest.StubFactory("About", &f.about))

	m, err := New(f.env, nil)
	require.NoError(t, err)
	f.menu = m
	require.True(t, f.env.Screens.Add(m))
	return f
}

func (f *fixture) tap(t *testing.T, zone string) {
	t.Helper()
	z, ok := f.menu.Zones().Get(zone)
	require.True(t, ok, zone)
	c := z.Bounds.Min.Add(z.Bounds.Size().Div(2))
	require.NoError(t, f.env.Screens.Update(clock.ElapsedTime{}, []input.TouchEvent{input.Down(float64(c.X), float64(c.Y))}))
}

func TestNew_LoadsAssets(t *testing.T) {
	f := newFixture(t)

	for _, name := range []string{TitleImage, PlayIcon, SettingsIcon, AboutIcon, screen.BackgroundImage} {
		_, ok := f.env.Assets.Bitmap(name)
		assert.True(t, ok, name)
	}
	_, ok := f.env.Assets.Music(MainTheme)
	assert.True(t, ok)
	_, ok = f.env.Assets.Sound(screen.ClickSound)
	assert.True(t, ok)
}

func TestLayout(t *testing.T) {
	f := newFixture(t)

	play, _ := f.menu.Zones().Get(ZonePlay)
	settings, _ := f.menu.Zones().Get(ZoneSettings)
	about, _ := f.menu.Zones().Get(ZoneAbout)

	assert.Equal(t, image.Rect(127, 124, 193, 213), play.Bounds)
	assert.Equal(t, image.Rect(8, 203, 32, 236), settings.Bounds)
	assert.Equal(t, image.Rect(288, 203, 312, 236), about.Bounds)
}

func TestOnEnter_StartsTheme(t *testing.T) {
	f := newFixture(t)

	theme := f.menu.Theme()
	require.NotNil(t, theme)
	assert.True(t, theme.IsPlaying())
	assert.True(t, theme.Looping())
	assert.InDelta(t, 0.75, theme.Volume(), 1e-9)

	looping := f.loader.Mixer.Looping()
	require.Len(t, looping, 1)
	assert.InDelta(t, 0.75, looping[0].Vol, 1e-9)
}

func TestOnEnter_ThemeFollowsSoundSetting(t *testing.T) {
	loader := screentest.NewLoader()
	env := screentest.NewEnv(loader)
	require.NoError(t, env.Settings.SetSound(4))

	m, err := New(env, nil)
	require.NoError(t, err)
	env.Screens.Add(m)

	assert.InDelta(t, 0.3, m.Theme().Volume(), 1e-9)
}

func TestTapPlay_SwitchesToGameplay(t *testing.T) {
	f := newFixture(t)
	theme := f.menu.Theme()

	f.tap(t, ZonePlay)

	assert.Equal(t, []string{"Gameplay"}, f.env.Screens.Names())
	require.NotNil(t, f.gameplay)
	assert.Nil(t, f.gameplay.LV, "gameplay starts with a fresh camera")
	assert.Equal(t, 1, f.gameplay.Entered)

	// The theme is disposed and stays silent, while the cached track remains.
	assert.True(t, theme.Disposed())
	theme.Play()
	assert.False(t, theme.IsPlaying())
	_, ok := f.env.Assets.Music(MainTheme)
	assert.True(t, ok)

	assert.Len(t, f.loader.Mixer.OneShots(), 1, "click sound")
}

func TestTapSettings_KeepsLayer(t *testing.T) {
	f := newFixture(t)
	lv := f.menu.Layer()

	f.tap(t, ZoneSettings)

	assert.Equal(t, []string{"Options"}, f.env.Screens.Names())
	require.NotNil(t, f.options)
	assert.Same(t, lv, f.options.LV)
}

func TestTapAbout_KeepsLayer(t *testing.T) {
	f := newFixture(t)

	f.tap(t, ZoneAbout)

	assert.Equal(t, []string{"About"}, f.env.Screens.Names())
	require.NotNil(t, f.about)
	assert.Same(t, f.menu.Layer(), f.about.LV)
}

func TestTouchOutsideZones(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.env.Screens.Update(clock.ElapsedTime{}, []input.TouchEvent{input.Down(1, 1)}))
	assert.Equal(t, []string{"Menu"}, f.env.Screens.Names())
}

func TestUpdate_DriftsBackground(t *testing.T) {
	f := newFixture(t)
	lv := f.menu.Layer()
	start := lv.X

	require.NoError(t, f.env.Screens.Update(clock.ElapsedTime{}, nil))
	assert.InDelta(t, start+1, lv.X, 1e-9)

	// Run long enough to bounce off the far end.
	for range 1000 {
		require.NoError(t, f.env.Screens.Update(clock.ElapsedTime{}, nil))
		assert.GreaterOrEqual(t, lv.X, lv.Width/2)
		assert.LessOrEqual(t, lv.X, 1.5*lv.Width)
	}
}

func TestDraw(t *testing.T) {
	f := newFixture(t)
	sink := &screentest.Sink{W: 320, H: 240}

	f.env.Screens.Draw(clock.ElapsedTime{}, sink)

	require.Len(t, sink.Bitmaps, 5)
	assert.NotNil(t, sink.Bitmaps[0].Src, "background is clipped to the layer")
	for _, c := range sink.Bitmaps[1:] {
		assert.Nil(t, c.Src)
	}
}

func TestMissingAssetsDegrade(t *testing.T) {
	loader := screentest.NewLoader("img/titles/ttlLogo.png", "sfx/sfx_maintheme.ogg", "img/backgrounds/bgSpace.png")
	env := screentest.NewEnv(loader)

	m, err := New(env, nil)
	require.NoError(t, err)
	env.Screens.Add(m)
	assert.Nil(t, m.Theme())

	sink := &screentest.Sink{}
	env.Screens.Draw(clock.ElapsedTime{}, sink)
	assert.Len(t, sink.Bitmaps, 3, "only the icons are drawn")

	require.NoError(t, env.Screens.Update(clock.ElapsedTime{}, nil))
	env.Screens.Clear()
}
