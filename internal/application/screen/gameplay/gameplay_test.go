package gameplay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/application/screen"
	"github.com/younwookim/spacewars/internal/application/screen/screentest"
	"github.com/younwookim/spacewars/internal/application/state"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/infrastructure/settings"
)

func newLevel(t *testing.T, loader *screentest.Loader) (*screen.Env, *Screen) {
	t.Helper()
	env := screentest.NewEnv(loader)
	s, err := New(env, nil)
	require.NoError(t, err)
	require.True(t, env.Screens.Add(s))
	return env, s
}

// oneSecond is a frame long enough to make distances easy to check.
var oneSecond = clock.ElapsedTime{Step: 1}

func TestNew_CentresShipAndCamera(t *testing.T) {
	_, s := newLevel(t, screentest.NewLoader())

	level := s.Level()
	assert.InDelta(t, 960, level.Width, 1e-9)
	assert.InDelta(t, 540, level.Height, 1e-9)

	assert.InDelta(t, level.X, s.Ship().X, 1e-9)
	assert.InDelta(t, level.Y, s.Ship().Y, 1e-9)
	assert.InDelta(t, s.Ship().X, s.Layer().X, 1e-9)
	assert.InDelta(t, s.Ship().Y, s.Layer().Y, 1e-9)
}

func TestSpeedFollowsDifficulty(t *testing.T) {
	tests := []struct {
		difficulty settings.Difficulty
		speed      float64
	}{
		{settings.Easy, 60},
		{settings.Normal, 90},
		{settings.Hard, 130},
	}

	for _, tt := range tests {
		t.Run(tt.difficulty.String(), func(t *testing.T) {
			env := screentest.NewEnv(screentest.NewLoader())
			require.NoError(t, env.Settings.SetDifficulty(tt.difficulty))
			s, err := New(env, nil)
			require.NoError(t, err)
			assert.InDelta(t, tt.speed, s.Speed(), 1e-9)
		})
	}
}

func TestTouchSteersShip(t *testing.T) {
	env, s := newLevel(t, screentest.NewLoader())

	// The right edge of the display, vertically centred, is 120 units right
	// of the ship.
	require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Down(320, 120)}))
	assert.InDelta(t, 570, s.Ship().X, 1e-9, "moves at most speed*dt")
	assert.InDelta(t, 270, s.Ship().Y, 1e-9)
	assert.InDelta(t, 570, s.Layer().X, 1e-9, "camera follows")

	// The target stays in world space while the finger rests.
	require.NoError(t, env.Screens.Update(oneSecond, nil))
	assert.InDelta(t, 600, s.Ship().X, 1e-9)

	require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Up(320, 120)}))
	require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Move(0, 0)}))
	x := s.Ship().X
	assert.Less(t, x, 600.0, "move resumes steering")

	require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Up(0, 0)}))
	x = s.Ship().X
	require.NoError(t, env.Screens.Update(oneSecond, nil))
	assert.InDelta(t, x, s.Ship().X, 1e-9, "released ship stays put")
}

func TestShipAndCameraStayInLevel(t *testing.T) {
	env, s := newLevel(t, screentest.NewLoader())

	for range 100 {
		require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Move(0, 239)}))
	}

	assert.InDelta(t, 10, s.Ship().X, 1e-9)
	assert.InDelta(t, 530, s.Ship().Y, 1e-9)
	assert.InDelta(t, 120, s.Layer().X, 1e-9)
	assert.InDelta(t, 450, s.Layer().Y, 1e-9)
}

func TestPause_ReturnsToMenu(t *testing.T) {
	loader := screentest.NewLoader()
	env := screentest.NewEnv(loader)
	var menu *screentest.Stub
	env.Registry.Register(state.ScreenMenu, screentest.StubFactory("Menu", &menu))

	s, err := New(env, nil)
	require.NoError(t, err)
	env.Screens.Add(s)

	theme := s.Theme()
	require.NotNil(t, theme)
	assert.True(t, theme.IsPlaying())
	assert.True(t, theme.Looping())

	pause, ok := s.Zones().Get(ZonePause)
	require.True(t, ok)
	c := pause.Bounds.Min.Add(pause.Bounds.Size().Div(2))
	shipX := s.Ship().X
	require.NoError(t, env.Screens.Update(oneSecond, []input.TouchEvent{input.Down(float64(c.X), float64(c.Y))}))

	assert.Equal(t, []string{"Menu"}, env.Screens.Names())
	require.NotNil(t, menu)
	assert.Nil(t, menu.LV)
	assert.True(t, theme.Disposed())
	assert.InDelta(t, shipX, s.Ship().X, 1e-9, "the pause touch does not steer")
}

func TestDraw(t *testing.T) {
	env, s := newLevel(t, screentest.NewLoader())
	sink := &screentest.Sink{}

	env.Screens.Draw(clock.ElapsedTime{}, sink)

	require.Len(t, sink.Bitmaps, 3, "background, ship and pause icon")
	ship, _ := env.Assets.Bitmap(PlayerShip)
	assert.Same(t, ship, s.Ship().Bitmap())
	assert.Same(t, ship, sink.Bitmaps[1].Img)
	assert.Equal(t, []string{"Difficulty: Normal"}, sink.Texts)
}

func TestMissingShipUsesPlaceholder(t *testing.T) {
	env, s := newLevel(t, screentest.NewLoader("img/sprites/sprPlayer.png"))
	require.NotNil(t, s.Ship().Bitmap())

	sink := &screentest.Sink{}
	env.Screens.Draw(clock.ElapsedTime{}, sink)
	assert.Len(t, sink.Bitmaps, 3)
}
