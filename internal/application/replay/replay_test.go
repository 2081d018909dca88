package replay

import (
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/spacewars/internal/application/input"
)

func TestReplayData_JSONMarshal(t *testing.T) {
	data := ReplayData{
		Version:      Version,
		Screen:       "MenuScreen",
		ScreenWidth:  1280,
		ScreenHeight: 720,
		StartTime:    "2024-01-01T00:00:00Z",
		TotalFrames:  3,
		Frames: []FrameInput{
			{F: 0, Touches: []TouchRecord{{X: 100, Y: 100, T: int(input.TouchDown)}}},
			{F: 2, Touches: []TouchRecord{{X: 110, Y: 100, T: int(input.TouchUp)}}},
		},
	}

	jsonData, err := json.Marshal(data)
	require.NoError(t, err)

	var decoded ReplayData
	err = json.Unmarshal(jsonData, &decoded)
	require.NoError(t, err)

	assert.Equal(t, data, decoded)
}

func TestRecorder_RecordFrame(t *testing.T) {
	r := NewRecorder("MenuScreen", 1280, 720)
	require.True(t, r.IsRecording())

	r.RecordFrame([]input.TouchEvent{input.Down(10, 20)})
	r.RecordFrame(nil)
	r.RecordFrame([]input.TouchEvent{input.Move(11, 21), input.Up(12, 22)})

	assert.Equal(t, 3, r.FrameCount())
	data := r.GetData()
	require.Len(t, data.Frames, 2, "empty frames are skipped")
	assert.Equal(t, 0, data.Frames[0].F)
	assert.Equal(t, 2, data.Frames[1].F)
	assert.Len(t, data.Frames[1].Touches, 2)

	r.Stop()
	r.RecordFrame([]input.TouchEvent{input.Down(0, 0)})
	assert.Equal(t, 3, r.FrameCount(), "stopped recorder ignores frames")
}

func TestReplayer_ImplementsSource(t *testing.T) {
	data := ReplayData{
		TotalFrames: 3,
		Frames: []FrameInput{
			{F: 0, Touches: []TouchRecord{{X: 100, Y: 100, T: int(input.TouchDown)}}},
			{F: 2, Touches: []TouchRecord{{X: 120, Y: 90, T: int(input.TouchUp)}}},
		},
	}

	var src input.Source = NewReplayer(data)
	rp := src.(*Replayer)

	src.Poll()
	require.Len(t, src.TouchEvents(), 1)
	assert.Equal(t, input.Down(100, 100), src.TouchEvents()[0])

	src.Poll()
	assert.Empty(t, src.TouchEvents())

	src.Poll()
	assert.Equal(t, []input.TouchEvent{input.Up(120, 90)}, src.TouchEvents())
	assert.True(t, rp.Done())
	assert.Equal(t, 3, rp.CurrentFrame())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	r := NewRecorder("MenuScreen", 320, 240)
	r.RecordFrame([]input.TouchEvent{input.Down(1, 2)})
	r.RecordFrame(nil)

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, r.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, "MenuScreen", loaded.Screen)
	assert.Equal(t, 2, loaded.TotalFrames)

	rp := NewReplayer(*loaded)
	assert.Equal(t, "MenuScreen", rp.Screen())
	assert.Equal(t, 2, rp.TotalFrames())
	rp.Poll()
	assert.Equal(t, []input.TouchEvent{input.Down(1, 2)}, rp.TouchEvents())
}

func TestGenerateFilename(t *testing.T) {
	name := GenerateFilename()
	assert.Regexp(t, `^replay_\d{8}_\d{6}\.json$`, name)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	r := NewRecorder("MenuScreen", 320, 240)
	assert.Error(t, r.Save(filepath.Join(t.TempDir(), "empty.json")))
}

func TestLoadReplay_Missing(t *testing.T) {
	_, err := LoadReplay(filepath.Join(t.TempDir(), "nope.json"))
	assert.ErrorContains(t, err, "failed to open file")
}
