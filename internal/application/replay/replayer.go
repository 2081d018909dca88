package replay

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/younwookim/spacewars/internal/application/input"
)

// Replayer feeds recorded touches back frame by frame. It implements
// input.Source, so the game loop cannot tell it apart from live input.
type Replayer struct {
	data    ReplayData
	byFrame map[int][]input.TouchEvent
	frame   int
	current []input.TouchEvent
}

var _ input.Source = (*Replayer)(nil)

// NewReplayer creates a new replayer from replay data
func NewReplayer(data ReplayData) *Replayer {
	byFrame := make(map[int][]input.TouchEvent, len(data.Frames))
	for _, fi := range data.Frames {
		byFrame[fi.F] = append(byFrame[fi.F], toEvents(fi.Touches)...)
	}
	return &Replayer{data: data, byFrame: byFrame}
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}

	return &data, nil
}

// Poll moves to the next recorded frame
func (r *Replayer) Poll() {
	r.current = r.byFrame[r.frame]
	r.frame++
}

// TouchEvents returns the touches of the current frame
func (r *Replayer) TouchEvents() []input.TouchEvent {
	return r.current
}

// Done reports whether every recorded frame has been polled
func (r *Replayer) Done() bool {
	return r.frame >= r.data.TotalFrames
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return r.data.TotalFrames
}

// Screen returns the screen the recorded session started on
func (r *Replayer) Screen() string {
	return r.data.Screen
}
