package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/younwookim/spacewars/internal/application/input"
)

// Recorder handles touch recording for replay
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a session starting on screen
func NewRecorder(screen string, screenW, screenH int) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:      Version,
			Screen:       screen,
			ScreenWidth:  screenW,
			ScreenHeight: screenH,
			StartTime:    time.Now().Format(time.RFC3339),
			Frames:       make([]FrameInput, 0, 256),
		},
		recording: true,
	}
}

// RecordFrame records a single frame's touches
func (r *Recorder) RecordFrame(events []input.TouchEvent) {
	if !r.recording {
		return
	}

	if len(events) > 0 {
		r.data.Frames = append(r.data.Frames, FrameInput{F: r.frame, Touches: toRecords(events)})
	}
	r.frame++
	r.data.TotalFrames = r.frame
}

// Save writes the replay data to a file
func (r *Recorder) Save(filename string) error {
	if r.data.TotalFrames == 0 {
		return fmt.Errorf("no frames to save")
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer func() { _ = file.Close() }()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(r.data); err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	return nil
}

// Stop stops recording
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording returns whether recording is active
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns the number of recorded frames
func (r *Recorder) FrameCount() int {
	return r.data.TotalFrames
}

// GetData returns the replay data (for testing)
func (r *Recorder) GetData() ReplayData {
	return r.data
}

// GenerateFilename creates a filename based on current time
func GenerateFilename() string {
	return fmt.Sprintf("replay_%s.json", time.Now().Format("20060102_150405"))
}
