package replay

import "github.com/younwookim/spacewars/internal/application/input"

// Version is written into every replay file.
const Version = "2.0"

// TouchRecord is one recorded touch transition.
type TouchRecord struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	T  int     `json:"t"`            // input.TouchType
	ID int     `json:"id,omitempty"` // pointer id
}

// FrameInput records the touches of a single frame. Frames without touches
// are not stored.
type FrameInput struct {
	F       int           `json:"f"` // Frame number
	Touches []TouchRecord `json:"touches"`
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version      string       `json:"version"`
	Screen       string       `json:"screen"` // screen the session started on
	ScreenWidth  int          `json:"screenWidth"`
	ScreenHeight int          `json:"screenHeight"`
	StartTime    string       `json:"startTime"`
	TotalFrames  int          `json:"totalFrames"`
	Frames       []FrameInput `json:"frames"`
}

func toRecords(events []input.TouchEvent) []TouchRecord {
	out := make([]TouchRecord, len(events))
	for i, e := range events {
		out[i] = TouchRecord{X: e.X, Y: e.Y, T: int(e.Type), ID: e.ID}
	}
	return out
}

func toEvents(records []TouchRecord) []input.TouchEvent {
	out := make([]input.TouchEvent, len(records))
	for i, r := range records {
		out[i] = input.TouchEvent{X: r.X, Y: r.Y, Type: input.TouchType(r.T), ID: r.ID}
	}
	return out
}
