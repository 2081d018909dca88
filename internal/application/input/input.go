// Package input turns platform touches into discrete per-frame touch events.
package input

import (
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// TouchType is the kind of touch transition.
type TouchType int

const (
	TouchDown TouchType = iota
	TouchUp
	TouchMove
)

// String returns the string representation of the touch type
func (t TouchType) String() string {
	switch t {
	case TouchDown:
		return "Down"
	case TouchUp:
		return "Up"
	case TouchMove:
		return "Move"
	default:
		return "Unknown"
	}
}

// TouchEvent is one touch transition in device pixels.
type TouchEvent struct {
	X, Y float64
	Type TouchType
	ID   int // pointer id; the mouse uses MousePointer
}

// MousePointer is the pointer id used for emulated mouse touches.
const MousePointer = -1

// Point returns the pixel the event happened on.
func (e TouchEvent) Point() image.Point {
	return image.Pt(int(e.X), int(e.Y))
}

func (e TouchEvent) String() string {
	return fmt.Sprintf("%s(%.0f,%.0f)", e.Type, e.X, e.Y)
}

// Source yields the touch events of the current frame. Poll is called once
// per frame; TouchEvents returns that frame's batch until the next Poll.
type Source interface {
	Poll()
	TouchEvents() []TouchEvent
}

// EbitenSource reads touches, and emulates them with the left mouse button
// on desktop.
type EbitenSource struct {
	events []TouchEvent
	ids    []ebiten.TouchID

	pressed, held, released []touchPoint

	emulateMouse bool
	lastX, lastY int
}

// NewEbitenSource creates a source reading ebiten's input state.
func NewEbitenSource(emulateMouse bool) *EbitenSource {
	return &EbitenSource{emulateMouse: emulateMouse}
}

// Poll collects the touch transitions of this tick.
func (s *EbitenSource) Poll() {
	s.pressed = s.pressed[:0]
	s.ids = inpututil.AppendJustPressedTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		s.pressed = append(s.pressed, touchPoint{ID: int(id), X: x, Y: y, PrevX: x, PrevY: y})
	}

	s.held = s.held[:0]
	s.ids = ebiten.AppendTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		s.held = append(s.held, touchPoint{ID: int(id), X: x, Y: y, PrevX: px, PrevY: py})
	}

	s.released = s.released[:0]
	s.ids = inpututil.AppendJustReleasedTouchIDs(s.ids[:0])
	for _, id := range s.ids {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		s.released = append(s.released, touchPoint{ID: int(id), X: x, Y: y, PrevX: x, PrevY: y})
	}

	s.events = appendTouchEvents(s.events[:0], s.pressed, s.held, s.released)

	if s.emulateMouse {
		s.pollMouse()
	}
}

// touchPoint is a pointer's position this tick and in the previous one.
type touchPoint struct {
	ID           int
	X, Y         int
	PrevX, PrevY int
}

// appendTouchEvents turns one tick of pointer state into events: a Down for
// each new pointer, a Move for each held pointer that moved, and an Up for
// each lifted pointer, in that order. New pointers also appear among the
// held ones and do not get a Move.
func appendTouchEvents(events []TouchEvent, pressed, held, released []touchPoint) []TouchEvent {
	for _, p := range pressed {
		events = append(events, TouchEvent{X: float64(p.X), Y: float64(p.Y), Type: TouchDown, ID: p.ID})
	}

	for _, p := range held {
		if containsTouch(pressed, p.ID) {
			continue
		}
		if p.X != p.PrevX || p.Y != p.PrevY {
			events = append(events, TouchEvent{X: float64(p.X), Y: float64(p.Y), Type: TouchMove, ID: p.ID})
		}
	}

	for _, p := range released {
		events = append(events, TouchEvent{X: float64(p.X), Y: float64(p.Y), Type: TouchUp, ID: p.ID})
	}
	return events
}

func containsTouch(points []touchPoint, id int) bool {
	for _, p := range points {
		if p.ID == id {
			return true
		}
	}
	return false
}

func (s *EbitenSource) pollMouse() {
	x, y := ebiten.CursorPosition()
	moved := x != s.lastX || y != s.lastY
	s.lastX, s.lastY = x, y

	ev := TouchEvent{X: float64(x), Y: float64(y), ID: MousePointer}
	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		ev.Type = TouchDown
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		ev.Type = TouchUp
	case moved && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft):
		ev.Type = TouchMove
	default:
		return
	}
	s.events = append(s.events, ev)
}

// TouchEvents returns the batch collected by the last Poll.
func (s *EbitenSource) TouchEvents() []TouchEvent {
	return s.events
}

// Queue is a scripted source: each Poll moves the next queued batch into
// the current frame.
type Queue struct {
	frames  [][]TouchEvent
	current []TouchEvent
}

// NewQueue creates a source that replays frames one per Poll.
func NewQueue(frames ...[]TouchEvent) *Queue {
	return &Queue{frames: frames}
}

// Push appends a frame.
func (q *Queue) Push(events ...TouchEvent) {
	q.frames = append(q.frames, events)
}

// Poll advances to the next frame. An empty queue yields no events.
func (q *Queue) Poll() {
	if len(q.frames) == 0 {
		q.current = nil
		return
	}
	q.current = q.frames[0]
	q.frames = q.frames[1:]
}

// TouchEvents returns the current frame's events.
func (q *Queue) TouchEvents() []TouchEvent {
	return q.current
}

// Pending returns the number of frames not yet polled.
func (q *Queue) Pending() int {
	return len(q.frames)
}

// Down is a shorthand for a touch-down event.
func Down(x, y float64) TouchEvent {
	return TouchEvent{X: x, Y: y, Type: TouchDown}
}

// Up is a shorthand for a touch-up event.
func Up(x, y float64) TouchEvent {
	return TouchEvent{X: x, Y: y, Type: TouchUp}
}

// Move is a shorthand for a touch-move event.
func Move(x, y float64) TouchEvent {
	return TouchEvent{X: x, Y: y, Type: TouchMove}
}
