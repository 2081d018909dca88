// Package screen manages the lifecycle of game screens.
//
// Each game screen (menu, options, about, gameplay) implements the Screen
// interface. The Manager keeps the active screens in insertion order, which
// is both the update order and the back-to-front draw order. Only the
// topmost screen receives touch input.
package screen

import (
	"github.com/younwookim/spacewars/internal/application/input"
	"github.com/younwookim/spacewars/internal/domain/clock"
	"github.com/younwookim/spacewars/internal/domain/graphics"
)

// Screen represents a game screen (menu, options, about, gameplay)
type Screen interface {
	// Name identifies the screen. It is unique within the active set.
	Name() string

	// Update advances the screen by one frame. touches is empty unless the
	// screen is the topmost one. Returns an error to terminate the game.
	Update(t clock.ElapsedTime, touches []input.TouchEvent) error

	// Draw renders the screen to the sink.
	Draw(t clock.ElapsedTime, sink graphics.Sink)

	// OnEnter is called when the screen joins the active set.
	// Screen-scoped resources such as looping music are acquired here.
	OnEnter()

	// OnExit is called when the screen leaves the active set.
	// Resources acquired in OnEnter are released here.
	OnExit()
}
