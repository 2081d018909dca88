// Package state names the screens the game can show.
package state

import (
	"fmt"
	"strings"
)

// ScreenID identifies a screen variant
type ScreenID int

const (
	ScreenMenu ScreenID = iota
	ScreenOptions
	ScreenAbout
	ScreenGameplay
)

// String returns the string representation of the screen id
func (s ScreenID) String() string {
	switch s {
	case ScreenMenu:
		return "Menu"
	case ScreenOptions:
		return "Options"
	case ScreenAbout:
		return "About"
	case ScreenGameplay:
		return "Gameplay"
	default:
		return "Unknown"
	}
}

// ParseScreenID is the inverse of String. Matching ignores case.
func ParseScreenID(s string) (ScreenID, error) {
	for id := ScreenMenu; id <= ScreenGameplay; id++ {
		if strings.EqualFold(s, id.String()) {
			return id, nil
		}
	}
	return 0, fmt.Errorf("unknown screen %q", s)
}
