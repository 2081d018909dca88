package screen

import (
	"image"

	"github.com/younwookim/spacewars/internal/application/input"
)

// HotZone is a named touch target in screen pixels.
type HotZone struct {
	Name   string
	Bounds image.Rectangle
}

// HotZones is an ordered set of touch targets. Earlier zones win when zones
// overlap.
type HotZones []HotZone

// Hit returns the zone hit by the first Down event that lands on any zone.
// Later events of the batch are ignored, so a frame fires at most one zone.
func (z HotZones) Hit(touches []input.TouchEvent) (HotZone, bool) {
	for _, e := range touches {
		if e.Type != input.TouchDown {
			continue
		}
		p := e.Point()
		for _, zone := range z {
			if p.In(zone.Bounds) {
				return zone, true
			}
		}
	}
	return HotZone{}, false
}

// Get returns the zone called name.
func (z HotZones) Get(name string) (HotZone, bool) {
	for _, zone := range z {
		if zone.Name == name {
			return zone, true
		}
	}
	return HotZone{}, false
}
