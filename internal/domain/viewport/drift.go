package viewport

// Drift scrolls a layer viewport back and forth along the x axis, used for
// the slowly moving menu backgrounds.
type Drift struct {
	Min, Max float64 // range for the layer center
	Speed    float64 // world units per frame

	dir float64
}

// NewDrift creates a drift that keeps the layer inside a world strip of the
// given width, starting towards +x.
func NewDrift(lv *LayerViewport, worldWidth, speed float64) *Drift {
	return &Drift{
		Min:   lv.Width / 2,
		Max:   worldWidth - lv.Width/2,
		Speed: speed,
		dir:   1,
	}
}

// Step moves the layer by one frame. The direction flips when the layer
// reaches either end of the range.
func (d *Drift) Step(lv *LayerViewport) {
	if d.Max <= d.Min {
		return
	}
	if d.dir == 0 {
		d.dir = 1
	}
	if lv.X >= d.Max {
		d.dir = -1
	} else if lv.X <= d.Min {
		d.dir = 1
	}

	lv.X += d.dir * d.Speed
	lv.X = min(max(lv.X, d.Min), d.Max)
}

// Direction returns +1 or -1.
func (d *Drift) Direction() float64 {
	if d.dir == 0 {
		return 1
	}
	return d.dir
}
