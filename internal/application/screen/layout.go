package screen

import (
	"image"

	"github.com/younwookim/spacewars/internal/domain/viewport"
)

// Layout places widgets as fractions of the display, with the margins used
// by every menu-style screen.
type Layout struct {
	Width, Height int
	PadX, PadY    int
}

// NewLayout creates a layout for sv. The margins are 2.6% of the width and
// 2% of the height.
func NewLayout(sv viewport.ScreenViewport) Layout {
	return Layout{
		Width:  sv.Width,
		Height: sv.Height,
		PadX:   int(float64(sv.Width) * 0.026),
		PadY:   int(float64(sv.Height) * 0.02),
	}
}

// Size converts fractions of the display into pixels.
func (l Layout) Size(fw, fh float64) (int, int) {
	return int(float64(l.Width) * fw), int(float64(l.Height) * fh)
}

// CenteredAt returns a horizontally centred rectangle whose top edge is top.
func (l Layout) CenteredAt(fw, fh float64, top int) image.Rectangle {
	w, h := l.Size(fw, fh)
	x := l.Width/2 - w/2
	return image.Rect(x, top, x+w, top+h)
}

// BottomLeft returns a rectangle in the bottom-left corner, inside the margins.
func (l Layout) BottomLeft(fw, fh float64) image.Rectangle {
	w, h := l.Size(fw, fh)
	y := l.Height - l.PadY - h
	return image.Rect(l.PadX, y, l.PadX+w, y+h)
}

// BottomRight returns a rectangle in the bottom-right corner, inside the margins.
func (l Layout) BottomRight(fw, fh float64) image.Rectangle {
	w, h := l.Size(fw, fh)
	x := l.Width - l.PadX - w
	y := l.Height - l.PadY - h
	return image.Rect(x, y, x+w, y+h)
}

// TopLeft returns a rectangle in the top-left corner, inside the margins.
func (l Layout) TopLeft(fw, fh float64) image.Rectangle {
	w, h := l.Size(fw, fh)
	return image.Rect(l.PadX, l.PadY, l.PadX+w, l.PadY+h)
}

// TopRight returns a rectangle in the top-right corner, inside the margins.
func (l Layout) TopRight(fw, fh float64) image.Rectangle {
	w, h := l.Size(fw, fh)
	x := l.Width - l.PadX - w
	return image.Rect(x, l.PadY, x+w, l.PadY+h)
}
