package viewport

import (
	"image"
	"math"
)

// Scale returns the pixels-per-world-unit factors for the pair.
func Scale(lv *LayerViewport, sv ScreenViewport) (sx, sy float64) {
	return float64(sv.Width) / lv.Width, float64(sv.Height) / lv.Height
}

// ToScreen projects a world point into screen pixels.
// The transform is derived from the current layer position on every call.
func ToScreen(lv *LayerViewport, sv ScreenViewport, wx, wy float64) (float64, float64) {
	sx, sy := Scale(lv, sv)
	return float64(sv.Left) + (wx-(lv.X-lv.Width/2))*sx,
		float64(sv.Top) + (wy-(lv.Y-lv.Height/2))*sy
}

// ToLayer is the inverse of ToScreen. It is used to hit-test touches against
// world objects.
func ToLayer(lv *LayerViewport, sv ScreenViewport, px, py float64) (float64, float64) {
	sx, sy := Scale(lv, sv)
	return (px-float64(sv.Left))/sx + (lv.X - lv.Width/2),
		(py-float64(sv.Top))/sy + (lv.Y - lv.Height/2)
}

// RectToScreen projects a world rectangle into a pixel rectangle, rounding
// each edge to the nearest pixel.
func RectToScreen(lv *LayerViewport, sv ScreenViewport, r Rect) image.Rectangle {
	x0, y0 := ToScreen(lv, sv, r.Left(), r.Top())
	x1, y1 := ToScreen(lv, sv, r.Right(), r.Bottom())
	return image.Rect(round(x0), round(y0), round(x1), round(y1))
}

// Clip computes what part of an object is visible through the layer.
//
// bound is the object's world rectangle and bw, bh the pixel size of the
// bitmap stretched over it. src is the visible part of the bitmap and dst
// where it lands on screen. ok is false when nothing is visible.
func Clip(bound Rect, bw, bh int, lv *LayerViewport, sv ScreenViewport) (src, dst image.Rectangle, ok bool) {
	if !(bound.Width > 0) || !(bound.Height > 0) {
		return image.Rectangle{}, image.Rectangle{}, false
	}
	visible, ok := bound.Intersect(lv.Bounds())
	if !ok {
		return image.Rectangle{}, image.Rectangle{}, false
	}

	px := float64(bw) / bound.Width
	py := float64(bh) / bound.Height
	src = image.Rect(
		round((visible.Left()-bound.Left())*px),
		round((visible.Top()-bound.Top())*py),
		round((visible.Right()-bound.Left())*px),
		round((visible.Bottom()-bound.Top())*py),
	)
	dst = RectToScreen(lv, sv, visible)
	if src.Empty() || dst.Empty() {
		return image.Rectangle{}, image.Rectangle{}, false
	}
	return src, dst, true
}

func round(v float64) int {
	return int(math.Round(v))
}
