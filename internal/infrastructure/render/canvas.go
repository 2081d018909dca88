// Package render implements the drawing sink on top of ebiten.
package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/younwookim/spacewars/internal/domain/graphics"
)

var defaultFace text.Face = text.NewGoXFace(basicfont.Face7x13)

// Canvas draws onto an ebiten image. It implements graphics.Sink.
type Canvas struct {
	dst  *ebiten.Image
	face text.Face
}

var _ graphics.Sink = (*Canvas)(nil)

// NewCanvas wraps dst, typically the screen image handed to ebiten's Draw.
func NewCanvas(dst *ebiten.Image) *Canvas {
	return &Canvas{dst: dst, face: defaultFace}
}

// SetFace replaces the face used by DrawText.
func (c *Canvas) SetFace(face text.Face) {
	if face != nil {
		c.face = face
	}
}

// DrawBitmap stretches src of img over dst.
func (c *Canvas) DrawBitmap(img *ebiten.Image, src *image.Rectangle, dst image.Rectangle, paint *graphics.Paint) {
	if img == nil {
		return
	}
	region := img
	if src != nil {
		region = img.SubImage(*src).(*ebiten.Image)
	}
	rb := region.Bounds()
	if rb.Empty() || dst.Empty() {
		return
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM = StretchGeoM(rb, dst)
	if paint != nil {
		if paint.Alpha > 0 {
			op.ColorScale.ScaleAlpha(paint.Alpha)
		}
		if paint.Tint != nil {
			op.ColorScale.ScaleWithColor(paint.Tint)
		}
		if paint.Smooth {
			op.Filter = ebiten.FilterLinear
		}
	}
	c.dst.DrawImage(region, op)
}

// DrawText draws s with its top-left corner at (x, y).
func (c *Canvas) DrawText(s string, x, y int, clr color.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(c.dst, s, c.face, op)
}

// Fill clears the whole surface.
func (c *Canvas) Fill(clr color.Color) {
	c.dst.Fill(clr)
}

// Size returns the surface size in pixels.
func (c *Canvas) Size() (int, int) {
	b := c.dst.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the wrapped image.
func (c *Canvas) Image() *ebiten.Image {
	return c.dst
}

// StretchGeoM maps a source region of size src onto dst.
func StretchGeoM(src, dst image.Rectangle) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(float64(dst.Dx())/float64(src.Dx()), float64(dst.Dy())/float64(src.Dy()))
	g.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	return g
}
