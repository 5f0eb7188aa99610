package lessons

import "image"

// Rect is an integer rectangle in window or texture pixels.
type Rect struct {
	X, Y int
	W, H int
}

// R is shorthand for Rect{x, y, w, h}.
func R(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Empty reports whether r covers no pixels.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersect returns the largest rectangle contained by both r and s.
// The result is the zero Rect when they do not overlap.
func (r Rect) Intersect(s Rect) Rect {
	x0 := max(r.X, s.X)
	y0 := max(r.Y, s.Y)
	x1 := min(r.X+r.W, s.X+s.W)
	y1 := min(r.Y+r.H, s.Y+s.H)
	if x1 <= x0 || y1 <= y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Image converts r to an image.Rectangle.
func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Color is an 8-bit RGBA color, alpha not premultiplied.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors.
var (
	White = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Black = Color{0x00, 0x00, 0x00, 0xFF}
	Navy  = Color{0x00, 0x00, 0x66, 0xFF}
)

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xFFFF
	g = uint32(c.G) * 0x101 * a / 0xFFFF
	b = uint32(c.B) * 0x101 * a / 0xFFFF
	return r, g, b, a
}
