package lessons

import (
	"image"
	"testing"
)

func TestRectIntersect(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{"inside", R(10, 10, 5, 5), R(0, 0, 100, 100), R(10, 10, 5, 5)},
		{"overlap", R(-10, -10, 40, 40), R(0, 0, 20, 20), R(0, 0, 20, 20)},
		{"corner", R(90, 90, 20, 20), R(0, 0, 100, 100), R(90, 90, 10, 10)},
		{"touching", R(100, 0, 10, 10), R(0, 0, 100, 100), Rect{}},
		{"apart", R(200, 200, 10, 10), R(0, 0, 100, 100), Rect{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersect(tt.b); got != tt.want {
				t.Errorf("Intersect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestRectEmpty(t *testing.T) {
	if !(Rect{W: 0, H: 5}).Empty() || !(Rect{W: 5, H: -1}).Empty() {
		t.Error("degenerate rect not empty")
	}
	if R(0, 0, 1, 1).Empty() {
		t.Error("1x1 rect is empty")
	}
}

func TestRectImage(t *testing.T) {
	if got := R(-5, 10, 20, 30).Image(); got != image.Rect(-5, 10, 15, 40) {
		t.Errorf("Image() = %v", got)
	}
}

func TestColorRGBA(t *testing.T) {
	r, g, b, a := Navy.RGBA()
	if r != 0 || g != 0 || b != 0x6666 || a != 0xFFFF {
		t.Errorf("Navy.RGBA() = %#x %#x %#x %#x", r, g, b, a)
	}
	r, _, _, a = Color{R: 0xFF, A: 0x80}.RGBA()
	if a != 0x8080 || r != 0x8080 {
		t.Errorf("half transparent red = %#x, %#x, want premultiplied 0x8080", r, a)
	}
}
