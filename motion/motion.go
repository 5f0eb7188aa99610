// Package motion computes per-frame sprite positions and sizes.
//
// All functions are pure: the same frame number always yields the same
// geometry, which keeps animations reproducible across drivers. Results
// are truncated toward zero when converted back to pixels.
package motion

import (
	"math"

	"github.com/gogpu/lessons"
)

// Center returns the offset that centers inner within outer.
func Center(outer, inner int) int {
	return (outer - inner) / 2
}

// Orbit moves a point around (cx, cy) on a Lissajous path: the x swing
// has period 4*pi*fps frames, the y swing 2*pi*fps frames, and both reach
// half of the center coordinate in either direction. An fps below one
// is treated as one.
func Orbit(frame, fps, cx, cy int) (x, y int) {
	fps = max(fps, 1)
	t := float64(frame)
	x = int(float64(cx) * (1.0 + 0.5*math.Cos(t/float64(2*fps))))
	y = int(float64(cy) * (1.0 + 0.5*math.Sin(t/float64(fps))))
	return x, y
}

// Pulse scales w and h by 1+amp*cos and 1+amp*sin of frame/(fps/2).
// fps/2 is an integer division.
func Pulse(w, h, frame, fps int, amp float64) (int, int) {
	half := fps / 2
	if half == 0 {
		half = 1
	}
	t := float64(frame) / float64(half)
	return int(float64(w) * (1.0 + amp*math.Cos(t))),
		int(float64(h) * (1.0 + amp*math.Sin(t)))
}

// Scroll returns a tile offset that drifts by one pixel every div frames.
// The result stays within one tile to the left (or above) of the
// nominal origin for positive frames, and within two tiles when the
// drift runs backwards.
func Scroll(frame, div, tile int) int {
	if div == 0 || tile <= 0 {
		return -tile
	}
	return (frame/div)%tile - tile
}

// Sway returns a tile offset that oscillates with fn(frame/period).
func Sway(frame, period int, fn func(float64) float64, tile int) int {
	if period == 0 {
		return -tile
	}
	return int(fn(float64(frame)/float64(period))*float64(tile) - float64(tile))
}

// Sprite places a w x h sprite for the given frame: the size pulses
// with amplitude amp, the pulsed sprite is centered in the window and
// the center orbits around the window middle.
func Sprite(frame, fps, winW, winH, w, h int, amp float64) lessons.Rect {
	pw, ph := Pulse(w, h, frame, fps, amp)
	x, y := Orbit(frame, fps, Center(winW, pw), Center(winH, ph))
	return lessons.Rect{X: x, Y: y, W: pw, H: ph}
}

// Still places a w x h sprite of fixed size on the orbit path.
func Still(frame, fps, winW, winH, w, h int) lessons.Rect {
	x, y := Orbit(frame, fps, Center(winW, w), Center(winH, h))
	return lessons.Rect{X: x, Y: y, W: w, H: h}
}
