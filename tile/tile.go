// Package tile lays out repeated background tiles and sprite-sheet clips.
package tile

import (
	"iter"

	"github.com/gogpu/lessons"
)

// Grid yields the destination rectangles of tiles covering a width x
// height target. Rows start at offY and columns at offX, stepping by the
// tile size until the target edge is passed. Offsets are usually zero or
// negative so that scrolled tiles still cover the top-left corner.
// A non-positive tile size yields nothing.
func Grid(offX, offY, tileW, tileH, width, height int) iter.Seq[lessons.Rect] {
	return func(yield func(lessons.Rect) bool) {
		if tileW <= 0 || tileH <= 0 {
			return
		}
		for y := offY; y < height; y += tileH {
			for x := offX; x < width; x += tileW {
				if !yield(lessons.Rect{X: x, Y: y, W: tileW, H: tileH}) {
					return
				}
			}
		}
	}
}

// Count returns how many tiles Grid yields for the same arguments.
func Count(offX, offY, tileW, tileH, width, height int) int {
	if tileW <= 0 || tileH <= 0 {
		return 0
	}
	return span(offX, tileW, width) * span(offY, tileH, height)
}

func span(off, step, limit int) int {
	if off >= limit {
		return 0
	}
	return (limit - off + step - 1) / step
}

// Fill draws tex once per grid cell.
func Fill(dev lessons.Device, tex lessons.Texture, offX, offY, tileW, tileH int) error {
	w, h := dev.Size()
	for dst := range Grid(offX, offY, tileW, tileH, w, h) {
		if err := dev.Copy(tex, nil, &dst); err != nil {
			return err
		}
	}
	return nil
}
