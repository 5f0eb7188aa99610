package tile

import (
	"errors"
	"slices"
	"testing"

	"github.com/gogpu/lessons"
)

func TestGridCoversTarget(t *testing.T) {
	tests := []struct {
		name         string
		offX, offY   int
		tileW, tileH int
	}{
		{"origin", 0, 0, 40, 40},
		{"scrolled", -35, -40, 40, 40},
		{"two tiles back", -79, -41, 40, 40},
		{"native bitmap", 0, 0, 256, 256},
		{"wide tiles", -10, 0, 300, 32},
	}
	const w, h = 640, 480
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			covered := make([]bool, w*h)
			n := 0
			for r := range Grid(tt.offX, tt.offY, tt.tileW, tt.tileH, w, h) {
				n++
				vis := r.Intersect(lessons.Rect{W: w, H: h})
				for y := vis.Y; y < vis.Y+vis.H; y++ {
					for x := vis.X; x < vis.X+vis.W; x++ {
						covered[y*w+x] = true
					}
				}
			}
			if i := slices.Index(covered, false); i >= 0 {
				t.Fatalf("pixel (%d, %d) not covered", i%w, i/w)
			}
			if want := Count(tt.offX, tt.offY, tt.tileW, tt.tileH, w, h); n != want {
				t.Errorf("Grid yielded %d tiles, Count = %d", n, want)
			}
		})
	}
}

func TestGridOrder(t *testing.T) {
	got := slices.Collect(Grid(-5, 0, 10, 10, 15, 15))
	want := []lessons.Rect{
		{X: -5, Y: 0, W: 10, H: 10},
		{X: 5, Y: 0, W: 10, H: 10},
		{X: -5, Y: 10, W: 10, H: 10},
		{X: 5, Y: 10, W: 10, H: 10},
	}
	if !slices.Equal(got, want) {
		t.Errorf("Grid() = %v, want %v", got, want)
	}
}

func TestGridDegenerate(t *testing.T) {
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		for range Grid(0, 0, size[0], size[1], 640, 480) {
			t.Fatalf("Grid with tile %v yielded a tile", size)
		}
		if n := Count(0, 0, size[0], size[1], 640, 480); n != 0 {
			t.Errorf("Count with tile %v = %d, want 0", size, n)
		}
	}
}

func TestGridEarlyStop(t *testing.T) {
	n := 0
	for range Grid(0, 0, 1, 1, 100, 100) {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Errorf("iterated %d times, want 3", n)
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		offX, offY, want int
	}{
		{0, 0, 192},
		{-40, -40, 221},
		{-35, -40, 221},
		{700, 0, 0},
	}
	for _, tt := range tests {
		if got := Count(tt.offX, tt.offY, 40, 40, 640, 480); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.offX, tt.offY, got, tt.want)
		}
	}
}

// copyRecorder is a Device that records Copy destinations.
type copyRecorder struct {
	lessons.Device
	w, h    int
	dsts    []lessons.Rect
	failAt  int
	copyErr error
}

func (r *copyRecorder) Size() (int, int) { return r.w, r.h }

func (r *copyRecorder) Copy(_ lessons.Texture, src, dst *lessons.Rect) error {
	if src != nil {
		return errors.New("unexpected source rect")
	}
	if r.failAt > 0 && len(r.dsts)+1 == r.failAt {
		return r.copyErr
	}
	r.dsts = append(r.dsts, *dst)
	return nil
}

func TestFill(t *testing.T) {
	dev := &copyRecorder{w: 100, h: 50}
	if err := Fill(dev, nil, -10, 0, 40, 25); err != nil {
		t.Fatalf("Fill() error = %v", err)
	}
	if want := Count(-10, 0, 40, 25, 100, 50); len(dev.dsts) != want {
		t.Fatalf("Fill() copied %d tiles, want %d", len(dev.dsts), want)
	}
	if first := dev.dsts[0]; first != (lessons.Rect{X: -10, Y: 0, W: 40, H: 25}) {
		t.Errorf("first tile = %+v", first)
	}
}

func TestFillStopsOnError(t *testing.T) {
	boom := errors.New("boom")
	dev := &copyRecorder{w: 100, h: 100, failAt: 2, copyErr: boom}
	if err := Fill(dev, nil, 0, 0, 10, 10); !errors.Is(err, boom) {
		t.Fatalf("Fill() error = %v, want %v", err, boom)
	}
	if len(dev.dsts) != 1 {
		t.Errorf("copied %d tiles before failing, want 1", len(dev.dsts))
	}
}
