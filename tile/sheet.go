package tile

import (
	"sync"

	"github.com/gogpu/lessons"
)

// Sheet returns n square clips of the given size arranged in columns of
// two: clip i sits at column i/2, row i%2.
func Sheet(size, n int) []lessons.Rect {
	clips := make([]lessons.Rect, n)
	for i := range clips {
		clips[i] = lessons.Rect{
			X: i / 2 * size,
			Y: i % 2 * size,
			W: size,
			H: size,
		}
	}
	return clips
}

// Selector chooses which clip of a sheet to draw. Without input it cycles
// through the clips once per second; number keys pin a clip until any
// other key releases it.
//
// Selector is safe for concurrent use.
type Selector struct {
	mu       sync.Mutex
	n        int
	override bool
	index    int
}

// NewSelector returns a selector over n clips.
func NewSelector(n int) *Selector {
	return &Selector{n: n}
}

// Press applies a key press.
func (s *Selector) Press(k lessons.Key) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch k {
	case lessons.Key1, lessons.Key2, lessons.Key3, lessons.Key4:
		i := int(k - lessons.Key1)
		if i >= s.n {
			s.override = false
			return
		}
		s.override = true
		s.index = i
	default:
		s.override = false
	}
}

// Pinned reports whether a clip is pinned and which one.
func (s *Selector) Pinned() (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.index, s.override
}

// Index returns the clip to draw at frame.
func (s *Selector) Index(frame, fps int) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.override {
		return s.index
	}
	if s.n <= 0 || fps <= 0 {
		return 0
	}
	return (frame / fps) % s.n
}
