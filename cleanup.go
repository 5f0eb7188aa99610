package lessons

import (
	"errors"
	"sync"
)

// Stack releases resources in reverse order of acquisition.
//
// Push a release function right after the matching create succeeds;
// a single deferred Close then unwinds exactly what was built, no
// matter which step failed:
//
//	var st lessons.Stack
//	defer st.Close()
//	if err := drv.Init(lessons.Video); err != nil {
//	    return err
//	}
//	st.Push("quit", func() error { drv.Quit(); return nil })
//
// The zero value is ready to use. Stack is safe for concurrent use.
type Stack struct {
	mu     sync.Mutex
	items  []stackItem
	closed bool
}

type stackItem struct {
	name    string
	release func() error
}

// Push records a release function. Pushing onto a closed stack runs the
// function immediately so the resource is not leaked.
func (s *Stack) Push(name string, release func() error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		if err := release(); err != nil {
			Logger().Warn("release failed", "resource", name, "err", err)
		}
		return
	}
	s.items = append(s.items, stackItem{name: name, release: release})
	s.mu.Unlock()
}

// PushCloser is Push for values with a Close method.
func (s *Stack) PushCloser(name string, c interface{ Close() error }) {
	s.Push(name, c.Close)
}

// Len returns the number of pending releases.
func (s *Stack) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Close runs every pending release, newest first. Failures are logged and
// joined; later releases still run. Close is idempotent.
func (s *Stack) Close() error {
	s.mu.Lock()
	items := s.items
	s.items = nil
	s.closed = true
	s.mu.Unlock()

	var errs []error
	for i := len(items) - 1; i >= 0; i-- {
		it := items[i]
		Logger().Debug("release", "resource", it.name)
		if err := it.release(); err != nil {
			Logger().Warn("release failed", "resource", it.name, "err", err)
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
