package lessons

import (
	"errors"
	"sync"
)

// fakeDriver records calls; it backs the tests that cannot use a real
// driver package without an import cycle.
type fakeDriver struct {
	mu       sync.Mutex
	name     string
	base     string
	baseErr  error
	initErr  error
	openErr  error
	inited   Subsystem
	calls    []string
	basePath int
	dev      *fakeDevice
}

func (d *fakeDriver) record(s string) {
	d.mu.Lock()
	d.calls = append(d.calls, s)
	d.mu.Unlock()
}

func (d *fakeDriver) Name() string { return d.name }

func (d *fakeDriver) Init(s Subsystem) error {
	d.record("init " + s.String())
	if d.initErr != nil {
		return d.initErr
	}
	d.inited |= s
	return nil
}

func (d *fakeDriver) Quit() {
	d.record("quit")
	d.inited = 0
}

func (d *fakeDriver) BasePath() (string, error) {
	d.basePath++
	return d.base, d.baseErr
}

func (d *fakeDriver) Open(cfg Config) (Device, error) {
	d.record("open")
	if d.openErr != nil {
		return nil, d.openErr
	}
	d.dev = &fakeDevice{drv: d, w: cfg.Width, h: cfg.Height}
	return d.dev, nil
}

// fakeDevice counts frames and replays queued events.
type fakeDevice struct {
	drv      *fakeDriver
	w, h     int
	events   []Event
	clears   int
	presents int
	closed   bool
	clearErr error
}

func (d *fakeDevice) Size() (int, int) { return d.w, d.h }

func (d *fakeDevice) Clear() error {
	d.clears++
	return d.clearErr
}

func (d *fakeDevice) Copy(Texture, *Rect, *Rect) error { return nil }

func (d *fakeDevice) Present() error {
	d.presents++
	return nil
}

func (d *fakeDevice) PollEvent() (Event, bool) {
	if len(d.events) == 0 {
		return Event{}, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true
}

var errFakeUnsupported = errors.New("unsupported")

func (d *fakeDevice) LoadBMP(string) (Texture, error)     { return nil, errFakeUnsupported }
func (d *fakeDevice) LoadTexture(string) (Texture, error) { return nil, errFakeUnsupported }
func (d *fakeDevice) OpenFont(string, int) (TextFont, error) {
	return nil, errFakeUnsupported
}
func (d *fakeDevice) RenderText(TextFont, string, Color) (Texture, error) {
	return nil, errFakeUnsupported
}

func (d *fakeDevice) Close() error {
	if d.drv != nil {
		d.drv.record("close device")
	}
	d.closed = true
	return nil
}

// fakeScene records frames and ends on the first event of kind doneOn.
type fakeScene struct {
	drv      *fakeDriver
	requires Subsystem
	loadErr  error
	drawErr  error
	doneOn   EventKind
	seen     []Event
	drawn    []int
	res      string
	closed   int
}

func (s *fakeScene) Requires() Subsystem { return s.requires }

func (s *fakeScene) Load(_ Device, res string) error {
	s.res = res
	if s.drv != nil {
		s.drv.record("load")
	}
	return s.loadErr
}

func (s *fakeScene) HandleEvent(ev Event) bool {
	s.seen = append(s.seen, ev)
	return s.doneOn != Other && ev.Kind == s.doneOn
}

func (s *fakeScene) Draw(_ Device, frame int) error {
	s.drawn = append(s.drawn, frame)
	return s.drawErr
}

func (s *fakeScene) Close() error {
	s.closed++
	if s.drv != nil {
		s.drv.record("close scene")
	}
	return nil
}
