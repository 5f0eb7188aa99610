// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/lessons"
)

// Driver implements lessons.Driver without any display.
type Driver struct {
	mu     sync.Mutex
	inited lessons.Subsystem
	base   string
	queue  []scripted
	last   *Device
}

// scripted is an event held back until at frames were presented.
type scripted struct {
	at int
	ev lessons.Event
}

// Option configures a Driver.
type Option func(*Driver)

// WithBasePath fixes the directory BasePath reports. Without it the
// executable's directory is used.
func WithBasePath(dir string) Option {
	return func(d *Driver) {
		d.base = dir
	}
}

// WithEvents queues events delivered on the first poll.
func WithEvents(evs ...lessons.Event) Option {
	return func(d *Driver) {
		for _, ev := range evs {
			d.queue = append(d.queue, scripted{ev: ev})
		}
	}
}

// New returns a driver with nothing initialized.
func New(opts ...Option) *Driver {
	d := &Driver{}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Name implements lessons.Driver.
func (d *Driver) Name() string { return "soft" }

// Init implements lessons.Driver. All subsystems are available in
// software; Init only records which ones the caller asked for.
func (d *Driver) Init(s lessons.Subsystem) error {
	d.mu.Lock()
	d.inited |= s
	d.mu.Unlock()
	lessons.Logger().Debug("soft: init", "subsystems", s)
	return nil
}

// Quit implements lessons.Driver.
func (d *Driver) Quit() {
	d.mu.Lock()
	d.inited = 0
	d.mu.Unlock()
	lessons.Logger().Debug("soft: quit")
}

// Initialized returns the subsystems currently initialized.
func (d *Driver) Initialized() lessons.Subsystem {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inited
}

func (d *Driver) has(s lessons.Subsystem) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inited.Has(s)
}

// BasePath implements lessons.Driver.
func (d *Driver) BasePath() (string, error) {
	if d.base != "" {
		return d.base, nil
	}
	return lessons.ExecutableDir()
}

// Open implements lessons.Driver.
func (d *Driver) Open(cfg lessons.Config) (lessons.Device, error) {
	if !d.has(lessons.Video) {
		return nil, lessons.WrapOp("CreateWindow", lessons.ErrSubsystem)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, lessons.WrapOp("CreateWindow",
			fmt.Errorf("%w: window size %dx%d", lessons.ErrInvalidConfig, cfg.Width, cfg.Height))
	}
	dev := &Device{
		drv: d,
		cfg: cfg,
		dc:  gg.NewContext(cfg.Width, cfg.Height),
	}
	d.mu.Lock()
	d.last = dev
	d.mu.Unlock()
	lessons.Logger().Debug("soft: open", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return dev, nil
}

// Device returns the most recently opened device, or nil.
func (d *Driver) Device() *Device {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.last
}

// Push queues ev for the next poll.
func (d *Driver) Push(ev lessons.Event) {
	d.PushAt(0, ev)
}

// PushAt queues ev to be delivered once frame frames have been presented.
func (d *Driver) PushAt(frame int, ev lessons.Event) {
	d.mu.Lock()
	d.queue = append(d.queue, scripted{at: frame, ev: ev})
	d.mu.Unlock()
}

// poll removes the oldest event that is due after presented frames.
func (d *Driver) poll(presented int) (lessons.Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for i, s := range d.queue {
		if s.at <= presented {
			d.queue = append(d.queue[:i], d.queue[i+1:]...)
			return s.ev, true
		}
	}
	return lessons.Event{}, false
}
