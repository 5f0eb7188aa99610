// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"fmt"
	"sync"

	_ "github.com/gogpu/gg/gpu" // GPU accelerator for gg drawing
	"github.com/gogpu/gogpu"
	"github.com/gogpu/lessons"
)

// Driver opens gogpu windows.
type Driver struct {
	mu     sync.Mutex
	inited lessons.Subsystem
}

// New returns a driver with nothing initialized.
func New() *Driver {
	return &Driver{}
}

// Name implements lessons.Driver.
func (d *Driver) Name() string { return "gogpu" }

// Init implements lessons.Driver. The GPU device is created lazily by
// gogpu when the window first draws, and images and fonts are decoded
// in Go, so Init only records what was asked for.
func (d *Driver) Init(s lessons.Subsystem) error {
	d.mu.Lock()
	d.inited |= s
	d.mu.Unlock()
	lessons.Logger().Debug("gogpu: init", "subsystems", s)
	return nil
}

// Quit implements lessons.Driver.
func (d *Driver) Quit() {
	d.mu.Lock()
	d.inited = 0
	d.mu.Unlock()
	lessons.Logger().Debug("gogpu: quit")
}

func (d *Driver) has(s lessons.Subsystem) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inited.Has(s)
}

// BasePath implements lessons.Driver.
func (d *Driver) BasePath() (string, error) {
	return lessons.ExecutableDir()
}

// Open implements lessons.Driver. The window appears when the loop
// starts pacing frames.
func (d *Driver) Open(cfg lessons.Config) (lessons.Device, error) {
	if !d.has(lessons.Video) {
		return nil, lessons.WrapOp("CreateWindow", lessons.ErrSubsystem)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, lessons.WrapOp("CreateWindow",
			fmt.Errorf("%w: window size %dx%d", lessons.ErrInvalidConfig, cfg.Width, cfg.Height))
	}
	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(cfg.Title).
		WithSize(cfg.Width, cfg.Height).
		WithContinuousRender(true))
	lessons.Logger().Debug("gogpu: open", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return newDevice(d, app, cfg), nil
}
