// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sdl

import (
	"runtime"
	"sync"

	"github.com/gogpu/lessons"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

func init() {
	runtime.LockOSThread()
}

// Driver wraps the SDL libraries.
type Driver struct {
	mu     sync.Mutex
	inited lessons.Subsystem
}

// New returns a driver with nothing initialized.
func New() *Driver {
	return &Driver{}
}

// Name implements lessons.Driver.
func (d *Driver) Name() string { return "sdl" }

// Init implements lessons.Driver. Subsystems already initialized are
// skipped; on failure the ones started by this call are shut down again.
func (d *Driver) Init(s lessons.Subsystem) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var started lessons.Subsystem
	fail := func(op string, err error) error {
		d.quit(started)
		lessons.Logger().Error("sdl: init", "op", op, "err", err)
		return lessons.WrapOp(op, err)
	}

	if s.Has(lessons.Video) && !d.inited.Has(lessons.Video) {
		if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
			return fail("SDL_Init", err)
		}
		started |= lessons.Video
	}
	if s.Has(lessons.Image) && !d.inited.Has(lessons.Image) {
		if err := img.Init(img.INIT_PNG); err != nil {
			return fail("IMG_Init", err)
		}
		started |= lessons.Image
	}
	if s.Has(lessons.Font) && !d.inited.Has(lessons.Font) {
		if err := ttf.Init(); err != nil {
			return fail("TTF_Init", err)
		}
		started |= lessons.Font
	}
	d.inited |= started
	lessons.Logger().Debug("sdl: init", "subsystems", started)
	return nil
}

// Quit implements lessons.Driver.
func (d *Driver) Quit() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.quit(d.inited)
	d.inited = 0
}

// quit shuts s down in reverse order of Init.
func (d *Driver) quit(s lessons.Subsystem) {
	if s.Has(lessons.Font) {
		ttf.Quit()
	}
	if s.Has(lessons.Image) {
		img.Quit()
	}
	if s.Has(lessons.Video) {
		sdl.Quit()
	}
	if s != 0 {
		lessons.Logger().Debug("sdl: quit", "subsystems", s)
	}
}

func (d *Driver) has(s lessons.Subsystem) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.inited.Has(s)
}

// BasePath implements lessons.Driver.
func (d *Driver) BasePath() (string, error) {
	base := sdl.GetBasePath()
	if base == "" {
		return "", lessons.WrapOp("SDL_GetBasePath", sdlError(lessons.ErrNoBasePath))
	}
	return base, nil
}

// Open implements lessons.Driver.
func (d *Driver) Open(cfg lessons.Config) (lessons.Device, error) {
	if !d.has(lessons.Video) {
		return nil, lessons.WrapOp("CreateWindow", lessons.ErrSubsystem)
	}
	win, err := sdl.CreateWindow(cfg.Title, windowPos(cfg.X), windowPos(cfg.Y),
		int32(cfg.Width), int32(cfg.Height), uint32(sdl.WINDOW_SHOWN))
	if err != nil {
		return nil, lessons.WrapOp("CreateWindow", err)
	}
	ren, err := sdl.CreateRenderer(win, -1, uint32(sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		_ = win.Destroy()
		return nil, lessons.WrapOp("CreateRenderer", err)
	}
	lessons.Logger().Debug("sdl: open", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height)
	return &Device{drv: d, win: win, ren: ren, w: cfg.Width, h: cfg.Height}, nil
}

func windowPos(v int) int32 {
	if v == lessons.WindowPosCentered {
		return int32(sdl.WINDOWPOS_CENTERED)
	}
	return int32(v)
}

// sdlError prefers SDL's own message and falls back to err.
func sdlError(err error) error {
	if e := sdl.GetError(); e != nil {
		return e
	}
	return err
}
