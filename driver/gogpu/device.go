// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"context"
	"errors"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/internal/ggdraw"
)

var (
	errNoFrame    = errors.New("no frame in progress")
	errNoProvider = errors.New("no GPU device yet")
)

// Device is a gogpu window. Drawing is only possible inside Pace, while
// gogpu renders a frame.
type Device struct {
	drv *Driver
	app *gogpu.App

	mu        sync.Mutex
	w, h      int
	events    []lessons.Event
	canvas    *ggcanvas.Canvas
	dc        *gg.Context
	presented int
	closed    bool
}

func newDevice(drv *Driver, app *gogpu.App, cfg lessons.Config) *Device {
	d := &Device{drv: drv, app: app, w: cfg.Width, h: cfg.Height}
	src := app.EventSource()
	src.OnKeyPress(func(k gpucontext.Key, _ gpucontext.Modifiers) {
		d.push(lessons.Event{Kind: lessons.KeyDown, Key: key(k)})
	})
	src.OnMousePress(func(gpucontext.MouseButton, float64, float64) {
		d.push(lessons.Event{Kind: lessons.MouseButtonDown})
	})
	app.OnClose(func() {
		d.push(lessons.Event{Kind: lessons.Quit})
		// Drain the GPU queue while the device is still alive.
		gg.CloseAccelerator()
	})
	return d
}

func key(k gpucontext.Key) lessons.Key {
	switch k {
	case gpucontext.Key1:
		return lessons.Key1
	case gpucontext.Key2:
		return lessons.Key2
	case gpucontext.Key3:
		return lessons.Key3
	case gpucontext.Key4:
		return lessons.Key4
	case gpucontext.KeyEscape:
		return lessons.KeyEscape
	}
	return lessons.KeyOther
}

func (d *Device) push(ev lessons.Event) {
	d.mu.Lock()
	d.events = append(d.events, ev)
	d.mu.Unlock()
}

// PollEvent implements lessons.Device.
func (d *Device) PollEvent() (lessons.Event, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.events) == 0 {
		return lessons.Event{}, false
	}
	ev := d.events[0]
	d.events = d.events[1:]
	return ev, true
}

// Size implements lessons.Device.
func (d *Device) Size() (int, int) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.w, d.h
}

// target returns the context of the frame being drawn.
func (d *Device) target(op string) (*gg.Context, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil, lessons.WrapOp(op, lessons.ErrClosed)
	}
	if d.dc == nil {
		return nil, lessons.WrapOp(op, errNoFrame)
	}
	return d.dc, nil
}

func (d *Device) setTarget(dc *gg.Context) {
	d.mu.Lock()
	d.dc = dc
	d.mu.Unlock()
}

// Clear implements lessons.Device.
func (d *Device) Clear() error {
	dc, err := d.target("RenderClear")
	if err != nil {
		return err
	}
	dc.ClearWithColor(gg.Black)
	return nil
}

// Copy implements lessons.Device.
func (d *Device) Copy(tex lessons.Texture, src, dst *lessons.Rect) error {
	dc, err := d.target("RenderCopy")
	if err != nil {
		return err
	}
	return ggdraw.Copy(dc, tex, src, dst)
}

// Present implements lessons.Device. The canvas reaches the window once
// the frame callback returns; Present only counts the frame.
func (d *Device) Present() error {
	if _, err := d.target("RenderPresent"); err != nil {
		return err
	}
	d.mu.Lock()
	d.presented++
	d.mu.Unlock()
	return nil
}

// Presented returns the number of frames presented so far.
func (d *Device) Presented() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presented
}

// Pace implements lessons.Pacer. It runs the gogpu main loop, calling
// frame from every draw callback until frame asks to stop, fails, or
// ctx is cancelled, or the window is closed.
func (d *Device) Pace(ctx context.Context, frame func() (bool, error)) error {
	var (
		frameErr error
		finished bool
	)
	finish := func(err error) {
		frameErr = errors.Join(frameErr, err)
		finished = true
		d.app.Quit()
	}

	d.app.OnDraw(func(gc *gogpu.Context) {
		if finished {
			return
		}
		if ctx.Err() != nil {
			lessons.Logger().Debug("gogpu: cancelled", "cause", context.Cause(ctx))
			finish(nil)
			return
		}
		w, h := gc.Width(), gc.Height()
		if w <= 0 || h <= 0 {
			return
		}
		if err := d.ensureCanvas(w, h); err != nil {
			finish(err)
			return
		}

		var stop bool
		var ferr error
		err := d.canvas.Draw(func(cc *gg.Context) {
			d.setTarget(cc)
			defer d.setTarget(nil)
			stop, ferr = frame()
		})
		if err != nil {
			finish(errors.Join(ferr, lessons.WrapOp("Canvas.Draw", err)))
			return
		}
		sw, sh := gc.SurfaceSize()
		if err := d.canvas.RenderDirect(gc.RenderTarget().SurfaceView(), sw, sh); err != nil {
			ferr = errors.Join(ferr, lessons.WrapOp("RenderDirect", err))
		}
		if stop || ferr != nil {
			finish(ferr)
		}
	})

	runErr := d.app.Run()
	return errors.Join(frameErr, lessons.WrapOp("gogpu.Run", runErr))
}

// ensureCanvas creates the canvas on the first frame and follows window
// resizes afterwards.
func (d *Device) ensureCanvas(w, h int) error {
	if d.canvas == nil {
		provider := d.app.GPUContextProvider()
		if provider == nil {
			return lessons.WrapOp("ggcanvas.New", errNoProvider)
		}
		c, err := ggcanvas.New(provider, w, h)
		if err != nil {
			return lessons.WrapOp("ggcanvas.New", err)
		}
		d.canvas = c
		lessons.Logger().Debug("gogpu: canvas", "width", w, "height", h)
	} else if cw, ch := d.canvas.Size(); cw != w || ch != h {
		if err := d.canvas.Resize(w, h); err != nil {
			return lessons.WrapOp("Canvas.Resize", err)
		}
	}
	d.mu.Lock()
	d.w, d.h = w, h
	d.mu.Unlock()
	return nil
}

// LoadBMP implements lessons.Device.
func (d *Device) LoadBMP(path string) (lessons.Texture, error) {
	tex, err := ggdraw.LoadBMP(path)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// LoadTexture implements lessons.Device.
func (d *Device) LoadTexture(path string) (lessons.Texture, error) {
	if !d.drv.has(lessons.Image) {
		return nil, lessons.WrapOp("LoadTexture", lessons.ErrSubsystem)
	}
	tex, err := ggdraw.LoadImage(path)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// OpenFont implements lessons.Device.
func (d *Device) OpenFont(path string, size int) (lessons.TextFont, error) {
	if !d.drv.has(lessons.Font) {
		return nil, lessons.WrapOp("TTF_OpenFont", lessons.ErrSubsystem)
	}
	font, err := ggdraw.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return font, nil
}

// RenderText implements lessons.Device.
func (d *Device) RenderText(font lessons.TextFont, msg string, col lessons.Color) (lessons.Texture, error) {
	tex, err := ggdraw.RenderText(font, msg, col)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// Close implements lessons.Device. It releases the canvas; the window
// itself goes away when the gogpu main loop returns.
func (d *Device) Close() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	c := d.canvas
	d.canvas = nil
	d.mu.Unlock()

	lessons.Logger().Debug("gogpu: close", "presented", d.Presented())
	if c == nil {
		return nil
	}
	return lessons.WrapOp("Canvas.Close", c.Close())
}
