// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"fmt"
	"image"
	"image/draw"
	"os"
	"path/filepath"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/internal/ggdraw"
)

// Device renders into an off-screen gg.Context.
type Device struct {
	drv *Driver
	cfg lessons.Config
	dc  *gg.Context

	mu        sync.Mutex
	presented int
	last      *image.RGBA
	closed    bool
}

// Size implements lessons.Device.
func (d *Device) Size() (int, int) {
	return d.cfg.Width, d.cfg.Height
}

// Clear implements lessons.Device.
func (d *Device) Clear() error {
	if d.isClosed() {
		return lessons.WrapOp("RenderClear", lessons.ErrClosed)
	}
	d.dc.ClearWithColor(gg.Black)
	return nil
}

// Copy implements lessons.Device.
func (d *Device) Copy(tex lessons.Texture, src, dst *lessons.Rect) error {
	if d.isClosed() {
		return lessons.WrapOp("RenderCopy", lessons.ErrClosed)
	}
	return ggdraw.Copy(d.dc, tex, src, dst)
}

// Present implements lessons.Device. Every SaveEvery-th frame, starting
// with the first, is written to OutDir when one is configured.
func (d *Device) Present() error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return lessons.WrapOp("RenderPresent", lessons.ErrClosed)
	}
	n := d.presented
	d.presented++
	d.last = toRGBA(d.dc.Image())
	d.mu.Unlock()

	if d.cfg.OutDir == "" || d.cfg.SaveEvery <= 0 || n%d.cfg.SaveEvery != 0 {
		return nil
	}
	if err := os.MkdirAll(d.cfg.OutDir, 0o755); err != nil {
		return lessons.WrapOp("SavePNG", err)
	}
	path := filepath.Join(d.cfg.OutDir, fmt.Sprintf("frame-%05d.png", n))
	if err := d.dc.SavePNG(path); err != nil {
		return lessons.WrapOp("SavePNG", err)
	}
	lessons.Logger().Debug("soft: frame saved", "path", path)
	return nil
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	rgba := image.NewRGBA(img.Bounds())
	draw.Draw(rgba, rgba.Bounds(), img, img.Bounds().Min, draw.Src)
	return rgba
}

// Presented returns the number of frames presented so far.
func (d *Device) Presented() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.presented
}

// Snapshot returns a copy of the last presented frame, or nil before
// the first Present. It stays available after Close.
func (d *Device) Snapshot() *image.RGBA {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.last == nil {
		return nil
	}
	cp := *d.last
	cp.Pix = append([]uint8(nil), d.last.Pix...)
	return &cp
}

// PollEvent implements lessons.Device.
func (d *Device) PollEvent() (lessons.Event, bool) {
	return d.drv.poll(d.Presented())
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
	f, err := ggdraw.OpenFont(path, size)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// RenderText implements lessons.Device.
func (d *Device) RenderText(font lessons.TextFont, msg string, col lessons.Color) (lessons.Texture, error) {
	tex, err := ggdraw.RenderText(font, msg, col)
	if err != nil {
		return nil, err
	}
	return tex, nil
}

// Close implements lessons.Device.
func (d *Device) Close() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return nil
	}
	d.closed = true
	lessons.Logger().Debug("soft: close", "frames", d.presented)
	return d.dc.Close()
}

func (d *Device) isClosed() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.closed
}
