// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package sdl

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/internal/glyph"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

// Device is a window with an accelerated, vsynced renderer.
type Device struct {
	drv  *Driver
	win  *sdl.Window
	ren  *sdl.Renderer
	w, h int
}

// Size implements lessons.Device.
func (d *Device) Size() (int, int) {
	return d.w, d.h
}

// Clear implements lessons.Device.
func (d *Device) Clear() error {
	if d.ren == nil {
		return lessons.WrapOp("RenderClear", lessons.ErrClosed)
	}
	if err := d.ren.SetDrawColor(0, 0, 0, 255); err != nil {
		return lessons.WrapOp("SetRenderDrawColor", err)
	}
	return lessons.WrapOp("RenderClear", d.ren.Clear())
}

// Copy implements lessons.Device.
func (d *Device) Copy(tex lessons.Texture, src, dst *lessons.Rect) error {
	if d.ren == nil {
		return lessons.WrapOp("RenderCopy", lessons.ErrClosed)
	}
	t, ok := tex.(*Texture)
	if !ok {
		return lessons.WrapOp("RenderCopy", fmt.Errorf("foreign texture %T", tex))
	}
	if t.tex == nil {
		return lessons.WrapOp("RenderCopy", lessons.ErrClosed)
	}
	return lessons.WrapOp("RenderCopy", d.ren.Copy(t.tex, toRect(src), toRect(dst)))
}

func toRect(r *lessons.Rect) *sdl.Rect {
	if r == nil {
		return nil
	}
	return &sdl.Rect{X: int32(r.X), Y: int32(r.Y), W: int32(r.W), H: int32(r.H)}
}

// Present implements lessons.Device.
func (d *Device) Present() error {
	if d.ren == nil {
		return lessons.WrapOp("RenderPresent", lessons.ErrClosed)
	}
	d.ren.Present()
	return nil
}

// PollEvent implements lessons.Device.
func (d *Device) PollEvent() (lessons.Event, bool) {
	ev := sdl.PollEvent()
	if ev == nil {
		return lessons.Event{}, false
	}
	return translate(ev), true
}

// translate maps an SDL event onto the kinds the lessons distinguish.
func translate(ev sdl.Event) lessons.Event {
	switch e := ev.(type) {
	case *sdl.QuitEvent:
		return lessons.Event{Kind: lessons.Quit}
	case *sdl.KeyboardEvent:
		if e.Type != sdl.KEYDOWN {
			return lessons.Event{}
		}
		return lessons.Event{Kind: lessons.KeyDown, Key: key(e.Keysym.Sym)}
	case *sdl.MouseButtonEvent:
		if e.Type != sdl.MOUSEBUTTONDOWN {
			return lessons.Event{}
		}
		return lessons.Event{Kind: lessons.MouseButtonDown}
	}
	return lessons.Event{}
}

func key(k sdl.Keycode) lessons.Key {
	switch k {
	case sdl.K_1:
		return lessons.Key1
	case sdl.K_2:
		return lessons.Key2
	case sdl.K_3:
		return lessons.Key3
	case sdl.K_4:
		return lessons.Key4
	case sdl.K_ESCAPE:
		return lessons.KeyEscape
	}
	return lessons.KeyOther
}

// LoadBMP implements lessons.Device.
func (d *Device) LoadBMP(path string) (lessons.Texture, error) {
	surf, err := sdl.LoadBMP(path)
	if err != nil {
		return nil, lessons.WrapOp("LoadBMP", err)
	}
	defer surf.Free()
	return d.fromSurface(surf)
}

func (d *Device) fromSurface(surf *sdl.Surface) (lessons.Texture, error) {
	tex, err := d.ren.CreateTextureFromSurface(surf)
	if err != nil {
		return nil, lessons.WrapOp("CreateTextureFromSurface", err)
	}
	return newTexture(tex)
}

// LoadTexture implements lessons.Device.
func (d *Device) LoadTexture(path string) (lessons.Texture, error) {
	if !d.drv.has(lessons.Image) {
		return nil, lessons.WrapOp("LoadTexture", lessons.ErrSubsystem)
	}
	tex, err := img.LoadTexture(d.ren, path)
	if err != nil {
		return nil, lessons.WrapOp("LoadTexture", err)
	}
	return newTexture(tex)
}

// OpenFont implements lessons.Device. The font file is read twice: once
// by SDL_ttf and once to learn which characters it covers.
func (d *Device) OpenFont(path string, size int) (lessons.TextFont, error) {
	if !d.drv.has(lessons.Font) {
		return nil, lessons.WrapOp("TTF_OpenFont", lessons.ErrSubsystem)
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	cov, err := glyph.Parse(data)
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	f, err := ttf.OpenFont(path, size)
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	return &Font{font: f, cov: cov}, nil
}

// RenderText implements lessons.Device.
func (d *Device) RenderText(font lessons.TextFont, msg string, col lessons.Color) (lessons.Texture, error) {
	f, ok := font.(*Font)
	if !ok {
		return nil, lessons.WrapOp("TTF_RenderText", fmt.Errorf("foreign font %T", font))
	}
	if f.font == nil {
		return nil, lessons.WrapOp("TTF_RenderText", lessons.ErrClosed)
	}
	msg = glyph.Fold(msg, f.cov.Has)
	surf, err := f.font.RenderUTF8Blended(msg, sdl.Color{R: col.R, G: col.G, B: col.B, A: col.A})
	if err != nil {
		return nil, lessons.WrapOp("TTF_RenderText", err)
	}
	defer surf.Free()
	return d.fromSurface(surf)
}

// Close implements lessons.Device.
func (d *Device) Close() error {
	if d.ren == nil {
		return nil
	}
	errRen := d.ren.Destroy()
	errWin := d.win.Destroy()
	d.ren, d.win = nil, nil
	lessons.Logger().Debug("sdl: close")
	if errRen != nil {
		return lessons.WrapOp("DestroyRenderer", errRen)
	}
	return lessons.WrapOp("DestroyWindow", errWin)
}

// Texture is an SDL texture with its size cached.
type Texture struct {
	tex  *sdl.Texture
	w, h int
}

func newTexture(tex *sdl.Texture) (lessons.Texture, error) {
	_, _, w, h, err := tex.Query()
	if err != nil {
		_ = tex.Destroy()
		return nil, lessons.WrapOp("QueryTexture", err)
	}
	return &Texture{tex: tex, w: int(w), h: int(h)}, nil
}

// Size implements lessons.Texture.
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// Close implements lessons.Texture.
func (t *Texture) Close() error {
	if t.tex == nil {
		return nil
	}
	err := t.tex.Destroy()
	t.tex = nil
	return lessons.WrapOp("DestroyTexture", err)
}

// Font is an SDL_ttf font and the characters it can draw.
type Font struct {
	font *ttf.Font
	cov  *glyph.Coverage
}

// Close implements lessons.TextFont.
func (f *Font) Close() error {
	if f.font != nil {
		f.font.Close()
		f.font = nil
	}
	return nil
}
