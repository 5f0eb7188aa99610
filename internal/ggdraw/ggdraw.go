// Package ggdraw holds the texture, font and blit code shared by the
// drivers that draw through a gg.Context.
package ggdraw

import (
	"errors"
	"fmt"
	"image"
	"math"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/internal/glyph"
	"golang.org/x/image/bmp"
)

// errEmptyText mirrors the library refusing to render zero-width text.
var errEmptyText = errors.New("text has zero width")

// Texture is an in-memory image.
type Texture struct {
	buf  *gg.ImageBuf
	w, h int
}

// NewTexture wraps buf.
func NewTexture(buf *gg.ImageBuf) *Texture {
	w, h := buf.Bounds()
	return &Texture{buf: buf, w: w, h: h}
}

// Size implements lessons.Texture.
func (t *Texture) Size() (int, int) {
	return t.w, t.h
}

// Close implements lessons.Texture.
func (t *Texture) Close() error {
	t.buf = nil
	return nil
}

// Font is an opened font face with its rune coverage.
type Font struct {
	src  *text.FontSource
	face text.Face
	cov  *glyph.Coverage
}

// Close implements lessons.TextFont.
func (f *Font) Close() error {
	if f.src == nil {
		return nil
	}
	err := f.src.Close()
	f.src = nil
	return err
}

// LoadBMP decodes a BMP file.
func LoadBMP(path string) (*Texture, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, lessons.WrapOp("LoadBMP", err)
	}
	defer func() { _ = f.Close() }()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, lessons.WrapOp("LoadBMP", err)
	}
	return NewTexture(gg.ImageBufFromImage(img)), nil
}

// LoadImage decodes any format gg.LoadImage understands (PNG, JPEG).
func LoadImage(path string) (*Texture, error) {
	buf, err := gg.LoadImage(path)
	if err != nil {
		return nil, lessons.WrapOp("LoadTexture", err)
	}
	return NewTexture(buf), nil
}

// OpenFont loads a TrueType file at size pixels.
func OpenFont(path string, size int) (*Font, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	cov, err := glyph.Parse(data)
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, lessons.WrapOp("TTF_OpenFont", err)
	}
	return &Font{src: src, face: src.Face(float64(size)), cov: cov}, nil
}

// RenderText draws msg into a new texture as wide as the text advance
// and as tall as the font's ascent plus descent.
func RenderText(font lessons.TextFont, msg string, col lessons.Color) (*Texture, error) {
	f, ok := font.(*Font)
	if !ok {
		return nil, lessons.WrapOp("TTF_RenderText", fmt.Errorf("foreign font %T", font))
	}
	if f.src == nil {
		return nil, lessons.WrapOp("TTF_RenderText", lessons.ErrClosed)
	}
	msg = glyph.Fold(msg, f.cov.Has)
	w, _ := text.Measure(msg, f.face)
	m := f.face.Metrics()
	width := int(math.Ceil(w))
	height := int(math.Ceil(m.Ascent + m.Descent))
	if width <= 0 || height <= 0 {
		return nil, lessons.WrapOp("TTF_RenderText", errEmptyText)
	}
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	text.Draw(img, msg, f.face, 0, m.Ascent, col)
	return NewTexture(gg.ImageBufFromImage(img)), nil
}

// Copy draws the src part of tex into the dst part of dc. The
// destination is clipped to dc and the source rectangle shrinks by the
// same proportion, so partially visible tiles keep their scale.
func Copy(dc *gg.Context, tex lessons.Texture, src, dst *lessons.Rect) error {
	t, ok := tex.(*Texture)
	if !ok {
		return lessons.WrapOp("RenderCopy", fmt.Errorf("foreign texture %T", tex))
	}
	if t.buf == nil {
		return lessons.WrapOp("RenderCopy", lessons.ErrClosed)
	}

	full := lessons.Rect{W: t.w, H: t.h}
	s := full
	if src != nil {
		s = src.Intersect(full)
	}
	target := lessons.Rect{W: dc.Width(), H: dc.Height()}
	dr := target
	if dst != nil {
		dr = *dst
	}

	vs, vd, ok := clipCopy(s, dr, target)
	if !ok {
		return nil
	}
	sr := vs.Image()
	dc.DrawImageEx(t.buf, gg.DrawImageOptions{
		X:             float64(vd.X),
		Y:             float64(vd.Y),
		DstWidth:      float64(vd.W),
		DstHeight:     float64(vd.H),
		SrcRect:       &sr,
		Interpolation: gg.InterpNearest,
		Opacity:       1,
		BlendMode:     gg.BlendNormal,
	})
	return nil
}

// clipCopy restricts dst to target and maps the visible part back onto
// src. It reports false when nothing is visible.
func clipCopy(src, dst, target lessons.Rect) (lessons.Rect, lessons.Rect, bool) {
	if src.Empty() || dst.Empty() {
		return lessons.Rect{}, lessons.Rect{}, false
	}
	vis := dst.Intersect(target)
	if vis.Empty() {
		return lessons.Rect{}, lessons.Rect{}, false
	}
	sx := float64(src.W) / float64(dst.W)
	sy := float64(src.H) / float64(dst.H)

	x0 := src.X + int(math.Floor(float64(vis.X-dst.X)*sx))
	y0 := src.Y + int(math.Floor(float64(vis.Y-dst.Y)*sy))
	x1 := src.X + int(math.Ceil(float64(vis.X+vis.W-dst.X)*sx))
	y1 := src.Y + int(math.Ceil(float64(vis.Y+vis.H-dst.Y)*sy))
	x1 = min(max(x1, x0+1), src.X+src.W)
	y1 = min(max(y1, y0+1), src.Y+src.H)

	return lessons.Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}, vis, true
}
