package lesson

import (
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/motion"
	"github.com/gogpu/lessons/tile"
)

// Bitmaps tiles a background bitmap and moves a second bitmap around
// the window center.
type Bitmaps struct {
	fps  int
	tex  textures
	back lessons.Texture
	fore lessons.Texture
}

// NewBitmaps returns the lesson 2 scene.
func NewBitmaps(cfg lessons.Config) *Bitmaps {
	return &Bitmaps{fps: cfg.FPS}
}

// Requires implements lessons.Scene.
func (*Bitmaps) Requires() lessons.Subsystem { return 0 }

// Load implements lessons.Scene.
func (b *Bitmaps) Load(dev lessons.Device, res string) (err error) {
	if b.back, err = b.tex.keep(dev.LoadBMP(resource(res, "background.bmp"))); err != nil {
		return err
	}
	b.fore, err = b.tex.keep(dev.LoadBMP(resource(res, "image.bmp")))
	return err
}

// HandleEvent implements lessons.Scene.
func (*Bitmaps) HandleEvent(ev lessons.Event) bool {
	return quitOnInput(ev)
}

// Draw implements lessons.Scene.
func (b *Bitmaps) Draw(dev lessons.Device, frame int) error {
	bw, bh := b.back.Size()
	if err := tile.Fill(dev, b.back, 0, 0, bw, bh); err != nil {
		return err
	}
	winW, winH := dev.Size()
	iw, ih := b.fore.Size()
	dst := motion.Still(frame, b.fps, winW, winH, iw, ih)
	return dev.Copy(b.fore, nil, &dst)
}

// Close implements lessons.Scene.
func (b *Bitmaps) Close() error {
	return b.tex.Close()
}
