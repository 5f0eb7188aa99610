package lesson

import (
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/motion"
	"github.com/gogpu/lessons/tile"
)

// pngPulse is how far the lesson 3 sprite grows and shrinks.
const pngPulse = 0.5

// PNG scrolls a tiled background diagonally behind a pulsing sprite,
// both loaded through the image subsystem.
type PNG struct {
	fps  int
	size int
	tex  textures
	back lessons.Texture
	fore lessons.Texture
}

// NewPNG returns the lesson 3 scene.
func NewPNG(cfg lessons.Config) *PNG {
	return &PNG{fps: cfg.FPS, size: cfg.TileSize}
}

// Requires implements lessons.Scene.
func (*PNG) Requires() lessons.Subsystem { return lessons.Image }

// Load implements lessons.Scene.
func (p *PNG) Load(dev lessons.Device, res string) (err error) {
	if p.back, err = p.tex.keep(dev.LoadTexture(resource(res, "background.png"))); err != nil {
		return err
	}
	p.fore, err = p.tex.keep(dev.LoadTexture(resource(res, "image.png")))
	return err
}

// HandleEvent implements lessons.Scene.
func (*PNG) HandleEvent(ev lessons.Event) bool {
	return quitOnInput(ev)
}

// Draw implements lessons.Scene.
func (p *PNG) Draw(dev lessons.Device, frame int) error {
	offX := motion.Scroll(frame, 2, p.size)
	offY := motion.Scroll(-frame, 3, p.size)
	if err := tile.Fill(dev, p.back, offX, offY, p.size, p.size); err != nil {
		return err
	}
	winW, winH := dev.Size()
	iw, ih := p.fore.Size()
	dst := motion.Sprite(frame, p.fps, winW, winH, iw, ih, pngPulse)
	return dev.Copy(p.fore, nil, &dst)
}

// Close implements lessons.Scene.
func (p *PNG) Close() error {
	return p.tex.Close()
}
