package lesson

import (
	"math"

	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/motion"
	"github.com/gogpu/lessons/tile"
)

const (
	clipCount = 4
	clipPulse = 0.9
)

// Clips tiles a whole sprite sheet as the scrolling background and
// draws one of its clips as the pulsing sprite. Keys 1 to 4 pin a clip,
// any other key lets the selection cycle again.
type Clips struct {
	fps   int
	tile  int
	clips []lessons.Rect
	sel   *tile.Selector

	tex   textures
	sheet lessons.Texture
}

// NewClips returns the lesson 5 scene.
func NewClips(cfg lessons.Config) *Clips {
	return &Clips{
		fps:   cfg.FPS,
		tile:  cfg.TileSize,
		clips: tile.Sheet(cfg.ClipSize, clipCount),
		sel:   tile.NewSelector(clipCount),
	}
}

// Requires implements lessons.Scene.
func (*Clips) Requires() lessons.Subsystem { return lessons.Image }

// Load implements lessons.Scene.
func (c *Clips) Load(dev lessons.Device, res string) (err error) {
	c.sheet, err = c.tex.keep(dev.LoadTexture(resource(res, "image.png")))
	return err
}

// HandleEvent implements lessons.Scene. Escape, a mouse click or a quit
// request end the lesson.
func (c *Clips) HandleEvent(ev lessons.Event) bool {
	switch ev.Kind {
	case lessons.Quit, lessons.MouseButtonDown:
		return true
	case lessons.KeyDown:
		if ev.Key == lessons.KeyEscape {
			return true
		}
		c.sel.Press(ev.Key)
	}
	return false
}

// Selected returns the clip index drawn at frame.
func (c *Clips) Selected(frame int) int {
	return c.sel.Index(frame, c.fps)
}

// Draw implements lessons.Scene.
func (c *Clips) Draw(dev lessons.Device, frame int) error {
	clip := c.clips[c.Selected(frame)]

	offX := motion.Scroll(frame, -3, c.tile)
	offY := motion.Sway(frame, c.fps*3, math.Sin, c.tile)
	if err := tile.Fill(dev, c.sheet, offX, offY, c.tile, c.tile); err != nil {
		return err
	}

	// The sprite pulses from the whole sheet size while showing one clip.
	winW, winH := dev.Size()
	sw, sh := c.sheet.Size()
	dst := motion.Sprite(frame, c.fps, winW, winH, sw, sh, clipPulse)
	return dev.Copy(c.sheet, &clip, &dst)
}

// Close implements lessons.Scene.
func (c *Clips) Close() error {
	return c.tex.Close()
}
