package lesson

import (
	"errors"
	"math"

	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/internal/assets"
	"github.com/gogpu/lessons/motion"
	"github.com/gogpu/lessons/tile"
)

// Text rendering parameters of lesson 6.
const (
	FontSize    = 64
	Message     = "True type font test!"
	BackMessage = "Background  ...  "
	textPulse   = 0.7
)

// Text renders two messages with a TrueType font: one tiled as a
// swaying background and one as the pulsing sprite.
type Text struct {
	fps  int
	tex  textures
	msg  lessons.Texture
	back lessons.Texture
}

// NewText returns the lesson 6 scene.
func NewText(cfg lessons.Config) *Text {
	return &Text{fps: cfg.FPS}
}

// Requires implements lessons.Scene.
func (*Text) Requires() lessons.Subsystem { return lessons.Font }

// Load implements lessons.Scene. The font is only needed while the
// messages are rendered and is closed before Load returns.
func (t *Text) Load(dev lessons.Device, res string) (err error) {
	font, err := dev.OpenFont(resource(res, assets.FontName), FontSize)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, font.Close())
	}()

	if t.msg, err = t.tex.keep(dev.RenderText(font, Message, lessons.White)); err != nil {
		return err
	}
	t.back, err = t.tex.keep(dev.RenderText(font, BackMessage, lessons.Navy))
	return err
}

// HandleEvent implements lessons.Scene.
func (*Text) HandleEvent(ev lessons.Event) bool {
	return quitOnInput(ev)
}

// Draw implements lessons.Scene.
func (t *Text) Draw(dev lessons.Device, frame int) error {
	// Background tiles are half the size of the message texture.
	mw, mh := t.msg.Size()
	tw, th := max(mw/2, 1), max(mh/2, 1)
	offX := motion.Sway(frame, t.fps*3, math.Cos, th)
	offY := motion.Scroll(frame, 2, tw)
	if err := tile.Fill(dev, t.back, offX, offY, tw, th); err != nil {
		return err
	}

	winW, winH := dev.Size()
	dst := motion.Sprite(frame, t.fps, winW, winH, mw, mh, textPulse)
	return dev.Copy(t.msg, nil, &dst)
}

// Close implements lessons.Scene.
func (t *Text) Close() error {
	return t.tex.Close()
}
