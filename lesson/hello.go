package lesson

import "github.com/gogpu/lessons"

// Hello stretches one bitmap over the whole window.
type Hello struct {
	tex textures
	img lessons.Texture
}

// NewHello returns the lesson 1 scene.
func NewHello(lessons.Config) *Hello {
	return &Hello{}
}

// Requires implements lessons.Scene.
func (*Hello) Requires() lessons.Subsystem { return 0 }

// Load implements lessons.Scene.
func (h *Hello) Load(dev lessons.Device, res string) (err error) {
	h.img, err = h.tex.keep(dev.LoadBMP(resource(res, "hello.bmp")))
	return err
}

// HandleEvent implements lessons.Scene.
func (*Hello) HandleEvent(ev lessons.Event) bool {
	return quitOnInput(ev)
}

// Draw implements lessons.Scene.
func (h *Hello) Draw(dev lessons.Device, _ int) error {
	return dev.Copy(h.img, nil, nil)
}

// Close implements lessons.Scene.
func (h *Hello) Close() error {
	return h.tex.Close()
}
