// Package lesson holds the content of each lesson.
//
// A scene loads its textures once, reacts to input and draws one frame
// at a time; the render loop in package lessons does the rest. Every
// scene is deterministic in the frame number, so the soft driver can
// render the same animation the SDL window shows.
package lesson

import (
	"errors"
	"path/filepath"
	"slices"

	"github.com/gogpu/lessons"
)

// Program describes one lesson program.
type Program struct {
	Number  int
	AppName string
	Title   string
	New     func(cfg lessons.Config) lessons.Scene
}

// Config returns the lesson's default configuration.
func (p Program) Config(opts ...lessons.Option) lessons.Config {
	return lessons.DefaultConfig(p.AppName, p.Title, opts...)
}

var all = []Program{
	{1, "SDL_Lesson1", "SDL Lesson 1 - Hello World!", func(cfg lessons.Config) lessons.Scene { return NewHello(cfg) }},
	{2, "SDL_Lesson2", "SDL Lesson 2 - Don't Put Everything in Main", func(cfg lessons.Config) lessons.Scene { return NewBitmaps(cfg) }},
	{3, "SDL_Lesson3", "SDL Lesson 3 - SDL Extension Libraries", func(cfg lessons.Config) lessons.Scene { return NewPNG(cfg) }},
	{5, "SDL_Lesson5", "SDL Lesson 5 - Clipping Sprite Sheets", func(cfg lessons.Config) lessons.Scene { return NewClips(cfg) }},
	{6, "SDL_Lesson6", "SDL Lesson 6 - True Type Fonts", func(cfg lessons.Config) lessons.Scene { return NewText(cfg) }},
}

// All returns every lesson that has a scene, in order.
func All() []Program {
	return slices.Clone(all)
}

// ByNumber looks a lesson up by its number.
func ByNumber(n int) (Program, bool) {
	i := slices.IndexFunc(all, func(p Program) bool { return p.Number == n })
	if i < 0 {
		return Program{}, false
	}
	return all[i], true
}

// quitOnInput reports whether ev should end a lesson that has no
// interactive controls.
func quitOnInput(ev lessons.Event) bool {
	switch ev.Kind {
	case lessons.Quit, lessons.KeyDown, lessons.MouseButtonDown:
		return true
	}
	return false
}

// textures owns the textures a scene loaded.
type textures struct {
	list []lessons.Texture
}

func (t *textures) keep(tex lessons.Texture, err error) (lessons.Texture, error) {
	if err != nil {
		return nil, err
	}
	t.list = append(t.list, tex)
	return tex, nil
}

// Close destroys the textures newest first.
func (t *textures) Close() error {
	var errs []error
	for i := len(t.list) - 1; i >= 0; i-- {
		if err := t.list[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	t.list = nil
	return errors.Join(errs...)
}

func resource(dir, name string) string {
	return filepath.Join(dir, name)
}
