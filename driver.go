package lessons

import "strings"

// Subsystem is a set of library subsystems a lesson needs.
type Subsystem uint8

// Subsystems.
const (
	// Video covers window, renderer, BMP loading and events.
	Video Subsystem = 1 << iota

	// Image enables PNG decoding into textures.
	Image

	// Font enables TrueType font loading and text rendering.
	Font
)

// Has reports whether s contains all of o.
func (s Subsystem) Has(o Subsystem) bool {
	return s&o == o
}

// String returns a "video|image|font" style list.
func (s Subsystem) String() string {
	if s == 0 {
		return "none"
	}
	var parts []string
	if s.Has(Video) {
		parts = append(parts, "video")
	}
	if s.Has(Image) {
		parts = append(parts, "image")
	}
	if s.Has(Font) {
		parts = append(parts, "font")
	}
	return strings.Join(parts, "|")
}

// Driver is a multimedia backend. Init must succeed before Open;
// Quit releases whatever Init acquired.
type Driver interface {
	// Name identifies the driver in logs and config ("sdl", "gogpu", "soft").
	Name() string

	// Init initializes the requested subsystems.
	Init(Subsystem) error

	// Quit shuts down every initialized subsystem.
	Quit()

	// BasePath returns the directory holding the running executable,
	// with a trailing separator.
	BasePath() (string, error)

	// Open creates the window and its renderer.
	Open(cfg Config) (Device, error)
}

// Device is an open window with its renderer.
//
// Texture, Font and Device are released with Close. A Device does not
// track the textures it created; callers release them first.
type Device interface {
	// Clear fills the render target with the draw color (black).
	Clear() error

	// Copy draws src (nil: whole texture) of tex into dst
	// (nil: whole render target), scaling as needed.
	Copy(tex Texture, src, dst *Rect) error

	// Present shows the frame drawn since the last Clear.
	Present() error

	// PollEvent returns the next pending event, if any.
	PollEvent() (Event, bool)

	// LoadBMP loads a Windows bitmap into a texture.
	LoadBMP(path string) (Texture, error)

	// LoadTexture loads a PNG (or any supported format) into a texture.
	// Requires the Image subsystem.
	LoadTexture(path string) (Texture, error)

	// OpenFont opens a TrueType font at the given point size.
	// Requires the Font subsystem.
	OpenFont(path string, size int) (TextFont, error)

	// RenderText rasterizes msg in col into a new texture.
	RenderText(font TextFont, msg string, col Color) (Texture, error)

	// Size returns the render target size.
	Size() (w, h int)

	Close() error
}

// Texture is a renderer-owned image.
type Texture interface {
	Size() (w, h int)
	Close() error
}

// TextFont is an opened font at a fixed size.
type TextFont interface {
	Close() error
}

// EventKind classifies events the lessons react to.
type EventKind uint8

// Event kinds.
const (
	Other EventKind = iota
	Quit
	KeyDown
	MouseButtonDown
)

func (k EventKind) String() string {
	switch k {
	case Quit:
		return "quit"
	case KeyDown:
		return "keydown"
	case MouseButtonDown:
		return "mousebuttondown"
	default:
		return "other"
	}
}

// Key identifies the keys lessons distinguish.
type Key uint8

// Keys.
const (
	KeyOther Key = iota
	Key1
	Key2
	Key3
	Key4
	KeyEscape
)

// Event is a driver-neutral input event.
type Event struct {
	Kind EventKind
	Key  Key
}
