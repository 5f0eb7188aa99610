package lessons

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// WindowPosCentered asks the driver to center the window on screen.
const WindowPosCentered = -1

// Default values shared by all lessons.
const (
	DefaultWidth    = 640
	DefaultHeight   = 480
	DefaultFPS      = 60
	DefaultTileSize = 40
	DefaultClipSize = 100
)

// Config describes one lesson's window and runtime settings.
type Config struct {
	// AppName names the resource sub directory, e.g. "SDL_Lesson3".
	AppName string `toml:"app_name"`

	// Title is the window title.
	Title string `toml:"title"`

	// X and Y position the window; WindowPosCentered centers it.
	X int `toml:"x"`
	Y int `toml:"y"`

	Width  int `toml:"width"`
	Height int `toml:"height"`

	// FPS is the target frame rate of the render loop.
	FPS int `toml:"fps"`

	// TileSize is the edge of background tiles in pixels.
	TileSize int `toml:"tile_size"`

	// ClipSize is the edge of one cell in a sprite sheet.
	ClipSize int `toml:"clip_size"`

	// ResourceDir overrides the computed resource directory.
	ResourceDir string `toml:"resource_dir"`

	// Driver selects the backend: "sdl", "gogpu" or "soft".
	Driver string `toml:"driver"`

	// Frames stops the loop after that many frames. Zero runs until quit.
	Frames int `toml:"frames"`

	// OutDir receives PNG frame dumps from the soft driver.
	OutDir string `toml:"out_dir"`

	// SaveEvery dumps every n-th frame when OutDir is set.
	SaveEvery int `toml:"save_every"`
}

// DefaultConfig returns the settings every lesson starts from.
func DefaultConfig(app, title string, opts ...Option) Config {
	cfg := Config{
		AppName:   app,
		Title:     title,
		X:         WindowPosCentered,
		Y:         WindowPosCentered,
		Width:     DefaultWidth,
		Height:    DefaultHeight,
		FPS:       DefaultFPS,
		TileSize:  DefaultTileSize,
		ClipSize:  DefaultClipSize,
		Driver:    "sdl",
		SaveEvery: DefaultFPS,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// FrameWait is the delay between two frames.
func (c Config) FrameWait() time.Duration {
	if c.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.FPS)
}

// Validate reports the first setting that cannot drive a lesson.
func (c Config) Validate() error {
	switch {
	case c.Width <= 0 || c.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidConfig, c.Width, c.Height)
	case c.FPS <= 0:
		return fmt.Errorf("%w: fps %d", ErrInvalidConfig, c.FPS)
	case c.TileSize <= 0:
		return fmt.Errorf("%w: tile size %d", ErrInvalidConfig, c.TileSize)
	case c.ClipSize <= 0:
		return fmt.Errorf("%w: clip size %d", ErrInvalidConfig, c.ClipSize)
	case c.Frames < 0:
		return fmt.Errorf("%w: frames %d", ErrInvalidConfig, c.Frames)
	case c.OutDir != "" && c.SaveEvery <= 0:
		return fmt.Errorf("%w: save every %d frames to %s", ErrInvalidConfig, c.SaveEvery, c.OutDir)
	}
	return nil
}

// LoadConfig reads a TOML file over base. Keys absent from the file keep
// their base value. A missing file is not an error.
func LoadConfig(path string, base Config) (Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if errors.Is(err, fs.ErrNotExist) {
		return base, nil
	}
	if err != nil {
		return base, fmt.Errorf("lessons: read config: %w", err)
	}
	return DecodeConfig(data, base)
}

// DecodeConfig decodes TOML data over base. Unknown keys are rejected.
func DecodeConfig(data []byte, base Config) (Config, error) {
	cfg := base
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		return base, fmt.Errorf("lessons: decode config: %w", err)
	}
	return cfg, nil
}
