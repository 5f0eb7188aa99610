// Package assets draws the images and bundles the font the lessons load,
// so a fresh checkout can populate its res/ tree without binary files.
package assets

import (
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/bmp"
	"golang.org/x/image/font/gofont/goregular"
)

// Sizes of the generated images.
const (
	HelloWidth     = 640
	HelloHeight    = 480
	BackgroundSize = 128
	SpriteSize     = 100
	ClipSize       = 100
)

// FontName is the file name lesson 6 opens.
const FontName = "twinklebear_ascii.ttf"

// File is one resource relative to the res/ root.
type File struct {
	Dir   string
	Name  string
	write func(w io.Writer) error
}

// Path returns the file location below root.
func (f File) Path(root string) string {
	return filepath.Join(root, f.Dir, f.Name)
}

// Files lists every resource the lessons load.
func Files() []File {
	return []File{
		{"SDL_Lesson1", "hello.bmp", encodeBMP(Hello)},
		{"SDL_Lesson2", "background.bmp", encodeBMP(Background)},
		{"SDL_Lesson2", "image.bmp", encodeBMP(Sprite)},
		{"SDL_Lesson3", "background.png", encodePNG(Background)},
		{"SDL_Lesson3", "image.png", encodePNG(Sprite)},
		{"SDL_Lesson5", "image.png", encodePNG(Sheet)},
		{"SDL_Lesson6", FontName, writeFont},
	}
}

// Generate writes every resource below root and returns the written paths.
// Existing files are overwritten.
func Generate(root string) ([]string, error) {
	var written []string
	for _, f := range Files() {
		path := f.Path(root)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, fmt.Errorf("assets: %w", err)
		}
		if err := writeFile(path, f.write); err != nil {
			return written, fmt.Errorf("assets: %s: %w", f.Name, err)
		}
		written = append(written, path)
	}
	return written, nil
}

func writeFile(path string, write func(io.Writer) error) (err error) {
	out, err := os.Create(filepath.Clean(path))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
	}()
	return write(out)
}

func encodeBMP(draw func() (image.Image, error)) func(io.Writer) error {
	return func(w io.Writer) error {
		img, err := draw()
		if err != nil {
			return err
		}
		return bmp.Encode(w, img)
	}
}

func encodePNG(draw func() (image.Image, error)) func(io.Writer) error {
	return func(w io.Writer) error {
		img, err := draw()
		if err != nil {
			return err
		}
		return imaging.Encode(w, img, imaging.PNG)
	}
}

func writeFont(w io.Writer) error {
	_, err := w.Write(Font())
	return err
}

// Font returns the TrueType data shipped as the lesson 6 font.
func Font() []byte {
	return goregular.TTF
}

func face(size float64) (text.Face, error) {
	src, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, err
	}
	return src.Face(size), nil
}

// Hello draws the greeting shown by lesson 1.
func Hello() (image.Image, error) {
	dc := gg.NewContext(HelloWidth, HelloHeight)
	dc.ClearWithColor(gg.RGB(0.12, 0.16, 0.3))

	dc.SetRGB(0.95, 0.75, 0.2)
	dc.DrawCircle(HelloWidth/2, HelloHeight/2, 170)
	if err := dc.Fill(); err != nil {
		return nil, err
	}

	f, err := face(56)
	if err != nil {
		return nil, err
	}
	dc.SetFont(f)
	dc.SetRGB(0.1, 0.1, 0.1)
	dc.DrawStringAnchored("Hello World!", HelloWidth/2, HelloHeight/2, 0.5, 0.5)
	return dc.Image(), nil
}

// Background draws a softened checkerboard tile that repeats seamlessly.
func Background() (image.Image, error) {
	const half = BackgroundSize / 2
	dc := gg.NewContext(BackgroundSize, BackgroundSize)
	dc.ClearWithColor(gg.RGB(0.18, 0.35, 0.2))
	dc.SetRGB(0.25, 0.5, 0.28)
	dc.DrawRectangle(0, 0, half, half)
	dc.DrawRectangle(half, half, half, half)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return imaging.Blur(dc.Image(), 1.5), nil
}

// Sprite draws a ball on a transparent background.
func Sprite() (image.Image, error) {
	return ball(SpriteSize, gg.RGB(0.85, 0.2, 0.2))
}

func ball(size int, col gg.RGBA) (image.Image, error) {
	r := float64(size) / 2
	dc := gg.NewContext(size, size)
	dc.SetColor(col.Color())
	dc.DrawCircle(r, r, r-2)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	dc.SetRGBA(1, 1, 1, 0.6)
	dc.DrawCircle(r*0.7, r*0.7, r*0.25)
	if err := dc.Fill(); err != nil {
		return nil, err
	}
	return dc.Image(), nil
}

// sheetColors colors clip i of the sprite sheet.
var sheetColors = []gg.RGBA{
	gg.RGB(0.85, 0.2, 0.2),
	gg.RGB(0.2, 0.7, 0.25),
	gg.RGB(0.2, 0.4, 0.9),
	gg.RGB(0.9, 0.8, 0.15),
}

// Sheet draws a 2x2 sprite sheet. Clip i sits at column i/2, row i%2 and
// is labeled with i+1, the key that selects it.
func Sheet() (image.Image, error) {
	dc := gg.NewContext(2*ClipSize, 2*ClipSize)
	f, err := face(32)
	if err != nil {
		return nil, err
	}
	dc.SetFont(f)
	r := float64(ClipSize) / 2
	for i, col := range sheetColors {
		x := float64(i/2*ClipSize) + r
		y := float64(i%2*ClipSize) + r
		dc.SetColor(col.Color())
		dc.DrawCircle(x, y, r-2)
		if err := dc.Fill(); err != nil {
			return nil, err
		}
		dc.SetRGB(1, 1, 1)
		dc.DrawStringAnchored(fmt.Sprint(i+1), x, y, 0.5, 0.5)
	}
	return dc.Image(), nil
}
