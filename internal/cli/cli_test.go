package cli

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/driver/soft"
	"github.com/gogpu/lessons/internal/assets"
)

func TestNewDriver(t *testing.T) {
	drv, err := NewDriver("soft")
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := drv.(*soft.Driver); !ok {
		t.Errorf("NewDriver(soft) = %T", drv)
	}
	if drv, err := NewDriver("gogpu"); err != nil || drv.Name() != "gogpu" {
		t.Errorf("NewDriver(gogpu) = %v, %v", drv, err)
	}
	if _, err := NewDriver("vulkan"); !errors.Is(err, errUnknownDriver) {
		t.Errorf("NewDriver(vulkan) error = %v", err)
	}
}

func TestConfigure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lesson.toml")
	data := "fps = 30\nframes = 90\ndriver = \"soft\"\n"
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}
	o, err := parse("test", []string{"-config", path, "-frames", "5", "-res", "/tmp/res"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	cfg, err := o.configure(lessons.DefaultConfig("SDL_Lesson2", "t"))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.FPS != 30 || cfg.Driver != "soft" {
		t.Errorf("file values lost: fps %d driver %q", cfg.FPS, cfg.Driver)
	}
	if cfg.Frames != 5 || cfg.ResourceDir != "/tmp/res" {
		t.Errorf("flags not applied: frames %d res %q", cfg.Frames, cfg.ResourceDir)
	}
	if cfg.Width != lessons.DefaultWidth {
		t.Errorf("Width = %d, want default", cfg.Width)
	}
}

func TestConfigureRejectsBadValues(t *testing.T) {
	o, err := parse("test", []string{"-frames", "-1"}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := o.configure(lessons.DefaultConfig("a", "b")); !errors.Is(err, lessons.ErrInvalidConfig) {
		t.Errorf("configure() error = %v, want ErrInvalidConfig", err)
	}
}

func TestRunSoft(t *testing.T) {
	root := filepath.Join(t.TempDir(), "res")
	if _, err := assets.Generate(root); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(t.TempDir(), "frames")
	var stderr bytes.Buffer
	args := []string{
		"-driver", "soft",
		"-res", filepath.Join(root, "SDL_Lesson3"),
		"-frames", "2",
		"-out", out,
		"-every", "1",
	}
	if code := run(3, args, &stderr); code != ExitOK {
		t.Fatalf("run() = %d, log:\n%s", code, stderr.String())
	}
	if !strings.Contains(stderr.String(), "frame=0") {
		t.Errorf("frame counter not logged:\n%s", stderr.String())
	}
	entries, err := os.ReadDir(out)
	if err != nil || len(entries) != 2 {
		t.Errorf("frame dumps = %d, %v, want 2", len(entries), err)
	}
}

func TestRunFailures(t *testing.T) {
	var stderr bytes.Buffer
	if code := run(4, nil, &stderr); code != ExitUsage {
		t.Errorf("run(4) = %d, want usage", code)
	}
	if code := run(1, []string{"-bogus"}, &stderr); code != ExitUsage {
		t.Errorf("run(-bogus) = %d, want usage", code)
	}
	if code := run(1, []string{"-driver", "nope"}, &stderr); code != ExitUsage {
		t.Errorf("run(-driver nope) = %d, want usage", code)
	}
	args := []string{"-driver", "soft", "-res", t.TempDir(), "-frames", "1"}
	if code := run(1, args, &stderr); code != ExitError {
		t.Errorf("run(missing resources) = %d, want error", code)
	}
}

func TestCheck(t *testing.T) {
	var stderr bytes.Buffer
	if code := check([]string{"-driver", "soft"}, &stderr); code != ExitOK {
		t.Fatalf("check() = %d", code)
	}
	if !strings.Contains(stderr.String(), "init OK") {
		t.Errorf("missing init message:\n%s", stderr.String())
	}
}

func TestCheckConfigFile(t *testing.T) {
	tests := []struct {
		name string
		toml string
		args []string
		want int
	}{
		{"driver from file", `driver = "soft"`, nil, ExitOK},
		{"unknown driver in file", `driver = "nope"`, nil, ExitUsage},
		{"flag beats file", `driver = "nope"`, []string{"-driver", "soft"}, ExitOK},
		{"bad key", `colour = "red"`, nil, ExitUsage},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "lesson.toml")
			if err := os.WriteFile(path, []byte(tt.toml+"\n"), 0o600); err != nil {
				t.Fatal(err)
			}
			var stderr bytes.Buffer
			args := append([]string{"-config", path}, tt.args...)
			if code := check(args, &stderr); code != tt.want {
				t.Errorf("check() = %d, want %d\n%s", code, tt.want, stderr.String())
			}
		})
	}
}
