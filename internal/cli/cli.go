// Package cli is the shared command line of the lesson programs.
package cli

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/gogpu/lessons"
	"github.com/gogpu/lessons/driver/gogpu"
	"github.com/gogpu/lessons/driver/sdl"
	"github.com/gogpu/lessons/driver/soft"
	"github.com/gogpu/lessons/lesson"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// errUnknownDriver reports a -driver value that names no backend.
var errUnknownDriver = errors.New("unknown driver")

// options holds the parsed flags. Empty or zero values leave the
// configuration untouched.
type options struct {
	driver  string
	config  string
	res     string
	out     string
	frames  int
	every   int
	verbose bool
	set     map[string]bool
}

func parse(name string, args []string, stderr io.Writer) (*options, error) {
	o := &options{set: map[string]bool{}}
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.driver, "driver", "", `backend: "sdl", "gogpu" or "soft"`)
	fs.StringVar(&o.config, "config", "", "TOML file overriding the defaults")
	fs.StringVar(&o.res, "res", "", "resource directory (default: derived from the executable)")
	fs.StringVar(&o.out, "out", "", "directory for PNG frame dumps (soft driver)")
	fs.IntVar(&o.frames, "frames", 0, "stop after n frames, 0 runs until quit")
	fs.IntVar(&o.every, "every", 0, "dump every n-th frame")
	fs.BoolVar(&o.verbose, "v", false, "log lifecycle details")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	fs.Visit(func(f *flag.Flag) { o.set[f.Name] = true })
	return o, nil
}

// configure layers the config file and the flags over base.
func (o *options) configure(base lessons.Config) (lessons.Config, error) {
	cfg := base
	if o.config != "" {
		var err error
		if cfg, err = lessons.LoadConfig(o.config, cfg); err != nil {
			return base, err
		}
	}
	if o.set["driver"] {
		cfg.Driver = o.driver
	}
	if o.set["res"] {
		cfg.ResourceDir = o.res
	}
	if o.set["frames"] {
		cfg.Frames = o.frames
	}
	if o.set["out"] {
		cfg.OutDir = o.out
	}
	if o.set["every"] {
		cfg.SaveEvery = o.every
	}
	return cfg, cfg.Validate()
}

// NewDriver returns the backend called name.
func NewDriver(name string) (lessons.Driver, error) {
	switch name {
	case "sdl", "":
		return sdl.New(), nil
	case "gogpu":
		return gogpu.New(), nil
	case "soft":
		return soft.New(), nil
	}
	return nil, fmt.Errorf("%w %q", errUnknownDriver, name)
}

func setupLogger(w io.Writer, verbose bool) {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	l := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	lessons.SetLogger(l)
	gg.SetLogger(l)
}

func resetLogger() {
	lessons.SetLogger(nil)
	gg.SetLogger(nil)
}

// Main runs lesson number n with the given arguments and returns the
// process exit code.
func Main(n int, args []string) int {
	return run(n, args, os.Stderr)
}

func run(n int, args []string, stderr io.Writer) int {
	p, ok := lesson.ByNumber(n)
	if !ok {
		fmt.Fprintf(stderr, "no lesson %d\n", n)
		return ExitUsage
	}
	o, err := parse(filepath.Base(os.Args[0]), args, stderr)
	if err != nil {
		return ExitUsage
	}
	setupLogger(stderr, o.verbose)
	defer resetLogger()

	cfg, err := o.configure(p.Config())
	if err != nil {
		lessons.Logger().Error("config", "err", err)
		return ExitUsage
	}
	drv, err := NewDriver(cfg.Driver)
	if err != nil {
		lessons.Logger().Error("driver", "err", err)
		return ExitUsage
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := lessons.Run(ctx, drv, cfg, p.New(cfg)); err != nil {
		lessons.Logger().Error("lesson failed", "lesson", p.AppName, "err", err)
		return ExitError
	}
	return ExitOK
}

// Check initializes and shuts down the selected driver, the whole of
// lesson 0.
func Check(args []string) int {
	return check(args, os.Stderr)
}

func check(args []string, stderr io.Writer) int {
	o, err := parse(filepath.Base(os.Args[0]), args, stderr)
	if err != nil {
		return ExitUsage
	}
	setupLogger(stderr, o.verbose)
	defer resetLogger()

	cfg, err := o.configure(lessons.DefaultConfig("SDL_Lesson0", "SDL Lesson 0"))
	if err != nil {
		lessons.Logger().Error("config", "err", err)
		return ExitUsage
	}
	drv, err := NewDriver(cfg.Driver)
	if err != nil {
		lessons.Logger().Error("driver", "err", err)
		return ExitUsage
	}
	if err := lessons.CheckInit(drv); err != nil {
		return ExitError
	}
	return ExitOK
}
