package lessons

import (
	"context"
	"fmt"
	"time"
)

// Scene is the content of one lesson.
type Scene interface {
	// Requires lists subsystems needed beyond Video.
	Requires() Subsystem

	// Load creates the scene's textures from the resource directory res.
	// Close must release whatever Load managed to create, even when Load
	// failed half way.
	Load(dev Device, res string) error

	// HandleEvent reacts to one event and reports whether the lesson is done.
	HandleEvent(ev Event) bool

	// Draw renders frame number frame onto a cleared target.
	Draw(dev Device, frame int) error

	Close() error
}

// Loop drives a Scene at a fixed frame rate.
type Loop struct {
	Device Device
	Scene  Scene

	// FPS is the target rate; the frame counter is logged once per FPS frames.
	FPS int

	// Frames stops the loop after that many frames. Zero means no limit.
	Frames int

	// Interval overrides the 1/FPS delay between frames when positive.
	Interval time.Duration
}

// Pacer is implemented by devices whose windowing library owns the main
// loop. Pace calls frame once per displayed frame until frame reports
// stop or returns an error, or ctx is cancelled.
type Pacer interface {
	Pace(ctx context.Context, frame func() (stop bool, err error)) error
}

// Run executes frames until the scene reports done, the frame limit is
// reached or ctx is cancelled. A frame is always rendered before the exit
// conditions are checked, so at least one frame is presented. Run returns
// the number of frames presented.
//
// Devices implementing Pacer decide when frames happen; Interval is
// ignored for them.
func (l *Loop) Run(ctx context.Context) (int, error) {
	if l.FPS <= 0 {
		return 0, fmt.Errorf("%w: fps %d", ErrInvalidConfig, l.FPS)
	}

	log := Logger()
	frame := 0
	step := func() (bool, error) {
		done := l.drain()

		if err := l.Device.Clear(); err != nil {
			return true, err
		}
		if err := l.Scene.Draw(l.Device, frame); err != nil {
			return true, fmt.Errorf("lessons: draw frame %d: %w", frame, err)
		}
		if err := l.Device.Present(); err != nil {
			return true, err
		}
		if frame%l.FPS == 0 {
			log.Info("frame", "frame", frame)
		}
		frame++

		switch {
		case done:
			log.Debug("scene done", "frames", frame)
			return true, nil
		case l.Frames > 0 && frame >= l.Frames:
			log.Debug("frame limit reached", "frames", frame)
			return true, nil
		case ctx.Err() != nil:
			log.Debug("loop cancelled", "frames", frame, "cause", context.Cause(ctx))
			return true, nil
		}
		return false, nil
	}

	if p, ok := l.Device.(Pacer); ok {
		err := p.Pace(ctx, step)
		return frame, err
	}

	interval := l.Interval
	if interval <= 0 {
		interval = time.Second / time.Duration(l.FPS)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		stop, err := step()
		if stop || err != nil {
			return frame, err
		}
		select {
		case <-ctx.Done():
			log.Debug("loop cancelled", "frames", frame, "cause", context.Cause(ctx))
			return frame, nil
		case <-ticker.C:
		}
	}
}

// drain hands every pending event to the scene.
func (l *Loop) drain() bool {
	done := false
	for {
		ev, ok := l.Device.PollEvent()
		if !ok {
			return done
		}
		if l.Scene.HandleEvent(ev) {
			done = true
		}
	}
}
