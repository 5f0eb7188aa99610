package lessons

import (
	"context"
	"errors"
)

// Run executes a complete lesson: it initializes the driver, opens the
// window, loads the scene, runs the render loop and tears everything
// down again in reverse order.
func Run(ctx context.Context, drv Driver, cfg Config, sc Scene) (err error) {
	if err := cfg.Validate(); err != nil {
		return err
	}

	var st Stack
	defer func() {
		err = errors.Join(err, st.Close())
	}()

	log := Logger().With("driver", drv.Name(), "lesson", cfg.AppName)

	need := Video | sc.Requires()
	if err := drv.Init(need); err != nil {
		log.Error("init", "subsystems", need, "err", err)
		return err
	}
	st.Push(drv.Name(), func() error {
		drv.Quit()
		return nil
	})
	log.Debug("initialized", "subsystems", need)

	res, err := Resources(drv, cfg)
	if err != nil {
		return err
	}

	dev, err := drv.Open(cfg)
	if err != nil {
		log.Error("open", "err", err)
		return err
	}
	st.PushCloser("device", dev)

	st.PushCloser("scene", sc)
	if err := sc.Load(dev, res); err != nil {
		log.Error("load", "resources", res, "err", err)
		return err
	}

	loop := Loop{
		Device: dev,
		Scene:  sc,
		FPS:    cfg.FPS,
		Frames: cfg.Frames,
	}
	frames, err := loop.Run(ctx)
	log.Debug("loop finished", "frames", frames)
	return err
}

// CheckInit verifies that the driver's video subsystem starts, then shuts
// it down again.
func CheckInit(drv Driver) error {
	log := Logger().With("driver", drv.Name())
	if err := drv.Init(Video); err != nil {
		log.Error("init", "err", err)
		return err
	}
	log.Info("init OK")
	drv.Quit()
	return nil
}
