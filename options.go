package lessons

// Option adjusts a Config built by DefaultConfig.
//
// Example:
//
//	cfg := lessons.DefaultConfig("SDL_Lesson1", "Hello",
//	    lessons.WithSize(800, 600),
//	    lessons.WithDriver("soft"),
//	)
type Option func(*Config)

// WithSize sets the window size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithFPS sets the target frame rate.
func WithFPS(fps int) Option {
	return func(c *Config) {
		c.FPS = fps
	}
}

// WithResourceDir pins the resource directory instead of deriving it
// from the executable path.
func WithResourceDir(dir string) Option {
	return func(c *Config) {
		c.ResourceDir = dir
	}
}

// WithDriver selects the backend by name.
func WithDriver(name string) Option {
	return func(c *Config) {
		c.Driver = name
	}
}

// WithFrames stops the render loop after n frames.
func WithFrames(n int) Option {
	return func(c *Config) {
		c.Frames = n
	}
}

// WithOutput makes the soft driver write every n-th frame into dir.
func WithOutput(dir string, every int) Option {
	return func(c *Config) {
		c.OutDir = dir
		c.SaveEvery = every
	}
}
