// Package lessons provides the shared plumbing behind a series of small
// graphics lessons: window configuration, resource lookup, a fixed-rate
// render loop and the driver abstraction the lessons draw through.
//
// # Overview
//
// Every lesson is a self-contained program under cmd/. A lesson picks a
// [Scene] from the lesson package, builds a [Config] and hands both to
// [Run] together with a [Driver]:
//
//	drv := sdl.New()
//	cfg := lessons.DefaultConfig("SDL_Lesson2", "SDL Lesson 2 - Bitmaps")
//	if err := lessons.Run(ctx, drv, cfg, lesson.NewBitmaps(cfg)); err != nil {
//	    log.Fatal(err)
//	}
//
// # Drivers
//
// Three drivers ship with the module:
//   - driver/sdl opens a real window through SDL2 (go-sdl2)
//   - driver/gogpu opens a GPU window through gogpu and draws with gg
//   - driver/soft renders headless into a gg.Context and can dump frames
//     as PNG files
//
// # Render Loop
//
// [Loop] runs the classic clear, draw, present cycle at a fixed rate. All
// pending events are drained before each frame and handed to the scene,
// which decides whether the lesson is done. Devices whose windowing
// library owns the main loop implement [Pacer] and call each frame
// themselves.
//
// # Resources
//
// Resources live next to the binary: the executable path is cut at the
// last "bin" and "res/<AppName>/" is appended. See [ResourcePath].
//
// # Coordinate System
//
// Origin (0,0) is the top-left corner of the window, X grows right and
// Y grows down. All rectangles are integer pixels.
package lessons
