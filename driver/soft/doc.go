// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package soft is a headless lessons.Driver built on the gg software
// rasterizer.
//
// The "window" is a gg.Context of the configured size. Nothing is shown
// on screen; instead every presented frame is kept in memory and can be
// written to disk as PNG:
//
//	drv := soft.New()
//	cfg := lessons.DefaultConfig("SDL_Lesson3", "PNG",
//	    lessons.WithFrames(120),
//	    lessons.WithOutput("frames", 30),
//	)
//	err := lessons.Run(ctx, drv, cfg, lesson.NewPNG(cfg))
//
// # Input
//
// There is no real input device. Events are scripted with [Driver.Push]
// and [Driver.PushAt]; the latter holds an event back until a given
// number of frames has been presented, which makes interactive lessons
// reproducible in tests.
//
// # Formats
//
// BMP files are decoded with golang.org/x/image/bmp, everything else
// through gg.LoadImage. Fonts are rasterized with gg/text; messages are
// folded to the glyphs the font covers before drawing.
package soft
