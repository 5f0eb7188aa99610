// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package gogpu implements lessons.Driver on a GPU window from
// github.com/gogpu/gogpu. Frames are drawn with gg through a
// ggcanvas.Canvas and rendered straight onto the window surface.
//
// gogpu owns the main loop: the device implements lessons.Pacer, so
// frames follow the display refresh instead of a timer. The window is
// placed by the windowing system; Config.X and Config.Y are ignored.
// Textures and fonts live in memory and are uploaded by gg when drawn.
package gogpu
