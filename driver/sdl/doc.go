// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package sdl implements lessons.Driver on top of SDL2, SDL2_image and
// SDL2_ttf through github.com/veandco/go-sdl2.
//
// SDL must be driven from the main OS thread. The package locks the
// main goroutine to its thread during init, so programs using it must
// call lessons.Run from main.
package sdl
