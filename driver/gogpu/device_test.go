// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package gogpu

import (
	"errors"
	"testing"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/lessons"
)

func TestKey(t *testing.T) {
	tests := []struct {
		in   gpucontext.Key
		want lessons.Key
	}{
		{gpucontext.Key1, lessons.Key1},
		{gpucontext.Key2, lessons.Key2},
		{gpucontext.Key3, lessons.Key3},
		{gpucontext.Key4, lessons.Key4},
		{gpucontext.KeyEscape, lessons.KeyEscape},
		{gpucontext.KeySpace, lessons.KeyOther},
		{gpucontext.KeyA, lessons.KeyOther},
	}
	for _, tt := range tests {
		if got := key(tt.in); got != tt.want {
			t.Errorf("key(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestEventQueue(t *testing.T) {
	d := &Device{drv: New(), w: 640, h: 480}
	d.push(lessons.Event{Kind: lessons.KeyDown, Key: lessons.Key2})
	d.push(lessons.Event{Kind: lessons.MouseButtonDown})
	d.push(lessons.Event{Kind: lessons.Quit})

	want := []lessons.EventKind{lessons.KeyDown, lessons.MouseButtonDown, lessons.Quit}
	for i, kind := range want {
		ev, ok := d.PollEvent()
		if !ok || ev.Kind != kind {
			t.Fatalf("poll %d = %v, %v; want %v", i, ev, ok, kind)
		}
	}
	if _, ok := d.PollEvent(); ok {
		t.Error("queue not empty after draining")
	}
}

func TestDrawOutsideFrame(t *testing.T) {
	d := &Device{drv: New(), w: 640, h: 480}
	if err := d.Clear(); !errors.Is(err, errNoFrame) {
		t.Errorf("Clear() error = %v, want errNoFrame", err)
	}
	if err := d.Copy(nil, nil, nil); !errors.Is(err, errNoFrame) {
		t.Errorf("Copy() error = %v, want errNoFrame", err)
	}
	if err := d.Present(); !errors.Is(err, errNoFrame) {
		t.Errorf("Present() error = %v, want errNoFrame", err)
	}

	if err := d.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := d.Clear(); !errors.Is(err, lessons.ErrClosed) {
		t.Errorf("Clear() after Close error = %v, want ErrClosed", err)
	}
	if err := d.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestSubsystemChecks(t *testing.T) {
	drv := New()
	if drv.Name() != "gogpu" {
		t.Errorf("Name() = %q", drv.Name())
	}
	if _, err := drv.Open(lessons.DefaultConfig("a", "b")); !errors.Is(err, lessons.ErrSubsystem) {
		t.Errorf("Open() before Init error = %v, want ErrSubsystem", err)
	}
	if err := drv.Init(lessons.Video); err != nil {
		t.Fatal(err)
	}
	if _, err := drv.Open(lessons.Config{Width: 0, Height: 10}); !errors.Is(err, lessons.ErrInvalidConfig) {
		t.Errorf("Open(0x10) error = %v, want ErrInvalidConfig", err)
	}

	d := &Device{drv: drv, w: 640, h: 480}
	if _, err := d.LoadTexture("x.png"); !errors.Is(err, lessons.ErrSubsystem) {
		t.Errorf("LoadTexture() without Image error = %v", err)
	}
	if _, err := d.OpenFont("x.ttf", 12); !errors.Is(err, lessons.ErrSubsystem) {
		t.Errorf("OpenFont() without Font error = %v", err)
	}
	drv.Quit()
	if drv.has(lessons.Video) {
		t.Error("Video still initialized after Quit")
	}
}
