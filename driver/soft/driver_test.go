// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package soft

import (
	"testing"

	"github.com/gogpu/lessons"
)

func TestInitQuit(t *testing.T) {
	drv := New()
	if drv.Name() != "soft" {
		t.Errorf("Name() = %q", drv.Name())
	}
	if err := drv.Init(lessons.Video | lessons.Image); err != nil {
		t.Fatal(err)
	}
	if err := drv.Init(lessons.Font); err != nil {
		t.Fatal(err)
	}
	if got, want := drv.Initialized(), lessons.Video|lessons.Image|lessons.Font; got != want {
		t.Errorf("Initialized() = %v, want %v", got, want)
	}
	drv.Quit()
	if got := drv.Initialized(); got != 0 {
		t.Errorf("Initialized() after Quit = %v, want none", got)
	}
}

func TestBasePath(t *testing.T) {
	drv := New(WithBasePath("/opt/lessons/bin/"))
	got, err := drv.BasePath()
	if err != nil || got != "/opt/lessons/bin/" {
		t.Errorf("BasePath() = %q, %v", got, err)
	}

	got, err = New().BasePath()
	if err != nil || got == "" {
		t.Errorf("BasePath() without override = %q, %v", got, err)
	}
}

func TestWithEvents(t *testing.T) {
	drv := New(WithEvents(
		lessons.Event{Kind: lessons.KeyDown, Key: lessons.Key1},
		lessons.Event{Kind: lessons.MouseButtonDown},
	))
	if err := drv.Init(lessons.Video); err != nil {
		t.Fatal(err)
	}
	dev, err := drv.Open(lessons.DefaultConfig("a", "b", lessons.WithSize(8, 8)))
	if err != nil {
		t.Fatal(err)
	}
	defer dev.Close()
	if drv.Device() != dev {
		t.Error("Device() does not return the opened device")
	}

	var kinds []lessons.EventKind
	for {
		ev, ok := dev.PollEvent()
		if !ok {
			break
		}
		kinds = append(kinds, ev.Kind)
	}
	if len(kinds) != 2 || kinds[0] != lessons.KeyDown || kinds[1] != lessons.MouseButtonDown {
		t.Errorf("polled %v, want [keydown mousebuttondown]", kinds)
	}
}
