// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import (
	"errors"
	"strings"
	"testing"
)

func TestSourceDescriptor(t *testing.T) {
	if !(SourceDescriptor{}).IsZero() {
		t.Error("empty descriptor not zero")
	}
	if SourceFromURL("clip.mp4", true).IsZero() {
		t.Error("URL descriptor reported zero")
	}
	if SourceFromHandle(42).IsZero() {
		t.Error("handle descriptor reported zero")
	}

	src := SourceFromURL("assets/clip.mp4", true)
	if !src.RelativeToAssetRoot {
		t.Error("asset-root flag dropped")
	}
	if src.String() != "assets/clip.mp4" {
		t.Errorf("String() = %q", src.String())
	}

	if got := SourceFromHandle("h").String(); !strings.Contains(got, "handle") {
		t.Errorf("String() = %q, want handle form", got)
	}
	if got := (SourceDescriptor{}).String(); got != "<no source>" {
		t.Errorf("String() = %q, want <no source>", got)
	}
}

func TestPlaybackError(t *testing.T) {
	cause := errors.New("stream closed by peer")
	err := &PlaybackError{Op: "play", Source: SourceFromURL("x.mp4", false), Err: cause}

	if !errors.Is(err, cause) {
		t.Error("Unwrap chain broken")
	}
	msg := err.Error()
	if !strings.Contains(msg, "play") || !strings.Contains(msg, "x.mp4") {
		t.Errorf("Error() = %q, missing op or source", msg)
	}
	if !strings.HasPrefix(msg, "videoplane:") {
		t.Errorf("Error() = %q, missing package prefix", msg)
	}
}

func TestStateString(t *testing.T) {
	states := []State{
		StateUnconfigured, StateSourceBound, StatePreparing,
		StateReady, StatePlaying, StatePaused, StateStopped,
	}
	seen := make(map[string]bool)
	for _, s := range states {
		name := s.String()
		if name == "" || strings.Contains(name, "State(") {
			t.Errorf("State(%d).String() = %q", s, name)
		}
		if seen[name] {
			t.Errorf("duplicate state name %q", name)
		}
		seen[name] = true
	}
	if got := State(99).String(); !strings.Contains(got, "99") {
		t.Errorf("unknown state String() = %q", got)
	}
}
