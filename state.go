// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import "fmt"

// State is the lifecycle state of a Controller.
//
// The normal progression is Unconfigured -> SourceBound -> Preparing ->
// Ready -> Playing <-> Paused -> Stopped. Ready re-enters Preparing
// when the source changes.
type State uint8

const (
	// StateUnconfigured means no source descriptor is bound.
	StateUnconfigured State = iota

	// StateSourceBound means a descriptor is bound but prepare has not
	// been requested.
	StateSourceBound

	// StatePreparing means a prepare request is in flight with the
	// decode subsystem. It may persist across many frames.
	StatePreparing

	// StateReady means stream metadata is known and the surface is
	// sized and bound.
	StateReady

	// StatePlaying means decode and audio are running.
	StatePlaying

	// StatePaused means decode and audio are suspended together.
	StatePaused

	// StateStopped means playback was halted.
	StateStopped
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateUnconfigured:
		return "Unconfigured"
	case StateSourceBound:
		return "SourceBound"
	case StatePreparing:
		return "Preparing"
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateStopped:
		return "Stopped"
	default:
		return fmt.Sprintf("Unknown(%d)", uint8(s))
	}
}
