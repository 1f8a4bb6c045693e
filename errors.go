// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import (
	"errors"
	"fmt"
)

// Common errors returned by Controller operations.
var (
	// ErrNoSource is returned when playback is requested without a
	// source descriptor bound.
	ErrNoSource = errors.New("videoplane: no source descriptor set")

	// ErrControllerClosed is returned when operations are attempted on
	// a closed controller.
	ErrControllerClosed = errors.New("videoplane: controller is closed")

	// ErrInvalidConfig is returned when configuration values are out
	// of range.
	ErrInvalidConfig = errors.New("videoplane: invalid configuration")

	// ErrNilDecoder is returned when a nil Decoder is passed.
	ErrNilDecoder = errors.New("videoplane: nil Decoder")

	// ErrNilAudioSink is returned when a nil AudioSink is passed.
	ErrNilAudioSink = errors.New("videoplane: nil AudioSink")

	// ErrNilAllocator is returned when a nil surface Allocator is passed.
	ErrNilAllocator = errors.New("videoplane: nil surface Allocator")

	// ErrSurfaceAllocation is returned when the surface allocator fails.
	// The controller degrades to an untextured quad rather than aborting.
	ErrSurfaceAllocation = errors.New("videoplane: surface allocation failed")

	// ErrNotReady is returned when Play is requested before the stream
	// has been prepared.
	ErrNotReady = errors.New("videoplane: stream is not ready")
)

// PlaybackError reports a decode or prepare failure. The original
// source descriptor is attached so the embedder can correlate the
// failure; the controller never retries internally.
type PlaybackError struct {
	// Op is the operation that failed ("open", "prepare", "play", ...).
	Op string

	// Source is the descriptor the failure relates to.
	Source SourceDescriptor

	// Err is the underlying error from the decode subsystem.
	Err error
}

func (e *PlaybackError) Error() string {
	return fmt.Sprintf("videoplane: %s failed for %s: %v", e.Op, e.Source, e.Err)
}

func (e *PlaybackError) Unwrap() error {
	return e.Err
}
