// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import "image"

// StreamHandle is an opaque reference to an open decode stream.
// Its concrete type belongs to the Decoder implementation.
type StreamHandle any

// StreamInfo carries the metadata the decode subsystem reports once a
// stream has been prepared.
type StreamInfo struct {
	// Width and Height are the decoded frame dimensions in pixels.
	// Non-positive values mean the decoder could not determine them.
	Width, Height int
}

// PrepareFunc receives the result of an asynchronous prepare request.
// It is invoked on the controller's owning thread, possibly many
// frames after Prepare returned. Exactly one of info or err is
// meaningful: err non-nil reports a prepare failure.
type PrepareFunc func(info StreamInfo, err error)

// Decoder is the capability interface to the host engine's video
// decode subsystem. Implementations are injected into NewController;
// the controller never owns or implements decoding itself.
//
// All methods are called from the controller's owning thread.
type Decoder interface {
	// Open resolves a source descriptor into a stream handle.
	Open(src SourceDescriptor) (StreamHandle, error)

	// Prepare asynchronously prepares the stream for playback and
	// reports the result through notify. Prepare must not block;
	// notify must be delivered on the owning thread.
	Prepare(h StreamHandle, notify PrepareFunc) error

	// Play starts or resumes decoded frame delivery.
	Play(h StreamHandle) error

	// Pause suspends frame delivery without discarding the stream.
	Pause(h StreamHandle) error

	// Stop halts the stream. Stopping a stopped stream is a no-op.
	Stop(h StreamHandle) error

	// IsPrepared reports whether the stream metadata is available.
	IsPrepared(h StreamHandle) bool

	// CurrentFrame returns the most recently decoded frame, or nil if
	// none is available yet. The returned image is only valid until
	// the next decode tick; callers copy it (Surface.Upload does).
	CurrentFrame(h StreamHandle) image.Image
}

// loopSetter is implemented by decoders that support looped playback.
// The controller passes the Loop config through when available.
type loopSetter interface {
	SetLoop(h StreamHandle, loop bool)
}

// AudioSink is the capability interface to the host's audio output.
// Volume and mute changes propagate live; Play, Pause and Stop are
// driven in lockstep with the decoder so video and audio never drift.
type AudioSink interface {
	// SetVolume sets the output volume in [0, 1].
	SetVolume(volume float64)

	// SetMuted silences or restores the output.
	SetMuted(muted bool)

	// Play starts or resumes audio output.
	Play() error

	// Pause suspends audio output.
	Pause() error

	// Stop halts audio output. Stopping twice is a no-op.
	Stop() error
}
