// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import (
	"time"

	"github.com/gogpu/videoplane/surface"
)

// PlaybackSession binds one source descriptor, the surface it renders
// into, and the audio sink for the duration of a playback attempt. A
// session exists from the moment prepare is requested until the stream
// is stopped or the controller is torn down.
type PlaybackSession struct {
	// Source is the descriptor this session plays.
	Source SourceDescriptor

	// Surface is the render target, nil until the stream is ready.
	Surface surface.Surface

	// Audio is the sink driven alongside the decoder.
	Audio AudioSink

	// StartedAt records when prepare was requested.
	StartedAt time.Time

	ended bool
}

// Active reports whether the session is still live.
func (s *PlaybackSession) Active() bool {
	return s != nil && !s.ended
}

// end marks the session finished. Idempotent.
func (s *PlaybackSession) end() {
	if s != nil {
		s.ended = true
	}
}
