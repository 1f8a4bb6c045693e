// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/videoplane/feather"
)

// PlaybackConfig holds playback policy. It is snapshotted at
// construction; Volume and Muted remain live-propagated to the audio
// sink through Controller.SetVolume and Controller.SetMuted.
type PlaybackConfig struct {
	// Autoplay starts playback as soon as the stream becomes ready.
	Autoplay bool

	// Loop restarts the stream when it ends. Honored by decoders that
	// support it (see Controller.Prepare).
	Loop bool

	// Volume is the audio volume in [0, 1]. Out-of-range values are
	// clamped.
	Volume float64

	// Muted silences the audio sink without changing Volume.
	Muted bool
}

// clamped returns a copy with Volume forced into [0, 1].
func (c PlaybackConfig) clamped() PlaybackConfig {
	if c.Volume < 0 {
		c.Volume = 0
	}
	if c.Volume > 1 {
		c.Volume = 1
	}
	return c
}

// Config configures a Controller.
type Config struct {
	// Playback is the playback policy snapshot.
	Playback PlaybackConfig

	// QuadHeight is the display height of the quad in world units.
	// Zero selects the default of 1. Negative values are invalid.
	QuadHeight float64

	// FaceViewpoint orients the quad toward a designated viewpoint
	// when the stream becomes ready.
	FaceViewpoint bool

	// Feather configures the edge-feather compositor. Out-of-range
	// fields are clamped by the feather package.
	Feather feather.Params

	// Format is the pixel format for allocated surfaces.
	// Zero selects RGBA8.
	Format gputypes.TextureFormat
}

// withDefaults returns a copy with zero fields replaced by defaults.
func (c Config) withDefaults() Config {
	if c.QuadHeight == 0 {
		c.QuadHeight = 1
	}
	var zero gputypes.TextureFormat
	if c.Format == zero {
		c.Format = gputypes.TextureFormatRGBA8Unorm
	}
	c.Playback = c.Playback.clamped()
	return c
}

// validate reports configuration errors that defaults cannot repair.
func (c Config) validate() error {
	if c.QuadHeight < 0 {
		return fmt.Errorf("%w: quad height %v must be positive", ErrInvalidConfig, c.QuadHeight)
	}
	return nil
}
