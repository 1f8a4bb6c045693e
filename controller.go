// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import (
	"fmt"

	"github.com/gogpu/videoplane/feather"
	"github.com/gogpu/videoplane/surface"
)

// Controller coordinates the lifecycle of a video playback surface:
// it reacts to the decode subsystem's asynchronous "prepared" signal,
// allocates or resizes the render-target surface, binds it to the
// feather material, sizes the display quad to the stream's aspect
// ratio, and drives decode and audio playback in lockstep.
//
// Controller is NOT safe for concurrent use. It belongs to a single
// logical owner thread (the engine's per-frame loop); the decoder's
// prepare notification must be delivered on that thread as well.
type Controller struct {
	decoder Decoder
	audio   AudioSink
	alloc   surface.Allocator
	cfg     Config

	material *feather.Material
	surf     surface.Surface
	quad     QuadGeometry
	session  *PlaybackSession

	state  State
	source SourceDescriptor
	stream StreamHandle

	// Last dimensions reported by the decoder, kept so a resume can
	// recreate the surface synchronously if it has gone missing.
	streamWidth  int
	streamHeight int

	// generation invalidates in-flight prepare callbacks. It is bumped
	// on source change and on teardown; a callback carrying a stale
	// generation is ignored.
	generation uint64

	lastErr error
	closed  bool
}

// NewController creates a Controller with explicitly injected
// collaborators. The decoder, audio sink and surface allocator are
// referenced, never owned; the controller exclusively owns the surface
// and the feather material it creates.
//
// Volume and mute from cfg.Playback are propagated to the audio sink
// immediately.
func NewController(decoder Decoder, audio AudioSink, alloc surface.Allocator, cfg Config) (*Controller, error) {
	if decoder == nil {
		return nil, ErrNilDecoder
	}
	if audio == nil {
		return nil, ErrNilAudioSink
	}
	if alloc == nil {
		return nil, ErrNilAllocator
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	// A missing or invalid shader must not fail construction: the
	// material degrades to an opaque untextured variant.
	mat := feather.NewMaterial(cfg.Feather)
	if mat.Fallback() {
		Logger().Warn("videoplane: feather shader unavailable, using opaque fallback material")
	}

	audio.SetVolume(cfg.Playback.Volume)
	audio.SetMuted(cfg.Playback.Muted)

	return &Controller{
		decoder:  decoder,
		audio:    audio,
		alloc:    alloc,
		cfg:      cfg,
		material: mat,
		quad: QuadGeometry{
			DisplayHeight: cfg.QuadHeight,
			AspectRatio:   DefaultAspectRatio,
			FaceViewpoint: cfg.FaceViewpoint,
		},
	}, nil
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return c.state }

// Err returns the most recent playback error, or nil.
func (c *Controller) Err() error { return c.lastErr }

// Quad returns the current quad geometry.
func (c *Controller) Quad() QuadGeometry { return c.quad }

// Material returns the feather material the compositor reads each
// frame. The controller retains ownership.
func (c *Controller) Material() *feather.Material { return c.material }

// Surface returns the current render-target surface, or nil before the
// stream is ready.
func (c *Controller) Surface() surface.Surface { return c.surf }

// Session returns the active playback session, or nil.
func (c *Controller) Session() *PlaybackSession { return c.session }

// SetSource binds a source descriptor. Binding an empty descriptor
// returns ErrNoSource. If a prepare was in flight or the stream was
// already ready or playing, the old stream is stopped, the pending
// callback is invalidated, and, when Autoplay is set, a new prepare
// is issued for the replacement source.
func (c *Controller) SetSource(src SourceDescriptor) error {
	if c.closed {
		return ErrControllerClosed
	}
	if src.IsZero() {
		return ErrNoSource
	}

	reprepare := false
	switch c.state {
	case StatePreparing, StateReady, StatePlaying, StatePaused:
		c.stopStream()
		reprepare = c.cfg.Playback.Autoplay
	}

	c.generation++
	c.source = src
	c.stream = nil
	c.state = StateSourceBound
	Logger().Debug("videoplane: source bound", "source", src.String())

	if reprepare {
		return c.Prepare()
	}
	return nil
}

// Prepare issues an asynchronous prepare request to the decode
// subsystem. It returns without waiting: the controller stays in
// Preparing until the decoder delivers its notification, which may be
// many frames later. Calling Prepare while already preparing is a
// no-op.
func (c *Controller) Prepare() error {
	if c.closed {
		return ErrControllerClosed
	}
	if c.source.IsZero() {
		return ErrNoSource
	}
	if c.state == StatePreparing {
		return nil
	}

	if c.stream == nil {
		h, err := c.decoder.Open(c.source)
		if err != nil {
			c.lastErr = &PlaybackError{Op: "open", Source: c.source, Err: err}
			return c.lastErr
		}
		c.stream = h
	}

	if ls, ok := c.decoder.(loopSetter); ok {
		ls.SetLoop(c.stream, c.cfg.Playback.Loop)
	}

	c.session = &PlaybackSession{
		Source:    c.source,
		Audio:     c.audio,
		StartedAt: now(),
	}

	gen := c.generation
	c.state = StatePreparing
	if err := c.decoder.Prepare(c.stream, func(info StreamInfo, err error) {
		c.onPrepared(gen, info, err)
	}); err != nil {
		c.state = StateSourceBound
		c.lastErr = &PlaybackError{Op: "prepare", Source: c.source, Err: err}
		return c.lastErr
	}
	return nil
}

// onPrepared handles the decoder's asynchronous notification. A
// notification from a superseded source or a torn-down controller is
// ignored.
func (c *Controller) onPrepared(gen uint64, info StreamInfo, err error) {
	if c.closed || gen != c.generation {
		Logger().Debug("videoplane: ignoring stale prepare notification",
			"generation", gen, "current", c.generation, "closed", c.closed)
		return
	}
	if err != nil {
		c.lastErr = &PlaybackError{Op: "prepare", Source: c.source, Err: err}
		c.state = StateSourceBound
		Logger().Warn("videoplane: prepare failed", "source", c.source.String(), "error", err)
		return
	}

	c.streamWidth = info.Width
	c.streamHeight = info.Height
	if serr := c.ensureSurface(info.Width, info.Height); serr != nil {
		// Degrade to an untextured quad rather than aborting.
		Logger().Warn("videoplane: surface allocation failed, continuing untextured", "error", serr)
	}
	c.quad.setAspectFromStream(info.Width, info.Height)
	c.state = StateReady
	Logger().Info("videoplane: stream ready",
		"width", info.Width, "height", info.Height, "aspect", c.quad.AspectRatio)

	if c.cfg.Playback.Autoplay {
		if perr := c.Play(); perr != nil {
			Logger().Warn("videoplane: autoplay failed", "error", perr)
		}
	}
}

// ensureSurface allocates or resizes the render-target surface.
// Invalid dimensions fall back to 1920x1080. Requesting the current
// dimensions is a no-op; a different size releases the old surface
// exactly once before the new one is created, and detaches it from the
// material first so no dangling bind remains.
func (c *Controller) ensureSurface(width, height int) error {
	if width <= 0 || height <= 0 {
		width, height = DefaultSurfaceWidth, DefaultSurfaceHeight
	}

	if c.surf != nil {
		if c.surf.Width() == width && c.surf.Height() == height {
			return nil
		}
		c.material.SetTexture(nil)
		c.surf.Release()
		c.surf = nil
	}

	s, err := c.alloc.Allocate(width, height, c.cfg.Format)
	if err != nil {
		c.lastErr = fmt.Errorf("%w: %dx%d: %v", ErrSurfaceAllocation, width, height, err)
		return c.lastErr
	}
	c.surf = s
	c.material.SetTexture(s)
	if c.session != nil {
		c.session.Surface = s
	}
	Logger().Debug("videoplane: surface sized", "width", width, "height", height)
	return nil
}

// Play starts or resumes playback of decode and audio together. Audio
// is only started when not muted. If the surface is unexpectedly
// absent (a resume requested outside the normal prepare flow) it is
// allocated synchronously first.
func (c *Controller) Play() error {
	if c.closed {
		return ErrControllerClosed
	}
	switch c.state {
	case StateReady, StatePaused, StateStopped:
	case StatePlaying:
		return nil
	default:
		return fmt.Errorf("%w: state is %s", ErrNotReady, c.state)
	}
	// Stopped is reachable before any prepare; resuming only makes
	// sense for a stream that was actually opened and prepared.
	if c.stream == nil {
		return fmt.Errorf("%w: no stream open", ErrNotReady)
	}

	// The surface may have been released by an earlier stop or a
	// failed resize.
	if c.surf == nil {
		if err := c.ensureSurface(c.streamWidth, c.streamHeight); err != nil {
			Logger().Warn("videoplane: playing without surface", "error", err)
		}
	}

	if err := c.decoder.Play(c.stream); err != nil {
		c.lastErr = &PlaybackError{Op: "play", Source: c.source, Err: err}
		return c.lastErr
	}
	if !c.cfg.Playback.Muted {
		if err := c.audio.Play(); err != nil {
			// Keep video running; audio failure is reported, not fatal.
			c.lastErr = &PlaybackError{Op: "audio play", Source: c.source, Err: err}
			Logger().Warn("videoplane: audio start failed", "error", err)
		}
	}
	c.state = StatePlaying
	return nil
}

// Pause suspends decode and audio together so they cannot drift.
func (c *Controller) Pause() error {
	if c.closed {
		return ErrControllerClosed
	}
	if c.state != StatePlaying {
		return nil
	}
	if err := c.decoder.Pause(c.stream); err != nil {
		c.lastErr = &PlaybackError{Op: "pause", Source: c.source, Err: err}
		return c.lastErr
	}
	if err := c.audio.Pause(); err != nil {
		Logger().Warn("videoplane: audio pause failed", "error", err)
	}
	c.state = StatePaused
	return nil
}

// Stop halts decode and audio. Stop is idempotent: stopping an already
// stopped or never-started controller is a no-op, never an error.
func (c *Controller) Stop() error {
	if c.closed {
		return nil
	}
	switch c.state {
	case StateUnconfigured, StateStopped:
		return nil
	}
	// A prepare may still be in flight; its notification must not
	// restart playback out of Stopped.
	c.generation++
	c.stopStream()
	c.state = StateStopped
	return nil
}

// stopStream halts the decoder and audio sink and ends the session.
// Safe to call with no stream open.
func (c *Controller) stopStream() {
	if c.stream != nil {
		if err := c.decoder.Stop(c.stream); err != nil {
			Logger().Warn("videoplane: decoder stop failed", "error", err)
		}
	}
	if err := c.audio.Stop(); err != nil {
		Logger().Warn("videoplane: audio stop failed", "error", err)
	}
	c.session.end()
}

// SyncFrame copies the decoder's most recent frame into the surface.
// Call once per render tick while playing. A missing frame or surface
// is a quiet no-op.
func (c *Controller) SyncFrame() error {
	if c.closed || c.state != StatePlaying || c.surf == nil {
		return nil
	}
	frame := c.decoder.CurrentFrame(c.stream)
	if frame == nil {
		return nil
	}
	return c.surf.Upload(frame)
}

// SetVolume sets the audio volume, clamped to [0, 1], and propagates
// it to the sink immediately.
func (c *Controller) SetVolume(volume float64) {
	if c.closed {
		return
	}
	if volume < 0 {
		volume = 0
	}
	if volume > 1 {
		volume = 1
	}
	c.cfg.Playback.Volume = volume
	c.audio.SetVolume(volume)
}

// SetMuted silences or restores the audio sink immediately.
func (c *Controller) SetMuted(muted bool) {
	if c.closed {
		return
	}
	c.cfg.Playback.Muted = muted
	c.audio.SetMuted(muted)
}

// SetFeather replaces the feather parameters. The change reaches the
// bound material immediately; the compositor picks it up next frame.
func (c *Controller) SetFeather(p feather.Params) {
	if c.closed {
		return
	}
	c.cfg.Feather = p
	c.material.SetParams(p)
}

// SetGlobalAlpha sets the global alpha scale in [0, 1].
func (c *Controller) SetGlobalAlpha(alpha float64) {
	if c.closed {
		return
	}
	c.material.SetGlobalAlpha(alpha)
	c.cfg.Feather = c.material.Params()
}

// SetFeatherEnabled toggles the feather falloff without touching the
// other parameters.
func (c *Controller) SetFeatherEnabled(enabled bool) {
	if c.closed {
		return
	}
	c.material.SetEnabled(enabled)
	c.cfg.Feather = c.material.Params()
}

// Close tears the controller down: any in-flight prepare notification
// is invalidated, playback is stopped, and the surface and material
// bindings are released. Close is safe from any state, including
// Unconfigured, and is idempotent.
func (c *Controller) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	c.generation++

	switch c.state {
	case StatePlaying, StatePaused, StatePreparing, StateReady:
		c.stopStream()
	default:
		c.session.end()
	}

	// Detach before releasing so the material never holds a dangling
	// reference to a released surface.
	c.material.SetTexture(nil)
	if c.surf != nil {
		c.surf.Release()
		c.surf = nil
	}
	c.stream = nil
	c.state = StateStopped
	return nil
}
