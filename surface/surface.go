// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"

	"github.com/gogpu/gputypes"
)

// Common errors returned by surface operations.
var (
	// ErrInvalidDimensions is returned when width or height is not
	// positive.
	ErrInvalidDimensions = errors.New("surface: invalid dimensions")

	// ErrReleased is returned when uploading to a released surface.
	ErrReleased = errors.New("surface: surface has been released")

	// ErrNilFrame is returned when a nil frame is uploaded.
	ErrNilFrame = errors.New("surface: nil frame")

	// ErrNilCreator is returned when a texture allocator is built
	// without a texture creator.
	ErrNilCreator = errors.New("surface: nil texture creator")
)

// Surface is a fixed-size pixel target. It is written by the decode
// pipeline via Upload and read by the compositor as a texture.
type Surface interface {
	// Width returns the surface width in pixels.
	Width() int

	// Height returns the surface height in pixels.
	Height() int

	// Format returns the pixel format of the surface.
	Format() gputypes.TextureFormat

	// Upload copies a decoded frame into the surface. Frames whose
	// dimensions differ from the surface are scaled to fit.
	Upload(frame image.Image) error

	// Release frees the surface's resources. Release is idempotent;
	// releasing twice, or releasing a surface that never fully
	// allocated, is a safe no-op.
	Release()

	// Released reports whether Release has been called.
	Released() bool
}

// Allocator creates surfaces. The lifecycle controller asks it for a
// new surface whenever the required dimensions change.
type Allocator interface {
	// Allocate creates a surface of the given size and format.
	Allocate(width, height int, format gputypes.TextureFormat) (Surface, error)
}
