// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// Pixmap is a CPU-backed surface over an *image.RGBA. It is the
// software compositing target and the reference backend for tests.
type Pixmap struct {
	img      *image.RGBA
	width    int
	height   int
	format   gputypes.TextureFormat
	released bool
}

// NewPixmap creates a CPU-backed surface.
func NewPixmap(width, height int, format gputypes.TextureFormat) (*Pixmap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Pixmap{
		img:    image.NewRGBA(image.Rect(0, 0, width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Width returns the surface width in pixels.
func (p *Pixmap) Width() int { return p.width }

// Height returns the surface height in pixels.
func (p *Pixmap) Height() int { return p.height }

// Format returns the pixel format.
func (p *Pixmap) Format() gputypes.TextureFormat { return p.format }

// Image returns the underlying *image.RGBA. The returned image shares
// memory with the surface; nil after Release.
func (p *Pixmap) Image() *image.RGBA {
	return p.img
}

// Upload copies a decoded frame into the surface. A frame matching the
// surface dimensions is copied directly; mismatched frames are scaled
// with bilinear interpolation.
func (p *Pixmap) Upload(frame image.Image) error {
	if p.released {
		return ErrReleased
	}
	if frame == nil {
		return ErrNilFrame
	}

	dst := p.img.Bounds()
	src := frame.Bounds()
	if src.Dx() == dst.Dx() && src.Dy() == dst.Dy() {
		draw.Draw(p.img, dst, frame, src.Min, draw.Src)
		return nil
	}
	xdraw.BiLinear.Scale(p.img, dst, frame, src, xdraw.Src, nil)
	return nil
}

// Release frees the pixel buffer. Idempotent.
func (p *Pixmap) Release() {
	p.released = true
	p.img = nil
}

// Released reports whether Release has been called.
func (p *Pixmap) Released() bool { return p.released }

// Ensure Pixmap implements Surface.
var _ Surface = (*Pixmap)(nil)

// PixmapAllocator allocates CPU-backed surfaces.
type PixmapAllocator struct{}

// Allocate creates a Pixmap surface.
func (PixmapAllocator) Allocate(width, height int, format gputypes.TextureFormat) (Surface, error) {
	return NewPixmap(width, height, format)
}

// Ensure PixmapAllocator implements Allocator.
var _ Allocator = PixmapAllocator{}
