// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"fmt"
	"image"
	"image/draw"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"
)

// TextureCreator creates GPU textures from RGBA pixel data. gogpu
// renderers expose this through gpucontext (NewTextureFromRGBA).
type TextureCreator interface {
	NewTextureFromRGBA(width, height int, data []byte) (any, error)
}

// textureDestroyer matches the Destroy signature of gogpu textures.
type textureDestroyer interface {
	Destroy()
}

// Texture is a GPU-backed surface. The underlying GPU texture is
// created lazily on the first Upload; frame updates go through
// gpucontext.TextureUpdater when the texture supports it, and fall
// back to recreating the texture otherwise.
type Texture struct {
	creator TextureCreator
	tex     any

	// staging holds the CPU-side copy of the last frame; it is the
	// upload source and keeps frame conversion off the GPU path.
	staging *image.RGBA

	width    int
	height   int
	format   gputypes.TextureFormat
	released bool
}

// NewTexture creates a GPU-backed surface. The GPU texture itself is
// allocated on first Upload, so creation never touches the device.
func NewTexture(creator TextureCreator, width, height int, format gputypes.TextureFormat) (*Texture, error) {
	if creator == nil {
		return nil, ErrNilCreator
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	return &Texture{
		creator: creator,
		staging: image.NewRGBA(image.Rect(0, 0, width, height)),
		width:   width,
		height:  height,
		format:  format,
	}, nil
}

// Width returns the surface width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the surface height in pixels.
func (t *Texture) Height() int { return t.height }

// Format returns the pixel format.
func (t *Texture) Format() gputypes.TextureFormat { return t.format }

// Upload copies a decoded frame into the GPU texture, scaling
// mismatched frames with bilinear interpolation through the staging
// buffer first.
func (t *Texture) Upload(frame image.Image) error {
	if t.released {
		return ErrReleased
	}
	if frame == nil {
		return ErrNilFrame
	}

	dst := t.staging.Bounds()
	src := frame.Bounds()
	if src.Dx() == t.width && src.Dy() == t.height {
		draw.Draw(t.staging, dst, frame, src.Min, draw.Src)
	} else {
		xdraw.BiLinear.Scale(t.staging, dst, frame, src, xdraw.Src, nil)
	}

	// Lazy creation on first upload.
	if t.tex == nil {
		tex, err := t.creator.NewTextureFromRGBA(t.width, t.height, t.staging.Pix)
		if err != nil {
			return fmt.Errorf("surface: texture creation failed: %w", err)
		}
		t.tex = tex
		return nil
	}

	if updater, ok := t.tex.(gpucontext.TextureUpdater); ok {
		if err := updater.UpdateData(t.staging.Pix); err != nil {
			return fmt.Errorf("surface: texture update failed: %w", err)
		}
		return nil
	}

	// No in-place update path: recreate. The old texture is destroyed
	// after the replacement exists so a renderer never observes a gap.
	tex, err := t.creator.NewTextureFromRGBA(t.width, t.height, t.staging.Pix)
	if err != nil {
		return fmt.Errorf("surface: texture recreation failed: %w", err)
	}
	old := t.tex
	t.tex = tex
	destroyTexture(old)
	return nil
}

// GPUTexture returns the underlying texture as a gpucontext.Texture
// for drawing. ok is false before the first Upload, after Release, or
// when the creator returned an incompatible handle.
func (t *Texture) GPUTexture() (gpucontext.Texture, bool) {
	gpuTex, ok := t.tex.(gpucontext.Texture)
	return gpuTex, ok
}

// Raw returns the underlying texture handle, or nil.
func (t *Texture) Raw() any { return t.tex }

// Release destroys the GPU texture. Idempotent; releasing before the
// lazy texture was ever created is a safe no-op.
func (t *Texture) Release() {
	if t.released {
		return
	}
	t.released = true
	destroyTexture(t.tex)
	t.tex = nil
	t.staging = nil
}

// Released reports whether Release has been called.
func (t *Texture) Released() bool { return t.released }

// destroyTexture destroys a texture handle if it supports destruction.
func destroyTexture(tex any) {
	if destroyer, ok := tex.(textureDestroyer); ok {
		destroyer.Destroy()
	}
}

// Ensure Texture implements Surface.
var _ Surface = (*Texture)(nil)

// TextureAllocator allocates GPU-backed surfaces from a texture
// creator. Provider, when set, supplies the surface format for
// allocations requested with the zero format.
type TextureAllocator struct {
	// Creator creates the underlying GPU textures.
	Creator TextureCreator

	// Provider optionally supplies the device's preferred surface
	// format.
	Provider gpucontext.DeviceProvider
}

// Allocate creates a GPU-backed surface.
func (a TextureAllocator) Allocate(width, height int, format gputypes.TextureFormat) (Surface, error) {
	if a.Creator == nil {
		return nil, ErrNilCreator
	}
	var zero gputypes.TextureFormat
	if format == zero && a.Provider != nil {
		format = a.Provider.SurfaceFormat()
	}
	return NewTexture(a.Creator, width, height, format)
}

// Ensure TextureAllocator implements Allocator.
var _ Allocator = TextureAllocator{}
