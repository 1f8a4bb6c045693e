// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package surface

import (
	"errors"
	"image"
	"testing"

	"github.com/gogpu/gputypes"
)

// TestSurfaceInterface verifies both backends satisfy Surface.
func TestSurfaceInterface(t *testing.T) {
	var _ Surface = (*Pixmap)(nil)
	var _ Surface = (*Texture)(nil)
	var _ Allocator = PixmapAllocator{}
	var _ Allocator = TextureAllocator{}
}

// TestNewPixmap tests creation and dimension validation.
func TestNewPixmap(t *testing.T) {
	tests := []struct {
		name    string
		width   int
		height  int
		wantErr error
	}{
		{"valid", 640, 480, nil},
		{"zero width", 0, 480, ErrInvalidDimensions},
		{"negative height", 640, -1, ErrInvalidDimensions},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewPixmap(tt.width, tt.height, gputypes.TextureFormatRGBA8Unorm)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("NewPixmap() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.Width() != tt.width || p.Height() != tt.height {
				t.Errorf("size = %dx%d, want %dx%d", p.Width(), p.Height(), tt.width, tt.height)
			}
			if p.Format() != gputypes.TextureFormatRGBA8Unorm {
				t.Errorf("Format() = %v", p.Format())
			}
		})
	}
}

// TestPixmapUpload verifies direct copy and bilinear scaling paths.
func TestPixmapUpload(t *testing.T) {
	p, err := NewPixmap(4, 4, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatal(err)
	}

	// Matching dimensions: direct copy.
	frame := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for i := range frame.Pix {
		frame.Pix[i] = 0xff
	}
	if err := p.Upload(frame); err != nil {
		t.Fatalf("Upload(same size) = %v", err)
	}
	if got := p.Image().RGBAAt(2, 2).A; got != 0xff {
		t.Errorf("pixel alpha after upload = %d, want 255", got)
	}

	// Mismatched dimensions: scaled to fit.
	big := image.NewRGBA(image.Rect(0, 0, 16, 8))
	for i := range big.Pix {
		big.Pix[i] = 0x80
	}
	if err := p.Upload(big); err != nil {
		t.Fatalf("Upload(mismatched) = %v", err)
	}
	if got := p.Image().RGBAAt(1, 1).A; got != 0x80 {
		t.Errorf("scaled pixel alpha = %d, want 128", got)
	}

	// Nil frame rejected.
	if err := p.Upload(nil); !errors.Is(err, ErrNilFrame) {
		t.Errorf("Upload(nil) = %v, want ErrNilFrame", err)
	}
}

// TestPixmapRelease verifies idempotent release and post-release
// behavior.
func TestPixmapRelease(t *testing.T) {
	p, err := NewPixmap(8, 8, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatal(err)
	}

	p.Release()
	if !p.Released() {
		t.Error("Released() = false after Release")
	}

	// Double release is a safe no-op.
	p.Release()

	if err := p.Upload(image.NewRGBA(image.Rect(0, 0, 8, 8))); !errors.Is(err, ErrReleased) {
		t.Errorf("Upload after release = %v, want ErrReleased", err)
	}

	// Dimensions stay readable after release.
	if p.Width() != 8 || p.Height() != 8 {
		t.Errorf("size after release = %dx%d, want 8x8", p.Width(), p.Height())
	}
}

// TestPixmapAllocator verifies the allocator produces pixmaps.
func TestPixmapAllocator(t *testing.T) {
	s, err := PixmapAllocator{}.Allocate(320, 240, gputypes.TextureFormatRGBA8Unorm)
	if err != nil {
		t.Fatalf("Allocate() = %v", err)
	}
	if _, ok := s.(*Pixmap); !ok {
		t.Errorf("Allocate() returned %T, want *Pixmap", s)
	}
}
