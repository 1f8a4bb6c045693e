// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import (
	"encoding/binary"
	"math"
	"testing"
	"unsafe"
)

// TestUniformsLayout verifies the Go struct matches the WGSL block
// size so Pack and a future direct memory upload agree.
func TestUniformsLayout(t *testing.T) {
	if size := unsafe.Sizeof(Uniforms{}); size != UniformsSize {
		t.Errorf("Uniforms size = %d, want %d", size, UniformsSize)
	}
}

// TestUniformsFromParams verifies conversion including clamping and
// the enabled flag.
func TestUniformsFromParams(t *testing.T) {
	u := UniformsFromParams(Params{MarginX: 0.2, MarginY: 0.3, FalloffPower: 2, GlobalAlpha: 0.5, Enabled: true})
	if u.FeatherX != 0.2 || u.FeatherY != 0.3 {
		t.Errorf("feather = (%v, %v), want (0.2, 0.3)", u.FeatherX, u.FeatherY)
	}
	if u.FalloffPower != 2 || u.GlobalAlpha != 0.5 {
		t.Errorf("power/alpha = (%v, %v), want (2, 0.5)", u.FalloffPower, u.GlobalAlpha)
	}
	if u.UseFeather != 1 {
		t.Errorf("UseFeather = %d, want 1", u.UseFeather)
	}

	// Disabled and out-of-range input.
	u = UniformsFromParams(Params{MarginX: 3, FalloffPower: -1, GlobalAlpha: 2})
	if u.UseFeather != 0 {
		t.Errorf("UseFeather = %d, want 0", u.UseFeather)
	}
	if u.FeatherX != 0.5 {
		t.Errorf("FeatherX = %v, want clamped 0.5", u.FeatherX)
	}
	if u.FalloffPower != 1 {
		t.Errorf("FalloffPower = %v, want clamped 1", u.FalloffPower)
	}
	if u.GlobalAlpha != 1 {
		t.Errorf("GlobalAlpha = %v, want clamped 1", u.GlobalAlpha)
	}
}

// TestUniformsPack verifies the packed bytes: little-endian field
// order matching the WGSL struct, zero padding, fixed size.
func TestUniformsPack(t *testing.T) {
	u := Uniforms{FeatherX: 0.1, FeatherY: 0.25, FalloffPower: 2, GlobalAlpha: 1, UseFeather: 1}
	buf := u.Pack()

	if len(buf) != UniformsSize {
		t.Fatalf("Pack() length = %d, want %d", len(buf), UniformsSize)
	}

	readF32 := func(off int) float32 {
		return math.Float32frombits(binary.LittleEndian.Uint32(buf[off:]))
	}
	if got := readF32(0); got != 0.1 {
		t.Errorf("offset 0 = %v, want 0.1", got)
	}
	if got := readF32(4); got != 0.25 {
		t.Errorf("offset 4 = %v, want 0.25", got)
	}
	if got := readF32(8); got != 2 {
		t.Errorf("offset 8 = %v, want 2", got)
	}
	if got := readF32(12); got != 1 {
		t.Errorf("offset 12 = %v, want 1", got)
	}
	if got := binary.LittleEndian.Uint32(buf[16:]); got != 1 {
		t.Errorf("offset 16 = %d, want 1", got)
	}
	for i := 20; i < UniformsSize; i++ {
		if buf[i] != 0 {
			t.Errorf("padding byte %d = %d, want 0", i, buf[i])
		}
	}
}
