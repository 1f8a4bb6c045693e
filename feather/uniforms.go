// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import (
	"encoding/binary"
	"math"
)

// Uniforms is the GPU-compatible layout of Params.
// Must match FeatherUniforms in shaders/feather.wgsl.
type Uniforms struct {
	FeatherX     float32 // Feather margin X in UV space
	FeatherY     float32 // Feather margin Y in UV space
	FalloffPower float32 // Falloff exponent, clamped to (0, 5]
	GlobalAlpha  float32 // Global alpha scale in [0, 1]
	UseFeather   uint32  // 1 when feathering is enabled, else 0
	Padding1     uint32  // Padding for 16-byte uniform block alignment
	Padding2     uint32  // Padding for alignment
	Padding3     uint32  // Padding for alignment
}

// UniformsSize is the packed byte size of the uniform block.
const UniformsSize = 32

// UniformsFromParams converts clamped parameters to their GPU layout.
func UniformsFromParams(p Params) Uniforms {
	p = p.Clamped()
	u := Uniforms{
		FeatherX:     float32(p.MarginX),
		FeatherY:     float32(p.MarginY),
		FalloffPower: float32(p.FalloffPower),
		GlobalAlpha:  float32(p.GlobalAlpha),
	}
	if p.Enabled {
		u.UseFeather = 1
	}
	return u
}

// Pack serializes the block as little-endian bytes for queue upload.
// The result is always UniformsSize bytes.
func (u Uniforms) Pack() []byte {
	buf := make([]byte, UniformsSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(u.FeatherX))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(u.FeatherY))
	binary.LittleEndian.PutUint32(buf[8:], math.Float32bits(u.FalloffPower))
	binary.LittleEndian.PutUint32(buf[12:], math.Float32bits(u.GlobalAlpha))
	binary.LittleEndian.PutUint32(buf[16:], u.UseFeather)
	return buf
}
