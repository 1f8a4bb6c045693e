// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import (
	_ "embed"
	"errors"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// Embedded WGSL shader source, compiled at build time via go:embed.
//
//go:embed shaders/feather.wgsl
var shaderSource string

// ErrEmptyShaderSource is returned when the embedded WGSL source is
// missing. Material construction treats this as a signal to fall back
// to the opaque variant rather than failing.
var ErrEmptyShaderSource = errors.New("feather: embedded shader source is empty")

// ShaderSource returns the WGSL source of the feather shader. Any host
// renderer that binds the mainTexture sampler plus the feather, the
// falloffPower, the globalAlpha and the useFeather uniforms reproduces
// the visual contract exactly.
func ShaderSource() string {
	return shaderSource
}

// ValidateShaderSource checks that the embedded source is present.
func ValidateShaderSource() error {
	if shaderSource == "" {
		return ErrEmptyShaderSource
	}
	return nil
}

// CompileShader compiles the WGSL source to SPIR-V words.
func CompileShader() ([]uint32, error) {
	if err := ValidateShaderSource(); err != nil {
		return nil, err
	}
	spirvBytes, err := naga.Compile(shaderSource)
	if err != nil {
		return nil, fmt.Errorf("feather: shader compilation failed: %w", err)
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return spirvCode, nil
}

// NewShaderModule compiles the feather shader and wraps it in a HAL
// shader module on the given device.
func NewShaderModule(device hal.Device, label string) (hal.ShaderModule, error) {
	spirvCode, err := CompileShader()
	if err != nil {
		return nil, err
	}
	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("feather: shader module creation failed: %w", err)
	}
	return module, nil
}
