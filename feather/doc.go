// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package feather implements the edge-feather alpha compositor: a
// per-pixel opacity falloff near a texture's UV boundary that replaces
// the hard rectangular edge of a video quad with a soft fade.
//
// The falloff is defined once, in [AlphaFactor], and realized twice:
// as a CPU reference compositor over an *image.RGBA ([Apply]) and as a
// WGSL fragment shader compiled through gogpu/naga for GPU pipelines.
// Both paths compute the identical function; the CPU path is the
// ground truth the shader must match.
//
// A [Material] carries the bound parameters (one source texture plus
// the feather uniforms) that a renderer reads every frame. The
// material has no mutable state of its own beyond those parameters,
// so reading it per frame needs no coordination.
package feather
