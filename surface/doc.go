// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package surface provides render-target surfaces for video playback:
// pixel buffers written by the decode pipeline each frame and read as
// the source texture by the feather compositor.
//
// Two backends are provided. Pixmap is a CPU-backed surface over an
// *image.RGBA, useful for software compositing and tests. Texture is a
// GPU-backed surface built on gpucontext texture creation, with
// deferred destruction of the previous texture across resizes.
//
// Surfaces are NOT thread-safe; each surface belongs to the lifecycle
// controller's owning thread.
package surface
