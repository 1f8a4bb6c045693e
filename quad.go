// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package videoplane

import "math"

// Default geometry used until stream metadata is known.
const (
	// DefaultAspectRatio is the aspect assumed before the stream
	// reports its dimensions.
	DefaultAspectRatio = 16.0 / 9.0

	// DefaultSurfaceWidth and DefaultSurfaceHeight size the surface
	// when the decoded stream reports invalid dimensions.
	DefaultSurfaceWidth  = 1920
	DefaultSurfaceHeight = 1080
)

// Vec3 is a 3D vector.
type Vec3 struct {
	X, Y, Z float64
}

// QuadGeometry describes the displayed quad. Width is derived:
// DisplayHeight times AspectRatio.
type QuadGeometry struct {
	// DisplayHeight is the quad height in world units.
	DisplayHeight float64

	// AspectRatio is width over height of the video stream.
	// Defaults to 16:9 until stream metadata is known.
	AspectRatio float64

	// FaceViewpoint orients the quad toward a designated viewpoint.
	FaceViewpoint bool
}

// Scale returns the quad scale as (width, height, 1).
func (q QuadGeometry) Scale() Vec3 {
	return Vec3{
		X: q.DisplayHeight * q.AspectRatio,
		Y: q.DisplayHeight,
		Z: 1,
	}
}

// Width returns DisplayHeight times AspectRatio.
func (q QuadGeometry) Width() float64 {
	return q.DisplayHeight * q.AspectRatio
}

// setAspectFromStream updates the aspect ratio from stream dimensions,
// falling back to 16:9 when the stream reports non-positive values.
func (q *QuadGeometry) setAspectFromStream(width, height int) {
	if width <= 0 || height <= 0 {
		q.AspectRatio = DefaultAspectRatio
		return
	}
	q.AspectRatio = float64(width) / float64(height)
}

// YawToward returns the rotation around the Y axis, in radians, that
// turns a quad at position pos to face a viewpoint at view. Used when
// FaceViewpoint is set; the host applies the rotation to its own
// transform.
func YawToward(pos, view Vec3) float64 {
	return math.Atan2(view.X-pos.X, view.Z-pos.Z)
}
