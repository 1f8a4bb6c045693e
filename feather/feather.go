// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import "math"

// Epsilon is the margin floor that keeps the edge ratio finite when a
// margin of exactly zero is configured. A zero margin therefore
// degenerates to a hard-edged quad instead of producing NaN or Inf.
const Epsilon = 1e-5

// MaxFalloffPower bounds the falloff exponent. The configuration
// surface advertises (0, 5]; out-of-range values reachable through it
// are clamped here rather than trusted.
const MaxFalloffPower = 5.0

// Params configures the feather falloff.
type Params struct {
	// MarginX and MarginY are the feather widths in UV space, each in
	// [0, 0.5]. Zero produces a hard edge.
	MarginX, MarginY float64

	// FalloffPower shapes the fade: 1 is linear, below 1 sharpens the
	// visible edge inward, above 1 softens and extends it. Clamped to
	// (0, 5]; non-positive values fall back to linear.
	FalloffPower float64

	// GlobalAlpha scales the whole quad's opacity, in [0, 1].
	GlobalAlpha float64

	// Enabled turns the falloff on. When false only GlobalAlpha
	// applies.
	Enabled bool
}

// DefaultParams returns a mild feather: 10% margins, quadratic
// falloff, fully opaque.
func DefaultParams() Params {
	return Params{
		MarginX:      0.1,
		MarginY:      0.1,
		FalloffPower: 2,
		GlobalAlpha:  1,
		Enabled:      true,
	}
}

// Clamped returns a copy with every field forced into its documented
// range. AlphaFactor and the uniform packers apply it internally, so
// callers only need it when they want to observe the effective values.
func (p Params) Clamped() Params {
	p.MarginX = clamp(p.MarginX, 0, 0.5)
	p.MarginY = clamp(p.MarginY, 0, 0.5)
	if p.FalloffPower <= 0 {
		p.FalloffPower = 1
	} else if p.FalloffPower > MaxFalloffPower {
		p.FalloffPower = MaxFalloffPower
	}
	p.GlobalAlpha = clamp(p.GlobalAlpha, 0, 1)
	return p
}

// AlphaFactor computes the feather opacity multiplier for a UV
// coordinate in [0,1]x[0,1]. It does not include GlobalAlpha; the
// final alpha is sourceAlpha * AlphaFactor * GlobalAlpha.
//
// Per axis the ratio saturates to exactly 1 once the distance to the
// nearest UV boundary comes within Epsilon of the margin; the
// comparison runs before any division, so rounding in 1-u can never
// leave a seam of not-quite-opaque pixels where the margin ends.
// Inside the margin the ratio is distance over margin. The smaller of
// the two axes dominates, so corners, constrained by both, fade at
// least as fast as edges. The result is raised to FalloffPower.
//
// Properties guaranteed for clamped parameters:
//   - exactly 1 everywhere the edge distance meets or exceeds the margin
//   - 0 exactly on the boundary when the margin is positive
//   - monotonically non-decreasing in edge distance
//   - never NaN or Inf, including at margin 0
func AlphaFactor(u, v float64, p Params) float64 {
	if !p.Enabled {
		return 1
	}
	p = p.Clamped()

	edgeU := math.Min(u, 1-u)
	edgeV := math.Min(v, 1-v)

	factor := math.Min(axisFactor(edgeU, p.MarginX), axisFactor(edgeV, p.MarginY))
	if p.FalloffPower != 1 {
		factor = math.Pow(factor, p.FalloffPower)
	}
	return factor
}

// axisFactor computes the single-axis falloff ratio. Edge distances
// within Epsilon of the margin saturate before dividing; a margin of
// zero therefore yields a hard edge with no division at all.
func axisFactor(edge, margin float64) float64 {
	if edge <= 0 {
		return 0
	}
	if edge >= margin-Epsilon {
		return 1
	}
	return edge / margin
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
