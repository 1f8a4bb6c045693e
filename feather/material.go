// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

// Material is the parameter block a renderer binds when compositing
// the video quad: one source texture plus the feather uniforms. The
// lifecycle controller owns and mutates it; the renderer only reads it
// per frame, so no locking is needed under the single-owner-thread
// model.
//
// Parameter setters take effect immediately. The dirty flag lets a
// renderer skip re-uploading the uniform block on frames where nothing
// changed; at most one frame of staleness is possible.
type Material struct {
	params   Params
	texture  any
	fallback bool
	dirty    bool
}

// NewMaterial creates a material with the given parameters. When the
// embedded feather shader is unavailable the material degrades to a
// fallback variant, plain opaque with no feathering, instead of failing,
// so quad construction never aborts on a missing shader resource.
func NewMaterial(p Params) *Material {
	m := &Material{
		params: p.Clamped(),
		dirty:  true,
	}
	if err := ValidateShaderSource(); err != nil {
		m.fallback = true
		m.params.Enabled = false
	}
	return m
}

// Fallback reports whether the material is the opaque fallback
// variant created when the feather shader is missing.
func (m *Material) Fallback() bool {
	return m.fallback
}

// Params returns the effective (clamped) parameters.
func (m *Material) Params() Params {
	return m.params
}

// SetParams replaces all feather parameters at once.
// On a fallback material feathering stays disabled.
func (m *Material) SetParams(p Params) {
	m.params = p.Clamped()
	if m.fallback {
		m.params.Enabled = false
	}
	m.dirty = true
}

// SetMargins sets the UV-space feather margins.
func (m *Material) SetMargins(x, y float64) {
	p := m.params
	p.MarginX, p.MarginY = x, y
	m.SetParams(p)
}

// SetFalloffPower sets the falloff exponent.
func (m *Material) SetFalloffPower(power float64) {
	p := m.params
	p.FalloffPower = power
	m.SetParams(p)
}

// SetGlobalAlpha sets the global alpha scale.
func (m *Material) SetGlobalAlpha(alpha float64) {
	p := m.params
	p.GlobalAlpha = alpha
	m.SetParams(p)
}

// SetEnabled toggles the feather falloff.
func (m *Material) SetEnabled(enabled bool) {
	p := m.params
	p.Enabled = enabled
	m.SetParams(p)
}

// SetTexture binds the source texture the compositor samples,
// typically a surface.Surface or a GPU texture handle. Pass nil to
// detach before the texture is released.
func (m *Material) SetTexture(tex any) {
	m.texture = tex
	m.dirty = true
}

// Texture returns the bound source texture, or nil.
func (m *Material) Texture() any {
	return m.texture
}

// Uniforms returns the GPU layout of the current parameters.
func (m *Material) Uniforms() Uniforms {
	return UniformsFromParams(m.params)
}

// TakeDirty reports whether the material changed since the last call
// and clears the flag. Renderers call it once per frame.
func (m *Material) TakeDirty() bool {
	d := m.dirty
	m.dirty = false
	return d
}
