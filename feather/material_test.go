// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import "testing"

// TestNewMaterial verifies the shader is present so construction does
// not fall back.
func TestNewMaterial(t *testing.T) {
	m := NewMaterial(DefaultParams())
	if m.Fallback() {
		t.Fatal("NewMaterial fell back with embedded shader present")
	}
	if m.Params() != DefaultParams().Clamped() {
		t.Errorf("Params() = %+v, want clamped defaults", m.Params())
	}
}

// TestMaterialSetters verifies parameter changes land immediately and
// are clamped.
func TestMaterialSetters(t *testing.T) {
	m := NewMaterial(DefaultParams())

	m.SetMargins(0.9, -1)
	if p := m.Params(); p.MarginX != 0.5 || p.MarginY != 0 {
		t.Errorf("margins = (%v, %v), want (0.5, 0)", p.MarginX, p.MarginY)
	}

	m.SetFalloffPower(10)
	if p := m.Params(); p.FalloffPower != MaxFalloffPower {
		t.Errorf("FalloffPower = %v, want %v", p.FalloffPower, MaxFalloffPower)
	}

	m.SetGlobalAlpha(0.25)
	if p := m.Params(); p.GlobalAlpha != 0.25 {
		t.Errorf("GlobalAlpha = %v, want 0.25", p.GlobalAlpha)
	}

	m.SetEnabled(false)
	if m.Params().Enabled {
		t.Error("Enabled = true after SetEnabled(false)")
	}
}

// TestMaterialTextureBinding verifies texture bind and detach.
func TestMaterialTextureBinding(t *testing.T) {
	m := NewMaterial(DefaultParams())
	if m.Texture() != nil {
		t.Error("new material has a bound texture")
	}

	tex := struct{ name string }{"video-surface"}
	m.SetTexture(tex)
	if m.Texture() != any(tex) {
		t.Error("SetTexture did not bind")
	}

	m.SetTexture(nil)
	if m.Texture() != nil {
		t.Error("SetTexture(nil) did not detach")
	}
}

// TestMaterialDirty verifies the one-frame staleness contract: any
// mutation raises the dirty flag, TakeDirty clears it.
func TestMaterialDirty(t *testing.T) {
	m := NewMaterial(DefaultParams())
	if !m.TakeDirty() {
		t.Error("new material not dirty")
	}
	if m.TakeDirty() {
		t.Error("TakeDirty did not clear the flag")
	}

	m.SetGlobalAlpha(0.5)
	if !m.TakeDirty() {
		t.Error("SetGlobalAlpha did not mark dirty")
	}

	m.SetTexture("tex")
	if !m.TakeDirty() {
		t.Error("SetTexture did not mark dirty")
	}
}

// TestMaterialUniforms verifies the material exports its parameters in
// GPU layout.
func TestMaterialUniforms(t *testing.T) {
	m := NewMaterial(Params{MarginX: 0.1, MarginY: 0.2, FalloffPower: 3, GlobalAlpha: 0.5, Enabled: true})
	u := m.Uniforms()
	if u.FeatherX != 0.1 || u.FeatherY != 0.2 || u.FalloffPower != 3 || u.GlobalAlpha != 0.5 || u.UseFeather != 1 {
		t.Errorf("Uniforms() = %+v", u)
	}
}
