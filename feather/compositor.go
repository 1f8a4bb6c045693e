// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package feather

import "image"

// Apply multiplies the feather falloff and global alpha into img in
// place. Pixel centers map to UV samples: pixel (x, y) of a WxH image
// samples UV ((x+0.5)/W, (y+0.5)/H), matching what the rasterizer
// feeds the fragment shader.
//
// image.RGBA stores alpha-premultiplied color, so all four channels
// are scaled by the same factor.
//
// This is the CPU reference path; GPU pipelines run the embedded WGSL
// shader instead and must produce the same output.
func Apply(img *image.RGBA, p Params) {
	if img == nil {
		return
	}
	p = p.Clamped()

	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	if w == 0 || h == 0 {
		return
	}

	// Without feathering only the global scale applies, uniformly.
	if !p.Enabled {
		if p.GlobalAlpha < 1 {
			scalePixels(img.Pix, p.GlobalAlpha)
		}
		return
	}

	for y := 0; y < h; y++ {
		v := (float64(y) + 0.5) / float64(h)
		row := img.Pix[y*img.Stride : y*img.Stride+w*4]
		for x := 0; x < w; x++ {
			u := (float64(x) + 0.5) / float64(w)
			f := AlphaFactor(u, v, p) * p.GlobalAlpha
			if f >= 1 {
				continue
			}
			px := row[x*4 : x*4+4 : x*4+4]
			px[0] = scale8(px[0], f)
			px[1] = scale8(px[1], f)
			px[2] = scale8(px[2], f)
			px[3] = scale8(px[3], f)
		}
	}
}

// scalePixels multiplies every byte of pix by f.
func scalePixels(pix []byte, f float64) {
	for i, b := range pix {
		pix[i] = scale8(b, f)
	}
}

// scale8 scales one 8-bit channel with rounding.
func scale8(b byte, f float64) byte {
	return byte(float64(b)*f + 0.5)
}
