// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"math/cmplx"
)

// prewarp maps a cutoff normalised by Nyquist onto the analog axis used by
// the bilinear transform (sampling frequency taken as 2).
func prewarp(normalised float64) float64 {
	return 4 * math.Tan(math.Pi*normalised/2)
}

// bilinear maps an analog pole to the z-plane.
func bilinear(s complex128) complex128 {
	return (4 + s) / (4 - s)
}

// polePair builds a section with the given conjugate (or real) pole pair and
// the band-pass zeros at z = ±1.
func polePair(z1, z2 complex128) biquad {
	return biquad{
		b0: 1,
		b1: 0,
		b2: -1,
		a1: -real(z1 + z2),
		a2: real(z1 * z2),
	}
}

// designBandPass returns an order-N Butterworth band-pass between lo and hi,
// both normalised by Nyquist, as N second-order sections. The cascade has
// unity gain at the digital centre frequency.
func designBandPass(order int, lo, hi float64) (cascade, error) {
	wl, wh := prewarp(lo), prewarp(hi)
	bw := wh - wl
	w0 := math.Sqrt(wl * wh)

	sections := make(cascade, 0, order)
	for k := range order {
		theta := math.Pi * float64(2*k+order+1) / float64(2*order)
		p := cmplx.Rect(1, theta)
		if imag(p) < -1e-12 {
			// conjugate of a pole already handled
			continue
		}

		// low-pass to band-pass: each prototype pole splits in two
		half := p * complex(bw/2, 0)
		d := cmplx.Sqrt(half*half - complex(w0*w0, 0))
		za, zb := bilinear(half+d), bilinear(half-d)

		if math.Abs(imag(p)) <= 1e-12 {
			sections = append(sections, polePair(za, zb))
			continue
		}
		sections = append(sections,
			polePair(za, cmplx.Conj(za)),
			polePair(zb, cmplx.Conj(zb)),
		)
	}

	for _, q := range sections {
		if !q.finite() || !q.stable() {
			return nil, ErrNumericDegeneracy
		}
	}

	centre := 2 * math.Atan(w0/4)
	g := real(sections.response(centre))
	if math.Abs(g) < 1e-12 || math.IsNaN(g) || math.IsInf(g, 0) {
		return nil, ErrNumericDegeneracy
	}
	sections[0].b0 /= g
	sections[0].b2 /= g

	return sections, nil
}
