// SPDX-License-Identifier: EPL-2.0

package effects

import (
	"math"
	"math/cmplx"
)

// biquad holds normalised second-order coefficients (a0 == 1).
type biquad struct {
	b0, b1, b2 float64
	a1, a2     float64
}

// filter runs x through the section in place, direct form II transposed,
// starting from zero state.
func (q biquad) filter(x []float64) {
	var s1, s2 float64
	for i, in := range x {
		out := q.b0*in + s1
		s1 = q.b1*in - q.a1*out + s2
		s2 = q.b2*in - q.a2*out
		x[i] = out
	}
}

// response evaluates H(e^jw).
func (q biquad) response(w float64) complex128 {
	zi := cmplx.Exp(complex(0, -w))
	num := complex(q.b0, 0) + complex(q.b1, 0)*zi + complex(q.b2, 0)*zi*zi
	den := 1 + complex(q.a1, 0)*zi + complex(q.a2, 0)*zi*zi

	return num / den
}

func (q biquad) finite() bool {
	for _, v := range [...]float64{q.b0, q.b1, q.b2, q.a1, q.a2} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}

// stable reports whether both poles lie strictly inside the unit circle.
func (q biquad) stable() bool {
	disc := cmplx.Sqrt(complex(q.a1*q.a1-4*q.a2, 0))
	p1 := (complex(-q.a1, 0) + disc) / 2
	p2 := (complex(-q.a1, 0) - disc) / 2

	return cmplx.Abs(p1) < 1 && cmplx.Abs(p2) < 1
}

// cascade is a series of biquad sections.
type cascade []biquad

func (c cascade) filter(x []float64) {
	for _, q := range c {
		q.filter(x)
	}
}

func (c cascade) response(w float64) complex128 {
	h := complex(1, 0)
	for _, q := range c {
		h *= q.response(w)
	}

	return h
}

// highPassSection is the RBJ cookbook second-order high-pass with Q = 1/√2,
// a Butterworth response.
func highPassSection(cutoffHz float64, sampleRate int) biquad {
	w0 := 2 * math.Pi * cutoffHz / float64(sampleRate)
	cosw := math.Cos(w0)
	alpha := math.Sin(w0) / math.Sqrt2 // sin(w0) / 2Q
	a0 := 1 + alpha

	return biquad{
		b0: (1 + cosw) / 2 / a0,
		b1: -(1 + cosw) / a0,
		b2: (1 + cosw) / 2 / a0,
		a1: -2 * cosw / a0,
		a2: (1 - alpha) / a0,
	}
}
