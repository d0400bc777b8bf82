// SPDX-License-Identifier: EPL-2.0

package utils

// pcmScale returns the full-scale magnitude of a signed PCM sample at bitDepth.
// Unknown depths fall back to 16-bit.
func pcmScale(bitDepth int) float64 {
	switch bitDepth {
	case 8:
		return 128.0
	case 24:
		return 8388608.0
	case 32:
		return 2147483648.0
	default:
		return 32768.0
	}
}

// PCMToFloat normalises a signed integer PCM sample into [-1, 1).
func PCMToFloat(v int, bitDepth int) float32 {
	return float32(float64(v) / pcmScale(bitDepth))
}

// FloatToPCM clamps x to [-1, 1] and scales it to a signed integer sample.
// The positive side uses full scale minus one so +1.0 never overflows.
func FloatToPCM(x float32, bitDepth int) int {
	if x > 1 {
		x = 1
	} else if x < -1 {
		x = -1
	}

	scale := pcmScale(bitDepth)
	if x >= 0 {
		return int(float64(x) * (scale - 1))
	}

	return int(float64(x) * scale)
}
