// SPDX-License-Identifier: EPL-2.0

package utils

import "math"

// silenceDB is reported for a zero amplitude instead of -Inf.
const silenceDB = -240.0

// DBToGain converts a level in decibels to a linear amplitude factor.
func DBToGain(db float64) float64 {
	return math.Pow(10, db/20)
}

// GainToDB converts a linear amplitude to decibels. Non-positive amplitudes
// report -240 dB.
func GainToDB(gain float64) float64 {
	if gain <= 0 {
		return silenceDB
	}

	return 20 * math.Log10(gain)
}
