// SPDX-License-Identifier: EPL-2.0

// Package effects implements the sample-domain mastering chain.
//
// Every stage is a plain function from an audio.Buffer to a new
// audio.Buffer; no stage modifies its input or keeps state between calls.
//
// # Stages
//
//   - AttenuateBand: Butterworth band-pass of any order, subtracted from the
//     input after scaling by 10^(db/20)
//   - Widen: per-channel gain on stereo buffers
//   - HighPassFilter, Compress, Limit, Reverberate, ApplyGain
//
// # Chains
//
// A Chain is an ordered list of Step values, run by Apply:
//
//	chain := effects.DefaultMasteringChain()
//	out, err := effects.Apply(buf, chain)
//
// Apply validates the whole chain against the buffer before processing and
// returns no output on failure. Errors are reported as *StepError and match
// ErrConfiguration or ErrNumericDegeneracy with errors.Is:
//
//	var se *effects.StepError
//	if errors.As(err, &se) {
//	    log.Printf("step %d (%s) rejected %s", se.Index, se.Kind, se.Param)
//	}
package effects
