// SPDX-License-Identifier: EPL-2.0

// Package config loads stemfx settings from a YAML file and STEMFX_*
// environment variables.
//
// Example file:
//
//	velocity: 90
//	instrument: 0
//	triad_octave: 4
//	chords:
//	  "C:maj7": [C4, E4, G4, B4]
//	chain:
//	  - type: high_pass
//	    cutoff_hz: 80
//	  - type: compressor
//	    threshold_db: -18
//	    ratio: 3
//	  - type: limiter
//	    threshold_db: -0.3
//	  - type: band_attenuate
//	    low_hz: 200
//	    high_hz: 2000
//	    attenuation_db: -18
//	    disabled: true
//
// Environment variables override the file: STEMFX_VELOCITY,
// STEMFX_INSTRUMENT, STEMFX_TEMPO, STEMFX_OUTPUT_RATE and STEMFX_BIT_DEPTH.
package config
