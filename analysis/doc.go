// SPDX-License-Identifier: EPL-2.0

// Package analysis measures buffers for before/after reports: peak and RMS
// levels plus FFT band levels.
package analysis
