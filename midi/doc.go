// SPDX-License-Identifier: EPL-2.0

// Package midi serialises chord note tracks as Standard MIDI Files using
// gomidi's smf package.
package midi
