// SPDX-License-Identifier: EPL-2.0

// Package mastering wires the stemfx stages into one run: stem separation,
// chord recognition and MIDI synthesis, reference matching and the effect
// chain. Separation, recognition and matching are interfaces so external
// engines can be plugged in; StemLayout, chords.LabRecognizer and
// LoudnessMatcher cover pre-separated stems, lab files and level matching.
package mastering
