// SPDX-License-Identifier: EPL-2.0

// Package chords turns chord-label timelines into abstract note tracks.
//
// A Table maps labels like "C:maj" to pitch names; Synthesize walks a
// Timeline and emits one NoteEvent per pitch per interval:
//
//	tl := chords.Timeline{{Start: 0, End: 1, Label: "C:maj"}, {Start: 1, End: 2, Label: "N"}}
//	track := chords.Synthesize(tl, 0, chords.DefaultVelocity) // 3 notes
//
// Tables are plain values. Extend the defaults with Merge or generate
// triads for every root with TriadTable.
package chords
