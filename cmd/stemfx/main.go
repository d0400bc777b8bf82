// SPDX-License-Identifier: EPL-2.0

// Command stemfx masters separated stems and converts chord timelines to MIDI.
package main

import "github.com/ik5/stemfx/internal/cli"

func main() {
	cli.Execute()
}
