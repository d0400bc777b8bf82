// SPDX-License-Identifier: EPL-2.0

package effects_test

import (
	"errors"
	"fmt"

	"github.com/ik5/stemfx/audio"
	"github.com/ik5/stemfx/effects"
)

func ExampleChain_String() {
	chain := effects.DefaultMasteringChain()[:3]
	fmt.Println(chain)
	// Output:
	// high_pass{CutoffHz:100} -> compressor{ThresholdDB:-20 Ratio:4} -> limiter{ThresholdDB:-0.1}
}

func ExampleWiden() {
	buf, _ := audio.FromSamples([]float32{0.5, -0.25}, 2, 8000)

	out, _ := effects.Widen(buf, 1.2)
	fmt.Printf("%.2f\n", out.Data)

	_, err := effects.Widen(audio.NewBuffer(1, 8000, 1), 1.2)
	fmt.Println(errors.Is(err, effects.ErrChannelCountMismatch))
	// Output:
	// [0.60 -0.30]
	// true
}

func ExampleApply() {
	buf := audio.NewBuffer(2, 44100, 44100)

	chain := effects.Chain{
		effects.Gain{GainDB: 6},
		effects.Compressor{ThresholdDB: -20, Ratio: -1},
	}

	_, err := effects.Apply(buf, chain)
	fmt.Println(err)
	// Output:
	// effect step 1 (compressor), ratio: ratio = -1: invalid effect configuration: invalid parameter
}
