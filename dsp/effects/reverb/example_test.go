package reverb_test

import (
	"fmt"

	"github.com/cwbudde/audiofx/dsp/effects/reverb"
)

func ExampleApply() {
	dry := make([]float64, 4410)
	dry[0] = 0.5

	out, err := reverb.Apply(dry, 44100, reverb.Params{DecayTime: 0.05, Mix: 0.3}, reverb.NewRand(1))
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(out))

	_, err = reverb.Apply(dry, 44100, reverb.Params{DecayTime: 0, Mix: 0.3}, reverb.NewRand(1))
	fmt.Println(err)

	// Output:
	// 4410
	// reverb: invalid parameter: decay time must be > 0: 0
}
