package filter_test

import (
	"fmt"

	"github.com/cwbudde/audiofx/dsp/filter"
)

func ExampleApply() {
	impulse := make([]float64, 8)
	impulse[0] = 1

	out, err := filter.Apply(impulse, 44100, filter.Spec{Kind: filter.Lowpass, Cutoff: 1000, Order: 2})
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Println(len(out), out[0] > 0)

	_, err = filter.Apply(impulse, 44100, filter.Spec{Kind: filter.Lowpass, Cutoff: 22050})
	fmt.Println(err != nil)

	// Output:
	// 8 true
	// true
}
