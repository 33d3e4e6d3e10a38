package session

import (
	"fmt"

	"github.com/cwbudde/audiofx/dsp/effects/reverb"
	"github.com/cwbudde/audiofx/dsp/filter"
)

// Effect is one of Lowpass, Highpass, Bandpass, Bandstop or Reverb.
type Effect interface {
	fmt.Stringer

	// Name returns the effect name accepted by ParseEffect.
	Name() string

	sealed()
}

// Lowpass attenuates content above CutoffHz. A zero Order selects
// filter.DefaultOrder.
type Lowpass struct {
	CutoffHz float64
	Order    int
}

// Highpass attenuates content below CutoffHz.
type Highpass struct {
	CutoffHz float64
	Order    int
}

// Bandpass keeps content between LowHz and HighHz.
type Bandpass struct {
	LowHz, HighHz float64
	Order         int
}

// Bandstop rejects content between LowHz and HighHz.
type Bandstop struct {
	LowHz, HighHz float64
	Order         int
}

// Reverb adds a synthetic tail. The zero value is invalid; start from
// DefaultReverb or ParseEffect to get the defaults.
type Reverb struct {
	DecayTime float64
	Mix       float64
}

// DefaultReverb returns a Reverb with reverb.DefaultDecayTime and
// reverb.DefaultMix.
func DefaultReverb() Reverb {
	p := reverb.DefaultParams()
	return Reverb{DecayTime: p.DecayTime, Mix: p.Mix}
}

func (Lowpass) Name() string  { return "lowpass" }
func (Highpass) Name() string { return "highpass" }
func (Bandpass) Name() string { return "bandpass" }
func (Bandstop) Name() string { return "bandstop" }
func (Reverb) Name() string   { return "reverb" }

func (e Lowpass) String() string  { return e.spec().String() }
func (e Highpass) String() string { return e.spec().String() }
func (e Bandpass) String() string { return e.spec().String() }
func (e Bandstop) String() string { return e.spec().String() }
func (e Reverb) String() string   { return e.params().String() }

func (Lowpass) sealed()  {}
func (Highpass) sealed() {}
func (Bandpass) sealed() {}
func (Bandstop) sealed() {}
func (Reverb) sealed()   {}

func (e Lowpass) spec() filter.Spec {
	return filter.Spec{Kind: filter.Lowpass, Cutoff: e.CutoffHz, Order: e.Order}
}

func (e Highpass) spec() filter.Spec {
	return filter.Spec{Kind: filter.Highpass, Cutoff: e.CutoffHz, Order: e.Order}
}

func (e Bandpass) spec() filter.Spec {
	return filter.Spec{Kind: filter.Bandpass, Low: e.LowHz, High: e.HighHz, Order: e.Order}
}

func (e Bandstop) spec() filter.Spec {
	return filter.Spec{Kind: filter.Bandstop, Low: e.LowHz, High: e.HighHz, Order: e.Order}
}

func (e Reverb) params() reverb.Params {
	return reverb.Params{DecayTime: e.DecayTime, Mix: e.Mix}
}
