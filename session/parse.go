package session

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"

	"github.com/cwbudde/audiofx/dsp/filter"
)

// Parameter keys understood by ParseEffect.
const (
	ParamCutoffFreq = "cutoff_freq"
	ParamLowCut     = "low_cut"
	ParamHighCut    = "high_cut"
	ParamOrder      = "order"
	ParamDecayTime  = "decay_time"
	ParamMix        = "mix"
)

// EffectNames lists the names accepted by ParseEffect.
func EffectNames() []string {
	return []string{"lowpass", "highpass", "bandpass", "bandstop", "reverb"}
}

// ParseEffect builds an Effect from its name and parameters. Required keys
// are cutoff_freq for lowpass and highpass, and low_cut and high_cut for
// bandpass and bandstop. order is optional for filters; decay_time and mix
// are optional for reverb. Unknown keys are rejected.
func ParseEffect(name string, params map[string]float64) (Effect, error) {
	p := paramSet{name: strings.ToLower(strings.TrimSpace(name)), values: params}

	switch p.name {
	case "lowpass", "highpass":
		if err := p.only(ParamCutoffFreq, ParamOrder); err != nil {
			return nil, err
		}
		cutoff, err := p.required(ParamCutoffFreq)
		if err != nil {
			return nil, err
		}
		order, err := p.order()
		if err != nil {
			return nil, err
		}
		if p.name == "lowpass" {
			return Lowpass{CutoffHz: cutoff, Order: order}, nil
		}
		return Highpass{CutoffHz: cutoff, Order: order}, nil

	case "bandpass", "bandstop":
		if err := p.only(ParamLowCut, ParamHighCut, ParamOrder); err != nil {
			return nil, err
		}
		low, err := p.required(ParamLowCut)
		if err != nil {
			return nil, err
		}
		high, err := p.required(ParamHighCut)
		if err != nil {
			return nil, err
		}
		order, err := p.order()
		if err != nil {
			return nil, err
		}
		if p.name == "bandpass" {
			return Bandpass{LowHz: low, HighHz: high, Order: order}, nil
		}
		return Bandstop{LowHz: low, HighHz: high, Order: order}, nil

	case "reverb":
		if err := p.only(ParamDecayTime, ParamMix); err != nil {
			return nil, err
		}
		r := DefaultReverb()
		if v, ok := p.values[ParamDecayTime]; ok {
			r.DecayTime = v
		}
		if v, ok := p.values[ParamMix]; ok {
			r.Mix = v
		}
		return r, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownEffect, name)
}

// ParseEffectSpec parses the command-line form "name" or
// "name:key=value,key=value", for example "bandpass:low_cut=300,high_cut=3000".
func ParseEffectSpec(s string) (Effect, error) {
	name, rest, _ := strings.Cut(s, ":")
	params := make(map[string]float64)

	if rest = strings.TrimSpace(rest); rest != "" {
		for _, kv := range strings.Split(rest, ",") {
			key, value, ok := strings.Cut(kv, "=")
			if !ok {
				return nil, fmt.Errorf("%w: %q is not key=value", ErrInvalidParameter, kv)
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(value), 64)
			if err != nil {
				return nil, fmt.Errorf("%w: %s: %w", ErrInvalidParameter, key, err)
			}
			params[strings.ToLower(strings.TrimSpace(key))] = v
		}
	}

	return ParseEffect(name, params)
}

type paramSet struct {
	name   string
	values map[string]float64
}

func (p paramSet) only(allowed ...string) error {
	for key := range p.values {
		if !slices.Contains(allowed, key) {
			return fmt.Errorf("%w: %s does not take %q", ErrInvalidParameter, p.name, key)
		}
	}
	return nil
}

func (p paramSet) required(key string) (float64, error) {
	v, ok := p.values[key]
	if !ok {
		return 0, fmt.Errorf("%w: %s requires %q", ErrInvalidParameter, p.name, key)
	}
	return v, nil
}

func (p paramSet) order() (int, error) {
	v, ok := p.values[ParamOrder]
	if !ok {
		return 0, nil
	}
	if v != math.Trunc(v) || v < 1 || v > filter.MaxOrder {
		return 0, fmt.Errorf("%w: order must be an integer in [1, %d]: %v", ErrInvalidParameter, filter.MaxOrder, v)
	}
	return int(v), nil
}
