package animation

import (
	"fmt"
	"math"
)

const (
	DefaultDuration    = 0.3
	DefaultRepetitions = 5.0
)

// Forever as a repetition count loops the animation indefinitely.
var Forever = math.Inf(1)

// Preset is one catalog entry. Presets are plain values; a Catalog keeps
// its own deep copy so later changes to the caller's slice have no effect.
type Preset struct {
	KeyPath string
	Kind    Kind
	Values  []Value
	// KeyTimes are fractions of Duration, one per value. Nil means evenly
	// spaced.
	KeyTimes      []float64
	Duration      float64
	Repetitions   float64
	Autoreverses  bool
	ShowsImage    bool
	MasksToBounds bool
}

// NewPreset returns a preset with the default timing and flags.
func NewPreset(keyPath string, kind Kind, values ...Value) Preset {
	return Preset{
		KeyPath:       keyPath,
		Kind:          kind,
		Values:        values,
		Duration:      DefaultDuration,
		Repetitions:   DefaultRepetitions,
		ShowsImage:    true,
		MasksToBounds: true,
	}
}

// Keyframe is NewPreset with KindKeyframe.
func Keyframe(keyPath string, values ...Value) Preset {
	return NewPreset(keyPath, KindKeyframe, values...)
}

// Basic is NewPreset with KindBasic.
func Basic(keyPath string, values ...Value) Preset {
	return NewPreset(keyPath, KindBasic, values...)
}

func (p Preset) WithKeyTimes(kt ...float64) Preset {
	p.KeyTimes = kt
	return p
}

func (p Preset) WithDuration(d float64) Preset {
	p.Duration = d
	return p
}

func (p Preset) Repeat(n float64) Preset {
	p.Repetitions = n
	return p
}

func (p Preset) Reversed() Preset {
	p.Autoreverses = true
	return p
}

func (p Preset) HideImage() Preset {
	p.ShowsImage = false
	return p
}

func (p Preset) NoClip() Preset {
	p.MasksToBounds = false
	return p
}

func (p Preset) clone() Preset {
	p.Values = cloneValues(p.Values)
	if p.KeyTimes != nil {
		kt := make([]float64, len(p.KeyTimes))
		copy(kt, p.KeyTimes)
		p.KeyTimes = kt
	}
	return p
}

// normalize validates the preset and fills in evenly spaced key times for
// keyframe presets that have none.
func (p *Preset) normalize() error {
	if p.KeyPath == "" {
		return ErrEmptyKeyPath
	}
	if p.Kind != KindKeyframe && p.Kind != KindBasic {
		return fmt.Errorf("%w: %d", ErrKind, int(p.Kind))
	}
	if len(p.Values) == 0 {
		return ErrNoValues
	}
	for i, v := range p.Values {
		if v == nil {
			return fmt.Errorf("%w: value %d is nil", ErrNoValues, i)
		}
		if v.Kind() != p.Values[0].Kind() {
			return fmt.Errorf("%w: value %d is %s, value 0 is %s", ErrMixedValues, i, v.Kind(), p.Values[0].Kind())
		}
	}
	if !(p.Duration > 0) || math.IsInf(p.Duration, 0) {
		return fmt.Errorf("%w: %v", ErrDuration, p.Duration)
	}
	if p.Repetitions < 0 || math.IsNaN(p.Repetitions) {
		return fmt.Errorf("%w: %v", ErrRepetitions, p.Repetitions)
	}

	if p.Kind == KindBasic {
		// Basic animations only use the endpoints.
		p.KeyTimes = nil
		return nil
	}
	if p.KeyTimes == nil {
		p.KeyTimes = EvenKeyTimes(len(p.Values))
		return nil
	}
	if len(p.KeyTimes) != len(p.Values) {
		return fmt.Errorf("%w: %d key times for %d values", ErrKeyTimes, len(p.KeyTimes), len(p.Values))
	}
	prev := 0.0
	for i, t := range p.KeyTimes {
		if t < 0 || t > 1 || math.IsNaN(t) {
			return fmt.Errorf("%w: key time %d (%v) outside [0,1]", ErrKeyTimes, i, t)
		}
		if t < prev {
			return fmt.Errorf("%w: key time %d (%v) decreases", ErrKeyTimes, i, t)
		}
		prev = t
	}
	return nil
}

// EvenKeyTimes spreads n key times over [0,1]. A single value sits at 0.
func EvenKeyTimes(n int) []float64 {
	if n <= 0 {
		return nil
	}
	out := make([]float64, n)
	if n == 1 {
		return out
	}
	for i := range out {
		out[i] = float64(i) / float64(n-1)
	}
	return out
}
