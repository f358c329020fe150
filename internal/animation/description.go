package animation

// Description is a ready to apply animation built from a preset. It is
// either a *BasicAnimation or a *KeyframeAnimation.
type Description interface {
	Path() string
	Kind() Kind
	isDescription()
}

// BasicAnimation interpolates between two endpoint values.
type BasicAnimation struct {
	KeyPath      string
	From         Value
	To           Value
	Duration     float64
	RepeatCount  float64
	Autoreverses bool
}

func (a *BasicAnimation) Path() string { return a.KeyPath }
func (a *BasicAnimation) Kind() Kind   { return KindBasic }
func (*BasicAnimation) isDescription() {}

// KeyframeAnimation steps through Values, Values[i] reached at KeyTimes[i].
type KeyframeAnimation struct {
	KeyPath      string
	Values       []Value
	KeyTimes     []float64
	Duration     float64
	RepeatCount  float64
	Autoreverses bool
}

func (a *KeyframeAnimation) Path() string { return a.KeyPath }
func (a *KeyframeAnimation) Kind() Kind   { return KindKeyframe }
func (*KeyframeAnimation) isDescription() {}

// describe is the single place a preset becomes a Description. The result
// shares no memory with p.
func describe(p Preset) Description {
	switch p.Kind {
	case KindBasic:
		return &BasicAnimation{
			KeyPath:      p.KeyPath,
			From:         p.Values[0].clone(),
			To:           p.Values[len(p.Values)-1].clone(),
			Duration:     p.Duration,
			RepeatCount:  p.Repetitions,
			Autoreverses: p.Autoreverses,
		}
	case KindKeyframe:
		kt := make([]float64, len(p.KeyTimes))
		copy(kt, p.KeyTimes)
		return &KeyframeAnimation{
			KeyPath:      p.KeyPath,
			Values:       cloneValues(p.Values),
			KeyTimes:     kt,
			Duration:     p.Duration,
			RepeatCount:  p.Repetitions,
			Autoreverses: p.Autoreverses,
		}
	}
	// normalize rejects any other kind.
	panic("animation: unknown kind " + p.Kind.String())
}
