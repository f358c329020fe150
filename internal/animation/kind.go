package animation

import "fmt"

// Kind selects how a preset is turned into a Description.
type Kind int

const (
	// KindKeyframe animates through every value at its key time.
	KindKeyframe Kind = iota
	// KindBasic interpolates from the first value to the last one.
	KindBasic
)

func (k Kind) String() string {
	switch k {
	case KindKeyframe:
		return "keyframe"
	case KindBasic:
		return "basic"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind is the inverse of Kind.String. An empty string means keyframe.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "", "keyframe":
		return KindKeyframe, nil
	case "basic":
		return KindBasic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrKind, s)
}

// Family is the kind of layer a key path belongs to.
type Family int

const (
	// FamilyImage is the base image layer. Key paths not claimed by any
	// other family land here.
	FamilyImage Family = iota
	FamilyGradient
	FamilyShape
	FamilyText
	FamilyEmitter
	FamilyReplicator
)

// AllFamilies lists every family in a stable order.
var AllFamilies = []Family{FamilyImage, FamilyGradient, FamilyShape, FamilyText, FamilyEmitter, FamilyReplicator}

func (f Family) String() string {
	switch f {
	case FamilyImage:
		return "image"
	case FamilyGradient:
		return "gradient"
	case FamilyShape:
		return "shape"
	case FamilyText:
		return "text"
	case FamilyEmitter:
		return "emitter"
	case FamilyReplicator:
		return "replicator"
	}
	return fmt.Sprintf("Family(%d)", int(f))
}

// ParseFamily is the inverse of Family.String.
func ParseFamily(s string) (Family, error) {
	for _, f := range AllFamilies {
		if f.String() == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown layer family %q", s)
}
