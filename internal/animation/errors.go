package animation

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyKeyPath = errors.New("empty key path")
	ErrNoValues     = errors.New("no values")
	ErrMixedValues  = errors.New("values of different kinds")
	ErrDuration     = errors.New("duration must be positive")
	ErrRepetitions  = errors.New("repetitions must not be negative")
	ErrKeyTimes     = errors.New("invalid key times")
	ErrKind         = errors.New("unknown animation kind")
)

// PresetError reports a preset rejected while building a catalog.
type PresetError struct {
	Index   int
	KeyPath string
	Err     error
}

func (e *PresetError) Error() string {
	return fmt.Sprintf("preset %d (%s): %v", e.Index, e.KeyPath, e.Err)
}

func (e *PresetError) Unwrap() error { return e.Err }

// FamilyConflictError reports a key path claimed by two layer families.
type FamilyConflictError struct {
	KeyPath string
	First   Family
	Second  Family
}

func (e *FamilyConflictError) Error() string {
	return fmt.Sprintf("key path %q belongs to both %s and %s layers", e.KeyPath, e.First, e.Second)
}
