package animation

import "sort"

// Families maps a key path to the layer family that owns it.
type Families map[string]Family

// NewFamilies builds the key path mapping from per-family sets. A key path
// listed under two different families is a FamilyConflictError. Listing a
// key path under FamilyImage is allowed but redundant.
func NewFamilies(sets map[Family][]string) (Families, error) {
	out := make(Families)
	// Iterate in a fixed order so the reported conflict is deterministic.
	for _, f := range AllFamilies {
		for _, kp := range sets[f] {
			if prev, ok := out[kp]; ok && prev != f {
				return nil, &FamilyConflictError{KeyPath: kp, First: prev, Second: f}
			}
			out[kp] = f
		}
	}
	return out, nil
}

// Of returns the family owning keyPath, FamilyImage when unclaimed.
func (fs Families) Of(keyPath string) Family {
	if f, ok := fs[keyPath]; ok {
		return f
	}
	return FamilyImage
}

// Sets is the inverse of NewFamilies, each set sorted.
func (fs Families) Sets() map[Family][]string {
	out := make(map[Family][]string)
	for kp, f := range fs {
		out[f] = append(out[f], kp)
	}
	for _, kps := range out {
		sort.Strings(kps)
	}
	return out
}

// DefaultFamilySets are the key paths specific to each non-image layer.
var DefaultFamilySets = map[Family][]string{
	FamilyGradient: {
		"colors",
		"locations",
		"startPoint",
		"endPoint",
	},
	FamilyShape: {
		"path",
		"fillColor",
		"strokeColor",
		"strokeStart",
		"strokeEnd",
		"lineWidth",
		"lineDashPhase",
		"miterLimit",
	},
	FamilyText: {
		"foregroundColor",
		"fontSize",
	},
	FamilyEmitter: {
		"emitterPosition",
		"emitterSize",
		"emitterZPosition",
		"birthRate",
		"lifetime",
		"velocity",
		"scale",
		"spin",
	},
	FamilyReplicator: {
		"instanceDelay",
		"instanceColor",
		"instanceRedOffset",
		"instanceGreenOffset",
		"instanceBlueOffset",
		"instanceAlphaOffset",
	},
}
