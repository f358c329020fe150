// Package animation holds the catalog of layer animation presets: which
// property each preset animates, the values it goes through, its timing,
// and which layer family the property belongs to.
//
// A Catalog is built once and never changes, so it can be read from any
// number of goroutines without locking. Index lookups never fail: an index
// outside [0, Count()) yields a documented fallback instead.
package animation

import "fmt"

// Catalog is an ordered, immutable list of presets.
type Catalog struct {
	presets  []Preset
	families Families
}

// New builds a catalog using DefaultFamilySets.
func New(presets []Preset) (*Catalog, error) {
	families, err := NewFamilies(DefaultFamilySets)
	if err != nil {
		return nil, err
	}
	return NewWithFamilies(presets, families)
}

// NewWithFamilies builds a catalog from a copy of presets. Every preset is
// validated; the first invalid one is reported as a *PresetError.
func NewWithFamilies(presets []Preset, families Families) (*Catalog, error) {
	c := &Catalog{
		presets:  make([]Preset, len(presets)),
		families: make(Families, len(families)),
	}
	for kp, f := range families {
		c.families[kp] = f
	}
	for i, p := range presets {
		p = p.clone()
		if err := p.normalize(); err != nil {
			return nil, &PresetError{Index: i, KeyPath: p.KeyPath, Err: err}
		}
		c.presets[i] = p
	}
	return c, nil
}

// Count returns the number of presets.
func (c *Catalog) Count() int {
	return len(c.presets)
}

func (c *Catalog) at(index int) (Preset, bool) {
	if index < 0 || index >= len(c.presets) {
		return Preset{}, false
	}
	return c.presets[index], true
}

// NameAt returns the key path of the preset at index, used as its display
// name.
func (c *Catalog) NameAt(index int) (string, bool) {
	p, ok := c.at(index)
	if !ok {
		return "", false
	}
	return p.KeyPath, true
}

// AnimationAt builds a fresh description for the preset at index. Callers
// own the result and may modify it freely.
func (c *Catalog) AnimationAt(index int) (Description, bool) {
	p, ok := c.at(index)
	if !ok {
		return nil, false
	}
	return describe(p), true
}

// ShowsImageAt reports whether the base image stays visible while the
// preset plays. Out of range indexes report true.
func (c *Catalog) ShowsImageAt(index int) bool {
	p, ok := c.at(index)
	if !ok {
		return true
	}
	return p.ShowsImage
}

// MasksToBoundsAt reports whether the host layer clips its sublayers while
// the preset plays. Out of range indexes report true.
func (c *Catalog) MasksToBoundsAt(index int) bool {
	p, ok := c.at(index)
	if !ok {
		return true
	}
	return p.MasksToBounds
}

// FamilyAt returns the layer family the preset at index animates.
// Out of range indexes report FamilyImage.
func (c *Catalog) FamilyAt(index int) Family {
	p, ok := c.at(index)
	if !ok {
		return FamilyImage
	}
	return c.families.Of(p.KeyPath)
}

// CodeAt renders the construction code of the preset at index.
func (c *Catalog) CodeAt(index int) string {
	p, ok := c.at(index)
	if !ok {
		return fmt.Sprintf("// No animation found at index %d", index)
	}
	return renderCode(p)
}

// Index returns the position of the first preset animating keyPath.
func (c *Catalog) Index(keyPath string) (int, bool) {
	for i, p := range c.presets {
		if p.KeyPath == keyPath {
			return i, true
		}
	}
	return -1, false
}

// Presets returns a deep copy of the normalized presets.
func (c *Catalog) Presets() []Preset {
	out := make([]Preset, len(c.presets))
	for i, p := range c.presets {
		out[i] = p.clone()
	}
	return out
}

// Families returns a copy of the key path to family mapping.
func (c *Catalog) Families() Families {
	out := make(Families, len(c.families))
	for kp, f := range c.families {
		out[kp] = f
	}
	return out
}
