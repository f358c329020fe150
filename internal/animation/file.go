package animation

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileVersion is written into every catalog file.
const FileVersion = "1.0"

// catalogFile is the YAML layout of a catalog.
type catalogFile struct {
	Version  string              `yaml:"version"`
	Families map[string][]string `yaml:"families,omitempty"`
	Presets  []presetFile        `yaml:"presets"`
}

type presetFile struct {
	KeyPath       string      `yaml:"keyPath"`
	Kind          string      `yaml:"kind,omitempty"`
	Values        []valueNode `yaml:"values"`
	KeyTimes      []float64   `yaml:"keyTimes,omitempty"`
	Duration      *float64    `yaml:"duration,omitempty"`
	Repetitions   *float64    `yaml:"repetitions,omitempty"` // .inf loops forever
	Autoreverses  bool        `yaml:"autoreverses,omitempty"`
	ShowsImage    *bool       `yaml:"showsImage,omitempty"`
	MasksToBounds *bool       `yaml:"masksToBounds,omitempty"`
}

type pointFile struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type sizeFile struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type rectFile struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type pathFile struct {
	Path         string   `yaml:"path"`
	Rect         rectFile `yaml:"rect"`
	CornerRadius float64  `yaml:"cornerRadius,omitempty"`
}

// mappingFile accepts every mapping shape a value can take; which fields
// are present decides the value kind.
type mappingFile struct {
	X            *float64  `yaml:"x"`
	Y            *float64  `yaml:"y"`
	Width        *float64  `yaml:"width"`
	Height       *float64  `yaml:"height"`
	Path         string    `yaml:"path"`
	Rect         *rectFile `yaml:"rect"`
	CornerRadius float64   `yaml:"cornerRadius"`
}

// valueNode adapts Value to YAML.
type valueNode struct {
	v Value
}

func (n *valueNode) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if tag := node.ShortTag(); tag == "!!int" || tag == "!!float" {
			var f float64
			if err := node.Decode(&f); err != nil {
				return err
			}
			n.v = Number(f)
			return nil
		}
		c, err := ParseColor(node.Value)
		if err != nil {
			return fmt.Errorf("line %d: %w", node.Line, err)
		}
		n.v = c
		return nil

	case yaml.SequenceNode:
		var names []string
		if err := node.Decode(&names); err != nil {
			return err
		}
		cs := make(Colors, len(names))
		for i, name := range names {
			c, err := ParseColor(name)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			cs[i] = c
		}
		n.v = cs
		return nil

	case yaml.MappingNode:
		var m mappingFile
		if err := node.Decode(&m); err != nil {
			return err
		}
		switch {
		case m.Path != "":
			shape, err := parsePathShape(m.Path)
			if err != nil {
				return fmt.Errorf("line %d: %w", node.Line, err)
			}
			p := Path{Shape: shape, CornerRadius: m.CornerRadius}
			if m.Rect != nil {
				p.Rect = Rect(*m.Rect)
			}
			n.v = p
		case m.X != nil && m.Y != nil && m.Width != nil && m.Height != nil:
			n.v = Rect{X: *m.X, Y: *m.Y, Width: *m.Width, Height: *m.Height}
		case m.Width != nil && m.Height != nil:
			n.v = Size{Width: *m.Width, Height: *m.Height}
		case m.X != nil && m.Y != nil:
			n.v = Point{X: *m.X, Y: *m.Y}
		default:
			return fmt.Errorf("line %d: cannot tell value kind from mapping", node.Line)
		}
		return nil
	}
	return fmt.Errorf("line %d: unsupported value node", node.Line)
}

func (n valueNode) MarshalYAML() (interface{}, error) {
	switch v := n.v.(type) {
	case Number:
		return float64(v), nil
	case Point:
		return pointFile(v), nil
	case Size:
		return sizeFile(v), nil
	case Rect:
		return rectFile(v), nil
	case Color:
		return v.Hex(), nil
	case Colors:
		out := make([]string, len(v))
		for i, c := range v {
			out[i] = c.Hex()
		}
		return out, nil
	case Path:
		return pathFile{Path: v.Shape.String(), Rect: rectFile(v.Rect), CornerRadius: v.CornerRadius}, nil
	}
	return nil, fmt.Errorf("unsupported value %T", n.v)
}

// DecodeCatalog builds a catalog from YAML. Without a families section the
// DefaultFamilySets apply.
func DecodeCatalog(data []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	sets := DefaultFamilySets
	if len(f.Families) > 0 {
		sets = make(map[Family][]string, len(f.Families))
		for name, kps := range f.Families {
			fam, err := ParseFamily(name)
			if err != nil {
				return nil, err
			}
			sets[fam] = kps
		}
	}
	families, err := NewFamilies(sets)
	if err != nil {
		return nil, err
	}

	presets := make([]Preset, len(f.Presets))
	for i, pf := range f.Presets {
		kind, err := ParseKind(pf.Kind)
		if err != nil {
			return nil, &PresetError{Index: i, KeyPath: pf.KeyPath, Err: err}
		}
		values := make([]Value, len(pf.Values))
		for j, vn := range pf.Values {
			values[j] = vn.v
		}
		p := NewPreset(pf.KeyPath, kind, values...)
		p.KeyTimes = pf.KeyTimes
		p.Autoreverses = pf.Autoreverses
		if pf.Duration != nil {
			p.Duration = *pf.Duration
		}
		if pf.Repetitions != nil {
			p.Repetitions = *pf.Repetitions
		}
		if pf.ShowsImage != nil {
			p.ShowsImage = *pf.ShowsImage
		}
		if pf.MasksToBounds != nil {
			p.MasksToBounds = *pf.MasksToBounds
		}
		presets[i] = p
	}
	return NewWithFamilies(presets, families)
}

// EncodeCatalog renders c as YAML accepted by DecodeCatalog.
func EncodeCatalog(c *Catalog) ([]byte, error) {
	f := catalogFile{
		Version:  FileVersion,
		Families: make(map[string][]string),
	}
	for fam, kps := range c.Families().Sets() {
		f.Families[fam.String()] = kps
	}
	for _, p := range c.Presets() {
		pf := presetFile{
			KeyPath:       p.KeyPath,
			Kind:          p.Kind.String(),
			Values:        make([]valueNode, len(p.Values)),
			KeyTimes:      p.KeyTimes,
			Duration:      ptr(p.Duration),
			Repetitions:   ptr(p.Repetitions),
			Autoreverses:  p.Autoreverses,
			ShowsImage:    ptr(p.ShowsImage),
			MasksToBounds: ptr(p.MasksToBounds),
		}
		for i, v := range p.Values {
			pf.Values[i] = valueNode{v: v}
		}
		f.Presets = append(f.Presets, pf)
	}
	return yaml.Marshal(&f)
}

// ReadCatalog reads a catalog from a YAML file.
func ReadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	c, err := DecodeCatalog(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// WriteCatalog writes c to a YAML file.
func WriteCatalog(c *Catalog, path string) error {
	data, err := EncodeCatalog(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func ptr[T any](v T) *T {
	return &v
}
