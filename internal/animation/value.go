package animation

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ValueKind identifies the concrete type behind a Value.
type ValueKind int

const (
	KindNumber ValueKind = iota
	KindPoint
	KindSize
	KindRect
	KindColor
	KindColors
	KindPath
)

func (k ValueKind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindPoint:
		return "point"
	case KindSize:
		return "size"
	case KindRect:
		return "rect"
	case KindColor:
		return "color"
	case KindColors:
		return "colors"
	case KindPath:
		return "path"
	}
	return fmt.Sprintf("ValueKind(%d)", int(k))
}

// Value is one animation value. The set of implementations is closed:
// Number, Point, Size, Rect, Color, Colors and Path.
type Value interface {
	Kind() ValueKind
	// Code renders the value as a Swift literal for the code viewer.
	Code() string
	clone() Value
}

// Number is a scalar value (opacity, radius, rotation angle...).
type Number float64

func (Number) Kind() ValueKind { return KindNumber }
func (n Number) Code() string  { return formatFloat(float64(n)) }
func (n Number) clone() Value  { return n }

type Point struct {
	X, Y float64
}

func (Point) Kind() ValueKind { return KindPoint }
func (p Point) Code() string {
	return fmt.Sprintf("CGPoint(x: %s, y: %s)", formatFloat(p.X), formatFloat(p.Y))
}
func (p Point) clone() Value { return p }

type Size struct {
	Width, Height float64
}

func (Size) Kind() ValueKind { return KindSize }
func (s Size) Code() string {
	return fmt.Sprintf("CGSize(width: %s, height: %s)", formatFloat(s.Width), formatFloat(s.Height))
}
func (s Size) clone() Value { return s }

type Rect struct {
	X, Y, Width, Height float64
}

func (Rect) Kind() ValueKind { return KindRect }
func (r Rect) Code() string {
	return fmt.Sprintf("CGRect(x: %s, y: %s, width: %s, height: %s)",
		formatFloat(r.X), formatFloat(r.Y), formatFloat(r.Width), formatFloat(r.Height))
}
func (r Rect) clone() Value { return r }

// Color holds RGBA components in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGBA converts an 8-bit color into a Color.
func RGBA(c color.RGBA) Color {
	return Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
		A: float64(c.A) / 255,
	}
}

// Named looks up a CSS color name. It panics on unknown names and is meant
// for compiled-in tables only; use ParseColor for external input.
func Named(name string) Color {
	c, err := ParseColor(name)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor accepts "#RRGGBB", "#RRGGBBAA" or a CSS color name.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if strings.HasPrefix(s, "#") {
		hex := s[1:]
		if len(hex) != 6 && len(hex) != 8 {
			return Color{}, fmt.Errorf("bad hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("bad hex color %q: %w", s, err)
		}
		if len(hex) == 6 {
			v = v<<8 | 0xff
		}
		return RGBA(color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}), nil
	}
	c, ok := colornames.Map[s]
	if !ok {
		return Color{}, fmt.Errorf("unknown color name %q", s)
	}
	return RGBA(c), nil
}

// Hex renders the color as "#RRGGBBAA".
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B), to8(c.A))
}

func (Color) Kind() ValueKind { return KindColor }
func (c Color) Code() string {
	return fmt.Sprintf("UIColor(red: %s, green: %s, blue: %s, alpha: %s).cgColor",
		formatFloat(round3(c.R)), formatFloat(round3(c.G)), formatFloat(round3(c.B)), formatFloat(round3(c.A)))
}
func (c Color) clone() Value { return c }

// Colors is an array of colors animated as a whole (gradient colors).
type Colors []Color

func (Colors) Kind() ValueKind { return KindColors }
func (cs Colors) Code() string {
	parts := make([]string, len(cs))
	for i, c := range cs {
		parts[i] = c.Code()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
func (cs Colors) clone() Value {
	out := make(Colors, len(cs))
	copy(out, cs)
	return out
}

// PathShape is the primitive a Path is built from.
type PathShape int

const (
	ShapeRect PathShape = iota
	ShapeOval
	ShapeRoundedRect
)

func (s PathShape) String() string {
	switch s {
	case ShapeRect:
		return "rect"
	case ShapeOval:
		return "oval"
	case ShapeRoundedRect:
		return "roundedRect"
	}
	return fmt.Sprintf("PathShape(%d)", int(s))
}

func parsePathShape(s string) (PathShape, error) {
	switch s {
	case "rect":
		return ShapeRect, nil
	case "oval":
		return ShapeOval, nil
	case "roundedRect":
		return ShapeRoundedRect, nil
	}
	return 0, fmt.Errorf("unknown path shape %q", s)
}

// Path is a bezier path built from a single primitive shape.
type Path struct {
	Shape        PathShape
	Rect         Rect
	CornerRadius float64
}

func (Path) Kind() ValueKind { return KindPath }
func (p Path) Code() string {
	switch p.Shape {
	case ShapeOval:
		return fmt.Sprintf("UIBezierPath(ovalIn: %s).cgPath", p.Rect.Code())
	case ShapeRoundedRect:
		return fmt.Sprintf("UIBezierPath(roundedRect: %s, cornerRadius: %s).cgPath", p.Rect.Code(), formatFloat(p.CornerRadius))
	default:
		return fmt.Sprintf("UIBezierPath(rect: %s).cgPath", p.Rect.Code())
	}
}
func (p Path) clone() Value { return p }

// Numbers is a shorthand for a sequence of Number values.
func Numbers(ns ...float64) []Value {
	out := make([]Value, len(ns))
	for i, n := range ns {
		out[i] = Number(n)
	}
	return out
}

// Values wraps concrete values into a sequence.
func Values[T Value](vs ...T) []Value {
	out := make([]Value, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

func cloneValues(vs []Value) []Value {
	if vs == nil {
		return nil
	}
	out := make([]Value, len(vs))
	for i, v := range vs {
		if v != nil {
			out[i] = v.clone()
		}
	}
	return out
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func round3(f float64) float64 {
	return float64(int64(f*1000+0.5)) / 1000
}

func to8(f float64) uint8 {
	if f <= 0 {
		return 0
	}
	if f >= 1 {
		return 255
	}
	return uint8(f*255 + 0.5)
}
