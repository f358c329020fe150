package animation

import (
	"fmt"
	"math"
	"strings"
)

// renderCode writes the Core Animation calls that build p. It branches on
// the same kinds as describe.
func renderCode(p Preset) string {
	var b strings.Builder
	switch p.Kind {
	case KindBasic:
		fmt.Fprintf(&b, "let animation = CABasicAnimation(keyPath: %q)\n", p.KeyPath)
		fmt.Fprintf(&b, "animation.fromValue = %s\n", p.Values[0].Code())
		fmt.Fprintf(&b, "animation.toValue = %s\n", p.Values[len(p.Values)-1].Code())
	case KindKeyframe:
		fmt.Fprintf(&b, "let animation = CAKeyframeAnimation(keyPath: %q)\n", p.KeyPath)
		fmt.Fprintf(&b, "animation.values = %s\n", valuesCode(p.Values))
		fmt.Fprintf(&b, "animation.keyTimes = %s\n", keyTimesCode(p.KeyTimes))
	}
	fmt.Fprintf(&b, "animation.duration = %s\n", formatFloat(p.Duration))
	fmt.Fprintf(&b, "animation.repeatCount = %s\n", repeatCode(p.Repetitions))
	if p.Autoreverses {
		b.WriteString("animation.autoreverses = true\n")
	}
	return b.String()
}

func valuesCode(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.Code()
	}
	// Long value lists read better one per line.
	if len(vs) > 4 || (len(vs) > 0 && vs[0].Kind() != KindNumber) {
		return "[\n    " + strings.Join(parts, ",\n    ") + "\n]"
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func keyTimesCode(kt []float64) string {
	parts := make([]string, len(kt))
	for i, t := range kt {
		parts[i] = formatFloat(t)
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func repeatCode(n float64) string {
	if math.IsInf(n, 1) {
		return ".infinity"
	}
	return formatFloat(n)
}
