package animation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeAt(t *testing.T) {
	c, err := New([]Preset{
		opacityPreset(),
		Basic("lineDashPhase", Numbers(0, 25)...).WithDuration(0.9).Reversed(),
		Keyframe("foregroundColor", Values(Named("yellow"), Named("green"))...).WithDuration(1).Repeat(Forever),
	})
	require.NoError(t, err)

	assert.Equal(t,
		"let animation = CAKeyframeAnimation(keyPath: \"opacity\")\n"+
			"animation.values = [0.1, 0.5, 0.1]\n"+
			"animation.keyTimes = [0, 0.5, 1]\n"+
			"animation.duration = 0.7\n"+
			"animation.repeatCount = 5\n",
		c.CodeAt(0))

	assert.Equal(t,
		"let animation = CABasicAnimation(keyPath: \"lineDashPhase\")\n"+
			"animation.fromValue = 0\n"+
			"animation.toValue = 25\n"+
			"animation.duration = 0.9\n"+
			"animation.repeatCount = 5\n"+
			"animation.autoreverses = true\n",
		c.CodeAt(1))

	code := c.CodeAt(2)
	assert.Contains(t, code, "CAKeyframeAnimation(keyPath: \"foregroundColor\")")
	assert.Contains(t, code, "UIColor(red: 1, green: 1, blue: 0, alpha: 1).cgColor")
	assert.Contains(t, code, "animation.repeatCount = .infinity")

	assert.Equal(t, c.CodeAt(0), c.CodeAt(0))
}

func TestCodeAtOutOfRange(t *testing.T) {
	c, err := New(nil)
	require.NoError(t, err)

	for _, i := range []int{0, 7, -3} {
		code := c.CodeAt(i)
		assert.Contains(t, code, "No animation found")
		assert.Contains(t, code, "index "+formatFloat(float64(i)))
	}
}

func TestValueCode(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Number(1.5), "1.5"},
		{Point{X: 1, Y: 2}, "CGPoint(x: 1, y: 2)"},
		{Size{Width: 3, Height: 4}, "CGSize(width: 3, height: 4)"},
		{Rect{X: 0, Y: 0, Width: 10, Height: 20}, "CGRect(x: 0, y: 0, width: 10, height: 20)"},
		{Named("red"), "UIColor(red: 1, green: 0, blue: 0, alpha: 1).cgColor"},
		{Path{Shape: ShapeOval, Rect: Rect{Width: 5, Height: 5}}, "UIBezierPath(ovalIn: CGRect(x: 0, y: 0, width: 5, height: 5)).cgPath"},
		{Path{Shape: ShapeRoundedRect, Rect: Rect{Width: 5, Height: 5}, CornerRadius: 2}, "UIBezierPath(roundedRect: CGRect(x: 0, y: 0, width: 5, height: 5), cornerRadius: 2).cgPath"},
	}

	for _, tt := range tests {
		t.Run(tt.value.Kind().String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.Code())
		})
	}
}
