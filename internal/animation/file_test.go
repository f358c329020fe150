package animation

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
version: "1.0"
presets:
  - keyPath: opacity
    values: [0.1, 0.5, 0.1]
    keyTimes: [0, 0.5, 1]
    duration: 0.7
  - keyPath: lineDashPhase
    kind: basic
    values: [0, 25]
    duration: 0.9
    autoreverses: true
    showsImage: false
  - keyPath: foregroundColor
    values: [yellow, "#00ff00", orange]
    duration: 1
    repetitions: .inf
  - keyPath: colors
    values:
      - [darkgray, white]
      - [white, darkgray]
  - keyPath: position
    values:
      - {x: 0, y: 0}
      - {x: 10, y: 20}
    masksToBounds: false
  - keyPath: shadowPath
    values:
      - {path: rect, rect: {x: 0, y: 0, width: 10, height: 10}}
      - {path: roundedRect, rect: {x: 0, y: 0, width: 10, height: 10}, cornerRadius: 3}
  - keyPath: shadowOffset
    values:
      - {width: 0, height: 0}
      - {width: 5, height: 5}
  - keyPath: bounds
    values:
      - {x: 0, y: 0, width: 10, height: 10}
`

func TestDecodeCatalog(t *testing.T) {
	c, err := DecodeCatalog([]byte(sampleCatalog))
	require.NoError(t, err)
	require.Equal(t, 8, c.Count())

	d, _ := c.AnimationAt(0)
	assert.Equal(t, &KeyframeAnimation{
		KeyPath:     "opacity",
		Values:      Numbers(0.1, 0.5, 0.1),
		KeyTimes:    []float64{0, 0.5, 1},
		Duration:    0.7,
		RepeatCount: DefaultRepetitions,
	}, d)

	d, _ = c.AnimationAt(1)
	assert.Equal(t, &BasicAnimation{
		KeyPath:      "lineDashPhase",
		From:         Number(0),
		To:           Number(25),
		Duration:     0.9,
		RepeatCount:  DefaultRepetitions,
		Autoreverses: true,
	}, d)
	assert.False(t, c.ShowsImageAt(1))
	assert.True(t, c.MasksToBoundsAt(1))

	d, _ = c.AnimationAt(2)
	kf := d.(*KeyframeAnimation)
	assert.Equal(t, Forever, kf.RepeatCount)
	assert.Equal(t, Named("lime"), kf.Values[1])
	assert.Equal(t, FamilyText, c.FamilyAt(2))

	d, _ = c.AnimationAt(3)
	assert.Equal(t, Colors{Named("darkgray"), Named("white")}, d.(*KeyframeAnimation).Values[0])

	d, _ = c.AnimationAt(4)
	assert.Equal(t, Point{X: 10, Y: 20}, d.(*KeyframeAnimation).Values[1])
	assert.False(t, c.MasksToBoundsAt(4))

	d, _ = c.AnimationAt(5)
	assert.Equal(t, Path{Shape: ShapeRoundedRect, Rect: Rect{Width: 10, Height: 10}, CornerRadius: 3}, d.(*KeyframeAnimation).Values[1])

	d, _ = c.AnimationAt(6)
	assert.Equal(t, Size{Width: 5, Height: 5}, d.(*KeyframeAnimation).Values[1])

	d, _ = c.AnimationAt(7)
	assert.Equal(t, Rect{Width: 10, Height: 10}, d.(*KeyframeAnimation).Values[0])
	assert.Equal(t, DefaultDuration, d.(*KeyframeAnimation).Duration)
}

func TestDecodeCatalogErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad yaml", "presets: [:"},
		{"unknown kind", "presets: [{keyPath: opacity, kind: spring, values: [1]}]"},
		{"unknown color", "presets: [{keyPath: fillColor, values: [notacolor]}]"},
		{"ambiguous mapping", "presets: [{keyPath: position, values: [{x: 1}]}]"},
		{"unknown family", "families: {video: [opacity]}\npresets: []"},
		{"family conflict", "families: {shape: [path], gradient: [path]}\npresets: []"},
		{"key times mismatch", "presets: [{keyPath: strokeEnd, values: [0, 0.5, 0.7, 1], keyTimes: [0, 0.5, 1]}]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeCatalog([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestCustomFamilies(t *testing.T) {
	c, err := DecodeCatalog([]byte(`
families:
  shape: [opacity]
presets:
  - keyPath: opacity
    values: [0, 1]
  - keyPath: colors
    values: [[red]]
`))
	require.NoError(t, err)
	assert.Equal(t, FamilyShape, c.FamilyAt(0))
	assert.Equal(t, FamilyImage, c.FamilyAt(1))
}

func TestCatalogWriteRead(t *testing.T) {
	orig := Default()
	path := filepath.Join(t.TempDir(), "catalog.yaml")

	require.NoError(t, WriteCatalog(orig, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "version: \"1.0\"")

	read, err := ReadCatalog(path)
	require.NoError(t, err)
	require.Equal(t, orig.Count(), read.Count())
	assert.Equal(t, orig.Presets(), read.Presets())
	assert.Equal(t, orig.Families(), read.Families())
	for i := 0; i < orig.Count(); i++ {
		assert.Equal(t, orig.CodeAt(i), read.CodeAt(i))
	}
}

func TestReadCatalogMissingFile(t *testing.T) {
	_, err := ReadCatalog(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestReadExampleCatalog(t *testing.T) {
	c, err := ReadCatalog(filepath.Join("..", "..", "examples", "text_layer.yaml"))
	require.NoError(t, err)
	require.Equal(t, 2, c.Count())

	assert.Equal(t, FamilyText, c.FamilyAt(0))
	assert.False(t, c.ShowsImageAt(0))
	assert.Contains(t, c.CodeAt(0), "animation.repeatCount = .infinity")
	assert.Contains(t, c.CodeAt(1), "animation.autoreverses = true")
}
