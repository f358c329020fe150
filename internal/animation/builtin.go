package animation

import "math"

// Builtin returns the showcase presets, one per animatable layer property.
// See the "Animatable Properties" chapter of the Core Animation guide.
func Builtin() []Preset {
	frame := Rect{X: 0, Y: 0, Width: 300, Height: 300}
	inset := Rect{X: 50, Y: 50, Width: 200, Height: 200}

	return []Preset{
		// Base layer geometry
		Keyframe("transform.scale", Numbers(1.0, 1.2, 1.0)...),
		Keyframe("transform.scale.x", Numbers(1.0, 1.5, 1.0)...),
		Keyframe("transform.scale.y", Numbers(1.0, 1.5, 1.0)...),
		Keyframe("transform.rotation.x", Numbers(0, math.Pi, 0)...).WithDuration(1),
		Keyframe("transform.rotation.y", Numbers(0, math.Pi, 0)...).WithDuration(1),
		Keyframe("transform.rotation.z", Numbers(0, math.Pi/4, 0)...),
		Keyframe("transform.translation.x", Numbers(0, 40, 0)...),
		Keyframe("transform.translation.y", Numbers(0, 40, 0)...),
		Keyframe("anchorPoint", Values(Point{X: 0.5, Y: 0.5}, Point{X: 0, Y: 0}, Point{X: 0.5, Y: 0.5})...),
		Keyframe("position", Values(Point{X: 150, Y: 150}, Point{X: 180, Y: 120}, Point{X: 150, Y: 150})...),
		Keyframe("bounds", Values(frame, inset, frame)...),
		Keyframe("zPosition", Numbers(0, 100, 0)...),

		// Base layer appearance
		Keyframe("opacity", Numbers(0.1, 0.5, 0.1)...).WithDuration(0.7),
		Keyframe("cornerRadius", Numbers(10, 150, 10)...).WithDuration(0.7),
		Keyframe("borderWidth", Numbers(0, 20, 0)...),
		Keyframe("borderColor", Values(Named("black"), Named("red"), Named("black"))...),
		Keyframe("backgroundColor", Values(Named("white"), Named("teal"), Named("white"))...).HideImage(),
		Keyframe("contentsRect", Values(
			Rect{X: 0, Y: 0, Width: 1, Height: 1},
			Rect{X: 0.25, Y: 0.25, Width: 0.5, Height: 0.5},
			Rect{X: 0, Y: 0, Width: 1, Height: 1},
		)...).WithDuration(1),
		Keyframe("shadowOpacity", Numbers(0, 1, 0)...).NoClip(),
		Keyframe("shadowRadius", Numbers(0, 20, 0)...).NoClip(),
		Keyframe("shadowOffset", Values(Size{}, Size{Width: 10, Height: 10}, Size{})...).NoClip(),
		Keyframe("shadowColor", Values(Named("black"), Named("orange"), Named("black"))...).NoClip(),
		Keyframe("shadowPath", Values(
			Path{Shape: ShapeRect, Rect: frame},
			Path{Shape: ShapeRoundedRect, Rect: frame, CornerRadius: 40},
			Path{Shape: ShapeOval, Rect: frame},
		)...).WithDuration(1).NoClip(),

		// Gradient layer
		Keyframe("colors", Values(
			Colors{Named("darkgray"), Named("white"), Named("darkgray")},
			Colors{Named("white"), Named("darkgray"), Named("white")},
			Colors{Named("darkgray"), Named("white"), Named("darkgray")},
		)...).WithDuration(1),
		Keyframe("locations", Numbers(0, 0.5, 1)...).WithDuration(1),
		Keyframe("startPoint", Values(Point{X: 0, Y: 0}, Point{X: 1, Y: 0}, Point{X: 0, Y: 0})...).WithDuration(1),
		Keyframe("endPoint", Values(Point{X: 1, Y: 1}, Point{X: 0, Y: 1}, Point{X: 1, Y: 1})...).WithDuration(1),

		// Shape layer
		Keyframe("path", Values(
			Path{Shape: ShapeOval, Rect: inset},
			Path{Shape: ShapeRoundedRect, Rect: inset, CornerRadius: 20},
			Path{Shape: ShapeOval, Rect: inset},
		)...).WithDuration(1).HideImage(),
		Keyframe("fillColor", Values(Named("yellow"), Named("purple"), Named("yellow"))...).HideImage(),
		Keyframe("strokeColor", Values(Named("red"), Named("blue"), Named("red"))...).HideImage(),
		Keyframe("strokeStart", Numbers(0, 0.5, 0)...).WithDuration(1).HideImage(),
		Keyframe("strokeEnd", Numbers(0, 0.05, 0.1, 0.15, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.75, 0.8, 0.85, 0.9, 0.95, 1)...).
			WithDuration(1).HideImage(),
		Keyframe("lineWidth", Numbers(1, 20, 1)...).HideImage(),
		Basic("lineDashPhase", Numbers(0, 25)...).WithDuration(0.9).HideImage(),
		Keyframe("miterLimit", Numbers(1, 10, 1)...).HideImage(),

		// Text layer
		Keyframe("foregroundColor", Values(Named("yellow"), Named("green"), Named("orange"))...).
			WithDuration(1).Repeat(Forever).HideImage(),
		Basic("fontSize", Numbers(30, 60)...).WithDuration(1).Reversed().HideImage(),

		// Emitter layer
		Keyframe("emitterPosition", Values(Point{X: 150, Y: 0}, Point{X: 0, Y: 150}, Point{X: 150, Y: 0})...).
			WithDuration(2).HideImage().NoClip(),
		Keyframe("emitterSize", Values(Size{Width: 10, Height: 10}, Size{Width: 300, Height: 10}, Size{Width: 10, Height: 10})...).
			WithDuration(2).HideImage(),
		Basic("birthRate", Numbers(1, 20)...).WithDuration(2).Reversed().HideImage(),
		Keyframe("velocity", Numbers(1, 4, 1)...).WithDuration(2).HideImage(),

		// Replicator layer
		Basic("instanceDelay", Numbers(0, 0.2)...).WithDuration(1).Reversed(),
		Keyframe("instanceColor", Values(Named("white"), Named("skyblue"), Named("white"))...).WithDuration(1),
		Keyframe("instanceAlphaOffset", Numbers(0, -0.2, 0)...).WithDuration(1),
	}
}

// Default builds the catalog from Builtin and DefaultFamilySets.
func Default() *Catalog {
	c, err := New(Builtin())
	if err != nil {
		panic("animation: invalid builtin catalog: " + err.Error())
	}
	return c
}
