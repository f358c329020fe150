package host

import (
	"errors"
	"fmt"
	"log"

	"github.com/ivlev/layeranim/internal/animation"
)

var ErrNoAnimation = errors.New("no animation at index")

// Catalog is the part of *animation.Catalog the host needs.
type Catalog interface {
	Count() int
	NameAt(index int) (string, bool)
	AnimationAt(index int) (animation.Description, bool)
	ShowsImageAt(index int) bool
	MasksToBoundsAt(index int) bool
	FamilyAt(index int) animation.Family
}

// Layer is a snapshot of one layer of the host tree.
type Layer struct {
	Family     animation.Family
	Hidden     bool
	Animations map[string]animation.Description // keyed by key path
}

// Host owns one layer per family, stacked over the base image layer.
// Only one preset plays at a time. Host is not safe for concurrent use;
// it is driven from a single UI loop.
type Host struct {
	layers        map[animation.Family]*Layer
	masksToBounds bool
	playing       *playing
	Verbose       bool
}

type playing struct {
	family  animation.Family
	keyPath string
}

// New builds the layer tree with every layer visible and idle.
func New() *Host {
	h := &Host{
		layers:        make(map[animation.Family]*Layer, len(animation.AllFamilies)),
		masksToBounds: true,
	}
	for _, f := range animation.AllFamilies {
		h.layers[f] = &Layer{Family: f, Animations: make(map[string]animation.Description)}
	}
	return h
}

// Play stops the current animation and starts the preset at index on the
// layer owning its key path.
func (h *Host) Play(c Catalog, index int) error {
	d, ok := c.AnimationAt(index)
	if !ok {
		return fmt.Errorf("%w %d (catalog has %d)", ErrNoAnimation, index, c.Count())
	}
	h.Stop()

	family := c.FamilyAt(index)
	h.layers[animation.FamilyImage].Hidden = !c.ShowsImageAt(index)
	h.masksToBounds = c.MasksToBoundsAt(index)
	h.layers[family].Animations[d.Path()] = d
	h.playing = &playing{family: family, keyPath: d.Path()}

	if h.Verbose {
		log.Printf("[*] %s -> %s layer (image hidden: %v, clip: %v)",
			d.Path(), family, h.layers[animation.FamilyImage].Hidden, h.masksToBounds)
	}
	return nil
}

// Stop removes the running animation, if any.
func (h *Host) Stop() {
	if h.playing == nil {
		return
	}
	delete(h.layers[h.playing.family].Animations, h.playing.keyPath)
	h.playing = nil
}

// Playing returns the family and key path of the running animation.
func (h *Host) Playing() (animation.Family, string, bool) {
	if h.playing == nil {
		return animation.FamilyImage, "", false
	}
	return h.playing.family, h.playing.keyPath, true
}

// MasksToBounds reports whether the root layer clips its sublayers.
func (h *Host) MasksToBounds() bool {
	return h.masksToBounds
}

// Layer returns a copy of the layer for f. Unknown families get an empty
// layer.
func (h *Host) Layer(f animation.Family) Layer {
	l, ok := h.layers[f]
	if !ok {
		return Layer{Family: f, Animations: map[string]animation.Description{}}
	}
	out := Layer{Family: l.Family, Hidden: l.Hidden, Animations: make(map[string]animation.Description, len(l.Animations))}
	for k, v := range l.Animations {
		out.Animations[k] = v
	}
	return out
}
