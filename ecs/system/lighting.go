package system

import "image/color"

// Lighting holds scene-wide light state handed over by the loader.
type Lighting struct {
	ambient color.NRGBA
	set     bool
}

func NewLighting() *Lighting {
	return &Lighting{}
}

func (l *Lighting) SetAmbientLight(c color.NRGBA) {
	l.ambient = c
	l.set = true
}

// Ambient returns the ambient colour, if one was set.
func (l *Lighting) Ambient() (color.NRGBA, bool) {
	return l.ambient, l.set
}

// Reset forgets the ambient colour.
func (l *Lighting) Reset() {
	l.ambient = color.NRGBA{}
	l.set = false
}
