package component

// Particle holds the raw effect definition. Playback is not handled here.
type Particle struct {
	EffectName string
	Definition []byte
}

var ParticleComponent = NewComponent[Particle]()
