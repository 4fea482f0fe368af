package scene

// DefaultLayerName names the layer synthesized for composites that declare none.
const DefaultLayerName = "Default"

// LayerItemVO declares a named ordering bucket on a composite.
type LayerItemVO struct {
	LayerName string `json:"layerName" yaml:"layerName"`
	IsLocked  bool   `json:"isLocked,omitempty" yaml:"isLocked,omitempty"`
	IsVisible bool   `json:"isVisible" yaml:"isVisible"`
}

// DefaultLayer returns the layer used when a composite declares none.
func DefaultLayer() LayerItemVO {
	return LayerItemVO{LayerName: DefaultLayerName, IsVisible: true}
}

// CompositeVO is a container's child lists, segregated by item type.
type CompositeVO struct {
	Images            []SimpleImageVO     `json:"sImages,omitempty" yaml:"sImages,omitempty"`
	Image9Patches     []Image9PatchVO     `json:"sImage9patchs,omitempty" yaml:"sImage9patchs,omitempty"`
	Labels            []LabelVO           `json:"sLabels,omitempty" yaml:"sLabels,omitempty"`
	ParticleEffects   []ParticleEffectVO  `json:"sParticleEffects,omitempty" yaml:"sParticleEffects,omitempty"`
	Lights            []LightVO           `json:"sLights,omitempty" yaml:"sLights,omitempty"`
	SpineAnimations   []SpineVO           `json:"sSpineAnimations,omitempty" yaml:"sSpineAnimations,omitempty"`
	SpriteAnimations  []SpriteAnimationVO `json:"sSpriteAnimations,omitempty" yaml:"sSpriteAnimations,omitempty"`
	SpriterAnimations []SpriterVO         `json:"sSpriterAnimations,omitempty" yaml:"sSpriterAnimations,omitempty"`
	Composites        []CompositeItemVO   `json:"sComposites,omitempty" yaml:"sComposites,omitempty"`
	Layers            []LayerItemVO       `json:"layers,omitempty" yaml:"layers,omitempty"`
}

// CompositeItemVO is a nested composite placed inside another composite.
type CompositeItemVO struct {
	MainItemVO `yaml:",inline"`
	Composite  *CompositeVO `json:"composite" yaml:"composite"`
	ScissorX   float32      `json:"scissorX,omitempty" yaml:"scissorX,omitempty"`
	ScissorY   float32      `json:"scissorY,omitempty" yaml:"scissorY,omitempty"`
	ScissorW   float32      `json:"scissorWidth,omitempty" yaml:"scissorWidth,omitempty"`
	ScissorH   float32      `json:"scissorHeight,omitempty" yaml:"scissorHeight,omitempty"`
	Width      float32      `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float32      `json:"height,omitempty" yaml:"height,omitempty"`
}

func (*CompositeItemVO) Type() ItemType { return TypeComposite }

// LayerNames returns the declared layer names in order.
func (c *CompositeVO) LayerNames() []string {
	if c == nil {
		return nil
	}
	names := make([]string, len(c.Layers))
	for i, l := range c.Layers {
		names[i] = l.LayerName
	}
	return names
}

// Len returns the number of direct children across every buildable list.
// 9-patch images are not counted.
func (c *CompositeVO) Len() int {
	if c == nil {
		return 0
	}
	return len(c.Images) + len(c.Labels) + len(c.ParticleEffects) + len(c.Lights) +
		len(c.SpineAnimations) + len(c.SpriteAnimations) + len(c.SpriterAnimations) +
		len(c.Composites)
}

// Clone returns a deep copy of c.
func (c *CompositeVO) Clone() *CompositeVO {
	if c == nil {
		return nil
	}
	out := &CompositeVO{
		Images:            cloneItems(c.Images, func(v *SimpleImageVO) { v.MainItemVO = v.MainItemVO.clone() }),
		Image9Patches:     cloneItems(c.Image9Patches, func(v *Image9PatchVO) { v.MainItemVO = v.MainItemVO.clone() }),
		Labels:            cloneItems(c.Labels, func(v *LabelVO) { v.MainItemVO = v.MainItemVO.clone() }),
		ParticleEffects:   cloneItems(c.ParticleEffects, func(v *ParticleEffectVO) { v.MainItemVO = v.MainItemVO.clone() }),
		Lights:            cloneItems(c.Lights, func(v *LightVO) { v.MainItemVO = v.MainItemVO.clone() }),
		SpineAnimations:   cloneItems(c.SpineAnimations, func(v *SpineVO) { v.MainItemVO = v.MainItemVO.clone() }),
		SpriteAnimations:  cloneItems(c.SpriteAnimations, cloneSpriteAnimation),
		SpriterAnimations: cloneItems(c.SpriterAnimations, func(v *SpriterVO) { v.MainItemVO = v.MainItemVO.clone() }),
		Composites: cloneItems(c.Composites, func(v *CompositeItemVO) {
			v.MainItemVO = v.MainItemVO.clone()
			v.Composite = v.Composite.Clone()
		}),
		Layers: append([]LayerItemVO(nil), c.Layers...),
	}
	return out
}

func cloneItems[T any](in []T, deep func(*T)) []T {
	if in == nil {
		return nil
	}
	out := make([]T, len(in))
	copy(out, in)
	for i := range out {
		deep(&out[i])
	}
	return out
}

func cloneSpriteAnimation(v *SpriteAnimationVO) {
	v.MainItemVO = v.MainItemVO.clone()
	if v.FrameRangeMap != nil {
		m := make(map[string]Frames, len(v.FrameRangeMap))
		for k, f := range v.FrameRangeMap {
			m[k] = f
		}
		v.FrameRangeMap = m
	}
}
