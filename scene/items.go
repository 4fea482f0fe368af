package scene

// ItemType tags the kind of a scene item.
type ItemType int

const (
	TypeComposite ItemType = iota + 1
	TypeImage
	TypeImage9Patch
	TypeLabel
	TypeParticle
	TypeLight
	TypeSpine
	TypeSpriteAnimation
	TypeSpriter
)

var itemTypeNames = map[ItemType]string{
	TypeComposite:       "composite",
	TypeImage:           "image",
	TypeImage9Patch:     "image9patch",
	TypeLabel:           "label",
	TypeParticle:        "particle",
	TypeLight:           "light",
	TypeSpine:           "spine",
	TypeSpriteAnimation: "sprite_animation",
	TypeSpriter:         "spriter",
}

func (t ItemType) String() string {
	if name, ok := itemTypeNames[t]; ok {
		return name
	}
	return "unknown"
}

// Item is one typed child descriptor. The set of implementations is closed:
// every concrete *VO type in this package that embeds MainItemVO.
type Item interface {
	Main() *MainItemVO
	Type() ItemType
}

// MainItemVO carries the fields every item shares.
type MainItemVO struct {
	UniqueID       int                `json:"uniqueId,omitempty" yaml:"uniqueId,omitempty"`
	ItemIdentifier string             `json:"itemIdentifier,omitempty" yaml:"itemIdentifier,omitempty"`
	ItemName       string             `json:"itemName,omitempty" yaml:"itemName,omitempty"`
	Tags           []string           `json:"tags,omitempty" yaml:"tags,omitempty"`
	CustomVars     string             `json:"customVars,omitempty" yaml:"customVars,omitempty"`
	X              float32            `json:"x" yaml:"x"`
	Y              float32            `json:"y" yaml:"y"`
	ScaleX         float32            `json:"scaleX,omitempty" yaml:"scaleX,omitempty"`
	ScaleY         float32            `json:"scaleY,omitempty" yaml:"scaleY,omitempty"`
	OriginX        float32            `json:"originX,omitempty" yaml:"originX,omitempty"`
	OriginY        float32            `json:"originY,omitempty" yaml:"originY,omitempty"`
	Rotation       float32            `json:"rotation,omitempty" yaml:"rotation,omitempty"`
	ZIndex         int                `json:"zIndex" yaml:"zIndex"`
	LayerName      string             `json:"layerName,omitempty" yaml:"layerName,omitempty"`
	Tint           *Color             `json:"tint,omitempty" yaml:"tint,omitempty"`
	ShaderName     string             `json:"shaderName,omitempty" yaml:"shaderName,omitempty"`
	Physics        *PhysicsBodyDataVO `json:"physics,omitempty" yaml:"physics,omitempty"`
}

func (m *MainItemVO) Main() *MainItemVO { return m }

func (m MainItemVO) clone() MainItemVO {
	out := m
	out.Tags = append([]string(nil), m.Tags...)
	if m.Tint != nil {
		t := *m.Tint
		out.Tint = &t
	}
	if m.Physics != nil {
		p := *m.Physics
		out.Physics = &p
	}
	return out
}

// BodyType selects how a physics body is simulated.
type BodyType int

const (
	BodyStatic BodyType = iota
	BodyKinematic
	BodyDynamic
)

// PhysicsBodyDataVO describes a rigid body attached to an item.
type PhysicsBodyDataVO struct {
	BodyType    BodyType `json:"bodyType" yaml:"bodyType"`
	Mass        float32  `json:"mass,omitempty" yaml:"mass,omitempty"`
	Friction    float32  `json:"friction,omitempty" yaml:"friction,omitempty"`
	Restitution float32  `json:"restitution,omitempty" yaml:"restitution,omitempty"`
	Sensor      bool     `json:"sensor,omitempty" yaml:"sensor,omitempty"`
}

type SimpleImageVO struct {
	MainItemVO `yaml:",inline"`
	ImageName  string `json:"imageName" yaml:"imageName"`
	IsRepeat   bool   `json:"isRepeat,omitempty" yaml:"isRepeat,omitempty"`
	IsPolygon  bool   `json:"isPolygon,omitempty" yaml:"isPolygon,omitempty"`
}

func (*SimpleImageVO) Type() ItemType { return TypeImage }

// Image9PatchVO is decoded for forward compatibility; the builder skips it.
type Image9PatchVO struct {
	MainItemVO `yaml:",inline"`
	ImageName  string  `json:"imageName" yaml:"imageName"`
	Width      float32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float32 `json:"height,omitempty" yaml:"height,omitempty"`
}

func (*Image9PatchVO) Type() ItemType { return TypeImage9Patch }

type LabelVO struct {
	MainItemVO `yaml:",inline"`
	Text       string  `json:"text" yaml:"text"`
	Style      string  `json:"style,omitempty" yaml:"style,omitempty"`
	Size       int     `json:"size,omitempty" yaml:"size,omitempty"`
	Align      int     `json:"align,omitempty" yaml:"align,omitempty"`
	Width      float32 `json:"width,omitempty" yaml:"width,omitempty"`
	Height     float32 `json:"height,omitempty" yaml:"height,omitempty"`
	Multiline  bool    `json:"multiline,omitempty" yaml:"multiline,omitempty"`
}

func (*LabelVO) Type() ItemType { return TypeLabel }

type ParticleEffectVO struct {
	MainItemVO   `yaml:",inline"`
	ParticleName string `json:"particleName" yaml:"particleName"`
}

func (*ParticleEffectVO) Type() ItemType { return TypeParticle }

// LightType selects the light shape.
type LightType string

const (
	LightPoint LightType = "POINT"
	LightCone  LightType = "CONE"
)

type LightVO struct {
	MainItemVO      `yaml:",inline"`
	LightType       LightType `json:"type" yaml:"type"`
	Rays            int       `json:"rays,omitempty" yaml:"rays,omitempty"`
	Distance        float32   `json:"distance,omitempty" yaml:"distance,omitempty"`
	DirectionDegree float32   `json:"directionDegree,omitempty" yaml:"directionDegree,omitempty"`
	ConeDegree      float32   `json:"coneDegree,omitempty" yaml:"coneDegree,omitempty"`
	SoftnessLength  float32   `json:"softnessLength,omitempty" yaml:"softnessLength,omitempty"`
	IsStatic        bool      `json:"isStatic,omitempty" yaml:"isStatic,omitempty"`
	IsXRay          bool      `json:"isXRay,omitempty" yaml:"isXRay,omitempty"`
}

func (*LightVO) Type() ItemType { return TypeLight }

type SpineVO struct {
	MainItemVO           `yaml:",inline"`
	AnimationName        string `json:"animationName" yaml:"animationName"`
	CurrentAnimationName string `json:"currentAnimationName,omitempty" yaml:"currentAnimationName,omitempty"`
}

func (*SpineVO) Type() ItemType { return TypeSpine }

type SpriteAnimationVO struct {
	MainItemVO    `yaml:",inline"`
	AnimationName string            `json:"animationName" yaml:"animationName"`
	FPS           int               `json:"fps,omitempty" yaml:"fps,omitempty"`
	FrameRangeMap map[string]Frames `json:"frameRangeMap,omitempty" yaml:"frameRangeMap,omitempty"`
	PlayMode      int               `json:"playMode,omitempty" yaml:"playMode,omitempty"`
	// Animations is the legacy textual frame map; see DecodeFrames.
	Animations string `json:"animations,omitempty" yaml:"animations,omitempty"`
}

func (*SpriteAnimationVO) Type() ItemType { return TypeSpriteAnimation }

type SpriterVO struct {
	MainItemVO    `yaml:",inline"`
	AnimationName string `json:"animationName" yaml:"animationName"`
	Animation     int    `json:"animation,omitempty" yaml:"animation,omitempty"`
	Entity        int    `json:"entity,omitempty" yaml:"entity,omitempty"`
}

func (*SpriterVO) Type() ItemType { return TypeSpriter }
