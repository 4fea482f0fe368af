// Package scene holds the editor-authored value objects a scene is loaded
// from. Values decode from the editor's JSON export (.dt) or from YAML using
// the same field names.
package scene

// SceneVO is the top-level scene descriptor.
type SceneVO struct {
	SceneName          string               `json:"sceneName" yaml:"sceneName"`
	Composite          *CompositeVO         `json:"composite" yaml:"composite"`
	PhysicsProperties  *PhysicsPropertiesVO `json:"physicsPropertiesVO,omitempty" yaml:"physicsPropertiesVO,omitempty"`
	AmbientColor       *Color               `json:"ambientColor,omitempty" yaml:"ambientColor,omitempty"`
	LightSystemEnabled bool                 `json:"lightSystemEnabled,omitempty" yaml:"lightSystemEnabled,omitempty"`
}

// PhysicsPropertiesVO configures the scene's physics space.
type PhysicsPropertiesVO struct {
	Enabled       bool    `json:"enabled" yaml:"enabled"`
	GravityX      float32 `json:"gravityX" yaml:"gravityX"`
	GravityY      float32 `json:"gravityY" yaml:"gravityY"`
	SleepVelocity float32 `json:"sleepVelocity,omitempty" yaml:"sleepVelocity,omitempty"`
}

// Clone returns a deep copy of s.
func (s *SceneVO) Clone() *SceneVO {
	if s == nil {
		return nil
	}
	out := *s
	out.Composite = s.Composite.Clone()
	if s.PhysicsProperties != nil {
		p := *s.PhysicsProperties
		out.PhysicsProperties = &p
	}
	if s.AmbientColor != nil {
		c := *s.AmbientColor
		out.AmbientColor = &c
	}
	return &out
}
