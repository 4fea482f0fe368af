package component

import "github.com/milk9111/sceneloader/scene"

type SpriteAnimation struct {
	AnimationName string
	FPS           int
	PlayMode      int
	FrameRanges   map[string]scene.Frames
	Current       string
}

type SpineAnimation struct {
	AnimationName    string
	CurrentAnimation string
}

type SpriterAnimation struct {
	AnimationName string
	Animation     int
	Entity        int
}

var (
	SpriteAnimationComponent  = NewComponent[SpriteAnimation]()
	SpineAnimationComponent   = NewComponent[SpineAnimation]()
	SpriterAnimationComponent = NewComponent[SpriterAnimation]()
)
