package scene

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Frames is a named frame range of a sprite animation.
type Frames struct {
	StartFrame int    `json:"startFrame" yaml:"startFrame"`
	EndFrame   int    `json:"endFrame" yaml:"endFrame"`
	Name       string `json:"name" yaml:"name"`
}

// EncodeFrames renders a frame map in the legacy textual form older scenes
// store in SpriteAnimationVO.Animations.
func EncodeFrames(animations map[string]Frames) (string, error) {
	if animations == nil {
		animations = map[string]Frames{}
	}
	b, err := json.Marshal(animations)
	if err != nil {
		return "", fmt.Errorf("scene: encode frames: %w", err)
	}
	return string(b), nil
}

// DecodeFrames parses the legacy textual frame map. An empty string yields an
// empty map. Class tags written by older exporters are ignored.
func DecodeFrames(animations string) (map[string]Frames, error) {
	animations = strings.TrimSpace(animations)
	if animations == "" {
		return map[string]Frames{}, nil
	}
	var out map[string]Frames
	if err := json.Unmarshal([]byte(animations), &out); err != nil {
		return nil, fmt.Errorf("scene: decode frames: %w", err)
	}
	if out == nil {
		out = map[string]Frames{}
	}
	return out, nil
}
