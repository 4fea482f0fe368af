package scene

import (
	"bytes"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is a scene file encoding.
type Format int

const (
	FormatJSON Format = iota
	FormatYAML
)

// FormatFor picks the encoding from a file name. The editor's ".dt" export is
// JSON.
func FormatFor(name string) Format {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatJSON
	}
}

// Decode parses a scene descriptor.
func Decode(data []byte, format Format) (*SceneVO, error) {
	var vo SceneVO
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(data, &vo); err != nil {
			return nil, fmt.Errorf("scene: unmarshal yaml: %w", err)
		}
	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		if err := dec.Decode(&vo); err != nil {
			return nil, fmt.Errorf("scene: unmarshal json: %w", err)
		}
	}
	return &vo, nil
}

// Encode renders a scene descriptor.
func Encode(vo *SceneVO, format Format) ([]byte, error) {
	if vo == nil {
		return nil, fmt.Errorf("scene: encode: nil scene")
	}
	switch format {
	case FormatYAML:
		return yaml.Marshal(vo)
	default:
		return json.MarshalIndent(vo, "", "  ")
	}
}
