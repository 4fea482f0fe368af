package loader

import (
	"fmt"
	"os"

	"github.com/milk9111/sceneloader/ecs/system"
	"github.com/milk9111/sceneloader/resources"
	"gopkg.in/yaml.v3"
)

// Config is the runtime configuration read from a YAML file.
type Config struct {
	Resolution    string  `yaml:"resolution"`
	DisplayWidth  int     `yaml:"display_width"`
	DisplayHeight int     `yaml:"display_height"`
	PhysicsStep   float64 `yaml:"physics_step"`
	Debug         bool    `yaml:"debug"`
}

func DefaultConfig() Config {
	return Config{
		Resolution:    resources.DefaultResolution,
		DisplayWidth:  1280,
		DisplayHeight: 720,
		PhysicsStep:   system.DefaultPhysicsStep,
	}
}

// LoadConfig reads path over the defaults. Keys missing from the file keep
// their default value.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("loader: load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("loader: unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("loader: config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.DisplayWidth <= 0 || c.DisplayHeight <= 0 {
		return fmt.Errorf("display size must be positive, got %dx%d", c.DisplayWidth, c.DisplayHeight)
	}
	if c.PhysicsStep < 0 {
		return fmt.Errorf("physics_step must not be negative, got %v", c.PhysicsStep)
	}
	return nil
}
