package config

import (
	"fmt"
	"sort"
)

// Presets override parts of DefaultConfig. Each function edits a fresh
// default config in place.
var Presets = map[string]func(c *Config){
	"classic": func(c *Config) {},
	"heavy": func(c *Config) {
		c.Lens.Strength = 2.0
		c.Sphere.Radius = 0.6
	},
	"feather": func(c *Config) {
		c.Lens.Strength = 0.15
		c.Sphere.Radius = 0.15
	},
	"dense": func(c *Config) {
		c.Grid.Size = 16
		c.Grid.Spacing = 0.75
		c.Projection.Distance = 24
	},
	"slowmo": func(c *Config) {
		c.Animation.Step = 0.025
	},
}

func GetPreset(name string) (*Config, error) {
	apply, ok := Presets[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s (available: %v)", ErrUnknownPreset, name, ListPresets())
	}
	cfg := DefaultConfig()
	apply(cfg)
	return cfg, nil
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
