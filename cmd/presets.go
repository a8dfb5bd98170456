package cmd

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Preset struct {
	Size  int `yaml:"size"`
	Mines int `yaml:"mines"`
}

const defaultPresets = `
easy:   {size: 3, mines: 4}
normal: {size: 5, mines: 10}
hard:   {size: 7, mines: 25}
`

// loadPresets returns the built-in difficulty presets, overlaid with the
// presets from path when one is given.
func loadPresets(path string) (map[string]Preset, error) {
	presets := make(map[string]Preset)
	if err := yaml.Unmarshal([]byte(defaultPresets), &presets); err != nil {
		panic(err)
	}

	if path != "" {
		in, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		if err := yaml.Unmarshal(in, &presets); err != nil {
			return nil, err
		}
	}
	return presets, nil
}
