package jsce

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFromFile reads a YAML file of overrides on top of Default.
// Keys that are absent keep their default value.
func LoadFromFile(path string) (Constants, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Constants{}, fmt.Errorf("failed to read code constants: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML overrides on top of Default and validates the result.
func Parse(data []byte) (Constants, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Constants{}, fmt.Errorf("failed to parse code constants: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Constants{}, fmt.Errorf("invalid code constants: %w", err)
	}
	return c, nil
}
