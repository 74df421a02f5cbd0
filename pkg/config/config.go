// Package config loads YAML configuration files with environment
// variable expansion and optional validation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Validator is implemented by configuration types that can check
// themselves after loading.
type Validator interface {
	Validate() error
}

// Load reads a YAML file into target. ${VAR} references in the file are
// expanded from the environment before parsing. If target implements
// Validator, Validate is called and its error returned.
func Load[T any](filename string, target *T) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("config: read %s: %w", filename, err)
	}

	expanded := os.ExpandEnv(string(data))

	if err := yaml.Unmarshal([]byte(expanded), target); err != nil {
		return fmt.Errorf("config: parse %s: %w", filename, err)
	}

	if v, ok := any(target).(Validator); ok {
		if err := v.Validate(); err != nil {
			return fmt.Errorf("config: validate %s: %w", filename, err)
		}
	}

	return nil
}

// LoadIfExists loads filename into target when the file is present.
// A missing file is not an error; target keeps its current values.
func LoadIfExists[T any](filename string, target *T) error {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return nil
	}
	return Load(filename, target)
}
