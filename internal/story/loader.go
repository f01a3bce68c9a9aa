package story

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/forestquest/data"
)

// Load reads and decodes a file from the embedded data filesystem.
func Load[T any](filename string) (T, error) {
	var result T

	content, err := data.FS().ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := decode(filename, content, &result); err != nil {
		return result, err
	}

	return result, nil
}

// LoadFile reads a story definition from disk.
// Files ending in .yaml or .yml are decoded as YAML, everything else as JSON.
func LoadFile(path string) (Definition, error) {
	var def Definition

	content, err := os.ReadFile(path)
	if err != nil {
		return def, fmt.Errorf("failed to read story file %s: %w", path, err)
	}

	if err := decode(path, content, &def); err != nil {
		return def, err
	}

	return def, nil
}

// decode unmarshals content into target using the format implied by name.
func decode(name string, content []byte, target any) error {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, target); err != nil {
			return fmt.Errorf("failed to parse YAML from %s: %w", name, err)
		}
	default:
		if err := json.Unmarshal(content, target); err != nil {
			return fmt.Errorf("failed to parse JSON from %s: %w", name, err)
		}
	}
	return nil
}
