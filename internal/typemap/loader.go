package typemap

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadFile loads and parses a YAML type-map file from the given path.
// The file is a flat mapping of source name to target name:
//
//	int: float
//	bool: str
func LoadFile(path string) (Map, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read type map file %s: %w", path, err)
	}

	return ParseYAML(data)
}

// ParseYAML parses YAML data into a Map.
func ParseYAML(data []byte) (Map, error) {
	var raw map[string]string

	err := yaml.Unmarshal(data, &raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse type map YAML: %w", err)
	}

	if len(raw) == 0 {
		return nil, ErrEmptyMap
	}

	m := make(Map, len(raw))
	for oldName, newName := range raw {
		err := m.add(oldName, newName)
		if err != nil {
			return nil, err
		}
	}

	return m, nil
}

// Marshal serializes a Map to YAML in the same flat form LoadFile accepts.
func Marshal(m Map) ([]byte, error) {
	raw := make(map[string]string, len(m))
	for src, dst := range m {
		raw[src.String()] = dst.String()
	}

	return yaml.Marshal(raw)
}
