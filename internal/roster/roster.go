// Package roster loads the optional owned-units roster file. The
// roster feeds the availability endpoint only; the combination search
// itself never consults ownership.
package roster

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// File is the YAML shape of a roster file:
//
//	units:
//	  - Cat
//	  - Macho Cat
type File struct {
	Units []string `yaml:"units"`
}

// Load reads owned unit names from a YAML roster file. Blank entries
// are dropped; order is preserved.
func Load(path string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read roster: %w", err)
	}
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse roster %q: %w", path, err)
	}
	var units []string
	for _, u := range f.Units {
		if u = strings.TrimSpace(u); u != "" {
			units = append(units, u)
		}
	}
	return units, nil
}
