package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sourceFile is the YAML document shape of a source-table override.
type sourceFile struct {
	Sources []Source `yaml:"sources"`
}

// LoadSources reads a source-table override from a YAML file.
//
// Forks of the AutoEQ repository use different source folders, so the
// table can be swapped without rebuilding:
//
//	sources:
//	  - folder: oratory1990
//	    name: oratory1990
//	    priority: 1
//	  - folder: MyRig
//	    name: myrig
//	    priority: 2
//
// Unlike Load, a missing file is an error here: an explicitly requested
// override that cannot be read should not silently fall back.
func LoadSources(path string) ([]Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var f sourceFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing source table %s: %w", path, err)
	}
	if len(f.Sources) == 0 {
		return nil, fmt.Errorf("source table %s defines no sources", path)
	}

	for i, s := range f.Sources {
		if s.Folder == "" {
			return nil, fmt.Errorf("source table %s: source %d has no folder", path, i+1)
		}
		if s.Name == "" {
			return nil, fmt.Errorf("source table %s: source %q has no name", path, s.Folder)
		}
	}

	return f.Sources, nil
}
