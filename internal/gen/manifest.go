package gen

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Manifest describes everything jelcolgen should emit for one package. It
// is an alternative to naming each type as a command-line flag, useful once
// a project has more than a couple of custom column types.
type Manifest struct {
	// Dir is the directory of the target package, relative to the manifest
	// file. If empty, the manifest file's own directory is used.
	Dir string `yaml:"dir" json:"dir"`

	// Columns lists the custom types to register as columns.
	Columns []string `yaml:"columns" json:"columns"`

	// Queryable lists the structs to equip with positional row scanning.
	Queryable []string `yaml:"queryable" json:"queryable"`
}

// LoadManifest loads a manifest from a JSON or YAML file. The format of the
// file is determined by examining its extension; files ending in .json are
// parsed as JSON files, and files ending in .yaml or .yml are parsed as
// YAML files. Other extensions are not supported. The extension is not
// case-sensitive.
func LoadManifest(file string) (Manifest, error) {
	var m Manifest

	data, err := os.ReadFile(file)
	if err != nil {
		return m, fmt.Errorf("%q: %w", file, err)
	}

	switch filepath.Ext(strings.ToLower(file)) {
	case ".json":
		err = json.Unmarshal(data, &m)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &m)
	default:
		return m, fmt.Errorf("%q: incompatible format; must be .json, .yml, or .yaml file", file)
	}
	if err != nil {
		return m, fmt.Errorf("%q: %w", file, err)
	}

	if m.Dir == "" {
		m.Dir = "."
	}
	m.Dir = filepath.Join(filepath.Dir(file), m.Dir)

	if len(m.Columns) == 0 && len(m.Queryable) == 0 {
		return m, fmt.Errorf("%q: nothing to generate; list at least one column or queryable type", file)
	}

	return m, nil
}
