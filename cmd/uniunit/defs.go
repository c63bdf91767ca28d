package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/wanglongqi/uniunit/pkg/quantity"
)

// defsFile is the schema of the --defs YAML file: user-defined units and
// named unit systems.
//
//	units:
//	  - name: Long
//	    definition: 1000 km
//	    aliases: [lg]
//	systems:
//	  nano:
//	    description: lab scales
//	    units: {kg: ug, m: nm, s: ps}
type defsFile struct {
	Units []struct {
		Name       string   `yaml:"name"`
		Definition string   `yaml:"definition"`
		Aliases    []string `yaml:"aliases"`
	} `yaml:"units"`
	Systems map[string]customSystem `yaml:"systems"`
}

type customSystem struct {
	Description string            `yaml:"description"`
	Units       map[string]string `yaml:"units"`
}

// loadDefs registers the definitions from path into reg and records the
// custom systems for name resolution.
func loadDefs(reg *quantity.Registry, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var defs defsFile
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, u := range defs.Units {
		if err := reg.Register(u.Name, u.Definition, u.Aliases...); err != nil {
			return err
		}
	}
	for name, sys := range defs.Systems {
		if len(sys.Units) == 0 {
			return fmt.Errorf("system %q has no units", name)
		}
		customSystems[name] = sys
	}
	return nil
}
