package grouping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// PriorityFile is the YAML layout of a priority configuration file:
//
//	group_column: Broker
//	priority:
//	  - DWM
//	  - FEDEX
type PriorityFile struct {
	GroupColumn string   `yaml:"group_column"`
	Priority    []string `yaml:"priority"`
}

// LoadPriorityFile reads a priority configuration from a YAML file.
func LoadPriorityFile(path string) (*PriorityFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var pf PriorityFile
	if err := yaml.Unmarshal(data, &pf); err != nil {
		return nil, fmt.Errorf("parse priority file %s: %w", path, err)
	}
	if len(pf.Priority) == 0 {
		return nil, fmt.Errorf("priority file %s lists no groups", path)
	}
	return &pf, nil
}
