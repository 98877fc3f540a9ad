package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const configFileName = "mdtask.yaml"

// Config is the vault-level configuration read from mdtask.yaml at the vault
// root. Every field is optional; missing values fall back to defaults.
type Config struct {
	Move MoveConfig `yaml:"move"`
}

// MoveConfig configures how tasks are moved.
type MoveConfig struct {
	SourceHeading      string   `yaml:"source_heading"`
	DestinationHeading string   `yaml:"destination_heading"`
	TriggerStates      []string `yaml:"trigger_states"`
}

// LoadConfig reads mdtask.yaml from the vault root. A missing file is not an
// error and yields the zero Config.
func LoadConfig(vaultPath string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(filepath.Join(vaultPath, configFileName))
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", configFileName, err)
	}
	return cfg, nil
}

// WithDefaults fills unset fields with the stock headings and trigger
// states.
func (c Config) WithDefaults() Config {
	if c.Move.SourceHeading == "" {
		c.Move.SourceHeading = "## Todo"
	}
	if c.Move.DestinationHeading == "" {
		c.Move.DestinationHeading = "## Log"
	}
	if len(c.Move.TriggerStates) == 0 {
		for _, s := range DefaultTriggerStates {
			c.Move.TriggerStates = append(c.Move.TriggerStates, string(s))
		}
	}
	return c
}

// TriggerStates converts the configured state names, rejecting unknown ones.
func (c Config) TriggerStates() ([]MarkerState, error) {
	known := map[MarkerState]bool{
		MarkerOpen:      true,
		MarkerDone:      true,
		MarkerStarted:   true,
		MarkerScheduled: true,
		MarkerMeeting:   true,
		MarkerCustom:    true,
	}
	states := make([]MarkerState, 0, len(c.Move.TriggerStates))
	for _, name := range c.Move.TriggerStates {
		s := MarkerState(name)
		if !known[s] {
			return nil, fmt.Errorf("unknown trigger state: %s", name)
		}
		states = append(states, s)
	}
	return states, nil
}
