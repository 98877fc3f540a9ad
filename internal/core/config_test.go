package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfigMissingFile(t *testing.T) {
	vault := t.TempDir()
	cfg, err := LoadConfig(vault)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg = cfg.WithDefaults()
	if cfg.Move.SourceHeading != "## Todo" {
		t.Errorf("source heading = %q, want ## Todo", cfg.Move.SourceHeading)
	}
	if cfg.Move.DestinationHeading != "## Log" {
		t.Errorf("destination heading = %q, want ## Log", cfg.Move.DestinationHeading)
	}
	states, err := cfg.TriggerStates()
	if err != nil {
		t.Fatalf("trigger states: %v", err)
	}
	if len(states) != 2 || states[0] != MarkerDone || states[1] != MarkerStarted {
		t.Errorf("trigger states = %v, want [done started]", states)
	}
}

func TestLoadConfigCustom(t *testing.T) {
	vault := t.TempDir()
	yaml := "move:\n  source_heading: \"## Inbox\"\n  destination_heading: \"## Archive\"\n  trigger_states: [done]\n"
	if err := os.WriteFile(filepath.Join(vault, "mdtask.yaml"), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadConfig(vault)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	cfg = cfg.WithDefaults()
	if cfg.Move.SourceHeading != "## Inbox" {
		t.Errorf("source heading = %q, want ## Inbox", cfg.Move.SourceHeading)
	}
	if cfg.Move.DestinationHeading != "## Archive" {
		t.Errorf("destination heading = %q, want ## Archive", cfg.Move.DestinationHeading)
	}
	states, err := cfg.TriggerStates()
	if err != nil {
		t.Fatalf("trigger states: %v", err)
	}
	if len(states) != 1 || states[0] != MarkerDone {
		t.Errorf("trigger states = %v, want [done]", states)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	vault := t.TempDir()
	if err := os.WriteFile(filepath.Join(vault, "mdtask.yaml"), []byte("move: [unclosed"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, err := LoadConfig(vault)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), "mdtask.yaml") {
		t.Errorf("error should name the config file: %v", err)
	}
}

func TestTriggerStatesUnknown(t *testing.T) {
	cfg := Config{Move: MoveConfig{TriggerStates: []string{"done", "bogus"}}}
	_, err := cfg.TriggerStates()
	if err == nil {
		t.Fatal("expected error for unknown state")
	}
	if !strings.Contains(err.Error(), "bogus") {
		t.Errorf("error should name the bad state: %v", err)
	}
}
