// Package scenario parses and replays transition scenarios.
//
// A scenario drives either one controller or one group through a list of
// steps on a fake clock and records every status change:
//
//	name: toggle
//	controller:
//	  animation: fade
//	  duration: 300ms
//	steps:
//	  - into: true
//	  - advance: 150ms
//	  - into: false
//	  - advance: 300ms
//
//	name: list
//	group:
//	  duration: 200ms
//	  children: [a, b, c]
//	steps:
//	  - children: [a, c]
//	  - advance: 200ms
package scenario

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-drift/transition/pkg/config"
	"gopkg.in/yaml.v3"
)

// ControllerSetup describes the controller a scenario drives.
type ControllerSetup struct {
	config.Preset `yaml:",inline"`

	// Use names a preset from the presets file; inline fields are then
	// ignored.
	Use       string `yaml:"use,omitempty"`
	Into      bool   `yaml:"into,omitempty"`
	ClassName string `yaml:"class_name,omitempty"`
}

// GroupSetup describes the group a scenario drives.
type GroupSetup struct {
	config.GroupPreset `yaml:",inline"`

	// Use names a group preset from the presets file; inline fields are
	// then ignored.
	Use      string   `yaml:"use,omitempty"`
	Children []string `yaml:"children,omitempty"`
}

// Step is one scenario action. Exactly one field should be set.
type Step struct {
	// Into sets the intent and runs an update.
	Into *bool `yaml:"into,omitempty"`
	// Intent sets the intent without updating.
	Intent *bool `yaml:"intent,omitempty"`
	// Update runs an update.
	Update bool `yaml:"update,omitempty"`
	// Advance moves the clock forward, stepping one frame at a time.
	Advance config.Duration `yaml:"advance,omitempty"`
	// Children reconciles the group with a new collection.
	Children *[]string `yaml:"children,omitempty"`
	// Render records the current rendered output.
	Render bool `yaml:"render,omitempty"`
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{s.Into != nil, s.Intent != nil, s.Update, s.Advance.IsSet(), s.Children != nil, s.Render} {
		if set {
			n++
		}
	}
	return n
}

// Scenario is a parsed scenario file.
type Scenario struct {
	Name       string           `yaml:"name,omitempty"`
	Controller *ControllerSetup `yaml:"controller,omitempty"`
	Group      *GroupSetup      `yaml:"group,omitempty"`
	Steps      []Step           `yaml:"steps"`
}

// Validate checks the scenario's shape.
func (s *Scenario) Validate() error {
	if (s.Controller == nil) == (s.Group == nil) {
		return errors.New("scenario must define exactly one of controller or group")
	}
	for i, step := range s.Steps {
		switch n := step.actions(); {
		case n == 0:
			return fmt.Errorf("step %d: no action", i+1)
		case n > 1:
			return fmt.Errorf("step %d: %d actions, want one", i+1, n)
		}
		if s.Group != nil && (step.Into != nil || step.Intent != nil) {
			return fmt.Errorf("step %d: into/intent only apply to controller scenarios", i+1)
		}
		if s.Controller != nil && step.Children != nil {
			return fmt.Errorf("step %d: children only apply to group scenarios", i+1)
		}
		if step.Advance.Duration < 0 {
			return fmt.Errorf("step %d: advance must not be negative", i+1)
		}
	}
	return nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// Load reads and parses the scenario at path.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}
