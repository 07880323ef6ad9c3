// Package config loads named transition presets from YAML.
//
// A preset file looks like:
//
//	presets:
//	  fade:
//	    animation: fade
//	    duration: 500ms
//	    unmount_on_exit: true
//	groups:
//	  list:
//	    component: ul
//	    duration: 300ms
//	    animation: fade down
//	    appear: true
package config

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/go-drift/transition/pkg/transition"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultAnimation fills presets that leave animation empty.
	DefaultAnimation = "fade"
	// DefaultDuration fills presets that leave duration unset.
	DefaultDuration = 500 * time.Millisecond
)

// Duration is a time.Duration that unmarshals from either a Go duration
// string ("750ms") or a bare integer number of milliseconds.
type Duration struct {
	time.Duration
	set bool
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	var ms int64
	if err := node.Decode(&ms); err == nil {
		d.Duration = time.Duration(ms) * time.Millisecond
		d.set = true
		return nil
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(node.Value))
	if err != nil {
		return fmt.Errorf("line %d: invalid duration %q: %w", node.Line, node.Value, err)
	}
	d.Duration = parsed
	d.set = true
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (any, error) {
	return d.Duration.String(), nil
}

// IsSet reports whether the duration appeared in the source.
func (d Duration) IsSet() bool {
	return d.set
}

// Preset is a named bundle of controller props.
type Preset struct {
	Animation        string   `yaml:"animation,omitempty"`
	Duration         Duration `yaml:"duration,omitempty"`
	MountOnEnter     bool     `yaml:"mount_on_enter,omitempty"`
	UnmountOnExit    bool     `yaml:"unmount_on_exit,omitempty"`
	TransitionAppear bool     `yaml:"transition_appear,omitempty"`
}

// Props returns controller props for the preset with defaults filled in.
func (p Preset) Props() transition.Props {
	props := transition.Props{
		Animation:        p.Animation,
		Duration:         p.Duration.Duration,
		MountOnEnter:     p.MountOnEnter,
		UnmountOnExit:    p.UnmountOnExit,
		TransitionAppear: p.TransitionAppear,
	}
	if strings.TrimSpace(props.Animation) == "" {
		props.Animation = DefaultAnimation
	}
	if !p.Duration.IsSet() {
		props.Duration = DefaultDuration
	}
	return props
}

// GroupPreset is a named bundle of group settings.
type GroupPreset struct {
	Component string   `yaml:"component,omitempty"`
	Duration  Duration `yaml:"duration,omitempty"`
	Animation string   `yaml:"animation,omitempty"`
	Appear    bool     `yaml:"appear,omitempty"`
}

// Config returns a group config for the preset with defaults filled in.
// Children are left for the caller.
func (g GroupPreset) Config() transition.GroupConfig {
	cfg := transition.GroupConfig{
		Component: g.Component,
		Duration:  g.Duration.Duration,
		Animation: g.Animation,
		Appear:    g.Appear,
	}
	if strings.TrimSpace(cfg.Animation) == "" {
		cfg.Animation = DefaultAnimation
	}
	if !g.Duration.IsSet() {
		cfg.Duration = DefaultDuration
	}
	return cfg
}

// File is the parsed form of a preset file.
type File struct {
	Presets map[string]Preset      `yaml:"presets"`
	Groups  map[string]GroupPreset `yaml:"groups"`
}

// Lookup returns the preset called name. A nil file has no presets.
func (f *File) Lookup(name string) (Preset, bool) {
	if f == nil {
		return Preset{}, false
	}
	p, ok := f.Presets[name]
	return p, ok
}

// Group returns the group preset called name.
func (f *File) Group(name string) (GroupPreset, bool) {
	if f == nil {
		return GroupPreset{}, false
	}
	g, ok := f.Groups[name]
	return g, ok
}

// Names returns the preset names in sorted order.
func (f *File) Names() []string {
	names := make([]string, 0, len(f.Presets))
	for name := range f.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GroupNames returns the group preset names in sorted order.
func (f *File) GroupNames() []string {
	names := make([]string, 0, len(f.Groups))
	for name := range f.Groups {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Validate checks every preset for values a controller would reject.
func (f *File) Validate() error {
	var errs []error
	for _, name := range f.Names() {
		if d := f.Presets[name].Duration.Duration; d < 0 {
			errs = append(errs, fmt.Errorf("preset %q: duration %v must not be negative", name, d))
		}
	}
	for _, name := range f.GroupNames() {
		if g := f.Groups[name]; g.Duration.Duration < 0 {
			errs = append(errs, fmt.Errorf("group %q: duration %v must not be negative", name, g.Duration.Duration))
		}
	}
	return errors.Join(errs...)
}

// Parse decodes and validates a preset file.
func Parse(data []byte) (*File, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse presets: %w", err)
	}
	if err := f.Validate(); err != nil {
		return nil, err
	}
	return &f, nil
}

// Load reads and parses the preset file at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// LoadOptional is like Load but returns an empty file when path does not
// exist.
func LoadOptional(path string) (*File, error) {
	f, err := Load(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &File{}, nil
		}
		return nil, err
	}
	return f, nil
}
