package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/spatialnav/pkg/focus"
)

// FileName is the scene file looked up in the project root when no path is
// given.
const FileName = "spatialnav.yaml"

// DefaultRepeat is the simulated key repeat interval for held keys.
const DefaultRepeat = 50 * time.Millisecond

// ErrInvalidScene is wrapped by every validation error.
var ErrInvalidScene = errors.New("invalid scene")

// Scene represents a spatialnav.yaml file.
type Scene struct {
	Name       string            `yaml:"name,omitempty"`
	Navigation NavigationConfig  `yaml:"navigation"`
	Focusables []FocusableConfig `yaml:"focusables"`
	Replay     ReplayConfig      `yaml:"replay"`
}

// NavigationConfig contains navigator settings.
type NavigationConfig struct {
	// Throttle is a Go duration string, e.g. "120ms".
	Throttle string `yaml:"throttle,omitempty"`
	// Repeat is the interval between repeats of a held key.
	Repeat string `yaml:"repeat,omitempty"`
	RTL    bool   `yaml:"rtl,omitempty"`
	Debug  bool   `yaml:"debug,omitempty"`
}

// FocusableConfig describes one focusable element.
type FocusableConfig struct {
	Key                  string     `yaml:"key"`
	Parent               string     `yaml:"parent,omitempty"`
	Rect                 RectConfig `yaml:"rect"`
	Focusable            *bool      `yaml:"focusable,omitempty"`
	SaveLastFocusedChild *bool      `yaml:"saveLastFocusedChild,omitempty"`
	AutoRestoreFocus     *bool      `yaml:"autoRestoreFocus,omitempty"`
	TrackChildren        bool       `yaml:"trackChildren,omitempty"`
	ForceFocus           bool       `yaml:"forceFocus,omitempty"`
	FocusBoundary        bool       `yaml:"focusBoundary,omitempty"`
	BoundaryDirections   []string   `yaml:"boundaryDirections,omitempty"`
	PreferredChild       string     `yaml:"preferredChild,omitempty"`
}

// RectConfig is a box in screen coordinates.
type RectConfig struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// ReplayConfig is the key script replayed against the scene.
type ReplayConfig struct {
	// Focus is focused before the first key. Empty means the first
	// forceFocus item, if any.
	Focus string `yaml:"focus,omitempty"`
	// Keys are key names, optionally with a repeat count: "right*3" holds
	// right for three key downs.
	Keys []string `yaml:"keys"`
}

// Press is one resolved replay step.
type Press struct {
	Key     focus.Key
	Repeats int
}

// Resolved contains validated scene values with defaults applied.
type Resolved struct {
	Path       string
	Name       string
	Throttle   time.Duration
	Repeat     time.Duration
	RTL        bool
	Debug      bool
	Focusables []FocusableConfig
	Directions map[string][]focus.Direction
	Focus      string
	Presses    []Press
}

// Load reads and parses a scene file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", filepath.Base(path), err)
	}

	var scene Scene
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
	}

	return &scene, nil
}

// Resolve loads the scene at path, validates it and resolves defaults.
func Resolve(path string) (*Resolved, error) {
	scene, err := Load(path)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(scene.Name)
	if name == "" {
		name = defaultName(path)
	}

	throttle, err := parseDuration("navigation.throttle", scene.Navigation.Throttle, 0)
	if err != nil {
		return nil, err
	}
	repeat, err := parseDuration("navigation.repeat", scene.Navigation.Repeat, DefaultRepeat)
	if err != nil {
		return nil, err
	}

	directions, err := validateFocusables(scene.Focusables)
	if err != nil {
		return nil, err
	}

	focusKey := strings.TrimSpace(scene.Replay.Focus)
	if focusKey != "" {
		if _, ok := directions[focusKey]; !ok {
			return nil, fmt.Errorf("%w: replay.focus refers to unknown key %q", ErrInvalidScene, focusKey)
		}
	}

	presses := make([]Press, 0, len(scene.Replay.Keys))
	for _, raw := range scene.Replay.Keys {
		press, err := parsePress(raw)
		if err != nil {
			return nil, err
		}
		presses = append(presses, press)
	}

	return &Resolved{
		Path:       path,
		Name:       name,
		Throttle:   throttle,
		Repeat:     repeat,
		RTL:        scene.Navigation.RTL,
		Debug:      scene.Navigation.Debug,
		Focusables: scene.Focusables,
		Directions: directions,
		Focus:      focusKey,
		Presses:    presses,
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod.
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	root, ok := findModuleRoot(dir)
	if !ok {
		return "", fmt.Errorf("not in a Go module (no go.mod found)")
	}
	return root, nil
}

// DefaultPath returns the scene file in the project root.
func DefaultPath() (string, error) {
	root, err := FindProjectRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, FileName), nil
}

func findModuleRoot(dir string) (string, bool) {
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", fmt.Errorf("could not determine module path from go.mod")
	}
	return path, nil
}

// defaultName names a scene after the last element of the enclosing module
// path, or after the file when there is no module.
func defaultName(path string) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	dir, err := filepath.Abs(filepath.Dir(path))
	if err != nil {
		return base
	}
	root, ok := findModuleRoot(dir)
	if !ok {
		return base
	}
	modPath, err := modulePath(root)
	if err != nil {
		return base
	}
	if prefix, _, ok := module.SplitPathVersion(modPath); ok {
		modPath = prefix
	}
	parts := strings.Split(modPath, "/")
	if name := parts[len(parts)-1]; name != "" {
		return name
	}
	return base
}

func parseDuration(field, value string, def time.Duration) (time.Duration, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return def, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s: %w", ErrInvalidScene, field, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("%w: %s cannot be negative (got %s)", ErrInvalidScene, field, value)
	}
	return d, nil
}

// validateFocusables checks keys, parents and geometry. Parents must be
// declared before their children. It returns the parsed boundary
// directions by key.
func validateFocusables(items []FocusableConfig) (map[string][]focus.Direction, error) {
	directions := make(map[string][]focus.Direction, len(items))
	for i, item := range items {
		if strings.TrimSpace(item.Key) == "" {
			return nil, fmt.Errorf("%w: focusables[%d] has no key", ErrInvalidScene, i)
		}
		if _, dup := directions[item.Key]; dup {
			return nil, fmt.Errorf("%w: duplicate key %q", ErrInvalidScene, item.Key)
		}
		if item.Parent != "" && item.Parent != focus.RootFocusKey {
			if _, ok := directions[item.Parent]; !ok {
				return nil, fmt.Errorf("%w: %q has parent %q, which is not declared before it", ErrInvalidScene, item.Key, item.Parent)
			}
		}
		if item.Rect.Width < 0 || item.Rect.Height < 0 {
			return nil, fmt.Errorf("%w: %q has a negative size", ErrInvalidScene, item.Key)
		}

		dirs := make([]focus.Direction, 0, len(item.BoundaryDirections))
		for _, raw := range item.BoundaryDirections {
			d := focus.Direction(strings.ToLower(strings.TrimSpace(raw)))
			if !d.Valid() {
				return nil, fmt.Errorf("%w: %q has invalid boundary direction %q", ErrInvalidScene, item.Key, raw)
			}
			dirs = append(dirs, d)
		}
		directions[item.Key] = dirs
	}
	return directions, nil
}

func parsePress(raw string) (Press, error) {
	name, count, hasCount := strings.Cut(strings.TrimSpace(raw), "*")
	key, ok := focus.ParseKey(strings.ToLower(strings.TrimSpace(name)))
	if !ok {
		return Press{}, fmt.Errorf("%w: unknown key %q", ErrInvalidScene, raw)
	}
	repeats := 1
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(count))
		if err != nil || n < 1 {
			return Press{}, fmt.Errorf("%w: invalid repeat count in %q", ErrInvalidScene, raw)
		}
		repeats = n
	}
	return Press{Key: key, Repeats: repeats}, nil
}
