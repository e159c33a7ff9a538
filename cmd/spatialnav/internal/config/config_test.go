package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/go-drift/spatialnav/pkg/focus"
)

const sceneYAML = `
navigation:
  throttle: 120ms
  rtl: true
focusables:
  - key: menu
    rect: {x: 0, y: 0, width: 400, height: 100}
    trackChildren: true
    focusBoundary: true
    boundaryDirections: [Up, down]
  - key: home
    parent: menu
    rect: {x: 0, y: 0, width: 100, height: 100}
    focusable: false
replay:
  focus: menu
  keys: [right, "Left*3", enter]
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tv/launcher/v2\n\ngo 1.24\n")
	sub := filepath.Join(dir, "scenes")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}
	path := writeFile(t, sub, "home.yaml", sceneYAML)

	res, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}

	if res.Name != "launcher" {
		t.Errorf("Name = %q, want launcher", res.Name)
	}
	if res.Throttle != 120*time.Millisecond {
		t.Errorf("Throttle = %v", res.Throttle)
	}
	if res.Repeat != DefaultRepeat {
		t.Errorf("Repeat = %v, want default", res.Repeat)
	}
	if !res.RTL {
		t.Error("RTL not set")
	}
	if len(res.Focusables) != 2 || res.Focusables[1].Parent != "menu" {
		t.Fatalf("Focusables = %+v", res.Focusables)
	}
	if f := res.Focusables[1].Focusable; f == nil || *f {
		t.Error("explicit focusable: false was lost")
	}
	if got := res.Directions["menu"]; len(got) != 2 || got[0] != focus.DirectionUp || got[1] != focus.DirectionDown {
		t.Errorf("Directions[menu] = %v", got)
	}
	if res.Focus != "menu" {
		t.Errorf("Focus = %q", res.Focus)
	}
	want := []Press{{focus.KeyRight, 1}, {focus.KeyLeft, 3}, {focus.KeyEnter, 1}}
	if len(res.Presses) != len(want) {
		t.Fatalf("Presses = %v", res.Presses)
	}
	for i := range want {
		if res.Presses[i] != want[i] {
			t.Errorf("Presses[%d] = %v, want %v", i, res.Presses[i], want[i])
		}
	}
}

func TestResolve_NameWithoutModule(t *testing.T) {
	// TempDir is outside any module in the test environment.
	dir := t.TempDir()
	path := writeFile(t, dir, "living-room.yaml", "focusables: []\n")

	res, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if _, ok := findModuleRoot(dir); ok {
		t.Skip("temp dir is inside a module")
	}
	if res.Name != "living-room" {
		t.Errorf("Name = %q, want living-room", res.Name)
	}
}

func TestResolve_ExplicitName(t *testing.T) {
	path := writeFile(t, t.TempDir(), "scene.yaml", "name: Guide\n")
	res, err := Resolve(path)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if res.Name != "Guide" {
		t.Errorf("Name = %q", res.Name)
	}
}

func TestResolve_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "missing key",
			yaml:    "focusables:\n  - rect: {x: 0, y: 0, width: 1, height: 1}\n",
			wantErr: "has no key",
		},
		{
			name:    "duplicate key",
			yaml:    "focusables:\n  - key: a\n  - key: a\n",
			wantErr: "duplicate key",
		},
		{
			name:    "parent declared later",
			yaml:    "focusables:\n  - key: child\n    parent: box\n  - key: box\n",
			wantErr: "not declared before it",
		},
		{
			name:    "negative size",
			yaml:    "focusables:\n  - key: a\n    rect: {x: 0, y: 0, width: -1, height: 1}\n",
			wantErr: "negative size",
		},
		{
			name:    "bad direction",
			yaml:    "focusables:\n  - key: a\n    boundaryDirections: [sideways]\n",
			wantErr: "invalid boundary direction",
		},
		{
			name:    "bad throttle",
			yaml:    "navigation:\n  throttle: soon\n",
			wantErr: "navigation.throttle",
		},
		{
			name:    "negative repeat",
			yaml:    "navigation:\n  repeat: -5ms\n",
			wantErr: "cannot be negative",
		},
		{
			name:    "unknown replay focus",
			yaml:    "replay:\n  focus: ghost\n",
			wantErr: "unknown key \"ghost\"",
		},
		{
			name:    "unknown key name",
			yaml:    "replay:\n  keys: [space]\n",
			wantErr: "unknown key \"space\"",
		},
		{
			name:    "bad repeat count",
			yaml:    "replay:\n  keys: [\"up*0\"]\n",
			wantErr: "invalid repeat count",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "scene.yaml", tt.yaml)
			_, err := Resolve(path)
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.Is(err, ErrInvalidScene) {
				t.Errorf("error %v does not wrap ErrInvalidScene", err)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not contain %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing file: got %v", err)
	}

	path := writeFile(t, t.TempDir(), "broken.yaml", "focusables: [\n")
	if _, err := Load(path); err == nil || !strings.Contains(err.Error(), "failed to parse") {
		t.Errorf("broken yaml: got %v", err)
	}
}
