package cmd

import (
	"fmt"

	"github.com/go-drift/spatialnav/cmd/spatialnav/internal/config"
	"github.com/go-drift/spatialnav/pkg/errors"
)

func init() {
	RegisterCommand(&Command{
		Name:  "replay",
		Short: "Replay a key script against a scene",
		Long: `Replay the keys of a scene file and print every focus change.

The scene defaults to spatialnav.yaml in the project root. Each focusable in
the file is mounted as a handle under its parent, the replay.focus key is
focused, and replay.keys are pressed in order. A key written as "right*3" is
held for three key downs, spaced by navigation.repeat.

Output lines:
  focus   <key>          <key> received focus
  within  <key>=<bool>   a trackChildren item gained or lost a focused child
  enter   <key> (xN)     enter pressed on <key>, N presses while held`,
		Usage: "spatialnav replay [scene.yaml]",
		Run:   runReplay,
	})
}

func runReplay(args []string) error {
	if len(args) > 1 {
		return fmt.Errorf("replay takes at most one scene file")
	}
	res, err := resolveScene(args)
	if err != nil {
		return err
	}

	s := mountScene(res, newLogger(), stdout)
	defer s.unmount()
	s.replay(res)

	fmt.Fprintf(stdout, "scene %s: %d focusables, focused %q\n", res.Name, len(res.Focusables), s.nav.FocusedKey())
	return nil
}

// resolveScene loads the scene named by args[0], or the project default.
// Invalid scenes come back as configuration errors.
func resolveScene(args []string) (*config.Resolved, error) {
	path := ""
	if len(args) > 0 {
		path = args[0]
	} else {
		p, err := config.DefaultPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	res, err := config.Resolve(path)
	if err != nil {
		return nil, &errors.NavError{Op: "load scene", Kind: errors.KindConfig, Err: err}
	}
	if res.Debug && verbosity == 0 {
		verbosity = 1
	}
	return res, nil
}
