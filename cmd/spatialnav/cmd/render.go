package cmd

import (
	"fmt"
	"os"
)

// renderMargin pads the canvas beyond the rightmost and lowest boxes.
const renderMargin = 16

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Replay a scene and draw it as PNG",
		Long: `Replay a scene, then write a PNG showing every focusable box.

The focused item is filled green, items with a focused descendant are tinted
blue and non-focusable items get a darker outline. The canvas is sized to
fit the scene.`,
		Usage: "spatialnav render <scene.yaml> <out.png>",
		Run:   runRender,
	})
}

func runRender(args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("render requires a scene file and an output path")
	}
	res, err := resolveScene(args[:1])
	if err != nil {
		return err
	}

	s := mountScene(res, newLogger(), stdout)
	defer s.unmount()
	s.replay(res)

	f, err := os.Create(args[1])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[1], err)
	}
	if err := s.nav.RenderDebug(f, s.width+renderMargin, s.height+renderMargin); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", args[1], err)
	}

	fmt.Fprintf(stdout, "wrote %s\n", args[1])
	return nil
}
