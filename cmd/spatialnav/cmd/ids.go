package cmd

import (
	"fmt"
	"strconv"

	"github.com/go-drift/spatialnav/pkg/focusable"
	"github.com/go-drift/spatialnav/pkg/ids"
)

func init() {
	RegisterCommand(&Command{
		Name:  "ids",
		Short: "Print generated focus keys",
		Long: `Print identifiers from the process-wide generator.

The prefix defaults to the one used for generated focus keys.`,
		Usage: "spatialnav ids [prefix] [count]",
		Run:   runIDs,
	})
}

func runIDs(args []string) error {
	prefix := focusable.KeyPrefix
	count := 1
	if len(args) > 2 {
		return fmt.Errorf("ids takes at most a prefix and a count")
	}
	if len(args) > 0 {
		prefix = args[0]
	}
	if len(args) > 1 {
		n, err := strconv.Atoi(args[1])
		if err != nil || n < 1 {
			return fmt.Errorf("invalid count %q", args[1])
		}
		count = n
	}

	for range count {
		fmt.Fprintln(stdout, ids.Unique(prefix))
	}
	return nil
}
