// Command spatialnav replays key scripts against focusable scenes.
package main

import (
	goerrors "errors"
	"os"

	"github.com/go-drift/spatialnav/cmd/spatialnav/cmd"
	"github.com/go-drift/spatialnav/pkg/errors"
)

func main() {
	defer errors.RecoverWithCallback("spatialnav", func(any) { os.Exit(2) })

	if err := cmd.Execute(); err != nil {
		var navErr *errors.NavError
		if !goerrors.As(err, &navErr) {
			navErr = &errors.NavError{Op: "spatialnav", Err: err}
		}
		errors.Report(navErr)
		os.Exit(1)
	}
}
