// Command periods is a command-line front end to the period algebra.
package main

import (
	"errors"
	"fmt"
	"os"
	_ "time/tzdata"

	"github.com/roach88/periods/internal/cli"
)

func main() {
	if err := cli.NewRootCommand().Execute(); err != nil {
		// Commands report their own failures as ExitErrors; anything else
		// comes from cobra (unknown flags, wrong argument counts).
		var exitErr *cli.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
