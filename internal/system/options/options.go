// Released under an MIT license. See LICENSE.

// Package options parses the ren command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

//nolint:gochecknoglobals
var (
	command     string
	interactive bool
	script      string
	usage       = `ren

Usage:
  ren [SCRIPT]
  ren -c COMMAND
  ren [-i]
  ren -h

Arguments:
  SCRIPT     Path to a ren script.

Options:
  -c, --command=COMMAND  Evaluate the specified source text.
  -i, --interactive      Invert interactive mode.
  -h, --help             Display this help.

If ren's stdin is a TTY and no script or command was given, the
interactive console is started.
`
)

// Command returns the source text supplied with -c, or the empty string.
func Command() string {
	return command
}

// Interactive returns true if the console should start.
func Interactive() bool {
	return interactive
}

// Parse reads the command line.
func Parse() {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}

	command, _ = opts.String("--command")
	script, _ = opts.String("SCRIPT")

	if command == "" && script == "" && isatty.IsTerminal(os.Stdin.Fd()) {
		interactive = true
	}

	invert, _ := opts.Bool("--interactive")
	interactive = interactive != invert
}

// Script returns the script path, or the empty string.
func Script() string {
	return script
}
