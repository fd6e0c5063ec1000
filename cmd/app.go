// Package cmd implements the CLI application to slice financial reports.
// A main package registers Commands on a commander and executes the
// user-selected one.
package cmd

import (
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"
)

// Commands lists the subcommands of the apple-slicer tool.
var Commands = []subcommands.Command{
	&sliceCmd{},
	&ratesCmd{},
	&topicCmd{},
}

var errColor = color.New(color.FgRed)

// errorf reports a fatal error on stderr.
func errorf(format string, a ...any) {
	errColor.Fprintf(os.Stderr, format+"\n", a...)
}
