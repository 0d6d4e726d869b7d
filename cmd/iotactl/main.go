// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"fmt"
	"os"

	"github.com/ocypus-community/iotactl/cmd/iotactl/commands"
)

func main() {
	if err := run(); err != nil {
		// Commands that print their own diagnostics return an ExitError
		// with the desired code. Don't print a redundant "error:" line
		// for those.
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	args := os.Args[1:]
	// Accept the conventional spelling alongside the subcommand.
	if len(args) == 1 && args[0] == "--version" {
		args = []string{"version"}
	}
	return commands.Root().Execute(args)
}
