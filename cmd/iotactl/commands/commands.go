// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package commands builds the iotactl CLI command tree.
package commands

import (
	"fmt"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/version"
)

// Root builds and returns the complete iotactl command tree.
func Root() *cli.Command {
	return &cli.Command{
		Name: "iotactl",
		Description: `iotactl: temperature display driver for the Ocypus Iota A40/A62 LCD cooler.

Streams a system temperature sensor to the cooler's LCD panel over USB
HID, with systemd integration for unattended operation.`,
		Subcommands: []*cli.Command{
			listCommand(),
			sensorsCommand(),
			onCommand(),
			offCommand(),
			installServiceCommand(),
			{
				Name:    "version",
				Summary: "Print version information",
				Run: func(args []string) error {
					fmt.Printf("iotactl %s\n", version.Full())
					return nil
				},
			},
		},
	}
}
