// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"

	"github.com/spf13/pflag"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/cooler"
)

type offParams struct {
	Verbose bool `flag:"verbose,v" desc:"Enable debug logging"`
}

func offCommand() *cli.Command {
	params := &offParams{}
	return &cli.Command{
		Name:    "off",
		Summary: "Blank the cooler display",
		Description: `Blank the cooler display and release the device.

Useful after killing a stuck streamer, or to return the cooler to its
idle animation without unplugging it.`,
		Usage: "iotactl off",
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("off", params) },
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("off takes no arguments")
			}
			logger := cli.NewCommandLogger(params.Verbose)
			session, err := cooler.Open(cooler.NewEnumerator(), logger)
			if err != nil {
				return err
			}
			if err := session.Blank(); err != nil {
				session.Close()
				return fmt.Errorf("blanking display: %w", err)
			}
			fmt.Println("Display turned off.")
			return session.Close()
		},
	}
}
