// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/systemd"
)

type installParams struct {
	Unit   string        `flag:"unit,u" desc:"Temperature unit: c or f"`
	Sensor string        `flag:"sensor,s" desc:"Sensor name or substring to display"`
	Rate   time.Duration `flag:"rate,r" desc:"Refresh interval (minimum 100ms)"`
	Name   string        `flag:"name,n" desc:"Service unit name"`
	Config string        `flag:"config" desc:"Path to the iotactl config file"`
}

func installServiceCommand() *cli.Command {
	params := &installParams{}
	return &cli.Command{
		Name:    "install-service",
		Summary: "Install a systemd service for the display streamer",
		Description: `Write a systemd unit that runs "iotactl on" at boot, using the
absolute path of the current executable.

The unit is written to ` + systemd.UnitDirectory + `, which requires
root. The streamer settings baked into the unit follow the same
precedence as "on": flags override the config file, which overrides
the built-in defaults.`,
		Usage: "iotactl install-service [--name <unit>] [--sensor <name>] [--unit c|f] [--rate <interval>]",
		Examples: []cli.Example{
			{Description: "Install with the default settings", Command: "sudo iotactl install-service"},
			{Description: "Install a fahrenheit streamer under a custom unit name", Command: "sudo iotactl install-service --unit f --name office-cooler"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("install-service", params) },
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("install-service takes no arguments")
			}
			resolved, err := resolveSettings(params.Config, params.Unit, params.Sensor, params.Rate, params.Name)
			if err != nil {
				return err
			}
			unit, err := systemd.StreamerUnit(resolved.ServiceName, resolved.Sensor, resolved.Unit.String(), resolved.Rate)
			if err != nil {
				return err
			}
			path, err := systemd.Install(unit, systemd.UnitDirectory)
			if err != nil {
				return err
			}
			fmt.Printf("Installed %s\n", path)
			fmt.Printf("\nTo enable and start the service:\n")
			fmt.Printf("  systemctl daemon-reload\n")
			fmt.Printf("  systemctl enable --now %s.service\n", resolved.ServiceName)
			fmt.Printf("\nTo check on it later:\n")
			fmt.Printf("  systemctl status %s.service\n", resolved.ServiceName)
			return nil
		},
	}
}
