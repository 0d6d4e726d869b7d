// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/pflag"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/sensor"
)

type sensorsParams struct {
	Sensor string `flag:"sensor,s" desc:"Sensor name or substring to mark as selected"`
	Config string `flag:"config" desc:"Path to the iotactl config file"`
}

func sensorsCommand() *cli.Command {
	params := &sensorsParams{}
	return &cli.Command{
		Name:    "sensors",
		Summary: "List available temperature sensors",
		Description: `List every temperature sensor the OS reports, with its current
reading. The sensor that would drive the display under the current
configuration is marked as selected.`,
		Usage: "iotactl sensors [--sensor <name>]",
		Examples: []cli.Example{
			{Description: "Show all sensors", Command: "iotactl sensors"},
			{Description: "Check which sensor a substring resolves to", Command: "iotactl sensors --sensor coretemp"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("sensors", params) },
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("sensors takes no arguments")
			}
			resolved, err := resolveSettings(params.Config, "", params.Sensor, 0, "")
			if err != nil {
				return err
			}
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			source := sensor.System()
			readings, err := source.List(ctx)
			if err != nil {
				return fmt.Errorf("listing sensors: %w", err)
			}
			if len(readings) == 0 {
				fmt.Println("No temperature sensors found.")
				return nil
			}
			selected, err := sensor.Resolve(ctx, source, resolved.Sensor)
			if err != nil {
				// The sensors command is diagnostic: an unresolvable
				// query is reported in the listing, not fatal.
				selected = sensor.Reading{}
			}
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			for _, reading := range readings {
				mark := ""
				if reading.Name == selected.Name {
					mark = "(selected)"
				}
				fmt.Fprintf(tw, "%s\t%.1f°C\t%s\n", reading.Name, reading.Celsius, mark)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if selected.Name == "" {
				fmt.Printf("\nNo sensor matches %q.\n", resolved.Sensor)
			}
			return nil
		},
	}
}
