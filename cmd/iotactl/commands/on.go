// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/pflag"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/clock"
	"github.com/ocypus-community/iotactl/lib/cooler"
	"github.com/ocypus-community/iotactl/lib/display"
	"github.com/ocypus-community/iotactl/lib/sensor"
)

type onParams struct {
	Unit    string        `flag:"unit,u" desc:"Temperature unit: c or f"`
	Sensor  string        `flag:"sensor,s" desc:"Sensor name or substring to display"`
	Rate    time.Duration `flag:"rate,r" desc:"Refresh interval (minimum 100ms)"`
	Config  string        `flag:"config" desc:"Path to the iotactl config file"`
	Verbose bool          `flag:"verbose,v" desc:"Enable debug logging"`
}

func onCommand() *cli.Command {
	params := &onParams{}
	return &cli.Command{
		Name:    "on",
		Summary: "Stream a temperature sensor to the cooler display",
		Description: `Turn the display on and stream the selected temperature sensor to it.

The command runs until interrupted. On SIGINT or SIGTERM the display is
blanked and the device released before exit. The cooler firmware reverts
to its idle animation if no report arrives for a few seconds, so an
unchanged temperature is still resent every two seconds as a keep-alive.

Flags override the config file, which overrides the built-in defaults
(sensor k10temp, unit celsius, rate 1s).`,
		Usage: "iotactl on [--sensor <name>] [--unit c|f] [--rate <interval>]",
		Examples: []cli.Example{
			{Description: "Stream the default sensor in celsius", Command: "iotactl on"},
			{Description: "Stream an Intel package sensor in fahrenheit", Command: "iotactl on --sensor coretemp --unit f"},
			{Description: "Refresh twice per second", Command: "iotactl on --rate 500ms"},
		},
		Flags: func() *pflag.FlagSet { return cli.FlagsFromParams("on", params) },
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("on takes no arguments")
			}
			resolved, err := resolveSettings(params.Config, params.Unit, params.Sensor, params.Rate, "")
			if err != nil {
				return err
			}
			logger := cli.NewCommandLogger(params.Verbose)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			session, err := cooler.Open(cooler.NewEnumerator(), logger)
			if err != nil {
				return err
			}
			streamer := &display.Streamer{
				Device:      session,
				Source:      sensor.System(),
				Clock:       clock.Real(),
				Logger:      logger,
				Unit:        resolved.Unit,
				SensorQuery: resolved.Sensor,
				Rate:        resolved.Rate,
			}
			return streamer.Run(ctx)
		},
	}
}
