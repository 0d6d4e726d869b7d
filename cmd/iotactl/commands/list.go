// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/ocypus-community/iotactl/cmd/iotactl/cli"
	"github.com/ocypus-community/iotactl/lib/cooler"
)

func listCommand() *cli.Command {
	return &cli.Command{
		Name:    "list",
		Summary: "List attached cooler HID interfaces",
		Description: `List every HID interface exposed by attached Ocypus Iota coolers.

The cooler enumerates as several HID interfaces; only one of them
accepts display reports. The "on" and "off" commands probe each
interface in order and use the first one that accepts a write, so the
index shown here is informational.`,
		Usage: "iotactl list",
		Examples: []cli.Example{
			{Description: "Show attached cooler interfaces", Command: "iotactl list"},
		},
		Run: func(args []string) error {
			if len(args) != 0 {
				return fmt.Errorf("list takes no arguments")
			}
			interfaces := cooler.NewEnumerator().Interfaces()
			if len(interfaces) == 0 {
				fmt.Println("No cooler devices found.")
				return nil
			}
			fmt.Printf("Found %d cooler interface(s):\n", len(interfaces))
			tw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "  INDEX\tPATH\tPRODUCT\tSERIAL")
			for _, iface := range interfaces {
				fmt.Fprintf(tw, "  %d\t%s\t%s\t%s\n", iface.Index, iface.Path, iface.Product, iface.Serial)
			}
			return tw.Flush()
		},
	}
}
