// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/spf13/pflag"
)

func TestCommand_Execute_DispatchesToSubcommand(t *testing.T) {
	var called string

	root := &Command{
		Name: "iotactl",
		Subcommands: []*Command{
			{
				Name: "list",
				Run: func(args []string) error {
					called = "list"
					return nil
				},
			},
			{
				Name: "off",
				Run: func(args []string) error {
					called = "off"
					return nil
				},
			},
		},
	}

	if err := root.Execute([]string{"off"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if called != "off" {
		t.Errorf("dispatched to %q, want %q", called, "off")
	}
}

func TestCommand_Execute_FlagParsing(t *testing.T) {
	var unit string
	var rate time.Duration

	command := &Command{
		Name: "on",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("on", pflag.ContinueOnError)
			flagSet.StringVarP(&unit, "unit", "u", "c", "temperature unit")
			flagSet.DurationVarP(&rate, "rate", "r", time.Second, "refresh interval")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	if err := command.Execute([]string{"--unit", "f", "-r", "500ms"}); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if unit != "f" {
		t.Errorf("unit = %q, want %q", unit, "f")
	}
	if rate != 500*time.Millisecond {
		t.Errorf("rate = %v, want 500ms", rate)
	}
}

func TestCommand_Execute_UnknownCommandSuggestion(t *testing.T) {
	root := &Command{
		Name: "iotactl",
		Subcommands: []*Command{
			{Name: "sensors", Run: func([]string) error { return nil }},
			{Name: "off", Run: func([]string) error { return nil }},
		},
	}

	err := root.Execute([]string{"sensros"})
	if err == nil {
		t.Fatal("Execute() with unknown command should fail")
	}
	if !strings.Contains(err.Error(), `did you mean "sensors"`) {
		t.Errorf("error %q missing suggestion for sensors", err)
	}
}

func TestCommand_Execute_UnknownFlagSuggestion(t *testing.T) {
	command := &Command{
		Name: "on",
		Flags: func() *pflag.FlagSet {
			flagSet := pflag.NewFlagSet("on", pflag.ContinueOnError)
			flagSet.String("sensor", "k10temp", "sensor query")
			return flagSet
		},
		Run: func(args []string) error { return nil },
	}

	err := command.Execute([]string{"--sensro", "coretemp"})
	if err == nil {
		t.Fatal("Execute() with unknown flag should fail")
	}
	if !strings.Contains(err.Error(), "--sensor") {
		t.Errorf("error %q missing flag suggestion", err)
	}
}

func TestCommand_Execute_SubcommandRequired(t *testing.T) {
	root := &Command{
		Name:        "iotactl",
		Subcommands: []*Command{{Name: "list", Run: func([]string) error { return nil }}},
	}

	if err := root.Execute(nil); err == nil {
		t.Fatal("Execute() with no subcommand should fail")
	}
}

func TestCommand_Execute_HelpFlagSucceeds(t *testing.T) {
	root := &Command{
		Name:        "iotactl",
		Subcommands: []*Command{{Name: "list", Summary: "List interfaces", Run: func([]string) error { return nil }}},
	}

	if err := root.Execute([]string{"--help"}); err != nil {
		t.Errorf("Execute(--help) error: %v", err)
	}
}

func TestCommand_PrintHelp(t *testing.T) {
	root := &Command{
		Name:    "iotactl",
		Summary: "Drive the Ocypus Iota LCD cooler display",
		Subcommands: []*Command{
			{Name: "on", Summary: "Stream a temperature to the display"},
			{Name: "off", Summary: "Blank the display"},
		},
		Examples: []Example{
			{Description: "Stream in Fahrenheit", Command: "iotactl on --unit f"},
		},
	}

	var help bytes.Buffer
	root.PrintHelp(&help)

	output := help.String()
	for _, want := range []string{"on", "Stream a temperature", "off", "Blank the display", "iotactl on --unit f"} {
		if !strings.Contains(output, want) {
			t.Errorf("help output missing %q:\n%s", want, output)
		}
	}
}
