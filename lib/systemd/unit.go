// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package systemd renders and installs the service unit that runs the
// display streamer at boot.
package systemd

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"
	"time"
)

// UnitDirectory is where installed unit files land.
const UnitDirectory = "/etc/systemd/system"

// unitTemplate is the canonical service layout: a simple root service
// restarted automatically after a fixed backoff, started once the
// system reaches multi-user.
const unitTemplate = `[Unit]
Description={{.Description}}
After=multi-user.target

[Service]
Type=simple
User=root
ExecStart={{.ExecStart}}
Restart=always
RestartSec={{.RestartSeconds}}

[Install]
WantedBy=multi-user.target
`

// Unit describes one service unit to render.
type Unit struct {
	// Name is the unit name without the ".service" suffix.
	Name string

	// Description is the [Unit] description line.
	Description string

	// ExecStart is the full command line the service runs.
	ExecStart string

	// RestartSeconds is the restart backoff. Zero means the default
	// of 5 seconds.
	RestartSeconds int
}

// StreamerUnit builds the unit that runs "<executable> on" with the
// given flags. The executable path comes from the running binary so
// the installed service points at whatever was actually invoked.
func StreamerUnit(name, sensorQuery string, unit string, rate time.Duration) (Unit, error) {
	executable, err := os.Executable()
	if err != nil {
		return Unit{}, fmt.Errorf("locating own executable: %w", err)
	}

	execStart := fmt.Sprintf("%s on --unit %s --sensor %q --rate %s",
		executable, unit, sensorQuery, rate)

	return Unit{
		Name:        name,
		Description: "Ocypus Iota LCD temperature display",
		ExecStart:   execStart,
	}, nil
}

// Render produces the unit file contents.
func (u Unit) Render() (string, error) {
	parsed, err := template.New("unit").Parse(unitTemplate)
	if err != nil {
		return "", fmt.Errorf("parsing unit template: %w", err)
	}

	restart := u.RestartSeconds
	if restart <= 0 {
		restart = 5
	}

	var rendered strings.Builder
	err = parsed.Execute(&rendered, struct {
		Description    string
		ExecStart      string
		RestartSeconds int
	}{u.Description, u.ExecStart, restart})
	if err != nil {
		return "", fmt.Errorf("rendering unit template: %w", err)
	}
	return rendered.String(), nil
}

// Install writes the rendered unit into directory (UnitDirectory in
// production; tests point elsewhere) and returns the written path.
// A permission error is wrapped with a hint, since the common cause is
// running without root.
func Install(u Unit, directory string) (string, error) {
	rendered, err := u.Render()
	if err != nil {
		return "", err
	}

	path := filepath.Join(directory, u.Name+".service")
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return "", fmt.Errorf("writing %s: %w (re-run as root)", path, err)
		}
		return "", fmt.Errorf("writing %s: %w", path, err)
	}
	return path, nil
}
