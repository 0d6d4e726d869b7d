// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package config loads the optional defaults file for iotactl.
//
// Configuration is read from a single file specified by the --config
// flag or the IOTACTL_CONFIG environment variable (flag wins). There is
// no automatic discovery and no fallback search path: a machine either
// names its config explicitly or runs on compiled-in defaults. Flags
// set on the command line always override file values.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/ocypus-community/iotactl/lib/cooler"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "IOTACTL_CONFIG"

// Config holds the streamer defaults a host can pin in a file.
type Config struct {
	// Sensor is the sensor query string (exact name or substring).
	Sensor string `yaml:"sensor"`

	// Unit is the display unit, "c" or "f".
	Unit string `yaml:"unit"`

	// Rate is the refresh interval, e.g. "1s" or "500ms".
	Rate Duration `yaml:"rate"`

	// ServiceName is the systemd unit name used by install-service.
	ServiceName string `yaml:"service_name"`
}

// Default returns the compiled-in defaults.
func Default() Config {
	return Config{
		Sensor:      "k10temp",
		Unit:        "c",
		Rate:        Duration(time.Second),
		ServiceName: "iotactl-lcd",
	}
}

// Load returns Default overlaid with the file at path. An empty path
// falls back to the IOTACTL_CONFIG environment variable; if that is
// also unset, the defaults are returned as-is. Unknown keys and
// invalid values are errors, not warnings: a service config with a
// typo should fail at start, not drift silently.
func Load(path string) (Config, error) {
	configuration := Default()

	if path == "" {
		path = os.Getenv(EnvVar)
	}
	if path == "" {
		return configuration, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&configuration); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("parsing %s: %w", path, err)
	}

	if _, err := cooler.ParseUnit(configuration.Unit); err != nil {
		return Config{}, fmt.Errorf("in %s: %w", path, err)
	}
	if configuration.Rate < 0 {
		return Config{}, fmt.Errorf("in %s: rate must not be negative", path)
	}

	return configuration, nil
}

// Duration wraps time.Duration so yaml values can use the usual Go
// spellings ("1s", "500ms").
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var raw string
	if err := value.Decode(&raw); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(parsed)
	return nil
}

// Std returns the wrapped time.Duration.
func (d Duration) Std() time.Duration { return time.Duration(d) }
