// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ocypus-community/iotactl/lib/config"
	"github.com/ocypus-community/iotactl/lib/cooler"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(contents), 0o600); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestResolveSettingsDefaults(t *testing.T) {
	t.Setenv(config.EnvVar, "")

	resolved, err := resolveSettings("", "", "", 0, "")
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if resolved.Unit != cooler.Celsius {
		t.Errorf("Unit = %v, want celsius", resolved.Unit)
	}
	if resolved.Sensor != "k10temp" {
		t.Errorf("Sensor = %q, want k10temp", resolved.Sensor)
	}
	if resolved.Rate != time.Second {
		t.Errorf("Rate = %v, want 1s", resolved.Rate)
	}
	if resolved.ServiceName != "iotactl-lcd" {
		t.Errorf("ServiceName = %q, want iotactl-lcd", resolved.ServiceName)
	}
}

func TestResolveSettingsFlagsOverrideConfig(t *testing.T) {
	path := writeConfig(t, "sensor: coretemp\nunit: f\nrate: 5s\nservice_name: from-file\n")

	resolved, err := resolveSettings(path, "c", "k10temp", 250*time.Millisecond, "from-flag")
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if resolved.Unit != cooler.Celsius {
		t.Errorf("Unit = %v, want celsius from flag", resolved.Unit)
	}
	if resolved.Sensor != "k10temp" {
		t.Errorf("Sensor = %q, want flag value", resolved.Sensor)
	}
	if resolved.Rate != 250*time.Millisecond {
		t.Errorf("Rate = %v, want flag value", resolved.Rate)
	}
	if resolved.ServiceName != "from-flag" {
		t.Errorf("ServiceName = %q, want flag value", resolved.ServiceName)
	}
}

func TestResolveSettingsConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, "sensor: coretemp\nunit: f\n")

	resolved, err := resolveSettings(path, "", "", 0, "")
	if err != nil {
		t.Fatalf("resolveSettings: %v", err)
	}
	if resolved.Unit != cooler.Fahrenheit {
		t.Errorf("Unit = %v, want fahrenheit from file", resolved.Unit)
	}
	if resolved.Sensor != "coretemp" {
		t.Errorf("Sensor = %q, want coretemp from file", resolved.Sensor)
	}
	if resolved.Rate != time.Second {
		t.Errorf("Rate = %v, want default 1s", resolved.Rate)
	}
}

func TestResolveSettingsBadUnitFlag(t *testing.T) {
	t.Setenv(config.EnvVar, "")
	if _, err := resolveSettings("", "kelvin", "", 0, ""); err == nil {
		t.Fatal("expected error for unknown unit")
	}
}

func TestResolveSettingsMissingConfig(t *testing.T) {
	if _, err := resolveSettings(filepath.Join(t.TempDir(), "absent.yaml"), "", "", 0, ""); err == nil {
		t.Fatal("expected error for missing config file")
	}
}
