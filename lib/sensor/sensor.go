// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package sensor enumerates the OS temperature sensors and resolves a
// user-supplied query string to one of them. Enumeration goes through
// gopsutil, which reads hwmon on Linux and the platform equivalents
// elsewhere; every read returns a fresh value, nothing is cached here.
package sensor

import (
	"context"
	"fmt"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Reading is one named sensor paired with its current value.
type Reading struct {
	// Name is the OS sensor key (e.g. "k10temp", "coretemp_core_0").
	Name string

	// Celsius is the current temperature.
	Celsius float64
}

// Source enumerates temperature sensors. Production code uses System();
// tests substitute fixed reading lists.
type Source interface {
	// List returns all temperature sensors in enumeration order.
	List(ctx context.Context) ([]Reading, error)
}

// System returns the Source backed by the OS sensor enumeration.
func System() Source { return systemSource{} }

type systemSource struct{}

func (systemSource) List(ctx context.Context) ([]Reading, error) {
	stats, err := host.SensorsTemperaturesWithContext(ctx)
	if err != nil && len(stats) == 0 {
		return nil, fmt.Errorf("enumerating temperature sensors: %w", err)
	}
	// gopsutil reports partial failures alongside whatever it could
	// read; usable readings win over the error.

	readings := make([]Reading, 0, len(stats))
	for _, stat := range stats {
		readings = append(readings, Reading{Name: stat.SensorKey, Celsius: stat.Temperature})
	}
	return readings, nil
}

// NotFoundError reports that no sensor matched a query. It carries the
// full list of available names so the message tells the user what to
// try instead.
type NotFoundError struct {
	// Query is the string that failed to match.
	Query string

	// Available are the sensor names that were enumerated.
	Available []string
}

func (e *NotFoundError) Error() string {
	if len(e.Available) == 0 {
		return fmt.Sprintf("no temperature sensor matches %q (the OS reported no sensors)", e.Query)
	}
	return fmt.Sprintf("no temperature sensor matches %q (available: %s)",
		e.Query, strings.Join(e.Available, ", "))
}

// Resolve finds the sensor named by query. An exact name match
// (case-insensitive) is preferred; otherwise the first sensor whose
// name contains query as a case-insensitive substring wins. Returns a
// *NotFoundError when nothing matches.
func Resolve(ctx context.Context, source Source, query string) (Reading, error) {
	readings, err := source.List(ctx)
	if err != nil {
		return Reading{}, err
	}

	lowered := strings.ToLower(query)
	for _, reading := range readings {
		if strings.ToLower(reading.Name) == lowered {
			return reading, nil
		}
	}
	for _, reading := range readings {
		if strings.Contains(strings.ToLower(reading.Name), lowered) {
			return reading, nil
		}
	}

	return Reading{}, &NotFoundError{Query: query, Available: names(readings)}
}

// Read returns a fresh value for a previously resolved sensor name.
// The name must match exactly; a sensor that has vanished from the
// enumeration produces a *NotFoundError.
func Read(ctx context.Context, source Source, name string) (Reading, error) {
	readings, err := source.List(ctx)
	if err != nil {
		return Reading{}, err
	}

	for _, reading := range readings {
		if reading.Name == name {
			return reading, nil
		}
	}
	return Reading{}, &NotFoundError{Query: name, Available: names(readings)}
}

func names(readings []Reading) []string {
	result := make([]string, len(readings))
	for i, reading := range readings {
		result[i] = reading.Name
	}
	return result
}
