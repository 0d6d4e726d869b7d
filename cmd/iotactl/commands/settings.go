// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package commands

import (
	"time"

	"github.com/ocypus-community/iotactl/lib/config"
	"github.com/ocypus-community/iotactl/lib/cooler"
)

// settings are the effective streamer options after layering command-line
// flags over the config file. A flag left at its zero value defers to the
// config file, which in turn defers to the built-in defaults.
type settings struct {
	Unit        cooler.Unit
	Sensor      string
	Rate        time.Duration
	ServiceName string
}

func resolveSettings(configPath, unitFlag, sensorFlag string, rateFlag time.Duration, nameFlag string) (settings, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return settings{}, err
	}
	if unitFlag != "" {
		cfg.Unit = unitFlag
	}
	if sensorFlag != "" {
		cfg.Sensor = sensorFlag
	}
	if rateFlag > 0 {
		cfg.Rate = config.Duration(rateFlag)
	}
	if nameFlag != "" {
		cfg.ServiceName = nameFlag
	}
	unit, err := cooler.ParseUnit(cfg.Unit)
	if err != nil {
		return settings{}, err
	}
	return settings{
		Unit:        unit,
		Sensor:      cfg.Sensor,
		Rate:        cfg.Rate.Std(),
		ServiceName: cfg.ServiceName,
	}, nil
}
