// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package display drives the cooler panel from a temperature sensor:
// read, convert, clamp, send, sleep, repeat. The loop is synchronous
// and single-writer; the only scheduling primitive is the refresh
// ticker, and cancellation comes in through the context.
package display

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/ocypus-community/iotactl/lib/clock"
	"github.com/ocypus-community/iotactl/lib/cooler"
	"github.com/ocypus-community/iotactl/lib/sensor"
)

const (
	// DefaultRate is the refresh interval when none is configured.
	DefaultRate = time.Second

	// MinRate is the enforced floor for the refresh interval. A
	// misconfigured rate of zero must not turn the loop into a busy
	// spin against the sensor enumeration.
	MinRate = 100 * time.Millisecond

	// DefaultKeepAlive is how long the loop lets the panel sit without
	// a report before resending the current value. The firmware
	// reverts to its default animation when reports stop arriving.
	DefaultKeepAlive = 2 * time.Second
)

// Device is the slice of the cooler session the loop drives. Close
// must be idempotent and is invoked on every exit path.
type Device interface {
	SendValue(value int, unit cooler.Unit) error
	Close() error
}

// Streamer runs the display polling loop. Zero-value durations fall
// back to the package defaults.
type Streamer struct {
	// Device receives the encoded reports.
	Device Device

	// Source enumerates temperature sensors each tick.
	Source sensor.Source

	// Clock paces the loop. Production passes clock.Real().
	Clock clock.Clock

	// Logger receives state transitions at Info and per-tick detail
	// at Debug.
	Logger *slog.Logger

	// Unit selects the displayed temperature unit.
	Unit cooler.Unit

	// SensorQuery selects the sensor: exact name preferred, else
	// first case-insensitive substring match.
	SensorQuery string

	// Rate is the refresh interval, floored at MinRate.
	Rate time.Duration

	// KeepAlive is the maximum quiet period between sends.
	KeepAlive time.Duration
}

// Run streams until the context is canceled or an unrecoverable fault
// occurs. The sensor name is resolved once up front; only its value is
// re-read on each tick. A write failure or a vanished sensor is fatal.
// On every exit path the device is blanked and closed exactly once.
//
// Returns nil on cancellation (the normal shutdown path) and the fault
// otherwise.
func (s *Streamer) Run(ctx context.Context) (err error) {
	defer func() {
		if closeErr := s.Device.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	rate := s.Rate
	if rate <= 0 {
		rate = DefaultRate
	}
	if rate < MinRate {
		rate = MinRate
	}
	keepAlive := s.KeepAlive
	if keepAlive <= 0 {
		keepAlive = DefaultKeepAlive
	}

	resolved, err := sensor.Resolve(ctx, s.Source, s.SensorQuery)
	if err != nil {
		return err
	}
	s.Logger.Info("streaming temperature",
		"sensor", resolved.Name, "unit", s.Unit.String(), "rate", rate, "keep_alive", keepAlive)

	// now is pinned per iteration: the loop start time first, then
	// each tick's timestamp. The keep-alive comparison never observes
	// a time between ticks.
	now := s.Clock.Now()
	ticker := s.Clock.NewTicker(rate)
	defer ticker.Stop()

	reading := resolved
	lastValue := -1
	var lastSend time.Time
	first := true

	for {
		if !first {
			reading, err = sensor.Read(ctx, s.Source, resolved.Name)
			if err != nil {
				return err
			}
		}
		first = false

		value := ToDisplay(reading.Celsius, s.Unit)
		if value != lastValue || lastSend.IsZero() || now.Sub(lastSend) >= keepAlive {
			if err := s.Device.SendValue(value, s.Unit); err != nil {
				return fmt.Errorf("sensor %q: %w", resolved.Name, err)
			}
			s.Logger.Debug("sent display report", "value", value, "celsius", reading.Celsius)
			lastValue = value
			lastSend = now
		}

		select {
		case <-ctx.Done():
			s.Logger.Info("display loop stopping")
			return nil
		case tick := <-ticker.C:
			now = tick
		}
	}
}

// ToDisplay converts a Celsius reading to the integer the panel shows
// in the given unit: Fahrenheit conversion when requested, rounding
// half away from zero, clamped to the displayable range.
func ToDisplay(celsius float64, unit cooler.Unit) int {
	value := celsius
	if unit == cooler.Fahrenheit {
		value = celsius*9/5 + 32
	}

	rounded := int(math.Round(value))
	if rounded < 0 {
		rounded = 0
	}
	if rounded > cooler.MaxDisplayValue {
		rounded = cooler.MaxDisplayValue
	}
	return rounded
}
