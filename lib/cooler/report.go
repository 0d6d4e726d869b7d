// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package cooler

import "fmt"

// USB identity of the Ocypus Iota A40/A62 LCD controller.
const (
	VendorID  uint16 = 0x1a2c
	ProductID uint16 = 0x434d
)

// Report geometry. Reports are fire-and-forget output reports; the
// device never acknowledges.
const (
	// ReportLength is the exact size of every report, report id
	// included. The firmware ignores writes of any other length.
	ReportLength = 65

	// ReportID tags every report at offset 0.
	ReportID = 0x07

	// MaxDisplayValue is the largest value the panel renders. The
	// panel has two native digit cells; for values of 100 and above
	// the firmware auto-renders a leading "1" from the hundreds byte.
	MaxDisplayValue = 199
)

// Byte offsets within a report.
const (
	offsetReportID = 0
	offsetGuardA   = 1
	offsetGuardB   = 2
	offsetHundreds = 3
	offsetUnit     = 4
	offsetTens     = 5
	offsetOnes     = 6
)

// guardByte fills the two fixed bytes following the report id.
const guardByte = 0xFF

// Unit is the temperature unit flag carried in every report.
type Unit byte

const (
	Celsius    Unit = 0x00
	Fahrenheit Unit = 0x01
)

// ParseUnit converts a CLI unit string ("c" or "f", case-insensitive,
// long forms accepted) to a Unit.
func ParseUnit(s string) (Unit, error) {
	switch s {
	case "c", "C", "celsius", "Celsius":
		return Celsius, nil
	case "f", "F", "fahrenheit", "Fahrenheit":
		return Fahrenheit, nil
	}
	return Celsius, fmt.Errorf("unknown temperature unit %q (want \"c\" or \"f\")", s)
}

// String returns the CLI spelling of the unit.
func (u Unit) String() string {
	if u == Fahrenheit {
		return "f"
	}
	return "c"
}

// Symbol returns the display symbol for the unit.
func (u Unit) Symbol() string {
	if u == Fahrenheit {
		return "°F"
	}
	return "°C"
}

// EncodeValue builds the output report that renders value on the panel
// in the given unit. Values outside [0, MaxDisplayValue] are clamped to
// the boundary before digit splitting.
func EncodeValue(value int, unit Unit) [ReportLength]byte {
	if value < 0 {
		value = 0
	}
	if value > MaxDisplayValue {
		value = MaxDisplayValue
	}

	var report [ReportLength]byte
	report[offsetReportID] = ReportID
	report[offsetGuardA] = guardByte
	report[offsetGuardB] = guardByte
	report[offsetHundreds] = byte(value / 100)
	report[offsetUnit] = byte(unit)
	report[offsetTens] = byte(value / 10 % 10)
	report[offsetOnes] = byte(value % 10)
	return report
}

// BlankReport builds the report that blanks the panel. It doubles as
// the discovery liveness probe: interfaces that reject it cannot be
// driven at all.
func BlankReport() [ReportLength]byte {
	var report [ReportLength]byte
	report[offsetReportID] = ReportID
	return report
}
