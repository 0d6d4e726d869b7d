// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package cooler

import (
	"fmt"

	"github.com/karalabe/hid"
)

// Transport is a single open HID interface capable of output-report
// writes. Satisfied by *hid.Device; tests substitute in-memory fakes.
type Transport interface {
	Write(report []byte) (int, error)
	Close() error
}

// Interface describes one enumerated HID interface of the cooler.
type Interface struct {
	// Index is the USB interface number within the device.
	Index int

	// Path is the platform-specific device path used to open the
	// interface.
	Path string

	// Product is the product string reported by the device, when the
	// platform exposes it.
	Product string

	// Serial is the device serial number, when exposed.
	Serial string
}

// Enumerator lists the cooler's HID interfaces and opens them.
// Production code uses NewEnumerator (karalabe/hid); tests substitute
// fakes to exercise discovery without hardware.
type Enumerator interface {
	// Interfaces returns all interfaces matching the cooler's
	// vendor/product id, in enumeration order. Enumeration itself is
	// non-invasive: nothing is opened.
	Interfaces() []Interface

	// Open opens the transport behind a previously enumerated
	// interface.
	Open(iface Interface) (Transport, error)
}

// NewEnumerator returns the hardware Enumerator backed by karalabe/hid.
func NewEnumerator() Enumerator {
	return &hidEnumerator{}
}

type hidEnumerator struct {
	// infos retains the raw enumeration from the last Interfaces call
	// so Open can map a path back to its hid.DeviceInfo handle.
	infos []hid.DeviceInfo
}

func (e *hidEnumerator) Interfaces() []Interface {
	e.infos = hid.Enumerate(VendorID, ProductID)

	interfaces := make([]Interface, 0, len(e.infos))
	for _, info := range e.infos {
		interfaces = append(interfaces, Interface{
			Index:   info.Interface,
			Path:    info.Path,
			Product: info.Product,
			Serial:  info.Serial,
		})
	}
	return interfaces
}

func (e *hidEnumerator) Open(iface Interface) (Transport, error) {
	for _, info := range e.infos {
		if info.Path == iface.Path {
			return info.Open()
		}
	}
	return nil, fmt.Errorf("interface %q is no longer enumerated", iface.Path)
}
