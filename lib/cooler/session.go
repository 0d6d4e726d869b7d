// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package cooler

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"
)

// ErrNoDevice reports that no cooler interface was found or that none
// of the enumerated interfaces accepted the liveness probe.
var ErrNoDevice = errors.New("no working cooler interface found")

// Session is an exclusively owned handle to the one cooler interface
// that accepted the liveness probe. Close blanks the panel and releases
// the handle; it is safe to call on every exit path, concurrently, and
// more than once.
type Session struct {
	transport Transport
	iface     Interface
	logger    *slog.Logger

	closeOnce sync.Once
	closeErr  error
}

// Open enumerates the cooler's interfaces and probes each in order by
// writing a blank report. The first interface that accepts the probe
// becomes the session; candidates that fail are closed immediately so
// no handles leak. Returns an error wrapping ErrNoDevice when nothing
// is attached or every candidate rejects the probe.
//
// The probe blanks the panel as a side effect, which is harmless: every
// caller either streams a value right after or wanted a blank panel
// anyway.
func Open(enumerator Enumerator, logger *slog.Logger) (*Session, error) {
	interfaces := enumerator.Interfaces()
	if len(interfaces) == 0 {
		return nil, fmt.Errorf("%w: no cooler attached (vendor %04x, product %04x)",
			ErrNoDevice, VendorID, ProductID)
	}

	probe := BlankReport()
	for _, iface := range interfaces {
		transport, err := enumerator.Open(iface)
		if err != nil {
			logger.Debug("interface open failed", "interface", iface.Index, "error", err)
			continue
		}

		if _, err := transport.Write(probe[:]); err != nil {
			logger.Debug("interface rejected liveness probe", "interface", iface.Index, "error", err)
			transport.Close()
			continue
		}

		logger.Info("connected to cooler", "interface", iface.Index, "path", iface.Path)
		return &Session{transport: transport, iface: iface, logger: logger}, nil
	}

	return nil, fmt.Errorf("%w: %d interface(s) enumerated, none accepted the probe",
		ErrNoDevice, len(interfaces))
}

// Interface returns the descriptor of the interface this session owns.
func (s *Session) Interface() Interface {
	return s.iface
}

// SendValue renders value on the panel in the given unit. Values
// outside the displayable range are clamped by the encoder.
func (s *Session) SendValue(value int, unit Unit) error {
	report := EncodeValue(value, unit)
	if _, err := s.transport.Write(report[:]); err != nil {
		return fmt.Errorf("writing display report: %w", err)
	}
	return nil
}

// Blank clears the panel without closing the session.
func (s *Session) Blank() error {
	report := BlankReport()
	if _, err := s.transport.Write(report[:]); err != nil {
		return fmt.Errorf("writing blank report: %w", err)
	}
	return nil
}

// Close blanks the panel best-effort and releases the device handle.
// The handle is released even when the blank write fails (the device
// may already be unplugged). Subsequent calls return the first result.
func (s *Session) Close() error {
	s.closeOnce.Do(func() {
		if err := s.Blank(); err != nil {
			s.logger.Debug("blank on close failed", "error", err)
		}
		s.closeErr = s.transport.Close()
	})
	return s.closeErr
}
