// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package cooler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
)

// fakeTransport records writes and can be told to reject them.
type fakeTransport struct {
	writes     [][]byte
	writeErr   error
	closeCalls int
}

func (f *fakeTransport) Write(report []byte) (int, error) {
	if f.writeErr != nil {
		return 0, f.writeErr
	}
	f.writes = append(f.writes, append([]byte(nil), report...))
	return len(report), nil
}

func (f *fakeTransport) Close() error {
	f.closeCalls++
	return nil
}

// fakeEnumerator serves a fixed candidate list from memory.
type fakeEnumerator struct {
	interfaces []Interface
	transports map[string]*fakeTransport
	openErrs   map[string]error
}

func (f *fakeEnumerator) Interfaces() []Interface { return f.interfaces }

func (f *fakeEnumerator) Open(iface Interface) (Transport, error) {
	if err := f.openErrs[iface.Path]; err != nil {
		return nil, err
	}
	transport, ok := f.transports[iface.Path]
	if !ok {
		return nil, fmt.Errorf("unexpected open of %q", iface.Path)
	}
	return transport, nil
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestOpenNoInterfaces(t *testing.T) {
	enumerator := &fakeEnumerator{}

	_, err := Open(enumerator, testLogger())
	if !errors.Is(err, ErrNoDevice) {
		t.Fatalf("Open with nothing attached: err = %v, want ErrNoDevice", err)
	}
}

func TestOpenFirstAcceptingInterfaceWins(t *testing.T) {
	rejecting := &fakeTransport{writeErr: errors.New("endpoint busy")}
	accepting := &fakeTransport{}
	spare := &fakeTransport{}

	enumerator := &fakeEnumerator{
		interfaces: []Interface{
			{Index: 0, Path: "hid-0"},
			{Index: 1, Path: "hid-1"},
			{Index: 2, Path: "hid-2"},
		},
		transports: map[string]*fakeTransport{
			"hid-0": rejecting,
			"hid-1": accepting,
			"hid-2": spare,
		},
	}

	session, err := Open(enumerator, testLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if session.Interface().Index != 1 {
		t.Errorf("selected interface %d, want 1", session.Interface().Index)
	}
	if rejecting.closeCalls != 1 {
		t.Errorf("rejecting candidate closed %d times, want 1 (no handle leaks)", rejecting.closeCalls)
	}
	if len(spare.writes) != 0 || spare.closeCalls != 0 {
		t.Errorf("interface after the winner was touched (writes=%d closes=%d)", len(spare.writes), spare.closeCalls)
	}

	// The probe itself must be the blank report.
	blank := BlankReport()
	if len(accepting.writes) != 1 || !bytes.Equal(accepting.writes[0], blank[:]) {
		t.Errorf("liveness probe was not the blank report")
	}
}

func TestOpenAllCandidatesReject(t *testing.T) {
	first := &fakeTransport{writeErr: errors.New("pipe error")}
	second := &fakeTransport{writeErr: errors.New("pipe error")}

	enumerator := &fakeEnumerator{
		interfaces: []Interface{{Index: 0, Path: "hid-0"}, {Index: 1, Path: "hid-1"}},
		transports: map[string]*fakeTransport{"hid-0": first, "hid-1": second},
	}

	_, err := Open(enumerator, testLogger())
	if !errors.Is(err, ErrNoDevice) {
		t.Fatalf("err = %v, want ErrNoDevice", err)
	}
	if first.closeCalls != 1 || second.closeCalls != 1 {
		t.Errorf("rejecting candidates closed %d/%d times, want 1/1", first.closeCalls, second.closeCalls)
	}
}

func TestOpenSkipsUnopenableInterfaces(t *testing.T) {
	accepting := &fakeTransport{}
	enumerator := &fakeEnumerator{
		interfaces: []Interface{{Index: 0, Path: "hid-0"}, {Index: 1, Path: "hid-1"}},
		transports: map[string]*fakeTransport{"hid-1": accepting},
		openErrs:   map[string]error{"hid-0": errors.New("permission denied")},
	}

	session, err := Open(enumerator, testLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if session.Interface().Index != 1 {
		t.Errorf("selected interface %d, want 1", session.Interface().Index)
	}
}

func TestSendValueWritesEncodedReport(t *testing.T) {
	transport := &fakeTransport{}
	session := openTestSession(t, transport)

	if err := session.SendValue(73, Fahrenheit); err != nil {
		t.Fatalf("SendValue: %v", err)
	}

	want := EncodeValue(73, Fahrenheit)
	last := transport.writes[len(transport.writes)-1]
	if !bytes.Equal(last, want[:]) {
		t.Errorf("SendValue wrote %v, want %v", last[:8], want[:8])
	}
}

func TestBlankWritesCanonicalReport(t *testing.T) {
	transport := &fakeTransport{}
	session := openTestSession(t, transport)

	if err := session.Blank(); err != nil {
		t.Fatalf("Blank: %v", err)
	}

	want := BlankReport()
	last := transport.writes[len(transport.writes)-1]
	if !bytes.Equal(last, want[:]) {
		t.Errorf("Blank wrote %v, want %v", last[:8], want[:8])
	}
}

func TestCloseBlanksThenReleasesOnce(t *testing.T) {
	transport := &fakeTransport{}
	session := openTestSession(t, transport)
	probeWrites := len(transport.writes)

	if err := session.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := session.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}

	if transport.closeCalls != 1 {
		t.Errorf("transport closed %d times, want exactly 1", transport.closeCalls)
	}
	blank := BlankReport()
	if got := len(transport.writes); got != probeWrites+1 {
		t.Errorf("writes during double Close = %d, want 1", got-probeWrites)
	} else if !bytes.Equal(transport.writes[probeWrites], blank[:]) {
		t.Errorf("close did not blank the panel")
	}
}

func TestCloseReleasesHandleWhenBlankFails(t *testing.T) {
	transport := &fakeTransport{}
	session := openTestSession(t, transport)

	// Simulate the cable being yanked mid-session.
	transport.writeErr = errors.New("device unplugged")

	if err := session.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if transport.closeCalls != 1 {
		t.Errorf("transport closed %d times, want 1 even when blank fails", transport.closeCalls)
	}
}

func openTestSession(t *testing.T, transport *fakeTransport) *Session {
	t.Helper()
	enumerator := &fakeEnumerator{
		interfaces: []Interface{{Index: 0, Path: "hid-0"}},
		transports: map[string]*fakeTransport{"hid-0": transport},
	}
	session, err := Open(enumerator, testLogger())
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	return session
}
