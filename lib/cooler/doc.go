// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package cooler talks to the Ocypus Iota A40/A62 LCD cooler over USB
// HID. It covers interface discovery (with a liveness probe, since the
// device exposes several HID interfaces and only one accepts display
// reports), the fixed 65-byte output-report encoding, and session
// lifecycle with guaranteed blank-and-close on every exit path.
//
// The report layout was reverse-engineered from USB captures of the
// vendor tool and has two observed dialects; the one implemented here
// is the capture-verified canonical form (report id 0x07 at offset 0,
// guard bytes at 1-2, hundreds/unit/tens/ones at 3-6). Firmware
// revisions that expect the other dialect will ignore the reports
// rather than fault.
package cooler
