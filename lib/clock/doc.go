// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

// Package clock provides an injectable time abstraction so the display
// loop's keep-alive and refresh timing can be tested deterministically.
//
// Production code accepts a Clock parameter instead of calling time.Now,
// time.After, or time.NewTicker directly. Real() provides standard
// library behavior; Fake() provides a clock that advances only when
// Advance is called:
//
//	c := clock.Fake(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
//	streamer := &display.Streamer{Clock: c /* ... */}
//	go streamer.Run(ctx)
//	c.WaitForWaiters(1)        // loop is blocked on its ticker
//	c.Advance(2 * time.Second) // fire the tick deterministically
package clock
