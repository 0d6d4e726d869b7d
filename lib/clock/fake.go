// Copyright 2026 The Iotactl Authors
// SPDX-License-Identifier: Apache-2.0

package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock initialized to the given time. Time stands
// still until Advance is called.
//
// FakeClock is safe for concurrent use by multiple goroutines.
func Fake(initial time.Time) *FakeClock {
	fake := &FakeClock{current: initial}
	fake.changed = sync.NewCond(&fake.mu)
	return fake
}

// FakeClock is a deterministic Clock for testing. After and NewTicker
// register pending waiters; Advance moves the clock forward and fires
// every waiter whose deadline has passed, in deadline order.
//
// The usual test pattern: start the loop under test in a goroutine,
// call WaitForWaiters to block until it has registered its ticker, then
// Advance past the interval and observe the effect.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	waiters []*waiter
	changed *sync.Cond
}

// waiter is a pending After channel or ticker subscription.
type waiter struct {
	deadline time.Time
	channel  chan time.Time

	// interval is non-zero for tickers: after firing, the waiter is
	// rescheduled at deadline + interval.
	interval time.Duration

	stopped bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// After returns a channel that receives once the clock is advanced past
// the deadline. If d <= 0, the channel receives immediately.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	channel := make(chan time.Time, 1)
	if d <= 0 {
		channel <- c.current
		return channel
	}
	c.add(&waiter{deadline: c.current.Add(d), channel: channel})
	return channel
}

// NewTicker returns a Ticker that fires each time the clock is advanced
// past a multiple of d. Panics if d <= 0, matching time.NewTicker.
func (c *FakeClock) NewTicker(d time.Duration) *Ticker {
	if d <= 0 {
		panic("non-positive interval for NewTicker")
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	entry := &waiter{
		deadline: c.current.Add(d),
		channel:  make(chan time.Time, 1),
		interval: d,
	}
	c.add(entry)

	return &Ticker{
		C: entry.channel,
		stop: func() {
			c.mu.Lock()
			defer c.mu.Unlock()
			entry.stopped = true
		},
	}
}

// add appends a waiter. Caller holds c.mu.
func (c *FakeClock) add(entry *waiter) {
	c.waiters = append(c.waiters, entry)
	c.changed.Broadcast()
}

// WaitForWaiters blocks until at least count waiters (pending After
// channels plus live tickers) are registered. Use this to let a
// goroutine under test reach its blocking point before advancing time.
func (c *FakeClock) WaitForWaiters(count int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.live() < count {
		c.changed.Wait()
	}
}

// live counts waiters that have not been stopped. Caller holds c.mu.
func (c *FakeClock) live() int {
	total := 0
	for _, entry := range c.waiters {
		if !entry.stopped {
			total++
		}
	}
	return total
}

// Advance moves the clock forward by d, firing every waiter whose
// deadline falls within the advanced window in deadline order. Ticker
// waiters are rescheduled and may fire multiple times in one Advance.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	target := c.current.Add(d)
	for {
		next := c.earliest(target)
		if next == nil {
			break
		}
		c.current = next.deadline
		select {
		case next.channel <- next.deadline:
		default:
			// Receiver fell behind; drop the tick like time.Ticker.
		}
		if next.interval > 0 {
			next.deadline = next.deadline.Add(next.interval)
		} else {
			next.stopped = true
		}
	}
	c.current = target
	c.compact()
}

// earliest returns the unstopped waiter with the soonest deadline at or
// before target, or nil. Caller holds c.mu.
func (c *FakeClock) earliest(target time.Time) *waiter {
	var best *waiter
	for _, entry := range c.waiters {
		if entry.stopped || entry.deadline.After(target) {
			continue
		}
		if best == nil || entry.deadline.Before(best.deadline) {
			best = entry
		}
	}
	return best
}

// compact drops stopped waiters. Caller holds c.mu.
func (c *FakeClock) compact() {
	kept := c.waiters[:0]
	for _, entry := range c.waiters {
		if !entry.stopped {
			kept = append(kept, entry)
		}
	}
	c.waiters = kept
}
