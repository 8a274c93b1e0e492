// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cloud

import (
	"time"

	"github.com/benbjohnson/clock"
)

// Timer reports monotonic elapsed time since it was started.
type Timer struct {

	// Clock is the time source; the real clock if nil.
	Clock clock.Clock

	start   time.Time
	started bool
}

// NewTimer returns a new Timer on the given clock,
// which may be nil for the real clock.
func NewTimer(c clock.Clock) *Timer {
	return &Timer{Clock: c}
}

func (tm *Timer) clock() clock.Clock {
	if tm.Clock == nil {
		tm.Clock = clock.New()
	}
	return tm.Clock
}

// Start (re)starts the timer at the current time.
func (tm *Timer) Start() {
	tm.start = tm.clock().Now()
	tm.started = true
}

// Elapsed returns the seconds since [Timer.Start], starting the
// timer on first use.
func (tm *Timer) Elapsed() float32 {
	if !tm.started {
		tm.Start()
	}
	return float32(tm.clock().Since(tm.start).Seconds())
}
