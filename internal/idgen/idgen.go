// Copyright (c) 2024 Telar Social
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Package idgen mints "<owner>-<nanos>" identifiers whose timestamps strictly
// increase within one process.
package idgen

import (
	"fmt"
	"sync"
	"time"
)

// Clock returns the current time in unix nanoseconds.
type Clock func() uint64

// SystemClock reads the wall clock.
func SystemClock() uint64 {
	return uint64(time.Now().UnixNano())
}

// Minter hands out timestamps as max(now, last+1).
type Minter struct {
	mu    sync.Mutex
	clock Clock
	last  uint64
}

// NewMinter returns a minter on clock, or on the system clock when clock is nil.
func NewMinter(clock Clock) *Minter {
	if clock == nil {
		clock = SystemClock
	}
	return &Minter{clock: clock}
}

// Next returns the next timestamp.
func (m *Minter) Next() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := m.clock()
	if now <= m.last {
		now = m.last + 1
	}
	m.last = now
	return now
}

// Mint returns an id for owner together with the timestamp embedded in it.
func (m *Minter) Mint(owner string) (string, uint64) {
	ts := m.Next()
	return FormatID(owner, ts), ts
}

// FormatID renders the id form shared by posts and comments.
func FormatID(owner string, ts uint64) string {
	return fmt.Sprintf("%s-%d", owner, ts)
}
