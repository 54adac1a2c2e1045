// Package clock provides a virtual timer service. Time only moves when the
// caller advances it, which makes runs reproducible in tests and in headless
// simulations.
package clock

import (
	"time"
)

// Manual is a virtual clock implementing periodic and per-frame timers.
// It is not safe for concurrent use.
type Manual struct {
	now    time.Duration
	frame  time.Duration
	nextID uint64
	timers map[uint64]*timer
}

type timer struct {
	id       uint64
	interval time.Duration
	due      time.Duration
	fn       func()
}

// NewManual creates a clock whose frame callbacks fire every frameInterval.
func NewManual(frameInterval time.Duration) *Manual {
	if frameInterval <= 0 {
		frameInterval = time.Second / 60
	}
	return &Manual{
		frame:  frameInterval,
		timers: make(map[uint64]*timer),
	}
}

// Every schedules fn every interval, starting one interval from now.
func (m *Manual) Every(interval time.Duration, fn func()) func() {
	if interval <= 0 {
		interval = m.frame
	}
	m.nextID++
	id := m.nextID
	m.timers[id] = &timer{
		id:       id,
		interval: interval,
		due:      m.now + interval,
		fn:       fn,
	}
	return func() { delete(m.timers, id) }
}

// EachFrame schedules fn once per frame interval.
func (m *Manual) EachFrame(fn func()) func() {
	return m.Every(m.frame, fn)
}

// Advance moves time forward by d, firing every timer that comes due in
// order of due time, then creation order. A timer cancelled by an earlier
// callback does not fire.
func (m *Manual) Advance(d time.Duration) {
	target := m.now + d
	for {
		next := m.nextDue(target)
		if next == nil {
			break
		}
		m.now = next.due
		next.due += next.interval
		next.fn()
	}
	m.now = target
}

// Frames advances the clock by n frame intervals.
func (m *Manual) Frames(n int) {
	m.Advance(time.Duration(n) * m.frame)
}

func (m *Manual) nextDue(limit time.Duration) *timer {
	var best *timer
	for _, t := range m.timers {
		if t.due > limit {
			continue
		}
		if best == nil || t.due < best.due || (t.due == best.due && t.id < best.id) {
			best = t
		}
	}
	return best
}

// Now returns the virtual time elapsed since the clock was created.
func (m *Manual) Now() time.Duration {
	return m.now
}

// FrameInterval returns the per-frame interval.
func (m *Manual) FrameInterval() time.Duration {
	return m.frame
}

// Active returns the number of scheduled timers.
func (m *Manual) Active() int {
	return len(m.timers)
}
