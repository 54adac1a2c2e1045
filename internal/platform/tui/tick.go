// Package tui provides the Bubble Tea integration for the tiles game.
// It handles the terminal UI loop, input mapping, and drives the game loop
// from Bubble Tea tick messages.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// timerMsg is delivered when a scheduled timer comes due.
type timerMsg struct {
	id uint64
}

type timer struct {
	interval time.Duration
	fn       func()
}

// teaTimers implements tiles.Timers on top of tea.Tick.
//
// Every timer gets an ID that is never reused. A tick is rescheduled only
// while its ID is still registered, so a cancelled timer's in-flight tick is
// dropped on arrival and nothing fires after cancel returns.
type teaTimers struct {
	frame   time.Duration
	nextID  uint64
	active  map[uint64]timer
	pending []tea.Cmd
}

func newTeaTimers(frame time.Duration) *teaTimers {
	return &teaTimers{
		frame:  frame,
		active: make(map[uint64]timer),
	}
}

// Every registers fn to run every interval.
func (t *teaTimers) Every(interval time.Duration, fn func()) func() {
	t.nextID++
	id := t.nextID
	t.active[id] = timer{interval: interval, fn: fn}
	t.schedule(id, interval)
	return func() { delete(t.active, id) }
}

// EachFrame registers fn to run once per frame.
func (t *teaTimers) EachFrame(fn func()) func() {
	return t.Every(t.frame, fn)
}

func (t *teaTimers) schedule(id uint64, d time.Duration) {
	t.pending = append(t.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return timerMsg{id: id}
	}))
}

// fire runs the timer's callback and reschedules it if it is still active.
// It reports whether the message belonged to a live timer.
func (t *teaTimers) fire(id uint64) bool {
	tm, ok := t.active[id]
	if !ok {
		return false
	}
	tm.fn()
	if _, ok := t.active[id]; ok {
		t.schedule(id, tm.interval)
	}
	return true
}

// drain returns the ticks scheduled since the last call.
func (t *teaTimers) drain() tea.Cmd {
	cmds := t.pending
	t.pending = nil
	return tea.Batch(cmds...)
}

// Active returns the number of registered timers.
func (t *teaTimers) Active() int {
	return len(t.active)
}
