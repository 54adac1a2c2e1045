package clock

import (
	"testing"
	"time"
)

func TestManualEvery(t *testing.T) {
	m := NewManual(10 * time.Millisecond)

	count := 0
	m.Every(100*time.Millisecond, func() { count++ })

	m.Advance(99 * time.Millisecond)
	if count != 0 {
		t.Fatalf("fired early: count = %d", count)
	}

	m.Advance(1 * time.Millisecond)
	if count != 1 {
		t.Fatalf("count = %d, want 1", count)
	}

	m.Advance(350 * time.Millisecond)
	if count != 4 {
		t.Errorf("count = %d, want 4", count)
	}
	if m.Now() != 450*time.Millisecond {
		t.Errorf("Now() = %v, want 450ms", m.Now())
	}
}

func TestManualEachFrame(t *testing.T) {
	m := NewManual(16 * time.Millisecond)

	frames := 0
	m.EachFrame(func() { frames++ })
	m.Frames(60)

	if frames != 60 {
		t.Errorf("frames = %d, want 60", frames)
	}
}

func TestManualOrdering(t *testing.T) {
	m := NewManual(50 * time.Millisecond)

	var order []string
	m.Every(100*time.Millisecond, func() { order = append(order, "spawn") })
	m.EachFrame(func() { order = append(order, "frame") })

	m.Advance(100 * time.Millisecond)

	// At 100ms both are due; the older timer fires first.
	want := []string{"frame", "spawn", "frame"}
	if len(order) != len(want) {
		t.Fatalf("order = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order = %v, want %v", order, want)
		}
	}
}

func TestManualCancel(t *testing.T) {
	m := NewManual(10 * time.Millisecond)

	count := 0
	cancel := m.EachFrame(func() { count++ })
	m.Frames(3)
	cancel()
	m.Frames(3)

	if count != 3 {
		t.Errorf("count = %d, want 3", count)
	}
	if m.Active() != 0 {
		t.Errorf("Active() = %d, want 0", m.Active())
	}

	// Cancelling twice is harmless.
	cancel()
}

func TestManualCancelFromCallback(t *testing.T) {
	m := NewManual(10 * time.Millisecond)

	var cancelOther func()
	otherFired := 0
	first := 0

	m.EachFrame(func() {
		first++
		cancelOther()
	})
	cancelOther = m.EachFrame(func() { otherFired++ })

	m.Frames(5)

	if first != 5 {
		t.Errorf("first = %d, want 5", first)
	}
	if otherFired != 0 {
		t.Errorf("cancelled timer fired %d times", otherFired)
	}
}

func TestManualSelfCancel(t *testing.T) {
	m := NewManual(10 * time.Millisecond)

	count := 0
	var cancel func()
	cancel = m.Every(20*time.Millisecond, func() {
		count++
		if count == 2 {
			cancel()
		}
	})

	m.Advance(time.Second)
	if count != 2 {
		t.Errorf("count = %d, want 2", count)
	}
}

func TestManualScheduleFromCallback(t *testing.T) {
	m := NewManual(10 * time.Millisecond)

	late := 0
	m.Every(30*time.Millisecond, func() {
		if late == 0 {
			m.EachFrame(func() { late++ })
		}
	})

	// Scheduled at 30ms, fires at 40, 50, 60.
	m.Advance(60 * time.Millisecond)
	if late != 3 {
		t.Errorf("late = %d, want 3", late)
	}
}
