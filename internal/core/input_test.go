package core

import "testing"

func TestLaneActionRoundTrip(t *testing.T) {
	for lane := 0; lane < 4; lane++ {
		a := LaneAction(lane)
		got, ok := a.Lane()
		if !ok || got != lane {
			t.Errorf("LaneAction(%d).Lane() = (%d, %v), expected (%d, true)", lane, got, ok, lane)
		}
	}
}

func TestLaneActionOutOfRange(t *testing.T) {
	for _, lane := range []int{-1, 4, 10} {
		if a := LaneAction(lane); a != ActionNone {
			t.Errorf("LaneAction(%d) = %v, expected None", lane, a)
		}
	}
	for _, a := range []Action{ActionNone, ActionConfirm, ActionQuit} {
		if _, ok := a.Lane(); ok {
			t.Errorf("%v should not be a lane action", a)
		}
	}
}

func TestFrameInterval(t *testing.T) {
	cfg := DefaultConfig()
	if got := cfg.FrameInterval().Milliseconds(); got != 16 {
		t.Errorf("60fps frame interval = %dms, expected 16ms", got)
	}

	cfg.TickRate = 0
	if cfg.FrameInterval() != DefaultConfig().FrameInterval() {
		t.Error("zero tick rate should fall back to 60fps")
	}
}
