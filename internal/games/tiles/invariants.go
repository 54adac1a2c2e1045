package tiles

import "fmt"

// checkInvariants verifies session bookkeeping in tilesdebug builds.
func (s *Session) checkInvariants() {
	if !debugChecks {
		return
	}

	var unresolved [LaneCount]int
	for _, t := range s.tiles {
		s.assert(t.Lane >= 0 && t.Lane < LaneCount, "tile %d in lane %d", t.ID, t.Lane)
		if !t.Resolved {
			unresolved[t.Lane]++
		}
	}
	for lane, n := range unresolved {
		s.assert(n <= 1, "lane %d holds %d unresolved tiles", lane, n)
	}
}

// assert panics with a formatted message in tilesdebug builds.
func (s *Session) assert(ok bool, format string, args ...any) {
	if debugChecks && !ok {
		panic(fmt.Sprintf("tiles: "+format, args...))
	}
}
