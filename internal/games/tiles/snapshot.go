package tiles

// Snapshot is a read-only view of a session for reporting and tests.
type Snapshot struct {
	Phase    Phase
	Score    int
	Speed    float64
	LastLane int
	Frame    uint64
	Spawned  int
	Tiles    []Tile
}

// Snapshot returns the current session state.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:    s.phase,
		Score:    s.score,
		Speed:    s.speed,
		LastLane: s.spawner.LastLane(),
		Frame:    s.frame,
		Spawned:  s.spawned,
		Tiles:    s.Tiles(),
	}
}
