package tiles

// TapResult describes the outcome of a tap.
type TapResult struct {
	Accepted bool
	Tile     TileID
	Score    int
	Speed    float64
	First    bool // First accepted tap of the run
}

// Tap resolves the tile with the given ID. Taps on unknown, resolved or
// off-screen tiles, or outside a run, are ignored.
func (s *Session) Tap(id TileID) TapResult {
	if s.phase != PhasePlaying {
		return TapResult{}
	}
	t := s.find(id)
	if t == nil || t.Resolved || !s.visible(t) {
		return TapResult{}
	}
	return s.resolve(t)
}

// TapLane resolves the unresolved, visible tile in a lane, if any.
func (s *Session) TapLane(lane int) TapResult {
	if s.phase != PhasePlaying || lane < 0 || lane >= LaneCount {
		return TapResult{}
	}

	var target *Tile
	for _, t := range s.tiles {
		if t.Lane != lane || t.Resolved || !s.visible(t) {
			continue
		}
		if target == nil || t.Y > target.Y {
			target = t
		}
	}
	if target == nil {
		return TapResult{}
	}
	return s.resolve(target)
}

// visible reports whether any part of the tile is inside the playfield.
func (s *Session) visible(t *Tile) bool {
	return t.Bottom(s.cfg.Playfield.TileHeight) > 0 && t.Y < s.cfg.Playfield.Height
}

func (s *Session) resolve(t *Tile) TapResult {
	prevSpeed := s.speed

	t.Resolved = true
	t.fade = s.cfg.Playfield.FadeFrames
	s.score++
	s.speed = s.cfg.Difficulty.Speed(s.score)

	first := !s.scored
	s.scored = true

	if s.cfg.Playfield.FadeFrames == 0 {
		s.removeTile(t.ID)
	}

	s.assert(s.speed >= prevSpeed, "speed decreased from %v to %v", prevSpeed, s.speed)

	return TapResult{
		Accepted: true,
		Tile:     t.ID,
		Score:    s.score,
		Speed:    s.speed,
		First:    first,
	}
}
