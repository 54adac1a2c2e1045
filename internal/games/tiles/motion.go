package tiles

// Advance runs one motion step: every tile falls by the current speed, an
// unresolved tile whose leading edge reaches the bottom ends the run, and
// resolved tiles that finished fading are removed.
//
// Returns true only on the step that ended the run.
func (s *Session) Advance() bool {
	if s.phase != PhasePlaying {
		return false
	}
	s.frame++

	field := s.cfg.Playfield.Height
	tileH := s.cfg.Playfield.TileHeight

	for _, t := range s.tiles {
		t.Y += s.speed
		if !t.Resolved && t.Bottom(tileH) >= field {
			s.lose(t)
			return true
		}
	}

	kept := s.tiles[:0]
	for _, t := range s.tiles {
		if t.Resolved {
			if t.fade <= 0 || t.Y >= field {
				continue
			}
			t.fade--
		}
		kept = append(kept, t)
	}
	clear(s.tiles[len(kept):])
	s.tiles = kept

	return false
}

// lose ends the run; the offending tile leaves the active set.
func (s *Session) lose(t *Tile) {
	s.phase = PhaseGameOver
	s.missed = t
	s.removeTile(t.ID)
}

func (s *Session) removeTile(id TileID) {
	for i, t := range s.tiles {
		if t.ID == id {
			s.tiles = append(s.tiles[:i], s.tiles[i+1:]...)
			return
		}
	}
}

// Frame returns the number of motion steps in the current run.
func (s *Session) Frame() uint64 {
	return s.frame
}

// Spawned returns the number of tiles created in the current run.
func (s *Session) Spawned() int {
	return s.spawned
}
