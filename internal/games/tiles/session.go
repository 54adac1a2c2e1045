package tiles

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

// ErrInvalidTransition is returned when a phase change is not allowed from
// the current phase.
var ErrInvalidTransition = errors.New("tiles: invalid phase transition")

// Session holds the state of one game: phase, score, speed and active tiles.
// It is not safe for concurrent use; the caller serializes all calls.
type Session struct {
	cfg     config.TilesConfig
	rng     *rand.Rand
	spawner *Spawner

	phase   Phase
	score   int
	speed   float64
	tiles   []*Tile
	missed  *Tile  // Tile that ended the run
	nextID  TileID // Never reset, so IDs stay unique across runs
	scored  bool   // First tap of the run already seen
	frame   uint64
	spawned int
}

// NewSession creates a session in the menu phase.
func NewSession(cfg config.TilesConfig, seed int64) *Session {
	rng := rand.New(rand.NewSource(seed))
	s := &Session{
		cfg:     cfg,
		rng:     rng,
		spawner: NewSpawner(rng, cfg.Spawner.DoubleChance),
		phase:   PhaseMenu,
	}
	s.reset()
	return s
}

// reset clears all per-run state.
func (s *Session) reset() {
	s.score = 0
	s.speed = s.cfg.Difficulty.Speed(0)
	s.tiles = nil
	s.missed = nil
	s.scored = false
	s.frame = 0
	s.spawned = 0
	s.spawner.Reset()
}

// Start moves from the menu to a fresh run.
func (s *Session) Start() error {
	if s.phase != PhaseMenu {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, s.phase)
	}
	s.reset()
	s.phase = PhasePlaying
	return nil
}

// Restart begins a new run after game over, resetting score, speed, tiles
// and the previous spawn lane.
func (s *Session) Restart() error {
	if s.phase != PhaseGameOver {
		return fmt.Errorf("%w: restart from %s", ErrInvalidTransition, s.phase)
	}
	s.reset()
	s.phase = PhasePlaying
	return nil
}

// Spawn runs one spawn tick and returns the tiles it created.
// It does nothing unless the run is in progress.
func (s *Session) Spawn() []Tile {
	if s.phase != PhasePlaying {
		return nil
	}

	lanes := s.spawner.Choose(s.occupiedLanes())
	created := make([]Tile, 0, len(lanes))
	for _, lane := range lanes {
		s.nextID++
		t := &Tile{
			ID:   s.nextID,
			Lane: lane,
			Y:    -s.cfg.Playfield.TileHeight,
		}
		s.tiles = append(s.tiles, t)
		created = append(created, *t)
	}
	s.spawned += len(created)

	s.checkInvariants()
	return created
}

// occupiedLanes reports which lanes hold an unresolved tile.
func (s *Session) occupiedLanes() [LaneCount]bool {
	var occupied [LaneCount]bool
	for _, t := range s.tiles {
		if !t.Resolved {
			occupied[t.Lane] = true
		}
	}
	return occupied
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// Running reports whether a run is in progress.
func (s *Session) Running() bool {
	return s.phase == PhasePlaying
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Speed returns the current fall speed in units per frame.
func (s *Session) Speed() float64 {
	return s.speed
}

// LastLane returns the lane of the most recent spawn, or NoLane.
func (s *Session) LastLane() int {
	return s.spawner.LastLane()
}

// Config returns the configuration the session was built with.
func (s *Session) Config() config.TilesConfig {
	return s.cfg
}

// Tiles returns a copy of the active tiles in spawn order.
func (s *Session) Tiles() []Tile {
	out := make([]Tile, len(s.tiles))
	for i, t := range s.tiles {
		out[i] = *t
	}
	return out
}

// Missed returns the tile that ended the last run.
func (s *Session) Missed() (Tile, bool) {
	if s.missed == nil {
		return Tile{}, false
	}
	return *s.missed, true
}

func (s *Session) find(id TileID) *Tile {
	for _, t := range s.tiles {
		if t.ID == id {
			return t
		}
	}
	return nil
}
