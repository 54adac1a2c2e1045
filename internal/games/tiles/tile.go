// Package tiles implements the falling-tiles reflex game.
// Tiles fall through four lanes; the player taps each one before it reaches
// the bottom of the playfield, and a single miss ends the run.
//
// The package is pure simulation: it never touches the terminal or the wall
// clock. Time reaches it through the Timers interface and input through Tap.
package tiles

import "fmt"

// LaneCount is the number of lanes tiles fall through.
const LaneCount = 4

// NoLane marks "no previous spawn" for the spawner.
const NoLane = -1

// TileID identifies a tile for the lifetime of a Session.
type TileID uint64

// Tile is a single falling target.
type Tile struct {
	ID       TileID
	Lane     int     // 0..LaneCount-1
	Y        float64 // Top edge in playfield units; negative is above the visible area
	Resolved bool    // Tapped; can no longer end the run
	fade     int     // Frames left before a resolved tile is removed
}

// Bottom returns the leading edge of the tile.
func (t Tile) Bottom(tileHeight float64) float64 {
	return t.Y + tileHeight
}

// Phase is the session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}
