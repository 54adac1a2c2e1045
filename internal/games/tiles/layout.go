package tiles

import (
	"math"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Layout constants, in screen cells.
const (
	maxLaneWidth = 9
	minLaneWidth = 3
	hudRows      = 2 // Score line and top border
	footerRows   = 2 // Bottom border and lane key labels
	minBoardRows = 6
)

// Layout maps playfield units to screen cells.
type Layout struct {
	Board     core.Rect // Inner lane area, without the border
	LaneWidth int
	field     float64
	tileH     float64
}

// NewLayout centers a four-lane board on a screen of the given size.
func NewLayout(screenW, screenH int, field, tileHeight float64) Layout {
	laneW := core.Clamp((screenW-2-(LaneCount-1))/LaneCount, minLaneWidth, maxLaneWidth)
	boardW := laneW*LaneCount + (LaneCount - 1)
	rows := core.Max(screenH-hudRows-footerRows, 0)
	x := (screenW - boardW) / 2

	return Layout{
		Board:     core.NewRect(x, hudRows, boardW, rows),
		LaneWidth: laneW,
		field:     field,
		tileH:     tileHeight,
	}
}

// Fits reports whether the screen is large enough to play.
func (l Layout) Fits(screenW, screenH int) bool {
	return l.Board.H >= minBoardRows && l.Board.X >= 1 && l.Board.Right() < screenW && screenH > 0
}

// LaneRect returns the screen area of a lane.
func (l Layout) LaneRect(lane int) core.Rect {
	x := l.Board.X + lane*(l.LaneWidth+1)
	return core.NewRect(x, l.Board.Y, l.LaneWidth, l.Board.H)
}

// row converts a playfield position to a board row offset.
func (l Layout) row(y float64) int {
	return int(math.Floor(y * float64(l.Board.H) / l.field))
}

// TileRect returns the visible screen area of a tile, clipped to the board.
func (l Layout) TileRect(t Tile) core.Rect {
	top := l.row(t.Y)
	bottom := l.row(t.Bottom(l.tileH))
	h := core.Max(bottom-top, 1)

	lane := l.LaneRect(t.Lane)
	r := core.NewRect(lane.X, l.Board.Y+top, lane.W, h)
	return r.Intersect(l.Board)
}

// HitTest returns the tile drawn at screen cell (x, y).
// Unresolved tiles win over fading ones sharing the cell.
func (l Layout) HitTest(x, y int, tiles []Tile) (TileID, bool) {
	var hit *Tile
	for i := range tiles {
		t := &tiles[i]
		if !l.TileRect(*t).Contains(x, y) {
			continue
		}
		if hit == nil || (hit.Resolved && !t.Resolved) {
			hit = t
		}
	}
	if hit == nil {
		return 0, false
	}
	return hit.ID, true
}
