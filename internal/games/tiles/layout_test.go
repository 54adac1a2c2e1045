package tiles

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

func TestNewLayout(t *testing.T) {
	l := NewLayout(80, 24, 600, 150)

	if l.LaneWidth != maxLaneWidth {
		t.Errorf("LaneWidth = %d, want %d", l.LaneWidth, maxLaneWidth)
	}
	want := core.NewRect(20, 2, 39, 20)
	if l.Board != want {
		t.Errorf("Board = %+v, want %+v", l.Board, want)
	}
	if !l.Fits(80, 24) {
		t.Error("80x24 should fit")
	}
	if NewLayout(12, 8, 600, 150).Fits(12, 8) {
		t.Error("12x8 should not fit")
	}
}

func TestTileRect(t *testing.T) {
	l := NewLayout(80, 24, 600, 150)

	tests := []struct {
		name string
		tile Tile
		want core.Rect
	}{
		{"top", Tile{Lane: 0, Y: 0}, core.NewRect(20, 2, 9, 5)},
		{"lane 2 mid", Tile{Lane: 2, Y: 300}, core.NewRect(40, 12, 9, 5)},
		{"above field", Tile{Lane: 1, Y: -150}, core.Rect{}},
		{"partly above", Tile{Lane: 1, Y: -60}, core.NewRect(30, 2, 9, 3)},
		{"partly below", Tile{Lane: 3, Y: 540}, core.NewRect(50, 20, 9, 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := l.TileRect(tt.tile); got != tt.want {
				t.Errorf("TileRect() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestHitTest(t *testing.T) {
	l := NewLayout(80, 24, 600, 150)
	tiles := []Tile{
		{ID: 1, Lane: 1, Y: 0, Resolved: true},
		{ID: 2, Lane: 1, Y: 30},
		{ID: 3, Lane: 3, Y: 300},
	}

	tests := []struct {
		name   string
		x, y   int
		want   TileID
		wantOK bool
	}{
		{"unresolved wins overlap", 32, 4, 2, true},
		{"resolved alone", 32, 2, 1, true},
		{"lane 3", 55, 13, 3, true},
		{"separator", 29, 4, 0, false},
		{"empty lane", 22, 4, 0, false},
		{"outside board", 0, 0, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := l.HitTest(tt.x, tt.y, tiles)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("HitTest(%d, %d) = %d, %v; want %d, %v", tt.x, tt.y, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestRenderGameOver(t *testing.T) {
	s := newPlaying(t, testConfig())
	s.Tap(place(s, 0, 100))
	place(s, 1, 449)
	s.Advance()

	screen := core.NewScreen(80, 24)
	Render(s, screen)

	out := screen.String()
	for _, want := range []string{"Score: 1", "GAME OVER", "Your Score: 1"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}

func TestRenderTiles(t *testing.T) {
	s := newPlaying(t, testConfig())
	place(s, 0, 0)

	screen := core.NewScreen(80, 24)
	Render(s, screen)

	cell := screen.GetCell(20, 2)
	if cell.Rune != TileChar || cell.Color != core.ColorBrightWhite {
		t.Errorf("tile cell = %+v, want %q white", cell, TileChar)
	}
	if screen.GetCell(24, 23).Rune != 'D' {
		t.Errorf("lane label = %q, want 'D'", screen.GetCell(24, 23).Rune)
	}
}

func TestRenderTooSmall(t *testing.T) {
	s := NewSession(testConfig(), 1)
	screen := core.NewScreen(30, 8)
	Render(s, screen)

	if !strings.Contains(screen.String(), "small") {
		t.Error("expected a too-small message")
	}
}
