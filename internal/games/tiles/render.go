package tiles

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/core"
)

// Visual characters for rendering
const (
	TileChar  = '█'
	FlashChar = '▓'
)

// LaneKeys are the keyboard labels drawn under each lane.
var LaneKeys = [LaneCount]string{"D", "F", "J", "K"}

// Render draws the session into dst. Menu content is drawn by the platform on
// top of the empty board.
func Render(s *Session, dst *core.Screen) {
	dst.Clear()

	cfg := s.Config().Playfield
	layout := NewLayout(dst.Width(), dst.Height(), cfg.Height, cfg.TileHeight)
	if !layout.Fits(dst.Width(), dst.Height()) {
		DrawMessageBox(dst, "Terminal too small", "Please enlarge the window")
		return
	}

	drawHUD(s, dst, layout)
	drawBoard(dst, layout)

	for _, t := range s.Tiles() {
		if t.Resolved {
			dst.FillRect(layout.TileRect(t), FlashChar, core.ColorBrightYellow)
		} else {
			dst.FillRect(layout.TileRect(t), TileChar, core.ColorBrightWhite)
		}
	}

	if s.Phase() == PhaseGameOver {
		if t, ok := s.Missed(); ok {
			dst.FillRect(layout.TileRect(t), TileChar, core.ColorRed)
		}
		DrawMessageBox(dst,
			"GAME OVER",
			fmt.Sprintf("Your Score: %d", s.Score()),
			"R to restart  |  Q to quit",
		)
	}
}

func drawHUD(s *Session, dst *core.Screen, layout Layout) {
	score := fmt.Sprintf("Score: %d", s.Score())
	dst.DrawTextColored(layout.Board.X-1, 0, score, core.ColorBrightWhite)

	speed := fmt.Sprintf("Speed: %.1f", s.Speed())
	dst.DrawTextColored(layout.Board.Right()+1-len(speed), 0, speed, core.ColorGray)
}

func drawBoard(dst *core.Screen, layout Layout) {
	b := layout.Board
	frame := core.NewRect(b.X-1, b.Y-1, b.W+2, b.H+2)
	dst.DrawBox(frame, core.ColorGray)

	for lane := 1; lane < LaneCount; lane++ {
		x := layout.LaneRect(lane).X - 1
		dst.DrawVLine(x, b.Y, b.H, '│', core.ColorGray)
	}

	labelY := frame.Bottom()
	for lane, key := range LaneKeys {
		r := layout.LaneRect(lane)
		dst.DrawTextColored(r.X+(r.W-len(key))/2, labelY, key, core.ColorGray)
	}
}

// DrawMessageBox draws a bordered box with centered lines in the middle of
// the screen.
func DrawMessageBox(dst *core.Screen, lines ...string) {
	width := 0
	for _, line := range lines {
		width = core.Max(width, len([]rune(line)))
	}

	boxW := width + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	for i, line := range lines {
		x := box.X + (boxW-len([]rune(line)))/2
		color := core.ColorWhite
		if i == 0 {
			color = core.ColorBrightYellow
		}
		dst.DrawTextColored(x, box.Y+1+i*2, line, color)
	}
}
