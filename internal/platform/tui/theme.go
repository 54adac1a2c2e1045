package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-tiles/internal/config"
)

// Theme holds the background color cycle and the styles around the board.
type Theme struct {
	backgrounds   []lipgloss.Color
	scorePerColor int

	Footer lipgloss.Style
}

// NewTheme builds a theme from configuration. Colors are used in order and
// wrap around; a repeated color simply lasts longer.
func NewTheme(cfg config.ThemeConfig) Theme {
	bgs := make([]lipgloss.Color, len(cfg.Colors))
	for i, c := range cfg.Colors {
		bgs[i] = lipgloss.Color(c)
	}

	return Theme{
		backgrounds:   bgs,
		scorePerColor: cfg.ScorePerColor,
		Footer:        lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// Background returns the background color for a score.
// It moves to the next color every scorePerColor points.
func (t Theme) Background(score int) lipgloss.Color {
	if len(t.backgrounds) == 0 || t.scorePerColor <= 0 {
		return ""
	}
	return t.backgrounds[(score/t.scorePerColor)%len(t.backgrounds)]
}
