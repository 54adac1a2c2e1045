package tui

import (
	"fmt"

	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/tiles"
)

// presetMenu is the difficulty picker shown before the first run.
type presetMenu struct {
	presets []config.DifficultyPreset
	cursor  int
}

// newPresetMenu creates a picker with the cursor on initial. An empty initial
// adds a "custom" entry, first in the list, that keeps the loaded config as is.
func newPresetMenu(initial config.DifficultyPreset) presetMenu {
	m := presetMenu{presets: config.Presets()}
	if initial == "" {
		m.presets = append([]config.DifficultyPreset{""}, m.presets...)
	}
	for i, p := range m.presets {
		if p == initial {
			m.cursor = i
		}
	}
	return m
}

func (m *presetMenu) Up() {
	if m.cursor > 0 {
		m.cursor--
	}
}

func (m *presetMenu) Down() {
	if m.cursor < len(m.presets)-1 {
		m.cursor++
	}
}

// Selected returns the preset under the cursor.
func (m presetMenu) Selected() config.DifficultyPreset {
	return m.presets[m.cursor]
}

// Draw renders the picker as a centered box.
func (m presetMenu) Draw(dst *core.Screen) {
	lines := []string{"T I L E S"}

	width := 0
	for _, p := range m.presets {
		width = max(width, len(describe(p)))
	}
	for i, p := range m.presets {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		name := string(p)
		if p == "" {
			name = "custom"
		}
		lines = append(lines, fmt.Sprintf("%s%-7s %-*s", cursor, name, width, describe(p)))
	}
	lines = append(lines, "Enter to start  |  Q to quit")

	tiles.DrawMessageBox(dst, lines...)
}

func describe(p config.DifficultyPreset) string {
	if p == "" {
		return "settings from config"
	}
	return p.Describe()
}
