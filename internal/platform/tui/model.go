package tui

import (
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tiles/internal/audio"
	"github.com/vovakirdan/tui-tiles/internal/config"
	"github.com/vovakirdan/tui-tiles/internal/core"
	"github.com/vovakirdan/tui-tiles/internal/games/tiles"
)

// Options configures the game model.
type Options struct {
	Config  config.TilesConfig
	Preset  config.DifficultyPreset // Initially selected in the menu
	Runtime core.RuntimeConfig
	Jukebox *audio.Jukebox // Nil when muted
	Logger  *log.Logger
}

// Model is the Bubble Tea model for the tiles game.
type Model struct {
	cfg     config.TilesConfig
	seed    int64
	loop    *tiles.Loop
	timers  *teaTimers
	jukebox *audio.Jukebox
	logger  *log.Logger

	menu     presetMenu
	keys     KeyMap
	help     help.Model
	theme    Theme
	screen   *core.Screen
	width    int
	height   int
	quitting bool
}

// NewModel creates a model in the menu phase.
func NewModel(opts Options) Model {
	rt := opts.Runtime
	// Use time-based seed if not specified
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	m := Model{
		cfg:     opts.Config,
		seed:    rt.Seed,
		timers:  newTeaTimers(rt.FrameInterval()),
		jukebox: opts.Jukebox,
		logger:  logger,
		menu:    newPresetMenu(opts.Preset),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		theme:   NewTheme(opts.Config.Theme),
		screen:  core.NewScreen(rt.ScreenW, rt.ScreenH),
		width:   rt.ScreenW,
		height:  rt.ScreenH,
	}
	m.help.Width = rt.ScreenW
	m.loop = m.newLoop(m.menu.Selected())
	return m
}

// newLoop builds a fresh session and loop for a difficulty preset.
func (m Model) newLoop(preset config.DifficultyPreset) *tiles.Loop {
	cfg := m.cfg
	config.ApplyPreset(&cfg, preset)

	var listeners []tiles.Listener
	if m.jukebox != nil {
		listeners = append(listeners, m.jukebox)
	}
	return tiles.NewLoop(tiles.NewSession(cfg, m.seed), m.timers, m.logger, listeners...)
}

// Init sets the window title.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle("tiles")
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerMsg:
		m.timers.fire(msg.id)
		return m, m.timers.drain()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	if action == core.ActionQuit {
		m.quitting = true
		m.logger.Info("quit", "score", m.loop.Session().Score())
		return m, tea.Quit
	}
	m.interact()
	if action == core.ActionNone {
		return m, nil
	}

	phase := m.loop.Session().Phase()

	if lane, ok := action.Lane(); ok {
		m.loop.TapLane(lane)
		return m, m.timers.drain()
	}

	switch action {
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionUp:
		if phase == tiles.PhaseMenu {
			m.menu.Up()
		}
	case core.ActionDown:
		if phase == tiles.PhaseMenu {
			m.menu.Down()
		}
	case core.ActionConfirm, core.ActionRestart:
		m.confirm(action)
	}

	return m, m.timers.drain()
}

// confirm starts a run from the menu or restarts after game over.
func (m *Model) confirm(action core.Action) {
	switch m.loop.Session().Phase() {
	case tiles.PhaseMenu:
		if action != core.ActionConfirm {
			return
		}
		m.loop = m.newLoop(m.menu.Selected())
		if err := m.loop.Start(); err != nil {
			m.logger.Error("failed to start", "error", err)
		}
	case tiles.PhaseGameOver:
		if err := m.loop.Restart(); err != nil {
			m.logger.Error("failed to restart", "error", err)
		}
	}
}

// handleMouse taps the tile under a left click. A click in the menu starts
// a run; after game over only R or Enter restarts.
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	m.interact()

	s := m.loop.Session()
	switch s.Phase() {
	case tiles.PhaseMenu:
		m.confirm(core.ActionConfirm)
		return m, m.timers.drain()
	case tiles.PhaseGameOver:
		// Late taps on the missed tile must not skip the final score.
		return m, nil
	}

	pf := s.Config().Playfield
	layout := tiles.NewLayout(m.screen.Width(), m.screen.Height(), pf.Height, pf.TileHeight)
	if id, ok := layout.HitTest(msg.X, msg.Y, s.Tiles()); ok {
		m.loop.Tap(id)
	}
	return m, m.timers.drain()
}

// interact lets the jukebox retry a start the audio device refused.
func (m Model) interact() {
	if m.jukebox != nil {
		m.jukebox.Interact()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	footer := m.theme.Footer.Render(m.help.View(m.keys))
	m.screen.Resize(m.width, max(m.height-lipgloss.Height(footer), 0))

	s := m.loop.Session()
	tiles.Render(s, m.screen)
	if s.Phase() == tiles.PhaseMenu {
		m.menu.Draw(m.screen)
	}

	return RenderScreen(m.screen, m.theme.Background(s.Score())) + "\n" + footer
}

// Loop returns the game loop, for inspection after the program exits.
func (m Model) Loop() *tiles.Loop {
	return m.loop
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	model := NewModel(opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),       // Use alternate screen buffer
		tea.WithMouseCellMotion(), // Clicks tap tiles
	)

	_, err := p.Run()
	return err
}
