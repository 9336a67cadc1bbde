package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tekkers/internal/config"
	"github.com/vovakirdan/tekkers/internal/core"
	"github.com/vovakirdan/tekkers/internal/sim"
	"github.com/vovakirdan/tekkers/internal/storage"
)

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for one Tekkers session.
type Model struct {
	game       *sim.Game
	screen     *core.Screen
	store      storage.Backend
	logger     *log.Logger
	config     core.RuntimeConfig
	keys       GameKeyMap
	help       help.Model
	frame      sim.Frame
	lastTick   time.Time
	flashUntil time.Time
	flashing   bool
	quitting   bool
	runSaved   bool // Whether the current run has been written to history
	shotDir    string
}

// NewModel creates a model with a fresh game. store and logger may be nil.
func NewModel(tuning config.Tuning, store storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) Model {
	cfg = cfg.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	opts := []sim.Option{sim.WithSeed(cfg.Seed), sim.WithLogger(logger)}
	if store != nil {
		opts = append(opts, sim.WithStore(store))
	}
	game := sim.New(tuning, opts...)

	m := Model{
		game:   game,
		screen: core.NewScreen(cfg.ScreenW, max(cfg.ScreenH-1, 1)),
		store:  store,
		logger: logger,
		config: cfg,
		keys:   DefaultGameKeyMap(),
		help:   help.New(),
	}
	m.help.Width = cfg.ScreenW
	game.Resize(m.screen.Width(), m.screen.Height())
	m.frame = game.Tick(0)

	if home, err := os.UserHomeDir(); err == nil {
		m.shotDir = filepath.Join(home, ".tekkers", "screenshots")
	}
	return m
}

// Game returns the simulation the model drives.
func (m Model) Game() *sim.Game {
	return m.game
}

// Frame returns the most recent frame.
func (m Model) Frame() sim.Frame {
	return m.frame
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.game.Stop()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.fitScreen()
		return m, nil
	case key.Matches(msg, m.keys.Start):
		m.game.Input().NotifyTap()
		return m, nil
	}

	if dx, dz, ok := m.keys.Nudge(msg); ok {
		m.game.Input().Nudge(dx, dz)
	}
	return m, nil
}

// handleMouse forwards pointer events to the input mapper.
func (m Model) handleMouse(msg tea.MouseMsg) {
	in := m.game.Input()
	x, y := float64(msg.X), float64(msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonLeft:
			in.Press(x, y, time.Now())
		case tea.MouseButtonWheelUp:
			in.Scroll(-1)
		case tea.MouseButtonWheelDown:
			in.Scroll(1)
		}
	case tea.MouseActionRelease:
		in.Release(time.Now())
	case tea.MouseActionMotion:
		in.Move(x, y)
	}
}

// handleResize processes window resize events.
// The simulation keeps running; only the viewport and input scale change.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.help.Width = msg.Width
	m.fitScreen()
	return m, nil
}

// fitScreen sizes the playfield to the terminal minus the help rows.
func (m *Model) fitScreen() {
	rows := 1
	if m.help.ShowAll {
		for _, col := range m.keys.FullHelp() {
			rows = max(rows, len(col))
		}
	}
	m.screen.Resize(m.config.ScreenW, max(m.config.ScreenH-rows, 1))
	m.game.Resize(m.screen.Width(), m.screen.Height())
}

// handleTick advances the simulation by the wall-clock time since the last tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.quitting {
		return m, nil
	}

	dt := 0.0
	if !m.lastTick.IsZero() {
		dt = now.Sub(m.lastTick).Seconds()
	}
	m.lastTick = now

	m.frame = m.game.Tick(dt)
	m.handleEvents(now)
	m.flashing = now.Before(m.flashUntil)

	return m, tickCmd(m.config.TickRate)
}

// handleEvents reacts to the frame's events: paddle flash and run history.
func (m *Model) handleEvents(now time.Time) {
	for _, ev := range m.frame.Events {
		switch e := ev.(type) {
		case sim.FlashEvent:
			m.flashUntil = now.Add(e.Duration)
		case sim.StartEvent:
			m.runSaved = false
		case sim.GameOverEvent:
			m.saveRun(e)
		}
	}
}

// saveRun writes a finished run to history once.
func (m *Model) saveRun(e sim.GameOverEvent) {
	if m.runSaved {
		return
	}
	m.runSaved = true

	m.logger.Info("run finished", "score", e.Score, "best", e.HighScore, "duration", e.Duration.Round(time.Millisecond))
	if m.store == nil || e.Score <= 0 {
		return
	}
	if _, err := m.store.SaveRun(e.Score, e.Duration); err != nil {
		m.logger.Warn("cannot save run", "error", err)
	}
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	if m.shotDir == "" {
		return
	}
	m.draw()

	if err := os.MkdirAll(m.shotDir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(m.shotDir, fmt.Sprintf("tekkers_%s.txt", timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// draw rasterises the current frame into the screen buffer.
func (m Model) draw() {
	m.screen.Clear()
	NewScene(m.frame, m.game.Tuning().Arena, m.screen.Width(), m.screen.Height()).Draw(m.screen, m.frame, m.flashing)
	DrawHUD(m.screen, m.frame, m.game.Input().Mode())
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.draw()
	return RenderScreen(m.screen) + "\n" + helpStyle.Render(m.help.View(m.keys))
}

// Run starts the Bubble Tea program for a local session.
func Run(tuning config.Tuning, store storage.Backend, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(tuning, store, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(), // Paddle follows the pointer without a held button
	)

	_, err := p.Run()
	return err
}
