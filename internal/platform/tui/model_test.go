package tui

import (
	"os"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tekkers/internal/config"
	"github.com/vovakirdan/tekkers/internal/core"
	"github.com/vovakirdan/tekkers/internal/sim"
	"github.com/vovakirdan/tekkers/internal/storage"
)

func newTestModel(t *testing.T) (Model, *storage.Memory) {
	t.Helper()
	store := storage.NewMemory()
	cfg := core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 7}
	m := NewModel(config.DefaultTuning(), store, cfg, nil)
	m.shotDir = t.TempDir()
	return m, store
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return model, cmd
}

func TestModelStartsInTitle(t *testing.T) {
	m, _ := newTestModel(t)
	if m.Frame().Phase != sim.PhaseNotStarted {
		t.Errorf("phase = %v, expected NotStarted", m.Frame().Phase)
	}
	if m.Init() == nil {
		t.Error("Init should schedule a tick")
	}
	if !strings.Contains(m.View(), "TEKKERS") {
		t.Error("title screen not rendered")
	}
}

func TestModelStartKeyStartsRun(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Unix(1000, 0)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	m, cmd := update(t, m, TickMsg(now))
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if m.Frame().Phase != sim.PhaseRunning {
		t.Fatalf("phase = %v, expected Running", m.Frame().Phase)
	}

	// Wall-clock time drives the simulation
	m, _ = update(t, m, TickMsg(now.Add(50*time.Millisecond)))
	if got := m.Frame().Elapsed; got < 0.049 || got > 0.051 {
		t.Errorf("elapsed = %v, expected 0.05", got)
	}
}

func TestModelClickStartsRun(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, tea.MouseMsg{X: 40, Y: 12, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft})
	m, _ = update(t, m, TickMsg(time.Unix(1000, 0)))

	if m.Frame().Phase != sim.PhaseRunning {
		t.Errorf("phase = %v, expected Running after a click", m.Frame().Phase)
	}
}

func TestModelMouseMovesPaddleTarget(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.MouseMsg{X: 79, Y: 22, Action: tea.MouseActionMotion})
	target := m.Game().Input().Target()
	if target.X <= 0 || target.Z <= 0 {
		t.Errorf("target = %+v, expected bottom-right quadrant", target)
	}

	m, _ = update(t, m, TickMsg(time.Unix(1000, 0)))
	if p := m.Frame().Paddle; p.X <= 0 || p.Z <= 0 {
		t.Errorf("paddle = (%v, %v), expected it to follow the target", p.X, p.Z)
	}
}

func TestModelKeysNudgePaddle(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRight})
	if x := m.Game().Input().Target().X; x <= 0 {
		t.Errorf("target X = %v after right, expected > 0", x)
	}
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	if z := m.Game().Input().Target().Z; z >= 0 {
		t.Errorf("target Z = %v after up, expected < 0", z)
	}
}

func TestModelResize(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, expected 100x39", m.screen.Width(), m.screen.Height())
	}
	if w, h := m.Game().Input().Size(); w != 100 || h != 39 {
		t.Errorf("input size = %vx%v, expected 100x39", w, h)
	}

	// Full help takes more rows
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}})
	if m.screen.Height() != 36 {
		t.Errorf("screen height with full help = %d, expected 36", m.screen.Height())
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	m, store := newTestModel(t)
	now := time.Unix(1000, 0)

	m.frame = sim.Frame{Events: []sim.Event{sim.GameOverEvent{Score: 3, HighScore: 3, Duration: 2 * time.Second}}}
	m.handleEvents(now)
	m.handleEvents(now)

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 1 || runs[0].Score != 3 || runs[0].Duration != 2*time.Second {
		t.Fatalf("runs = %+v, expected one run of 3", runs)
	}

	// A new run may be saved again, but empty runs are not recorded
	m.frame = sim.Frame{Events: []sim.Event{sim.StartEvent{Run: 2}, sim.GameOverEvent{Score: 0}}}
	m.handleEvents(now)
	if runs, _ := store.TopRuns(10); len(runs) != 1 {
		t.Errorf("runs = %d, expected zero-score run to be skipped", len(runs))
	}
}

func TestModelFlash(t *testing.T) {
	m, _ := newTestModel(t)
	now := time.Unix(1000, 0)

	m.frame = sim.Frame{Events: []sim.Event{sim.FlashEvent{Duration: 100 * time.Millisecond}}}
	m.handleEvents(now)
	if !m.flashUntil.Equal(now.Add(100 * time.Millisecond)) {
		t.Errorf("flashUntil = %v", m.flashUntil)
	}
}

func TestModelQuitStopsGame(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if !m.Game().Stopped() {
		t.Error("game should be stopped on quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quit")
	}
	if _, cmd := update(t, m, TickMsg(time.Unix(1000, 0))); cmd != nil {
		t.Error("no ticks after quit")
	}
}

func TestModelScreenshot(t *testing.T) {
	m, _ := newTestModel(t)
	m.saveScreenshot()

	entries, err := os.ReadDir(m.shotDir)
	if err != nil {
		t.Fatalf("ReadDir() failed: %v", err)
	}
	if len(entries) != 1 || !strings.HasPrefix(entries[0].Name(), "tekkers_") {
		t.Errorf("entries = %v, expected one screenshot", entries)
	}
}
