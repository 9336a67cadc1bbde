package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tekkers/internal/storage"
)

func TestScoreboardView(t *testing.T) {
	store := storage.NewMemory()
	for _, score := range []int{4, 9, 2} {
		if _, err := store.SaveRun(score, time.Duration(score)*time.Second); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	m := NewScoreboardModel(store, 80, 24)
	if len(m.runs) != 3 || m.runs[0].Score != 9 {
		t.Fatalf("runs = %+v, expected best first", m.runs)
	}

	view := m.View()
	for _, want := range []string{"TEKKERS - BEST RUNS", "3 runs", "best 9"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(storage.NewMemory(), 80, 24)
	if !strings.Contains(m.View(), "No runs recorded yet.") {
		t.Error("expected the empty message")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(storage.NewMemory(), 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("esc should quit")
	}
	if next.View() != "" {
		t.Error("view should be empty after quit")
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "0:00.0"},
		{1500 * time.Millisecond, "0:01.5"},
		{90 * time.Second, "1:30.0"},
		{5*time.Minute + 7200*time.Millisecond, "5:07.2"},
		{59960 * time.Millisecond, "1:00.0"},
	}

	for _, tc := range tests {
		if got := formatDuration(tc.in); got != tc.want {
			t.Errorf("formatDuration(%v) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}
