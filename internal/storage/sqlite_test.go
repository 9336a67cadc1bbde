package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/tekkers/internal/sim"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreOpenBadPath(t *testing.T) {
	// A regular file where a directory is expected
	blocker := filepath.Join(t.TempDir(), "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := Open(filepath.Join(blocker, "test.db")); err == nil {
		t.Error("Open() under a file should fail")
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := ExpandHome("~/.tekkers/tekkers.db")
	if err != nil {
		t.Fatalf("ExpandHome() failed: %v", err)
	}
	if want := filepath.Join(home, ".tekkers", "tekkers.db"); got != want {
		t.Errorf("ExpandHome() = %q, expected %q", got, want)
	}

	if got, _ := ExpandHome("./local.db"); got != "./local.db" {
		t.Errorf("relative path changed to %q", got)
	}
}

func TestStoreKeyValue(t *testing.T) {
	store := openTestStore(t)

	if _, ok, err := store.Get("missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok=%v err=%v, expected absent", ok, err)
	}

	if err := store.Set(sim.HighScoreKey, "3"); err != nil {
		t.Fatalf("Set() failed: %v", err)
	}
	if err := store.Set(sim.HighScoreKey, "12"); err != nil {
		t.Fatalf("Set() overwrite failed: %v", err)
	}

	v, ok, err := store.Get(sim.HighScoreKey)
	if err != nil || !ok || v != "12" {
		t.Errorf("Get() = %q, %v, %v; expected \"12\", true, nil", v, ok, err)
	}
}

func TestStoreHighScoreSurvivesReopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	s := sim.NewSession(sim.NewHighScoreKeeper(store, nil))
	s.Start()
	for i := 0; i < 5; i++ {
		s.OnBounce()
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	if got := sim.NewHighScoreKeeper(store, nil).Load(); got != 5 {
		t.Errorf("high score after reopen = %d, expected 5", got)
	}
}

func TestStoreTopRuns(t *testing.T) {
	store := openTestStore(t)

	for _, score := range []int{100, 50, 200, 200, 0} {
		if _, err := store.SaveRun(score, time.Duration(score)*time.Millisecond); err != nil {
			t.Fatalf("SaveRun() failed: %v", err)
		}
	}

	runs, err := store.TopRuns(3)
	if err != nil {
		t.Fatalf("TopRuns() failed: %v", err)
	}
	if len(runs) != 3 {
		t.Fatalf("Expected 3 runs with limit, got %d", len(runs))
	}
	if runs[0].Score != 200 || runs[1].Score != 200 || runs[2].Score != 100 {
		t.Errorf("Runs not in expected order: %v", runs)
	}
	if runs[0].ID > runs[1].ID {
		t.Error("ties should list the earlier run first")
	}
	if runs[2].Duration != 100*time.Millisecond {
		t.Errorf("Duration = %v, expected 100ms", runs[2].Duration)
	}

	all, _ := store.TopRuns(0)
	if len(all) != 5 {
		t.Errorf("default limit should cover all 5 runs, got %d", len(all))
	}
}

func TestStoreStats(t *testing.T) {
	store := openTestStore(t)

	stats, err := store.Stats()
	if err != nil {
		t.Fatalf("Stats() on empty store failed: %v", err)
	}
	if stats.Runs != 0 || stats.BestScore != 0 || !stats.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", stats)
	}

	store.SaveRun(4, 3*time.Second)
	store.SaveRun(10, 9*time.Second)
	store.SaveRun(1, time.Second)

	stats, err = store.Stats()
	if err != nil {
		t.Fatalf("Stats() failed: %v", err)
	}
	if stats.Runs != 3 || stats.BestScore != 10 || stats.TotalScore != 15 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 5 {
		t.Errorf("AvgScore = %v, expected 5", stats.AvgScore)
	}
	if stats.LongestRun != 9*time.Second {
		t.Errorf("LongestRun = %v, expected 9s", stats.LongestRun)
	}
}

func TestStoreClearRunsKeepsHighScore(t *testing.T) {
	store := openTestStore(t)

	store.Set(sim.HighScoreKey, "8")
	store.SaveRun(8, time.Second)

	if err := store.ClearRuns(); err != nil {
		t.Fatalf("ClearRuns() failed: %v", err)
	}

	runs, _ := store.TopRuns(10)
	if len(runs) != 0 {
		t.Errorf("Expected 0 runs after clear, got %d", len(runs))
	}
	if v, _, _ := store.Get(sim.HighScoreKey); v != "8" {
		t.Errorf("high score = %q after clearing runs, expected \"8\"", v)
	}
}
