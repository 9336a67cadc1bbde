package sim

import (
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// HighScoreKey is the key the best score is stored under.
const HighScoreKey = "tekkers-highscore"

// KeyValueStore is the durable store the high score lives in.
type KeyValueStore interface {
	// Get returns the stored value and whether the key exists.
	Get(key string) (string, bool, error)
	// Set stores a value, replacing any previous one.
	Set(key, value string) error
}

// MaxStore is implemented by stores that can raise an integer value atomically.
// SetMax writes value only if it is above the stored one and returns the
// value stored afterwards.
type MaxStore interface {
	SetMax(key string, value int) (int, error)
}

// HighScoreKeeper reads and writes the high score through a KeyValueStore.
// It never fails: missing or unreadable values load as 0 and write errors are logged.
type HighScoreKeeper struct {
	store  KeyValueStore
	logger *log.Logger
}

// NewHighScoreKeeper creates a keeper. A nil store keeps the score in memory only;
// a nil logger discards warnings.
func NewHighScoreKeeper(store KeyValueStore, logger *log.Logger) *HighScoreKeeper {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &HighScoreKeeper{store: store, logger: logger}
}

// Load returns the persisted high score, or 0 when absent or corrupt.
func (k *HighScoreKeeper) Load() int {
	if k.store == nil {
		return 0
	}

	raw, ok, err := k.store.Get(HighScoreKey)
	if err != nil {
		k.logger.Warn("cannot read high score", "error", err)
		return 0
	}
	if !ok {
		return 0
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v < 0 {
		k.logger.Warn("ignoring corrupt high score", "value", raw)
		return 0
	}
	return v
}

// Save raises the persisted high score to score and returns the stored best,
// which is higher than score when another session sharing the store got there
// first. The stored value never decreases. Failures are logged and score is
// returned.
func (k *HighScoreKeeper) Save(score int) int {
	if k.store == nil {
		return score
	}

	if ms, ok := k.store.(MaxStore); ok {
		best, err := ms.SetMax(HighScoreKey, score)
		if err != nil {
			k.logger.Warn("cannot persist high score", "score", score, "error", err)
			return score
		}
		return best
	}

	if stored := k.Load(); stored >= score {
		return stored
	}
	if err := k.store.Set(HighScoreKey, strconv.Itoa(score)); err != nil {
		k.logger.Warn("cannot persist high score", "score", score, "error", err)
	}
	return score
}
