package sim

// Session is the game's state machine: phase, score and high score.
//
// NotStarted -> Running -> GameOver -> Running -> ...
// NotStarted is only ever the initial phase.
type Session struct {
	phase     Phase
	score     int
	highScore int
	newBest   bool // Current or last run raised the high score
	runs      int
	keeper    *HighScoreKeeper
}

// NewSession creates a session and loads the persisted high score.
func NewSession(keeper *HighScoreKeeper) *Session {
	if keeper == nil {
		keeper = NewHighScoreKeeper(nil, nil)
	}
	return &Session{
		phase:     PhaseNotStarted,
		highScore: keeper.Load(),
		keeper:    keeper,
	}
}

// Start begins a run from NotStarted or GameOver.
// It returns false and changes nothing while a run is in progress.
func (s *Session) Start() bool {
	if s.phase == PhaseRunning {
		return false
	}
	s.phase = PhaseRunning
	s.score = 0
	s.newBest = false
	s.runs++
	return true
}

// Restart is Start under the name used after a game over.
func (s *Session) Restart() bool {
	return s.Start()
}

// OnBounce scores a paddle contact and persists a new high score at once.
// The high score adopts a higher value found in the store.
// Ignored unless running.
func (s *Session) OnBounce() {
	if s.phase != PhaseRunning {
		return
	}
	s.score++
	if s.score > s.highScore {
		// The store may already hold a better score from another session
		s.highScore = max(s.score, s.keeper.Save(s.score))
		s.newBest = s.score == s.highScore
	}
}

// OnFloorBreach ends the run. Ignored unless running.
// It reports whether the phase changed.
func (s *Session) OnFloorBreach() bool {
	if s.phase != PhaseRunning {
		return false
	}
	s.phase = PhaseGameOver
	return true
}

// Phase returns the current phase.
func (s *Session) Phase() Phase { return s.phase }

// Running reports whether physics should be integrated.
func (s *Session) Running() bool { return s.phase == PhaseRunning }

// Score returns the current run's score.
func (s *Session) Score() int { return s.score }

// HighScore returns the best score ever reached.
func (s *Session) HighScore() int { return s.highScore }

// NewBest reports whether the current or last run set the high score.
func (s *Session) NewBest() bool { return s.newBest }

// Runs returns how many runs have been started.
func (s *Session) Runs() int { return s.runs }
