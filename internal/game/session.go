package game

import "time"

// Mode selects how a session ends.
type Mode string

const (
	ModeClassic Mode = "classic" // fixed number of rounds
	ModeTimed   Mode = "timed"   // fixed time budget
	ModeEndless Mode = "endless" // ends only on explicit exit
)

// AllModes lists the playable modes in menu order.
var AllModes = [...]Mode{ModeClassic, ModeTimed, ModeEndless}

// Title returns a display name for the mode.
func (m Mode) Title() string {
	switch m {
	case ModeClassic:
		return "Classic"
	case ModeTimed:
		return "Timed"
	case ModeEndless:
		return "Endless"
	default:
		return string(m)
	}
}

// Phase is the session's lifecycle state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhaseFinished
)

// Feedback is the transient per-answer marker shown during the answer lock.
type Feedback int

const (
	FeedbackNone Feedback = iota
	FeedbackCorrect
	FeedbackWrong
)

// Defaults for the session budgets and the feedback display window.
const (
	DefaultClassicRounds = 20
	DefaultTimedSeconds  = 60
	DefaultFeedbackDelay = 500 * time.Millisecond
)

// Config tunes a session. Zero values fall back to the defaults above.
type Config struct {
	Seed          int64
	Clock         func() time.Time
	ClassicRounds int
	TimedSeconds  int
	FeedbackDelay time.Duration
}

func (c Config) withDefaults() Config {
	if c.Clock == nil {
		c.Clock = time.Now
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	if c.ClassicRounds <= 0 {
		c.ClassicRounds = DefaultClassicRounds
	}
	if c.TimedSeconds <= 0 {
		c.TimedSeconds = DefaultTimedSeconds
	}
	if c.FeedbackDelay <= 0 {
		c.FeedbackDelay = DefaultFeedbackDelay
	}
	return c
}

// SubmitResult reports what happened to a submitted answer. Accepted is
// false when the session is not taking input; such calls have no effect.
type SubmitResult struct {
	Accepted bool
	Correct  bool
	Reaction time.Duration
}

// Result is the final outcome of a completed session.
type Result struct {
	Mode        Mode
	Score       int
	Total       int
	Accuracy    float64
	AvgReaction time.Duration
	Record      Record
	Improved    bool
}

// Session owns all mutable game state. It is single-threaded by
// contract: the host delivers one event at a time (answer, tick,
// navigation) and schedules the temporal events itself. Generation
// increments on every start and reset so the host can discard timers
// scheduled against an earlier session.
type Session struct {
	cfg     Config
	gen     *Generator
	clock   func() time.Time
	records Records

	phase      Phase
	mode       Mode
	round      Round
	hasRound   bool
	stats      Stats
	roundsLeft int
	timeLeft   int
	feedback   Feedback
	locked     bool
	generation uint64
}

// NewSession creates a session in the menu phase with an empty record table.
func NewSession(cfg Config) *Session {
	cfg = cfg.withDefaults()
	return &Session{
		cfg:     cfg,
		gen:     NewGenerator(cfg.Seed, cfg.Clock),
		clock:   cfg.Clock,
		records: NewRecords(),
	}
}

// Records exposes the best-record table, e.g. for seeding from storage.
func (s *Session) Records() Records {
	return s.records
}

// FeedbackDelay is how long the host should hold the feedback marker
// before calling AdvanceRound.
func (s *Session) FeedbackDelay() time.Duration {
	return s.cfg.FeedbackDelay
}

// Start begins a session in the given mode. Valid from the menu or a
// finished session; starting mid-play is ignored.
func (s *Session) Start(mode Mode) bool {
	if s.phase == PhasePlaying {
		return false
	}
	s.mode = mode
	s.stats = Stats{}
	s.feedback = FeedbackNone
	s.locked = false
	s.roundsLeft = 0
	s.timeLeft = 0
	switch mode {
	case ModeClassic:
		s.roundsLeft = s.cfg.ClassicRounds
	case ModeTimed:
		s.timeLeft = s.cfg.TimedSeconds
	}
	s.round = s.gen.Next()
	s.hasRound = true
	s.phase = PhasePlaying
	s.generation++
	return true
}

// Submit scores an answer against the current round's ink color. Calls
// while not playing, with no round, or during the feedback lock are
// ignored and report Accepted false. An accepted answer locks further
// input until AdvanceRound.
func (s *Session) Submit(answer ColorName) SubmitResult {
	if s.phase != PhasePlaying || !s.hasRound || s.locked {
		return SubmitResult{}
	}
	reaction := s.clock().Sub(s.round.StartedAt)
	if reaction < 0 {
		reaction = 0
	}
	correct := answer == s.round.Ink
	s.stats = s.stats.Record(correct, reaction)
	if correct {
		s.feedback = FeedbackCorrect
	} else {
		s.feedback = FeedbackWrong
	}
	s.locked = true
	return SubmitResult{Accepted: true, Correct: correct, Reaction: reaction}
}

// AdvanceRound ends the feedback window: it clears the lock, spends the
// round budget, and either finishes the session or deals the next
// round. The host calls it when the feedback delay elapses; calls
// without a pending lock are ignored.
func (s *Session) AdvanceRound() *Result {
	if s.phase != PhasePlaying || !s.locked {
		return nil
	}
	s.feedback = FeedbackNone
	s.locked = false
	if s.mode == ModeClassic {
		s.roundsLeft--
		if s.roundsLeft <= 0 {
			s.roundsLeft = 0
			return s.finish()
		}
	}
	s.round = s.gen.Next()
	return nil
}

// TickSecond spends one second of the timed budget. Ticks arriving
// outside a timed playing session are stale and ignored; the host is
// still expected to stop scheduling them once the phase changes.
func (s *Session) TickSecond() *Result {
	if s.phase != PhasePlaying || s.mode != ModeTimed {
		return nil
	}
	s.timeLeft--
	if s.timeLeft <= 0 {
		s.timeLeft = 0
		return s.finish()
	}
	return nil
}

// End finishes the current session explicitly, recording its outcome.
// This is how an endless session terminates. Ignored outside playing.
func (s *Session) End() *Result {
	if s.phase != PhasePlaying {
		return nil
	}
	return s.finish()
}

// Reset abandons whatever is in progress and returns to the menu.
// Best records survive.
func (s *Session) Reset() {
	s.phase = PhaseMenu
	s.mode = ""
	s.hasRound = false
	s.round = Round{}
	s.stats = Stats{}
	s.feedback = FeedbackNone
	s.locked = false
	s.roundsLeft = 0
	s.timeLeft = 0
	s.generation++
}

func (s *Session) finish() *Result {
	s.phase = PhaseFinished
	s.hasRound = false
	s.locked = false
	s.feedback = FeedbackNone
	rec, improved := s.records.Update(s.mode, s.stats)
	return &Result{
		Mode:        s.mode,
		Score:       s.stats.Correct,
		Total:       s.stats.Total,
		Accuracy:    s.stats.Accuracy(),
		AvgReaction: s.stats.AvgReaction,
		Record:      rec,
		Improved:    improved,
	}
}

// Snapshot is a read-only view of the session for rendering.
type Snapshot struct {
	Phase      Phase
	Mode       Mode
	Round      Round
	HasRound   bool
	Stats      Stats
	RoundsLeft int
	TimeLeft   int
	Feedback   Feedback
	Locked     bool
	Generation uint64
}

// Snapshot captures the current session state. The stats reaction slice
// is shared read-only; callers must not mutate it.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Phase:      s.phase,
		Mode:       s.mode,
		Round:      s.round,
		HasRound:   s.hasRound,
		Stats:      s.stats,
		RoundsLeft: s.roundsLeft,
		TimeLeft:   s.timeLeft,
		Feedback:   s.feedback,
		Locked:     s.locked,
		Generation: s.generation,
	}
}
