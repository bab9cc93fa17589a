package game

import (
	"testing"
	"time"
)

// fakeClock lets tests control reaction times deterministically.
type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

func newTestSession(t *testing.T) (*Session, *fakeClock) {
	t.Helper()
	clock := &fakeClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
	s := NewSession(Config{Seed: 42, Clock: clock.Now})
	return s, clock
}

// answer submits the correct ink for the current round and advances
// past the feedback window. Returns the finish result, if any.
func answer(t *testing.T, s *Session, clock *fakeClock, correct bool) *Result {
	t.Helper()
	snap := s.Snapshot()
	if !snap.HasRound {
		t.Fatal("no active round to answer")
	}
	pick := snap.Round.Ink
	if !correct {
		for _, c := range Palette {
			if c != snap.Round.Ink {
				pick = c
				break
			}
		}
	}
	clock.Advance(300 * time.Millisecond)
	res := s.Submit(pick)
	if !res.Accepted {
		t.Fatal("submit unexpectedly rejected")
	}
	if res.Correct != correct {
		t.Fatalf("submit correctness = %v, want %v", res.Correct, correct)
	}
	return s.AdvanceRound()
}

func TestSessionStartsInMenu(t *testing.T) {
	s, _ := newTestSession(t)
	snap := s.Snapshot()
	if snap.Phase != PhaseMenu {
		t.Errorf("new session phase = %v, want menu", snap.Phase)
	}
	if snap.HasRound {
		t.Error("new session should have no round")
	}
}

func TestSessionClassicCompletion(t *testing.T) {
	s, clock := newTestSession(t)
	if !s.Start(ModeClassic) {
		t.Fatal("Start from menu rejected")
	}

	snap := s.Snapshot()
	if snap.Phase != PhasePlaying || !snap.HasRound {
		t.Fatal("session did not enter playing with an active round")
	}
	if snap.RoundsLeft != DefaultClassicRounds {
		t.Fatalf("RoundsLeft = %d, want %d", snap.RoundsLeft, DefaultClassicRounds)
	}

	var result *Result
	prevLeft := snap.RoundsLeft
	for i := 0; i < DefaultClassicRounds; i++ {
		correct := i < 15 // 15 correct, 5 wrong
		result = answer(t, s, clock, correct)

		left := s.Snapshot().RoundsLeft
		if left > prevLeft {
			t.Fatalf("RoundsLeft increased from %d to %d", prevLeft, left)
		}
		prevLeft = left

		if i < DefaultClassicRounds-1 && result != nil {
			t.Fatalf("session finished early after %d answers", i+1)
		}
	}

	if result == nil {
		t.Fatal("session did not finish after the last round")
	}
	snap = s.Snapshot()
	if snap.Phase != PhaseFinished {
		t.Errorf("phase = %v, want finished", snap.Phase)
	}
	if snap.RoundsLeft != 0 {
		t.Errorf("RoundsLeft = %d, want 0", snap.RoundsLeft)
	}
	if result.Score != 15 || result.Total != 20 {
		t.Errorf("result = %d/%d, want 15/20", result.Score, result.Total)
	}
	if result.Accuracy != 75 {
		t.Errorf("accuracy = %v, want 75", result.Accuracy)
	}
	if !result.Improved {
		t.Error("first completed session should set a record")
	}
}

func TestSessionAnswerLock(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(ModeClassic)

	first := s.Submit(s.Snapshot().Round.Ink)
	if !first.Accepted {
		t.Fatal("first submit rejected")
	}

	second := s.Submit(Red)
	if second.Accepted {
		t.Error("submit during the feedback lock must be ignored")
	}
	if got := s.Snapshot().Stats.Total; got != 1 {
		t.Errorf("Total = %d after double submit, want 1", got)
	}

	s.AdvanceRound()
	third := s.Submit(s.Snapshot().Round.Ink)
	if !third.Accepted {
		t.Error("submit after the lock cleared should be accepted")
	}
}

func TestSessionScoresAgainstInkNotWord(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(ModeClassic)

	// Walk rounds until an incongruent one comes up.
	for !s.Snapshot().HasRound || s.Snapshot().Round.Congruent() {
		s.Submit(s.Snapshot().Round.Ink)
		s.AdvanceRound()
		if s.Snapshot().Phase != PhasePlaying {
			t.Skip("ran out of rounds before an incongruent trial; seed choice is bad")
		}
	}

	round := s.Snapshot().Round
	res := s.Submit(round.Word)
	if !res.Accepted {
		t.Fatal("submit rejected")
	}
	if res.Correct {
		t.Error("answering with the word's meaning must be wrong on an incongruent trial")
	}
}

func TestSessionReactionTime(t *testing.T) {
	s, clock := newTestSession(t)
	s.Start(ModeEndless)

	clock.Advance(725 * time.Millisecond)
	res := s.Submit(s.Snapshot().Round.Ink)
	if res.Reaction != 725*time.Millisecond {
		t.Errorf("reaction = %v, want 725ms", res.Reaction)
	}

	stats := s.Snapshot().Stats
	if stats.AvgReaction != 725*time.Millisecond {
		t.Errorf("AvgReaction = %v, want 725ms", stats.AvgReaction)
	}
}

func TestSessionTimedExpiryWithNoAnswers(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(ModeTimed)

	snap := s.Snapshot()
	if snap.TimeLeft != DefaultTimedSeconds {
		t.Fatalf("TimeLeft = %d, want %d", snap.TimeLeft, DefaultTimedSeconds)
	}

	var result *Result
	prev := snap.TimeLeft
	for i := 0; i < DefaultTimedSeconds; i++ {
		result = s.TickSecond()
		left := s.Snapshot().TimeLeft
		if left > prev {
			t.Fatalf("TimeLeft increased from %d to %d", prev, left)
		}
		prev = left
		if result != nil {
			break
		}
	}

	if result == nil {
		t.Fatal("timed session did not finish at zero")
	}
	if s.Snapshot().TimeLeft != 0 {
		t.Errorf("TimeLeft = %d at finish, want 0", s.Snapshot().TimeLeft)
	}
	if result.Total != 0 || result.Score != 0 {
		t.Errorf("result = %d/%d, want 0/0", result.Score, result.Total)
	}
	if result.Accuracy != 0 {
		t.Errorf("accuracy with no answers = %v, want 0", result.Accuracy)
	}
}

func TestSessionStaleTickIgnored(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(ModeTimed)
	before := s.Snapshot().Generation

	s.Reset()
	if res := s.TickSecond(); res != nil {
		t.Error("tick after reset must not finish anything")
	}
	if s.Snapshot().Phase != PhaseMenu {
		t.Errorf("phase = %v after reset, want menu", s.Snapshot().Phase)
	}

	s.Start(ModeClassic)
	if res := s.TickSecond(); res != nil {
		t.Error("timed tick must be ignored in classic mode")
	}
	if s.Snapshot().Generation <= before {
		t.Error("generation should advance across reset and restart")
	}
}

func TestSessionSubmitOutsidePlaying(t *testing.T) {
	s, _ := newTestSession(t)

	if res := s.Submit(Red); res.Accepted {
		t.Error("submit in menu must be ignored")
	}

	s.Start(ModeClassic)
	s.End()
	if res := s.Submit(Red); res.Accepted {
		t.Error("submit after finish must be ignored")
	}
}

func TestSessionEndlessEndsOnlyExplicitly(t *testing.T) {
	s, clock := newTestSession(t)
	s.Start(ModeEndless)

	for i := 0; i < 100; i++ {
		if res := answer(t, s, clock, true); res != nil {
			t.Fatalf("endless session finished on its own after %d answers", i+1)
		}
	}

	result := s.End()
	if result == nil {
		t.Fatal("explicit End should finish an endless session")
	}
	if result.Score != 100 || result.Total != 100 {
		t.Errorf("result = %d/%d, want 100/100", result.Score, result.Total)
	}
	if result.Accuracy != 100 {
		t.Errorf("accuracy = %v, want 100", result.Accuracy)
	}
}

func TestSessionRestartResetsStats(t *testing.T) {
	s, clock := newTestSession(t)
	s.Start(ModeClassic)
	answer(t, s, clock, true)
	answer(t, s, clock, true)

	s.End()
	if !s.Start(ModeClassic) {
		t.Fatal("restart from finished rejected")
	}

	snap := s.Snapshot()
	if snap.Stats.Total != 0 || snap.Stats.Correct != 0 {
		t.Errorf("restart kept stats: %+v", snap.Stats)
	}
	if snap.RoundsLeft != DefaultClassicRounds {
		t.Errorf("restart RoundsLeft = %d, want %d", snap.RoundsLeft, DefaultClassicRounds)
	}
	if !snap.HasRound {
		t.Error("restart should deal a fresh round")
	}
}

func TestSessionRecordSurvivesWorseRun(t *testing.T) {
	s, clock := newTestSession(t)

	// First run: 10 correct out of 20.
	s.Start(ModeClassic)
	var result *Result
	for i := 0; i < DefaultClassicRounds; i++ {
		result = answer(t, s, clock, i < 10)
	}
	if result == nil || !result.Improved {
		t.Fatal("first run should set the record")
	}
	if result.Record.Score != 10 {
		t.Fatalf("record score = %d, want 10", result.Record.Score)
	}

	// Second run: only 8 correct. Record must survive.
	s.Start(ModeClassic)
	for i := 0; i < DefaultClassicRounds; i++ {
		result = answer(t, s, clock, i < 8)
	}
	if result == nil {
		t.Fatal("second run did not finish")
	}
	if result.Improved {
		t.Error("worse run must not report an improvement")
	}
	if rec, _ := s.Records().Best(ModeClassic); rec.Score != 10 {
		t.Errorf("record score after worse run = %d, want 10", rec.Score)
	}
}

func TestSessionInvariantTotalsMatch(t *testing.T) {
	s, clock := newTestSession(t)
	s.Start(ModeClassic)

	correctCount := 0
	for i := 0; i < 12; i++ {
		correct := i%3 != 0
		if correct {
			correctCount++
		}
		answer(t, s, clock, correct)

		stats := s.Snapshot().Stats
		if stats.Total != i+1 {
			t.Fatalf("Total = %d after %d answers", stats.Total, i+1)
		}
		if len(stats.ReactionTimes) != stats.Total {
			t.Fatalf("len(ReactionTimes) = %d, Total = %d", len(stats.ReactionTimes), stats.Total)
		}
		if stats.Correct > stats.Total {
			t.Fatalf("Correct %d exceeds Total %d", stats.Correct, stats.Total)
		}
	}
	if got := s.Snapshot().Stats.Correct; got != correctCount {
		t.Errorf("Correct = %d, want %d", got, correctCount)
	}
}

func TestSessionAdvanceWithoutLockIsNoop(t *testing.T) {
	s, _ := newTestSession(t)
	s.Start(ModeClassic)

	before := s.Snapshot()
	if res := s.AdvanceRound(); res != nil {
		t.Error("advance without a pending answer must not finish")
	}
	after := s.Snapshot()
	if after.RoundsLeft != before.RoundsLeft {
		t.Error("advance without a pending answer must not spend the budget")
	}
	if after.Round != before.Round {
		t.Error("advance without a pending answer must not replace the round")
	}
}
