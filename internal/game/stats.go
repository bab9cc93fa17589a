package game

import "time"

// Stats accumulates per-round outcomes for one session.
type Stats struct {
	Correct       int
	Total         int
	ReactionTimes []time.Duration
	AvgReaction   time.Duration
}

// Record appends one observation and returns the updated stats.
// The receiver is not modified; the reaction slice is copied so older
// snapshots stay valid. The average is recomputed from scratch rather
// than adjusted incrementally.
func (s Stats) Record(correct bool, reaction time.Duration) Stats {
	times := make([]time.Duration, len(s.ReactionTimes), len(s.ReactionTimes)+1)
	copy(times, s.ReactionTimes)
	times = append(times, reaction)

	var sum time.Duration
	for _, t := range times {
		sum += t
	}

	next := Stats{
		Correct:       s.Correct,
		Total:         s.Total + 1,
		ReactionTimes: times,
		AvgReaction:   sum / time.Duration(len(times)),
	}
	if correct {
		next.Correct++
	}
	return next
}

// Accuracy returns the percentage of correct answers, or 0 when no
// answers were recorded.
func (s Stats) Accuracy() float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Correct) / float64(s.Total) * 100
}

// Record is the best completed session for a mode.
type Record struct {
	Score       int
	Accuracy    float64
	AvgReaction time.Duration
}

// Records holds the best record per mode for the process lifetime.
type Records map[Mode]Record

// NewRecords returns an empty record table.
func NewRecords() Records {
	return make(Records)
}

// Update compares a finished session against the stored record for the
// mode. The record is replaced only when the new score is strictly
// greater; ties leave it untouched. Returns the record now stored and
// whether it improved.
func (r Records) Update(mode Mode, final Stats) (Record, bool) {
	candidate := Record{
		Score:       final.Correct,
		Accuracy:    final.Accuracy(),
		AvgReaction: final.AvgReaction,
	}
	prev, ok := r[mode]
	if ok && candidate.Score <= prev.Score {
		return prev, false
	}
	r[mode] = candidate
	return candidate, true
}

// Seed installs a record loaded from external storage. It never lowers
// an existing record, so scores stay monotone even if storage is stale.
func (r Records) Seed(mode Mode, rec Record) {
	if prev, ok := r[mode]; ok && rec.Score <= prev.Score {
		return
	}
	r[mode] = rec
}

// Best returns the record for a mode, if one exists.
func (r Records) Best(mode Mode) (Record, bool) {
	rec, ok := r[mode]
	return rec, ok
}
