package models

import (
	"fmt"
	"time"
)

// TimestampFormat is the seconds-precision ISO layout used for round and
// tournament timestamps.
const TimestampFormat = "2006-01-02T15:04:05"

// Round is an ordered list of matches played in parallel. The start
// timestamp is stamped at construction, the end timestamp at closure.
type Round struct {
	RoundNumber int
	StartTime   string
	EndTime     string
	Matches     []*Match
}

// RoundRecord is the persisted form of a Round.
type RoundRecord struct {
	RoundNumber int           `json:"round_number"`
	Name        string        `json:"name"`
	StartTime   string        `json:"start_time"`
	EndTime     string        `json:"end_time"`
	Matches     []MatchRecord `json:"matches"`
}

// NewRound creates round n and stamps its start time to now.
func NewRound(roundNumber int) *Round {
	return &Round{
		RoundNumber: roundNumber,
		StartTime:   time.Now().Format(TimestampFormat),
	}
}

// Name returns the display name, e.g. "Round 1".
func (r *Round) Name() string {
	return fmt.Sprintf("Round %d", r.RoundNumber)
}

// AddMatch appends a match to the round.
func (r *Round) AddMatch(m *Match) {
	r.Matches = append(r.Matches, m)
}

// EndRound stamps the end time to now.
func (r *Round) EndRound() {
	r.EndTime = time.Now().Format(TimestampFormat)
}

// IsClosed reports whether the round is over: an end timestamp was
// recorded, or every match is scored.
func (r *Round) IsClosed() bool {
	if r.EndTime != "" {
		return true
	}
	if len(r.Matches) == 0 {
		return false
	}
	for _, m := range r.Matches {
		if !m.IsScored() {
			return false
		}
	}
	return true
}

// ToRecord serializes the round and its matches.
func (r *Round) ToRecord() RoundRecord {
	rec := RoundRecord{
		RoundNumber: r.RoundNumber,
		Name:        r.Name(),
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		Matches:     make([]MatchRecord, 0, len(r.Matches)),
	}
	for _, m := range r.Matches {
		rec.Matches = append(rec.Matches, m.ToRecord())
	}
	return rec
}

// RoundFromRecord rebuilds a round, resolving match players through the
// caller-provided lookup.
func RoundFromRecord(rec RoundRecord, lookup map[string]*Player) (*Round, error) {
	r := &Round{
		RoundNumber: rec.RoundNumber,
		StartTime:   rec.StartTime,
		EndTime:     rec.EndTime,
	}
	if r.StartTime == "" {
		r.StartTime = time.Now().Format(TimestampFormat)
	}
	for _, mr := range rec.Matches {
		m, err := MatchFromRecord(mr, lookup)
		if err != nil {
			return nil, fmt.Errorf("round %d: %w", rec.RoundNumber, err)
		}
		r.AddMatch(m)
	}
	return r, nil
}
