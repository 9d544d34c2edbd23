package models

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Match errors
var (
	ErrInvalidScore  = errors.New("invalid scores: use (1.0,0.0), (0.0,1.0) or (0.5,0.5)")
	ErrUnknownPlayer = errors.New("unknown player")
)

// Match is a single pairing inside a round. Player2 may be nil, which
// makes the match an exempt bye: player 1 is credited 1.0 immediately
// and no second score exists.
//
// The ID is in-memory identity only (never persisted); the tournament
// ledger uses it to guarantee at-most-once point application.
type Match struct {
	ID      string  `json:"-"`
	Player1 *Player `json:"-"`
	Player2 *Player `json:"-"`
	Score1  float64 `json:"score1"`
	Score2  float64 `json:"score2"`
	Result1 string  `json:"result1"`
	Result2 string  `json:"result2"`
}

// MatchRecord is the persisted form: players are referenced by national
// ID, player2 is null for exempt byes.
type MatchRecord struct {
	Player1 string  `json:"player1"`
	Player2 *string `json:"player2"`
	Score1  float64 `json:"score1"`
	Score2  float64 `json:"score2"`
	Result1 string  `json:"result1"`
	Result2 string  `json:"result2"`
}

// NewMatch pairs two players. Pass nil for player2 to create an exempt
// bye; the exempt outcome is applied immediately.
func NewMatch(player1, player2 *Player) *Match {
	m := &Match{
		ID:      uuid.New().String(),
		Player1: player1,
		Player2: player2,
	}
	if m.IsExempt() {
		m.setExempt()
	}
	return m
}

// IsExempt reports whether the match is a bye (no opponent).
func (m *Match) IsExempt() bool {
	return m.Player2 == nil
}

// setExempt applies the bye outcome: 1.0 to player 1, nothing for the
// absent opponent.
func (m *Match) setExempt() {
	m.Result1 = LabelExempt
	m.Result2 = ""
	m.Score1 = labelPoints[LabelExempt]
	m.Score2 = 0.0
}

// SetResultByCode records the outcome from player 1's point of view:
// V (win), D (loss), N (draw) or E (exempt). E, or any code on a bye
// match, re-applies the exempt outcome.
func (m *Match) SetResultByCode(code string) error {
	label, err := CodeToLabel(code)
	if err != nil {
		return err
	}

	// A bye never takes V/D/N; keep the exempt outcome.
	if label == LabelExempt || m.IsExempt() {
		m.setExempt()
		return nil
	}

	switch label {
	case LabelWin:
		m.Result1, m.Result2 = LabelWin, LabelLoss
	case LabelLoss:
		m.Result1, m.Result2 = LabelLoss, LabelWin
	default:
		m.Result1, m.Result2 = LabelDraw, LabelDraw
	}

	m.Score1, _ = LabelToPoints(m.Result1)
	m.Score2, _ = LabelToPoints(m.Result2)
	return nil
}

// PlayMatch records the outcome from raw scores. Only the three legal
// tuples are accepted.
func (m *Match) PlayMatch(score1, score2 float64) error {
	if m.IsExempt() {
		m.setExempt()
		return nil
	}

	switch {
	case score1 == 1.0 && score2 == 0.0:
		m.Result1, m.Result2 = LabelWin, LabelLoss
	case score1 == 0.0 && score2 == 1.0:
		m.Result1, m.Result2 = LabelLoss, LabelWin
	case score1 == 0.5 && score2 == 0.5:
		m.Result1, m.Result2 = LabelDraw, LabelDraw
	default:
		return fmt.Errorf("%w: got (%.1f,%.1f)", ErrInvalidScore, score1, score2)
	}

	m.Score1, m.Score2 = score1, score2
	return nil
}

// IsScored reports whether the match has an outcome: a bye is always
// scored, otherwise an explicit result label or non-default numeric
// scores count.
func (m *Match) IsScored() bool {
	if m.IsExempt() {
		return true
	}
	if m.Result1 != "" {
		return true
	}
	return m.Score1 != 0.0 || m.Score2 != 0.0
}

// ToRecord serializes the match for storage, referencing players by ID.
func (m *Match) ToRecord() MatchRecord {
	rec := MatchRecord{
		Player1: m.Player1.NationalID,
		Score1:  m.Score1,
		Score2:  m.Score2,
		Result1: m.Result1,
		Result2: m.Result2,
	}
	if m.Player2 != nil {
		id := m.Player2.NationalID
		rec.Player2 = &id
	}
	return rec
}

// MatchFromRecord rebuilds a match, resolving player IDs through the
// caller-provided lookup. An unresolvable ID fails with ErrUnknownPlayer.
func MatchFromRecord(rec MatchRecord, lookup map[string]*Player) (*Match, error) {
	p1, ok := lookup[rec.Player1]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, rec.Player1)
	}

	var p2 *Player
	if rec.Player2 != nil && *rec.Player2 != "" {
		p2, ok = lookup[*rec.Player2]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownPlayer, *rec.Player2)
		}
	}

	m := NewMatch(p1, p2)
	m.Score1 = rec.Score1
	m.Score2 = rec.Score2
	m.Result1 = rec.Result1
	m.Result2 = rec.Result2
	if m.IsExempt() {
		// A stored bye keeps its exempt outcome regardless of what the
		// record carried.
		m.setExempt()
	}
	return m, nil
}
