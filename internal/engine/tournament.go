package engine

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/SiRipo92/chess-manager/internal/models"
	"github.com/SiRipo92/chess-manager/internal/validation"
)

// pairKey identifies an unordered pair of player ids.
type pairKey struct {
	a, b string
}

func newPairKey(id1, id2 string) pairKey {
	if id1 > id2 {
		id1, id2 = id2, id1
	}
	return pairKey{a: id1, b: id2}
}

// Tournament is the in-memory aggregate for one Swiss tournament: the
// roster, the rounds, the scoring ledger and the pairing history. It is
// exclusively owned by its caller; all operations are synchronous and
// none perform I/O.
type Tournament struct {
	Location           string
	StartDate          string
	EndDate            string
	StartedAt          string
	FinishedAt         string
	Description        string
	NumberRounds       int
	CurrentRoundNumber int
	Players            []*models.Player
	Rounds             []*models.Round
	Scores             map[string]float64

	// RepoName is the durable slug-based name used by the repository.
	RepoName string
	WinnerID string

	pastPairs map[pairKey]bool
	// applied tracks which matches already contributed to the ledger,
	// keyed by in-memory match id. It makes point application
	// idempotent without relying on caller discipline.
	applied map[string]bool
	extra   map[string]json.RawMessage
	rng     *rand.Rand
}

// NewTournament creates an empty tournament. numberRounds <= 0 falls
// back to the default of 4 scheduled rounds.
func NewTournament(location, description string, numberRounds int) *Tournament {
	if numberRounds <= 0 {
		numberRounds = DefaultNumberRounds
	}
	return &Tournament{
		Location:     location,
		Description:  strings.TrimSpace(description),
		NumberRounds: numberRounds,
		Scores:       make(map[string]float64),
		pastPairs:    make(map[pairKey]bool),
		applied:      make(map[string]bool),
		rng:          rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// SetRandSource replaces the pairing random source. Tests use a seeded
// source to reproduce runs.
func (t *Tournament) SetRandSource(src rand.Source) {
	t.rng = rand.New(src)
}

// Status derives the lifecycle label from the timestamps.
func (t *Tournament) Status() models.TournamentStatus {
	if t.FinishedAt != "" {
		return models.StatusFinished
	}
	if t.StartedAt != "" {
		return models.StatusInProgress
	}
	return models.StatusPending
}

// DisplayName is the human-friendly name, e.g. "Paris_2025-07-01".
func (t *Tournament) DisplayName() string {
	return fmt.Sprintf("%s_%s", t.Location, t.StartDate)
}

// RegistrationOpen reports whether players can still join (no round
// created yet).
func (t *Tournament) RegistrationOpen() bool {
	return t.CurrentRoundNumber == 0
}

// GetDescription returns the tournament description, possibly empty.
func (t *Tournament) GetDescription() string {
	return t.Description
}

// SetDescription overwrites the description with the trimmed text.
func (t *Tournament) SetDescription(text string) {
	t.Description = strings.TrimSpace(text)
}

// RosterSize returns the number of registered players.
func (t *Tournament) RosterSize() int {
	return len(t.Players)
}

// HasPlayer reports whether the id is already on the roster.
func (t *Tournament) HasPlayer(nationalID string) bool {
	for _, p := range t.Players {
		if p.NationalID == nationalID {
			return true
		}
	}
	return false
}

// GetPlayerByID resolves a roster player by national id.
func (t *Tournament) GetPlayerByID(nationalID string) (*models.Player, error) {
	for _, p := range t.Players {
		if p.NationalID == nationalID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrUnknownPlayer, nationalID)
}

// AddPlayer registers a player and opens their ledger entry at 0.0.
// Fails once the first round exists or if the id is already rostered.
func (t *Tournament) AddPlayer(player *models.Player) error {
	if !t.RegistrationOpen() {
		return ErrRegistrationClosed
	}
	if t.HasPlayer(player.NationalID) {
		return fmt.Errorf("%w: %s", ErrDuplicatePlayer, player.NationalID)
	}
	t.Players = append(t.Players, player)
	t.Scores[player.NationalID] = 0.0
	return nil
}

// AddPlayerByID registers a player resolved through a directory lookup.
func (t *Tournament) AddPlayerByID(nationalID string, lookup map[string]*models.Player) error {
	id := validation.NormalizeID(nationalID)
	player, ok := lookup[id]
	if !ok {
		return fmt.Errorf("%w: %s", models.ErrUnknownPlayer, id)
	}
	return t.AddPlayer(player)
}

// MarkLaunched stamps start_date and started_at if they are unset.
func (t *Tournament) MarkLaunched() {
	now := time.Now()
	if t.StartDate == "" {
		t.StartDate = now.Format(validation.DateFormat)
	}
	if t.StartedAt == "" {
		t.StartedAt = now.Format(models.TimestampFormat)
	}
}

// MarkFinished stamps end_date and finished_at if they are unset.
func (t *Tournament) MarkFinished() {
	now := time.Now()
	if t.EndDate == "" {
		t.EndDate = now.Format(validation.DateFormat)
	}
	if t.FinishedAt == "" {
		t.FinishedAt = now.Format(models.TimestampFormat)
	}
}

// TiedLeaders returns the ids holding the maximum ledger score, in
// roster order.
func (t *Tournament) TiedLeaders() []string {
	if len(t.Players) == 0 {
		return nil
	}
	top := t.Scores[t.Players[0].NationalID]
	for _, p := range t.Players[1:] {
		if s := t.Scores[p.NationalID]; s > top {
			top = s
		}
	}
	var leaders []string
	for _, p := range t.Players {
		if t.Scores[p.NationalID] == top {
			leaders = append(leaders, p.NationalID)
		}
	}
	return leaders
}

// HaveFirstPlaceTie reports whether a tiebreak round is needed.
func (t *Tournament) HaveFirstPlaceTie() bool {
	return len(t.TiedLeaders()) > 1
}

// ComputeWinnerID returns the unique leader id, or "" while the lead is
// shared.
func (t *Tournament) ComputeWinnerID() string {
	leaders := t.TiedLeaders()
	if len(leaders) == 1 {
		return leaders[0]
	}
	return ""
}

// ApplyMatchPoints adds the match scores to the ledger. Applying the
// same match twice is a no-op.
func (t *Tournament) ApplyMatchPoints(m *models.Match) {
	if t.applied[m.ID] {
		return
	}
	t.Scores[m.Player1.NationalID] += m.Score1
	if m.Player2 != nil {
		t.Scores[m.Player2.NationalID] += m.Score2
	}
	t.applied[m.ID] = true
}

// RollbackMatchPoints subtracts a previously applied match from the
// ledger. Rolling back an unapplied match is a no-op.
func (t *Tournament) RollbackMatchPoints(m *models.Match) {
	if !t.applied[m.ID] {
		return
	}
	t.Scores[m.Player1.NationalID] -= m.Score1
	if m.Player2 != nil {
		t.Scores[m.Player2.NationalID] -= m.Score2
	}
	delete(t.applied, m.ID)
}

// UpdateScoresFromRound applies every match of the round exactly once.
func (t *Tournament) UpdateScoresFromRound(r *models.Round) {
	for _, m := range r.Matches {
		t.ApplyMatchPoints(m)
	}
}

// rememberPair records that two players met in a scheduled round.
func (t *Tournament) rememberPair(id1, id2 string) {
	t.pastPairs[newPairKey(id1, id2)] = true
}

// HavePlayedBefore reports whether the two ids already met in a
// scheduled round of this tournament.
func (t *Tournament) HavePlayedBefore(id1, id2 string) bool {
	return t.pastPairs[newPairKey(id1, id2)]
}

// PastPairCount returns the number of recorded pairings.
func (t *Tournament) PastPairCount() int {
	return len(t.pastPairs)
}
