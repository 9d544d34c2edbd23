package engine

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/SiRipo92/chess-manager/internal/models"
)

// ToRecord serializes the tournament to its persisted form. Pair lists
// are emitted in sorted order so two saves of the same state produce
// identical files.
func (t *Tournament) ToRecord() models.TournamentRecord {
	name := t.RepoName
	if name == "" {
		name = t.DisplayName()
	}

	rec := models.TournamentRecord{
		Name:               name,
		Location:           t.Location,
		StartDate:          t.StartDate,
		EndDate:            t.EndDate,
		StartedAt:          t.StartedAt,
		FinishedAt:         t.FinishedAt,
		Status:             t.Status(),
		Description:        t.Description,
		NumberRounds:       t.NumberRounds,
		CurrentRoundNumber: t.CurrentRoundNumber,
		Players:            make([]models.Player, 0, len(t.Players)),
		Rounds:             make([]models.RoundRecord, 0, len(t.Rounds)),
		Scores:             make(map[string]float64, len(t.Scores)),
		PastPairs:          make([][]string, 0, len(t.pastPairs)),
		WinnerID:           t.WinnerID,
		Extra:              t.extra,
	}

	for _, p := range t.Players {
		rec.Players = append(rec.Players, *p)
	}
	for _, r := range t.Rounds {
		rec.Rounds = append(rec.Rounds, r.ToRecord())
	}
	for id, score := range t.Scores {
		rec.Scores[id] = score
	}
	for key := range t.pastPairs {
		rec.PastPairs = append(rec.PastPairs, []string{key.a, key.b})
	}
	sort.Slice(rec.PastPairs, func(i, j int) bool {
		if rec.PastPairs[i][0] != rec.PastPairs[j][0] {
			return rec.PastPairs[i][0] < rec.PastPairs[j][0]
		}
		return rec.PastPairs[i][1] < rec.PastPairs[j][1]
	})

	return rec
}

// FromRecord rebuilds a tournament from its persisted form. Already
// scored matches are marked as applied so that re-running
// UpdateScoresFromRound on a resumed tournament cannot double-count
// points the stored ledger already includes.
func FromRecord(rec models.TournamentRecord) (*Tournament, error) {
	numberRounds := rec.NumberRounds
	if numberRounds <= 0 {
		numberRounds = DefaultNumberRounds
	}

	t := &Tournament{
		Location:           rec.Location,
		StartDate:          rec.StartDate,
		EndDate:            rec.EndDate,
		StartedAt:          rec.StartedAt,
		FinishedAt:         rec.FinishedAt,
		Description:        rec.Description,
		NumberRounds:       numberRounds,
		CurrentRoundNumber: rec.CurrentRoundNumber,
		Scores:             make(map[string]float64, len(rec.Scores)),
		RepoName:           rec.Name,
		WinnerID:           rec.WinnerID,
		pastPairs:          make(map[pairKey]bool, len(rec.PastPairs)),
		applied:            make(map[string]bool),
		extra:              rec.Extra,
		rng:                rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	// Older records carry a created_at instead of a start_date.
	if t.StartDate == "" {
		if raw, ok := rec.Extra["created_at"]; ok && len(raw) >= 12 {
			// raw is a quoted JSON string, e.g. "2025-08-10T14:32:05".
			t.StartDate = string(raw[1:11])
		}
	}

	lookup := make(map[string]*models.Player, len(rec.Players))
	for _, pr := range rec.Players {
		p := models.PlayerFromRecord(pr)
		t.Players = append(t.Players, p)
		lookup[p.NationalID] = p
	}

	for _, rr := range rec.Rounds {
		round, err := models.RoundFromRecord(rr, lookup)
		if err != nil {
			return nil, fmt.Errorf("tournament %q: %w", rec.Name, err)
		}
		t.Rounds = append(t.Rounds, round)
		for _, m := range round.Matches {
			if m.IsScored() {
				t.applied[m.ID] = true
			}
		}
	}

	if len(rec.Scores) > 0 {
		for id, score := range rec.Scores {
			t.Scores[id] = score
		}
	} else {
		for _, p := range t.Players {
			t.Scores[p.NationalID] = 0.0
		}
	}

	for _, pair := range rec.PastPairs {
		if len(pair) == 2 {
			t.pastPairs[newPairKey(pair[0], pair[1])] = true
		}
	}

	return t, nil
}
