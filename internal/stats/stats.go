// Package stats aggregates player results across every stored
// tournament and renders listing tables.
package stats

import (
	"fmt"
	"math"
	"sort"

	"github.com/SiRipo92/chess-manager/internal/models"
)

// PlayerStats is the cross-tournament rollup for one player.
type PlayerStats struct {
	NationalID     string
	Name           string
	Participations int
	Victories      int
	Matches        int
	Points         float64
}

// BuildPlayerIndex folds every stored tournament into a per-player
// rollup. Participation is read from the roster when present, from the
// ledger keys otherwise, and from match appearances as a last resort.
// Victories only count on finished tournaments; a shared first place
// credits every tied leader.
func BuildPlayerIndex(records []models.TournamentRecord) map[string]*PlayerStats {
	index := make(map[string]*PlayerStats)

	ensure := func(id string) *PlayerStats {
		s, ok := index[id]
		if !ok {
			s = &PlayerStats{NationalID: id}
			index[id] = s
		}
		return s
	}

	for _, rec := range records {
		participants := participantIDs(rec)
		for _, id := range participants {
			ensure(id).Participations++
		}
		for _, p := range rec.Players {
			if s, ok := index[p.NationalID]; ok && s.Name == "" {
				s.Name = p.FullName()
			}
		}

		// Matches and points both come from the rounds themselves, so a
		// record with a missing or stale ledger still reports what was
		// actually played.
		for _, round := range rec.Rounds {
			for _, m := range round.Matches {
				p1 := ensure(m.Player1)
				p1.Matches++
				p1.Points += m.Score1
				if m.Player2 != nil {
					p2 := ensure(*m.Player2)
					p2.Matches++
					p2.Points += m.Score2
				}
			}
		}

		for _, id := range winnerIDs(rec) {
			ensure(id).Victories++
		}
	}

	for _, s := range index {
		s.Points = math.Round(s.Points*10) / 10
	}
	return index
}

// participantIDs lists the players involved in one tournament, each id
// once.
func participantIDs(rec models.TournamentRecord) []string {
	if len(rec.Players) > 0 {
		ids := make([]string, 0, len(rec.Players))
		seen := make(map[string]bool, len(rec.Players))
		for _, p := range rec.Players {
			if !seen[p.NationalID] {
				ids = append(ids, p.NationalID)
				seen[p.NationalID] = true
			}
		}
		return ids
	}

	if len(rec.Scores) > 0 {
		ids := make([]string, 0, len(rec.Scores))
		for id := range rec.Scores {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		return ids
	}

	var ids []string
	seen := make(map[string]bool)
	for _, round := range rec.Rounds {
		for _, m := range round.Matches {
			if !seen[m.Player1] {
				ids = append(ids, m.Player1)
				seen[m.Player1] = true
			}
			if m.Player2 != nil && !seen[*m.Player2] {
				ids = append(ids, *m.Player2)
				seen[*m.Player2] = true
			}
		}
	}
	return ids
}

// winnerIDs resolves who gets win credit for one tournament: the stored
// winner when recorded, otherwise every leader tied at the top score.
// Unfinished tournaments credit nobody.
func winnerIDs(rec models.TournamentRecord) []string {
	if rec.FinishedAt == "" && rec.Status != models.StatusFinished {
		return nil
	}
	if rec.WinnerID != "" {
		return []string{rec.WinnerID}
	}
	if len(rec.Scores) == 0 {
		return nil
	}

	top := math.Inf(-1)
	for _, score := range rec.Scores {
		if score > top {
			top = score
		}
	}
	var leaders []string
	for id, score := range rec.Scores {
		if score == top {
			leaders = append(leaders, id)
		}
	}
	sort.Strings(leaders)
	return leaders
}

// SortedStats flattens the index, best score first, ties broken by id.
func SortedStats(index map[string]*PlayerStats) []*PlayerStats {
	out := make([]*PlayerStats, 0, len(index))
	for _, s := range index {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Points != out[j].Points {
			return out[i].Points > out[j].Points
		}
		return out[i].NationalID < out[j].NationalID
	})
	return out
}

func formatPoints(points float64) string {
	return fmt.Sprintf("%.1f", points)
}
