package engine

import (
	"fmt"
	"sort"

	"github.com/SiRipo92/chess-manager/internal/models"
	"github.com/SiRipo92/chess-manager/internal/validation"
)

// validateRosterBeforeLaunch enforces the launch constraints: at least
// MinRosterSize players, no duplicate ids.
func (t *Tournament) validateRosterBeforeLaunch() error {
	if t.RosterSize() < MinRosterSize {
		return ErrRosterTooSmall
	}
	seen := make(map[string]bool, len(t.Players))
	for _, p := range t.Players {
		if seen[p.NationalID] {
			return fmt.Errorf("%w: %s", ErrDuplicateIDs, p.NationalID)
		}
		seen[p.NationalID] = true
	}
	return nil
}

// StartFirstRound launches the tournament: the roster is shuffled and
// paired adjacently, with an exempt bye for the odd player out. Every
// real pair is recorded in the pairing history.
func (t *Tournament) StartFirstRound() (*models.Round, error) {
	if t.CurrentRoundNumber != 0 {
		return nil, ErrAlreadyStarted
	}
	if err := t.validateRosterBeforeLaunch(); err != nil {
		return nil, err
	}

	t.MarkLaunched()
	t.CurrentRoundNumber = 1
	round := models.NewRound(t.CurrentRoundNumber)

	pool := make([]*models.Player, len(t.Players))
	copy(pool, t.Players)
	t.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})

	for i := 0; i+1 < len(pool); i += 2 {
		p1, p2 := pool[i], pool[i+1]
		round.AddMatch(models.NewMatch(p1, p2))
		t.rememberPair(p1.NationalID, p2.NationalID)
	}
	if len(pool)%2 == 1 {
		t.addExemptBye(round, pool[len(pool)-1])
	}

	t.Rounds = append(t.Rounds, round)
	return round, nil
}

// StartNextRound creates the next scheduled round with Swiss pairing:
// players are bucketed by score, shuffled within buckets, and paired
// left to right avoiding rematches when a clean partner exists.
func (t *Tournament) StartNextRound() (*models.Round, error) {
	if t.CurrentRoundNumber == 0 {
		return nil, ErrNotStarted
	}
	if t.CurrentRoundNumber >= t.NumberRounds {
		return nil, ErrNoMoreRounds
	}

	t.CurrentRoundNumber++
	round := models.NewRound(t.CurrentRoundNumber)

	sortedIDs := t.sortedPlayerIDsByScore()

	if len(sortedIDs)%2 == 1 {
		exemptID := sortedIDs[len(sortedIDs)-1]
		sortedIDs = sortedIDs[:len(sortedIDs)-1]
		if err := t.addExemptByeByID(round, exemptID); err != nil {
			return nil, err
		}
	}

	used := make(map[string]bool, len(sortedIDs))
	for i, p1ID := range sortedIDs {
		if used[p1ID] {
			continue
		}

		p2ID := t.findPartner(p1ID, sortedIDs[i+1:], used)
		if p2ID == "" {
			// No rematch-free partner: relax the constraint and take
			// the first unused successor.
			for _, candidate := range sortedIDs[i+1:] {
				if !used[candidate] {
					p2ID = candidate
					break
				}
			}
		}
		if p2ID == "" {
			continue
		}

		p1, err := t.GetPlayerByID(p1ID)
		if err != nil {
			return nil, err
		}
		p2, err := t.GetPlayerByID(p2ID)
		if err != nil {
			return nil, err
		}
		round.AddMatch(models.NewMatch(p1, p2))
		t.rememberPair(p1ID, p2ID)
		used[p1ID] = true
		used[p2ID] = true
	}

	t.Rounds = append(t.Rounds, round)
	return round, nil
}

// StartTiebreakRound creates a playoff round pairing only the given
// leaders. Rematch avoidance is disabled and the pairing history is
// left untouched; the round number may exceed the scheduled count.
func (t *Tournament) StartTiebreakRound(leaderIDs []string) (*models.Round, error) {
	// Normalize and dedupe, preserving order.
	seen := make(map[string]bool, len(leaderIDs))
	ids := make([]string, 0, len(leaderIDs))
	for _, raw := range leaderIDs {
		id := validation.NormalizeID(raw)
		if id == "" || seen[id] {
			continue
		}
		ids = append(ids, id)
		seen[id] = true
	}

	if len(ids) < 2 {
		return nil, ErrNoTie
	}
	for _, id := range ids {
		if _, err := t.GetPlayerByID(id); err != nil {
			return nil, err
		}
	}

	t.CurrentRoundNumber++
	round := models.NewRound(t.CurrentRoundNumber)

	t.rng.Shuffle(len(ids), func(i, j int) {
		ids[i], ids[j] = ids[j], ids[i]
	})

	if len(ids)%2 == 1 {
		byeID := ids[len(ids)-1]
		ids = ids[:len(ids)-1]
		if err := t.addExemptByeByID(round, byeID); err != nil {
			return nil, err
		}
	}

	for i := 0; i+1 < len(ids); i += 2 {
		p1, _ := t.GetPlayerByID(ids[i])
		p2, _ := t.GetPlayerByID(ids[i+1])
		round.AddMatch(models.NewMatch(p1, p2))
	}

	t.Rounds = append(t.Rounds, round)
	return round, nil
}

// sortedPlayerIDsByScore buckets the roster by current score, orders
// buckets by score descending and shuffles inside each bucket so that
// randomness only applies among equal-score players.
func (t *Tournament) sortedPlayerIDsByScore() []string {
	buckets := make(map[float64][]string)
	for _, p := range t.Players {
		score := t.Scores[p.NationalID]
		buckets[score] = append(buckets[score], p.NationalID)
	}

	scores := make([]float64, 0, len(buckets))
	for score := range buckets {
		scores = append(scores, score)
	}
	sort.Sort(sort.Reverse(sort.Float64Slice(scores)))

	result := make([]string, 0, len(t.Players))
	for _, score := range scores {
		ids := buckets[score]
		t.rng.Shuffle(len(ids), func(i, j int) {
			ids[i], ids[j] = ids[j], ids[i]
		})
		result = append(result, ids...)
	}
	return result
}

// findPartner scans the successors of p1 for the first unused player
// that p1 has not met yet. Returns "" when no clean partner exists.
func (t *Tournament) findPartner(p1ID string, successors []string, used map[string]bool) string {
	for _, p2ID := range successors {
		if used[p2ID] {
			continue
		}
		if !t.HavePlayedBefore(p1ID, p2ID) {
			return p2ID
		}
	}
	return ""
}

// addExemptBye attaches a bye match for the player and credits the
// exempt point immediately.
func (t *Tournament) addExemptBye(round *models.Round, player *models.Player) {
	m := models.NewMatch(player, nil)
	round.AddMatch(m)
	t.ApplyMatchPoints(m)
}

func (t *Tournament) addExemptByeByID(round *models.Round, nationalID string) error {
	player, err := t.GetPlayerByID(nationalID)
	if err != nil {
		return err
	}
	t.addExemptBye(round, player)
	return nil
}
