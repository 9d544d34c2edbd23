package engine

import (
	"encoding/json"
	"testing"

	"github.com/SiRipo92/chess-manager/internal/models"
)

func TestRecordRoundTrip(t *testing.T) {
	tour := newTestTournament(t, 9)
	const champ = "AB00001"

	round, err := tour.StartFirstRound()
	if err != nil {
		t.Fatal(err)
	}
	scriptRound(t, tour, round, champ)
	round, err = tour.StartNextRound()
	if err != nil {
		t.Fatal(err)
	}
	scriptRound(t, tour, round, champ)

	rec := tour.ToRecord()
	loaded, err := FromRecord(rec)
	if err != nil {
		t.Fatalf("FromRecord error = %v", err)
	}

	if loaded.CurrentRoundNumber != tour.CurrentRoundNumber {
		t.Errorf("CurrentRoundNumber = %d, want %d", loaded.CurrentRoundNumber, tour.CurrentRoundNumber)
	}
	if loaded.Status() != tour.Status() {
		t.Errorf("Status = %q, want %q", loaded.Status(), tour.Status())
	}
	if loaded.RosterSize() != 9 || len(loaded.Rounds) != 2 {
		t.Errorf("roster = %d, rounds = %d", loaded.RosterSize(), len(loaded.Rounds))
	}
	for id, score := range tour.Scores {
		if loaded.Scores[id] != score {
			t.Errorf("score[%s] = %v, want %v", id, loaded.Scores[id], score)
		}
	}
	if loaded.PastPairCount() != tour.PastPairCount() {
		t.Errorf("PastPairCount = %d, want %d", loaded.PastPairCount(), tour.PastPairCount())
	}
}

func TestFromRecordLedgerStaysIdempotent(t *testing.T) {
	tour := newTestTournament(t, 8)
	const champ = "AB00001"

	round, err := tour.StartFirstRound()
	if err != nil {
		t.Fatal(err)
	}
	scriptRound(t, tour, round, champ)

	loaded, err := FromRecord(tour.ToRecord())
	if err != nil {
		t.Fatal(err)
	}

	// Re-applying stored rounds must not double-count the saved ledger.
	for _, r := range loaded.Rounds {
		loaded.UpdateScoresFromRound(r)
	}
	for id, score := range tour.Scores {
		if loaded.Scores[id] != score {
			t.Errorf("score[%s] = %v after re-apply, want %v", id, loaded.Scores[id], score)
		}
	}
}

func TestRecordRoundTripPartialRound(t *testing.T) {
	tour := newTestTournament(t, 8)

	round, err := tour.StartFirstRound()
	if err != nil {
		t.Fatal(err)
	}
	scriptRound(t, tour, round, "AB00001")

	round, err = tour.StartNextRound()
	if err != nil {
		t.Fatal(err)
	}
	// Only the first match of round 2 is played before the crash.
	if err := round.Matches[0].SetResultByCode("N"); err != nil {
		t.Fatal(err)
	}
	tour.ApplyMatchPoints(round.Matches[0])

	loaded, err := FromRecord(tour.ToRecord())
	if err != nil {
		t.Fatal(err)
	}

	second := loaded.Rounds[1]
	if !second.Matches[0].IsScored() {
		t.Error("the played match must come back scored")
	}
	for i, m := range second.Matches[1:] {
		if m.IsScored() {
			t.Errorf("pending match %d came back scored", i+1)
		}
	}
	if second.IsClosed() {
		t.Error("a round with pending matches is still open")
	}
	for id, score := range tour.Scores {
		if loaded.Scores[id] != score {
			t.Errorf("score[%s] = %v, want %v", id, loaded.Scores[id], score)
		}
	}
	if loaded.CurrentRoundNumber != 2 || loaded.PastPairCount() != tour.PastPairCount() {
		t.Errorf("resume state: round %d, pairs %d", loaded.CurrentRoundNumber, loaded.PastPairCount())
	}
}

func TestToRecordEmitsSortedPairs(t *testing.T) {
	tour := newTestTournament(t, 4)
	tour.rememberPair("CD00002", "AB00001")
	tour.rememberPair("AB00003", "AB00002")

	rec := tour.ToRecord()
	if len(rec.PastPairs) != 2 {
		t.Fatalf("PastPairs = %v", rec.PastPairs)
	}
	for i, pair := range rec.PastPairs {
		if pair[0] > pair[1] {
			t.Errorf("pair %d not internally ordered: %v", i, pair)
		}
		if i > 0 && rec.PastPairs[i-1][0] > pair[0] {
			t.Errorf("pairs not sorted: %v", rec.PastPairs)
		}
	}
}

func TestToRecordNameFallsBackToDisplayName(t *testing.T) {
	tour := newTestTournament(t, 0)
	tour.StartDate = "2025-07-01"

	if got := tour.ToRecord().Name; got != "Paris_2025-07-01" {
		t.Errorf("Name = %q, want Paris_2025-07-01", got)
	}

	tour.RepoName = "tournament_3_paris_2025-07-01"
	if got := tour.ToRecord().Name; got != "tournament_3_paris_2025-07-01" {
		t.Errorf("Name = %q, want the durable repository name", got)
	}
}

func TestFromRecordDefaults(t *testing.T) {
	rec := models.TournamentRecord{
		Name:     "tournament_1_paris_2025-07-01",
		Location: "Paris",
		Players: []models.Player{
			{LastName: "Dupont", FirstName: "Marie", Birthdate: "1990-03-22", NationalID: "AB00001"},
		},
	}

	loaded, err := FromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.NumberRounds != DefaultNumberRounds {
		t.Errorf("NumberRounds = %d, want default %d", loaded.NumberRounds, DefaultNumberRounds)
	}
	if score, ok := loaded.Scores["AB00001"]; !ok || score != 0.0 {
		t.Errorf("missing ledger must be zeroed for the roster, got %v (present %v)", score, ok)
	}
}

func TestFromRecordCreatedAtFallback(t *testing.T) {
	rec := models.TournamentRecord{
		Name: "tournament_1_paris_2025-07-01",
		Extra: map[string]json.RawMessage{
			"created_at": json.RawMessage(`"2025-08-10T14:32:05"`),
		},
	}

	loaded, err := FromRecord(rec)
	if err != nil {
		t.Fatal(err)
	}
	if loaded.StartDate != "2025-08-10" {
		t.Errorf("StartDate = %q, want 2025-08-10 from created_at", loaded.StartDate)
	}
}
