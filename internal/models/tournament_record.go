package models

import (
	"encoding/json"
)

// TournamentRecord is the persisted form of a tournament, one entry of
// the repository's JSON array. Keys not listed here survive a
// load/save cycle untouched through Extra.
type TournamentRecord struct {
	Name               string             `json:"name"`
	Location           string             `json:"location"`
	StartDate          string             `json:"start_date"`
	EndDate            string             `json:"end_date"`
	StartedAt          string             `json:"started_at"`
	FinishedAt         string             `json:"finished_at"`
	Status             TournamentStatus   `json:"status"`
	Description        string             `json:"description"`
	NumberRounds       int                `json:"number_rounds"`
	CurrentRoundNumber int                `json:"current_round_number"`
	Players            []Player           `json:"players"`
	Rounds             []RoundRecord      `json:"rounds"`
	Scores             map[string]float64 `json:"scores"`
	PastPairs          [][]string         `json:"past_pairs"`
	WinnerID           string             `json:"winner_id"`

	Extra map[string]json.RawMessage `json:"-"`
}

var knownTournamentKeys = []string{
	"name", "location", "start_date", "end_date", "started_at",
	"finished_at", "status", "description", "number_rounds",
	"current_round_number", "players", "rounds", "scores",
	"past_pairs", "winner_id",
}

// tournamentRecordAlias breaks the MarshalJSON/UnmarshalJSON recursion.
type tournamentRecordAlias TournamentRecord

// UnmarshalJSON decodes the known fields and stashes every unknown key
// in Extra so it can be written back verbatim.
func (r *TournamentRecord) UnmarshalJSON(data []byte) error {
	var a tournamentRecordAlias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for _, key := range knownTournamentKeys {
		delete(raw, key)
	}
	if len(raw) > 0 {
		a.Extra = raw
	}

	*r = TournamentRecord(a)
	return nil
}

// MarshalJSON encodes the known fields and merges back any preserved
// unknown keys. A known field always wins over a stale Extra entry.
func (r TournamentRecord) MarshalJSON() ([]byte, error) {
	base, err := json.Marshal(tournamentRecordAlias(r))
	if err != nil {
		return nil, err
	}
	if len(r.Extra) == 0 {
		return base, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(base, &merged); err != nil {
		return nil, err
	}
	for key, value := range r.Extra {
		if _, known := merged[key]; !known {
			merged[key] = value
		}
	}
	return json.Marshal(merged)
}
