package repository

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/SiRipo92/chess-manager/internal/models"
	"github.com/SiRipo92/chess-manager/internal/validation"
)

// PlayerRepository is the global player directory, a JSON array file of
// player records keyed by national id.
type PlayerRepository struct {
	path string
}

// NewPlayerRepository creates a directory backed by the given file
// path. The file is created on first save.
func NewPlayerRepository(path string) *PlayerRepository {
	return &PlayerRepository{path: path}
}

// Path returns the backing file path.
func (r *PlayerRepository) Path() string {
	return r.path
}

// LoadAll returns every stored player in insertion order. A missing or
// malformed file yields an empty list.
func (r *PlayerRepository) LoadAll() ([]models.Player, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var players []models.Player
	if err := json.Unmarshal(data, &players); err != nil {
		return nil, nil
	}
	return players, nil
}

// LoadIndex returns the directory as a lookup map keyed by national id.
func (r *PlayerRepository) LoadIndex() (map[string]*models.Player, error) {
	players, err := r.LoadAll()
	if err != nil {
		return nil, err
	}
	index := make(map[string]*models.Player, len(players))
	for i := range players {
		p := models.PlayerFromRecord(players[i])
		index[p.NationalID] = p
	}
	return index, nil
}

// SavePlayer upserts a player by national id and rewrites the file.
func (r *PlayerRepository) SavePlayer(player models.Player) error {
	players, err := r.LoadAll()
	if err != nil {
		return err
	}

	id := validation.NormalizeID(player.NationalID)
	replaced := false
	for i := range players {
		if validation.NormalizeID(players[i].NationalID) == id {
			players[i] = player
			replaced = true
			break
		}
	}
	if !replaced {
		players = append(players, player)
	}

	return r.writeAll(players)
}

// IncrementTournamentsWon bumps the win counter of a directory player.
// An id missing from the directory is ignored: the winner may have been
// registered directly on the tournament.
func (r *PlayerRepository) IncrementTournamentsWon(nationalID string) error {
	players, err := r.LoadAll()
	if err != nil {
		return err
	}

	id := validation.NormalizeID(nationalID)
	for i := range players {
		if validation.NormalizeID(players[i].NationalID) == id {
			players[i].TournamentsWon++
			return r.writeAll(players)
		}
	}
	return nil
}

func (r *PlayerRepository) writeAll(players []models.Player) error {
	if players == nil {
		players = []models.Player{}
	}
	data, err := json.MarshalIndent(players, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(r.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", r.path, err)
	}
	return nil
}
