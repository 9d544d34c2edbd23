package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/SiRipo92/chess-manager/internal/models"
)

// Repository errors
var (
	ErrTournamentNotFound = errors.New("tournament not found")
)

// TournamentRepository stores tournament snapshots in a single JSON
// file holding an ordered array of records, keyed by name. Single
// writer assumed; every save rewrites the whole file.
type TournamentRepository struct {
	path string
}

// NewTournamentRepository creates a repository backed by the given
// file path. The file is created on first save.
func NewTournamentRepository(path string) *TournamentRepository {
	return &TournamentRepository{path: path}
}

// Path returns the backing file path.
func (r *TournamentRepository) Path() string {
	return r.path
}

// normalizeName folds a tournament name for matching: trimmed and
// case-insensitive.
func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// LoadAll returns every stored record in insertion order. A missing or
// malformed file yields an empty list; the next save rewrites it.
func (r *TournamentRepository) LoadAll() ([]models.TournamentRecord, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	var records []models.TournamentRecord
	if err := json.Unmarshal(data, &records); err != nil {
		// Corrupted store: start over rather than blocking every save.
		return nil, nil
	}
	return records, nil
}

// SaveTournament upserts a record by normalized name and rewrites the
// file. A record with an empty name is appended; an existing record
// with the same name is replaced in place, preserving order.
func (r *TournamentRepository) SaveTournament(rec models.TournamentRecord) error {
	records, err := r.LoadAll()
	if err != nil {
		return err
	}

	target := normalizeName(rec.Name)
	replaced := false
	if target != "" {
		for i := range records {
			if normalizeName(records[i].Name) == target {
				records[i] = rec
				replaced = true
				break
			}
		}
	}
	if !replaced {
		records = append(records, rec)
	}

	return r.writeAll(records)
}

// AddTournament is an alias of SaveTournament.
func (r *TournamentRepository) AddTournament(rec models.TournamentRecord) error {
	return r.SaveTournament(rec)
}

// GetByName scans for a record by normalized name and returns a deep
// copy, so callers can mutate it freely.
func (r *TournamentRepository) GetByName(name string) (*models.TournamentRecord, error) {
	records, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	target := normalizeName(name)
	for i := range records {
		if normalizeName(records[i].Name) == target {
			copied, err := copyRecord(records[i])
			if err != nil {
				return nil, err
			}
			return copied, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", ErrTournamentNotFound, name)
}

// GetByLocation returns every record held at the given location.
func (r *TournamentRepository) GetByLocation(location string) ([]models.TournamentRecord, error) {
	records, err := r.LoadAll()
	if err != nil {
		return nil, err
	}

	target := strings.ToLower(strings.TrimSpace(location))
	var out []models.TournamentRecord
	for _, rec := range records {
		if strings.ToLower(strings.TrimSpace(rec.Location)) == target {
			out = append(out, rec)
		}
	}
	return out, nil
}

func (r *TournamentRepository) writeAll(records []models.TournamentRecord) error {
	if records == nil {
		records = []models.TournamentRecord{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
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

// copyRecord deep-copies a record through its JSON form.
func copyRecord(rec models.TournamentRecord) (*models.TournamentRecord, error) {
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, err
	}
	var copied models.TournamentRecord
	if err := json.Unmarshal(data, &copied); err != nil {
		return nil, err
	}
	return &copied, nil
}
