package repository

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SiRipo92/chess-manager/internal/models"
)

func newTestPlayerRepo(t *testing.T) *PlayerRepository {
	t.Helper()
	return NewPlayerRepository(filepath.Join(t.TempDir(), "players.json"))
}

func TestPlayerRepositoryUpsert(t *testing.T) {
	repo := newTestPlayerRepo(t)

	p := models.Player{LastName: "Dupont", FirstName: "Marie", NationalID: "AB12345"}
	require.NoError(t, repo.SavePlayer(p))

	p.FirstName = "Marie-Claire"
	require.NoError(t, repo.SavePlayer(p))

	players, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, "Marie-Claire", players[0].FirstName)
}

func TestPlayerRepositoryLoadIndex(t *testing.T) {
	repo := newTestPlayerRepo(t)
	require.NoError(t, repo.SavePlayer(models.Player{LastName: "Dupont", NationalID: "AB12345"}))
	require.NoError(t, repo.SavePlayer(models.Player{LastName: "Durand", NationalID: "CD54321"}))

	index, err := repo.LoadIndex()
	require.NoError(t, err)
	require.Len(t, index, 2)
	assert.Equal(t, "Durand", index["CD54321"].LastName)
	assert.NotEmpty(t, index["AB12345"].DateEnrolled)
}

func TestIncrementTournamentsWon(t *testing.T) {
	repo := newTestPlayerRepo(t)
	require.NoError(t, repo.SavePlayer(models.Player{LastName: "Dupont", NationalID: "AB12345"}))

	require.NoError(t, repo.IncrementTournamentsWon("ab12345"))
	require.NoError(t, repo.IncrementTournamentsWon("AB12345"))

	players, err := repo.LoadAll()
	require.NoError(t, err)
	require.Len(t, players, 1)
	assert.Equal(t, 2, players[0].TournamentsWon)

	// A winner missing from the directory is not an error.
	require.NoError(t, repo.IncrementTournamentsWon("ZZ99999"))
}
