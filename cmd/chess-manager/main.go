package main

import (
	"fmt"
	"log"
	"os"

	"github.com/SiRipo92/chess-manager/internal/config"
	"github.com/SiRipo92/chess-manager/internal/progress"
	"github.com/SiRipo92/chess-manager/internal/repository"
	"github.com/SiRipo92/chess-manager/internal/stats"
)

func main() {
	cfg := config.Load()

	log.Printf("Starting chess-manager (tournaments: %s, players: %s)",
		cfg.TournamentsFile, cfg.PlayersFile)

	tournaments := repository.NewTournamentRepository(cfg.TournamentsFile)
	players := repository.NewPlayerRepository(cfg.PlayersFile)

	records, err := tournaments.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load tournaments: %v", err)
	}

	fmt.Printf("Tournois (%d)\n", len(records))
	for _, rec := range records {
		fmt.Printf("  %-40s %-20s %s\n", rec.Name, rec.Location, progress.StatusLabel(rec))
	}

	directory, err := players.LoadAll()
	if err != nil {
		log.Fatalf("Failed to load players: %v", err)
	}
	log.Printf("Player directory holds %d players", len(directory))

	fmt.Println("\nJoueurs")
	stats.FormatPlayerIndex(os.Stdout, stats.BuildPlayerIndex(records))
}
