// Package config loads runtime settings from the environment, with an
// optional .env file for local development.
package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds the file paths the application works with.
type Config struct {
	DataDir         string
	TournamentsFile string
	PlayersFile     string
}

// Load reads the .env file when present and resolves the configuration
// from environment variables with sane defaults.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	dataDir := GetEnv("CHESS_DATA_DIR", "data")
	return Config{
		DataDir:         dataDir,
		TournamentsFile: GetEnv("CHESS_TOURNAMENTS_FILE", filepath.Join(dataDir, "tournaments.json")),
		PlayersFile:     GetEnv("CHESS_PLAYERS_FILE", filepath.Join(dataDir, "players.json")),
	}
}

// GetEnv returns the environment variable value or the fallback when it
// is unset or empty.
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
