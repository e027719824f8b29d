package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DatabasePath string
	DeckCount    int
	StartBalance float64
}

func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		DatabasePath: "./blackjack.db",
		DeckCount:    6,
		StartBalance: 1000.0,
	}

	if path := os.Getenv("DATABASE_PATH"); path != "" {
		cfg.DatabasePath = path
	}

	if decks := os.Getenv("DECKS"); decks != "" {
		n, err := strconv.Atoi(decks)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid DECKS value %q", decks)
		}
		cfg.DeckCount = n
	}

	if balance := os.Getenv("START_BALANCE"); balance != "" {
		b, err := strconv.ParseFloat(balance, 64)
		if err != nil || b <= 0 {
			return nil, fmt.Errorf("invalid START_BALANCE value %q", balance)
		}
		cfg.StartBalance = b
	}

	return cfg, nil
}
