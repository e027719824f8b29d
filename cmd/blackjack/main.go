package main

import (
	"log"
	"log/slog"

	"github.com/pterm/pterm"

	"blackjack/internal/config"
	"blackjack/internal/game"
	"blackjack/internal/store"
	"blackjack/internal/ui"
)

func main() {
	slog.SetDefault(slog.New(pterm.NewSlogHandler(&pterm.DefaultLogger)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := store.New(cfg.DatabasePath, cfg.StartBalance)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	counter := game.NewCounter()
	shoe := game.NewShoe(cfg.DeckCount, counter)

	session := game.NewSession(shoe, counter, db, ui.New(), cfg.StartBalance)
	if err := session.Run(); err != nil {
		log.Fatalf("Session error: %v", err)
	}
}
