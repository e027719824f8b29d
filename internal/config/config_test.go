package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DATABASE_PATH", "")
	t.Setenv("DECKS", "")
	t.Setenv("START_BALANCE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "./blackjack.db", cfg.DatabasePath)
	assert.Equal(t, 6, cfg.DeckCount)
	assert.Equal(t, 1000.0, cfg.StartBalance)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATABASE_PATH", "/tmp/test.db")
	t.Setenv("DECKS", "2")
	t.Setenv("START_BALANCE", "500")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
	assert.Equal(t, 2, cfg.DeckCount)
	assert.Equal(t, 500.0, cfg.StartBalance)
}

func TestLoadRejectsBadValues(t *testing.T) {
	t.Setenv("DECKS", "zero")
	_, err := Load()
	assert.Error(t, err)

	t.Setenv("DECKS", "0")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("DECKS", "6")
	t.Setenv("START_BALANCE", "-5")
	_, err = Load()
	assert.Error(t, err)
}
