package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(":memory:", 1000)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestBalanceSeededWithDefault(t *testing.T) {
	s := newTestStore(t)

	balance, err := s.Balance()
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
}

func TestSetAndResetBalance(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SetBalance(842.5))
	balance, err := s.Balance()
	assert.NoError(t, err)
	assert.Equal(t, 842.5, balance)

	reset, err := s.ResetBalance()
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, reset)

	balance, err = s.Balance()
	assert.NoError(t, err)
	assert.Equal(t, 1000.0, balance)
}

func TestBalanceFallsBackWhenRowMissing(t *testing.T) {
	s := newTestStore(t)

	_, err := s.db.Exec(`DELETE FROM player`)
	require.NoError(t, err)

	balance, err := s.Balance()
	assert.Error(t, err)
	assert.Equal(t, 1000.0, balance)
}

func TestSessionLifecycle(t *testing.T) {
	s := newTestStore(t)

	id, err := s.StartSession(1000)
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	require.NoError(t, s.LogHand(id, "10♠, A♥", "9♦, 8♣", "blackjack", 15))
	require.NoError(t, s.LogHand(id, "9♠, 5♥, K♦", "10♦, 7♣", "hit", -10))
	require.NoError(t, s.EndSession(id, 1005, 11))

	var startBalance, endBalance float64
	var cardsDealt int
	err = s.db.QueryRow(`
		SELECT start_balance, end_balance, cards_dealt FROM sessions WHERE id = ?
	`, id).Scan(&startBalance, &endBalance, &cardsDealt)
	require.NoError(t, err)
	assert.Equal(t, 1000.0, startBalance)
	assert.Equal(t, 1005.0, endBalance)
	assert.Equal(t, 11, cardsDealt)

	rows, err := s.db.Query(`
		SELECT player_cards, actions, winnings FROM hands WHERE session_id = ? ORDER BY id
	`, id)
	require.NoError(t, err)
	defer rows.Close()

	type hand struct {
		cards, actions string
		winnings       float64
	}
	var hands []hand
	for rows.Next() {
		var h hand
		require.NoError(t, rows.Scan(&h.cards, &h.actions, &h.winnings))
		hands = append(hands, h)
	}
	require.NoError(t, rows.Err())

	require.Len(t, hands, 2)
	assert.Equal(t, hand{"10♠, A♥", "blackjack", 15}, hands[0])
	assert.Equal(t, hand{"9♠, 5♥, K♦", "hit", -10}, hands[1])
}

func TestBalanceSurvivesReopen(t *testing.T) {
	path := t.TempDir() + "/blackjack.db"

	s, err := New(path, 1000)
	require.NoError(t, err)
	require.NoError(t, s.SetBalance(250))
	require.NoError(t, s.Close())

	s, err = New(path, 1000)
	require.NoError(t, err)
	defer s.Close()

	balance, err := s.Balance()
	assert.NoError(t, err)
	assert.Equal(t, 250.0, balance)
}
