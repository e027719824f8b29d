package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// SQLite persists the single player balance and the session/hand history.
// It satisfies game.Store.
type SQLite struct {
	db             *sql.DB
	defaultBalance float64
}

// New opens (or creates) the database at path and runs the schema
// migration. The player row is seeded with defaultBalance.
func New(path string, defaultBalance float64) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &SQLite{db: db, defaultBalance: defaultBalance}
	if err = s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate: %w", err)
	}

	return s, nil
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS player (
		id INTEGER PRIMARY KEY CHECK (id = 1),
		balance REAL
	);

	CREATE TABLE IF NOT EXISTS sessions (
		id TEXT PRIMARY KEY,
		start_balance REAL,
		end_balance REAL,
		cards_dealt INTEGER DEFAULT 0,
		start_time DATETIME,
		end_time DATETIME
	);

	CREATE TABLE IF NOT EXISTS hands (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		session_id TEXT,
		player_cards TEXT,
		dealer_cards TEXT,
		actions TEXT,
		winnings REAL,
		FOREIGN KEY(session_id) REFERENCES sessions(id)
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return err
	}

	_, err := s.db.Exec(`INSERT OR IGNORE INTO player (id, balance) VALUES (1, ?)`, s.defaultBalance)
	return err
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

// Balance returns the stored balance. If the row is missing or unreadable
// the configured default is returned alongside the error, so the caller
// can keep playing.
func (s *SQLite) Balance() (float64, error) {
	var balance float64
	err := s.db.QueryRow(`SELECT balance FROM player WHERE id = 1`).Scan(&balance)
	if err != nil {
		return s.defaultBalance, fmt.Errorf("failed to read balance: %w", err)
	}
	return balance, nil
}

func (s *SQLite) SetBalance(amount float64) error {
	if _, err := s.db.Exec(`UPDATE player SET balance = ? WHERE id = 1`, amount); err != nil {
		return fmt.Errorf("failed to update balance: %w", err)
	}
	return nil
}

// ResetBalance restores the configured default balance and returns it.
func (s *SQLite) ResetBalance() (float64, error) {
	if err := s.SetBalance(s.defaultBalance); err != nil {
		return 0, err
	}
	return s.defaultBalance, nil
}

// StartSession records a new session and returns its identifier.
func (s *SQLite) StartSession(startBalance float64) (string, error) {
	id := uuid.NewString()
	_, err := s.db.Exec(`
		INSERT INTO sessions (id, start_balance, end_balance, cards_dealt, start_time)
		VALUES (?, ?, ?, 0, ?)
	`, id, startBalance, startBalance, time.Now())
	if err != nil {
		return "", fmt.Errorf("failed to start session: %w", err)
	}
	return id, nil
}

func (s *SQLite) EndSession(id string, endBalance float64, cardsDealt int) error {
	_, err := s.db.Exec(`
		UPDATE sessions
		SET end_balance = ?, cards_dealt = ?, end_time = ?
		WHERE id = ?
	`, endBalance, cardsDealt, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to end session: %w", err)
	}
	return nil
}

func (s *SQLite) LogHand(sessionID, playerCards, dealerCards, actions string, winnings float64) error {
	_, err := s.db.Exec(`
		INSERT INTO hands (session_id, player_cards, dealer_cards, actions, winnings)
		VALUES (?, ?, ?, ?, ?)
	`, sessionID, playerCards, dealerCards, actions, winnings)
	if err != nil {
		return fmt.Errorf("failed to log hand: %w", err)
	}
	return nil
}
