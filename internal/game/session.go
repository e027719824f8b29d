package game

import (
	"fmt"
	"log/slog"
)

// Store persists the balance and the session/hand history. Writes must
// complete before the next round begins; there is no async flush.
type Store interface {
	// Balance returns the stored balance. On error the returned amount is
	// the configured default, so play can continue.
	Balance() (float64, error)
	SetBalance(amount float64) error
	// ResetBalance restores the configured default and returns it.
	ResetBalance() (float64, error)
	StartSession(startBalance float64) (string, error)
	EndSession(id string, endBalance float64, cardsDealt int) error
	LogHand(sessionID, playerCards, dealerCards, actions string, winnings float64) error
}

// Terminal is the synchronous prompt/response boundary. Implementations
// validate raw input themselves with local re-prompts and only return
// well-formed answers.
type Terminal interface {
	Welcome()
	AskEnableCounter() bool
	// PlayAgain returns false when the player quits.
	PlayAgain(balance float64) bool
	// AskBet returns a bet with 0 < bet <= balance.
	AskBet(balance float64) float64
	ShowHands(player, dealer *Hand, hideDealer bool)
	ShowCount(count int)
	AskDouble() bool
	// AskAction returns hit, stand, or split (split only when offered).
	AskAction(canSplit bool) Action
	ShowResult(r *Round, balance float64)
	Info(format string, args ...any)
	Goodbye(balance float64)
}

// Session repeats rounds against the persisted balance until the player
// quits or the balance runs out. It owns the one long-lived shoe and
// counter; hands are created fresh per round.
type Session struct {
	shoe           *Shoe
	counter        *Counter
	store          Store
	term           Terminal
	defaultBalance float64
}

func NewSession(shoe *Shoe, counter *Counter, store Store, term Terminal, defaultBalance float64) *Session {
	return &Session{
		shoe:           shoe,
		counter:        counter,
		store:          store,
		term:           term,
		defaultBalance: defaultBalance,
	}
}

// Run plays rounds until quit or bust-out. A balance at or below zero at
// the top of the loop ends the session and resets the stored balance to
// the configured default.
func (s *Session) Run() error {
	balance, err := s.store.Balance()
	if err != nil {
		slog.Warn("stored balance unreadable, falling back to default", "error", err, "default", s.defaultBalance)
		balance = s.defaultBalance
	}

	sessionID, err := s.store.StartSession(balance)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	s.term.Welcome()
	if s.term.AskEnableCounter() {
		s.counter.Enable()
		s.term.Info("Card counting enabled. Running count starts at %+d.", s.counter.Count())
	}

	for {
		if balance <= 0 {
			s.term.Info("You've run out of money! Game over.")
			balance, err = s.store.ResetBalance()
			if err != nil {
				slog.Error("failed to reset balance", "error", err)
				balance = s.defaultBalance
			}
			break
		}

		if !s.term.PlayAgain(balance) {
			break
		}

		bet := s.term.AskBet(balance)
		reshuffles := s.shoe.Reshuffles()
		round := NewRound(s.shoe, bet)
		s.term.ShowHands(round.Player, round.Dealer, true)

		if !round.Settled() {
			s.playTurns(round, balance)
		}

		if s.shoe.Reshuffles() > reshuffles {
			s.term.Info("The shoe ran out and was reshuffled.")
		}

		balance += round.Settlement
		if err := s.store.SetBalance(balance); err != nil {
			s.term.Info("Could not save your balance: %v", err)
			slog.Error("failed to persist balance", "error", err, "balance", balance)
		}
		if err := s.store.LogHand(sessionID, round.Player.String(), round.Dealer.String(), round.ActionLog(), round.Settlement); err != nil {
			slog.Error("failed to log hand", "error", err, "session", sessionID)
		}

		s.term.ShowResult(round, balance)
	}

	if err := s.store.EndSession(sessionID, balance, s.shoe.TotalDealt()); err != nil {
		slog.Error("failed to end session", "error", err, "session", sessionID)
	}

	s.term.Goodbye(balance)
	return nil
}

// playTurns runs the double-down offer, the player's hit/stand loop and
// the dealer's turn for a round that was not settled by a natural.
func (s *Session) playTurns(round *Round, balance float64) {
	s.showCount()
	if round.CanDouble() && s.term.AskDouble() {
		if balance >= round.Bet*2 {
			round.Double()
			s.term.Info("Bet doubled to $%.2f", round.Bet)
		} else {
			s.term.Info("Insufficient balance to double down.")
		}
	}

	for !round.PlayerDone() {
		s.term.ShowHands(round.Player, round.Dealer, true)
		s.showCount()

		switch s.term.AskAction(round.CanSplit()) {
		case ActionHit:
			round.Hit()
		case ActionSplit:
			if round.CanSplit() {
				s.term.Info("Split is currently treated as a hit.")
				round.Split()
			}
		case ActionStand:
			round.Stand()
		}
	}

	round.Resolve()
	s.term.ShowHands(round.Player, round.Dealer, false)
}

func (s *Session) showCount() {
	if s.counter.Enabled() {
		s.term.ShowCount(s.counter.Count())
	}
}
