package game

import "strings"

// Action is a turn decision recorded in the round's action log.
type Action string

const (
	ActionHit    Action = "hit"
	ActionStand  Action = "stand"
	ActionSplit  Action = "split"
	ActionDouble Action = "double"
)

// Outcome is how a round ended.
type Outcome string

const (
	OutcomePending         Outcome = ""
	OutcomePlayerBust      Outcome = "player_bust"
	OutcomeDealerBust      Outcome = "dealer_bust"
	OutcomePlayerWin       Outcome = "player_win"
	OutcomeDealerWin       Outcome = "dealer_win"
	OutcomePush            Outcome = "push"
	OutcomeBlackjackWin    Outcome = "blackjack"
	OutcomeBlackjackPush   Outcome = "blackjack_push"
	OutcomeDealerBlackjack Outcome = "dealer_blackjack"
)

// Blackjack pays 3:2 on the bet.
const blackjackPayout = 1.5

// Round plays one hand against the dealer: initial deal, natural check,
// the player's hit/stand/double decisions, the dealer's draw to 17 and the
// settlement. Settlement is a signed delta against the balance.
type Round struct {
	Bet        float64
	Player     *Hand
	Dealer     *Hand
	Actions    []Action
	Outcome    Outcome
	Settlement float64

	shoe  *Shoe
	stood bool
}

// NewRound posts the bet, deals player, dealer, player, dealer in that
// fixed order and settles immediately if either side holds a natural.
func NewRound(shoe *Shoe, bet float64) *Round {
	r := &Round{
		Bet:    bet,
		Player: NewHand(),
		Dealer: NewHand(),
		shoe:   shoe,
	}

	r.Player.AddCard(shoe.Draw())
	r.Dealer.AddCard(shoe.Draw())
	r.Player.AddCard(shoe.Draw())
	r.Dealer.AddCard(shoe.Draw())

	switch {
	case r.Player.IsBlackjack() && r.Dealer.IsBlackjack():
		r.settle(OutcomeBlackjackPush, 0)
	case r.Player.IsBlackjack():
		r.settle(OutcomeBlackjackWin, bet*blackjackPayout)
	case r.Dealer.IsBlackjack():
		r.settle(OutcomeDealerBlackjack, -bet)
	}
	return r
}

// Settled reports whether the round already ended on the initial deal.
func (r *Round) Settled() bool {
	return r.Outcome != OutcomePending
}

// CanDouble reports whether doubling is still on offer: no natural
// occurred and the player holds exactly two cards. Affordability is the
// caller's check, since the balance lives outside the round.
func (r *Round) CanDouble() bool {
	return !r.Settled() && len(r.Player.Cards) == 2
}

// Double doubles the bet and draws exactly one card. The player's turn
// then continues under the normal hit/stand loop, which exits on its own
// once the total reaches 21. Refused with the zero Card once the offer
// has lapsed.
func (r *Round) Double() Card {
	if !r.CanDouble() {
		return Card{}
	}

	r.Bet *= 2
	r.Actions = append(r.Actions, ActionDouble)
	card := r.shoe.Draw()
	r.Player.AddCard(card)
	return card
}

// CanSplit reports whether the player holds an equal-rank pair.
func (r *Round) CanSplit() bool {
	return len(r.Player.Cards) == 2 && r.Player.Cards[0].Rank == r.Player.Cards[1].Rank
}

// Hit draws one card into the player's hand.
func (r *Round) Hit() Card {
	r.Actions = append(r.Actions, ActionHit)
	card := r.shoe.Draw()
	r.Player.AddCard(card)
	return card
}

// Split is offered only on an equal-rank pair but plays out as a hit on
// the single hand; no second hand is created yet.
func (r *Round) Split() Card {
	r.Actions = append(r.Actions, ActionSplit)
	card := r.shoe.Draw()
	r.Player.AddCard(card)
	return card
}

// Stand ends the player's turn.
func (r *Round) Stand() {
	r.Actions = append(r.Actions, ActionStand)
	r.stood = true
}

// PlayerDone reports whether the player's turn is over: an explicit stand
// or any total at or above 21, bust included.
func (r *Round) PlayerDone() bool {
	return r.stood || r.Player.Total >= 21
}

// Resolve runs the dealer's turn and computes the outcome and settlement.
// The dealer draws below 17 and stands on every 17, soft ones included.
// No-op on rounds already settled by a natural.
func (r *Round) Resolve() {
	if r.Settled() {
		return
	}

	if r.Player.IsBust() {
		r.settle(OutcomePlayerBust, -r.Bet)
		return
	}

	for r.Dealer.Total < 17 {
		r.Dealer.AddCard(r.shoe.Draw())
	}

	switch {
	case r.Dealer.IsBust():
		r.settle(OutcomeDealerBust, r.Bet)
	case r.Player.Total > r.Dealer.Total:
		r.settle(OutcomePlayerWin, r.Bet)
	case r.Player.Total < r.Dealer.Total:
		r.settle(OutcomeDealerWin, -r.Bet)
	default:
		r.settle(OutcomePush, 0)
	}
}

func (r *Round) settle(outcome Outcome, amount float64) {
	r.Outcome = outcome
	r.Settlement = amount
}

// ActionLog joins the action tags for display and history. Rounds settled
// by a natural log the outcome tag instead, since no turn was taken.
func (r *Round) ActionLog() string {
	switch r.Outcome {
	case OutcomeBlackjackWin, OutcomeBlackjackPush, OutcomeDealerBlackjack:
		return string(r.Outcome)
	}

	parts := make([]string, len(r.Actions))
	for i, a := range r.Actions {
		parts[i] = string(a)
	}
	return strings.Join(parts, ", ")
}
