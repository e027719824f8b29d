package game

import "strings"

// Hand accumulates cards for a player or the dealer. Total always holds
// the best valuation that does not bust if one exists, demoting soft aces
// from 11 to 1 as needed. Cards are never removed.
type Hand struct {
	Cards    []Card
	Total    int
	softAces int
}

func NewHand() *Hand {
	return &Hand{Cards: make([]Card, 0, 10)}
}

// AddCard appends a card and re-applies the ace adjustment.
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
	h.Total += card.Value()
	if card.Rank == "A" {
		h.softAces++
	}

	for h.Total > 21 && h.softAces > 0 {
		h.Total -= 10
		h.softAces--
	}
}

// IsBlackjack reports whether the hand is a natural: exactly two cards
// totaling 21.
func (h *Hand) IsBlackjack() bool {
	return len(h.Cards) == 2 && h.Total == 21
}

// IsBust reports whether the hand exceeds 21.
func (h *Hand) IsBust() bool {
	return h.Total > 21
}

// String joins the cards in deal order.
func (h *Hand) String() string {
	parts := make([]string, len(h.Cards))
	for i, c := range h.Cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, ", ")
}
