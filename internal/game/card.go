package game

// Suit is one of the four card suit symbols.
type Suit string

const (
	Spades   Suit = "♠"
	Hearts   Suit = "♥"
	Diamonds Suit = "♦"
	Clubs    Suit = "♣"
)

var suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var ranks = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "J", "Q", "K", "A"}

var cardValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"J": 10, "Q": 10, "K": 10, "A": 11,
}

// Card is a single playing card. Immutable once created.
type Card struct {
	Rank string
	Suit Suit
}

// Value returns the blackjack value of the card. Aces count as 11 here;
// demotion to 1 is the hand's job.
func (c Card) Value() int {
	return cardValues[c.Rank]
}

func (c Card) String() string {
	return c.Rank + string(c.Suit)
}

// newDeck returns one standard 52-card deck in fixed order.
func newDeck() []Card {
	deck := make([]Card, 0, 52)
	for _, suit := range suits {
		for _, rank := range ranks {
			deck = append(deck, Card{Rank: rank, Suit: suit})
		}
	}
	return deck
}
