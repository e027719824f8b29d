package game

import "math/rand"

// Shoe is the working set of shuffled cards drawn from one or more
// standard decks. An optional Counter observes every card drawn.
type Shoe struct {
	cards      []Card
	deckCount  int
	counter    *Counter
	dealt      int
	reshuffles int
}

// NewShoe builds and shuffles deckCount concatenated 52-card decks.
// counter may be nil.
func NewShoe(deckCount int, counter *Counter) *Shoe {
	s := &Shoe{
		deckCount: deckCount,
		counter:   counter,
	}
	s.rebuild()
	return s
}

// rebuild replaces the card sequence with a fresh shuffled permutation and
// resets the attached counter. The shoe keeps its identity.
func (s *Shoe) rebuild() {
	s.cards = make([]Card, 0, 52*s.deckCount)
	for i := 0; i < s.deckCount; i++ {
		s.cards = append(s.cards, newDeck()...)
	}
	rand.Shuffle(len(s.cards), func(i, j int) {
		s.cards[i], s.cards[j] = s.cards[j], s.cards[i]
	})
	if s.counter != nil {
		s.counter.Reset()
	}
}

// Draw removes and returns the top card, reshuffling a fresh shoe first if
// none remain. It never fails. The drawn card is fed to the attached
// counter whether or not counting is enabled; the counter decides.
func (s *Shoe) Draw() Card {
	if len(s.cards) == 0 {
		s.rebuild()
		s.reshuffles++
	}

	card := s.cards[0]
	s.cards = s.cards[1:]
	s.dealt++

	if s.counter != nil {
		s.counter.Record(card)
	}
	return card
}

// Remaining reports how many cards are left before the next reshuffle.
func (s *Shoe) Remaining() int {
	return len(s.cards)
}

// TotalDealt reports how many cards have been drawn over the shoe's
// lifetime, across reshuffles.
func (s *Shoe) TotalDealt() int {
	return s.dealt
}

// Reshuffles reports how many times an exhausted shoe has been rebuilt.
func (s *Shoe) Reshuffles() int {
	return s.reshuffles
}
