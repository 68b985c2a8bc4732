package cards

import "math/rand/v2"

// Shuffler produces a uniform random permutation of n elements through swap.
// *rand.Rand from math/rand/v2 satisfies it.
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

type systemShuffler struct{}

// Shuffle uses the runtime's entropy-seeded global source
func (systemShuffler) Shuffle(n int, swap func(i, j int)) {
	rand.Shuffle(n, swap)
}

// DeckOption configures a Deck
type DeckOption func(*Deck)

// WithShuffler replaces the randomness source used by Shuffle
func WithShuffler(s Shuffler) DeckOption {
	return func(d *Deck) {
		if s != nil {
			d.shuffler = s
		}
	}
}

// Deck represents a deck of cards. The top of the deck is the end of the slice.
type Deck struct {
	cards    []Card
	shuffler Shuffler
}

// NewDeck creates the 52 card deck ordered Clubs A..K, Diamonds A..K, Hearts A..K, Spades A..K
func NewDeck(opts ...DeckOption) *Deck {
	deck := &Deck{
		cards:    make([]Card, 0, len(Suits)*len(Ranks)),
		shuffler: systemShuffler{},
	}

	for _, suit := range Suits {
		for _, rank := range Ranks {
			deck.cards = append(deck.cards, Card{Suit: suit, Rank: rank})
		}
	}

	for _, opt := range opts {
		opt(deck)
	}

	return deck
}

// Shuffle permutes the remaining cards in place
func (d *Deck) Shuffle() {
	d.shuffler.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

// Deal removes and returns the top card. ok is false once the deck is exhausted.
func (d *Deck) Deal() (card Card, ok bool) {
	if len(d.cards) == 0 {
		return Card{}, false
	}
	top := len(d.cards) - 1
	card = d.cards[top]
	d.cards = d.cards[:top]
	return card, true
}

// Len returns the number of cards left in the deck
func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy of the remaining cards, bottom first
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
