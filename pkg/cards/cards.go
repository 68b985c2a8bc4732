package cards

// Suit represents a card suit
type Suit int

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// Suits lists every suit in deck order
var Suits = []Suit{Clubs, Diamonds, Hearts, Spades}

var suitSymbols = map[Suit]string{
	Clubs:    "♣",
	Diamonds: "♦",
	Hearts:   "♥",
	Spades:   "♠",
}

// String returns the suit symbol
func (s Suit) String() string {
	if sym, ok := suitSymbols[s]; ok {
		return sym
	}
	return "?"
}

// Rank represents a card rank, Ace low
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// Ranks lists every rank in ascending order
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King}

const rankCodes = "A23456789TJQK"

// Value returns the position of the rank, 1 for Ace through 13 for King
func (r Rank) Value() int {
	return int(r)
}

// Next returns the rank directly above r. King has no successor.
func (r Rank) Next() (Rank, bool) {
	if r < Ace || r >= King {
		return 0, false
	}
	return r + 1, true
}

// Follows reports whether r is exactly one rank above prev
func (r Rank) Follows(prev Rank) bool {
	next, ok := prev.Next()
	return ok && next == r
}

// String returns the single character rank code
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return string(rankCodes[r.Value()-1])
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// Score returns the point value of the card when it is not part of a meld
func (c Card) Score() int {
	switch c.Rank {
	case Ten, Jack, Queen, King:
		return 10
	default:
		return c.Rank.Value()
	}
}

// String returns the rank code followed by the suit symbol, e.g. "T♥"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}
