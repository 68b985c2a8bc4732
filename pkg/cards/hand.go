package cards

import "strings"

// Hand represents the cards held by a player, in the order they were dealt
type Hand struct {
	Cards []Card
}

// NewHand creates an empty hand
func NewHand() *Hand {
	return &Hand{
		Cards: make([]Card, 0),
	}
}

// AddCard appends a card to the hand
func (h *Hand) AddCard(card Card) {
	h.Cards = append(h.Cards, card)
}

// Len returns the number of cards in the hand
func (h *Hand) Len() int {
	return len(h.Cards)
}

// SetMelds returns the cards forming each set meld, keyed by rank
func (h *Hand) SetMelds() map[Rank][]Card {
	return findSets(h.Cards)
}

// RunMelds returns the cards forming run melds, keyed by suit. Multiple runs
// in the same suit are concatenated.
func (h *Hand) RunMelds() map[Suit][]Card {
	return findRuns(h.Cards)
}

// Melded returns every card that belongs to at least one set or run meld
func (h *Hand) Melded() map[Card]struct{} {
	melded := make(map[Card]struct{})
	for _, set := range h.SetMelds() {
		for _, c := range set {
			melded[c] = struct{}{}
		}
	}
	for _, run := range h.RunMelds() {
		for _, c := range run {
			melded[c] = struct{}{}
		}
	}
	return melded
}

// IsMelded reports whether card is part of any meld in the hand
func (h *Hand) IsMelded(card Card) bool {
	_, ok := h.Melded()[card]
	return ok
}

// Deadwood returns the cards not part of any meld, in hand order
func (h *Hand) Deadwood() []Card {
	melded := h.Melded()
	deadwood := make([]Card, 0, len(h.Cards))
	for _, c := range h.Cards {
		if _, ok := melded[c]; !ok {
			deadwood = append(deadwood, c)
		}
	}
	return deadwood
}

// Score sums the point value of every card outside a meld
func (h *Hand) Score() int {
	score := 0
	for _, c := range h.Deadwood() {
		score += c.Score()
	}
	return score
}

// String renders each card followed by a space
func (h *Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards {
		sb.WriteString(c.String())
		sb.WriteByte(' ')
	}
	return sb.String()
}
