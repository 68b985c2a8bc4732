package common

import (
	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/google/uuid"
)

// Player represents a player holding exactly one hand
type Player struct {
	ID       string
	Username string
	Hand     *cards.Hand
}

// NewPlayer creates a player with an empty hand. An empty id gets a generated one.
func NewPlayer(id, username string) *Player {
	if id == "" {
		id = uuid.New().String()
	}
	return &Player{
		ID:       id,
		Username: username,
		Hand:     cards.NewHand(),
	}
}

// AddCard adds a card to the player's hand
func (p *Player) AddCard(card cards.Card) {
	p.Hand.AddCard(card)
}

// Score returns the deadwood score of the player's hand
func (p *Player) Score() int {
	return p.Hand.Score()
}
