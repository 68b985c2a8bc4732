package common

import (
	"testing"

	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type PlayerTestSuite struct {
	suite.Suite
	player *Player
}

func TestPlayerSuite(t *testing.T) {
	suite.Run(t, new(PlayerTestSuite))
}

func (s *PlayerTestSuite) SetupTest() {
	s.player = NewPlayer("test_player", "tester")
}

func (s *PlayerTestSuite) TestNewPlayer() {
	// Execute
	player := NewPlayer("test_id", "tuco")

	// Assert
	s.NotNil(player, "Player should not be nil")
	s.Equal("test_id", player.ID, "Player should have correct ID")
	s.Equal("tuco", player.Username)
	s.Require().NotNil(player.Hand, "New player should own a hand")
	s.Zero(player.Hand.Len(), "New player should have empty hand")
	s.Zero(player.Score(), "New player should have zero score")
}

func (s *PlayerTestSuite) TestNewPlayerGeneratesID() {
	player := NewPlayer("", "dealer")

	_, err := uuid.Parse(player.ID)
	s.NoError(err, "Generated ID should be a UUID")
	s.NotEqual(player.ID, NewPlayer("", "dealer").ID)
}

func (s *PlayerTestSuite) TestAddCard() {
	card1 := cards.Card{Suit: cards.Hearts, Rank: cards.Ace}
	card2 := cards.Card{Suit: cards.Spades, Rank: cards.King}

	s.player.AddCard(card1)
	s.Equal(1, s.player.Hand.Len(), "Hand should have one card")
	s.Equal(card1, s.player.Hand.Cards[0], "First card should match added card")

	s.player.AddCard(card2)
	s.Equal(2, s.player.Hand.Len(), "Hand should have two cards")
	s.Equal(card2, s.player.Hand.Cards[1], "Second card should match added card")
	s.Equal(11, s.player.Score())
}

func (s *PlayerTestSuite) TestPlayerStateIndependence() {
	player1 := NewPlayer("player1", "one")
	player2 := NewPlayer("player2", "two")

	player1.AddCard(cards.Card{Suit: cards.Hearts, Rank: cards.Ace})
	player2.AddCard(cards.Card{Suit: cards.Spades, Rank: cards.King})

	s.NotEqual(player1.Hand.Cards, player2.Hand.Cards, "Players should have different hands")
	s.NotEqual(player1.Score(), player2.Score(), "Players should have different scores")
}
