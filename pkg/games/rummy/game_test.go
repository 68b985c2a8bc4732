package rummy

import (
	"testing"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/fadedpez/ginrummy/pkg/games/common"
	"github.com/stretchr/testify/suite"
)

type GameTestSuite struct {
	suite.Suite
	game *Game
}

func TestGameSuite(t *testing.T) {
	suite.Run(t, new(GameTestSuite))
}

func (s *GameTestSuite) SetupTest() {
	s.game = NewGame("channel1",
		common.NewPlayer("player1", "Blondie"),
		common.NewPlayer("", "Tuco"),
		cards.NewDeck(),
	)
}

func (s *GameTestSuite) TestNewGame() {
	s.NotEmpty(s.game.ID)
	s.Equal("channel1", s.game.ChannelID)
	s.Equal(StateWaiting, s.game.State)
	s.Zero(s.game.Player.Hand.Len())
	s.Zero(s.game.Dealer.Hand.Len())
}

func (s *GameTestSuite) TestDealAlternates() {
	// Execute
	err := s.game.Deal(DefaultHandSize)

	// Assert
	s.Require().NoError(err)
	s.Equal(StateDealt, s.game.State)
	s.Equal(10, s.game.Player.Hand.Len())
	s.Equal(10, s.game.Dealer.Hand.Len())
	s.Equal(32, s.game.Deck.Len(), "Dealing should consume 20 cards")
	s.False(s.game.DealtAt.IsZero())

	// unshuffled deck deals from the top: K♠ to the player, Q♠ to the dealer, ...
	s.Equal(cards.Card{Suit: cards.Spades, Rank: cards.King}, s.game.Player.Hand.Cards[0])
	s.Equal(cards.Card{Suit: cards.Spades, Rank: cards.Queen}, s.game.Dealer.Hand.Cards[0])
	s.Equal(cards.Card{Suit: cards.Spades, Rank: cards.Jack}, s.game.Player.Hand.Cards[1])
}

func (s *GameTestSuite) TestDealTwice() {
	s.Require().NoError(s.game.Deal(3))

	err := s.game.Deal(3)

	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *GameTestSuite) TestDealInvalidHandSize() {
	err := s.game.Deal(0)

	s.True(types.IsGameError(err, types.ErrInvalidArgument))
	s.Equal(StateWaiting, s.game.State)
}

func (s *GameTestSuite) TestDealFromShortDeck() {
	deck := cards.NewDeck()
	for deck.Len() > 5 {
		deck.Deal()
	}
	game := NewGame("channel1", common.NewPlayer("", "a"), common.NewPlayer("", "b"), deck)

	err := game.Deal(DefaultHandSize)

	s.Require().Error(err)
	s.True(types.IsGameError(err, types.ErrDeckEmpty), "Running out of cards should be a DECK_EMPTY error")
	s.Equal(StateAborted, game.State)
	s.Equal(3, game.Player.Hand.Len())
	s.Equal(2, game.Dealer.Hand.Len())

	_, err = game.Result()
	s.True(types.IsGameError(err, types.ErrInvalidState))
}

func (s *GameTestSuite) TestString() {
	s.Require().NoError(s.game.Deal(2))

	s.Equal("Hand: K♠ J♠ \nHand: Q♠ T♠ \n", s.game.String())
}

func (s *GameTestSuite) TestResult() {
	// unshuffled: player gets K♠ J♠ 9♠ 7♠ 5♠ 3♠ A♠ Q♥ T♥ 8♥,
	// dealer gets Q♠ T♠ 8♠ 6♠ 4♠ 2♠ K♥ J♥ 9♥ 7♥
	s.Require().NoError(s.game.Deal(DefaultHandSize))

	round, err := s.game.Result()

	s.Require().NoError(err)
	s.Equal(s.game.ID, round.ID)
	s.Equal("channel1", round.ChannelID)
	s.Equal(DefaultHandSize, round.HandSize)
	s.Require().Len(round.Players, 2)

	player := round.Player("player1")
	s.Require().NotNil(player)
	s.Equal("Blondie", player.PlayerName)
	s.Equal(0, player.Seat)
	s.Equal(73, player.Score)
	s.Len(player.Cards, 10)
	s.Equal("K♠", player.Cards[0])
	s.Zero(player.SetMelds)
	s.Zero(player.RunMelds)

	dealer := round.Players[1]
	s.Equal("Tuco", dealer.PlayerName)
	s.Equal(76, dealer.Score)
	s.Equal(entities.ResultWin, player.Result)
	s.Equal(entities.ResultLose, dealer.Result)
}

func (s *GameTestSuite) TestResultCountsMelds() {
	player := common.NewPlayer("p", "p")
	for _, c := range []cards.Card{
		{Suit: cards.Clubs, Rank: cards.Ace}, {Suit: cards.Clubs, Rank: cards.Two}, {Suit: cards.Clubs, Rank: cards.Three},
		{Suit: cards.Clubs, Rank: cards.Five}, {Suit: cards.Clubs, Rank: cards.Six}, {Suit: cards.Clubs, Rank: cards.Seven},
		{Suit: cards.Hearts, Rank: cards.Nine}, {Suit: cards.Spades, Rank: cards.Nine}, {Suit: cards.Diamonds, Rank: cards.Nine},
	} {
		player.AddCard(c)
	}
	dealer := common.NewPlayer("d", "d")
	dealer.AddCard(cards.Card{Suit: cards.Hearts, Rank: cards.King})

	game := NewGame("c", player, dealer, cards.NewDeck())
	game.State = StateDealt

	round, err := game.Result()

	s.Require().NoError(err)
	s.Equal(2, round.Players[0].RunMelds)
	s.Equal(1, round.Players[0].SetMelds)
	s.Zero(round.Players[0].Score)
	s.Empty(round.Players[0].Deadwood)
	s.Equal([]string{"K♥"}, round.Players[1].Deadwood)
	s.Equal(entities.ResultWin, round.Players[0].Result)
}

func (s *GameTestSuite) TestResultPush() {
	player := common.NewPlayer("p", "p")
	player.AddCard(cards.Card{Suit: cards.Hearts, Rank: cards.King})
	dealer := common.NewPlayer("d", "d")
	dealer.AddCard(cards.Card{Suit: cards.Spades, Rank: cards.Ten})

	game := NewGame("c", player, dealer, cards.NewDeck())
	game.State = StateDealt

	round, err := game.Result()

	s.Require().NoError(err)
	s.Equal(entities.ResultPush, round.Players[0].Result)
	s.Equal(entities.ResultPush, round.Players[1].Result)
}

func (s *GameTestSuite) TestCountRuns() {
	s.Zero(countRuns(nil))
	s.Equal(1, countRuns([]cards.Card{{Rank: cards.Ace}, {Rank: cards.Two}, {Rank: cards.Three}}))
	s.Equal(2, countRuns([]cards.Card{
		{Rank: cards.Ace}, {Rank: cards.Two}, {Rank: cards.Three},
		{Rank: cards.Nine}, {Rank: cards.Ten}, {Rank: cards.Jack},
	}))
}
