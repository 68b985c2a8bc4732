package rummy

import (
	"fmt"
	"strings"
	"time"

	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/fadedpez/ginrummy/pkg/games/common"
	"github.com/google/uuid"
)

// DefaultHandSize is the number of cards each player is dealt
const DefaultHandSize = 10

// The house dealer sits in every round
const (
	DealerID   = "tuco"
	DealerName = "Tuco"
)

type GameState string

const (
	StateWaiting GameState = "waiting"
	StateDealt   GameState = "dealt"
	StateAborted GameState = "aborted"
)

// Game is a single two-handed deal
type Game struct {
	ID        string
	ChannelID string
	Player    *common.Player
	Dealer    *common.Player
	Deck      *cards.Deck
	State     GameState
	HandSize  int
	DealtAt   time.Time
}

// NewGame creates a game between player and dealer drawing from deck
func NewGame(channelID string, player, dealer *common.Player, deck *cards.Deck) *Game {
	return &Game{
		ID:        uuid.New().String(),
		ChannelID: channelID,
		Player:    player,
		Dealer:    dealer,
		Deck:      deck,
		State:     StateWaiting,
	}
}

// Deal gives handSize cards to each player, alternating and starting with the player
func (g *Game) Deal(handSize int) error {
	if g.State != StateWaiting {
		return types.NewGameError(types.ErrInvalidState, fmt.Sprintf("Cards were already dealt (%s)", g.State))
	}
	if handSize < 1 {
		return types.NewGameError(types.ErrInvalidArgument, fmt.Sprintf("Hand size must be positive, got %d", handSize))
	}

	for i := 0; i < handSize; i++ {
		for _, p := range []*common.Player{g.Player, g.Dealer} {
			card, ok := g.Deck.Deal()
			if !ok {
				g.State = StateAborted
				return types.NewGameError(types.ErrDeckEmpty,
					fmt.Sprintf("The deck ran out after %d of %d cards", g.Player.Hand.Len()+g.Dealer.Hand.Len(), 2*handSize))
			}
			p.AddCard(card)
		}
	}

	g.HandSize = handSize
	g.DealtAt = time.Now().UTC()
	g.State = StateDealt
	return nil
}

// Result summarises a dealt game. The lower deadwood score wins; equal scores push.
func (g *Game) Result() (*entities.Round, error) {
	if g.State != StateDealt {
		return nil, types.NewGameError(types.ErrInvalidState, "Cards have not been dealt")
	}

	player := playerResult(g.Player, 0)
	dealer := playerResult(g.Dealer, 1)

	switch {
	case player.Score < dealer.Score:
		player.Result, dealer.Result = entities.ResultWin, entities.ResultLose
	case player.Score > dealer.Score:
		player.Result, dealer.Result = entities.ResultLose, entities.ResultWin
	default:
		player.Result, dealer.Result = entities.ResultPush, entities.ResultPush
	}

	return &entities.Round{
		ID:        g.ID,
		ChannelID: g.ChannelID,
		HandSize:  g.HandSize,
		DealtAt:   g.DealtAt,
		Players:   []*entities.PlayerResult{player, dealer},
	}, nil
}

func playerResult(p *common.Player, seat int) *entities.PlayerResult {
	runs := 0
	for _, run := range p.Hand.RunMelds() {
		runs += countRuns(run)
	}

	return &entities.PlayerResult{
		PlayerID:   p.ID,
		PlayerName: p.Username,
		Seat:       seat,
		Cards:      cardStrings(p.Hand.Cards),
		Deadwood:   cardStrings(p.Hand.Deadwood()),
		Score:      p.Hand.Score(),
		SetMelds:   len(p.Hand.SetMelds()),
		RunMelds:   runs,
	}
}

// countRuns splits the concatenated runs of one suit back into separate runs
func countRuns(run []cards.Card) int {
	if len(run) == 0 {
		return 0
	}
	count := 1
	for i := 1; i < len(run); i++ {
		if !run[i].Rank.Follows(run[i-1].Rank) {
			count++
		}
	}
	return count
}

func cardStrings(cs []cards.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}

// String renders both hands, one per line
func (g *Game) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Hand: %s\n", g.Player.Hand)
	fmt.Fprintf(&sb, "Hand: %s\n", g.Dealer.Hand)
	return sb.String()
}
