package main

import (
	"testing"

	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
)

func testRound() *entities.Round {
	return &entities.Round{
		ID: "r1",
		Players: []*entities.PlayerResult{
			{PlayerName: "Blondie", Cards: []string{"3♣", "4♣", "5♣", "9♥"}, Deadwood: []string{"9♥"}, Score: 9, RunMelds: 1, Result: entities.ResultWin},
			{PlayerName: "Tuco", Cards: []string{"K♠", "Q♥", "2♦", "7♣"}, Deadwood: []string{"K♠", "Q♥", "2♦", "7♣"}, Score: 29, Result: entities.ResultLose},
		},
	}
}

func TestHandPanel(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	round := testRound()

	winner := handPanel(round.Players[0]).Data
	assert.Contains(t, winner, "Blondie")
	assert.Contains(t, winner, "Winner")
	assert.Contains(t, winner, "3♣ 4♣ 5♣ 9♥")
	assert.Contains(t, winner, "Deadwood: 9♥")
	assert.Contains(t, winner, "Score: 9")
	assert.Contains(t, winner, "Melds: 0 sets, 1 runs")

	loser := handPanel(round.Players[1]).Data
	assert.Contains(t, loser, "Loser")
	assert.Contains(t, loser, "Score: 29")
}

func TestOutcomePanel(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	round := testRound()
	assert.Contains(t, outcomePanel(round).Data, "Blondie wins with 9 deadwood")

	for _, p := range round.Players {
		p.Result = entities.ResultPush
		p.Score = 0
	}
	assert.Contains(t, outcomePanel(round).Data, "Push at 0 deadwood")
}
