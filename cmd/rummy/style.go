package main

import (
	"strings"

	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/pterm/pterm"
)

// handPanel boxes one player's hand with its deadwood and meld counts
func handPanel(p *entities.PlayerResult) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	var result string
	switch p.Result {
	case entities.ResultWin:
		result = pterm.LightGreen("Winner")
	case entities.ResultLose:
		result = pterm.LightRed("Loser")
	default:
		result = pterm.LightYellow("Push")
	}

	deadwood := "none"
	if len(p.Deadwood) > 0 {
		deadwood = strings.Join(p.Deadwood, " ")
	}

	hand := pterm.BgGreen.Sprint(" " + strings.Join(p.Cards, " ") + " ")
	return pterm.Panel{Data: pbox.WithTitle(p.PlayerName).WithTitleTopLeft().Sprintf(
		"%s\n%s\nDeadwood: %s\nScore: %d\nMelds: %d sets, %d runs",
		result, hand, deadwood, p.Score, p.SetMelds, p.RunMelds)}
}

// outcomePanel announces the winner or the push
func outcomePanel(round *entities.Round) pterm.Panel {
	pbox := pterm.DefaultBox.WithHorizontalPadding(4).WithTopPadding(1).WithBottomPadding(1)

	outcome := ""
	for _, p := range round.Players {
		if p.Result.IsWin() {
			outcome = pterm.Sprintfln("%s wins with %d deadwood", pterm.LightCyan(p.PlayerName), p.Score)
		}
	}
	if outcome == "" && len(round.Players) > 0 {
		outcome = pterm.Sprintfln("Push at %d deadwood", round.Players[0].Score)
	}

	return pterm.Panel{Data: pbox.WithTitle(pterm.LightYellow("|RESULT|")).WithTitleTopCenter().Sprint(outcome)}
}

// printRound renders every hand side by side above the outcome
func printRound(round *entities.Round) error {
	hands := make([]pterm.Panel, 0, len(round.Players))
	for _, p := range round.Players {
		hands = append(hands, handPanel(p))
	}

	return pterm.DefaultPanel.WithPanels([][]pterm.Panel{
		hands,
		{outcomePanel(round)},
	}).Render()
}
