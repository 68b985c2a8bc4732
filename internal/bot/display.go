package bot

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/ginrummy/pkg/entities"
	"github.com/fadedpez/ginrummy/pkg/services/statistics"
)

const (
	colorWin  = 0x2ecc71
	colorLose = 0xe74c3c
	colorPush = 0x95a5a6
)

func roundEmbed(round *entities.Round) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       "🃏 Gin Rummy",
		Description: roundOutcome(round),
		Color:       colorPush,
		Fields:      make([]*discordgo.MessageEmbedField, 0, len(round.Players)),
		Footer:      &discordgo.MessageEmbedFooter{Text: "Round " + round.ID},
	}

	if len(round.Players) > 0 {
		switch round.Players[0].Result {
		case entities.ResultWin:
			embed.Color = colorWin
		case entities.ResultLose:
			embed.Color = colorLose
		}
	}

	for _, p := range round.Players {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (%s)", p.PlayerName, p.Result),
			Value: playerSummary(p),
		})
	}

	return embed
}

func roundOutcome(round *entities.Round) string {
	for _, p := range round.Players {
		if p.Result.IsWin() {
			return fmt.Sprintf("**%s** wins with %d deadwood", p.PlayerName, p.Score)
		}
	}
	if len(round.Players) > 0 {
		return fmt.Sprintf("Push at %d deadwood", round.Players[0].Score)
	}
	return "No hands were dealt"
}

func playerSummary(p *entities.PlayerResult) string {
	deadwood := "none"
	if len(p.Deadwood) > 0 {
		deadwood = strings.Join(p.Deadwood, " ")
	}
	return fmt.Sprintf("Hand: %s\nDeadwood: %s (%d)\nMelds: %d sets, %d runs",
		strings.Join(p.Cards, " "), deadwood, p.Score, p.SetMelds, p.RunMelds)
}

func summaryEmbed(stats *entities.PlayerStatistics) *discordgo.MessageEmbed {
	return &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📊 %s's Gin Rummy Stats", stats.PlayerName),
		Color: colorWin,
		Fields: []*discordgo.MessageEmbedField{
			{Name: "Rounds", Value: fmt.Sprintf("%d", stats.RoundsDealt), Inline: true},
			{Name: "W/L/P", Value: fmt.Sprintf("%d/%d/%d", stats.Wins, stats.Losses, stats.Pushes), Inline: true},
			{Name: "Win Rate", Value: fmt.Sprintf("%.1f%%", stats.WinRate()), Inline: true},
			{Name: "Average Deadwood", Value: fmt.Sprintf("%.1f", stats.AverageScore()), Inline: true},
			{Name: "Best Deadwood", Value: fmt.Sprintf("%d", stats.BestScore), Inline: true},
			{Name: "Melds", Value: fmt.Sprintf("%d sets, %d runs", stats.SetMelds, stats.RunMelds), Inline: true},
		},
	}
}

func leaderboardEmbed(board *statistics.Leaderboard) *discordgo.MessageEmbed {
	var sb strings.Builder
	for _, p := range board.Players {
		rankEmoji := ""
		switch p.Rank {
		case 1:
			rankEmoji = "👑 "
		case 2:
			rankEmoji = "🥈 "
		case 3:
			rankEmoji = "🥉 "
		default:
			rankEmoji = fmt.Sprintf("%d. ", p.Rank)
		}
		fmt.Fprintf(&sb, "%s**%s** %d wins, %.1f avg deadwood (%d rounds)\n",
			rankEmoji, p.PlayerName, p.Wins, p.AverageScore(), p.RoundsDealt)
	}

	return &discordgo.MessageEmbed{
		Title:       "🏆 Gin Rummy Leaderboard",
		Description: sb.String(),
		Color:       colorWin,
		Footer: &discordgo.MessageEmbedFooter{
			Text: fmt.Sprintf("%d players across %d rounds", board.TotalPlayers, board.RoundsCounted),
		},
	}
}
