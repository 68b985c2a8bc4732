package bot

import (
	"github.com/bwmarrin/discordgo"
)

const (
	CommandRummy      = "rummy"
	CommandRummyStats = "rummystats"

	optionCards       = "cards"
	optionLeaderboard = "leaderboard"
)

var minHandSize = 1.0

// Commands defines all slash commands for the bot
var Commands = []*discordgo.ApplicationCommand{
	{
		Name:        CommandRummy,
		Description: "Deal a hand of gin rummy against Tuco",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        optionCards,
				Description: "Cards in each hand",
				MinValue:    &minHandSize,
				MaxValue:    26,
			},
		},
	},
	{
		Name:        CommandRummyStats,
		Description: "Show your gin rummy statistics",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        optionLeaderboard,
				Description: "Show the channel leaderboard instead",
			},
		},
	},
}
