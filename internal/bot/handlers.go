package bot

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/ginrummy/internal/discord"
	"github.com/fadedpez/ginrummy/internal/types"
	"github.com/fadedpez/ginrummy/pkg/games/common"
	"github.com/fadedpez/ginrummy/pkg/games/rummy"
)

const leaderboardSize = 10

// handleSlashCommand handles all slash commands
func (b *Bot) handleSlashCommand(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	name := i.ApplicationCommandData().Name
	switch name {
	case CommandRummy:
		b.handleRummy(s, i)
	case CommandRummyStats:
		b.handleRummyStats(s, i)
	default:
		b.respondError(s, i, types.NewGameError(types.ErrInvalidCommand, fmt.Sprintf("Unknown command: %s", name)))
	}
}

// handleRummy deals a round between the caller and Tuco and stores the result
func (b *Bot) handleRummy(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	user := interactionUser(i)
	if user == nil {
		b.respondError(s, i, types.NewGameError(types.ErrInvalidArgument, "Could not tell who asked for the deal"))
		return
	}

	handSize := b.config.HandSize
	if opt := findOption(i, optionCards); opt != nil {
		handSize = int(opt.IntValue())
	}

	game := rummy.NewGame(
		i.ChannelID,
		common.NewPlayer(user.ID, displayName(user)),
		common.NewPlayer(rummy.DealerID, rummy.DealerName),
		b.newDeck(),
	)

	if err := game.Deal(handSize); err != nil {
		b.respondError(s, i, err)
		return
	}

	result, err := game.Result()
	if err != nil {
		b.respondError(s, i, err)
		return
	}

	// A failed save still shows the deal
	if err := b.rounds.SaveRound(context.Background(), result); err != nil {
		b.logger.LogError(err)
	}

	content := "```\n" + game.String() + "```"
	b.respond(s, i, discord.NewEmbedResponse(content, roundEmbed(result)))
}

// handleRummyStats shows the caller's summary or the channel leaderboard
func (b *Bot) handleRummyStats(s discord.SessionHandler, i *discordgo.InteractionCreate) {
	ctx := context.Background()

	if opt := findOption(i, optionLeaderboard); opt != nil && opt.BoolValue() {
		board, err := b.stats.ChannelLeaderboard(ctx, i.ChannelID, leaderboardSize)
		if err != nil {
			b.respondError(s, i, err)
			return
		}
		if len(board.Players) == 0 {
			b.respond(s, i, discord.NewEphemeralResponse("No rounds have been dealt in this channel yet. Try /rummy"))
			return
		}
		b.respond(s, i, discord.NewEmbedResponse("", leaderboardEmbed(board)))
		return
	}

	user := interactionUser(i)
	if user == nil {
		b.respondError(s, i, types.NewGameError(types.ErrInvalidArgument, "Could not tell whose statistics to show"))
		return
	}

	stats, err := b.stats.PlayerSummary(ctx, user.ID)
	if err != nil {
		b.respondError(s, i, err)
		return
	}
	if stats.RoundsDealt == 0 {
		b.respond(s, i, discord.NewEphemeralResponse("You haven't been dealt a hand yet. Try /rummy"))
		return
	}

	b.respond(s, i, discord.NewEmbedResponse("", summaryEmbed(stats)))
}

func (b *Bot) respond(s discord.SessionHandler, i *discordgo.InteractionCreate, r *discord.Response) {
	if err := discord.SendResponse(s, i, r); err != nil {
		b.logger.Error("Failed to respond to interaction: %v", err)
	}
}

func (b *Bot) respondError(s discord.SessionHandler, i *discordgo.InteractionCreate, err error) {
	b.logger.LogError(err)
	if err := discord.SendErrorResponse(s, i, err); err != nil {
		b.logger.Error("Failed to send error response: %v", err)
	}
}

// interactionUser returns the invoking user in guilds and in DMs
func interactionUser(i *discordgo.InteractionCreate) *discordgo.User {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User
	}
	return i.User
}

func displayName(u *discordgo.User) string {
	if u.GlobalName != "" {
		return u.GlobalName
	}
	return u.Username
}

func findOption(i *discordgo.InteractionCreate, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, opt := range i.ApplicationCommandData().Options {
		if opt.Name == name {
			return opt
		}
	}
	return nil
}
