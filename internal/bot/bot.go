package bot

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bwmarrin/discordgo"
	"github.com/fadedpez/ginrummy/internal/config"
	"github.com/fadedpez/ginrummy/internal/discord"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/fadedpez/ginrummy/pkg/games/rummy"
	"github.com/fadedpez/ginrummy/pkg/repositories/round"
	"github.com/fadedpez/ginrummy/pkg/services/statistics"
)

// Bot represents the Discord bot and its dependencies
type Bot struct {
	config     *config.Config
	session    discord.SessionHandler
	commands   []*discordgo.ApplicationCommand
	rounds     round.Repository
	stats      *statistics.Service
	logger     *logging.Logger
	newDeck    func() *cards.Deck
	shutdownWg sync.WaitGroup
}

// New creates a new instance of Bot and registers its interaction handler
func New(cfg *config.Config, session discord.SessionHandler, rounds round.Repository, logger *logging.Logger) *Bot {
	if logger == nil {
		logger = logging.Default
	}

	bot := &Bot{
		config:   cfg,
		session:  session,
		commands: make([]*discordgo.ApplicationCommand, 0),
		rounds:   rounds,
		stats:    statistics.NewService(rounds, rummy.DealerID),
		logger:   logger,
		newDeck:  shuffledDeck,
	}

	session.AddHandler(bot.handleInteractionCreate)

	return bot
}

func shuffledDeck() *cards.Deck {
	deck := cards.NewDeck()
	deck.Shuffle()
	return deck
}

// Start connects to Discord and registers slash commands
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("failed to open Discord connection: %w", err)
	}

	if err := b.registerCommands(); err != nil {
		return fmt.Errorf("failed to register commands: %w", err)
	}

	b.logger.Info("Bot started with %d commands", len(b.commands))
	return nil
}

// Shutdown gracefully shuts down the bot
func (b *Bot) Shutdown() {
	// Commands registered in development are scoped to the test guild
	if b.config.IsDevelopment() {
		if err := b.cleanupCommands(); err != nil {
			b.logger.Error("Error removing commands: %v", err)
		}
	}

	// Wait for any ongoing interactions to complete
	b.shutdownWg.Wait()

	if err := b.session.Close(); err != nil {
		b.logger.Error("Error closing Discord session: %v", err)
	}
}

func (b *Bot) registerCommands() error {
	for _, cmd := range Commands {
		created, err := b.session.ApplicationCommandCreate(b.config.AppID, b.config.GuildID, cmd)
		if err != nil {
			return fmt.Errorf("cannot create '%s' command: %w", cmd.Name, err)
		}
		b.commands = append(b.commands, created)
	}
	return nil
}

func (b *Bot) cleanupCommands() error {
	var errs []error
	for _, cmd := range b.commands {
		if err := b.session.ApplicationCommandDelete(b.config.AppID, b.config.GuildID, cmd.ID); err != nil {
			errs = append(errs, fmt.Errorf("cannot delete '%s' command: %w", cmd.Name, err))
		}
	}
	b.commands = b.commands[:0]
	return errors.Join(errs...)
}

// handleInteractionCreate handles Discord interaction events
func (b *Bot) handleInteractionCreate(_ *discordgo.Session, i *discordgo.InteractionCreate) {
	if i.Type != discordgo.InteractionApplicationCommand {
		return
	}

	b.shutdownWg.Add(1)
	defer b.shutdownWg.Done()

	b.handleSlashCommand(b.session, i)
}
