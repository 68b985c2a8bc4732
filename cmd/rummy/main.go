package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"

	"github.com/fadedpez/ginrummy/internal/config"
	"github.com/fadedpez/ginrummy/internal/logging"
	"github.com/fadedpez/ginrummy/pkg/cards"
	"github.com/fadedpez/ginrummy/pkg/games/common"
	"github.com/fadedpez/ginrummy/pkg/games/rummy"
	"github.com/fadedpez/ginrummy/pkg/repositories/round"
	"github.com/pterm/pterm"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		pterm.Error.Printfln("Error loading config: %v", err)
		os.Exit(1)
	}

	handSize := flag.Int("cards", cfg.HandSize, "Cards in each hand")
	seed := flag.Uint64("seed", 0, "Shuffle seed, 0 for a random shuffle")
	name := flag.String("name", "Player", "Your name")
	plain := flag.Bool("plain", false, "Print only the hands")
	noSave := flag.Bool("no-save", false, "Don't store the round")
	flag.Parse()

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logging.INFO
	}
	logger := logging.NewLoggerWithWriter(level, os.Stderr)

	var opts []cards.DeckOption
	if *seed != 0 {
		opts = append(opts, cards.WithShuffler(rand.New(rand.NewPCG(*seed, *seed))))
	}
	deck := cards.NewDeck(opts...)
	deck.Shuffle()

	game := rummy.NewGame("cli", common.NewPlayer("", *name), common.NewPlayer(rummy.DealerID, rummy.DealerName), deck)
	if err := game.Deal(*handSize); err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	fmt.Print(game.String())
	if *plain {
		return
	}

	result, err := game.Result()
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}

	if err := printRound(result); err != nil {
		logger.Error("Error rendering round: %v", err)
	}

	if *noSave {
		return
	}

	ctx := context.Background()
	repo, err := round.Open(ctx, cfg, logger)
	if err != nil {
		logger.LogError(err)
		os.Exit(1)
	}
	defer repo.Close()

	if err := repo.SaveRound(ctx, result); err != nil {
		logger.LogError(err)
		return
	}
	pterm.Success.Printfln("Saved round %s", result.ID)
}
