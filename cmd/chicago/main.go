package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/fadedpez/chicago/internal/config"
	"github.com/fadedpez/chicago/internal/console"
	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/pkg/actors"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/repositories/history"
	"github.com/fadedpez/chicago/pkg/services/chicago"
	"github.com/fadedpez/chicago/pkg/services/statistics"
)

func main() {
	verbose := flag.Bool("verbose", false, "Show every player's hand as it is dealt and redrawn")
	leaderboardSize := flag.Int("leaderboard", 10, "Players shown on the leaderboard after the game, 0 to skip")
	flag.Parse()

	if err := run(*verbose, *leaderboardSize); err != nil {
		log.Fatalf("chicago: %v", err)
	}
}

func run(verbose bool, leaderboardSize int) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	level, err := logging.ParseLevel(cfg.LogLevel)
	if err != nil {
		return err
	}
	logger := logging.NewLoggerWithOutput(os.Stderr, level)

	repo := openRepository(cfg, logger)
	defer func() {
		if err := repo.Close(); err != nil {
			logger.Error("Failed to close repository: %v", err)
		}
	}()

	seats, err := actors.DefaultRegistry().FromTable(cfg.Table, os.Stdin, os.Stdout, logger)
	if err != nil {
		return err
	}

	var deckOpts []entities.DeckOption
	if cfg.Seed != 0 {
		deckOpts = append(deckOpts, entities.WithSeed(cfg.Seed))
	}
	deck, err := entities.NewDeck(deckOpts...)
	if err != nil {
		return err
	}

	rules := cfg.Table.Rules
	printer := console.NewPrinter(os.Stdout, verbose)
	game, err := chicago.NewGame(seats, deck,
		chicago.WithGameRules(chicago.GameRules{
			WinPoints:     rules.WinPoints,
			MaxRoundIndex: rules.MaxRoundIndex,
			Round: chicago.Rules{
				OutplayAward:    rules.OutplayAward,
				MaxPlayAttempts: rules.MaxPlayAttempts,
			},
		}),
		chicago.WithGameSink(chicago.MultiSink{printer, chicago.LogSink(logger)}),
		chicago.WithGameLogger(logger),
		chicago.WithRepository(repo),
	)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logger.Info("Starting game %s with %d players", game.ID, len(seats))
	result, err := game.Run(ctx)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Println()
			printer.PrintStandings(game.Standings())
			return nil
		}
		return err
	}

	printer.PrintStandings(result.Standings)
	if result.FailedRounds > 0 {
		logger.Warn("%d rounds ran out of cards and were skipped", result.FailedRounds)
	}

	if leaderboardSize > 0 {
		board, err := statistics.NewService(repo).GetLeaderboard(context.Background(), 1, leaderboardSize)
		if err != nil {
			logger.LogError(err)
			return nil
		}
		printer.PrintLeaderboard(board)
	}
	return nil
}

// openRepository picks the round history backend. A backend that fails to
// open falls back to memory so the game can still be played.
func openRepository(cfg *config.Config, logger *logging.Logger) history.Repository {
	switch cfg.Storage {
	case config.StorageSQLite:
		logger.Info("Initializing SQLite round history at %s", cfg.SQLiteDSN)
		repo, err := history.NewSQLiteRepository(cfg.SQLiteDSN, logger)
		if err == nil {
			return repo
		}
		logger.Error("Failed to initialize SQLite repository: %v", err)
	case config.StorageFile:
		logger.Info("Loading round history from %s", cfg.HistoryPath)
		repo, err := history.NewFileRepository(cfg.HistoryPath)
		if err == nil {
			return repo
		}
		logger.Error("Failed to initialize file repository: %v", err)
	default:
		logger.Info("Using in-memory round history (data will be lost on exit)")
		return history.NewMemoryRepository()
	}

	logger.Warn("Falling back to in-memory round history")
	return history.NewMemoryRepository()
}
