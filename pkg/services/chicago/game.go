package chicago

import (
	"context"
	"sort"

	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/repositories/history"
	"github.com/google/uuid"
)

const (
	MinPlayers = 2
	MaxPlayers = 10
)

// GameRules controls when the game loop stops and how rounds are played
type GameRules struct {
	WinPoints     int
	MaxRoundIndex int
	Round         Rules
}

// DefaultGameRules returns the standard 52 point game
func DefaultGameRules() GameRules {
	return GameRules{
		WinPoints:     52,
		MaxRoundIndex: 30,
		Round:         DefaultRoundRules(),
	}
}

// GameOption configures a Game
type GameOption func(*Game)

// WithGameRules replaces the default rules
func WithGameRules(rules GameRules) GameOption {
	return func(g *Game) { g.rules = rules }
}

// WithGameSink reports every game and round event to sink
func WithGameSink(sink EventSink) GameOption {
	return func(g *Game) { g.sink = sink }
}

// WithGameLogger sets the logger used by the game and its rounds
func WithGameLogger(logger *logging.Logger) GameOption {
	return func(g *Game) { g.logger = logger }
}

// WithRepository saves every completed round to repo
func WithRepository(repo history.Repository) GameOption {
	return func(g *Game) { g.repo = repo }
}

// Standing is a player's position after the game
type Standing struct {
	Player string
	Points int
}

// GameResult summarises a finished game
type GameResult struct {
	ID           string
	Winner       *Player
	RoundsPlayed int
	FailedRounds int
	Capped       bool
	Standings    []Standing
	Rounds       []*entities.RoundResult
}

// Game runs rounds over the same seats and deck until someone reaches the
// win threshold
type Game struct {
	ID      string
	players []*Player
	deck    *entities.Deck
	rules   GameRules
	sink    EventSink
	logger  *logging.Logger
	repo    history.Repository

	roundIndex int
}

// NewGame seats the actors in the given order
func NewGame(actors []Actor, deck *entities.Deck, opts ...GameOption) (*Game, error) {
	if len(actors) < MinPlayers {
		return nil, types.Errorf(types.ErrNotEnoughPlayers, "need at least %d players, got %d", MinPlayers, len(actors))
	}
	if len(actors) > MaxPlayers {
		return nil, types.Errorf(types.ErrTooManyPlayers, "at most %d players fit one deck, got %d", MaxPlayers, len(actors))
	}
	if deck == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "game needs a deck")
	}

	seen := make(map[string]bool, len(actors))
	players := make([]*Player, 0, len(actors))
	for _, a := range actors {
		if a == nil {
			return nil, types.NewGameError(types.ErrInvalidArgument, "actor is nil")
		}
		if a.Name() == "" {
			return nil, types.NewGameError(types.ErrInvalidArgument, "player name is empty")
		}
		if seen[a.Name()] {
			return nil, types.Errorf(types.ErrInvalidArgument, "player name %q is used twice", a.Name())
		}
		seen[a.Name()] = true
		players = append(players, NewPlayer(a))
	}

	g := &Game{
		ID:      uuid.New().String(),
		players: players,
		deck:    deck,
		rules:   DefaultGameRules(),
		sink:    NopSink{},
		logger:  logging.Default,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g, nil
}

// Players returns the seats in order
func (g *Game) Players() []*Player {
	out := make([]*Player, len(g.players))
	copy(out, g.players)
	return out
}

// RoundIndex returns the index of the next round to play
func (g *Game) RoundIndex() int {
	return g.roundIndex
}

// Winner returns the first player in seating order at or above the win
// threshold, or nil
func (g *Game) Winner() *Player {
	for _, p := range g.players {
		if p.Points() >= g.rules.WinPoints {
			return p
		}
	}
	return nil
}

// PlayRound plays the next round and advances the round index whether or not
// the round completes
func (g *Game) PlayRound(ctx context.Context) (*entities.RoundResult, error) {
	index := g.roundIndex
	g.roundIndex++

	round, err := NewRound(index, g.players, g.deck,
		WithRules(g.rules.Round),
		WithEventSink(g.sink),
		WithLogger(g.logger),
		WithGameID(g.ID),
	)
	if err != nil {
		return nil, err
	}

	result, err := round.Play(ctx)
	if err != nil {
		return nil, err
	}

	if g.repo != nil {
		if err := g.repo.SaveRoundResult(ctx, result); err != nil {
			g.logger.Error("Failed to save round %d of game %s: %v", index, g.ID, err)
		}
	}
	return result, nil
}

// Run plays rounds until a winner emerges or the round index passes
// MaxRoundIndex. A round that runs out of cards is reported and skipped;
// any other round error ends the game.
func (g *Game) Run(ctx context.Context) (*GameResult, error) {
	result := &GameResult{ID: g.ID}
	g.logger.Info("Game %s started with %d players", g.ID, len(g.players))

	for g.Winner() == nil && g.roundIndex <= g.rules.MaxRoundIndex {
		index := g.roundIndex
		roundResult, err := g.PlayRound(ctx)
		if err != nil {
			if !types.IsGameError(err, types.ErrDeckExhausted) {
				return nil, err
			}
			result.FailedRounds++
			g.logger.LogError(err)
			g.sink.Emit(Event{Type: EventRoundFailed, Round: index, Err: err})
			continue
		}
		result.RoundsPlayed++
		result.Rounds = append(result.Rounds, roundResult)
	}

	result.Winner = g.Winner()
	result.Capped = result.Winner == nil
	result.Standings = g.Standings()

	winner := ""
	if result.Winner != nil {
		winner = result.Winner.Name()
		g.logger.Info("Game %s won by %s after %d rounds", g.ID, winner, g.roundIndex)
	} else {
		g.logger.Warn("Game %s reached round %d without a winner", g.ID, g.rules.MaxRoundIndex)
	}
	g.sink.Emit(Event{Type: EventGameComplete, Round: g.roundIndex - 1, Player: winner})
	return result, nil
}

// Standings returns the players by points, highest first; ties keep seating
// order
func (g *Game) Standings() []Standing {
	standings := make([]Standing, len(g.players))
	for i, p := range g.players {
		standings[i] = Standing{Player: p.Name(), Points: p.Points()}
	}
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Points > standings[j].Points
	})
	return standings
}
