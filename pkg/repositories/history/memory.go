package history

import (
	"context"
	"sort"
	"sync"

	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
)

// MemoryRepository implements Repository with in-memory storage
type MemoryRepository struct {
	mu sync.RWMutex
	// Map of game ID to its rounds in play order
	gameRounds map[string][]*entities.RoundResult
	// Map of player name to running statistics
	stats map[string]*entities.PlayerStatistics
}

// NewMemoryRepository creates a new in-memory repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		gameRounds: make(map[string][]*entities.RoundResult),
		stats:      make(map[string]*entities.PlayerStatistics),
	}
}

// SaveRoundResult stores a round and updates each player's statistics
func (r *MemoryRepository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	if result == nil {
		return types.NewGameError(types.ErrInvalidArgument, "round result is nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.gameRounds[result.GameID] = append(r.gameRounds[result.GameID], result)

	for _, name := range players(result) {
		stats, ok := r.stats[name]
		if !ok {
			stats = &entities.PlayerStatistics{PlayerName: name}
			r.stats[name] = stats
		}
		applyRound(stats, result)
	}
	return nil
}

// GetGameRounds returns the rounds of a game ordered by round index
func (r *MemoryRepository) GetGameRounds(ctx context.Context, gameID string) ([]*entities.RoundResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rounds := make([]*entities.RoundResult, len(r.gameRounds[gameID]))
	copy(rounds, r.gameRounds[gameID])
	sort.SliceStable(rounds, func(i, j int) bool {
		return rounds[i].Index < rounds[j].Index
	})
	return rounds, nil
}

// GetPlayerStatistics returns a copy of a player's statistics. Unknown
// players get empty statistics.
func (r *MemoryRepository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stats, ok := r.stats[playerName]
	if !ok {
		return &entities.PlayerStatistics{PlayerName: playerName}, nil
	}
	out := *stats
	return &out, nil
}

// GetAllPlayerStatistics returns every player's statistics, most points first
func (r *MemoryRepository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entities.PlayerStatistics, 0, len(r.stats))
	for _, stats := range r.stats {
		out := *stats
		all = append(all, &out)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].PointsEarned != all[j].PointsEarned {
			return all[i].PointsEarned > all[j].PointsEarned
		}
		return all[i].PlayerName < all[j].PlayerName
	})
	return all, nil
}

// Close is a no-op for memory repository since there are no resources to close
func (r *MemoryRepository) Close() error {
	return nil
}
