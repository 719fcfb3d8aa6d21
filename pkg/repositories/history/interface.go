package history

import (
	"context"

	"github.com/fadedpez/chicago/pkg/entities"
)

// Repository stores finished rounds and the player statistics derived from
// them
type Repository interface {
	// Round results
	SaveRoundResult(ctx context.Context, result *entities.RoundResult) error
	GetGameRounds(ctx context.Context, gameID string) ([]*entities.RoundResult, error)

	// Statistics
	GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error)
	GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error)

	// Close closes any resources used by the repository
	Close() error
}
