package mock

import (
	"context"

	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/stretchr/testify/mock"
)

// Repository is a mock implementation of history.Repository
type Repository struct {
	mock.Mock
}

func New() *Repository {
	return &Repository{}
}

func (r *Repository) SaveRoundResult(ctx context.Context, result *entities.RoundResult) error {
	args := r.Called(ctx, result)
	return args.Error(0)
}

func (r *Repository) GetGameRounds(ctx context.Context, gameID string) ([]*entities.RoundResult, error) {
	args := r.Called(ctx, gameID)
	if rounds, ok := args.Get(0).([]*entities.RoundResult); ok {
		return rounds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *Repository) GetPlayerStatistics(ctx context.Context, playerName string) (*entities.PlayerStatistics, error) {
	args := r.Called(ctx, playerName)
	if stats, ok := args.Get(0).(*entities.PlayerStatistics); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *Repository) GetAllPlayerStatistics(ctx context.Context) ([]*entities.PlayerStatistics, error) {
	args := r.Called(ctx)
	if stats, ok := args.Get(0).([]*entities.PlayerStatistics); ok {
		return stats, args.Error(1)
	}
	return nil, args.Error(1)
}

func (r *Repository) Close() error {
	args := r.Called()
	return args.Error(0)
}
