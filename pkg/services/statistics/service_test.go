package statistics

import (
	"context"
	"errors"
	"testing"

	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/repositories/history/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	testifymock "github.com/stretchr/testify/mock"
)

func TestGetLeaderboard(t *testing.T) {
	// Setup
	repo := mock.New()
	stats := []*entities.PlayerStatistics{
		{PlayerName: "alice", RoundsPlayed: 10, TricksWon: 30, PointsEarned: 25},
		{PlayerName: "bob", RoundsPlayed: 10, TricksWon: 20, PointsEarned: 25},
		{PlayerName: "carol", RoundsPlayed: 4, TricksWon: 18, PointsEarned: 40},
		{PlayerName: "dave", RoundsPlayed: 0},
	}
	repo.On("GetAllPlayerStatistics", testifymock.Anything).Return(stats, nil)
	service := NewService(repo)

	// Execute
	leaderboard, err := service.GetLeaderboard(context.Background(), 1, 2)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 3, leaderboard.TotalPlayers)
	assert.Equal(t, 2, leaderboard.TotalPages)
	require.Len(t, leaderboard.Players, 2)

	assert.Equal(t, "carol", leaderboard.Players[0].PlayerName)
	assert.Equal(t, 1, leaderboard.Players[0].Rank)
	assert.True(t, leaderboard.Players[0].IsTopScorer)
	assert.False(t, leaderboard.Players[0].IsTopTrickWin)
	assert.InDelta(t, 90.0, leaderboard.Players[0].TrickWinRate, 0.001)

	// Equal points fall back to tricks won
	assert.Equal(t, "alice", leaderboard.Players[1].PlayerName)
	assert.True(t, leaderboard.Players[1].IsTopTrickWin)
	assert.InDelta(t, 60.0, leaderboard.Players[1].TrickWinRate, 0.001)

	repo.AssertExpectations(t)
}

func TestTopTrickWinnerCountsTricks(t *testing.T) {
	repo := mock.New()
	repo.On("GetAllPlayerStatistics", testifymock.Anything).Return([]*entities.PlayerStatistics{
		{PlayerName: "lucky", RoundsPlayed: 1, TricksWon: 5, PointsEarned: 5},
		{PlayerName: "veteran", RoundsPlayed: 30, TricksWon: 100, PointsEarned: 50},
	}, nil)

	leaderboard, err := NewService(repo).GetLeaderboard(context.Background(), 1, 10)
	require.NoError(t, err)
	require.Len(t, leaderboard.Players, 2)

	// A perfect single round does not outrank a long record
	assert.Equal(t, "veteran", leaderboard.Players[0].PlayerName)
	assert.True(t, leaderboard.Players[0].IsTopTrickWin)
	assert.False(t, leaderboard.Players[1].IsTopTrickWin)
	assert.Greater(t, leaderboard.Players[1].TrickWinRate, leaderboard.Players[0].TrickWinRate)
}

func TestGetLeaderboardPagination(t *testing.T) {
	repo := mock.New()
	repo.On("GetAllPlayerStatistics", testifymock.Anything).Return([]*entities.PlayerStatistics{
		{PlayerName: "alice", RoundsPlayed: 1, PointsEarned: 5},
		{PlayerName: "bob", RoundsPlayed: 1},
	}, nil)
	service := NewService(repo)

	// A page past the end clamps to the last page
	leaderboard, err := service.GetLeaderboard(context.Background(), 9, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, leaderboard.CurrentPage)
	require.Len(t, leaderboard.Players, 1)
	assert.Equal(t, "bob", leaderboard.Players[0].PlayerName)

	// Invalid arguments fall back to the defaults
	leaderboard, err = service.GetLeaderboard(context.Background(), 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, leaderboard.CurrentPage)
	assert.Equal(t, 10, leaderboard.PlayersPerPage)
}

func TestGetLeaderboardRepositoryError(t *testing.T) {
	repo := mock.New()
	repo.On("GetAllPlayerStatistics", testifymock.Anything).Return(nil, errors.New("db down"))

	_, err := NewService(repo).GetLeaderboard(context.Background(), 1, 10)

	assert.EqualError(t, err, "db down")
}

func TestGetGameSummary(t *testing.T) {
	// Setup
	repo := mock.New()
	rounds := []*entities.RoundResult{
		{
			Index:         0,
			Tricks:        []entities.TrickRecord{{Winner: "alice"}, {Winner: "bob"}, {Winner: "bob"}},
			OutplayWinner: "bob",
			FinalScore:    &entities.HandComparison{Winners: []string{"alice"}},
			Points:        map[string]int{"alice": 0, "bob": 5},
		},
		{
			Index:         1,
			Tricks:        []entities.TrickRecord{{Winner: "alice"}, {Winner: "alice"}},
			OutplayWinner: "alice",
			FinalScore:    &entities.HandComparison{Winners: []string{"alice", "bob"}},
			Points:        map[string]int{"alice": 5, "bob": 5},
		},
	}
	repo.On("GetGameRounds", testifymock.Anything, "game-1").Return(rounds, nil)

	// Execute
	summary, err := NewService(repo).GetGameSummary(context.Background(), "game-1")

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Rounds)
	assert.Equal(t, 3, summary.TricksWon["alice"])
	assert.Equal(t, 2, summary.TricksWon["bob"])
	assert.Equal(t, 1, summary.OutplayWins["alice"])
	assert.Equal(t, 2, summary.BestHandWins["alice"])
	assert.Equal(t, 1, summary.BestHandWins["bob"])
	assert.Equal(t, map[string]int{"alice": 5, "bob": 5}, summary.FinalPoints)
}
