package statistics

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/repositories/history"
)

// Service provides methods for retrieving and processing player statistics
type Service struct {
	repository history.Repository
}

// NewService creates a new statistics service
func NewService(repository history.Repository) *Service {
	return &Service{
		repository: repository,
	}
}

// PlayerRank represents a player's statistics with ranking information
type PlayerRank struct {
	*entities.PlayerStatistics
	Rank          int     `json:"rank"`
	TrickWinRate  float64 `json:"trick_win_rate"`
	OutplayRate   float64 `json:"outplay_rate"`
	IsTopScorer   bool    `json:"is_top_scorer"`
	IsTopTrickWin bool    `json:"is_top_trick_winner"`
}

// Leaderboard represents a paginated leaderboard of player statistics
type Leaderboard struct {
	Players        []*PlayerRank `json:"players"`
	TotalPlayers   int           `json:"total_players"`
	CurrentPage    int           `json:"current_page"`
	TotalPages     int           `json:"total_pages"`
	PlayersPerPage int           `json:"players_per_page"`
	LastUpdated    time.Time     `json:"last_updated"`
}

// GetLeaderboard retrieves a paginated leaderboard ordered by points earned
func (s *Service) GetLeaderboard(ctx context.Context, page, playersPerPage int) (*Leaderboard, error) {
	// Default values
	if page < 1 {
		page = 1
	}
	if playersPerPage < 1 {
		playersPerPage = 10
	}

	allStats, err := s.repository.GetAllPlayerStatistics(ctx)
	if err != nil {
		return nil, err
	}

	playerRanks := make([]*PlayerRank, 0, len(allStats))
	for _, stats := range allStats {
		// Skip players with no rounds
		if stats.RoundsPlayed == 0 {
			continue
		}
		playerRanks = append(playerRanks, &PlayerRank{
			PlayerStatistics: stats,
			TrickWinRate:     stats.TrickWinRate(),
			OutplayRate:      stats.OutplayRate(),
		})
	}

	// Points first, then tricks, then name for a stable order
	sort.Slice(playerRanks, func(i, j int) bool {
		a, b := playerRanks[i], playerRanks[j]
		if a.PointsEarned != b.PointsEarned {
			return a.PointsEarned > b.PointsEarned
		}
		if a.TricksWon != b.TricksWon {
			return a.TricksWon > b.TricksWon
		}
		return a.PlayerName < b.PlayerName
	})

	if len(playerRanks) > 0 {
		playerRanks[0].IsTopScorer = true

		mostTricksIdx := 0
		for i := 1; i < len(playerRanks); i++ {
			if playerRanks[i].TricksWon > playerRanks[mostTricksIdx].TricksWon {
				mostTricksIdx = i
			}
		}
		playerRanks[mostTricksIdx].IsTopTrickWin = true
	}

	for i := range playerRanks {
		playerRanks[i].Rank = i + 1
	}

	// Calculate pagination
	totalPlayers := len(playerRanks)
	totalPages := (totalPlayers + playersPerPage - 1) / playersPerPage
	if page > totalPages && totalPages > 0 {
		page = totalPages
	}

	start := (page - 1) * playersPerPage
	end := start + playersPerPage
	if end > totalPlayers {
		end = totalPlayers
	}

	var currentPagePlayers []*PlayerRank
	if start < totalPlayers {
		currentPagePlayers = playerRanks[start:end]
	} else {
		currentPagePlayers = []*PlayerRank{}
	}

	return &Leaderboard{
		Players:        currentPagePlayers,
		TotalPlayers:   totalPlayers,
		CurrentPage:    page,
		TotalPages:     totalPages,
		PlayersPerPage: playersPerPage,
		LastUpdated:    time.Now(),
	}, nil
}

// GameSummary is the per-player breakdown of one game's saved rounds
type GameSummary struct {
	GameID       string         `json:"game_id"`
	Rounds       int            `json:"rounds"`
	TricksWon    map[string]int `json:"tricks_won"`
	OutplayWins  map[string]int `json:"outplay_wins"`
	BestHandWins map[string]int `json:"best_hand_wins"`
	FinalPoints  map[string]int `json:"final_points"`
}

// GetGameSummary tallies the saved rounds of a game
func (s *Service) GetGameSummary(ctx context.Context, gameID string) (*GameSummary, error) {
	rounds, err := s.repository.GetGameRounds(ctx, gameID)
	if err != nil {
		return nil, err
	}

	summary := &GameSummary{
		GameID:       gameID,
		Rounds:       len(rounds),
		TricksWon:    make(map[string]int),
		OutplayWins:  make(map[string]int),
		BestHandWins: make(map[string]int),
		FinalPoints:  make(map[string]int),
	}
	for _, r := range rounds {
		for _, w := range r.TrickWinners() {
			summary.TricksWon[w]++
		}
		summary.OutplayWins[r.OutplayWinner]++
		if r.FinalScore != nil {
			for _, w := range r.FinalScore.Winners {
				summary.BestHandWins[w]++
			}
		}
		for name, points := range r.Points {
			summary.FinalPoints[name] = points
		}
	}
	return summary, nil
}
