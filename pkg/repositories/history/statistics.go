package history

import (
	"time"

	"github.com/fadedpez/chicago/pkg/entities"
)

// players returns every player named in a round, in seating order when the
// final comparison is present
func players(result *entities.RoundResult) []string {
	if result.FinalScore != nil && len(result.FinalScore.Scores) > 0 {
		names := make([]string, len(result.FinalScore.Scores))
		for i, s := range result.FinalScore.Scores {
			names[i] = s.Player
		}
		return names
	}
	names := make([]string, 0, len(result.Points))
	for name := range result.Points {
		names = append(names, name)
	}
	return names
}

// applyRound folds one round into a player's running statistics
func applyRound(stats *entities.PlayerStatistics, result *entities.RoundResult) {
	name := stats.PlayerName
	stats.RoundsPlayed++

	for _, trick := range result.Tricks {
		if trick.Winner == name {
			stats.TricksWon++
		}
	}

	if result.OutplayWinner == name {
		stats.OutplayWins++
		stats.PointsEarned += result.OutplayAward
	}

	if result.FinalScore != nil {
		for _, w := range result.FinalScore.Winners {
			if w != name {
				continue
			}
			if result.FinalScore.IsTie() {
				stats.BestHandTies++
			} else {
				stats.BestHandWins++
			}
		}
		for _, s := range result.FinalScore.Scores {
			if s.Player == name && (s.Score > stats.HighestScore || stats.HighestHand == "") {
				stats.HighestScore = s.Score
				stats.HighestHand = s.Category
			}
		}
	}

	stats.LastUpdated = result.CompletedAt
	if stats.LastUpdated.IsZero() {
		stats.LastUpdated = time.Now()
	}
}
