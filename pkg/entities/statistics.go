package entities

import "time"

// PlayerStatistics represents aggregated round history for one player
type PlayerStatistics struct {
	PlayerName   string
	RoundsPlayed int
	TricksWon    int
	OutplayWins  int
	BestHandWins int
	BestHandTies int
	PointsEarned int
	HighestScore int
	HighestHand  string
	LastUpdated  time.Time
}

// TrickWinRate returns the share of tricks won as a percentage
func (s *PlayerStatistics) TrickWinRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.TricksWon) / float64(s.RoundsPlayed*TricksPerRound) * 100.0
}

// OutplayRate returns the share of rounds where the player took the last trick
func (s *PlayerStatistics) OutplayRate() float64 {
	if s.RoundsPlayed == 0 {
		return 0.0
	}
	return float64(s.OutplayWins) / float64(s.RoundsPlayed) * 100.0
}
