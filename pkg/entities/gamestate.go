package entities

import "time"

// Phase is a step of the round state machine
type Phase string

const (
	PhaseDeal       Phase = "DEAL"
	PhaseRedraw1    Phase = "REDRAW_1"
	PhaseRedraw2    Phase = "REDRAW_2"
	PhaseSnapshot   Phase = "SNAPSHOT"
	PhaseOutplay    Phase = "OUTPLAY"
	PhaseFinalScore Phase = "FINAL_SCORE"
	PhaseComplete   Phase = "COMPLETE"
)

// TricksPerRound is the fixed number of outplay tricks
const TricksPerRound = 5

// HandSize is the fixed number of cards dealt to each player
const HandSize = 5

// PlayedCard is a card laid in a trick along with who played it
type PlayedCard struct {
	Player string `json:"player"`
	Card   Card   `json:"card"`
}

// TrickRecord is the outcome of one outplay trick
type TrickRecord struct {
	Number      int          `json:"number"`
	Leader      string       `json:"leader"`
	LeadSuit    Suit         `json:"lead_suit"`
	Plays       []PlayedCard `json:"plays"`
	Winner      string       `json:"winner"`
	WinningCard Card         `json:"winning_card"`
}

// HandScore is one player's evaluated hand at a scoring checkpoint
type HandScore struct {
	Player      string `json:"player"`
	Hand        Hand   `json:"hand"`
	Category    string `json:"category"`
	Score       int    `json:"score"`
	Description string `json:"description,omitempty"`
}

// HandComparison is the best-hand determination at a checkpoint. It is
// reported only; no points are attached to it.
type HandComparison struct {
	Checkpoint Phase       `json:"checkpoint"`
	Scores     []HandScore `json:"scores"`
	Winners    []string    `json:"winners"`
}

// IsTie reports whether more than one player shares the best hand
func (c *HandComparison) IsTie() bool {
	return len(c.Winners) > 1
}

// RoundResult is everything a finished round reports back to the game loop
type RoundResult struct {
	ID               string          `json:"id"`
	GameID           string          `json:"game_id"`
	Index            int             `json:"index"`
	StartingPlayer   string          `json:"starting_player"`
	RedrawCheckpoint *HandComparison `json:"redraw_checkpoint"`
	Tricks           []TrickRecord   `json:"tricks"`
	OutplayWinner    string          `json:"outplay_winner"`
	OutplayAward     int             `json:"outplay_award"`
	FinalScore       *HandComparison `json:"final_score"`
	Points           map[string]int  `json:"points"`
	CompletedAt      time.Time       `json:"completed_at"`
}

// TrickWinners returns the winner of each trick in order
func (r *RoundResult) TrickWinners() []string {
	winners := make([]string, len(r.Tricks))
	for i, t := range r.Tricks {
		winners[i] = t.Winner
	}
	return winners
}
