package chicago

import (
	"context"

	"github.com/fadedpez/chicago/pkg/entities"
)

//go:generate mockgen -source=$GOFILE -destination=mock/mock_actor.go -package=mock_chicago

// Actor makes the decisions for one seat. A human actor blocks on its input
// provider; an AI actor must answer synchronously.
type Actor interface {
	// Name identifies the player
	Name() string

	// DecideRedraw returns the zero-based hand positions to replace. An empty
	// result keeps the whole hand.
	DecideRedraw(ctx context.Context, view RedrawView) ([]int, error)

	// DecidePlay returns the zero-based position of the card to play
	DecidePlay(ctx context.Context, view PlayView) (int, error)
}

// RedrawView is what an actor sees when choosing cards to replace
type RedrawView struct {
	Round int
	Phase entities.Phase
	Hand  entities.Hand
}

// PlayView is what an actor sees when choosing a card for a trick
type PlayView struct {
	Round       int
	Trick       int
	Hand        entities.Hand
	Leading     bool
	LeadSuit    entities.Suit
	BestCard    entities.Card
	Played      []entities.PlayedCard
	PlayerCount int
}

// LegalIndexes returns the hand positions that may be played into the trick
func (v PlayView) LegalIndexes() []int {
	legal := make([]int, 0, len(v.Hand))
	for i, c := range v.Hand {
		if v.Leading || c.Suit == v.LeadSuit || !v.Hand.HasSuit(v.LeadSuit) {
			legal = append(legal, i)
		}
	}
	return legal
}

// LastToPlay reports whether the actor closes the trick
func (v PlayView) LastToPlay() bool {
	return len(v.Played) == v.PlayerCount-1
}
