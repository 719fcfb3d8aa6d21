package chicago

import (
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
)

// Player is a seat at the table. Points survive across rounds; both hand
// slots are reset at every deal.
type Player struct {
	actor    Actor
	hand     entities.Hand
	original entities.Hand
	points   int
}

// NewPlayer seats an actor
func NewPlayer(actor Actor) *Player {
	return &Player{
		actor: actor,
		hand:  make(entities.Hand, 0, entities.HandSize),
	}
}

// Name returns the player's name
func (p *Player) Name() string {
	return p.actor.Name()
}

// Actor returns the decision maker behind the seat
func (p *Player) Actor() Actor {
	return p.actor
}

// Hand returns a copy of the live hand
func (p *Player) Hand() entities.Hand {
	return p.hand.Clone()
}

// OriginalHand returns a copy of the hand saved before outplay
func (p *Player) OriginalHand() entities.Hand {
	return p.original.Clone()
}

// Points returns the cumulative points
func (p *Player) Points() int {
	return p.points
}

// AddPoints adds to the cumulative points. Points never decrease.
func (p *Player) AddPoints(n int) error {
	if n < 0 {
		return types.Errorf(types.ErrInvalidArgument, "cannot award %d points to %s", n, p.Name())
	}
	p.points += n
	return nil
}

func (p *Player) resetHands() {
	p.hand = p.hand[:0]
	p.original = nil
}

func (p *Player) receiveCard(card entities.Card) {
	p.hand = append(p.hand, card)
}

func (p *Player) redrawCard(index int, card entities.Card) error {
	if index < 0 || index >= len(p.hand) {
		return types.Errorf(types.ErrInvalidRedrawPosition, "%s has no card at position %d", p.Name(), index+1)
	}
	p.hand[index] = card
	return nil
}

func (p *Player) playCard(index int) (entities.Card, error) {
	if index < 0 || index >= len(p.hand) {
		return entities.Card{}, types.Errorf(types.ErrInvalidPlayIndex,
			"%s chose card %d but holds %d", p.Name(), index+1, len(p.hand))
	}
	card := p.hand[index]
	p.hand = append(p.hand[:index], p.hand[index+1:]...)
	return card, nil
}

func (p *Player) saveOriginalHand() {
	p.original = p.hand.Clone()
}
