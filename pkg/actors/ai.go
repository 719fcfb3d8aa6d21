package actors

import (
	"context"

	"github.com/fadedpez/chicago/pkg/services/chicago"
)

// AI answers every decision synchronously through its strategies
type AI struct {
	name   string
	redraw RedrawStrategy
	play   PlayStrategy
}

// NewAI creates an AI actor. Nil strategies fall back to StandPat and
// FirstLegal.
func NewAI(name string, redraw RedrawStrategy, play PlayStrategy) *AI {
	if redraw == nil {
		redraw = StandPat{}
	}
	if play == nil {
		play = FirstLegal{}
	}
	return &AI{name: name, redraw: redraw, play: play}
}

// Name returns the player's name
func (a *AI) Name() string {
	return a.name
}

// DecideRedraw delegates to the redraw strategy
func (a *AI) DecideRedraw(ctx context.Context, view chicago.RedrawView) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return a.redraw.Redraw(view.Hand), nil
}

// DecidePlay delegates to the play strategy
func (a *AI) DecidePlay(ctx context.Context, view chicago.PlayView) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return a.play.Play(view), nil
}
