package actors

import (
	"io"
	"sort"
	"sync"

	"github.com/fadedpez/chicago/internal/config"
	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/services/chicago"
)

// Registry maps strategy names to AI strategies
type Registry struct {
	redraw map[string]RedrawStrategy
	play   map[string]PlayStrategy
	mu     sync.RWMutex
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		redraw: make(map[string]RedrawStrategy),
		play:   make(map[string]PlayStrategy),
	}
}

// DefaultRegistry returns a registry holding the built-in strategies
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.RegisterRedraw(config.RedrawKeepMadeHand, KeepMadeHand{})
	_ = r.RegisterRedraw(config.RedrawStandPat, StandPat{})
	_ = r.RegisterPlay(config.PlayChaseFinalTrick, ChaseFinalTrick{})
	_ = r.RegisterPlay(config.PlayFirstLegal, FirstLegal{})
	return r
}

// RegisterRedraw adds a redraw strategy under name
func (r *Registry) RegisterRedraw(name string, strategy RedrawStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.redraw[name]; exists {
		return types.Errorf(types.ErrInvalidArgument, "redraw strategy %s is already registered", name)
	}
	r.redraw[name] = strategy
	return nil
}

// RegisterPlay adds a play strategy under name
func (r *Registry) RegisterPlay(name string, strategy PlayStrategy) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.play[name]; exists {
		return types.Errorf(types.ErrInvalidArgument, "play strategy %s is already registered", name)
	}
	r.play[name] = strategy
	return nil
}

// Redraw returns the redraw strategy registered under name
func (r *Registry) Redraw(name string) (RedrawStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.redraw[name]
	if !exists {
		return nil, types.Errorf(types.ErrInvalidArgument, "redraw strategy %s not found", name)
	}
	return strategy, nil
}

// Play returns the play strategy registered under name
func (r *Registry) Play(name string) (PlayStrategy, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	strategy, exists := r.play[name]
	if !exists {
		return nil, types.Errorf(types.ErrInvalidArgument, "play strategy %s not found", name)
	}
	return strategy, nil
}

// Names lists the registered redraw and play strategy names, sorted
func (r *Registry) Names() (redraw []string, play []string) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for name := range r.redraw {
		redraw = append(redraw, name)
	}
	for name := range r.play {
		play = append(play, name)
	}
	sort.Strings(redraw)
	sort.Strings(play)
	return redraw, play
}

// FromSeat builds the actor for a configured seat. Human seats read from in
// and prompt on out.
func (r *Registry) FromSeat(seat config.SeatConfig, in io.Reader, out io.Writer, logger *logging.Logger) (chicago.Actor, error) {
	switch seat.Kind {
	case config.KindHuman:
		return NewHuman(seat.Name, NewInput(in), out, WithHumanLogger(logger)), nil
	case config.KindAI:
		redraw, err := r.Redraw(seat.Redraw)
		if err != nil {
			return nil, err
		}
		play, err := r.Play(seat.Play)
		if err != nil {
			return nil, err
		}
		return NewAI(seat.Name, redraw, play), nil
	default:
		return nil, types.Errorf(types.ErrInvalidArgument, "unknown seat kind %q for %s", seat.Kind, seat.Name)
	}
}

// FromTable builds the actors for every seat in order. All human seats share
// the same input and output.
func (r *Registry) FromTable(table config.TableConfig, in io.Reader, out io.Writer, logger *logging.Logger) ([]chicago.Actor, error) {
	var shared *Input
	actors := make([]chicago.Actor, 0, len(table.Players))
	for _, seat := range table.Players {
		if seat.Kind == config.KindHuman {
			if shared == nil {
				shared = NewInput(in)
			}
			actors = append(actors, NewHuman(seat.Name, shared, out, WithHumanLogger(logger)))
			continue
		}
		actor, err := r.FromSeat(seat, in, out, logger)
		if err != nil {
			return nil, err
		}
		actors = append(actors, actor)
	}
	return actors, nil
}
