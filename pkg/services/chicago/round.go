package chicago

import (
	"context"
	"sort"
	"time"

	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/google/uuid"
)

// Rules are the per-round house rules
type Rules struct {
	OutplayAward    int
	MaxPlayAttempts int
}

// DefaultRoundRules returns the standard award and retry bound
func DefaultRoundRules() Rules {
	return Rules{OutplayAward: 5, MaxPlayAttempts: 10}
}

// RoundOption configures a Round
type RoundOption func(*Round)

// WithRules sets the award and retry bound
func WithRules(rules Rules) RoundOption {
	return func(r *Round) { r.rules = rules }
}

// WithEventSink reports round events to sink
func WithEventSink(sink EventSink) RoundOption {
	return func(r *Round) { r.sink = sink }
}

// WithLogger sets the round's logger
func WithLogger(logger *logging.Logger) RoundOption {
	return func(r *Round) { r.logger = logger }
}

// WithGameID tags the round result with the owning game
func WithGameID(id string) RoundOption {
	return func(r *Round) { r.gameID = id }
}

// Round runs one round: DEAL, REDRAW_1, REDRAW_2, SNAPSHOT, five OUTPLAY
// tricks and FINAL_SCORE, strictly in that order.
type Round struct {
	index   int
	gameID  string
	players []*Player
	deck    *entities.Deck
	rules   Rules
	sink    EventSink
	logger  *logging.Logger
	phase   entities.Phase
}

// NewRound prepares round number index for the seated players
func NewRound(index int, players []*Player, deck *entities.Deck, opts ...RoundOption) (*Round, error) {
	if len(players) < 2 {
		return nil, types.Errorf(types.ErrNotEnoughPlayers, "a round needs at least 2 players, got %d", len(players))
	}
	if deck == nil {
		return nil, types.NewGameError(types.ErrInvalidArgument, "round needs a deck")
	}
	if index < 0 {
		return nil, types.Errorf(types.ErrInvalidArgument, "round index %d is negative", index)
	}

	r := &Round{
		index:   index,
		players: players,
		deck:    deck,
		rules:   DefaultRoundRules(),
		sink:    NopSink{},
		logger:  logging.Default,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.rules.MaxPlayAttempts < 1 {
		r.rules.MaxPlayAttempts = 1
	}
	return r, nil
}

// Phase returns the state the round is in
func (r *Round) Phase() entities.Phase {
	return r.phase
}

// StartingPlayer returns the player who leads the first trick
func (r *Round) StartingPlayer() *Player {
	return r.players[r.index%len(r.players)]
}

// Play runs the round to completion. Recoverable decision errors are
// reported and retried in place; a DECK_EXHAUSTED error or an actor failure
// aborts the round.
func (r *Round) Play(ctx context.Context) (*entities.RoundResult, error) {
	result := &entities.RoundResult{
		ID:             uuid.New().String(),
		GameID:         r.gameID,
		Index:          r.index,
		StartingPlayer: r.StartingPlayer().Name(),
	}
	r.emit(Event{Type: EventRoundStarted, Player: result.StartingPlayer})
	r.logger.Info("Round %d started, %s leads", r.index, result.StartingPlayer)

	if err := r.deal(); err != nil {
		return nil, err
	}

	if err := r.redraw(ctx, entities.PhaseRedraw1); err != nil {
		return nil, err
	}
	result.RedrawCheckpoint = r.compareHands(entities.PhaseRedraw1, (*Player).Hand)

	if err := r.redraw(ctx, entities.PhaseRedraw2); err != nil {
		return nil, err
	}

	r.snapshot()

	tricks, err := r.outplay(ctx)
	if err != nil {
		return nil, err
	}
	result.Tricks = tricks

	lastWinner := r.playerByName(tricks[len(tricks)-1].Winner)
	if err := lastWinner.AddPoints(r.rules.OutplayAward); err != nil {
		return nil, err
	}
	result.OutplayWinner = lastWinner.Name()
	result.OutplayAward = r.rules.OutplayAward
	r.emit(Event{Type: EventOutplayAward, Player: lastWinner.Name(), Points: r.rules.OutplayAward})
	r.logger.Info("%s won the outplay and %d points", lastWinner.Name(), r.rules.OutplayAward)

	r.phase = entities.PhaseFinalScore
	result.FinalScore = r.compareHands(entities.PhaseFinalScore, (*Player).OriginalHand)

	result.Points = make(map[string]int, len(r.players))
	for _, p := range r.players {
		result.Points[p.Name()] = p.Points()
	}
	result.CompletedAt = time.Now()

	r.phase = entities.PhaseComplete
	r.emit(Event{Type: EventRoundComplete, Result: result})
	return result, nil
}

func (r *Round) deal() error {
	r.phase = entities.PhaseDeal
	for _, p := range r.players {
		p.resetHands()
	}

	r.deck.Shuffle()
	for _, p := range r.players {
		for i := 0; i < entities.HandSize; i++ {
			card, err := r.deck.Draw()
			if err != nil {
				return err
			}
			p.receiveCard(card)
		}
		r.emit(Event{Type: EventDealt, Player: p.Name(), Hand: p.Hand()})
	}
	return nil
}

func (r *Round) redraw(ctx context.Context, phase entities.Phase) error {
	r.phase = phase
	for _, p := range r.players {
		positions, err := r.decideRedraw(ctx, p, phase)
		if err != nil {
			return err
		}

		for _, pos := range positions {
			card, err := r.deck.Draw()
			if err != nil {
				return err
			}
			if err := p.redrawCard(pos, card); err != nil {
				return err
			}
		}

		r.logger.Debug("%s replaced %d cards in %s", p.Name(), len(positions), phase)
		r.emit(Event{Type: EventRedraw, Player: p.Name(), Positions: positions, Hand: p.Hand()})
	}
	return nil
}

// decideRedraw asks the actor for positions and cleans them up: duplicates
// collapse and out-of-range positions are reported and skipped.
func (r *Round) decideRedraw(ctx context.Context, p *Player, phase entities.Phase) ([]int, error) {
	for attempt := 1; attempt <= r.rules.MaxPlayAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		view := RedrawView{Round: r.index, Phase: phase, Hand: p.Hand()}
		positions, err := p.Actor().DecideRedraw(ctx, view)
		if err != nil {
			if !types.IsRecoverable(err) {
				return nil, err
			}
			r.reportDecisionError(p, err)
			continue
		}
		return r.cleanPositions(p, positions), nil
	}

	r.logger.Warn("%s gave no usable redraw after %d attempts, keeping the hand", p.Name(), r.rules.MaxPlayAttempts)
	return nil, nil
}

func (r *Round) cleanPositions(p *Player, positions []int) []int {
	seen := make(map[int]bool, len(positions))
	clean := make([]int, 0, len(positions))
	size := len(p.hand)
	for _, pos := range positions {
		if pos < 0 || pos >= size {
			r.reportDecisionError(p, types.Errorf(types.ErrInvalidRedrawPosition,
				"position %d is outside a hand of %d cards", pos+1, size))
			continue
		}
		if seen[pos] {
			continue
		}
		seen[pos] = true
		clean = append(clean, pos)
	}
	sort.Ints(clean)
	return clean
}

func (r *Round) snapshot() {
	r.phase = entities.PhaseSnapshot
	for _, p := range r.players {
		p.saveOriginalHand()
		r.emit(Event{Type: EventSnapshot, Player: p.Name(), Hand: p.OriginalHand()})
	}
}

func (r *Round) outplay(ctx context.Context) ([]entities.TrickRecord, error) {
	r.phase = entities.PhaseOutplay
	n := len(r.players)
	lead := r.index % n

	records := make([]entities.TrickRecord, 0, entities.TricksPerRound)
	for number := 1; number <= entities.TricksPerRound; number++ {
		trick := NewTrick(number, r.players[lead].Name())

		for k := 0; k < n; k++ {
			p := r.players[(lead+k)%n]
			card, err := r.takeTurn(ctx, p, trick)
			if err != nil {
				return nil, err
			}
			trick.Add(p.Name(), card)
			r.emit(Event{Type: EventCardPlayed, Player: p.Name(), Card: card})
		}

		record := trick.Record()
		records = append(records, record)
		r.emit(Event{Type: EventTrickComplete, Player: record.Winner, Card: record.WinningCard, Trick: &record})
		r.logger.Debug("Trick %d won by %s with %s", number, record.Winner, record.WinningCard)

		lead = r.indexOf(record.Winner)
	}
	return records, nil
}

// takeTurn asks the actor for a card until it names a legal one. After
// MaxPlayAttempts the first legal card is played for it.
func (r *Round) takeTurn(ctx context.Context, p *Player, trick *Trick) (entities.Card, error) {
	for attempt := 1; attempt <= r.rules.MaxPlayAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return entities.Card{}, err
		}

		hand := p.Hand()
		choice, err := p.Actor().DecidePlay(ctx, trick.View(r.index, hand, len(r.players)))
		if err != nil {
			if !types.IsRecoverable(err) {
				return entities.Card{}, err
			}
			r.reportDecisionError(p, err)
			continue
		}

		if choice < 0 || choice >= len(hand) {
			r.reportDecisionError(p, types.Errorf(types.ErrInvalidPlayIndex,
				"card %d does not exist, hand has %d cards", choice+1, len(hand)))
			continue
		}

		if err := trick.CheckPlay(hand[choice], hand); err != nil {
			r.emit(Event{Type: EventIllegalPlay, Player: p.Name(), Card: hand[choice], Err: err})
			r.logger.LogError(err)
			continue
		}

		return p.playCard(choice)
	}

	hand := p.Hand()
	legal := trick.View(r.index, hand, len(r.players)).LegalIndexes()
	if len(legal) == 0 {
		return entities.Card{}, types.Errorf(types.ErrInvalidState, "%s has no card to play", p.Name())
	}
	card, err := p.playCard(legal[0])
	if err != nil {
		return entities.Card{}, err
	}
	r.logger.Warn("%s did not choose a legal card in %d attempts, playing %s", p.Name(), r.rules.MaxPlayAttempts, card)
	r.emit(Event{Type: EventAutoPlay, Player: p.Name(), Card: card})
	return card, nil
}

func (r *Round) compareHands(checkpoint entities.Phase, handOf func(*Player) entities.Hand) *entities.HandComparison {
	entries := make([]HandEntry, len(r.players))
	for i, p := range r.players {
		entries[i] = HandEntry{Player: p.Name(), Hand: handOf(p)}
	}
	comparison := BestHands(checkpoint, entries)
	r.emit(Event{Type: EventHandComparison, Phase: checkpoint, Comparison: comparison})
	return comparison
}

func (r *Round) reportDecisionError(p *Player, err error) {
	r.logger.LogError(err)
	r.emit(Event{Type: EventDecisionError, Player: p.Name(), Err: err})
}

func (r *Round) emit(event Event) {
	event.Round = r.index
	if event.Phase == "" {
		event.Phase = r.phase
	}
	r.sink.Emit(event)
}

func (r *Round) indexOf(name string) int {
	for i, p := range r.players {
		if p.Name() == name {
			return i
		}
	}
	return 0
}

func (r *Round) playerByName(name string) *Player {
	return r.players[r.indexOf(name)]
}
