package entities

import (
	"math/rand/v2"
	"time"

	"github.com/fadedpez/chicago/internal/types"
)

// DeckSize is the number of cards in the single Chicago deck
const DeckSize = 52

// Deck is an ordered 52-card deck with a draw cursor
type Deck struct {
	cards   []Card
	next    int
	rng     *rand.Rand
	stacked bool
}

// DeckOption configures a deck
type DeckOption func(*Deck) error

// WithRand shuffles the deck with the given random source
func WithRand(r *rand.Rand) DeckOption {
	return func(d *Deck) error {
		if r == nil {
			return types.NewGameError(types.ErrInvalidArgument, "nil random source")
		}
		d.rng = r
		return nil
	}
}

// WithSeed shuffles the deck with a deterministic source derived from seed
func WithSeed(seed uint64) DeckOption {
	return WithRand(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)))
}

// WithStackedOrder fixes the deck order. Shuffle then only rewinds the
// cursor. The order must contain each of the 52 cards exactly once.
func WithStackedOrder(order []Card) DeckOption {
	return func(d *Deck) error {
		if err := validateOrder(order); err != nil {
			return err
		}
		d.cards = append(d.cards[:0], order...)
		d.stacked = true
		return nil
	}
}

// NewDeck creates a new deck of 52 cards, one of each rank and suit
func NewDeck(opts ...DeckOption) (*Deck, error) {
	d := &Deck{cards: make([]Card, 0, DeckSize)}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			d.cards = append(d.cards, NewCard(suit, rank))
		}
	}

	for _, opt := range opts {
		if err := opt(d); err != nil {
			return nil, err
		}
	}

	if d.rng == nil {
		seed := uint64(time.Now().UnixNano())
		d.rng = rand.New(rand.NewPCG(seed, seed>>1))
	}
	return d, nil
}

// Shuffle permutes the deck and rewinds the draw cursor
func (d *Deck) Shuffle() {
	if !d.stacked {
		d.rng.Shuffle(len(d.cards), func(i, j int) {
			d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
		})
	}
	d.next = 0
}

// Draw returns the next undrawn card
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, types.Errorf(types.ErrDeckExhausted, "all %d cards have been drawn", len(d.cards))
	}
	card := d.cards[d.next]
	d.next++
	return card, nil
}

// Remaining returns the number of undrawn cards
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns a copy of the deck in its current order
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}

func validateOrder(order []Card) error {
	if len(order) != DeckSize {
		return types.Errorf(types.ErrInvalidArgument, "stacked deck has %d cards, want %d", len(order), DeckSize)
	}
	seen := make(map[Card]bool, DeckSize)
	for _, c := range order {
		if !c.Valid() {
			return types.Errorf(types.ErrInvalidCard, "invalid card %v in stacked deck", c)
		}
		if seen[c] {
			return types.Errorf(types.ErrInvalidArgument, "card %s appears twice in stacked deck", c)
		}
		seen[c] = true
	}
	return nil
}

// StackDeck builds a full 52-card order that starts with the given cards
// followed by the remaining cards in natural order.
func StackDeck(top []Card) ([]Card, error) {
	used := make(map[Card]bool, len(top))
	order := make([]Card, 0, DeckSize)
	for _, c := range top {
		if used[c] {
			return nil, types.Errorf(types.ErrInvalidArgument, "card %s stacked twice", c)
		}
		used[c] = true
		order = append(order, c)
	}
	for _, suit := range Suits {
		for _, rank := range Ranks {
			c := NewCard(suit, rank)
			if !used[c] {
				order = append(order, c)
			}
		}
	}
	return order, validateOrder(order)
}
