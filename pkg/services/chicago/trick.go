package chicago

import (
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
)

// Trick tracks one outplay step: the leading suit, the current best card and
// its owner, and every card laid so far.
type Trick struct {
	number   int
	leader   string
	leadSuit entities.Suit
	best     entities.Card
	winner   string
	plays    []entities.PlayedCard
}

// NewTrick starts a trick led by leader
func NewTrick(number int, leader string) *Trick {
	return &Trick{
		number: number,
		leader: leader,
		plays:  make([]entities.PlayedCard, 0, 4),
	}
}

// Leading reports whether no card has been played yet
func (t *Trick) Leading() bool {
	return len(t.plays) == 0
}

// LeadSuit returns the suit of the first card played
func (t *Trick) LeadSuit() entities.Suit {
	return t.leadSuit
}

// Winner returns the owner of the current best card
func (t *Trick) Winner() string {
	return t.winner
}

// Plays returns the cards played so far in turn order
func (t *Trick) Plays() []entities.PlayedCard {
	out := make([]entities.PlayedCard, len(t.plays))
	copy(out, t.plays)
	return out
}

// CheckPlay rejects an off-suit card while the hand still holds the leading
// suit. hand is the player's hand before the card leaves it.
func (t *Trick) CheckPlay(card entities.Card, hand entities.Hand) error {
	if t.Leading() || card.Suit == t.leadSuit {
		return nil
	}
	if hand.HasSuit(t.leadSuit) {
		return types.Errorf(types.ErrIllegalSuitFollow,
			"%s must be followed; %s is not allowed", t.leadSuit, card)
	}
	return nil
}

// Add records a legal play. The first card sets the leading suit and the
// provisional winner; later cards take the lead only with a higher card of
// the leading suit.
func (t *Trick) Add(player string, card entities.Card) {
	switch {
	case t.Leading():
		t.leadSuit = card.Suit
		t.best = card
		t.winner = player
	case card.Suit == t.leadSuit && RankValue(card) > RankValue(t.best):
		t.best = card
		t.winner = player
	}
	t.plays = append(t.plays, entities.PlayedCard{Player: player, Card: card})
}

// View builds what the next actor sees of the trick
func (t *Trick) View(round int, hand entities.Hand, players int) PlayView {
	return PlayView{
		Round:       round,
		Trick:       t.number,
		Hand:        hand,
		Leading:     t.Leading(),
		LeadSuit:    t.leadSuit,
		BestCard:    t.best,
		Played:      t.Plays(),
		PlayerCount: players,
	}
}

// Record returns the trick outcome
func (t *Trick) Record() entities.TrickRecord {
	return entities.TrickRecord{
		Number:      t.number,
		Leader:      t.leader,
		LeadSuit:    t.leadSuit,
		Plays:       t.Plays(),
		Winner:      t.winner,
		WinningCard: t.best,
	}
}
