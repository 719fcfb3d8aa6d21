package actors

import (
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/services/chicago"
)

// RedrawStrategy chooses hand positions to replace
type RedrawStrategy interface {
	Redraw(hand entities.Hand) []int
}

// PlayStrategy chooses the hand position to play into a trick. It must
// return one of view.LegalIndexes().
type PlayStrategy interface {
	Play(view chicago.PlayView) int
}

// StandPat never replaces a card
type StandPat struct{}

func (StandPat) Redraw(entities.Hand) []int { return nil }

// KeepMadeHand keeps the cards that make up a scoring category and replaces
// the rest. Straights and better stand pat; a four card flush draws one; a
// hand with nothing keeps only its highest card.
type KeepMadeHand struct{}

func (KeepMadeHand) Redraw(hand entities.Hand) []int {
	if chicago.Evaluate(hand).Category >= chicago.RegularStraight {
		return nil
	}

	ranks := make(map[entities.Rank]int, len(hand))
	suits := make(map[entities.Suit]int, len(hand))
	for _, c := range hand {
		ranks[c.Rank]++
		suits[c.Suit]++
	}

	var discard []int
	for i, c := range hand {
		if ranks[c.Rank] < 2 {
			discard = append(discard, i)
		}
	}
	if len(discard) < len(hand) {
		return discard
	}

	for suit, n := range suits {
		if n == len(hand)-1 {
			discard = discard[:0]
			for i, c := range hand {
				if c.Suit != suit {
					discard = append(discard, i)
				}
			}
			return discard
		}
	}

	high := 0
	for i, c := range hand {
		if c.Rank > hand[high].Rank {
			high = i
		}
	}
	discard = discard[:0]
	for i := range hand {
		if i != high {
			discard = append(discard, i)
		}
	}
	return discard
}

// FirstLegal plays the first card that may legally be played
type FirstLegal struct{}

func (FirstLegal) Play(view chicago.PlayView) int {
	return view.LegalIndexes()[0]
}

// ChaseFinalTrick tries to keep its best card for the last trick. Following
// suit it plays the cheapest card that takes the lead, or its lowest card of
// the suit when it cannot; otherwise it plays its lowest card.
type ChaseFinalTrick struct{}

func (ChaseFinalTrick) Play(view chicago.PlayView) int {
	legal := view.LegalIndexes()
	if len(legal) == 1 {
		return legal[0]
	}

	following := !view.Leading && view.Hand.HasSuit(view.LeadSuit)
	if following {
		beat := -1
		for _, i := range legal {
			if view.Hand[i].Rank > view.BestCard.Rank &&
				(beat < 0 || view.Hand[i].Rank < view.Hand[beat].Rank) {
				beat = i
			}
		}
		if beat >= 0 {
			return beat
		}
	}

	return lowest(view.Hand, legal)
}

func lowest(hand entities.Hand, indexes []int) int {
	low := indexes[0]
	for _, i := range indexes[1:] {
		if hand[i].Rank < hand[low].Rank {
			low = i
		}
	}
	return low
}
