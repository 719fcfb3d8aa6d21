package entities

import (
	"strings"

	"github.com/fadedpez/chicago/internal/types"
)

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// Suits lists every suit in deck order
var Suits = []Suit{Spades, Hearts, Diamonds, Clubs}

var suitInitials = [...]string{
	Spades:   "S",
	Hearts:   "H",
	Diamonds: "D",
	Clubs:    "C",
}

var suitNames = [...]string{
	Spades:   "Spades",
	Hearts:   "Hearts",
	Diamonds: "Diamonds",
	Clubs:    "Clubs",
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Spades && s <= Clubs
}

// Initial returns the one-letter notation of the suit
func (s Suit) Initial() string {
	if !s.Valid() {
		return "?"
	}
	return suitInitials[s]
}

// String returns the suit name
func (s Suit) String() string {
	if !s.Valid() {
		return "Unknown"
	}
	return suitNames[s]
}

// IsRed reports whether the suit is printed in red
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. The numeric value is the rank value used for
// scoring and trick resolution.
type Rank int

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank from lowest to highest
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

var rankNames = map[Rank]string{
	Two:   "2",
	Three: "3",
	Four:  "4",
	Five:  "5",
	Six:   "6",
	Seven: "7",
	Eight: "8",
	Nine:  "9",
	Ten:   "10",
	Jack:  "J",
	Queen: "Q",
	King:  "K",
	Ace:   "A",
}

// Valid reports whether r is a rank of the 52-card deck
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Value returns the rank value: 2-10 map to themselves, J=11, Q=12, K=13, A=14
func (r Rank) Value() int {
	return int(r)
}

func (r Rank) String() string {
	if name, ok := rankNames[r]; ok {
		return name
	}
	return "?"
}

// Card represents a playing card
type Card struct {
	Suit Suit `json:"suit"`
	Rank Rank `json:"rank"`
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the card notation, e.g. "AH" or "10S"
func (c Card) String() string {
	return c.Rank.String() + c.Suit.Initial()
}

// Valid reports whether the card belongs to the 52-card deck
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// ParseCard parses card notation such as "AH", "10s" or "qd"
func ParseCard(notation string) (Card, error) {
	n := strings.ToUpper(strings.TrimSpace(notation))
	if len(n) < 2 {
		return Card{}, types.Errorf(types.ErrInvalidCard, "%q is not a card", notation)
	}

	rankPart, suitPart := n[:len(n)-1], n[len(n)-1:]

	suit := Suit(-1)
	for _, s := range Suits {
		if s.Initial() == suitPart {
			suit = s
			break
		}
	}
	if !suit.Valid() {
		return Card{}, types.Errorf(types.ErrInvalidCard, "unknown suit in %q", notation)
	}

	for _, r := range Ranks {
		if r.String() == rankPart {
			return Card{Suit: suit, Rank: r}, nil
		}
	}
	return Card{}, types.Errorf(types.ErrInvalidCard, "unknown rank in %q", notation)
}

// MustParseCards parses space separated notations and panics on error.
// Intended for fixtures.
func MustParseCards(notations string) []Card {
	fields := strings.Fields(notations)
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			panic(err)
		}
		cards = append(cards, c)
	}
	return cards
}

// Hand is an ordered sequence of cards owned by one player
type Hand []Card

// String renders the hand as space separated notations
func (h Hand) String() string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}

// Clone returns an independent copy of the hand
func (h Hand) Clone() Hand {
	if h == nil {
		return nil
	}
	out := make(Hand, len(h))
	copy(out, h)
	return out
}

// IndexOf returns the position of card in the hand, or -1
func (h Hand) IndexOf(card Card) int {
	for i, c := range h {
		if c == card {
			return i
		}
	}
	return -1
}

// HasSuit reports whether any card in the hand is of the given suit
func (h Hand) HasSuit(suit Suit) bool {
	for _, c := range h {
		if c.Suit == suit {
			return true
		}
	}
	return false
}
