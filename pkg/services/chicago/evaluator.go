package chicago

import (
	"sort"

	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/paulhankin/poker"
)

// Category is the poker category a Chicago hand falls into
type Category int

const (
	HighCard Category = iota
	Pair
	TwoPair
	ThreeOfAKind
	RegularStraight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	BroadwayStraight
)

var categoryNames = map[Category]string{
	HighCard:         "High Card",
	Pair:             "Pair",
	TwoPair:          "Two Pair",
	ThreeOfAKind:     "Three of a Kind",
	RegularStraight:  "Straight",
	Flush:            "Flush",
	FullHouse:        "Full House",
	FourOfAKind:      "Four of a Kind",
	StraightFlush:    "Straight Flush",
	BroadwayStraight: "Broadway Straight",
}

// categoryScores is the Chicago scoring table. A non-flush Broadway straight
// is deliberately worth 5000 and outranks every other category.
var categoryScores = map[Category]int{
	HighCard:         0,
	Pair:             1,
	TwoPair:          2,
	ThreeOfAKind:     3,
	RegularStraight:  4,
	Flush:            5,
	FullHouse:        8,
	FourOfAKind:      10,
	StraightFlush:    15,
	BroadwayStraight: 5000,
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return "Unknown"
}

// Score returns the points value of the category
func (c Category) Score() int {
	return categoryScores[c]
}

// HandRank is the evaluated category and score of a hand
type HandRank struct {
	Category Category
	Score    int
}

// RankValue returns the rank value of a card: 2-10 as printed, J=11, Q=12,
// K=13, A=14.
func RankValue(card entities.Card) int {
	return card.Rank.Value()
}

// Evaluate classifies a hand. Categories are checked in fixed precedence and
// the first match wins.
func Evaluate(hand entities.Hand) HandRank {
	category := HighCard
	switch {
	case hasStraightFlush(hand):
		category = StraightFlush
	case hasFourOfAKind(hand):
		category = FourOfAKind
	case hasFullHouse(hand):
		category = FullHouse
	case hasFlush(hand):
		category = Flush
	case hasBroadwayStraight(hand):
		category = BroadwayStraight
	case hasRegularStraight(hand):
		category = RegularStraight
	case hasThreeOfAKind(hand):
		category = ThreeOfAKind
	case hasTwoPair(hand):
		category = TwoPair
	case hasPair(hand):
		category = Pair
	}
	return HandRank{Category: category, Score: category.Score()}
}

// CalculateHandScore returns the Chicago score of a hand
func CalculateHandScore(hand entities.Hand) int {
	return Evaluate(hand).Score
}

// CompareHands breaks ties between hands with the same score. Both hands'
// rank values are sorted descending and compared position by position; the
// result is the sign of the first difference, or 0.
func CompareHands(a, b entities.Hand) int {
	av := sortedValuesDesc(a)
	bv := sortedValuesDesc(b)

	n := len(av)
	if len(bv) < n {
		n = len(bv)
	}
	for i := 0; i < n; i++ {
		switch {
		case av[i] > bv[i]:
			return 1
		case av[i] < bv[i]:
			return -1
		}
	}
	return 0
}

// HandEntry is a player's hand submitted to a best-hand determination
type HandEntry struct {
	Player string
	Hand   entities.Hand
}

// BestHands finds the best hand among the entries. The highest score wins;
// equal scores are decided by CompareHands against the current best, and
// fully equal hands share the win.
func BestHands(checkpoint entities.Phase, entries []HandEntry) *entities.HandComparison {
	comparison := &entities.HandComparison{
		Checkpoint: checkpoint,
		Scores:     make([]entities.HandScore, 0, len(entries)),
	}

	best := -1
	var bestRank HandRank
	var winners []string

	for i, entry := range entries {
		rank := Evaluate(entry.Hand)
		comparison.Scores = append(comparison.Scores, entities.HandScore{
			Player:      entry.Player,
			Hand:        entry.Hand.Clone(),
			Category:    rank.Category.String(),
			Score:       rank.Score,
			Description: DescribeHand(entry.Hand),
		})

		switch {
		case best < 0 || rank.Score > bestRank.Score:
			best, bestRank = i, rank
			winners = []string{entry.Player}
		case rank.Score == bestRank.Score:
			cmp := CompareHands(entries[best].Hand, entry.Hand)
			if cmp < 0 {
				best, bestRank = i, rank
				winners = []string{entry.Player}
			} else if cmp == 0 {
				winners = append(winners, entry.Player)
			}
		}
	}

	comparison.Winners = winners
	return comparison
}

// DescribeHand returns the conventional poker name of a five card hand,
// e.g. "pair of 8s". Other hand sizes describe as "".
func DescribeHand(hand entities.Hand) string {
	if len(hand) != entities.HandSize {
		return ""
	}
	cards := make([]poker.Card, 0, len(hand))
	for _, c := range hand {
		pc, err := toPokerCard(c)
		if err != nil {
			return ""
		}
		cards = append(cards, pc)
	}
	desc, err := poker.Describe(cards)
	if err != nil {
		return ""
	}
	return desc
}

func toPokerCard(c entities.Card) (poker.Card, error) {
	var s poker.Suit
	switch c.Suit {
	case entities.Clubs:
		s = poker.Club
	case entities.Diamonds:
		s = poker.Diamond
	case entities.Hearts:
		s = poker.Heart
	default:
		s = poker.Spade
	}
	// The library counts the ace as rank 1.
	r := poker.Rank(c.Rank.Value())
	if c.Rank == entities.Ace {
		r = poker.Rank(1)
	}
	return poker.MakeCard(s, r)
}

func countRanks(hand entities.Hand) map[entities.Rank]int {
	counts := make(map[entities.Rank]int)
	for _, c := range hand {
		counts[c.Rank]++
	}
	return counts
}

func countSuits(hand entities.Hand) map[entities.Suit]int {
	counts := make(map[entities.Suit]int)
	for _, c := range hand {
		counts[c.Suit]++
	}
	return counts
}

func hasRankCount(hand entities.Hand, n int) bool {
	for _, count := range countRanks(hand) {
		if count == n {
			return true
		}
	}
	return false
}

func hasPair(hand entities.Hand) bool {
	return hasRankCount(hand, 2)
}

func hasTwoPair(hand entities.Hand) bool {
	pairs := 0
	for _, count := range countRanks(hand) {
		if count == 2 {
			pairs++
		}
	}
	return pairs == 2
}

func hasThreeOfAKind(hand entities.Hand) bool {
	return hasRankCount(hand, 3)
}

func hasFourOfAKind(hand entities.Hand) bool {
	return hasRankCount(hand, 4)
}

func hasFullHouse(hand entities.Hand) bool {
	return hasRankCount(hand, 3) && hasRankCount(hand, 2)
}

func hasFlush(hand entities.Hand) bool {
	for _, count := range countSuits(hand) {
		if count == 5 {
			return true
		}
	}
	return false
}

// hasRegularStraight slides a window of five over the sorted distinct rank
// values. Aces only count high.
func hasRegularStraight(hand entities.Hand) bool {
	values := distinctValuesAsc(hand)
	for i := 0; i+4 < len(values); i++ {
		if values[i]+4 == values[i+4] {
			return true
		}
	}
	return false
}

func hasBroadwayStraight(hand entities.Hand) bool {
	present := make(map[int]bool, len(hand))
	for _, c := range hand {
		present[RankValue(c)] = true
	}
	for v := entities.Ten.Value(); v <= entities.Ace.Value(); v++ {
		if !present[v] {
			return false
		}
	}
	return true
}

func hasStraightFlush(hand entities.Hand) bool {
	return (hasRegularStraight(hand) || hasBroadwayStraight(hand)) && hasFlush(hand)
}

func distinctValuesAsc(hand entities.Hand) []int {
	seen := make(map[int]bool, len(hand))
	values := make([]int, 0, len(hand))
	for _, c := range hand {
		v := RankValue(c)
		if !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	sort.Ints(values)
	return values
}

func sortedValuesDesc(hand entities.Hand) []int {
	values := make([]int, len(hand))
	for i, c := range hand {
		values[i] = RankValue(c)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(values)))
	return values
}
