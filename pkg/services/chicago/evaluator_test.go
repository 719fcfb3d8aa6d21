package chicago

import (
	"testing"

	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func hand(notations string) entities.Hand {
	return entities.Hand(entities.MustParseCards(notations))
}

func TestCalculateHandScore(t *testing.T) {
	testCases := []struct {
		name     string
		hand     string
		category Category
		score    int
	}{
		{"royal straight flush", "AS KS QS JS 10S", StraightFlush, 15},
		{"low straight flush", "5D 6D 7D 8D 9D", StraightFlush, 15},
		{"four of a kind", "2H 2D 2C 2S 9H", FourOfAKind, 10},
		{"full house", "3H 3D 3C 9S 9H", FullHouse, 8},
		{"flush without straight", "2H 5H 9H JH KH", Flush, 5},
		{"non-flush broadway outranks everything", "AH KS QD JC 10H", BroadwayStraight, 5000},
		{"regular straight", "5H 6D 7C 8S 9H", RegularStraight, 4},
		{"three of a kind", "3H 3D 3C 9S 8H", ThreeOfAKind, 3},
		{"two pair", "3H 3D 9S 9H 2C", TwoPair, 2},
		{"pair", "3H 3D 9S 8H 2C", Pair, 1},
		{"high card", "2H 5D 9S JH KC", HighCard, 0},
		{"ace is never low", "AH 2D 3C 4S 5H", HighCard, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rank := Evaluate(hand(tc.hand))

			assert.Equal(t, tc.category, rank.Category)
			assert.Equal(t, tc.score, rank.Score)
			assert.Equal(t, tc.score, CalculateHandScore(hand(tc.hand)))
		})
	}
}

func TestBroadwayBeatsFourOfAKind(t *testing.T) {
	broadway := CalculateHandScore(hand("AH KS QD JC 10H"))
	quads := CalculateHandScore(hand("2H 2D 2C 2S 9H"))
	straightFlush := CalculateHandScore(hand("9S 10S JS QS KS"))

	assert.Greater(t, broadway, quads)
	assert.Greater(t, broadway, straightFlush)
}

func TestCompareHands(t *testing.T) {
	testCases := []struct {
		name     string
		a, b     string
		expected int
	}{
		{"higher top card wins", "AH 9D 7C 5S 3H", "KH QD JC 9S 7H", 1},
		{"lower top card loses", "KH QD JC 9S 7H", "AH 9D 7C 5S 3H", -1},
		{"decided on last card", "AH KD 9C 5S 3H", "AS KC 9D 5H 2C", 1},
		{"equal rank multisets", "AH KD 9C 5S 3H", "AS KC 9D 5H 3C", 0},
		{"order in hand does not matter", "3H 5S AH 9C KD", "AS KC 9D 5H 3C", 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, CompareHands(hand(tc.a), hand(tc.b)))
		})
	}
}

func TestBestHands(t *testing.T) {
	t.Run("highest score wins", func(t *testing.T) {
		comparison := BestHands(entities.PhaseFinalScore, []HandEntry{
			{Player: "alice", Hand: hand("2H 5D 9S JH KC")},
			{Player: "bob", Hand: hand("3H 3D 9S 8H 2C")},
			{Player: "carol", Hand: hand("3S 3C 9D 9C 2D")},
		})

		assert.Equal(t, []string{"carol"}, comparison.Winners)
		assert.False(t, comparison.IsTie())
		require.Len(t, comparison.Scores, 3)
		assert.Equal(t, "Two Pair", comparison.Scores[2].Category)
		assert.Equal(t, 2, comparison.Scores[2].Score)
		assert.Equal(t, entities.PhaseFinalScore, comparison.Checkpoint)
	})

	t.Run("equal score decided by tie break", func(t *testing.T) {
		comparison := BestHands(entities.PhaseRedraw1, []HandEntry{
			{Player: "alice", Hand: hand("QH 10D 9C 6S 5H")},
			{Player: "bob", Hand: hand("AH KH 4D 3C 2S")},
		})

		assert.Equal(t, []string{"bob"}, comparison.Winners)
	})

	t.Run("first hand keeps the lead on a lower tie break", func(t *testing.T) {
		comparison := BestHands(entities.PhaseRedraw1, []HandEntry{
			{Player: "alice", Hand: hand("AH KH 4D 3C 2S")},
			{Player: "bob", Hand: hand("QH 10D 9C 6S 5H")},
		})

		assert.Equal(t, []string{"alice"}, comparison.Winners)
	})

	t.Run("zero score first entry is still a candidate", func(t *testing.T) {
		comparison := BestHands(entities.PhaseFinalScore, []HandEntry{
			{Player: "alice", Hand: hand("2H 5D 9S JH KC")},
		})

		assert.Equal(t, []string{"alice"}, comparison.Winners)
	})

	t.Run("identical values share the win", func(t *testing.T) {
		comparison := BestHands(entities.PhaseFinalScore, []HandEntry{
			{Player: "alice", Hand: hand("AH KD 9C 5S 3H")},
			{Player: "bob", Hand: hand("AS KC 9D 5H 3C")},
			{Player: "carol", Hand: hand("2H 5D 9S JH QC")},
		})

		assert.Equal(t, []string{"alice", "bob"}, comparison.Winners)
		assert.True(t, comparison.IsTie())
	})

	t.Run("a better hand clears an earlier tie", func(t *testing.T) {
		comparison := BestHands(entities.PhaseFinalScore, []HandEntry{
			{Player: "alice", Hand: hand("AH KD 9C 5S 3H")},
			{Player: "bob", Hand: hand("AS KC 9D 5H 3C")},
			{Player: "carol", Hand: hand("7H 7D 9S JH QC")},
		})

		assert.Equal(t, []string{"carol"}, comparison.Winners)
	})
}

func TestDescribeHand(t *testing.T) {
	assert.NotEmpty(t, DescribeHand(hand("3H 3D 9S 8H 2C")))
	assert.Empty(t, DescribeHand(hand("3H 3D 9S")))
}

func TestCategoryString(t *testing.T) {
	assert.Equal(t, "Broadway Straight", BroadwayStraight.String())
	assert.Equal(t, "Unknown", Category(99).String())
	assert.Equal(t, 8, FullHouse.Score())
}
