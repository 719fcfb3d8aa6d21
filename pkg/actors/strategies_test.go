package actors

import (
	"context"
	"strings"
	"testing"

	"github.com/fadedpez/chicago/internal/config"
	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/services/chicago"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(notations string) entities.Hand {
	return entities.MustParseCards(notations)
}

func TestKeepMadeHand(t *testing.T) {
	testCases := []struct {
		name     string
		hand     string
		expected []int
	}{
		{"straight stands pat", "5H 6D 7C 8S 9H", nil},
		{"flush stands pat", "2H 5H 9H JH KH", nil},
		{"broadway stands pat", "AH KS QD JC 10H", nil},
		{"pair keeps the pair", "3H 9S 3D 8H 2C", []int{1, 3, 4}},
		{"two pair keeps both pairs", "3H 3D 9S 9H 2C", []int{4}},
		{"trips keep the trips", "3H 3D 3C 9S 8H", []int{3, 4}},
		{"four flush draws one", "2H 5H 9H JH KC", []int{4}},
		{"nothing keeps the high card", "2H 5D 9S AH KC", []int{0, 1, 2, 4}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, KeepMadeHand{}.Redraw(cards(tc.hand)))
		})
	}
}

func TestStandPat(t *testing.T) {
	assert.Empty(t, StandPat{}.Redraw(cards("2H 5D 9S AH KC")))
}

func TestFirstLegal(t *testing.T) {
	view := chicago.PlayView{Hand: cards("AS 3H 9C"), LeadSuit: entities.Hearts}
	assert.Equal(t, 1, FirstLegal{}.Play(view))
}

func TestChaseFinalTrick(t *testing.T) {
	testCases := []struct {
		name     string
		view     chicago.PlayView
		expected int
	}{
		{
			name:     "cheapest card that takes the lead",
			view:     chicago.PlayView{Hand: cards("AH 2S QH 10H"), LeadSuit: entities.Hearts, BestCard: cards("9H")[0]},
			expected: 3,
		},
		{
			name:     "lowest of the suit when it cannot beat",
			view:     chicago.PlayView{Hand: cards("8H 2S 5H"), LeadSuit: entities.Hearts, BestCard: cards("KH")[0]},
			expected: 2,
		},
		{
			name:     "leading holds the best card back",
			view:     chicago.PlayView{Hand: cards("AS 7D 3C"), Leading: true},
			expected: 2,
		},
		{
			name:     "off-suit discards the lowest",
			view:     chicago.PlayView{Hand: cards("AS 7D 4C"), LeadSuit: entities.Hearts, BestCard: cards("2H")[0]},
			expected: 2,
		},
		{
			name:     "a single card is played",
			view:     chicago.PlayView{Hand: cards("AS"), LeadSuit: entities.Hearts},
			expected: 0,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ChaseFinalTrick{}.Play(tc.view))
		})
	}
}

func TestAIDelegates(t *testing.T) {
	ai := NewAI("theo", KeepMadeHand{}, nil)
	ctx := context.Background()

	positions, err := ai.DecideRedraw(ctx, chicago.RedrawView{Hand: cards("3H 9S 3D 8H 2C")})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3, 4}, positions)

	index, err := ai.DecidePlay(ctx, chicago.PlayView{Hand: cards("AS 3H"), LeadSuit: entities.Hearts})
	require.NoError(t, err)
	assert.Equal(t, 1, index)
	assert.Equal(t, "theo", ai.Name())
}

func TestRegistry(t *testing.T) {
	r := DefaultRegistry()

	redraw, play := r.Names()
	assert.Equal(t, []string{config.RedrawKeepMadeHand, config.RedrawStandPat}, redraw)
	assert.Equal(t, []string{config.PlayChaseFinalTrick, config.PlayFirstLegal}, play)

	err := r.RegisterPlay(config.PlayFirstLegal, FirstLegal{})
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))

	_, err = r.Redraw("bluff")
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
	_, err = r.Play("bluff")
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}

func TestRegistryFromTable(t *testing.T) {
	table := config.TableConfig{
		Players: []config.SeatConfig{
			{Name: "alice", Kind: config.KindHuman},
			{Name: "theo", Kind: config.KindAI, Redraw: config.RedrawStandPat, Play: config.PlayFirstLegal},
			{Name: "bea", Kind: config.KindHuman},
		},
	}

	actors, err := DefaultRegistry().FromTable(table, strings.NewReader("1\n2\n"), &strings.Builder{}, logging.Discard())
	require.NoError(t, err)
	require.Len(t, actors, 3)
	assert.IsType(t, &Human{}, actors[0])
	assert.IsType(t, &AI{}, actors[1])
	assert.Equal(t, "bea", actors[2].Name())

	// Both humans read the same stream in turn
	view := chicago.PlayView{Hand: cards("AS 3H"), Leading: true}
	a, err := actors[0].DecidePlay(context.Background(), view)
	require.NoError(t, err)
	b, err := actors[2].DecidePlay(context.Background(), view)
	require.NoError(t, err)
	assert.Equal(t, 0, a)
	assert.Equal(t, 1, b)

	_, err = DefaultRegistry().FromSeat(config.SeatConfig{Name: "x", Kind: "robot"}, nil, nil, nil)
	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}

// dumpHand discards everything
type dumpHand struct{}

func (dumpHand) Redraw(hand entities.Hand) []int {
	positions := make([]int, len(hand))
	for i := range hand {
		positions[i] = i
	}
	return positions
}

func TestRegistryFromTableCustomStrategy(t *testing.T) {
	r := DefaultRegistry()
	require.NoError(t, r.RegisterRedraw("dump-hand", dumpHand{}))

	table, err := config.ParseTable([]byte(`
players:
  - name: alice
    kind: ai
    redraw: dump-hand
  - name: theo
    kind: ai
`))
	require.NoError(t, err)
	require.NoError(t, table.Validate())

	seats, err := r.FromTable(*table, strings.NewReader(""), &strings.Builder{}, logging.Discard())
	require.NoError(t, err)

	positions, err := seats[0].DecideRedraw(context.Background(), chicago.RedrawView{Hand: cards("3H 9S 3D 8H 2C")})
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, positions)
}

func TestRegistryFromTableUnknownStrategy(t *testing.T) {
	table := config.TableConfig{
		Players: []config.SeatConfig{
			{Name: "alice", Kind: config.KindHuman},
			{Name: "theo", Kind: config.KindAI, Redraw: "yolo", Play: config.PlayFirstLegal},
		},
		Rules: config.DefaultRules(),
	}
	require.NoError(t, table.Validate())

	_, err := DefaultRegistry().FromTable(table, strings.NewReader(""), &strings.Builder{}, logging.Discard())

	assert.True(t, types.IsGameError(err, types.ErrInvalidArgument))
}
