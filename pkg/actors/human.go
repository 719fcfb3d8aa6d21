package actors

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/fadedpez/chicago/internal/console"
	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/internal/types"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/services/chicago"
)

// Input is a line oriented input provider. One Input may be shared by
// several human seats reading the same stream.
type Input struct {
	scanner *bufio.Scanner
}

// NewInput wraps r
func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its line ending. A closed stream
// returns io.EOF.
func (in *Input) ReadLine() (string, error) {
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(in.scanner.Text()), nil
}

// HumanOption configures a Human
type HumanOption func(*Human)

// WithHumanLogger sets the logger for rejected input
func WithHumanLogger(logger *logging.Logger) HumanOption {
	return func(h *Human) {
		if logger != nil {
			h.logger = logger
		}
	}
}

// Human asks a person for every decision through an input provider
type Human struct {
	name   string
	in     *Input
	out    io.Writer
	logger *logging.Logger
}

// NewHuman creates a human actor
func NewHuman(name string, in *Input, out io.Writer, opts ...HumanOption) *Human {
	h := &Human{
		name:   name,
		in:     in,
		out:    out,
		logger: logging.Discard(),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Name returns the player's name
func (h *Human) Name() string {
	return h.name
}

// DecideRedraw reads one line: "all" replaces the whole hand, an empty line
// keeps it, anything else is a space separated list of card notations. A
// notation that is not in the hand is reported and skipped.
func (h *Human) DecideRedraw(ctx context.Context, view chicago.RedrawView) ([]int, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	fmt.Fprintf(h.out, "\n%s, round %d %s\n", h.name, view.Round+1, redrawLabel(view.Phase))
	fmt.Fprintf(h.out, "Your hand: %s\n", console.RenderHand(view.Hand))
	fmt.Fprint(h.out, "Cards to replace (e.g. \"AH 10S\", \"all\", or empty to keep): ")

	line, err := h.in.ReadLine()
	if err != nil {
		return nil, err
	}
	return h.parseRedraw(line, view.Hand), nil
}

func (h *Human) parseRedraw(line string, hand entities.Hand) []int {
	if line == "" {
		return nil
	}
	if strings.EqualFold(line, "all") {
		positions := make([]int, len(hand))
		for i := range hand {
			positions[i] = i
		}
		return positions
	}

	var positions []int
	for _, token := range strings.Fields(line) {
		card, err := entities.ParseCard(token)
		if err != nil {
			h.reject(types.WrapError(types.ErrCardNotFound, fmt.Sprintf("%q is not a card in your hand", token), err))
			continue
		}
		pos := hand.IndexOf(card)
		if pos < 0 {
			h.reject(types.Errorf(types.ErrCardNotFound, "%s is not in your hand", card))
			continue
		}
		positions = append(positions, pos)
	}
	return positions
}

// DecidePlay reads a 1-based position, or the notation of a card in hand
func (h *Human) DecidePlay(ctx context.Context, view chicago.PlayView) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	fmt.Fprintf(h.out, "\n%s, trick %d of %d\n", h.name, view.Trick, entities.TricksPerRound)
	if !view.Leading {
		fmt.Fprintf(h.out, "Lead: %s, best so far: %s\n", view.LeadSuit, console.RenderCard(view.BestCard))
	}
	fmt.Fprintf(h.out, "Your hand: %s\n", console.RenderHand(view.Hand))
	fmt.Fprint(h.out, "Card to play (number): ")

	line, err := h.in.ReadLine()
	if err != nil {
		return 0, err
	}

	if n, err := strconv.Atoi(line); err == nil {
		return n - 1, nil
	}
	if card, err := entities.ParseCard(line); err == nil {
		if pos := view.Hand.IndexOf(card); pos >= 0 {
			return pos, nil
		}
	}

	return 0, types.Errorf(types.ErrInvalidInput, "%q is not a card number", line)
}

func (h *Human) reject(err *types.GameError) {
	fmt.Fprintf(h.out, "%s\n", console.RenderError(err))
	h.logger.LogError(err)
}

func redrawLabel(phase entities.Phase) string {
	if phase == entities.PhaseRedraw2 {
		return "second redraw"
	}
	return "first redraw"
}
