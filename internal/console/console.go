package console

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fadedpez/chicago/pkg/entities"
	"github.com/fadedpez/chicago/pkg/services/chicago"
	"github.com/fadedpez/chicago/pkg/services/statistics"
	"github.com/pterm/pterm"
)

var (
	redCard   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	blackCard = lipgloss.NewStyle().Bold(true)
	position  = lipgloss.NewStyle().Faint(true)
	errorText = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// RenderCard renders a card in its suit colour
func RenderCard(c entities.Card) string {
	if c.Suit.IsRed() {
		return redCard.Render(c.String())
	}
	return blackCard.Render(c.String())
}

// RenderHand renders a hand with 1-based positions, e.g. "1:AH 2:10S"
func RenderHand(h entities.Hand) string {
	parts := make([]string, len(h))
	for i, c := range h {
		parts[i] = position.Render(strconv.Itoa(i+1)+":") + RenderCard(c)
	}
	return strings.Join(parts, " ")
}

// RenderError renders a rejected decision
func RenderError(err error) string {
	return errorText.Render("! " + err.Error())
}

// Printer writes table events to a terminal
type Printer struct {
	out     io.Writer
	verbose bool
}

// NewPrinter creates a printer writing to out. A verbose printer also shows
// every player's dealt and redrawn hands.
func NewPrinter(out io.Writer, verbose bool) *Printer {
	return &Printer{out: out, verbose: verbose}
}

// Emit renders one event
func (p *Printer) Emit(e chicago.Event) {
	switch e.Type {
	case chicago.EventRoundStarted:
		p.print(pterm.DefaultSection.Sprintfln("Round %d, %s leads", e.Round+1, e.Player))
	case chicago.EventDealt, chicago.EventRedraw:
		if p.verbose {
			p.printf("%-10s %s\n", e.Player, RenderHand(e.Hand))
		}
	case chicago.EventHandComparison:
		p.printComparison(e.Comparison)
	case chicago.EventCardPlayed:
		p.printf("  %s plays %s\n", e.Player, RenderCard(e.Card))
	case chicago.EventAutoPlay:
		p.print(pterm.Warning.Sprintfln("%s ran out of attempts, %s is played for them", e.Player, e.Card))
	case chicago.EventIllegalPlay, chicago.EventDecisionError:
		p.printf("  %s\n", RenderError(e.Err))
	case chicago.EventTrickComplete:
		p.print(pterm.Info.Sprintfln("Trick %d goes to %s with %s", e.Trick.Number, e.Player, e.Card))
	case chicago.EventOutplayAward:
		p.print(pterm.Success.Sprintfln("%s takes the last trick and %d points", e.Player, e.Points))
	case chicago.EventRoundComplete:
		p.PrintPoints(e.Result.Points, e.Result.FinalScore)
	case chicago.EventRoundFailed:
		p.print(pterm.Error.Sprintfln("Round %d abandoned: %v", e.Round+1, e.Err))
	case chicago.EventGameComplete:
		if e.Player == "" {
			p.print(pterm.Warning.Sprintln("No one reached the winning score"))
		} else {
			p.print(pterm.Success.Sprintfln("%s wins the game", e.Player))
		}
	}
}

func (p *Printer) printComparison(c *entities.HandComparison) {
	if c == nil {
		return
	}
	label := "Best hand after the first redraw"
	if c.Checkpoint == entities.PhaseFinalScore {
		label = "Best hand before outplay"
	}
	names := strings.Join(c.Winners, ", ")
	if c.IsTie() {
		names += " (tie)"
	}
	p.print(pterm.Info.Sprintfln("%s: %s", label, names))

	if !p.verbose {
		return
	}
	data := pterm.TableData{{"Player", "Hand", "Category", "Score"}}
	for _, s := range c.Scores {
		data = append(data, []string{s.Player, RenderHand(s.Hand), s.Category, strconv.Itoa(s.Score)})
	}
	p.table(data)
}

// PrintPoints renders the cumulative points after a round
func (p *Printer) PrintPoints(points map[string]int, final *entities.HandComparison) {
	data := pterm.TableData{{"Player", "Points"}}
	if final != nil {
		for _, s := range final.Scores {
			data = append(data, []string{s.Player, strconv.Itoa(points[s.Player])})
		}
	}
	p.table(data)
}

// PrintStandings renders the final standings of a game
func (p *Printer) PrintStandings(standings []chicago.Standing) {
	p.print(pterm.DefaultSection.Sprintln("Standings"))
	data := pterm.TableData{{"#", "Player", "Points"}}
	for i, s := range standings {
		data = append(data, []string{strconv.Itoa(i + 1), s.Player, strconv.Itoa(s.Points)})
	}
	p.table(data)
}

// PrintLeaderboard renders one page of the all-time leaderboard
func (p *Printer) PrintLeaderboard(board *statistics.Leaderboard) {
	if board == nil || len(board.Players) == 0 {
		return
	}
	p.print(pterm.DefaultSection.Sprintfln("Leaderboard (page %d of %d)", board.CurrentPage, board.TotalPages))
	data := pterm.TableData{{"#", "Player", "Rounds", "Points", "Tricks", "Last trick", "Best hand"}}
	for _, r := range board.Players {
		name := r.PlayerName
		if r.IsTopTrickWin {
			name += " *"
		}
		data = append(data, []string{
			strconv.Itoa(r.Rank),
			name,
			strconv.Itoa(r.RoundsPlayed),
			strconv.Itoa(r.PointsEarned),
			fmt.Sprintf("%.1f%%", r.TrickWinRate),
			fmt.Sprintf("%.1f%%", r.OutplayRate),
			r.HighestHand,
		})
	}
	p.table(data)
}

func (p *Printer) table(data pterm.TableData) {
	rendered, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		p.printf("%v\n", err)
		return
	}
	p.print(rendered + "\n")
}

func (p *Printer) print(s string) {
	fmt.Fprint(p.out, s)
}

func (p *Printer) printf(format string, args ...any) {
	fmt.Fprintf(p.out, format, args...)
}
