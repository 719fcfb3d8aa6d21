package chicago

import (
	"github.com/fadedpez/chicago/internal/logging"
	"github.com/fadedpez/chicago/pkg/entities"
)

// EventType names something observable that happened at the table
type EventType string

const (
	EventRoundStarted   EventType = "ROUND_STARTED"
	EventDealt          EventType = "DEALT"
	EventRedraw         EventType = "REDRAW"
	EventHandComparison EventType = "HAND_COMPARISON"
	EventSnapshot       EventType = "SNAPSHOT"
	EventCardPlayed     EventType = "CARD_PLAYED"
	EventIllegalPlay    EventType = "ILLEGAL_PLAY"
	EventDecisionError  EventType = "DECISION_ERROR"
	EventAutoPlay       EventType = "AUTO_PLAY"
	EventTrickComplete  EventType = "TRICK_COMPLETE"
	EventOutplayAward   EventType = "OUTPLAY_AWARD"
	EventRoundComplete  EventType = "ROUND_COMPLETE"
	EventRoundFailed    EventType = "ROUND_FAILED"
	EventGameComplete   EventType = "GAME_COMPLETE"
)

// Event is reported to the EventSink. Only the fields relevant to the type
// are set.
type Event struct {
	Type       EventType
	Round      int
	Phase      entities.Phase
	Player     string
	Hand       entities.Hand
	Card       entities.Card
	Positions  []int
	Trick      *entities.TrickRecord
	Comparison *entities.HandComparison
	Result     *entities.RoundResult
	Points     int
	Err        error
}

// EventSink receives table events
type EventSink interface {
	Emit(event Event)
}

// SinkFunc adapts a function to an EventSink
type SinkFunc func(event Event)

// Emit calls f(event)
func (f SinkFunc) Emit(event Event) {
	f(event)
}

// NopSink drops every event
type NopSink struct{}

// Emit does nothing
func (NopSink) Emit(Event) {}

// MultiSink fans events out to several sinks in order
type MultiSink []EventSink

// Emit forwards the event to every sink
func (m MultiSink) Emit(event Event) {
	for _, sink := range m {
		sink.Emit(event)
	}
}

// LogSink writes every event to the logger at DEBUG
func LogSink(logger *logging.Logger) EventSink {
	return SinkFunc(func(e Event) {
		if e.Err != nil {
			logger.Debug("round=%d phase=%s event=%s player=%s err=%v", e.Round, e.Phase, e.Type, e.Player, e.Err)
			return
		}
		logger.Debug("round=%d phase=%s event=%s player=%s", e.Round, e.Phase, e.Type, e.Player)
	})
}
