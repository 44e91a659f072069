package game

import (
	"time"

	"github.com/lox/tupleout/internal/dice"
)

// EventType identifies a game event.
type EventType string

const (
	EventTypeTurnStart     EventType = "turn_start"
	EventTypeDiceRolled    EventType = "dice_rolled"
	EventTypeTurnBust      EventType = "turn_bust"
	EventTypeTurnBank      EventType = "turn_bank"
	EventTypeScoresUpdated EventType = "scores_updated"
	EventTypeMatchWon      EventType = "match_won"
)

func (et EventType) String() string {
	return string(et)
}

// GameEvent is anything published on the EventBus during a match.
type GameEvent interface {
	EventType() EventType
	Timestamp() time.Time
}

// TurnStartEvent is published before a player's first roll.
type TurnStartEvent struct {
	Player    string
	Score     int
	Target    int
	timestamp time.Time
}

func (e TurnStartEvent) EventType() EventType { return EventTypeTurnStart }
func (e TurnStartEvent) Timestamp() time.Time { return e.timestamp }

// DiceRolledEvent is published after every roll, including the one that
// tuples out.
type DiceRolledEvent struct {
	Player    string
	Roll      []dice.Die
	Fixed     []dice.Die
	Combined  []dice.Die
	Total     int
	Bust      bool
	Rolls     int
	timestamp time.Time
}

func (e DiceRolledEvent) EventType() EventType { return EventTypeDiceRolled }
func (e DiceRolledEvent) Timestamp() time.Time { return e.timestamp }

// TurnBustEvent is published when a turn tuples out.
type TurnBustEvent struct {
	Player    string
	Combined  []dice.Die
	Tuple     dice.Die
	timestamp time.Time
}

func (e TurnBustEvent) EventType() EventType { return EventTypeTurnBust }
func (e TurnBustEvent) Timestamp() time.Time { return e.timestamp }

// TurnBankEvent is published when a player stops and keeps their points.
type TurnBankEvent struct {
	Player    string
	Points    int
	Rolls     int
	timestamp time.Time
}

func (e TurnBankEvent) EventType() EventType { return EventTypeTurnBank }
func (e TurnBankEvent) Timestamp() time.Time { return e.timestamp }

// ScoresUpdatedEvent is published after every turn with the full standings.
type ScoresUpdatedEvent struct {
	Player    string // whose turn just ended
	Points    int
	Standings []Standing
	Leader    Standing // ties go to the earlier player in roster order
	timestamp time.Time
}

func (e ScoresUpdatedEvent) EventType() EventType { return EventTypeScoresUpdated }
func (e ScoresUpdatedEvent) Timestamp() time.Time { return e.timestamp }

// MatchWonEvent is published once, when a player reaches the target.
type MatchWonEvent struct {
	Winner    string
	Score     int
	Standings []Standing
	NewRecord bool
	Turns     int
	Duration  time.Duration
	timestamp time.Time
}

func (e MatchWonEvent) EventType() EventType { return EventTypeMatchWon }
func (e MatchWonEvent) Timestamp() time.Time { return e.timestamp }

// EventSubscriber receives published events.
type EventSubscriber interface {
	OnEvent(event GameEvent)
}

// EventSubscriberFunc adapts a function to EventSubscriber.
type EventSubscriberFunc func(event GameEvent)

func (f EventSubscriberFunc) OnEvent(event GameEvent) { f(event) }

// EventBus manages event publishing and subscription.
type EventBus interface {
	Subscribe(subscriber EventSubscriber)
	Unsubscribe(subscriber EventSubscriber)
	Publish(event GameEvent)
}

// SimpleEventBus delivers events synchronously, in subscription order.
type SimpleEventBus struct {
	subscribers []EventSubscriber
}

func NewEventBus() EventBus {
	return &SimpleEventBus{
		subscribers: make([]EventSubscriber, 0),
	}
}

func (bus *SimpleEventBus) Subscribe(subscriber EventSubscriber) {
	bus.subscribers = append(bus.subscribers, subscriber)
}

// Unsubscribe removes subscriber. Subscribers must be comparable.
func (bus *SimpleEventBus) Unsubscribe(subscriber EventSubscriber) {
	for i, sub := range bus.subscribers {
		if sub == subscriber {
			bus.subscribers = append(bus.subscribers[:i], bus.subscribers[i+1:]...)
			break
		}
	}
}

func (bus *SimpleEventBus) Publish(event GameEvent) {
	for _, subscriber := range bus.subscribers {
		subscriber.OnEvent(event)
	}
}
