package game

import "fmt"

// EventType represents a game event type with type safety
type EventType string

const (
	EventHandStart    EventType = "hand_start"
	EventPlayerAction EventType = "player_action"
	EventRoundChange  EventType = "round_change"
	EventPotAwarded   EventType = "pot_awarded"
	EventPlayerBusted EventType = "player_busted"
)

// Event is a single entry in the hand log
type Event struct {
	Type   EventType
	Hand   int
	Round  Round
	Player string // display name, empty for table-level events
	Action string // fold, check, call, raise for player actions
	Amount int
	Pot    int // pot total after the event
}

// String formats the event for the operator log
func (e Event) String() string {
	switch e.Type {
	case EventHandStart:
		return fmt.Sprintf("--- Hand %d ---", e.Hand)
	case EventRoundChange:
		return fmt.Sprintf("* %s (pot %d)", e.Round, e.Pot)
	case EventPotAwarded:
		return fmt.Sprintf("%s wins %d", e.Player, e.Amount)
	case EventPlayerBusted:
		return fmt.Sprintf("%s is eliminated", e.Player)
	case EventPlayerAction:
		switch e.Action {
		case "fold":
			return fmt.Sprintf("%s: folds", e.Player)
		case "check":
			return fmt.Sprintf("%s: checks", e.Player)
		case "call":
			return fmt.Sprintf("%s: calls %d (pot %d)", e.Player, e.Amount, e.Pot)
		case "raise":
			return fmt.Sprintf("%s: raises %d (pot %d)", e.Player, e.Amount, e.Pot)
		}
	}
	return string(e.Type)
}

func (g *Game) emit(e Event) {
	e.Hand = g.hand
	e.Round = g.round
	g.events = append(g.events, e)
}

// Events returns the full event log for the session
func (g *Game) Events() []Event {
	return g.events
}
