package game

// Status is a player's state within the current hand
type Status string

const (
	StatusActive Status = "active"
	StatusFolded Status = "folded"
	StatusAllIn  Status = "all-in"
)

// ParseStatus validates a status string from a saved snapshot
func ParseStatus(s string) (Status, bool) {
	switch Status(s) {
	case StatusActive, StatusFolded, StatusAllIn:
		return Status(s), true
	}
	return "", false
}

// Position is a player's table position, derived from the dealer index
type Position int

const (
	PositionNone Position = iota
	PositionDealer
	PositionSmallBlind
	PositionBigBlind
)

func (p Position) String() string {
	switch p {
	case PositionDealer:
		return "dealer"
	case PositionSmallBlind:
		return "small-blind"
	case PositionBigBlind:
		return "big-blind"
	default:
		return ""
	}
}

// Player represents a player at the table
type Player struct {
	ID        string
	Name      string
	Chips     int
	Status    Status
	RoundBet  int // chips committed in the current betting round
	Committed int // chips committed across the whole hand
	Position  Position
}

// CanAct returns true if the player can still take betting actions
func (p *Player) CanAct() bool {
	return p.Status == StatusActive
}

// InHand returns true if the player is still contesting the pot
func (p *Player) InHand() bool {
	return p.Status != StatusFolded
}

// Funded returns true if the player has chips left to play a hand with
func (p *Player) Funded() bool {
	return p.Chips > 0
}
