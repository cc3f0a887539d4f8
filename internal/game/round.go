package game

// Round represents a betting round within a hand
type Round int

const (
	PreFlop Round = iota
	Flop
	Turn
	River
)

func (r Round) String() string {
	switch r {
	case PreFlop:
		return "pre-flop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// ParseRound validates a round name from a saved snapshot
func ParseRound(s string) (Round, bool) {
	for r := PreFlop; r <= River; r++ {
		if r.String() == s {
			return r, true
		}
	}
	return 0, false
}
