package game

// ActionFlags describes what the current player may do, computed once per
// state transition so consumers never rederive it.
type ActionFlags struct {
	PlayerID   string
	CanCheck   bool
	CanCall    bool
	CanRaise   bool
	CallAmount int // chips needed to match the table bet, capped at the stack
	MinRaise   int // smallest legal raise amount
	MaxRaise   int // the player's whole stack
}

func (g *Game) computeFlags() {
	g.flags = ActionFlags{}

	p := g.CurrentPlayer()
	if p == nil || !p.CanAct() {
		return
	}

	owed := g.currentBet - p.RoundBet
	if owed < 0 {
		owed = 0
	}
	// A completed round leaves no decision open, unless the player is still
	// behind an all-in bet and owes a fold-or-call.
	if g.IsRoundComplete() && owed == 0 {
		return
	}
	minRaise := owed + 1

	g.flags = ActionFlags{
		PlayerID:   p.ID,
		CanCheck:   owed == 0,
		CanCall:    owed > 0,
		CanRaise:   p.Chips >= minRaise && !g.IsRoundComplete(),
		CallAmount: min(owed, p.Chips),
		MinRaise:   minRaise,
		MaxRaise:   p.Chips,
	}
}
