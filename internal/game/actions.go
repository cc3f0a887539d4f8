package game

import "fmt"

// Action is a single operator-recorded state transition. Each kind carries
// its own payload and is dispatched through Game.Apply so that adding a new
// kind forces the reducer to handle it.
type Action interface {
	isAction()
}

// FoldAction records a fold for a player
type FoldAction struct {
	PlayerID string
}

// CallAction records a call, or a check when nothing is owed
type CallAction struct {
	PlayerID string
}

// RaiseAction records a bet or raise of Amount additional chips
type RaiseAction struct {
	PlayerID string
	Amount   int
}

// AdvanceRoundAction moves to the next betting round
type AdvanceRoundAction struct{}

// DistributePotAction awards the pot. Winners and Amounts are parallel
// slices in selection order; amounts must sum to the pot exactly.
type DistributePotAction struct {
	WinnerIDs []string
	Amounts   []int
}

// NewHandAction starts the next hand
type NewHandAction struct{}

func (FoldAction) isAction()          {}
func (CallAction) isAction()          {}
func (RaiseAction) isAction()         {}
func (AdvanceRoundAction) isAction()  {}
func (DistributePotAction) isAction() {}
func (NewHandAction) isAction()       {}

// Apply dispatches an action to the matching operation. Invalid actions are
// rejected before any state is mutated.
func (g *Game) Apply(action Action) error {
	switch a := action.(type) {
	case FoldAction:
		return g.Fold(a.PlayerID)
	case CallAction:
		return g.Call(a.PlayerID)
	case RaiseAction:
		return g.Raise(a.PlayerID, a.Amount)
	case AdvanceRoundAction:
		return g.AdvanceRound()
	case DistributePotAction:
		return g.DistributePot(a.WinnerIDs, a.Amounts)
	case NewHandAction:
		return g.StartNewHand()
	default:
		return fmt.Errorf("%w: %T", ErrUnknownAction, action)
	}
}
