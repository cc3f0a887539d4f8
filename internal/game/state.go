package game

import "fmt"

// State is a flat copy of everything needed to persist and later restore a
// game. The event log is deliberately not part of it; a resumed session
// starts with an empty log.
type State struct {
	ID          string
	Name        string
	Players     []*Player
	Pot         int
	CurrentBet  int
	Hand        int
	Round       Round
	ActionOn    int
	DealerIndex int
	Acted       []string
}

// State returns a deep copy of the game's restorable state
func (g *Game) State() State {
	players := make([]*Player, len(g.players))
	for i, p := range g.players {
		cp := *p
		players[i] = &cp
	}
	acted := make([]string, 0, len(g.acted))
	for _, p := range g.players {
		if g.acted[p.ID] {
			acted = append(acted, p.ID)
		}
	}
	return State{
		ID:          g.id,
		Name:        g.name,
		Players:     players,
		Pot:         g.pot,
		CurrentBet:  g.currentBet,
		Hand:        g.hand,
		Round:       g.round,
		ActionOn:    g.actionOn,
		DealerIndex: g.dealer,
		Acted:       acted,
	}
}

// FromState rebuilds a game from restorable state. Fields that cannot be
// trusted (indices, acted ids) are clamped or dropped rather than failing;
// anything that would break the chip accounting is rejected.
func FromState(st State) (*Game, error) {
	if st.Name == "" {
		return nil, fmt.Errorf("game name is required")
	}
	if len(st.Players) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if st.Pot < 0 {
		return nil, fmt.Errorf("negative pot %d", st.Pot)
	}
	if st.Round < PreFlop || st.Round > River {
		st.Round = PreFlop
	}

	total := st.Pot
	players := make([]*Player, len(st.Players))
	seen := make(map[string]bool, len(st.Players))
	for i, p := range st.Players {
		if p == nil || p.ID == "" || p.Name == "" {
			return nil, fmt.Errorf("player %d is missing an id or name", i)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("duplicate player id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Chips < 0 || p.RoundBet < 0 || p.Committed < 0 {
			return nil, fmt.Errorf("player %s has negative chip counts", p.Name)
		}
		cp := *p
		if _, ok := ParseStatus(string(cp.Status)); !ok {
			cp.Status = StatusActive
		}
		players[i] = &cp
		total += cp.Chips
	}

	g := &Game{
		id:          st.ID,
		name:        st.Name,
		players:     players,
		pot:         st.Pot,
		currentBet:  max(st.CurrentBet, 0),
		hand:        max(st.Hand, 0),
		round:       st.Round,
		dealer:      st.DealerIndex,
		actionOn:    st.ActionOn,
		acted:       make(map[string]bool),
		chipsInPlay: total,
	}
	if g.dealer < 0 || g.dealer >= len(players) {
		g.dealer = 0
	}
	if g.actionOn < 0 || g.actionOn >= len(players) {
		g.actionOn = 0
	}
	// The saved cursor may point at a seat that can no longer act; settle
	// it on the nearest active player so the restored flags are live.
	if next := g.nextActivePlayer(g.actionOn); next != -1 {
		g.actionOn = next
	}
	for _, id := range st.Acted {
		if seen[id] {
			g.acted[id] = true
		}
	}

	g.derivePositions()
	g.computeFlags()
	return g, nil
}
