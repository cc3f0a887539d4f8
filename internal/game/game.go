// Package game implements the chip-tracking engine for a live poker game:
// player stacks, the pot, betting rounds and turn order, driven entirely by
// operator-recorded actions. Chips only ever move between a player's stack
// and the pot, so sum(stacks) + pot is constant for the life of a game.
package game

import "fmt"

// Seat describes a player joining a new game
type Seat struct {
	ID   string
	Name string
}

// Game is the authoritative holder of all table and player state. It is
// mutated only through the action methods below; every successful mutation
// recomputes the turn cursor and the current player's action flags.
type Game struct {
	id   string
	name string

	players []*Player

	pot        int
	currentBet int // highest round bet among players this round
	hand       int
	round      Round
	dealer     int

	actionOn int             // cursor into players
	acted    map[string]bool // player ids that have acted since the last round reset

	flags  ActionFlags
	events []Event

	chipsInPlay int
}

// NewGame creates a game with every seat holding startingChips. The first
// hand is not started; call StartNewHand once the table is ready.
func NewGame(id, name string, seats []Seat, startingChips int) (*Game, error) {
	if name == "" {
		return nil, fmt.Errorf("game name is required")
	}
	if len(seats) < 2 {
		return nil, ErrNotEnoughPlayers
	}
	if startingChips < 1 {
		return nil, fmt.Errorf("starting chips must be at least 1, got %d", startingChips)
	}

	players := make([]*Player, 0, len(seats))
	seen := make(map[string]bool, len(seats))
	for _, s := range seats {
		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("seat requires an id and a name")
		}
		if seen[s.ID] {
			return nil, fmt.Errorf("duplicate player id %q", s.ID)
		}
		seen[s.ID] = true
		players = append(players, &Player{
			ID:     s.ID,
			Name:   s.Name,
			Chips:  startingChips,
			Status: StatusActive,
		})
	}

	return &Game{
		id:          id,
		name:        name,
		players:     players,
		dealer:      -1,
		actionOn:    0,
		acted:       make(map[string]bool),
		chipsInPlay: startingChips * len(seats),
	}, nil
}

func (g *Game) ID() string         { return g.id }
func (g *Game) Name() string       { return g.name }
func (g *Game) Players() []*Player { return g.players }
func (g *Game) Pot() int           { return g.pot }
func (g *Game) CurrentBet() int    { return g.currentBet }
func (g *Game) Hand() int          { return g.hand }
func (g *Game) Round() Round       { return g.round }
func (g *Game) DealerIndex() int   { return g.dealer }
func (g *Game) ActionOn() int      { return g.actionOn }
func (g *Game) ChipsInPlay() int   { return g.chipsInPlay }
func (g *Game) Flags() ActionFlags { return g.flags }

// CurrentPlayer returns the player the cursor is on, or nil when the cursor
// has nowhere valid to point.
func (g *Game) CurrentPlayer() *Player {
	if g.actionOn < 0 || g.actionOn >= len(g.players) {
		return nil
	}
	return g.players[g.actionOn]
}

// PlayerByID finds a player by id
func (g *Game) PlayerByID(id string) (*Player, bool) {
	for _, p := range g.players {
		if p.ID == id {
			return p, true
		}
	}
	return nil, false
}

func (g *Game) playerIndex(id string) (int, error) {
	for i, p := range g.players {
		if p.ID == id {
			return i, nil
		}
	}
	return -1, fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
}

// Fold marks a player as out of the hand. No chips move.
func (g *Game) Fold(playerID string) error {
	idx, err := g.validateBettingAction(playerID)
	if err != nil {
		return err
	}

	p := g.players[idx]
	p.Status = StatusFolded
	g.acted[p.ID] = true

	g.emit(Event{Type: EventPlayerAction, Player: p.Name, Action: "fold", Pot: g.pot})
	g.afterAction(idx)
	return nil
}

// Call matches the table bet, transferring at most the player's remaining
// stack. When nothing is owed this is a check. A short stack calls for less
// and goes all-in.
func (g *Game) Call(playerID string) error {
	idx, err := g.validateBettingAction(playerID)
	if err != nil {
		return err
	}

	p := g.players[idx]
	owed := g.currentBet - p.RoundBet
	if owed < 0 {
		owed = 0
	}
	pay := min(owed, p.Chips)

	p.Chips -= pay
	p.RoundBet += pay
	p.Committed += pay
	g.pot += pay
	if p.Chips == 0 && pay > 0 {
		p.Status = StatusAllIn
	}
	g.acted[p.ID] = true

	verb := "call"
	if pay == 0 {
		verb = "check"
	}
	g.emit(Event{Type: EventPlayerAction, Player: p.Name, Action: verb, Amount: pay, Pot: g.pot})
	g.afterAction(idx)
	return nil
}

// Raise transfers amount additional chips from the player to the pot and
// lifts the table bet to the player's new round bet. The minimum is one chip
// over what it would cost to call; the maximum is the player's stack.
// Raising re-opens the action: everyone else must act again.
func (g *Game) Raise(playerID string, amount int) error {
	idx, err := g.validateBettingAction(playerID)
	if err != nil {
		return err
	}
	// Facing an all-in with nobody left to call, the only answers are fold
	// or call; a raise would put chips in the pot that can never be matched.
	if g.IsRoundComplete() {
		return ErrRoundComplete
	}

	p := g.players[idx]
	minRaise := g.currentBet - p.RoundBet + 1
	if minRaise < 1 {
		minRaise = 1
	}
	if amount < minRaise {
		return fmt.Errorf("%w: need at least %d, got %d", ErrRaiseTooSmall, minRaise, amount)
	}
	if amount > p.Chips {
		return fmt.Errorf("%w: have %d, tried to bet %d", ErrInsufficientChips, p.Chips, amount)
	}

	p.Chips -= amount
	p.RoundBet += amount
	p.Committed += amount
	g.pot += amount
	if p.Chips == 0 {
		p.Status = StatusAllIn
	}

	// The table bet rises, so everyone who already acted at the old price
	// owes a decision again. Only the raiser stays marked as acted.
	g.currentBet = p.RoundBet
	clear(g.acted)
	g.acted[p.ID] = true

	g.emit(Event{Type: EventPlayerAction, Player: p.Name, Action: "raise", Amount: amount, Pot: g.pot})
	g.afterAction(idx)
	return nil
}

// AdvanceRound moves to the next betting round once the current one is
// complete: round bets and the table bet reset, the acted-set clears, and
// the cursor returns to the first active player after the dealer.
func (g *Game) AdvanceRound() error {
	if !g.IsRoundComplete() {
		return ErrRoundNotComplete
	}
	if g.round == River {
		return ErrFinalRound
	}

	for _, p := range g.players {
		p.RoundBet = 0
	}
	g.currentBet = 0
	g.round++
	g.resetTracker()

	g.emit(Event{Type: EventRoundChange, Pot: g.pot})
	g.computeFlags()
	return nil
}

// DistributePot awards the pot to the selected winners. Amounts are in
// selection order and must sum to the pot exactly; nothing is applied on a
// mismatch. Players left with zero chips after the award are eliminated.
func (g *Game) DistributePot(winnerIDs []string, amounts []int) error {
	if len(winnerIDs) == 0 {
		return ErrNoWinners
	}
	if len(winnerIDs) != len(amounts) {
		return fmt.Errorf("%w: %d winners, %d amounts", ErrBadDistribution, len(winnerIDs), len(amounts))
	}

	total := 0
	winners := make([]*Player, len(winnerIDs))
	for i, id := range winnerIDs {
		p, ok := g.PlayerByID(id)
		if !ok {
			return fmt.Errorf("%w: %q", ErrPlayerNotFound, id)
		}
		if !p.InHand() {
			return fmt.Errorf("%w: %s has folded", ErrPlayerNotActive, p.Name)
		}
		if amounts[i] < 0 {
			return fmt.Errorf("%w: negative amount for %s", ErrBadDistribution, p.Name)
		}
		winners[i] = p
		total += amounts[i]
	}
	if total != g.pot {
		return fmt.Errorf("%w: amounts sum to %d, pot is %d", ErrBadDistribution, total, g.pot)
	}

	for i, p := range winners {
		p.Chips += amounts[i]
		g.emit(Event{Type: EventPotAwarded, Player: p.Name, Amount: amounts[i]})
	}

	g.pot = 0
	g.currentBet = 0
	for _, p := range g.players {
		p.RoundBet = 0
		p.Committed = 0
		if p.Chips == 0 && p.Status != StatusFolded {
			p.Status = StatusFolded
			g.emit(Event{Type: EventPlayerBusted, Player: p.Name})
		}
	}

	g.computeFlags()
	return nil
}

// StartNewHand begins the next hand: funded players come back to active,
// the dealer button moves one funded seat, and blind positions are
// rederived. Gated on the previous pot having been distributed.
func (g *Game) StartNewHand() error {
	if g.pot != 0 {
		return ErrPotNotDistributed
	}
	funded := 0
	for _, p := range g.players {
		if p.Funded() {
			funded++
		}
	}
	if funded < 2 {
		return ErrNotEnoughPlayers
	}

	for _, p := range g.players {
		p.RoundBet = 0
		p.Committed = 0
		if p.Funded() {
			p.Status = StatusActive
		} else {
			p.Status = StatusFolded
		}
	}

	g.hand++
	g.round = PreFlop
	g.currentBet = 0
	g.advanceDealer()
	g.derivePositions()
	g.resetTracker()

	g.emit(Event{Type: EventHandStart})
	g.computeFlags()
	return nil
}

// validateBettingAction checks a fold/call/raise is legal right now, without
// mutating anything. Betting actions are rejected once the round is
// complete, with one exception: a player still facing a bet may close out
// the round. An all-in raise that leaves a single active opponent completes
// the round immediately, but that opponent still owes a fold-or-call
// decision, and either answer keeps the round complete.
func (g *Game) validateBettingAction(playerID string) (int, error) {
	idx, err := g.playerIndex(playerID)
	if err != nil {
		return -1, err
	}
	p := g.players[idx]
	if !p.CanAct() {
		return -1, fmt.Errorf("%w: %s is %s", ErrPlayerNotActive, p.Name, p.Status)
	}
	if g.IsRoundComplete() && p.RoundBet >= g.currentBet {
		return -1, ErrRoundComplete
	}
	return idx, nil
}

// afterAction advances the cursor past the acting player and refreshes the
// derived flags for whoever is next.
func (g *Game) afterAction(idx int) {
	if next := g.nextActivePlayer(idx + 1); next != -1 {
		g.actionOn = next
	}
	g.computeFlags()
}

// advanceDealer moves the button to the next funded seat. The first hand
// seats the button at the first funded player.
func (g *Game) advanceDealer() {
	from := 0
	if g.dealer >= 0 {
		from = g.dealer + 1
	}
	n := len(g.players)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if g.players[pos].Funded() {
			g.dealer = pos
			return
		}
	}
}

// derivePositions assigns dealer and blind positions from the dealer index.
// Heads-up the dealer's opponent takes the big blind; with three or more
// funded players the two seats after the dealer take small and big blind.
func (g *Game) derivePositions() {
	for _, p := range g.players {
		p.Position = PositionNone
	}
	if g.dealer < 0 || g.dealer >= len(g.players) {
		return
	}
	g.players[g.dealer].Position = PositionDealer

	var after []*Player
	n := len(g.players)
	for i := 1; i < n; i++ {
		p := g.players[(g.dealer+i)%n]
		if p.Funded() {
			after = append(after, p)
		}
	}

	switch {
	case len(after) == 1:
		after[0].Position = PositionBigBlind
	case len(after) >= 2:
		after[0].Position = PositionSmallBlind
		after[1].Position = PositionBigBlind
	}
}
