package game

// Turn and round tracking. The tracker owns only the cursor and the
// acted-set; everything else is read from the player list, so completion is
// recomputed on demand rather than cached.

// nextActivePlayer scans forward circularly from the given index and
// returns the first player who can still act, or -1 when nobody can
// (everyone folded or all-in).
func (g *Game) nextActivePlayer(from int) int {
	n := len(g.players)
	for i := 0; i < n; i++ {
		pos := (from + i) % n
		if g.players[pos].CanAct() {
			return pos
		}
	}
	return -1
}

// IsRoundComplete reports whether the betting round can legally advance:
// the hand is decided (at most one player can still act), or every active
// player has acted and matched the table bet. A round of checks completes
// with the table bet still at zero.
func (g *Game) IsRoundComplete() bool {
	active := 0
	for _, p := range g.players {
		if p.CanAct() {
			active++
		}
	}
	if active <= 1 {
		return true
	}

	for _, p := range g.players {
		if !p.CanAct() {
			continue
		}
		if !g.acted[p.ID] {
			return false
		}
		if g.currentBet > 0 && p.RoundBet != g.currentBet {
			return false
		}
	}
	return true
}

// HandDecided reports whether at most one player is still contesting the
// pot, in which case betting is over for the hand regardless of round.
func (g *Game) HandDecided() bool {
	inHand := 0
	for _, p := range g.players {
		if p.InHand() {
			inHand++
		}
	}
	return inHand <= 1
}

// resetTracker clears the acted-set and parks the cursor on the first
// active player after the dealer. The cursor is left alone if nobody can
// act.
func (g *Game) resetTracker() {
	clear(g.acted)
	if next := g.nextActivePlayer(g.dealer + 1); next != -1 {
		g.actionOn = next
	}
}
