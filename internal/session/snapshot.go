// Package session persists game snapshots to disk so an interrupted session
// can be resumed. One JSON file per game, written atomically after every
// successful transition; a snapshot that cannot be read back cleanly is
// treated as if it never existed.
package session

import (
	"time"

	"github.com/lox/chiptally/internal/game"
)

// PlayerSnapshot is the serialized form of one player
type PlayerSnapshot struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Chips     int    `json:"chips"`
	Status    string `json:"status"`
	RoundBet  int    `json:"round_bet"`
	Committed int    `json:"committed"`
}

// Snapshot is the serialized form of a whole game, flat and defensive:
// every field is revalidated on restore rather than trusted.
type Snapshot struct {
	GameID      string           `json:"game_id"`
	Name        string           `json:"name"`
	Players     []PlayerSnapshot `json:"players"`
	Pot         int              `json:"pot"`
	CurrentBet  int              `json:"current_bet"`
	Hand        int              `json:"hand"`
	Round       string           `json:"round"`
	ActionOn    int              `json:"action_on"`
	DealerIndex int              `json:"dealer_index"`
	Acted       []string         `json:"acted"`
	SavedAt     time.Time        `json:"saved_at"`
}

// FromGame captures a game's restorable state
func FromGame(g *game.Game) Snapshot {
	st := g.State()
	players := make([]PlayerSnapshot, len(st.Players))
	for i, p := range st.Players {
		players[i] = PlayerSnapshot{
			ID:        p.ID,
			Name:      p.Name,
			Chips:     p.Chips,
			Status:    string(p.Status),
			RoundBet:  p.RoundBet,
			Committed: p.Committed,
		}
	}
	return Snapshot{
		GameID:      st.ID,
		Name:        st.Name,
		Players:     players,
		Pot:         st.Pot,
		CurrentBet:  st.CurrentBet,
		Hand:        st.Hand,
		Round:       st.Round.String(),
		ActionOn:    st.ActionOn,
		DealerIndex: st.DealerIndex,
		Acted:       st.Acted,
	}
}

// Restore rebuilds the game. Unrecognized enum values fall back to safe
// defaults; anything that would corrupt the chip accounting is an error.
func (s Snapshot) Restore() (*game.Game, error) {
	round, ok := game.ParseRound(s.Round)
	if !ok {
		round = game.PreFlop
	}

	players := make([]*game.Player, len(s.Players))
	for i, p := range s.Players {
		status, ok := game.ParseStatus(p.Status)
		if !ok {
			status = game.StatusActive
		}
		players[i] = &game.Player{
			ID:        p.ID,
			Name:      p.Name,
			Chips:     p.Chips,
			Status:    status,
			RoundBet:  p.RoundBet,
			Committed: p.Committed,
		}
	}

	return game.FromState(game.State{
		ID:          s.GameID,
		Name:        s.Name,
		Players:     players,
		Pot:         s.Pot,
		CurrentBet:  s.CurrentBet,
		Hand:        s.Hand,
		Round:       round,
		ActionOn:    s.ActionOn,
		DealerIndex: s.DealerIndex,
		Acted:       s.Acted,
	})
}
