package game

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"
)

// checkConservation verifies that no chips have been created or destroyed
func checkConservation(t *testing.T, g *Game, step string) {
	t.Helper()
	total := g.Pot()
	for _, p := range g.Players() {
		total += p.Chips
	}
	if total != g.ChipsInPlay() {
		t.Fatalf("%s: chips in play %d, expected %d", step, total, g.ChipsInPlay())
	}
}

func TestChipConservationBasicSequence(t *testing.T) {
	g := newTestGame(t, 1000, "Alice", "Bob", "Carol")

	steps := []struct {
		name   string
		action Action
	}{
		{"bet", RaiseAction{PlayerID: "p2", Amount: 50}},
		{"call", CallAction{PlayerID: "p3"}},
		{"fold", FoldAction{PlayerID: "p1"}},
		{"advance", AdvanceRoundAction{}},
		{"check", CallAction{PlayerID: "p2"}},
		{"raise", RaiseAction{PlayerID: "p3", Amount: 200}},
		{"call raise", CallAction{PlayerID: "p2"}},
		{"distribute", DistributePotAction{WinnerIDs: []string{"p2", "p3"}, Amounts: []int{250, 250}}},
		{"new hand", NewHandAction{}},
	}
	for _, s := range steps {
		if err := g.Apply(s.action); err != nil {
			t.Fatalf("%s: %v", s.name, err)
		}
		checkConservation(t, g, s.name)
	}
}

func TestChipConservationRandomPlay(t *testing.T) {
	// Drive many hands with random legal actions and verify the invariant
	// after every single transition
	rng := rand.New(rand.NewSource(42))
	g := newTestGame(t, 500, "Alice", "Bob", "Carol", "Dave")

	for step := 0; step < 5000; step++ {
		if g.HandDecided() || (g.IsRoundComplete() && g.Round() == River) {
			winners := []string{}
			for _, p := range g.Players() {
				if p.InHand() {
					winners = append(winners, p.ID)
				}
			}
			if err := g.DistributePot(winners, SplitPot(g.Pot(), len(winners))); err != nil {
				t.Fatalf("step %d distribute: %v", step, err)
			}
			checkConservation(t, g, fmt.Sprintf("step %d distribute", step))

			err := g.StartNewHand()
			if errors.Is(err, ErrNotEnoughPlayers) {
				return // someone won the whole game
			}
			if err != nil {
				t.Fatalf("step %d new hand: %v", step, err)
			}
		} else if g.IsRoundComplete() {
			if err := g.AdvanceRound(); err != nil {
				t.Fatalf("step %d advance: %v", step, err)
			}
		} else {
			p := g.CurrentPlayer()
			f := g.Flags()
			switch {
			case f.CanRaise && rng.Intn(3) == 0:
				amount := f.MinRaise + rng.Intn(f.MaxRaise-f.MinRaise+1)
				if err := g.Raise(p.ID, amount); err != nil {
					t.Fatalf("step %d raise %d: %v", step, amount, err)
				}
			case rng.Intn(4) == 0 && f.CanCall:
				if err := g.Fold(p.ID); err != nil {
					t.Fatalf("step %d fold: %v", step, err)
				}
			default:
				if err := g.Call(p.ID); err != nil {
					t.Fatalf("step %d call: %v", step, err)
				}
			}
		}
		checkConservation(t, g, fmt.Sprintf("step %d", step))
	}
}
