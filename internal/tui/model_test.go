package tui

import (
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/chiptally/internal/game"
	"github.com/lox/chiptally/internal/session"
)

func newTestModel(t *testing.T, names ...string) (*Model, *session.Store) {
	t.Helper()
	seats := make([]game.Seat, len(names))
	for i, n := range names {
		seats[i] = game.Seat{ID: n, Name: n}
	}
	g, err := game.NewGame("test-game", "Test Game", seats, 1000)
	require.NoError(t, err)
	require.NoError(t, g.StartNewHand())

	logger := log.New(io.Discard)
	store := session.NewStore(t.TempDir(), logger, quartz.NewMock(t))
	return New(g, store, logger), store
}

func press(m *Model, keys ...string) *Model {
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(*Model)
	}
	return m
}

func TestFoldKeyFoldsCurrentPlayer(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob", "Carol")

	acting := m.game.CurrentPlayer()
	m = press(m, "f")

	assert.Equal(t, game.StatusFolded, acting.Status)
}

func TestCheckKeyMarksActed(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "c", "c")
	assert.True(t, m.game.IsRoundComplete())
	assert.Equal(t, 0, m.game.Pot())
}

func TestCallKeyClosesOutAllInShove(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	// The shove completes the round, but the opponent still owes a
	// fold-or-call and the screen must keep offering it
	shover := m.game.CurrentPlayer()
	require.NoError(t, m.game.Apply(game.RaiseAction{PlayerID: shover.ID, Amount: 1000}))
	require.True(t, m.game.IsRoundComplete())

	assert.Contains(t, m.renderActionBar(), "call 1000")

	m = press(m, "c")

	assert.Empty(t, m.statusMsg)
	assert.Equal(t, 2000, m.game.Pot())
}

func TestRaiseFlow(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "r")
	assert.Equal(t, modeRaise, m.mode)

	m = press(m, "2", "0", "0", "enter")
	assert.Equal(t, modeAction, m.mode)
	assert.Equal(t, 200, m.game.Pot())
	assert.Equal(t, 200, m.game.CurrentBet())
}

func TestRaiseRejectsGarbageInput(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "r", "x", "enter")
	assert.Equal(t, modeRaise, m.mode)
	assert.NotEmpty(t, m.statusMsg)
	assert.Equal(t, 0, m.game.Pot())

	m = press(m, "esc")
	assert.Equal(t, modeAction, m.mode)
}

func TestRaiseBelowMinimumSurfacesError(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	// First player bets 100, second tries to raise only 50
	m = press(m, "r", "1", "0", "0", "enter")
	m = press(m, "r", "5", "0", "enter")

	assert.Equal(t, modeRaise, m.mode)
	assert.NotEmpty(t, m.statusMsg)
	assert.Equal(t, 100, m.game.Pot())
}

func TestDistributeFlow(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	// Bob bets 100, Alice folds: hand decided, pot awarded to Bob
	m = press(m, "r", "1", "0", "0", "enter", "f")
	require.True(t, m.game.HandDecided())

	m = press(m, "d")
	require.Equal(t, modeWinners, m.mode)
	require.Len(t, m.eligible, 1)

	m = press(m, " ", "enter")
	require.Equal(t, modeConfirm, m.mode)

	m = press(m, "y")
	assert.Equal(t, modeAction, m.mode)
	assert.Equal(t, 0, m.game.Pot())

	// Bob bet 100 of his own stack and won it back
	winner, ok := m.game.PlayerByID(m.winnerOrder[0])
	require.True(t, ok)
	assert.Equal(t, 1000, winner.Chips)
}

func TestDistributeSplitKeepsSelectionOrder(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob", "Carol")

	// Everyone checks the pot around to the river with 100 in it
	m = press(m, "r", "1", "0", "0", "enter")
	m = press(m, "c", "c") // others call... Bob and Carol call 100 each
	require.Equal(t, 300, m.game.Pot())

	m = press(m, "d")
	require.Equal(t, modeWinners, m.mode)

	// Select the second candidate first, then the first
	m = press(m, "j", " ", "k", " ", "enter")
	require.Equal(t, modeConfirm, m.mode)
	assert.Equal(t, []int{150, 150}, m.pendingShares)

	m = press(m, "y")
	assert.Equal(t, 0, m.game.Pot())
}

func TestDistributeRequiresSelection(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "r", "1", "0", "0", "enter", "f", "d", "enter")
	assert.Equal(t, modeWinners, m.mode)
	assert.NotEmpty(t, m.statusMsg)
}

func TestDistributeWithEmptyPot(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "d")
	assert.Equal(t, modeAction, m.mode)
	assert.NotEmpty(t, m.statusMsg)
}

func TestNewHandBlockedWithUndistributedPot(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "r", "1", "0", "0", "enter", "f")
	hand := m.game.Hand()

	m = press(m, "n")
	assert.Equal(t, hand, m.game.Hand())
	assert.NotEmpty(t, m.statusMsg)
}

func TestNewHandAfterDistribution(t *testing.T) {
	m, _ := newTestModel(t, "Alice", "Bob")

	m = press(m, "r", "1", "0", "0", "enter", "f", "d", " ", "enter", "y", "n")
	assert.Equal(t, 2, m.game.Hand())
	assert.Equal(t, game.PreFlop, m.game.Round())
}

func TestSuccessfulActionsAreSaved(t *testing.T) {
	m, store := newTestModel(t, "Alice", "Bob")

	m = press(m, "r", "1", "0", "0", "enter")

	snap, err := store.Load("test-game")
	require.NoError(t, err)
	assert.Equal(t, 100, snap.Pot)
	_ = m
}

func TestQuitSavesSession(t *testing.T) {
	m, store := newTestModel(t, "Alice", "Bob")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	assert.NotNil(t, cmd)
	assert.True(t, next.(*Model).quitting)

	_, err := store.Load("test-game")
	require.NoError(t, err)
}
