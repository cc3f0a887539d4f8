// Package tui implements the operator screen: a player table, the pot and
// round header, and single-key recording of folds, calls, raises, round
// changes and pot awards. Every successful transition is mirrored to the
// session store before the screen re-renders.
package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/lox/chiptally/internal/game"
	"github.com/lox/chiptally/internal/session"
)

// mode is the input mode the screen is in
type mode int

const (
	modeAction  mode = iota // single-key betting actions
	modeRaise               // typing a raise amount
	modeWinners             // selecting pot winners
	modeConfirm             // confirming a distribution
)

// Model is the Bubble Tea model for a running game
type Model struct {
	game   *game.Game
	store  *session.Store
	logger *log.Logger

	amountInput textinput.Model
	eventLog    viewport.Model
	logLines    []string
	eventsSeen  int

	mode          mode
	eligible      []*game.Player // winner candidates, seat order
	selectCursor  int
	winnerOrder   []string // winner ids in selection order
	pendingShares []int

	statusMsg string
	width     int
	height    int
	quitting  bool
}

// New creates the operator screen for a started game
func New(g *game.Game, store *session.Store, logger *log.Logger) *Model {
	ti := textinput.New()
	ti.Placeholder = "amount"
	ti.CharLimit = 12
	ti.Width = 20
	ti.Prompt = "raise > "

	vp := viewport.New(60, 8)

	m := &Model{
		game:        g,
		store:       store,
		logger:      logger.WithPrefix("tui"),
		amountInput: ti,
		eventLog:    vp,
	}
	m.syncEvents()
	return m
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.eventLog.Width = msg.Width - 4
		m.eventLog.Height = max(msg.Height-len(m.game.Players())-12, 3)
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.mode {
		case modeRaise:
			return m.updateRaise(msg)
		case modeWinners:
			return m.updateWinners(msg)
		case modeConfirm:
			return m.updateConfirm(msg)
		default:
			return m.updateAction(msg)
		}
	}

	var cmd tea.Cmd
	m.eventLog, cmd = m.eventLog.Update(msg)
	return m, cmd
}

func (m *Model) updateAction(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	flags := m.game.Flags()

	switch msg.String() {
	case "q":
		return m.quit()

	case "f":
		if p := m.game.CurrentPlayer(); p != nil {
			m.apply(game.FoldAction{PlayerID: p.ID})
		}

	case "c":
		if p := m.game.CurrentPlayer(); p != nil {
			m.apply(game.CallAction{PlayerID: p.ID})
		}

	case "r", "b":
		if !flags.CanRaise {
			m.statusMsg = "raise not available"
			return m, nil
		}
		m.mode = modeRaise
		m.amountInput.SetValue("")
		m.statusMsg = ""
		return m, m.amountInput.Focus()

	case "a":
		m.apply(game.AdvanceRoundAction{})

	case "d":
		m.beginWinnerSelection()

	case "n":
		m.apply(game.NewHandAction{})

	case "up", "k":
		m.eventLog.ScrollUp(1)

	case "down", "j":
		m.eventLog.ScrollDown(1)
	}
	return m, nil
}

func (m *Model) updateRaise(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeAction
		m.amountInput.Blur()
		return m, nil

	case "enter":
		amount, err := strconv.Atoi(strings.TrimSpace(m.amountInput.Value()))
		if err != nil {
			m.statusMsg = "enter a whole number of chips"
			return m, nil
		}
		p := m.game.CurrentPlayer()
		if p == nil {
			m.mode = modeAction
			m.amountInput.Blur()
			return m, nil
		}
		if m.apply(game.RaiseAction{PlayerID: p.ID, Amount: amount}) {
			m.mode = modeAction
			m.amountInput.Blur()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.amountInput, cmd = m.amountInput.Update(msg)
	return m, cmd
}

func (m *Model) beginWinnerSelection() {
	if m.game.Pot() == 0 {
		m.statusMsg = "the pot is empty"
		return
	}
	m.eligible = nil
	for _, p := range m.game.Players() {
		if p.InHand() {
			m.eligible = append(m.eligible, p)
		}
	}
	m.selectCursor = 0
	m.winnerOrder = nil
	m.statusMsg = ""
	m.mode = modeWinners
}

func (m *Model) updateWinners(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeAction

	case "up", "k":
		if m.selectCursor > 0 {
			m.selectCursor--
		}

	case "down", "j":
		if m.selectCursor < len(m.eligible)-1 {
			m.selectCursor++
		}

	case " ":
		id := m.eligible[m.selectCursor].ID
		if i := indexOf(m.winnerOrder, id); i >= 0 {
			m.winnerOrder = append(m.winnerOrder[:i], m.winnerOrder[i+1:]...)
		} else {
			m.winnerOrder = append(m.winnerOrder, id)
		}

	case "enter":
		if len(m.winnerOrder) == 0 {
			m.statusMsg = "select at least one winner"
			return m, nil
		}
		m.pendingShares = game.SplitPot(m.game.Pot(), len(m.winnerOrder))
		m.mode = modeConfirm
	}
	return m, nil
}

func (m *Model) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		if m.apply(game.DistributePotAction{WinnerIDs: m.winnerOrder, Amounts: m.pendingShares}) {
			m.mode = modeAction
		}
	case "n", "esc":
		m.mode = modeWinners
	}
	return m, nil
}

func (m *Model) quit() (tea.Model, tea.Cmd) {
	m.store.SaveBestEffort(m.game)
	m.quitting = true
	return m, tea.Quit
}

// apply runs an action through the engine. Rejected actions surface on the
// status line and change nothing; accepted ones are persisted immediately.
func (m *Model) apply(a game.Action) bool {
	if err := m.game.Apply(a); err != nil {
		m.statusMsg = err.Error()
		m.logger.Debug("action rejected", "action", fmt.Sprintf("%T", a), "error", err)
		return false
	}
	m.statusMsg = ""
	m.syncEvents()
	m.store.SaveBestEffort(m.game)
	return true
}

// syncEvents appends any new engine events to the scrollback
func (m *Model) syncEvents() {
	events := m.game.Events()
	for ; m.eventsSeen < len(events); m.eventsSeen++ {
		m.logLines = append(m.logLines, events[m.eventsSeen].String())
	}
	m.eventLog.SetContent(LogStyle.Render(strings.Join(m.logLines, "\n")))
	m.eventLog.GotoBottom()
}

func indexOf(ids []string, id string) int {
	for i, v := range ids {
		if v == id {
			return i
		}
	}
	return -1
}
