package tui

import (
	"fmt"
	"strings"

	"github.com/lox/chiptally/internal/game"
)

func (m *Model) View() string {
	if m.quitting {
		return "Session saved.\n"
	}

	var b strings.Builder

	header := fmt.Sprintf(" %s — hand %d — %s ", m.game.Name(), m.game.Hand(), m.game.Round())
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(PotStyle.Render(fmt.Sprintf("pot %d", m.game.Pot())))
	if m.game.CurrentBet() > 0 {
		b.WriteString(PotStyle.Render(fmt.Sprintf("  bet %d", m.game.CurrentBet())))
	}
	b.WriteString("\n\n")

	b.WriteString(m.renderPlayers())
	b.WriteString("\n")

	switch m.mode {
	case modeRaise:
		b.WriteString(m.amountInput.View())
		b.WriteString("\n")
		b.WriteString(HelpStyle.Render(m.raiseHint()))
	case modeWinners:
		b.WriteString(m.renderWinnerSelect())
	case modeConfirm:
		b.WriteString(m.renderConfirm())
	default:
		b.WriteString(m.renderActionBar())
	}
	b.WriteString("\n\n")

	b.WriteString(m.eventLog.View())
	b.WriteString("\n")

	if m.statusMsg != "" {
		b.WriteString(ErrorStyle.Render(m.statusMsg))
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderPlayers() string {
	var b strings.Builder
	flags := m.game.Flags()

	for _, p := range m.game.Players() {
		marker := "  "
		if p.ID == flags.PlayerID {
			marker = TurnStyle.Render("> ")
		}

		line := fmt.Sprintf("%-12s %6d chips", p.Name, p.Chips)
		if p.RoundBet > 0 {
			line += fmt.Sprintf("  bet %d", p.RoundBet)
		}
		if pos := p.Position.String(); pos != "" {
			line += "  [" + pos + "]"
		}

		switch p.Status {
		case game.StatusFolded:
			line = FoldedStyle.Render(line + "  folded")
		case game.StatusAllIn:
			line = AllInStyle.Render(line + "  ALL-IN")
		default:
			line = PlayerStyle.Render(line)
		}

		b.WriteString(marker + line + "\n")
	}
	return b.String()
}

// renderActionBar shows what the operator can record right now. The flags
// decide: as long as someone owes a decision the betting keys stay up, even
// when an all-in has already completed the round.
func (m *Model) renderActionBar() string {
	flags := m.game.Flags()
	if flags.PlayerID == "" {
		if m.game.HandDecided() || (m.game.IsRoundComplete() && m.game.Round() == game.River) {
			return WarningStyle.Render("betting is over") + HelpStyle.Render("  d: award pot  q: quit")
		}
		if m.game.IsRoundComplete() {
			return WarningStyle.Render("round complete") + HelpStyle.Render("  a: next round  d: award pot  q: quit")
		}
	}

	var actions []string
	actions = append(actions, "f: fold")
	if flags.CanCheck {
		actions = append(actions, "c: check")
	}
	if flags.CanCall {
		actions = append(actions, fmt.Sprintf("c: call %d", flags.CallAmount))
	}
	if flags.CanRaise {
		actions = append(actions, "r: raise")
	}
	return ActionsStyle.Render(strings.Join(actions, "  ")) + HelpStyle.Render("  q: quit")
}

func (m *Model) raiseHint() string {
	flags := m.game.Flags()
	return fmt.Sprintf("between %d and %d, enter to bet, esc to cancel", flags.MinRaise, flags.MaxRaise)
}

func (m *Model) renderWinnerSelect() string {
	var b strings.Builder
	b.WriteString(ActionsStyle.Render(fmt.Sprintf("award pot of %d to:", m.game.Pot())))
	b.WriteString("\n")

	for i, p := range m.eligible {
		cursor := "  "
		if i == m.selectCursor {
			cursor = TurnStyle.Render("> ")
		}
		check := "[ ]"
		if j := indexOf(m.winnerOrder, p.ID); j >= 0 {
			check = fmt.Sprintf("[%d]", j+1)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, check, p.Name))
	}
	b.WriteString(HelpStyle.Render("space: toggle  enter: continue  esc: cancel"))
	return b.String()
}

func (m *Model) renderConfirm() string {
	var b strings.Builder
	b.WriteString(WarningStyle.Render("confirm distribution:"))
	b.WriteString("\n")
	for i, id := range m.winnerOrder {
		p, _ := m.game.PlayerByID(id)
		name := id
		if p != nil {
			name = p.Name
		}
		b.WriteString(fmt.Sprintf("  %s receives %d\n", name, m.pendingShares[i]))
	}
	b.WriteString(HelpStyle.Render("y: confirm  n: back"))
	return b.String()
}
