package main

import (
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/lox/chiptally/cmd/chiptally/shared"
	"github.com/lox/chiptally/internal/game"
	"github.com/lox/chiptally/internal/session"
	"github.com/lox/chiptally/internal/tui"
)

// runTable runs the operator screen for a game until it quits or the
// process is interrupted. The TUI owns the terminal, so logs go to a file
// next to the session snapshots.
func runTable(cli *CLI, sessionDir string, g *game.Game) error {
	logger, logFile, err := shared.SetupFileLogger(filepath.Join(sessionDir, "chiptally.log"), cli.Debug)
	if err != nil {
		return err
	}
	defer logFile.Close()

	store := session.NewStore(sessionDir, logger, nil)
	store.SaveBestEffort(g)
	logger.Info("table open", "game", g.ID(), "name", g.Name(), "players", len(g.Players()))

	p := tea.NewProgram(tui.New(g, store, logger), tea.WithAltScreen())

	ctx := shared.SetupSignalHandler()
	eg, ctx := errgroup.WithContext(ctx)
	done := make(chan struct{})

	eg.Go(func() error {
		defer close(done)
		_, err := p.Run()
		return err
	})
	eg.Go(func() error {
		select {
		case <-ctx.Done():
			p.Quit()
		case <-done:
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return err
	}

	logger.Info("table closed", "game", g.ID(), "hand", g.Hand())
	return nil
}
