package main

import (
	"errors"
	"fmt"

	"github.com/lox/chiptally/cmd/chiptally/shared"
	"github.com/lox/chiptally/internal/config"
	"github.com/lox/chiptally/internal/session"
)

type ResumeCmd struct {
	ID         string `arg:"" optional:"" help:"Session id (defaults to the most recent)"`
	SessionDir string `help:"Directory for session snapshots"`
}

func (c *ResumeCmd) Run(cli *CLI) error {
	dir := c.SessionDir
	if dir == "" {
		dir = config.DefaultSessionDir()
	}

	logger := shared.SetupLogger(cli.Debug)
	store := session.NewStore(dir, logger, nil)

	var snap session.Snapshot
	var err error
	if c.ID != "" {
		snap, err = store.Load(c.ID)
	} else {
		snap, err = store.LoadLatest()
	}
	switch {
	case errors.Is(err, session.ErrNotFound):
		return fmt.Errorf("no resumable session in %s", dir)
	case errors.Is(err, session.ErrStale):
		return fmt.Errorf("saved session is older than %s; start a new game or run `chiptally sessions prune`", session.MaxSnapshotAge)
	case err != nil:
		return err
	}

	g, err := snap.Restore()
	if err != nil {
		return fmt.Errorf("saved session is unusable: %w", err)
	}

	logger.Info("resuming session", "game", g.ID(), "name", g.Name(), "hand", g.Hand())
	return runTable(cli, dir, g)
}
