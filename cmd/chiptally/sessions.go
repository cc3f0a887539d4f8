package main

import (
	"fmt"
	"time"

	"github.com/lox/chiptally/cmd/chiptally/shared"
	"github.com/lox/chiptally/internal/config"
	"github.com/lox/chiptally/internal/session"
)

type SessionsCmd struct {
	List  SessionsListCmd  `cmd:"" default:"withargs" help:"List saved sessions"`
	Prune SessionsPruneCmd `cmd:"" help:"Delete stale sessions"`
}

type SessionsListCmd struct {
	SessionDir string `help:"Directory for session snapshots"`
}

func (c *SessionsListCmd) Run(cli *CLI) error {
	store := openStore(cli, c.SessionDir)
	snaps, err := store.List()
	if err != nil {
		return err
	}
	if len(snaps) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}

	for _, snap := range snaps {
		age := time.Since(snap.SavedAt).Round(time.Minute)
		note := ""
		if store.IsStale(snap) {
			note = "  (stale)"
		}
		fmt.Printf("%s  %-20s  hand %-3d  %d players  saved %s ago%s\n",
			snap.GameID, snap.Name, snap.Hand, len(snap.Players), age, note)
	}
	return nil
}

type SessionsPruneCmd struct {
	SessionDir string `help:"Directory for session snapshots"`
}

func (c *SessionsPruneCmd) Run(cli *CLI) error {
	store := openStore(cli, c.SessionDir)
	removed, err := store.Prune()
	if err != nil {
		return err
	}
	fmt.Printf("Removed %d stale session(s).\n", removed)
	return nil
}

func openStore(cli *CLI, dir string) *session.Store {
	if dir == "" {
		dir = config.DefaultSessionDir()
	}
	return session.NewStore(dir, shared.SetupLogger(cli.Debug), nil)
}
