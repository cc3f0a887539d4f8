package main

import (
	"fmt"

	"github.com/lox/chiptally/internal/config"
	"github.com/lox/chiptally/internal/game"
	"github.com/lox/chiptally/internal/sessionid"
)

type NewCmd struct {
	Config     string   `short:"c" help:"HCL game definition file" type:"existingfile"`
	Name       string   `help:"Game name"`
	Players    []string `short:"p" help:"Player names"`
	Chips      int      `help:"Starting chip stack per player"`
	SessionDir string   `help:"Directory for session snapshots"`
}

func (c *NewCmd) Run(cli *CLI) error {
	var def *config.Game
	var err error
	if c.Config != "" {
		def, err = config.Load(c.Config)
	} else {
		def, err = config.New(c.Name, c.Players, c.Chips, c.SessionDir)
	}
	if err != nil {
		return err
	}

	ids := sessionid.NewGenerator(nil)
	seats := make([]game.Seat, len(def.Players))
	for i, name := range def.Players {
		seats[i] = game.Seat{ID: ids.New(), Name: name}
	}

	g, err := game.NewGame(ids.New(), def.Name, seats, def.StartingChips)
	if err != nil {
		return err
	}
	if err := g.StartNewHand(); err != nil {
		return fmt.Errorf("failed to start first hand: %w", err)
	}

	return runTable(cli, def.SessionDir, g)
}
