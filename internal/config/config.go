// Package config loads the HCL game definition used to start a session:
//
//	game "friday-night" {
//	  starting_chips = 1000
//	  player "Alice" {}
//	  player "Bob"   {}
//	}
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
)

// DefaultStartingChips is used when a game block leaves the stack size out
const DefaultStartingChips = 1000

// file is the raw HCL shape
type file struct {
	Games []gameBlock `hcl:"game,block"`
}

type gameBlock struct {
	Name          string        `hcl:"name,label"`
	StartingChips int           `hcl:"starting_chips,optional"`
	SessionDir    string        `hcl:"session_dir,optional"`
	Players       []playerBlock `hcl:"player,block"`
}

type playerBlock struct {
	Name string `hcl:"name,label"`
}

// Game is a validated game definition
type Game struct {
	Name          string
	StartingChips int
	SessionDir    string
	Players       []string
}

// DefaultSessionDir is where snapshots live unless configured otherwise
func DefaultSessionDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".chiptally", "sessions")
	}
	return filepath.Join(home, ".chiptally", "sessions")
}

// Load reads a game definition from an HCL file
func Load(filename string) (*Game, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg file
	if diags := gohcl.DecodeBody(f.Body, nil, &cfg); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}
	if len(cfg.Games) == 0 {
		return nil, fmt.Errorf("%s contains no game block", filename)
	}
	if len(cfg.Games) > 1 {
		return nil, fmt.Errorf("%s contains %d game blocks, expected one", filename, len(cfg.Games))
	}

	block := cfg.Games[0]
	players := make([]string, len(block.Players))
	for i, p := range block.Players {
		players[i] = p.Name
	}

	return New(block.Name, players, block.StartingChips, block.SessionDir)
}

// New builds a game definition from explicit values, applying defaults for
// anything left zero and validating the result.
func New(name string, players []string, startingChips int, sessionDir string) (*Game, error) {
	g := &Game{
		Name:          name,
		StartingChips: startingChips,
		SessionDir:    sessionDir,
		Players:       players,
	}
	if g.StartingChips == 0 {
		g.StartingChips = DefaultStartingChips
	}
	if g.SessionDir == "" {
		g.SessionDir = DefaultSessionDir()
	}
	if err := g.validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Game) validate() error {
	if g.Name == "" {
		return fmt.Errorf("game name is required")
	}
	if len(g.Players) < 2 {
		return fmt.Errorf("game %q needs at least 2 players, has %d", g.Name, len(g.Players))
	}
	if g.StartingChips < 1 {
		return fmt.Errorf("game %q starting chips must be at least 1, got %d", g.Name, g.StartingChips)
	}
	seen := make(map[string]bool, len(g.Players))
	for _, name := range g.Players {
		if name == "" {
			return fmt.Errorf("game %q has a player with no name", g.Name)
		}
		if seen[name] {
			return fmt.Errorf("game %q has duplicate player %q", g.Name, name)
		}
		seen[name] = true
	}
	return nil
}
