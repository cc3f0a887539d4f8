package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Debug    bool             `help:"Enable debug logging"`
	New      NewCmd           `cmd:"" help:"Start a new game and open the table screen"`
	Resume   ResumeCmd        `cmd:"" help:"Resume a saved session"`
	Sessions SessionsCmd      `cmd:"" help:"Inspect and clean saved sessions"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("chiptally"),
		kong.Description("Chip tracking for live poker games"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
