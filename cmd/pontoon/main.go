package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version     kong.VersionFlag `short:"v" help:"Show version"`
	Play        PlayCmd          `cmd:"" default:"1" help:"Play pontoon (default)"`
	Leaderboard LeaderboardCmd   `cmd:"" help:"Print the leaderboard"`
	Init        InitCmd          `cmd:"" help:"Create an empty save file"`
	Import      ImportCmd        `cmd:"" help:"Convert a plain text save file"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pontoon"),
		kong.Description("Pontoon against a computer dealer, with betting, highscores and save/resume"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
