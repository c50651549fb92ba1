package main

import (
	"fmt"
	"os"

	"github.com/lox/pontoon/internal/shell"
)

// LeaderboardCmd prints the highscores without starting a game
type LeaderboardCmd struct{}

func (c *LeaderboardCmd) Run(g *Globals) error {
	cfg, _, store, closeLog, err := g.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	state, err := store.Load()
	if err != nil {
		return explain(err, store)
	}

	r := shell.NewRenderer(os.Stdout, cfg.UI.Color)
	fmt.Print(r.Leaderboard(&state.Leaderboard))
	return nil
}
