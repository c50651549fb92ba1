package main

import (
	"os"

	"github.com/coder/quartz"

	"github.com/lox/pontoon/internal/randutil"
	"github.com/lox/pontoon/internal/shell"
	"github.com/lox/pontoon/internal/tui"
)

// PlayCmd runs the game
type PlayCmd struct {
	TUI  bool   `help:"Use the full-screen interface (overrides config)"`
	Seed *int64 `help:"Deterministic shuffle seed (optional)"`
}

func (c *PlayCmd) Run(g *Globals) error {
	cfg, logger, store, closeLog, err := g.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	if c.TUI {
		cfg.UI.TUI = true
	}

	rng, seed := randutil.FromClock(quartz.NewReal())
	if c.Seed != nil {
		seed = *c.Seed
		rng = randutil.New(seed)
	}
	logger.Info("Starting pontoon", "seed", seed, "save", store.Path(), "tui", cfg.UI.TUI)

	sh := shell.New(shell.Options{
		Store:    store,
		Rand:     rng,
		Renderer: shell.NewRenderer(os.Stdout, cfg.UI.Color),
		Logger:   logger,
		Pause:    cfg.PauseAfterResults(),
	})

	if cfg.UI.TUI {
		err = tui.Run(sh, logger)
	} else {
		err = shell.RunLines(sh, os.Stdin, os.Stdout, shell.LineOptions{ClearScreen: cfg.UI.ClearScreen})
	}
	return explain(err, store)
}
