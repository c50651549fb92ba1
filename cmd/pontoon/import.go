package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/lox/pontoon/internal/save"
)

// ImportCmd converts a save from the 153-line plain text format
type ImportCmd struct {
	Path  string `arg:"" type:"existingfile" help:"Plain text save file (e.g. save.txt)"`
	Force bool   `short:"f" help:"Replace an existing save file"`
}

func (c *ImportCmd) Run(g *Globals) error {
	_, logger, store, closeLog, err := g.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	if !c.Force {
		if _, err := os.Stat(store.Path()); err == nil {
			return fmt.Errorf("%w: %s (use --force to replace it)", save.ErrExists, store.Path())
		} else if !errors.Is(err, os.ErrNotExist) {
			return err
		}
	}

	f, err := os.Open(c.Path)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	state, err := save.ReadLegacy(f)
	if err != nil {
		return fmt.Errorf("failed to import %s: %w", c.Path, err)
	}
	if err := store.Save(state); err != nil {
		return err
	}

	logger.Info("Imported legacy save", "from", c.Path, "to", store.Path(), "player", state.Profile.Name)
	fmt.Printf("Imported %s into %s\n", c.Path, store.Path())
	return nil
}
