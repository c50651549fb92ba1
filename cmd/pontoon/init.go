package main

import (
	"fmt"
)

// InitCmd creates an empty save file
type InitCmd struct {
	Force bool `short:"f" help:"Replace an existing save file"`
}

func (c *InitCmd) Run(g *Globals) error {
	_, _, store, closeLog, err := g.setup()
	if err != nil {
		return err
	}
	defer closeLog()

	if err := store.Init(c.Force); err != nil {
		return err
	}
	fmt.Printf("Created empty save file %s\n", store.Path())
	return nil
}
