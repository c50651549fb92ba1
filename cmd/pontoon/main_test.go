package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/save"
)

func testGlobals(t *testing.T) *Globals {
	t.Helper()
	dir := t.TempDir()
	return &Globals{
		Config:   filepath.Join(dir, "pontoon.hcl"),
		SaveFile: filepath.Join(dir, "save.hcl"),
		LogFile:  filepath.Join(dir, "pontoon.log"),
	}
}

func TestInitCmd(t *testing.T) {
	g := testGlobals(t)

	require.NoError(t, (&InitCmd{}).Run(g))
	assert.FileExists(t, g.SaveFile)

	err := (&InitCmd{}).Run(g)
	assert.ErrorIs(t, err, save.ErrExists)

	require.NoError(t, (&InitCmd{Force: true}).Run(g))
}

// freshLegacySave is a plain text save of a new game for "carol"
func freshLegacySave() string {
	var b strings.Builder
	for range 10 {
		b.WriteString("\n0\n")
	}
	b.WriteString("carol\n0\n")
	for _, c := range deck.New() {
		fmt.Fprintf(&b, "%d\n%d\n", c.Suit, c.Rank)
	}
	for range 20 {
		b.WriteString("0\n")
	}
	b.WriteString("100\n0\n0\n0\n0\n-1\n0\n")
	return b.String()
}

func TestImportCmd(t *testing.T) {
	g := testGlobals(t)
	legacy := filepath.Join(t.TempDir(), "save.txt")
	require.NoError(t, os.WriteFile(legacy, []byte(freshLegacySave()), 0o644))

	require.NoError(t, (&ImportCmd{Path: legacy}).Run(g))

	state, err := save.NewStore(g.SaveFile, nil, nil).Load()
	require.NoError(t, err)
	assert.Equal(t, "carol", state.Profile.Name)
	assert.Equal(t, int64(100), state.Money)

	err = (&ImportCmd{Path: legacy}).Run(g)
	assert.ErrorIs(t, err, save.ErrExists)
}

func TestImportCmdRejectsCorruptFile(t *testing.T) {
	g := testGlobals(t)
	legacy := filepath.Join(t.TempDir(), "save.txt")
	require.NoError(t, os.WriteFile(legacy, []byte("carol\n0\n"), 0o644))

	err := (&ImportCmd{Path: legacy}).Run(g)
	assert.ErrorIs(t, err, save.ErrCorrupt)
	assert.NoFileExists(t, g.SaveFile)
}

func TestLoadConfigFlagOverrides(t *testing.T) {
	g := testGlobals(t)
	g.LogLevel = "debug"

	cfg, err := g.loadConfig()
	require.NoError(t, err)
	assert.Equal(t, g.SaveFile, cfg.Save.Path)
	assert.Equal(t, "debug", cfg.UI.LogLevel)

	g.LogLevel = "chatty"
	_, err = g.loadConfig()
	assert.ErrorContains(t, err, "invalid configuration")
}

func TestExplainMissingSave(t *testing.T) {
	store := save.NewStore("missing.hcl", nil, nil)
	_, err := store.Load()

	err = explain(err, store)
	assert.ErrorIs(t, err, save.ErrNotFound)
	assert.Contains(t, err.Error(), "pontoon init")
}
