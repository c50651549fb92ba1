package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pontoon/internal/game"
	"github.com/lox/pontoon/internal/randutil"
	"github.com/lox/pontoon/internal/shell"
)

type stubStore struct {
	loadErr error
}

func (s *stubStore) Load() (game.State, error) { return game.State{}, s.loadErr }
func (s *stubStore) Save(game.State) error     { return nil }

func newModel(store shell.Store) *Model {
	sh := shell.New(shell.Options{Store: store, Rand: randutil.New(1), Pause: true})
	return New(sh, nil)
}

func typeLine(t *testing.T, m *Model, text string) tea.Cmd {
	t.Helper()
	for _, r := range text {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestModelShowsTitle(t *testing.T) {
	m := newModel(&stubStore{})

	assert.Contains(t, m.Content(), "[1] NEW GAME")
	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Contains(t, m.View(), "NEW GAME")
}

func TestModelResizeShowsWholeScreen(t *testing.T) {
	m := newModel(&stubStore{})

	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	assert.Zero(t, m.screen.YOffset)

	view := m.View()
	assert.Contains(t, view, "[1] NEW GAME")
	assert.Contains(t, view, "[5] QUIT")
	assert.Contains(t, view, "|  _ \\")

	// shrinking keeps the latest lines in view
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 10})
	assert.True(t, m.screen.AtBottom())
	assert.Contains(t, m.View(), "[5] QUIT")
}

func TestModelRejectedInputKeepsScreen(t *testing.T) {
	m := newModel(&stubStore{})

	cmd := typeLine(t, m, "9")
	assert.Nil(t, cmd)
	assert.Contains(t, m.Content(), "[5] QUIT")
	assert.Contains(t, m.Content(), shell.InvalidInput)
	assert.Empty(t, m.input.Value())
}

func TestModelNavigates(t *testing.T) {
	m := newModel(&stubStore{})

	typeLine(t, m, "1")
	assert.Contains(t, m.Content(), "Please enter your name!")
	assert.NotContains(t, m.Content(), "[1] NEW GAME")

	typeLine(t, m, "bob")
	assert.Contains(t, m.Content(), "PLAYER: bob")
}

func TestModelQuits(t *testing.T) {
	m := newModel(&stubStore{})

	cmd := typeLine(t, m, "5")
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}

func TestModelEscQuitsWithoutSubmitting(t *testing.T) {
	m := newModel(&stubStore{})

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestModelInputLimit(t *testing.T) {
	m := newModel(&stubStore{})
	assert.Equal(t, shell.MaxLineBytes-1, m.input.CharLimit)
}

func TestRunFailsOnFatalLoad(t *testing.T) {
	loadErr := errors.New("corrupt")
	sh := shell.New(shell.Options{Store: &stubStore{loadErr: loadErr}, Rand: randutil.New(1)})

	assert.ErrorIs(t, Run(sh, nil), loadErr)
}
