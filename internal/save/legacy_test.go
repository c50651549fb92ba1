package save

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/game"
)

// legacyText renders s in the plain text format
func legacyText(s game.State) string {
	var b strings.Builder
	for _, e := range s.Leaderboard {
		fmt.Fprintf(&b, "%s\n%d\n", e.Name, e.Score)
	}
	fmt.Fprintf(&b, "%s\n%d\n", s.Profile.Name, s.Profile.Score)
	for _, c := range s.Deck {
		fmt.Fprintf(&b, "%d\n%d\n", c.Suit, c.Rank)
	}
	for i := range s.Player {
		p, d := s.Player[i], s.Dealer[i]
		fmt.Fprintf(&b, "%d\n%d\n%d\n%d\n", p.Suit, p.Rank, d.Suit, d.Rank)
	}
	r := s.Round
	fmt.Fprintf(&b, "%d\n%d\n%d\n%d\n%d\n%d\n%d\n",
		s.Money, s.HandNumber, r.Cursor, r.InitialBet, r.TotalBet, r.FirstBuy, int(r.Phase))
	return b.String()
}

func TestReadLegacy(t *testing.T) {
	want := midRound(t)
	text := legacyText(want)
	require.Equal(t, LegacyLines, strings.Count(text, "\n"))

	got, err := ReadLegacy(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestReadLegacyCRLF(t *testing.T) {
	want := midRound(t)
	text := strings.ReplaceAll(legacyText(want), "\n", "\r\n")

	got, err := ReadLegacy(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, want.Profile, got.Profile)
	assert.Equal(t, want.Deck, got.Deck)
}

func TestReadLegacyRejects(t *testing.T) {
	valid := legacyText(midRound(t))
	lines := strings.Split(valid, "\n")

	replaceLine := func(n int, v string) string {
		out := append([]string(nil), lines...)
		out[n] = v
		return strings.Join(out, "\n")
	}

	tests := []struct {
		name string
		text string
	}{
		{"too short", strings.Join(lines[:100], "\n")},
		{"extra line", valid + "\n"},
		{"score not a number", replaceLine(1, "lots")},
		// line 22 is the suit of the first deck card
		{"unknown suit", replaceLine(22, "9")},
		{"duplicate deck card", duplicateFirstCard(lines)},
		{"phase out of range", replaceLine(LegacyLines-1, "12")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadLegacy(strings.NewReader(tt.text))
			assert.ErrorIs(t, err, ErrCorrupt)
		})
	}
}

// duplicateFirstCard overwrites the second deck card with the first
func duplicateFirstCard(lines []string) string {
	out := append([]string(nil), lines...)
	out[24], out[25] = out[22], out[23]
	return strings.Join(out, "\n")
}

func TestReadLegacyEmptyHandSlots(t *testing.T) {
	s := midRound(t)
	text := legacyText(s)

	got, err := ReadLegacy(strings.NewReader(text))
	require.NoError(t, err)
	assert.Equal(t, s.Player.Size(), got.Player.Size())
	assert.Equal(t, deck.Card{}, got.Dealer[4])
}
