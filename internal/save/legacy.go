package save

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/game"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/leaderboard"
)

// LegacyLines is the exact line count of a plain text save
const LegacyLines = 153

// ReadLegacy parses the plain text save format: one value per line, holding
// the leaderboard as name/score pairs, the profile name and score, the deck as
// suit/rank pairs, the hands as interleaved player/dealer suit/rank pairs,
// then money, hand number, cursor, initial bet, total bet, first buy and
// phase. Suits and ranks use their numeric codes; 0/0 is an empty hand slot.
func ReadLegacy(r io.Reader) (game.State, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return game.State{}, fmt.Errorf("failed to read legacy save: %w", err)
	}
	if n := bytes.Count(src, []byte{'\n'}); n != LegacyLines {
		return game.State{}, fmt.Errorf("%w: legacy save has %d lines, want %d", ErrCorrupt, n, LegacyLines)
	}

	lr := &lineReader{lines: strings.Split(string(src), "\n")}
	var s game.State

	for i := range leaderboard.Capacity {
		s.Leaderboard[i] = leaderboard.Entry{Name: lr.text(), Score: lr.int64Value()}
	}
	s.Profile = game.Profile{Name: lr.text(), Score: lr.int64Value()}

	for i := range deck.Size {
		s.Deck[i] = lr.card()
	}
	for i := range hand.MaxCards {
		s.Player[i] = lr.card()
		s.Dealer[i] = lr.card()
	}

	s.Money = lr.int64Value()
	s.HandNumber = lr.intValue()
	s.Round = game.RoundState{
		Cursor:     lr.intValue(),
		InitialBet: lr.intValue(),
		TotalBet:   lr.intValue(),
		FirstBuy:   lr.intValue(),
		Phase:      game.Phase(lr.intValue()),
	}

	if lr.err != nil {
		return game.State{}, fmt.Errorf("%w: %w", ErrCorrupt, lr.err)
	}
	if err := s.Validate(); err != nil {
		return game.State{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	s.Leaderboard.Normalize()
	return s, nil
}

// lineReader hands out successive lines, remembering the first parse error
type lineReader struct {
	lines []string
	pos   int
	err   error
}

func (lr *lineReader) text() string {
	line := strings.TrimRight(lr.lines[lr.pos], "\r")
	lr.pos++
	return line
}

func (lr *lineReader) int64Value() int64 {
	line := lr.pos + 1
	v, err := strconv.ParseInt(strings.TrimSpace(lr.text()), 10, 64)
	if err != nil && lr.err == nil {
		lr.err = fmt.Errorf("line %d: %w", line, err)
	}
	return v
}

func (lr *lineReader) intValue() int {
	return int(lr.int64Value())
}

func (lr *lineReader) card() deck.Card {
	suit, rank := deck.Suit(lr.intValue()), deck.Rank(lr.intValue())
	if suit == 0 && rank == 0 {
		return deck.Card{}
	}
	c := deck.NewCard(suit, rank)
	if !c.Valid() && lr.err == nil {
		lr.err = fmt.Errorf("line %d: invalid card %d/%d", lr.pos-1, suit, rank)
	}
	return c
}
