package hand

import (
	"testing"

	"github.com/lox/pontoon/internal/deck"
	"github.com/stretchr/testify/assert"
)

func mustHand(t *testing.T, codes string) Hand {
	t.Helper()
	cards, err := deck.ParseCards(codes)
	if err != nil {
		t.Fatalf("parse %q: %v", codes, err)
	}
	return New(cards...)
}

func TestValue(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  int
	}{
		{"empty", "", 0},
		{"face values", "2S 9H", 11},
		{"pictures count ten", "KS QH", 20},
		{"ace high", "AS 9H", 20},
		{"ace demoted", "AS 9H 5C", 15},
		{"two aces, one demoted", "AS AH", 12},
		{"three aces and nine", "AS AH AD 9C", 12},
		{"king seven ace", "KS 7H AD", 18},
		{"bust with no aces", "KS QH 5D", 25},
		{"bust after demoting", "AS KH QD 5C", 26},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.cards)
			assert.Equal(t, tt.want, h.Value())
		})
	}
}

func TestValueDemotesOnlyWhenForced(t *testing.T) {
	// with no demotion needed the naive sum stands
	h := mustHand(t, "AS 5H 4D")
	assert.Equal(t, 20, h.Value())

	// demotion stops as soon as the hand is back to 21 or under
	h = mustHand(t, "AS AH 9D")
	assert.Equal(t, 21, h.Value())
}

func TestRank(t *testing.T) {
	tests := []struct {
		name  string
		cards string
		want  Ranking
	}{
		{"ace ten is blackjack", "AS 10H", Blackjack},
		{"ace king is blackjack", "KD AC", Blackjack},
		{"five cards at 21 is a trick, not twenty one", "2S 3H 4D 5C 7S", FiveCardTrick},
		{"five small cards", "2S 2H 3D 3C 4S", FiveCardTrick},
		{"five cards over 21 is bust", "2S 3H 4D 5C KS", Bust},
		{"three card 21", "7S 7H 7D", TwentyOne},
		{"four card 21 with soft ace", "AS 5H 3D 2C", TwentyOne},
		{"twenty", "KS QH", NotBust},
		{"bust", "KS QH 2D", Bust},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := mustHand(t, tt.cards)
			assert.Equal(t, tt.want, h.Rank())
		})
	}
}

func TestAnyTwoCardTwentyOneIsBlackjack(t *testing.T) {
	full := deck.New()
	for _, a := range full {
		for _, b := range full {
			if a == b {
				continue
			}
			h := New(a, b)
			if h.Value() == 21 {
				assert.Equal(t, Blackjack, h.Rank(), h.String())
			}
		}
	}
}

func TestAddPanicsOnSixthCard(t *testing.T) {
	h := mustHand(t, "2S 2H 2D 2C 3S")
	assert.Equal(t, MaxCards, h.Size())
	assert.Panics(t, func() { h.Add(deck.NewCard(deck.Spades, deck.Four)) })
}

func TestReset(t *testing.T) {
	h := mustHand(t, "2S 2H")
	h.Reset()
	assert.Equal(t, 0, h.Size())
	assert.Empty(t, h.Cards())
	assert.Equal(t, "", h.String())
}
