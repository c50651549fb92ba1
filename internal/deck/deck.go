package deck

import (
	"fmt"
	"math/rand/v2"
)

// Size is the number of cards in a full deck
const Size = 52

// Deck is a standard 52-card deck. The draw position is owned by the round
// state, not by the deck, so a deck can be saved and restored verbatim.
type Deck [Size]Card

// New returns a populated, unshuffled deck
func New() Deck {
	var d Deck
	d.Populate()
	return d
}

// Populate fills the deck with one card of every suit and rank, suit-major.
func (d *Deck) Populate() {
	i := 0
	for suit := Diamonds; suit <= Spades; suit++ {
		for rank := Ace; rank <= King; rank++ {
			d[i] = NewCard(suit, rank)
			i++
		}
	}
}

// Shuffle shuffles the deck in place using Fisher-Yates
func (d *Deck) Shuffle(rng *rand.Rand) {
	for i := len(d) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		d[i], d[j] = d[j], d[i]
	}
}

// Draw returns the card at cursor. Drawing past the end of the deck is a
// programming error and panics.
func (d *Deck) Draw(cursor int) Card {
	if cursor < 0 || cursor >= len(d) {
		panic(fmt.Sprintf("deck: draw position %d out of range", cursor))
	}
	return d[cursor]
}

// Validate checks that the deck holds every card exactly once
func (d *Deck) Validate() error {
	var seen [Spades + 1][King + 1]bool
	for i, c := range d {
		if !c.Valid() {
			return fmt.Errorf("deck position %d: invalid card %v/%v", i, int(c.Suit), int(c.Rank))
		}
		if seen[c.Suit][c.Rank] {
			return fmt.Errorf("deck position %d: duplicate card %s", i, c.Code())
		}
		seen[c.Suit][c.Rank] = true
	}
	return nil
}
