// Package hand scores pontoon hands.
package hand

import (
	"fmt"
	"strings"

	"github.com/lox/pontoon/internal/deck"
)

// MaxCards is the most cards a hand can hold. Five cards always end a turn,
// either as a five card trick or bust, so a sixth is never drawn.
const MaxCards = 5

// Hand holds up to five cards. Unfilled slots hold the zero Card.
type Hand [MaxCards]deck.Card

// New builds a hand from cards, panicking if there are more than MaxCards.
func New(cards ...deck.Card) Hand {
	var h Hand
	for _, c := range cards {
		h.Add(c)
	}
	return h
}

// Size returns the number of filled slots
func (h *Hand) Size() int {
	n := 0
	for _, c := range h {
		if !c.IsZero() {
			n++
		}
	}
	return n
}

// Add places c in the first empty slot
func (h *Hand) Add(c deck.Card) {
	n := h.Size()
	if n >= MaxCards {
		panic(fmt.Sprintf("hand: cannot add %s to a full hand", c.Code()))
	}
	h[n] = c
}

// Reset empties every slot
func (h *Hand) Reset() {
	*h = Hand{}
}

// Cards returns the filled slots in deal order
func (h *Hand) Cards() []deck.Card {
	return append([]deck.Card(nil), h[:h.Size()]...)
}

// String returns the compact codes of the hand (e.g., "AS 10H")
func (h *Hand) String() string {
	cards := h.Cards()
	codes := make([]string, len(cards))
	for i, c := range cards {
		codes[i] = c.Code()
	}
	return strings.Join(codes, " ")
}
