package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit. The zero value marks an empty hand slot.
type Suit int

const (
	Diamonds Suit = iota + 1
	Hearts
	Clubs
	Spades
)

// String returns the name of the suit as shown at the table
func (s Suit) String() string {
	switch s {
	case Diamonds:
		return "DIAMONDS"
	case Hearts:
		return "HEARTS"
	case Clubs:
		return "CLUBS"
	case Spades:
		return "SPADES"
	default:
		return "NULL"
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Valid reports whether s is one of the four suits
func (s Suit) Valid() bool {
	return s >= Diamonds && s <= Spades
}

// code returns the single-letter suit code used in save files
func (s Suit) code() string {
	switch s {
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Clubs:
		return "C"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Rank represents a card rank, ace low in numbering. The zero value marks an empty hand slot.
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

var rankNames = [...]string{
	Ace:   "ACE",
	Two:   "TWO",
	Three: "THREE",
	Four:  "FOUR",
	Five:  "FIVE",
	Six:   "SIX",
	Seven: "SEVEN",
	Eight: "EIGHT",
	Nine:  "NINE",
	Ten:   "TEN",
	Jack:  "JACK",
	Queen: "QUEEN",
	King:  "KING",
}

// String returns the name of the rank as shown at the table
func (r Rank) String() string {
	if !r.Valid() {
		return "NULL"
	}
	return rankNames[r]
}

// Valid reports whether r is between Ace and King
func (r Rank) Valid() bool {
	return r >= Ace && r <= King
}

// Points returns the pontoon value of the rank: aces count 11, picture cards 10.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r >= Ten && r <= King:
		return 10
	default:
		return int(r)
	}
}

func (r Rank) code() string {
	switch r {
	case Ace:
		return "A"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		return fmt.Sprintf("%d", int(r))
	}
}

// Card represents a playing card
type Card struct {
	Suit Suit
	Rank Rank
}

// NewCard creates a new card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// IsZero reports whether c is the empty-slot sentinel
func (c Card) IsZero() bool {
	return c.Suit == 0
}

// Valid reports whether c is a real card
func (c Card) Valid() bool {
	return c.Suit.Valid() && c.Rank.Valid()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// String returns the long form of a card (e.g., "QUEEN of HEARTS")
func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Rank, c.Suit)
}

// Code returns the compact form of a card (e.g., "QH", "10S", "AD")
func (c Card) Code() string {
	return c.Rank.code() + c.Suit.code()
}

// ParseCard parses a compact card code such as "AS", "10h" or "qd"
func ParseCard(s string) (Card, error) {
	s = strings.ToUpper(strings.TrimSpace(s))
	if len(s) < 2 || len(s) > 3 {
		return Card{}, fmt.Errorf("invalid card code: %q", s)
	}

	var suit Suit
	switch s[len(s)-1] {
	case 'D':
		suit = Diamonds
	case 'H':
		suit = Hearts
	case 'C':
		suit = Clubs
	case 'S':
		suit = Spades
	default:
		return Card{}, fmt.Errorf("invalid suit in card code: %q", s)
	}

	var rank Rank
	switch r := s[:len(s)-1]; r {
	case "A":
		rank = Ace
	case "J":
		rank = Jack
	case "Q":
		rank = Queen
	case "K":
		rank = King
	case "T", "10":
		rank = Ten
	default:
		if len(r) != 1 || r[0] < '2' || r[0] > '9' {
			return Card{}, fmt.Errorf("invalid rank in card code: %q", s)
		}
		rank = Rank(r[0] - '0')
	}

	return NewCard(suit, rank), nil
}

// ParseCards parses a space or comma separated list of card codes
func ParseCards(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ' ' || r == ','
	})
	cards := make([]Card, 0, len(fields))
	for _, f := range fields {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on error. Intended for tests.
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}
