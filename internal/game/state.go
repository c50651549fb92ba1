package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strings"
	"unicode"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/leaderboard"
)

const (
	// StartingMoney is the bankroll of a new game
	StartingMoney = 100

	// MinBet and MaxBet bound the initial bet of a round
	MinBet = 1
	MaxBet = 10

	// NoBuy marks a round in which the player has not bought a card yet
	NoBuy = -1

	// DealerStandsOn is the total at which the dealer stops drawing
	DealerStandsOn = 17

	// MaxNameLength is the longest player name kept
	MaxNameLength = 15
)

var (
	ErrEmptyName    = errors.New("name must not be empty")
	ErrNameHasSpace = errors.New("name must not contain spaces")
)

// Profile is the player's identity and accumulated score
type Profile struct {
	Name  string
	Score int64
}

// Entry returns the profile as a leaderboard candidate
func (p Profile) Entry() leaderboard.Entry {
	return leaderboard.Entry{Name: p.Name, Score: p.Score}
}

// RoundState holds the variables of the round in progress
type RoundState struct {
	Cursor     int // next undrawn deck position
	InitialBet int
	TotalBet   int
	FirstBuy   int // NoBuy until the first buy of the round
	Phase      Phase
}

// State is a complete, copyable snapshot of a game session
type State struct {
	Round       RoundState
	Deck        deck.Deck
	Player      hand.Hand
	Dealer      hand.Hand
	Profile     Profile
	Money       int64
	HandNumber  int
	Leaderboard leaderboard.Board
}

// New starts a fresh game for name: full bankroll, zero score, a shuffled deck
// and empty hands, waiting to deal the first round.
func New(name string, board leaderboard.Board, rng *rand.Rand) State {
	s := State{
		Round: RoundState{
			FirstBuy: NoBuy,
			Phase:    DealOpen,
		},
		Deck:        deck.New(),
		Profile:     Profile{Name: name},
		Money:       StartingMoney,
		Leaderboard: board,
	}
	s.Deck.Shuffle(rng)
	return s
}

// NormalizeName trims and truncates a typed name to MaxNameLength characters
// and checks that it is usable.
func NormalizeName(name string) (string, error) {
	name = strings.TrimRight(name, "\r\n")
	if r := []rune(name); len(r) > MaxNameLength {
		name = string(r[:MaxNameLength])
	}
	if name == "" {
		return "", ErrEmptyName
	}
	if strings.ContainsFunc(name, unicode.IsSpace) {
		return "", ErrNameHasSpace
	}
	return name, nil
}

// Awaiting reports which input the state needs next
func (s *State) Awaiting() Input {
	switch s.Round.Phase {
	case DealOpen:
		if s.awaitingBet() {
			return InputBet
		}
	case PlayerTurn:
		return InputDecision
	case RoundEnd:
		if s.Money > 0 {
			return InputPlayAgain
		}
	}
	return InputNone
}

// the opening deal leaves exactly two cards drawn and no bet placed
func (s *State) awaitingBet() bool {
	return s.Round.Phase == DealOpen && s.Round.Cursor == 2 && s.Round.InitialBet == 0
}

// BetRange returns the inclusive bounds of the initial bet
func (s *State) BetRange() (int, int) {
	return MinBet, MaxBet
}

// BuyRange returns the inclusive bounds of a buy. The first buy of a round may
// be up to twice the initial bet; it then caps every later buy.
func (s *State) BuyRange() (int, int) {
	if s.Round.FirstBuy == NoBuy {
		return s.Round.InitialBet, 2 * s.Round.InitialBet
	}
	return s.Round.InitialBet, s.Round.FirstBuy
}

// DealerHidden reports whether the dealer's second card is face down. It is
// revealed once the dealer plays or the natural check shows a dealer blackjack.
func (s *State) DealerHidden() bool {
	switch s.Round.Phase {
	case CheckNatural, PlayerTurn, ResolvePlayer:
		return true
	default:
		return false
	}
}

// Validate checks the structural invariants of a state read from storage
func (s *State) Validate() error {
	if err := s.Deck.Validate(); err != nil {
		return err
	}
	if !s.Round.Phase.Valid() {
		return fmt.Errorf("unknown phase %d", int(s.Round.Phase))
	}
	if s.Round.Cursor < 0 || s.Round.Cursor > deck.Size {
		return fmt.Errorf("draw position %d out of range", s.Round.Cursor)
	}
	if drawn := s.Player.Size() + s.Dealer.Size(); drawn != s.Round.Cursor {
		return fmt.Errorf("draw position %d does not match %d cards in hand", s.Round.Cursor, drawn)
	}
	for _, h := range []*hand.Hand{&s.Player, &s.Dealer} {
		for i, c := range h.Cards() {
			if !c.Valid() {
				return fmt.Errorf("invalid card in hand slot %d", i)
			}
		}
		// filled slots must be contiguous from the first
		for _, c := range h[h.Size():] {
			if !c.IsZero() {
				return errors.New("hand has a gap between cards")
			}
		}
	}
	// the hand that draws next must still be live
	switch s.Round.Phase {
	case PlayerTurn:
		if r := s.Player.Rank(); r != hand.NotBust {
			return fmt.Errorf("player hand is %s, cannot draw during %s", r, s.Round.Phase)
		}
	case DealerTurn:
		if r := s.Dealer.Rank(); r != hand.NotBust {
			return fmt.Errorf("dealer hand is %s, cannot draw during %s", r, s.Round.Phase)
		}
	}
	if s.Round.InitialBet < 0 || s.Round.InitialBet > MaxBet {
		return fmt.Errorf("initial bet %d out of range", s.Round.InitialBet)
	}
	if s.Round.TotalBet < s.Round.InitialBet {
		return fmt.Errorf("total bet %d below initial bet %d", s.Round.TotalBet, s.Round.InitialBet)
	}
	if s.Round.FirstBuy < NoBuy {
		return fmt.Errorf("first buy %d out of range", s.Round.FirstBuy)
	}
	if s.HandNumber < 0 {
		return fmt.Errorf("hand number %d is negative", s.HandNumber)
	}
	if s.Profile.Score < 0 {
		return fmt.Errorf("score %d is negative", s.Profile.Score)
	}
	return nil
}
