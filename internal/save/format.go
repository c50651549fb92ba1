package save

import (
	"errors"
	"fmt"
	"time"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/game"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/leaderboard"
)

// Version is the save format written by this package
const Version = 1

type document struct {
	Version int          `hcl:"version"`
	SavedAt string       `hcl:"saved_at,optional"`
	Entries []entryBlock `hcl:"entry,block"`
	Profile profileBlock `hcl:"profile,block"`
	Round   roundBlock   `hcl:"round,block"`
}

type entryBlock struct {
	Name  string `hcl:"name"`
	Score int64  `hcl:"score"`
}

type profileBlock struct {
	Name       string `hcl:"name"`
	Score      int64  `hcl:"score"`
	Money      int64  `hcl:"money"`
	HandNumber int    `hcl:"hand_number"`
}

type roundBlock struct {
	Phase      int      `hcl:"phase"`
	Cursor     int      `hcl:"cursor"`
	InitialBet int      `hcl:"initial_bet"`
	TotalBet   int      `hcl:"total_bet"`
	FirstBuy   int      `hcl:"first_buy"`
	Deck       []string `hcl:"deck"`
	Player     []string `hcl:"player"`
	Dealer     []string `hcl:"dealer"`
}

func newDocument(s game.State, savedAt time.Time) *document {
	doc := &document{
		Version: Version,
		SavedAt: savedAt.UTC().Format(time.RFC3339),
		Entries: make([]entryBlock, 0, leaderboard.Capacity),
		Profile: profileBlock{
			Name:       s.Profile.Name,
			Score:      s.Profile.Score,
			Money:      s.Money,
			HandNumber: s.HandNumber,
		},
		Round: roundBlock{
			Phase:      int(s.Round.Phase),
			Cursor:     s.Round.Cursor,
			InitialBet: s.Round.InitialBet,
			TotalBet:   s.Round.TotalBet,
			FirstBuy:   s.Round.FirstBuy,
			Deck:       codes(s.Deck[:]),
			Player:     codes(s.Player.Cards()),
			Dealer:     codes(s.Dealer.Cards()),
		},
	}
	for _, e := range s.Leaderboard {
		doc.Entries = append(doc.Entries, entryBlock(e))
	}
	return doc
}

// state converts a decoded document back into a game state. Structural
// checks happen here; game invariants are left to State.Validate.
func (doc *document) state() (game.State, error) {
	var s game.State

	if doc.Version != Version {
		return s, fmt.Errorf("unsupported save version %d", doc.Version)
	}
	if len(doc.Entries) > leaderboard.Capacity {
		return s, fmt.Errorf("%d leaderboard entries, at most %d allowed", len(doc.Entries), leaderboard.Capacity)
	}
	for i, e := range doc.Entries {
		s.Leaderboard[i] = leaderboard.Entry(e)
	}

	s.Profile = game.Profile{Name: doc.Profile.Name, Score: doc.Profile.Score}
	s.Money = doc.Profile.Money
	s.HandNumber = doc.Profile.HandNumber

	r := doc.Round
	if r.InitialBet < 0 || r.TotalBet < 0 {
		return s, errors.New("negative bet")
	}
	s.Round = game.RoundState{
		Cursor:     r.Cursor,
		InitialBet: r.InitialBet,
		TotalBet:   r.TotalBet,
		FirstBuy:   r.FirstBuy,
		Phase:      game.Phase(r.Phase),
	}

	if len(r.Deck) != deck.Size {
		return s, fmt.Errorf("deck has %d cards, want %d", len(r.Deck), deck.Size)
	}
	for i, code := range r.Deck {
		c, err := deck.ParseCard(code)
		if err != nil {
			return s, fmt.Errorf("deck position %d: %w", i, err)
		}
		s.Deck[i] = c
	}

	var err error
	if s.Player, err = parseHand(r.Player); err != nil {
		return s, fmt.Errorf("player hand: %w", err)
	}
	if s.Dealer, err = parseHand(r.Dealer); err != nil {
		return s, fmt.Errorf("dealer hand: %w", err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	s.Leaderboard.Normalize()
	return s, nil
}

func parseHand(codes []string) (hand.Hand, error) {
	var h hand.Hand
	if len(codes) > hand.MaxCards {
		return h, fmt.Errorf("%d cards, at most %d allowed", len(codes), hand.MaxCards)
	}
	for i, code := range codes {
		c, err := deck.ParseCard(code)
		if err != nil {
			return h, fmt.Errorf("slot %d: %w", i, err)
		}
		h[i] = c
	}
	return h, nil
}

func codes(cards []deck.Card) []string {
	out := make([]string, 0, len(cards))
	for _, c := range cards {
		out = append(out, c.Code())
	}
	return out
}
