package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/leaderboard"
	"github.com/lox/pontoon/internal/randutil"
)

func TestNew(t *testing.T) {
	board := leaderboard.Board{}
	board.Normalize()

	s := New("alice", board, randutil.New(7))

	assert.Equal(t, "alice", s.Profile.Name)
	assert.Equal(t, int64(0), s.Profile.Score)
	assert.Equal(t, int64(StartingMoney), s.Money)
	assert.Equal(t, 0, s.HandNumber)
	assert.Equal(t, DealOpen, s.Round.Phase)
	assert.Equal(t, NoBuy, s.Round.FirstBuy)
	assert.Equal(t, board, s.Leaderboard)
	assert.NotEqual(t, deck.New(), s.Deck, "deck should be shuffled")
	require.NoError(t, s.Validate())

	// same seed, same deck
	assert.Equal(t, s.Deck, New("bob", board, randutil.New(7)).Deck)
}

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		in   string
		want string
		err  error
	}{
		{in: "alice", want: "alice"},
		{in: "alice\n", want: "alice"},
		{in: "alice\r\n", want: "alice"},
		{in: "abcdefghijklmnopqrstuvwxyz", want: "abcdefghijklmno"},
		{in: "", err: ErrEmptyName},
		{in: "\n", err: ErrEmptyName},
		{in: "ann marie", err: ErrNameHasSpace},
		{in: "tab\tbed", err: ErrNameHasSpace},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := NormalizeName(tt.in)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAwaiting(t *testing.T) {
	s := stateAt(t, DealOpen, "9S", "5H", "", 0)
	assert.Equal(t, InputBet, s.Awaiting())

	s = stateAt(t, PlayerTurn, "9S 2C", "5H 6D", "", 3)
	assert.Equal(t, InputDecision, s.Awaiting())

	for _, p := range []Phase{CheckNatural, ResolvePlayer, DealerTurn, ResolveBoth} {
		s.Round.Phase = p
		assert.Equal(t, InputNone, s.Awaiting(), p.String())
	}

	s.Round.Phase = RoundEnd
	assert.Equal(t, InputPlayAgain, s.Awaiting())
	s.Money = -4
	assert.Equal(t, InputNone, s.Awaiting())
}

func TestDealerHidden(t *testing.T) {
	hidden := map[Phase]bool{
		DealOpen:      false,
		CheckNatural:  true,
		PlayerTurn:    true,
		ResolvePlayer: true,
		DealerTurn:    false,
		ResolveBoth:   false,
		RoundEnd:      false,
	}
	for p, want := range hidden {
		s := State{Round: RoundState{Phase: p}}
		assert.Equal(t, want, s.DealerHidden(), p.String())
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(s *State)
		errMsg string
	}{
		{"duplicate card in deck", func(s *State) { s.Deck[10] = s.Deck[11] }, "duplicate"},
		{"unknown phase", func(s *State) { s.Round.Phase = 9 }, "unknown phase"},
		{"cursor past the deck", func(s *State) { s.Round.Cursor = 53 }, "out of range"},
		{"cursor disagrees with hands", func(s *State) { s.Round.Cursor = 6 }, "does not match"},
		{"gap in hand", func(s *State) {
			s.Player[1] = deck.Card{}
			s.Player[2] = deck.NewCard(deck.Clubs, deck.Two)
		}, "hand"},
		{"bet above maximum", func(s *State) { s.Round.InitialBet = 11; s.Round.TotalBet = 11 }, "initial bet"},
		{"total below initial", func(s *State) { s.Round.TotalBet = 1 }, "total bet"},
		{"first buy below sentinel", func(s *State) { s.Round.FirstBuy = -2 }, "first buy"},
		{"negative score", func(s *State) { s.Profile.Score = -1 }, "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := stateAt(t, PlayerTurn, "9S 2C", "5H 6D", "", 3)
			tt.mutate(&s)
			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestValidateRejectsHandThatCannotDraw(t *testing.T) {
	tests := []struct {
		name   string
		phase  Phase
		player string
		dealer string
		errMsg string
	}{
		{"five cards on the player's turn", PlayerTurn, "2S 3H 4D 5C 6S", "10D 7C", "player hand is FIVE CARD TRICK"},
		{"bust on the player's turn", PlayerTurn, "10S 6H KD", "10D 7C", "player hand is BUST"},
		{"twenty one on the player's turn", PlayerTurn, "10S 6H 5D", "10D 7C", "player hand is TWENTY ONE"},
		{"five cards on the dealer's turn", DealerTurn, "10S 9H", "2D 2C 3H 3S 4C", "dealer hand is FIVE CARD TRICK"},
		{"bust on the dealer's turn", DealerTurn, "10S 9H", "10D 6C KH", "dealer hand is BUST"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// built in a phase that accepts the hands, then moved
			s := stateAt(t, ResolveBoth, tt.player, tt.dealer, "", 4)
			s.Round.Phase = tt.phase

			err := s.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
