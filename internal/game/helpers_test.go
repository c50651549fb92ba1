package game

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/randutil"
)

func testMachine(seed int64) *Machine {
	return NewMachine(randutil.New(seed), log.New(io.Discard))
}

// stackedDeck puts cards on top of the deck in order; the rest follow in
// populate order.
func stackedDeck(t *testing.T, cards []deck.Card) deck.Deck {
	t.Helper()
	var d deck.Deck
	used := map[deck.Card]bool{}
	for i, c := range cards {
		require.False(t, used[c], "card %s stacked twice", c.Code())
		used[c] = true
		d[i] = c
	}
	i := len(cards)
	for _, c := range deck.New() {
		if !used[c] {
			d[i] = c
			i++
		}
	}
	require.NoError(t, d.Validate())
	return d
}

// stateAt builds a state in phase with the given hands already dealt. next
// lists the cards that will be drawn after them.
func stateAt(t *testing.T, phase Phase, player, dealer, next string, bet int) State {
	t.Helper()
	p := deck.MustParseCards(player)
	d := deck.MustParseCards(dealer)
	n := deck.MustParseCards(next)

	stack := append(append(append([]deck.Card{}, p...), d...), n...)
	s := State{
		Round: RoundState{
			Cursor:     len(p) + len(d),
			InitialBet: bet,
			TotalBet:   bet,
			FirstBuy:   NoBuy,
			Phase:      phase,
		},
		Deck:       stackedDeck(t, stack),
		Player:     hand.New(p...),
		Dealer:     hand.New(d...),
		Profile:    Profile{Name: "tester"},
		Money:      StartingMoney,
		HandNumber: 1,
	}
	require.NoError(t, s.Validate())
	return s
}

// runUntilInput steps with Continue until the state awaits input or the
// session ends, collecting every effect.
func runUntilInput(t *testing.T, m *Machine, s State) (State, []Effect) {
	t.Helper()
	var all []Effect
	for range 20 {
		if s.Awaiting() != InputNone || ended(all) {
			return s, all
		}
		var effects []Effect
		var err error
		s, effects, err = m.Step(s, Continue{})
		require.NoError(t, err)
		all = append(all, effects...)
	}
	t.Fatalf("state did not settle: phase %s", s.Round.Phase)
	return s, all
}

func ended(effects []Effect) bool {
	for _, e := range effects {
		if _, ok := e.(SessionEnded); ok {
			return true
		}
	}
	return false
}

func settledOutcome(t *testing.T, effects []Effect) Outcome {
	t.Helper()
	for _, e := range effects {
		if rs, ok := e.(RoundSettled); ok {
			return rs.Outcome
		}
	}
	t.Fatalf("no RoundSettled effect in %v", effects)
	return Outcome{}
}

func effectTypes(effects []Effect) []EffectType {
	types := make([]EffectType, len(effects))
	for i, e := range effects {
		types[i] = e.EffectType()
	}
	return types
}
