// Package game implements the pontoon round state machine.
//
// The main type is State, a plain value holding everything a saved game needs:
// the deck, both hands, the round variables, the player's profile and money,
// and the leaderboard. Machine.Step advances a State by one event and returns
// the new State together with the Effects a front end should present.
//
// # Basic Usage
//
//	m := game.NewMachine(rng, logger)
//	s := game.New("alice", board, rng)
//	for {
//	    switch s.Awaiting() {
//	    case game.InputNone:
//	        s, effects, err = m.Step(s, game.Continue{})
//	    case game.InputBet:
//	        s, effects, err = m.Step(s, game.PlaceBet{Amount: 5})
//	    // ...
//	    }
//	}
//
// # Phases
//
// A round moves through DealOpen, CheckNatural, PlayerTurn, ResolvePlayer,
// DealerTurn, ResolveBoth and RoundEnd. Only DealOpen (the initial bet),
// PlayerTurn and RoundEnd wait for the player; every other phase is advanced
// with Continue. The phase is stored as its integer code in save files.
//
// # Deterministic Testing
//
// The only randomness is the shuffle at the start of a round. Tests can pass
// a seeded generator from randutil.New, or build a State directly at any
// phase with a stacked deck and step it from there.
package game
