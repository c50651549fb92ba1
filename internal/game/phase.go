package game

import "fmt"

// Phase is the state machine discriminator. The integer codes are persisted.
type Phase int

const (
	DealOpen Phase = iota
	CheckNatural
	PlayerTurn
	ResolvePlayer
	DealerTurn
	ResolveBoth
	RoundEnd
)

// String returns a human-readable phase name
func (p Phase) String() string {
	switch p {
	case DealOpen:
		return "deal_open"
	case CheckNatural:
		return "check_natural_blackjack"
	case PlayerTurn:
		return "player_turn"
	case ResolvePlayer:
		return "resolve_player"
	case DealerTurn:
		return "dealer_turn"
	case ResolveBoth:
		return "resolve_both"
	case RoundEnd:
		return "round_end"
	default:
		return fmt.Sprintf("phase(%d)", int(p))
	}
}

// Valid reports whether p is a known phase
func (p Phase) Valid() bool {
	return p >= DealOpen && p <= RoundEnd
}

// Input identifies what a State is waiting for from the player
type Input int

const (
	InputNone Input = iota
	InputBet
	InputDecision
	InputPlayAgain
)

// String returns the input name
func (i Input) String() string {
	switch i {
	case InputNone:
		return "none"
	case InputBet:
		return "bet"
	case InputDecision:
		return "decision"
	case InputPlayAgain:
		return "play_again"
	default:
		return "unknown"
	}
}
