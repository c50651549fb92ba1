package game

import "github.com/lox/pontoon/internal/hand"

// Result is the player's side of a settled round
type Result int

const (
	Push Result = iota
	Win
	Loss
)

// String returns the result name
func (r Result) String() string {
	switch r {
	case Win:
		return "win"
	case Loss:
		return "loss"
	default:
		return "push"
	}
}

// Reason explains which rule settled the round
type Reason int

const (
	ReasonBothNatural Reason = iota
	ReasonDealerNatural
	ReasonPlayerBust
	ReasonDealerBust
	ReasonBlackjackBeatsTrick
	ReasonDealerFiveCardTrick
	ReasonPlayerPremium
	ReasonHigherValue
	ReasonDealerHigherOrTie
)

// String returns the reason name
func (r Reason) String() string {
	switch r {
	case ReasonBothNatural:
		return "both_natural"
	case ReasonDealerNatural:
		return "dealer_natural"
	case ReasonPlayerBust:
		return "player_bust"
	case ReasonDealerBust:
		return "dealer_bust"
	case ReasonBlackjackBeatsTrick:
		return "blackjack_beats_trick"
	case ReasonDealerFiveCardTrick:
		return "dealer_five_card_trick"
	case ReasonPlayerPremium:
		return "player_premium"
	case ReasonHigherValue:
		return "higher_value"
	case ReasonDealerHigherOrTie:
		return "dealer_higher_or_tie"
	default:
		return "unknown"
	}
}

// Outcome describes how a round was settled
type Outcome struct {
	Result      Result
	Reason      Reason
	Player      hand.Ranking
	Dealer      hand.Ranking
	PlayerValue int
	DealerValue int
	Amount      int64 // change in money, negative for a loss
	ScoreGain   int64
}
