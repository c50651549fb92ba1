package game

import (
	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/leaderboard"
)

// EffectType identifies an effect with type safety
type EffectType string

// EffectType constants for everything a step can ask the front end to show or do
const (
	EffectTypeRoundStarted       EffectType = "round_started"
	EffectTypeCardDealt          EffectType = "card_dealt"
	EffectTypeBetPlaced          EffectType = "bet_placed"
	EffectTypeCardBought         EffectType = "card_bought"
	EffectTypePlayerStuck        EffectType = "player_stuck"
	EffectTypeDealerStuck        EffectType = "dealer_stuck"
	EffectTypeRoundSettled       EffectType = "round_settled"
	EffectTypeLeaderboardUpdated EffectType = "leaderboard_updated"
	EffectTypePersist            EffectType = "persist"
	EffectTypeSessionEnded       EffectType = "session_ended"
)

// String returns the string representation of the effect type
func (et EffectType) String() string {
	return string(et)
}

// Effect is an outcome of a step that the caller presents or executes
type Effect interface {
	EffectType() EffectType
}

// Seat identifies who receives a card
type Seat int

const (
	SeatPlayer Seat = iota
	SeatDealer
)

// String returns the seat name
func (s Seat) String() string {
	if s == SeatDealer {
		return "dealer"
	}
	return "player"
}

// RoundStarted is emitted when a new round is dealt
type RoundStarted struct {
	HandNumber int
}

// CardDealt is emitted for every card drawn from the deck
type CardDealt struct {
	Seat   Seat
	Card   deck.Card
	Hidden bool // dealt face down
}

// BetPlaced is emitted when the initial bet is accepted
type BetPlaced struct {
	Amount int
}

// CardBought is emitted when the player pays for a card
type CardBought struct {
	Amount   int
	TotalBet int
	FirstBuy bool // this buy set the cap for the rest of the round
}

// PlayerStuck is emitted when the player's turn ends without busting
type PlayerStuck struct {
	Value   int
	Ranking hand.Ranking
	Forced  bool // the hand could not take more cards
}

// DealerStuck is emitted when the dealer stops drawing below bust
type DealerStuck struct {
	Value int
}

// RoundSettled is emitted once per round with the money and score change
type RoundSettled struct {
	Outcome Outcome
}

// LeaderboardUpdated is emitted when the profile is offered to the leaderboard
type LeaderboardUpdated struct {
	Candidate leaderboard.Entry
}

// Persist asks the caller to save the state returned with it
type Persist struct{}

// SessionEnded asks the caller to leave the game and return to the title
type SessionEnded struct {
	GameOver bool
}

func (RoundStarted) EffectType() EffectType       { return EffectTypeRoundStarted }
func (CardDealt) EffectType() EffectType          { return EffectTypeCardDealt }
func (BetPlaced) EffectType() EffectType          { return EffectTypeBetPlaced }
func (CardBought) EffectType() EffectType         { return EffectTypeCardBought }
func (PlayerStuck) EffectType() EffectType        { return EffectTypePlayerStuck }
func (DealerStuck) EffectType() EffectType        { return EffectTypeDealerStuck }
func (RoundSettled) EffectType() EffectType       { return EffectTypeRoundSettled }
func (LeaderboardUpdated) EffectType() EffectType { return EffectTypeLeaderboardUpdated }
func (Persist) EffectType() EffectType            { return EffectTypePersist }
func (SessionEnded) EffectType() EffectType       { return EffectTypeSessionEnded }
