package game

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/lox/pontoon/internal/hand"
)

var (
	// ErrUnexpectedEvent is returned when an event does not fit the current phase
	ErrUnexpectedEvent = errors.New("unexpected event")

	// ErrInvalidAmount is returned for a bet or buy outside its range
	ErrInvalidAmount = errors.New("amount out of range")
)

// Machine advances game states. It holds the shuffle generator and a logger;
// all game data lives in the State values passed through Step.
type Machine struct {
	rng    *rand.Rand
	logger *log.Logger
}

// NewMachine creates a machine that shuffles with rng
func NewMachine(rng *rand.Rand, logger *log.Logger) *Machine {
	if rng == nil {
		panic("rng is required for the game machine")
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Machine{
		rng:    rng,
		logger: logger.WithPrefix("machine"),
	}
}

// Step applies ev to s and returns the next state with the effects produced.
// On error the input state is returned unchanged.
func (m *Machine) Step(s State, ev Event) (State, []Effect, error) {
	prev := s
	from := s.Round.Phase

	var (
		effects []Effect
		err     error
	)
	switch from {
	case DealOpen:
		effects, err = m.dealOpen(&s, ev)
	case CheckNatural:
		effects, err = m.checkNatural(&s, ev)
	case PlayerTurn:
		effects, err = m.playerTurn(&s, ev)
	case ResolvePlayer:
		effects, err = m.resolvePlayer(&s, ev)
	case DealerTurn:
		effects, err = m.dealerTurn(&s, ev)
	case ResolveBoth:
		effects, err = m.resolveBoth(&s, ev)
	case RoundEnd:
		effects, err = m.roundEnd(&s, ev)
	default:
		err = fmt.Errorf("unknown phase %d", int(from))
	}
	if err != nil {
		m.logger.Debug("Rejected event", "phase", from, "event", fmt.Sprintf("%T", ev), "error", err)
		return prev, nil, err
	}

	m.logger.Debug("Step",
		"from", from,
		"to", s.Round.Phase,
		"event", fmt.Sprintf("%T", ev),
		"cursor", s.Round.Cursor,
		"effects", len(effects))
	return s, effects, nil
}

func (m *Machine) dealOpen(s *State, ev Event) ([]Effect, error) {
	if s.awaitingBet() {
		bet, ok := ev.(PlaceBet)
		if !ok {
			return nil, unexpected(s, ev)
		}
		lo, hi := s.BetRange()
		if bet.Amount < lo || bet.Amount > hi {
			return nil, fmt.Errorf("%w: bet %d not between %d and %d", ErrInvalidAmount, bet.Amount, lo, hi)
		}

		s.Round.InitialBet = bet.Amount
		s.Round.TotalBet = bet.Amount
		effects := []Effect{
			BetPlaced{Amount: bet.Amount},
			s.deal(SeatPlayer, false),
			s.deal(SeatDealer, true),
		}
		s.Round.Phase = CheckNatural
		return effects, nil
	}

	if _, ok := ev.(Continue); !ok {
		return nil, unexpected(s, ev)
	}

	s.Player.Reset()
	s.Dealer.Reset()
	s.Deck.Shuffle(m.rng)
	s.Round = RoundState{FirstBuy: NoBuy, Phase: DealOpen}
	s.HandNumber++
	m.logger.Info("Starting round", "hand", s.HandNumber, "money", s.Money)

	return []Effect{
		RoundStarted{HandNumber: s.HandNumber},
		s.deal(SeatPlayer, false),
		s.deal(SeatDealer, false),
	}, nil
}

// checkNatural looks for two-card 21s. A player natural skips the decision
// loop but the dealer still plays out its turn afterwards.
func (m *Machine) checkNatural(s *State, ev Event) ([]Effect, error) {
	if _, ok := ev.(Continue); !ok {
		return nil, unexpected(s, ev)
	}

	playerNatural := s.Player.Rank() == hand.Blackjack
	dealerNatural := s.Dealer.Rank() == hand.Blackjack

	switch {
	case playerNatural && dealerNatural:
		return []Effect{m.settle(s, Push, ReasonBothNatural, 0)}, nil
	case dealerNatural:
		return []Effect{m.settle(s, Loss, ReasonDealerNatural, -2*int64(s.Round.InitialBet))}, nil
	case playerNatural:
		s.Round.Phase = ResolvePlayer
	default:
		s.Round.Phase = PlayerTurn
	}
	return nil, nil
}

func (m *Machine) playerTurn(s *State, ev Event) ([]Effect, error) {
	switch ev := ev.(type) {
	case Buy:
		lo, hi := s.BuyRange()
		if ev.Amount < lo || ev.Amount > hi {
			return nil, fmt.Errorf("%w: buy %d not between %d and %d", ErrInvalidAmount, ev.Amount, lo, hi)
		}
		first := s.Round.FirstBuy == NoBuy
		if first {
			s.Round.FirstBuy = ev.Amount
		}
		s.Round.TotalBet += ev.Amount
		effects := []Effect{
			CardBought{Amount: ev.Amount, TotalBet: s.Round.TotalBet, FirstBuy: first},
			s.deal(SeatPlayer, false),
		}
		s.Round.Phase = ResolvePlayer
		return effects, nil

	case Twist:
		effects := []Effect{s.deal(SeatPlayer, false)}
		s.Round.Phase = ResolvePlayer
		return effects, nil

	case Stick:
		s.Round.Phase = DealerTurn
		return []Effect{PlayerStuck{Value: s.Player.Value(), Ranking: s.Player.Rank()}}, nil

	case SaveAndQuit:
		return m.endSession(s, false), nil

	default:
		return nil, unexpected(s, ev)
	}
}

func (m *Machine) resolvePlayer(s *State, ev Event) ([]Effect, error) {
	if _, ok := ev.(Continue); !ok {
		return nil, unexpected(s, ev)
	}

	switch r := s.Player.Rank(); r {
	case hand.Blackjack, hand.FiveCardTrick, hand.TwentyOne:
		s.Round.Phase = DealerTurn
		return []Effect{PlayerStuck{Value: s.Player.Value(), Ranking: r, Forced: true}}, nil
	case hand.NotBust:
		s.Round.Phase = PlayerTurn
		return nil, nil
	default:
		return []Effect{m.settle(s, Loss, ReasonPlayerBust, -int64(s.Round.TotalBet))}, nil
	}
}

// dealerTurn draws at most one card per step. The dealer stops as soon as a
// draw leaves anything other than an ordinary live hand, even below 17.
func (m *Machine) dealerTurn(s *State, ev Event) ([]Effect, error) {
	if _, ok := ev.(Continue); !ok {
		return nil, unexpected(s, ev)
	}

	if s.Dealer.Rank() == hand.Bust {
		s.Round.Phase = ResolveBoth
		return nil, nil
	}
	if value := s.Dealer.Value(); value >= DealerStandsOn {
		s.Round.Phase = ResolveBoth
		return []Effect{DealerStuck{Value: value}}, nil
	}

	effects := []Effect{s.deal(SeatDealer, false)}
	if s.Dealer.Rank() != hand.NotBust {
		s.Round.Phase = ResolveBoth
	}
	return effects, nil
}

func (m *Machine) resolveBoth(s *State, ev Event) ([]Effect, error) {
	if _, ok := ev.(Continue); !ok {
		return nil, unexpected(s, ev)
	}

	bet := int64(s.Round.TotalBet)
	playerRank := s.Player.Rank()

	var settled Effect
	switch s.Dealer.Rank() {
	case hand.Bust:
		settled = m.settle(s, Win, ReasonDealerBust, bet)
	case hand.FiveCardTrick:
		if playerRank == hand.Blackjack {
			settled = m.settle(s, Win, ReasonBlackjackBeatsTrick, 2*bet)
		} else {
			settled = m.settle(s, Loss, ReasonDealerFiveCardTrick, -2*bet)
		}
	default:
		switch {
		case playerRank.Premium():
			settled = m.settle(s, Win, ReasonPlayerPremium, 2*bet)
		case s.Player.Value() > s.Dealer.Value():
			settled = m.settle(s, Win, ReasonHigherValue, bet)
		default:
			// ties go to the dealer
			settled = m.settle(s, Loss, ReasonDealerHigherOrTie, -bet)
		}
	}
	return []Effect{settled}, nil
}

func (m *Machine) roundEnd(s *State, ev Event) ([]Effect, error) {
	if s.Money <= 0 {
		if _, ok := ev.(Continue); !ok {
			return nil, unexpected(s, ev)
		}
		m.logger.Info("Game over", "player", s.Profile.Name, "score", s.Profile.Score)
		return m.endSession(s, true), nil
	}

	switch ev.(type) {
	case PlayAgain:
		s.Round.Phase = DealOpen
		return nil, nil
	case Quit:
		return m.endSession(s, false), nil
	default:
		return nil, unexpected(s, ev)
	}
}

// settle applies the money change, credits winnings to the score and ends the round
func (m *Machine) settle(s *State, result Result, reason Reason, amount int64) Effect {
	var gain int64
	if amount > 0 {
		gain = amount
	}
	s.Money += amount
	s.Profile.Score += gain
	s.Round.Phase = RoundEnd

	outcome := Outcome{
		Result:      result,
		Reason:      reason,
		Player:      s.Player.Rank(),
		Dealer:      s.Dealer.Rank(),
		PlayerValue: s.Player.Value(),
		DealerValue: s.Dealer.Value(),
		Amount:      amount,
		ScoreGain:   gain,
	}
	m.logger.Info("Round settled",
		"hand", s.HandNumber,
		"result", result,
		"reason", reason,
		"amount", amount,
		"money", s.Money,
		"score", s.Profile.Score)
	return RoundSettled{Outcome: outcome}
}

// endSession offers the profile to the leaderboard and asks for a save
func (m *Machine) endSession(s *State, gameOver bool) []Effect {
	candidate := s.Profile.Entry()
	s.Leaderboard.Update(candidate)
	return []Effect{
		LeaderboardUpdated{Candidate: candidate},
		Persist{},
		SessionEnded{GameOver: gameOver},
	}
}

// deal draws the next card from the deck into seat's hand
func (s *State) deal(seat Seat, hidden bool) Effect {
	c := s.Deck.Draw(s.Round.Cursor)
	s.Round.Cursor++
	if seat == SeatDealer {
		s.Dealer.Add(c)
	} else {
		s.Player.Add(c)
	}
	return CardDealt{Seat: seat, Card: c, Hidden: hidden}
}

func unexpected(s *State, ev Event) error {
	return fmt.Errorf("%w: %T during %s", ErrUnexpectedEvent, ev, s.Round.Phase)
}
