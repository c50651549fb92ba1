package hand

// Ranking is the category a hand falls into when bets are settled
type Ranking int

const (
	Blackjack Ranking = iota + 1
	FiveCardTrick
	TwentyOne
	NotBust
	Bust
)

// String returns a human-readable ranking
func (r Ranking) String() string {
	switch r {
	case Blackjack:
		return "BLACKJACK"
	case FiveCardTrick:
		return "FIVE CARD TRICK"
	case TwentyOne:
		return "TWENTY ONE"
	case NotBust:
		return "NOT BUST"
	case Bust:
		return "BUST"
	default:
		return "UNKNOWN"
	}
}

// Premium reports whether the ranking pays double (blackjack or five card trick)
func (r Ranking) Premium() bool {
	return r == Blackjack || r == FiveCardTrick
}

// Value returns the hand total. Every ace starts at 11; while the total is over
// 21, one ace at a time is demoted to 1.
func (h *Hand) Value() int {
	value, aces := 0, 0
	for _, c := range h[:h.Size()] {
		if c.IsAce() {
			aces++
		}
		value += c.Rank.Points()
	}

	for range aces {
		if value > 21 {
			value -= 10
		}
	}
	return value
}

// Rank categorises the hand. The checks run in priority order, so five cards
// totalling exactly 21 are a five card trick rather than twenty one.
func (h *Hand) Rank() Ranking {
	size, value := h.Size(), h.Value()

	switch {
	case size == 2 && value == 21:
		return Blackjack
	case size == MaxCards && value <= 21:
		return FiveCardTrick
	case value == 21:
		return TwentyOne
	case value <= 21:
		return NotBust
	default:
		return Bust
	}
}
