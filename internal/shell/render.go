package shell

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/muesli/termenv"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/game"
	"github.com/lox/pontoon/internal/hand"
	"github.com/lox/pontoon/internal/leaderboard"
)

// Renderer turns game states and effects into terminal text
type Renderer struct {
	lg *lipgloss.Renderer

	title     lipgloss.Style
	header    lipgloss.Style
	label     lipgloss.Style
	redCard   lipgloss.Style
	blackCard lipgloss.Style
	success   lipgloss.Style
	failure   lipgloss.Style
	notice    lipgloss.Style
	menu      lipgloss.Style
}

// NewRenderer creates a renderer for w. color is one of auto, always or
// never; auto leaves detection to the terminal.
func NewRenderer(w io.Writer, color string) *Renderer {
	lg := lipgloss.NewRenderer(w)
	switch color {
	case "always":
		lg.SetColorProfile(termenv.TrueColor)
	case "never":
		lg.SetColorProfile(termenv.Ascii)
	}

	return &Renderer{
		lg:        lg,
		title:     lg.NewStyle().Foreground(lipgloss.Color("#FFD700")).Bold(true),
		header:    lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Background(lipgloss.Color("#7D56F4")).Bold(true),
		label:     lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		redCard:   lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		blackCard: lg.NewStyle().Foreground(lipgloss.Color("#FAFAFA")).Bold(true),
		success:   lg.NewStyle().Foreground(lipgloss.Color("#96CEB4")).Bold(true),
		failure:   lg.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true),
		notice:    lg.NewStyle().Foreground(lipgloss.Color("#FFEAA7")),
		menu:      lg.NewStyle().Foreground(lipgloss.Color("#FFD700")),
	}
}

const banner = `
 ____   ___  _   _ _____ ___   ___  _   _
|  _ \ / _ \| \ | |_   _/ _ \ / _ \| \ | |
| |_) | | | |  \| | | || | | | | | |  \| |
|  __/| |_| | |\  | | || |_| | |_| | |\  |
|_|    \___/|_| \_| |_| \___/ \___/|_| \_|
`

// Banner returns the game title
func (r *Renderer) Banner() string {
	return r.title.Render(strings.Trim(banner, "\n")) + "\n\n"
}

// Header returns the status line shown above every play screen. Bets are
// passed separately since the play-again screen shows them as zero.
func (r *Renderer) Header(s *game.State, initialBet, totalBet int) string {
	line := fmt.Sprintf("PLAYER: %s     ROUND: %d     MONEY: %d     INITIAL BET: $%d     TOTAL BET: $%d     SCORE: %d",
		s.Profile.Name, s.HandNumber, s.Money, initialBet, totalBet, s.Profile.Score)
	return r.header.Render(line) + "\n\n"
}

// Table returns both hands, hiding the dealer's second card while
// the state says it is face down.
func (r *Renderer) Table(s *game.State) string {
	var b strings.Builder
	b.WriteString(r.label.Render("DEALER'S HAND:") + "\n")
	if s.DealerHidden() && s.Dealer.Size() > 1 {
		fmt.Fprintf(&b, "1) %s\n2) ?\n\n", r.Card(s.Dealer[0]))
	} else {
		b.WriteString(r.Hand(&s.Dealer))
	}
	b.WriteString(r.label.Render("YOUR HAND:") + "\n")
	b.WriteString(r.Hand(&s.Player))
	return b.String()
}

// Hand lists the cards of h followed by its value
func (r *Renderer) Hand(h *hand.Hand) string {
	var b strings.Builder
	for i, c := range h.Cards() {
		fmt.Fprintf(&b, "%d) %s\n", i+1, r.Card(c))
	}
	fmt.Fprintf(&b, "Value: %d\n\n", h.Value())
	return b.String()
}

// Card renders c in its suit colour
func (r *Renderer) Card(c deck.Card) string {
	if c.IsRed() {
		return r.redCard.Render(c.String())
	}
	return r.blackCard.Render(c.String())
}

// Menu renders numbered options under a question
func (r *Renderer) Menu(question string, options ...string) string {
	var b strings.Builder
	b.WriteString(question + "\n")
	for i, opt := range options {
		b.WriteString(r.menu.Render(fmt.Sprintf("[%d] %s", i+1, opt)) + "\n")
	}
	return b.String()
}

// Leaderboard renders the board as a table with zero-padded positions
func (r *Renderer) Leaderboard(board *leaderboard.Board) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.lg.NewStyle().Foreground(lipgloss.Color("#626262"))).
		Headers("#", "NAME", "SCORE")
	for i, e := range board.Entries() {
		t.Row(fmt.Sprintf("%02d)", i+1), e.Name, strconv.FormatInt(e.Score, 10))
	}
	return r.title.Render("HIGHSCORES") + "\n" + t.String() + "\n"
}

// Notice renders a neutral message line
func (r *Renderer) Notice(msg string) string {
	return r.notice.Render(msg) + "\n"
}

// Error renders a rejection message line
func (r *Renderer) Error(msg string) string {
	return r.failure.Render(msg) + "\n"
}

// Effects narrates the effects of one step. Cards from the opening deal are
// left to the table view.
func (r *Renderer) Effects(effects []game.Effect, s *game.State) string {
	opening := false
	for _, e := range effects {
		switch e.(type) {
		case game.RoundStarted, game.BetPlaced:
			opening = true
		}
	}

	var b strings.Builder
	for _, e := range effects {
		switch e := e.(type) {
		case game.BetPlaced:
			fmt.Fprintf(&b, "You're betting $%d!\n", e.Amount)
		case game.CardBought:
			fmt.Fprintf(&b, "You buy a card for $%d. Total bet is now $%d.\n", e.Amount, e.TotalBet)
		case game.CardDealt:
			switch {
			case opening:
			case e.Seat == game.SeatDealer:
				fmt.Fprintf(&b, "The dealer draws the %s.\n", r.Card(e.Card))
			default:
				fmt.Fprintf(&b, "You draw the %s.\n", r.Card(e.Card))
			}
		case game.PlayerStuck:
			b.WriteString(r.playerStuck(e))
		case game.DealerStuck:
			fmt.Fprintf(&b, "The dealer sticks with %d.\n", e.Value)
		case game.RoundSettled:
			b.WriteString("\n" + r.Table(s) + r.Outcome(e.Outcome))
		case game.Persist:
			b.WriteString(r.Notice("Game saved."))
		}
	}
	return b.String()
}

func (r *Renderer) playerStuck(e game.PlayerStuck) string {
	if !e.Forced {
		return fmt.Sprintf("You've stuck with a hand value of %d.\nIt's now the dealer's turn.\n", e.Value)
	}
	switch e.Ranking {
	case hand.Blackjack:
		return "You've got blackjack! It's now the dealer's turn.\n"
	case hand.FiveCardTrick:
		return "You've got a five card trick! It's now the dealer's turn.\n"
	default:
		return "You've got 21! It's now the dealer's turn.\n"
	}
}

// Outcome describes how a round was settled
func (r *Renderer) Outcome(o game.Outcome) string {
	amount := o.Amount
	if amount < 0 {
		amount = -amount
	}

	var msg string
	switch o.Reason {
	case game.ReasonBothNatural:
		msg = "You were both dealt blackjack!\nNothing is won or lost."
	case game.ReasonDealerNatural:
		msg = fmt.Sprintf("Dealer was dealt blackjack!\nYou lose $%d.", amount)
	case game.ReasonPlayerBust:
		msg = fmt.Sprintf("You've gone bust! You lose $%d!", amount)
	case game.ReasonDealerBust:
		msg = fmt.Sprintf("The dealer went bust!\nYou win $%d!", amount)
	case game.ReasonBlackjackBeatsTrick:
		msg = fmt.Sprintf("Your BLACKJACK beats the dealer's FIVE CARD TRICK.\nYou win $%d!", amount)
	case game.ReasonDealerFiveCardTrick:
		if o.Player == hand.FiveCardTrick {
			msg = fmt.Sprintf("The dealer's FIVE CARD TRICK beats your FIVE CARD TRICK!\nYou lose $%d.", amount)
		} else {
			msg = fmt.Sprintf("The dealer's FIVE CARD TRICK beats your %d!\nYou lose $%d.", o.PlayerValue, amount)
		}
	case game.ReasonPlayerPremium:
		msg = fmt.Sprintf("Your %s beats the dealer's %d!\nYou win $%d!", o.Player, o.DealerValue, amount)
	case game.ReasonHigherValue:
		msg = fmt.Sprintf("Your %d beats the dealer's %d!\nYou win $%d!", o.PlayerValue, o.DealerValue, amount)
	default:
		msg = fmt.Sprintf("The dealer's %d beats your %d!\nYou lose $%d.", o.DealerValue, o.PlayerValue, amount)
	}

	switch o.Result {
	case game.Win:
		return r.success.Render(msg) + "\n"
	case game.Loss:
		return r.failure.Render(msg) + "\n"
	default:
		return r.notice.Render(msg) + "\n"
	}
}

// GameOver is shown when the bankroll runs out
func (r *Renderer) GameOver(s *game.State) string {
	return r.failure.Render("GAME OVER") + "\n\n" +
		fmt.Sprintf("You have $%d. Your score was: %d\n", s.Money, s.Profile.Score)
}
