// Package shell drives a pontoon session from lines of text input.
//
// A Shell is a screen state machine: every Submit call takes one input line
// and returns the text to show next. It owns the game.State, feeds validated
// events to game.Machine and executes the Persist effect through its Store.
// RunLines connects a Shell to a reader and writer; the tui package wraps the
// same Shell in a Bubble Tea program.
package shell

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/lox/pontoon/internal/game"
	"github.com/lox/pontoon/internal/leaderboard"
)

// Store loads and persists the session
type Store interface {
	Load() (game.State, error)
	Save(game.State) error
}

type screen int

const (
	screenTitle screen = iota
	screenName
	screenPause
	screenBet
	screenDecision
	screenBuy
	screenPlayAgain
	screenClosed
)

// title menu choices
const (
	choiceNewGame = iota + 1
	choiceLoadGame
	choiceLeaderboard
	choiceInfo
	choiceQuit
)

// decision menu choices
const (
	choiceBuy = iota + 1
	choiceTwist
	choiceStick
	choiceSaveAndQuit
)

// Options configures a Shell
type Options struct {
	Store    Store
	Rand     *rand.Rand
	Renderer *Renderer
	Logger   *log.Logger

	// Pause waits for ENTER between the beats of a round
	Pause bool
}

// Shell is the menu and screen controller
type Shell struct {
	store   Store
	rng     *rand.Rand
	machine *game.Machine
	render  *Renderer
	logger  *log.Logger
	pause   bool

	screen     screen
	afterPause func() string
	saved      game.State
	board      leaderboard.Board
	state      game.State
	rejected   bool
	err        error
}

// New creates a shell. Store and Rand are required.
func New(opts Options) *Shell {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	render := opts.Renderer
	if render == nil {
		render = NewRenderer(io.Discard, "never")
	}
	return &Shell{
		store:   opts.Store,
		rng:     opts.Rand,
		machine: game.NewMachine(opts.Rand, logger),
		render:  render,
		logger:  logger.WithPrefix("shell"),
		pause:   opts.Pause,
	}
}

// Start shows the title screen
func (s *Shell) Start() string {
	return s.title()
}

// Done reports whether the session is over
func (s *Shell) Done() bool {
	return s.screen == screenClosed
}

// Err returns the error that closed the shell, if any
func (s *Shell) Err() error {
	return s.err
}

// Rejected reports whether the last Submit refused its input. The screen
// stays the same and the returned text is only the error line.
func (s *Shell) Rejected() bool {
	return s.rejected
}

// Submit handles one line of input and returns the text to show next
func (s *Shell) Submit(line string) string {
	s.rejected = false
	switch s.screen {
	case screenTitle:
		return s.submitTitle(line)
	case screenName:
		return s.submitName(line)
	case screenPause:
		next := s.afterPause
		s.afterPause = nil
		return next()
	case screenBet:
		lo, hi := s.state.BetRange()
		amount, err := ParseAmount(line, lo, hi)
		if err != nil {
			return s.reject(InvalidInput)
		}
		return s.run(game.PlaceBet{Amount: amount})
	case screenDecision:
		return s.submitDecision(line)
	case screenBuy:
		lo, hi := s.state.BuyRange()
		amount, err := ParseAmount(line, lo, hi)
		if err != nil {
			return s.reject(InvalidInput)
		}
		return s.run(game.Buy{Amount: amount})
	case screenPlayAgain:
		choice, err := ParseChoice(line, 1, 2)
		if err != nil {
			return s.reject(InvalidInput)
		}
		if choice == 1 {
			return s.run(game.PlayAgain{})
		}
		return s.run(game.Quit{})
	default:
		return ""
	}
}

// title reloads the save file, as it may have been replaced since the last
// visit, and shows the menu.
func (s *Shell) title() string {
	saved, err := s.store.Load()
	if err != nil {
		return s.fail(err)
	}
	s.saved = saved
	s.board = saved.Leaderboard
	s.screen = screenTitle

	return s.render.Banner() + s.render.Menu(
		"Please enter the number corresponding to your selection",
		"NEW GAME", "LOAD GAME", "LEADERBOARD", "INFO", "QUIT")
}

func (s *Shell) submitTitle(line string) string {
	choice, err := ParseChoice(line, choiceNewGame, choiceQuit)
	if err != nil {
		return s.reject(InvalidInput)
	}

	switch choice {
	case choiceNewGame:
		return s.askName()
	case choiceLoadGame:
		if s.saved.Money <= 0 {
			s.logger.Info("Saved game has no money left, starting a new game")
			return s.askName()
		}
		s.state = s.saved
		s.logger.Info("Resuming game", "player", s.state.Profile.Name, "phase", s.state.Round.Phase)
		return s.run(nil)
	case choiceLeaderboard:
		return s.render.Banner() + s.render.Leaderboard(&s.board) + s.pauseThen(s.title)
	case choiceInfo:
		return s.info(0)
	default:
		s.screen = screenClosed
		return "Thanks for playing!\n"
	}
}

func (s *Shell) info(page int) string {
	out := s.render.Banner() + infoPages[page]
	if page+1 < len(infoPages) {
		return out + s.pauseThen(func() string { return s.info(page + 1) })
	}
	return out + s.pauseThen(s.title)
}

func (s *Shell) askName() string {
	s.screen = screenName
	return fmt.Sprintf("Starting New Game\nPlease enter your name! (max %d chars, excess will be truncated)\n", game.MaxNameLength)
}

func (s *Shell) submitName(line string) string {
	name, err := game.NormalizeName(line)
	switch {
	case errors.Is(err, game.ErrNameHasSpace):
		return s.reject("Invalid input (no spaces)")
	case err != nil:
		return s.reject("Invalid input")
	}

	s.state = game.New(name, s.board, s.rng)
	s.logger.Info("New game", "player", name)
	return s.run(nil)
}

func (s *Shell) submitDecision(line string) string {
	choice, err := ParseChoice(line, choiceBuy, choiceSaveAndQuit)
	if err != nil {
		return s.reject(InvalidInput)
	}

	switch choice {
	case choiceBuy:
		s.screen = screenBuy
		return "Please input how much you wish to buy for\n"
	case choiceTwist:
		return s.run(game.Twist{})
	case choiceStick:
		return s.run(game.Stick{})
	default:
		return s.run(game.SaveAndQuit{})
	}
}

// run steps the machine with ev, then with Continue until the state needs
// input, a pause is due, or the session ends. A nil ev starts with
// Continue unless input is already awaited.
func (s *Shell) run(ev game.Event) string {
	var b strings.Builder
	for {
		if ev == nil {
			if s.state.Awaiting() != game.InputNone {
				b.WriteString(s.prompt())
				return b.String()
			}
			ev = game.Continue{}
		}

		next, effects, err := s.machine.Step(s.state, ev)
		if err != nil {
			return b.String() + s.fail(err)
		}
		s.state = next
		ev = nil

		var ended, gameOver bool
		for _, e := range effects {
			switch e := e.(type) {
			case game.Persist:
				if err := s.store.Save(s.state); err != nil {
					return b.String() + s.fail(err)
				}
			case game.SessionEnded:
				ended, gameOver = true, e.GameOver
			}
		}
		b.WriteString(s.render.Effects(effects, &s.state))

		switch {
		case gameOver:
			b.WriteString("\n" + s.render.GameOver(&s.state))
			return b.String() + s.pauseThen(s.title)
		case ended:
			return b.String() + s.title()
		case s.pause && pausesAfter(effects):
			return b.String() + s.pauseThen(func() string { return s.run(nil) })
		}
	}
}

// pausesAfter reports whether effects end a beat the player should read
// before play goes on: a stick, each dealer move and the settlement.
func pausesAfter(effects []game.Effect) bool {
	opening := false
	for _, e := range effects {
		switch e := e.(type) {
		case game.RoundStarted, game.BetPlaced:
			opening = true
		case game.PlayerStuck, game.DealerStuck, game.RoundSettled:
			return true
		case game.CardDealt:
			if e.Seat == game.SeatDealer && !opening {
				return true
			}
		}
	}
	return false
}

// prompt renders the play screen for the input the state awaits
func (s *Shell) prompt() string {
	st := &s.state
	switch st.Awaiting() {
	case game.InputBet:
		s.screen = screenBet
		lo, hi := st.BetRange()
		return s.render.Header(st, 0, 0) + s.render.Table(st) +
			fmt.Sprintf("How much is your initial bet? Must be between $%d and $%d\n", lo, hi)
	case game.InputDecision:
		s.screen = screenDecision
		lo, hi := st.BuyRange()
		return s.render.Header(st, st.Round.InitialBet, st.Round.TotalBet) + s.render.Table(st) + "\n" +
			s.render.Menu("Your turn:",
				fmt.Sprintf("BUY a card (between $%d and $%d)", lo, hi),
				"TWIST a card",
				"STICK with current hand",
				"SAVE and QUIT to title")
	default:
		s.screen = screenPlayAgain
		return s.render.Header(st, 0, 0) +
			s.render.Menu("Would you like to play another hand?", "YES", "SAVE and QUIT to title")
	}
}

func (s *Shell) pauseThen(next func() string) string {
	s.screen = screenPause
	s.afterPause = next
	return "Press ENTER to continue\n"
}

func (s *Shell) reject(msg string) string {
	s.rejected = true
	return s.render.Error(msg)
}

// fail closes the shell with err
func (s *Shell) fail(err error) string {
	s.logger.Error("Session failed", "error", err)
	s.err = err
	s.screen = screenClosed
	return ""
}
