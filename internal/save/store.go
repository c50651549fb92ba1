package save

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclwrite"

	"github.com/lox/pontoon/internal/deck"
	"github.com/lox/pontoon/internal/game"
)

var (
	// ErrNotFound is returned when there is no save file at the store's path
	ErrNotFound = errors.New("save file not found")

	// ErrCorrupt is returned when a save file cannot be parsed or fails validation
	ErrCorrupt = errors.New("save file corrupt")

	// ErrExists is returned by Init when a save file is already present
	ErrExists = errors.New("save file already exists")
)

// Store reads and writes the save file at a fixed path
type Store struct {
	path   string
	clock  quartz.Clock
	logger *log.Logger
}

// NewStore creates a store for path. The clock stamps saved_at.
func NewStore(path string, clock quartz.Clock, logger *log.Logger) *Store {
	if clock == nil {
		clock = quartz.NewReal()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Store{
		path:   path,
		clock:  clock,
		logger: logger.WithPrefix("save"),
	}
}

// Path returns the save file location
func (s *Store) Path() string {
	return s.path
}

// Load reads and validates the save file
func (s *Store) Load() (game.State, error) {
	src, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return game.State{}, fmt.Errorf("%w: %s", ErrNotFound, s.path)
	}
	if err != nil {
		return game.State{}, fmt.Errorf("failed to read save file: %w", err)
	}

	state, err := Decode(src, s.path)
	if err != nil {
		s.logger.Error("Rejected save file", "path", s.path, "error", err)
		return game.State{}, err
	}
	s.logger.Debug("Loaded save file", "path", s.path, "player", state.Profile.Name, "phase", state.Round.Phase)
	return state, nil
}

// Save replaces the save file with state
func (s *Store) Save(state game.State) error {
	if err := writeFileAtomic(s.path, Encode(state, s.clock.Now()), 0o644); err != nil {
		return fmt.Errorf("failed to write save file: %w", err)
	}
	s.logger.Info("Saved game", "path", s.path, "player", state.Profile.Name, "money", state.Money, "score", state.Profile.Score)
	return nil
}

// Init writes an empty save: a blank leaderboard and a profile with no money,
// so LOAD GAME falls through to a new game. An existing file is only
// replaced when force is set.
func (s *Store) Init(force bool) error {
	if !force {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, s.path)
		}
	}
	return s.Save(Empty())
}

// Empty returns the state written by Init
func Empty() game.State {
	return game.State{
		Round: game.RoundState{FirstBuy: game.NoBuy, Phase: game.DealOpen},
		Deck:  deck.New(),
	}
}

// Encode renders state as a save document
func Encode(state game.State, savedAt time.Time) []byte {
	f := hclwrite.NewEmptyFile()
	gohcl.EncodeIntoBody(newDocument(state, savedAt), f.Body())
	return hclwrite.Format(f.Bytes())
}

// Decode parses and validates a save document. filename is only used in
// diagnostics. All failures wrap ErrCorrupt.
func Decode(src []byte, filename string) (game.State, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCL(src, filename)
	if diags.HasErrors() {
		return game.State{}, fmt.Errorf("%w: failed to parse: %s", ErrCorrupt, diags.Error())
	}

	var doc document
	if diags := gohcl.DecodeBody(file.Body, nil, &doc); diags.HasErrors() {
		return game.State{}, fmt.Errorf("%w: failed to decode: %s", ErrCorrupt, diags.Error())
	}

	state, err := doc.state()
	if err != nil {
		return game.State{}, fmt.Errorf("%w: %w", ErrCorrupt, err)
	}
	return state, nil
}
