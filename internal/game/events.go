package game

// Event is an input to Machine.Step
type Event interface {
	isEvent()
}

// Continue advances a phase that needs no decision from the player
type Continue struct{}

// PlaceBet sets the initial bet after the opening cards
type PlaceBet struct {
	Amount int
}

// Buy pays Amount onto the bet and draws a card
type Buy struct {
	Amount int
}

// Twist draws a card for free
type Twist struct{}

// Stick ends the player's turn
type Stick struct{}

// SaveAndQuit saves the game mid-turn and leaves to the title screen
type SaveAndQuit struct{}

// PlayAgain deals a new round
type PlayAgain struct{}

// Quit saves after a round and leaves to the title screen
type Quit struct{}

func (Continue) isEvent()    {}
func (PlaceBet) isEvent()    {}
func (Buy) isEvent()         {}
func (Twist) isEvent()       {}
func (Stick) isEvent()       {}
func (SaveAndQuit) isEvent() {}
func (PlayAgain) isEvent()   {}
func (Quit) isEvent()        {}
