/*
Package save persists game sessions.

A save file holds the leaderboard, the current player's profile and the
complete round in progress, so a session can be resumed mid-hand. Files are
versioned HCL documents:

	version  = 1
	saved_at = "2026-10-18T12:00:00Z"

	entry {
	  name  = "alice"
	  score = 40
	}

	profile {
	  name        = "bob"
	  score       = 12
	  money       = 96
	  hand_number = 3
	}

	round {
	  phase       = 2
	  cursor      = 5
	  initial_bet = 4
	  total_bet   = 9
	  first_buy   = 5
	  deck        = ["AS", "10H", ...]
	  player      = ["KD", "2C", "5S"]
	  dealer      = ["9H", "7C"]
	}

Writes go to a temporary file in the same directory which then replaces the
save, so readers never observe a partial file.

ReadLegacy converts the older 153-line plain text format.
*/
package save
