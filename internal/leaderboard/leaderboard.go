// Package leaderboard keeps the ten highest scores.
package leaderboard

// Capacity is the number of places on the board
const Capacity = 10

// sentinelScore is lower than any real score, so updating with it only re-sorts.
const sentinelScore = -1

// Entry is one place on the board
type Entry struct {
	Name  string
	Score int64
}

// Board holds the top scores, highest first
type Board [Capacity]Entry

// Update sorts the board and, when candidate scores at least as much as the
// last place, replaces last place with it and sorts again. Equal scores keep
// their existing order.
func (b *Board) Update(candidate Entry) {
	b.sort()
	if candidate.Score >= b[Capacity-1].Score {
		b[Capacity-1] = candidate
		b.sort()
	}
}

// Normalize re-sorts a freshly loaded board without displacing any entry
func (b *Board) Normalize() {
	b.Update(Entry{Score: sentinelScore})
}

// Entries returns the places in order
func (b *Board) Entries() []Entry {
	return append([]Entry(nil), b[:]...)
}

// bubble sort, descending; only strictly smaller neighbours are swapped
func (b *Board) sort() {
	for i := 0; i < Capacity; i++ {
		for j := 0; j < Capacity-1-i; j++ {
			if b[j].Score < b[j+1].Score {
				b[j], b[j+1] = b[j+1], b[j]
			}
		}
	}
}
