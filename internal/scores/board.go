// Package scores holds the top-3 leaderboard: the ranking rules and the
// flat-file store behind them.
package scores

import "sort"

// MaxEntries is the board capacity. Everything below third place is dropped.
const MaxEntries = 3

type Record struct {
	Initials string
	Score    int
}

// Board is the in-memory leaderboard. It is always sorted descending by
// score and never holds more than MaxEntries records.
type Board struct {
	recs []Record
}

// NewBoard normalizes whatever the store produced: sorts descending and
// caps at MaxEntries.
func NewBoard(recs []Record) *Board {
	b := &Board{recs: append([]Record(nil), recs...)}
	b.normalize()
	return b
}

// IsHighScore reports whether score earns a slot: always while the board
// is short, otherwise only when strictly above the current third place.
func (b *Board) IsHighScore(score int) bool {
	if len(b.recs) < MaxEntries {
		return true
	}
	return score > b.recs[len(b.recs)-1].Score
}

func (b *Board) Add(r Record) {
	b.recs = append(b.recs, r)
	b.normalize()
}

// Records returns a copy; callers must not see internal order drift.
func (b *Board) Records() []Record {
	return append([]Record(nil), b.recs...)
}

func (b *Board) normalize() {
	sort.SliceStable(b.recs, func(i, j int) bool {
		return b.recs[i].Score > b.recs[j].Score
	})
	if len(b.recs) > MaxEntries {
		b.recs = b.recs[:MaxEntries]
	}
}
