package domain

import (
	"time"

	"github.com/google/uuid"
)

// Sheet is the rotating unit of ideation state. It accumulates exactly
// one triple of ideas per round and is held by exactly one seat at any
// instant. Sheets are created at session start and never destroyed
// during a run.
type Sheet struct {
	ID         uuid.UUID
	OriginSeat int
	Holder     int
	Entries    []RoundEntry
}

// RoundEntry is one triple of ideas written on a sheet for a round.
// Entries are immutable once appended.
type RoundEntry struct {
	Round         int
	SubmitterSeat int
	Ideas         []string
	Generated     bool // true when the triple came from the substitute contributor
	At            time.Time
}

func NewSheet(id uuid.UUID, originSeat int) *Sheet {
	return &Sheet{
		ID:         id,
		OriginSeat: originSeat,
		Holder:     originSeat,
	}
}

func (s *Sheet) EntryForRound(round int) *RoundEntry {
	for i := range s.Entries {
		if s.Entries[i].Round == round {
			return &s.Entries[i]
		}
	}
	return nil
}

func (s *Sheet) HasRound(round int) bool {
	return s.EntryForRound(round) != nil
}

// Append writes a round's triple on the sheet. The engine enforces the
// triple invariant before calling; the sheet only records it.
func (s *Sheet) Append(entry RoundEntry) {
	s.Entries = append(s.Entries, entry)
}

// Rotate passes the sheet to the next seat. For n seats, n successive
// rotations return the sheet to its original holder. With n == 1 the
// sole holder rotates to themself, which is valid.
func (s *Sheet) Rotate(n int) {
	s.Holder = (s.Holder + 1) % n
}

// HolderForRound gives the seat expected to hold this sheet during the
// given 1-based round: (origin + round - 1) mod n.
func (s *Sheet) HolderForRound(round, n int) int {
	return (s.OriginSeat + round - 1) % n
}
