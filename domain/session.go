// Package domain contains core concepts of the brainwriting system.
// This file defines the Session aggregate and the rotation invariants.
// No runtime, network, or UI logic should be added here.
package domain

import (
	"time"

	"github.com/google/uuid"
)

type SessionID string

// Rotation bounds of the 6-3-5 method: up to six seats, three ideas
// per sheet per round, six rounds total.
const (
	MinSeats      = 1
	MaxSeats      = 6
	IdeasPerRound = 3
	MaxRounds     = 6
)

type SessionState string

const (
	StateNotStarted SessionState = "NOT_STARTED"
	StateInProgress SessionState = "IN_PROGRESS"
	StateComplete   SessionState = "COMPLETE"
	StateSkipped    SessionState = "SKIPPED"
)

// Session is one brainwriting run. It owns the seats and the sheets
// rotating between them. Mutation happens only through the rotation
// engine, which serializes access per session.
type Session struct {
	ID        SessionID
	Seats     []Seat
	Sheets    []*Sheet
	Round     int // 1-based, advances only when every sheet has its triple
	State     SessionState
	Language  string
	CreatedAt time.Time
}

// NewSession creates a session in progress with one sheet per seat.
// Every sheet starts in the hands of its originating seat.
func NewSession(id SessionID, seats []Seat, language string) *Session {
	sheets := make([]*Sheet, len(seats))
	for i := range seats {
		sheets[i] = NewSheet(uuid.New(), i)
	}
	return &Session{
		ID:        id,
		Seats:     seats,
		Sheets:    sheets,
		Round:     1,
		State:     StateInProgress,
		Language:  language,
		CreatedAt: time.Now().UTC(),
	}
}

// NewSkippedSession records a group that opted out of structured
// brainwriting. No sheets rotate and no ideas are produced.
func NewSkippedSession(id SessionID) *Session {
	return &Session{
		ID:        id,
		State:     StateSkipped,
		CreatedAt: time.Now().UTC(),
	}
}

// Clone returns a deep copy of the session, sheets and entries
// included. Mutating the copy never affects the original.
func (s *Session) Clone() *Session {
	clone := *s
	clone.Seats = append([]Seat(nil), s.Seats...)
	clone.Sheets = make([]*Sheet, len(s.Sheets))
	for i, sheet := range s.Sheets {
		copied := *sheet
		copied.Entries = append([]RoundEntry(nil), sheet.Entries...)
		clone.Sheets[i] = &copied
	}
	return &clone
}

func (s *Session) SheetByID(id uuid.UUID) *Sheet {
	for _, sheet := range s.Sheets {
		if sheet.ID == id {
			return sheet
		}
	}
	return nil
}

func (s *Session) SeatByIndex(idx int) *Seat {
	if idx < 0 || idx >= len(s.Seats) {
		return nil
	}
	return &s.Seats[idx]
}

// SubmittedCount reports how many sheets already hold a triple for the
// given round.
func (s *Session) SubmittedCount(round int) int {
	count := 0
	for _, sheet := range s.Sheets {
		if sheet.HasRound(round) {
			count++
		}
	}
	return count
}

// RoundComplete reports whether every sheet holds a triple for the
// current round.
func (s *Session) RoundComplete() bool {
	return s.SubmittedCount(s.Round) == len(s.Sheets)
}

// AdvanceRound rotates every sheet to its next holder and increments
// the round counter. When the counter passes MaxRounds the session is
// complete. Returns true on completion.
//
// The caller must only invoke this once RoundComplete holds, otherwise
// a sheet would rotate away with a missing triple.
func (s *Session) AdvanceRound() bool {
	n := len(s.Seats)
	for _, sheet := range s.Sheets {
		sheet.Rotate(n)
	}
	s.Round++
	if s.Round > MaxRounds {
		s.State = StateComplete
		return true
	}
	return false
}

// Completed implements the exact boundary condition: a session is done
// the instant the last sheet finishes the final round, not only after
// an extra rotation attempt.
func (s *Session) Completed() bool {
	if s.State == StateComplete || s.Round > MaxRounds {
		return true
	}
	return s.Round == MaxRounds && s.RoundComplete()
}
