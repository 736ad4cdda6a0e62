package domain

import "github.com/google/uuid"

// SessionStatus is a read-only snapshot returned by the rotation
// engine without mutating anything.
type SessionStatus struct {
	ID     SessionID
	State  SessionState
	Round  int
	Seats  int
	Sheets []SheetStatus
}

type SheetStatus struct {
	ID              uuid.UUID
	OriginSeat      int
	Holder          int
	SubmittedRounds int
}
