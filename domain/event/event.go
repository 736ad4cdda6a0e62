package event

import (
	"ideation-lab/domain"
	"time"

	"github.com/google/uuid"
)

// DomainEvent describes one state change in a session. The name is the
// stable wire identifier broadcast to connected clients.
type DomainEvent interface {
	Session() domain.SessionID
	Name() string
}

// Excluder is implemented by events that should not be delivered back
// to the participant that caused them.
type Excluder interface {
	ExcludedParticipant() string
}

type SessionStarted struct {
	ID       domain.SessionID `json:"session_id"`
	Seats    []domain.Seat    `json:"seats"`
	Language string           `json:"language"`
	At       time.Time        `json:"at"`
}

func (e SessionStarted) Session() domain.SessionID { return e.ID }
func (e SessionStarted) Name() string              { return "session_started" }

type IdeasSubmitted struct {
	ID            domain.SessionID `json:"session_id"`
	Sheet         uuid.UUID        `json:"sheet_id"`
	SubmitterSeat int              `json:"submitter_seat"`
	Round         int              `json:"round"`
	Ideas         []string         `json:"ideas"`
	Generated     bool             `json:"generated"`
	At            time.Time        `json:"at"`
}

func (e IdeasSubmitted) Session() domain.SessionID { return e.ID }
func (e IdeasSubmitted) Name() string              { return "ideas_submitted" }

type RoundAdvanced struct {
	ID    domain.SessionID `json:"session_id"`
	Round int              `json:"round"`
	At    time.Time        `json:"at"`
}

func (e RoundAdvanced) Session() domain.SessionID { return e.ID }
func (e RoundAdvanced) Name() string              { return "round_advanced" }

type SessionCompleted struct {
	ID domain.SessionID `json:"session_id"`
	At time.Time        `json:"at"`
}

func (e SessionCompleted) Session() domain.SessionID { return e.ID }
func (e SessionCompleted) Name() string              { return "session_completed" }

type ParticipantJoined struct {
	ID            domain.SessionID `json:"session_id"`
	ParticipantID string           `json:"participant_id"`
	At            time.Time        `json:"at"`
}

func (e ParticipantJoined) Session() domain.SessionID { return e.ID }
func (e ParticipantJoined) Name() string              { return "participant_joined" }
func (e ParticipantJoined) ExcludedParticipant() string { return e.ParticipantID }

type ParticipantLeft struct {
	ID            domain.SessionID `json:"session_id"`
	ParticipantID string           `json:"participant_id"`
	At            time.Time        `json:"at"`
}

func (e ParticipantLeft) Session() domain.SessionID { return e.ID }
func (e ParticipantLeft) Name() string              { return "participant_left" }
func (e ParticipantLeft) ExcludedParticipant() string { return e.ParticipantID }
