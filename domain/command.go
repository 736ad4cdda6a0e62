package domain

import (
	"github.com/google/uuid"
)

type Command interface {
	Session() SessionID
}

type StartSessionCommand struct {
	ID           SessionID `validate:"required"`
	Participants []string  `validate:"min=1,max=6"`
	Language     string
}

func (c StartSessionCommand) Session() SessionID {
	return c.ID
}

type SubmitIdeasCommand struct {
	ID            SessionID `validate:"required"`
	Sheet         uuid.UUID
	SubmitterSeat int
	Ideas         []string `validate:"len=3,dive,required"`
}

func (c SubmitIdeasCommand) Session() SessionID {
	return c.ID
}

// BulkSubmitCommand records manually-authored idea lists outside an
// active rotation. Each entry still carries exactly three ideas.
type BulkSubmitCommand struct {
	ID      SessionID  `validate:"required"`
	Round   int        `validate:"min=1"`
	Entries [][]string `validate:"min=1,dive,len=3,dive,required"`
}

func (c BulkSubmitCommand) Session() SessionID {
	return c.ID
}

type SkipSessionCommand struct {
	ID SessionID `validate:"required"`
}

func (c SkipSessionCommand) Session() SessionID {
	return c.ID
}
