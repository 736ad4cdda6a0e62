package domain

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seatsOf(n int) []Seat {
	seats := make([]Seat, n)
	for i := range seats {
		seats[i] = Seat{Index: i, ParticipantID: fmt.Sprintf("participant-%d", i)}
	}
	return seats
}

func TestNewSession_OneSheetPerSeat(t *testing.T) {
	session := NewSession("s1", seatsOf(4), "en")

	require.Equal(t, StateInProgress, session.State)
	require.Equal(t, 1, session.Round)
	require.Len(t, session.Sheets, 4)
	for i, sheet := range session.Sheets {
		require.Equal(t, i, sheet.OriginSeat)
		require.Equal(t, i, sheet.Holder)
		require.Empty(t, sheet.Entries)
	}
}

func TestSession_RoundComplete(t *testing.T) {
	session := NewSession("s1", seatsOf(2), "en")

	require.False(t, session.RoundComplete())

	session.Sheets[0].Append(RoundEntry{Round: 1, Ideas: []string{"a", "b", "c"}})
	require.False(t, session.RoundComplete())
	require.Equal(t, 1, session.SubmittedCount(1))

	session.Sheets[1].Append(RoundEntry{Round: 1, Ideas: []string{"d", "e", "f"}})
	require.True(t, session.RoundComplete())
}

func TestSession_AdvanceRound_RotatesEverySheet(t *testing.T) {
	session := NewSession("s1", seatsOf(3), "en")

	completed := session.AdvanceRound()

	require.False(t, completed)
	require.Equal(t, 2, session.Round)
	for _, sheet := range session.Sheets {
		require.Equal(t, (sheet.OriginSeat+1)%3, sheet.Holder)
	}
}

func TestSession_SixRotationsReturnSheetsHome(t *testing.T) {
	session := NewSession("s1", seatsOf(6), "en")

	for round := 1; round < MaxRounds; round++ {
		require.False(t, session.AdvanceRound())
	}
	require.True(t, session.AdvanceRound())

	// After six rotations every sheet is back with its origin seat
	for _, sheet := range session.Sheets {
		require.Equal(t, sheet.OriginSeat, sheet.Holder)
	}
	require.Equal(t, StateComplete, session.State)
}

func TestSession_SingleSeatRotatesToItself(t *testing.T) {
	session := NewSession("s1", seatsOf(1), "en")

	session.AdvanceRound()

	require.Equal(t, 0, session.Sheets[0].Holder)
	require.Equal(t, 2, session.Round)
}

func TestSession_Completed_Boundary(t *testing.T) {
	session := NewSession("s1", seatsOf(1), "en")

	// Drive to the last round without finishing it
	for round := 1; round < MaxRounds; round++ {
		session.Sheets[0].Append(RoundEntry{Round: round, Ideas: []string{"a", "b", "c"}})
		session.AdvanceRound()
	}
	require.Equal(t, MaxRounds, session.Round)
	require.False(t, session.Completed())

	// The instant the last triple of the last round lands, the
	// session counts as done, even before any rotation attempt
	session.Sheets[0].Append(RoundEntry{Round: MaxRounds, Ideas: []string{"a", "b", "c"}})
	require.True(t, session.Completed())
}

func TestNewSkippedSession_HasNoSheets(t *testing.T) {
	session := NewSkippedSession("s1")

	require.Equal(t, StateSkipped, session.State)
	require.Empty(t, session.Sheets)
	require.Zero(t, session.Round)
}

func TestSession_SheetByID(t *testing.T) {
	session := NewSession("s1", seatsOf(2), "en")

	require.Equal(t, session.Sheets[1], session.SheetByID(session.Sheets[1].ID))
	require.Nil(t, session.SheetByID(uuid.New()))
}

func TestSession_SeatByIndex(t *testing.T) {
	session := NewSession("s1", seatsOf(2), "en")

	require.Equal(t, "participant-1", session.SeatByIndex(1).ParticipantID)
	require.Nil(t, session.SeatByIndex(-1))
	require.Nil(t, session.SeatByIndex(2))
}
