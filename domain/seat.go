// Package domain contains core concepts of the brainwriting system.
// This file defines Seat entities and related invariants.
package domain

// SubstituteParticipant marks a seat that is never expected to receive
// a live human submission. Its triples are always generated.
const SubstituteParticipant = "substitute"

// Seat is a fixed ideation slot bound to a participant identity for
// the session's duration. Connection state lives in the registry, not
// here.
type Seat struct {
	Index         int
	ParticipantID string
}

// IsSubstitute reports whether this seat is filled by a non-human
// contributor.
func (s Seat) IsSubstitute() bool {
	return s.ParticipantID == SubstituteParticipant
}
