package sink

import (
	"context"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"sync"

	"github.com/google/uuid"
)

// TimelineEntry is one idea triple as it appeared on the stream.
type TimelineEntry struct {
	Sheet     uuid.UUID
	Round     int
	Seat      int
	Ideas     []string
	Generated bool
}

// Timeline holds a simple in-memory projection of every idea triple
// per session, in arrival order. Diagnostics only; the durable record
// lives in storage.
type Timeline struct {
	mu      sync.Mutex
	entries map[domain.SessionID][]TimelineEntry
}

func NewTimeline() *Timeline {
	return &Timeline{entries: make(map[domain.SessionID][]TimelineEntry)}
}

func (t *Timeline) Consume(_ context.Context, e event.DomainEvent) error {
	submitted, ok := e.(event.IdeasSubmitted)
	if !ok {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries[submitted.Session()] = append(t.entries[submitted.Session()], TimelineEntry{
		Sheet:     submitted.Sheet,
		Round:     submitted.Round,
		Seat:      submitted.SubmitterSeat,
		Ideas:     submitted.Ideas,
		Generated: submitted.Generated,
	})
	return nil
}

// Entries snapshots the timeline of one session.
func (t *Timeline) Entries(sessionID domain.SessionID) []TimelineEntry {
	t.mu.Lock()
	defer t.mu.Unlock()

	entries := t.entries[sessionID]
	out := make([]TimelineEntry, len(entries))
	copy(out, entries)
	return out
}
