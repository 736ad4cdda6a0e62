package runtime

import (
	"context"
	"ideation-lab/contract"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"log/slog"
	"sync"
	"time"
)

var (
	_ contract.IRegistry = (*Registry)(nil)
	_ contract.IPresence = (*Registry)(nil)
)

type sinkSet map[contract.EventSink]struct{}

// Registry tracks the sinks currently attached to each session and
// delivers events to them. It knows nothing about rotation semantics
// and never rejects a broadcast based on session or round validity.
//
// The tracking structure is the only state in the system mutated by
// unrelated callers (connection lifecycles and the fan-out worker), so
// it guards itself; callers never need external locking.
type Registry struct {
	mu          sync.RWMutex
	sessions    map[domain.SessionID]map[string]sinkSet // session -> participant -> handles
	sinkTimeout time.Duration
	log         *slog.Logger
}

func NewRegistry(log *slog.Logger, sinkTimeout time.Duration) *Registry {
	return &Registry{
		sessions:    make(map[domain.SessionID]map[string]sinkSet),
		sinkTimeout: sinkTimeout,
		log:         log,
	}
}

// Subscribe registers a participant's active connection under a
// session. The first attach for a session lazily allocates its
// tracking set. A participant may hold several handles at once
// (multiple tabs, reconnect races); none of them are lost.
func (r *Registry) Subscribe(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		members = make(map[string]sinkSet)
		r.sessions[sessionID] = members
	}
	handles, ok := members[participantID]
	if !ok {
		handles = make(sinkSet)
		members[participantID] = handles
	}
	handles[sink] = struct{}{}
}

// Unsubscribe removes the exact (participant, handle) pair if present.
// Detaching an absent pair is a no-op, not an error. Empty sets are
// removed entirely so nothing leaks over time.
func (r *Registry) Unsubscribe(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.removeLocked(sessionID, participantID, sink)
}

func (r *Registry) removeLocked(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	members, ok := r.sessions[sessionID]
	if !ok {
		return
	}
	handles, ok := members[participantID]
	if !ok {
		return
	}
	delete(handles, sink)
	if len(handles) == 0 {
		delete(members, participantID)
	}
	if len(members) == 0 {
		delete(r.sessions, sessionID)
	}
}

type delivery struct {
	participantID string
	sink          contract.EventSink
}

// Broadcast delivers an event to every attached handle of the session
// except the excluded participant. Delivery is best-effort and
// fire-and-forget: each handle gets a bounded timeout, a failure on
// one handle never aborts delivery to the others, and failed handles
// are treated as stale and removed as part of the same call.
//
// Handles are iterated over a defensive snapshot so attach/detach
// racing the delivery pass never mutates a collection being iterated.
func (r *Registry) Broadcast(ctx context.Context, e event.DomainEvent, excludeParticipantID string) {
	r.mu.RLock()
	var targets []delivery
	for participantID, handles := range r.sessions[e.Session()] {
		if participantID == excludeParticipantID {
			continue
		}
		for sink := range handles {
			targets = append(targets, delivery{participantID: participantID, sink: sink})
		}
	}
	r.mu.RUnlock()

	if len(targets) == 0 {
		return
	}

	var wg sync.WaitGroup
	var staleMu sync.Mutex
	var stale []delivery

	for _, target := range targets {
		wg.Add(1)
		go func(target delivery) {
			defer wg.Done()
			sendCtx, cancel := context.WithTimeout(ctx, r.sinkTimeout)
			defer cancel()
			if err := target.sink.Consume(sendCtx, e); err != nil {
				r.log.Debug("Dropping stale handle after failed delivery",
					"session_id", e.Session(),
					"participant_id", target.participantID,
					"event", e.Name(),
					"error", err)
				staleMu.Lock()
				stale = append(stale, target)
				staleMu.Unlock()
			}
		}(target)
	}
	wg.Wait()

	if len(stale) == 0 {
		return
	}
	r.mu.Lock()
	for _, target := range stale {
		r.removeLocked(e.Session(), target.participantID, target.sink)
	}
	r.mu.Unlock()
}

// Count reports the number of attached handles for a session.
func (r *Registry) Count(sessionID domain.SessionID) int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	total := 0
	for _, handles := range r.sessions[sessionID] {
		total += len(handles)
	}
	return total
}

// ParticipantIDs snapshots the identities currently attached to a
// session.
func (r *Registry) ParticipantIDs(sessionID domain.SessionID) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(members))
	for participantID := range members {
		ids = append(ids, participantID)
	}
	return ids
}

// IsConnected reports whether a participant has at least one attached
// handle for the session. The rotation engine uses this to decide
// which seats are attended at round-close.
func (r *Registry) IsConnected(sessionID domain.SessionID, participantID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	members, ok := r.sessions[sessionID]
	if !ok {
		return false
	}
	return len(members[participantID]) > 0
}
