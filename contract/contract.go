//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"ideation-lab/domain/language"
	"reflect"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker
// initialization or lifecycle events, avoiding the need for manual
// naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// EventSink receives domain events. A sink is the in-process handle
// for one consumer: a connected client's stream, a projection, or an
// index. Consume must honor ctx so a slow consumer cannot stall the
// delivery pass.
type EventSink interface {
	Consume(ctx context.Context, e event.DomainEvent) error
}

// IRegistry tracks which sinks are attached to which session and
// fans events out to them. It holds no rotation semantics.
type IRegistry interface {
	Subscribe(sessionID domain.SessionID, participantID string, sink EventSink)
	Unsubscribe(sessionID domain.SessionID, participantID string, sink EventSink)
	Broadcast(ctx context.Context, e event.DomainEvent, excludeParticipantID string)
	Count(sessionID domain.SessionID) int
	ParticipantIDs(sessionID domain.SessionID) []string
}

// IPresence is the narrow read-only view the rotation engine uses to
// decide whether a seat is attended. Implemented by the registry.
type IPresence interface {
	IsConnected(sessionID domain.SessionID, participantID string) bool
}

// IIdeaGenerator produces substitute-contributor triples for a seat
// that has no live human submission for a round. Implementations must
// return within the deadline on ctx or fail; the engine always falls
// back to deterministic text on error.
type IIdeaGenerator interface {
	Generate(ctx context.Context, seat, round int, lang language.Language) ([]string, error)
}
