package workers

import (
	"context"
	"ideation-lab/contract"
	"ideation-lab/domain/event"
	"log/slog"
	"sync"
	"time"
)

// Ensure *EventFanout implements the contract.Worker interface at
// compile time.
var _ contract.Worker = (*EventFanout)(nil)

// EventFanout is the publisher bridging rotation-engine events to the
// connected clients. Each event drained from the channel is handed to
// every permanent sink (projections, indexes) and broadcast through
// the registry to the session's attached handles.
//
// Fan-out is best-effort with no delivery, ordering, durability, or
// retry guarantees. A failed broadcast for one event never blocks the
// rest of the batch. EventFanout is not a message broker.
type EventFanout struct {
	log          *slog.Logger
	registry     contract.IRegistry
	domainEvents chan event.DomainEvent
	sinks        []contract.EventSink
	sinkTimeout  time.Duration
}

func NewEventFanout(
	log *slog.Logger,
	registry contract.IRegistry,
	domainEvents chan event.DomainEvent,
	sinks []contract.EventSink,
	sinkTimeout time.Duration,
) *EventFanout {
	return &EventFanout{
		log:          log,
		registry:     registry,
		domainEvents: domainEvents,
		sinks:        sinks,
		sinkTimeout:  sinkTimeout,
	}
}

func (w *EventFanout) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping event fan-out")
			return nil
		case evt, ok := <-w.domainEvents:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.Fanout(ctx, evt)
		}
	}
}

// Fanout delivers one event everywhere it needs to go. Permanent sinks
// are bounded by the sink timeout so a slow projection cannot stall
// the stream; broadcast failures are absorbed by the registry.
func (w *EventFanout) Fanout(ctx context.Context, evt event.DomainEvent) {
	var wg sync.WaitGroup
	for _, sink := range w.sinks {
		wg.Add(1)
		go func(sink contract.EventSink) {
			defer wg.Done()
			sinkCtx, cancel := context.WithTimeout(ctx, w.sinkTimeout)
			defer cancel()
			if err := sink.Consume(sinkCtx, evt); err != nil {
				w.log.Warn("Permanent sink failed to consume event",
					"event", evt.Name(),
					"session_id", evt.Session(),
					"error", err)
			}
		}(sink)
	}
	wg.Wait()

	exclude := ""
	if ex, ok := evt.(event.Excluder); ok {
		exclude = ex.ExcludedParticipant()
	}
	w.registry.Broadcast(ctx, evt, exclude)
}
