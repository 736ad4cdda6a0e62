package runtime

import (
	"context"
	"fmt"
	"ideation-lab/contract"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"ideation-lab/repositories"
	"ideation-lab/runtime/workers"
	"log/slog"
	"sync"
	"time"
)

// Orchestrator is the composition root of the facilitation backend.
// It runs commands against the rotation engine synchronously and hands
// the resulting events to the fan-out pipeline; independently, it
// tracks participants attaching to and detaching from sessions.
type Orchestrator struct {
	mu             sync.Mutex
	log            *slog.Logger
	engine         *RotationEngine
	registry       *Registry
	supervisor     contract.ISupervisor
	permanentSinks []contract.EventSink
	domainEvents   chan event.DomainEvent
	sinkTimeout    time.Duration
	monitor        *workers.HealthMonitoringWorker
}

func NewOrchestrator(
	log *slog.Logger,
	supervisor contract.ISupervisor,
	registry *Registry,
	engine *RotationEngine,
	bufferSize int,
	sinkTimeout time.Duration,
	metricInterval time.Duration,
) *Orchestrator {
	return &Orchestrator{
		log:          log,
		engine:       engine,
		registry:     registry,
		supervisor:   supervisor,
		domainEvents: make(chan event.DomainEvent, bufferSize),
		sinkTimeout:  sinkTimeout,
		monitor:      workers.NewHealthMonitoringWorker(log, metricInterval),
	}
}

// Add registers permanent sinks (projections, indexes) that receive
// every event regardless of session.
func (o *Orchestrator) Add(sinks ...contract.EventSink) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.permanentSinks = append(o.permanentSinks, sinks...)
}

func (o *Orchestrator) StartSession(ctx context.Context, cmd domain.StartSessionCommand) error {
	events, err := o.engine.Start(ctx, cmd)
	o.publish(events)
	return err
}

func (o *Orchestrator) SubmitIdeas(ctx context.Context, cmd domain.SubmitIdeasCommand) error {
	events, err := o.engine.SubmitIdeas(ctx, cmd)
	o.publish(events)
	return err
}

func (o *Orchestrator) BulkSubmitIdeas(ctx context.Context, cmd domain.BulkSubmitCommand) error {
	events, err := o.engine.BulkSubmit(ctx, cmd)
	o.publish(events)
	return err
}

func (o *Orchestrator) SkipSession(ctx context.Context, cmd domain.SkipSessionCommand) error {
	events, err := o.engine.Skip(ctx, cmd)
	o.publish(events)
	return err
}

func (o *Orchestrator) SessionStatus(ctx context.Context, id domain.SessionID) (domain.SessionStatus, error) {
	return o.engine.Status(ctx, id)
}

func (o *Orchestrator) ListIdeas(ctx context.Context, id domain.SessionID) ([]repositories.IdeaRecord, error) {
	return o.engine.ListIdeas(ctx, id)
}

// RegisterParticipant attaches a client handle to a session and tells
// the other members. Attaching never touches the rotation engine.
func (o *Orchestrator) RegisterParticipant(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	o.registry.Subscribe(sessionID, participantID, sink)
	o.publish([]event.DomainEvent{event.ParticipantJoined{
		ID:            sessionID,
		ParticipantID: participantID,
		At:            time.Now().UTC(),
	}})
}

// UnregisterParticipant disconnects a participant's handle. Idempotent.
func (o *Orchestrator) UnregisterParticipant(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	o.registry.Unsubscribe(sessionID, participantID, sink)
	o.publish([]event.DomainEvent{event.ParticipantLeft{
		ID:            sessionID,
		ParticipantID: participantID,
		At:            time.Now().UTC(),
	}})
}

// Stats exposes process health for the debug surface.
func (o *Orchestrator) Stats() map[string]any {
	return o.monitor.Stats()
}

// publish hands a batch of events to the fan-out pipeline in order.
// The channel is buffered; a full buffer drops the event rather than
// blocking the command path.
func (o *Orchestrator) publish(events []event.DomainEvent) {
	for _, evt := range events {
		select {
		case o.domainEvents <- evt:
		default:
			o.log.Warn(fmt.Sprintf("Event channel full for session %s, dropping %s", evt.Session(), evt.Name()))
		}
	}
}

// Start prepares the pipeline and then runs the supervisor. It blocks
// until Stop is called or the context is canceled, so callers run it
// in a dedicated goroutine. The preparation pattern keeps the mutex
// hold time short.
func (o *Orchestrator) Start(ctx context.Context) error {
	o.mu.Lock()
	fanout := workers.NewEventFanout(o.log, o.registry, o.domainEvents, o.permanentSinks, o.sinkTimeout)
	o.supervisor.Add(fanout)
	o.supervisor.Add(o.monitor)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator and all supervised workers")
	o.supervisor.Run(ctx)
	return nil
}

// Stop initiates a graceful shutdown by canceling the supervision
// context; workers drain and exit on their own.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.supervisor.Stop()
}
