// Package sink provides EventSink implementations: the per-connection
// handle used by transports, and the permanent projections fed by the
// fan-out worker.
package sink

import (
	"context"
	"fmt"
	"ideation-lab/domain/event"
	"log/slog"
	"time"
)

// ConnectionSink is the in-process handle for one connected client.
// The transport goroutine owns the receive side of Events and pushes
// each envelope down its stream; the fan-out side only ever blocks up
// to the delivery timeout, so one dead client cannot stall a
// broadcast. A delivery failure here is how the registry discovers a
// stale connection.
type ConnectionSink struct {
	Events  chan event.DomainEvent
	timeout time.Duration
	log     *slog.Logger
}

func NewConnectionSink(log *slog.Logger, bufferSize int, timeout time.Duration) *ConnectionSink {
	return &ConnectionSink{
		Events:  make(chan event.DomainEvent, bufferSize),
		timeout: timeout,
		log:     log,
	}
}

func (s *ConnectionSink) Consume(ctx context.Context, e event.DomainEvent) error {
	deadline, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	select {
	case s.Events <- e:
		return nil
	case <-deadline.Done():
		return fmt.Errorf("connection buffer full, dropping %s: %w", e.Name(), deadline.Err())
	}
}
