package workers

import (
	"context"
	"fmt"
	"ideation-lab/contract"
	"ideation-lab/domain/event"
	"ideation-lab/mocks"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestEventFanout_Delivers_To_Sinks_And_Registry(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	sink1 := mocks.NewMockEventSink(ctrl)
	sink2 := mocks.NewMockEventSink(ctrl)

	evt := event.RoundAdvanced{ID: "s1", Round: 2}

	// Given both permanent sinks consume the event
	sink1.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	sink2.EXPECT().Consume(gomock.Any(), evt).Return(nil).Times(1)
	// And the event is broadcast with no exclusion
	mockRegistry.EXPECT().Broadcast(gomock.Any(), evt, "").Times(1)

	fanout := NewEventFanout(log, mockRegistry, nil,
		[]contract.EventSink{sink1, sink2}, 10*time.Second)

	// When the event goes through one fan-out pass
	fanout.Fanout(context.Background(), evt)

	req.True(true)
}

func TestEventFanout_Excludes_The_Causing_Participant(t *testing.T) {
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	evt := event.ParticipantJoined{ID: "s1", ParticipantID: "alice"}

	// The joiner must not hear their own join
	mockRegistry.EXPECT().Broadcast(gomock.Any(), evt, "alice").Times(1)

	fanout := NewEventFanout(log, mockRegistry, nil, nil, 10*time.Second)
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_Sink_Failure_Does_Not_Stop_Broadcast(t *testing.T) {
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	failing := mocks.NewMockEventSink(ctrl)
	evt := event.SessionCompleted{ID: "s1"}

	failing.EXPECT().Consume(gomock.Any(), evt).Return(fmt.Errorf("projection down")).Times(1)
	mockRegistry.EXPECT().Broadcast(gomock.Any(), evt, "").Times(1)

	fanout := NewEventFanout(log, mockRegistry, nil,
		[]contract.EventSink{failing}, 10*time.Second)
	fanout.Fanout(context.Background(), evt)
}

func TestEventFanout_Sink_Timeout(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	stalled := mocks.NewMockEventSink(ctrl)
	evt := event.SessionCompleted{ID: "s1"}

	sinkTimeout := 20 * time.Millisecond
	stalled.EXPECT().Consume(gomock.Any(), evt).
		DoAndReturn(func(ctx context.Context, _ event.DomainEvent) error {
			<-ctx.Done()     // Waiting for timeout to trigger cancellation
			return ctx.Err() // Sending back "context deadline exceeded"
		}).
		Times(1)
	mockRegistry.EXPECT().Broadcast(gomock.Any(), evt, "").Times(1)

	fanout := NewEventFanout(log, mockRegistry, nil,
		[]contract.EventSink{stalled}, sinkTimeout)

	start := time.Now()
	fanout.Fanout(context.Background(), evt)
	req.Less(time.Since(start), time.Second)
}

func TestEventFanout_Run_Drains_The_Channel(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	domainEvents := make(chan event.DomainEvent, 2)

	done := make(chan struct{})
	count := 0
	mockRegistry.EXPECT().Broadcast(gomock.Any(), gomock.Any(), "").
		Do(func(context.Context, event.DomainEvent, string) {
			count++
			if count == 2 {
				close(done)
			}
		}).
		Times(2)

	fanout := NewEventFanout(log, mockRegistry, domainEvents, nil, 10*time.Second)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go func() { _ = fanout.Run(ctx) }()

	domainEvents <- event.RoundAdvanced{ID: "s1", Round: 2}
	domainEvents <- event.RoundAdvanced{ID: "s1", Round: 3}

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Events were not drained in time")
	}
}

func TestEventFanout_Run_Stops_On_Closed_Channel(t *testing.T) {
	req := require.New(t)
	log := slog.Default()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegistry := mocks.NewMockIRegistry(ctrl)
	domainEvents := make(chan event.DomainEvent)
	close(domainEvents)

	fanout := NewEventFanout(log, mockRegistry, domainEvents, nil, 10*time.Second)

	done := make(chan struct{})
	go func() {
		req.NoError(fanout.Run(context.Background()))
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		req.Fail("Run should return once the channel is closed")
	}
}
