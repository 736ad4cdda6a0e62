package test

import (
	"context"
	"fmt"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"ideation-lab/moderation"
	"ideation-lab/repositories"
	"ideation-lab/runtime"
	"ideation-lab/runtime/workers"
	"ideation-lab/search"
	"ideation-lab/services"
	"ideation-lab/sink"
	"ideation-lab/substitute"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

// observer drains a connection sink into a slice, like a transport
// goroutine would drain it into a client stream.
type observer struct {
	mu     sync.Mutex
	events []event.DomainEvent
	done   chan struct{}
}

func observe(connection *sink.ConnectionSink) *observer {
	o := &observer{done: make(chan struct{})}
	go func() {
		for evt := range connection.Events {
			o.mu.Lock()
			o.events = append(o.events, evt)
			o.mu.Unlock()
			if evt.Name() == "session_completed" {
				close(o.done)
				return
			}
		}
	}()
	return o
}

func (o *observer) named(name string) []event.DomainEvent {
	o.mu.Lock()
	defer o.mu.Unlock()
	return lo.Filter(o.events, func(e event.DomainEvent, _ int) bool {
		return e.Name() == name
	})
}

func Test_Scenario_Full_Session(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	// Reduced to 16 Mo for testing (avoid 20 Go of storage)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	supervisor := workers.NewSupervisor(log, 200*time.Millisecond)
	registry := runtime.NewRegistry(log, time.Second)
	repository := repositories.NewSessionRepository(db, log, nil)

	censored, err := moderation.LoadCensoredWords()
	req.NoError(err)
	moderator, err := moderation.NewModerator(censored.Words, '*', log)
	req.NoError(err)

	generator := substitute.NewResilientGenerator(nil, time.Second, log)
	engine := runtime.NewRotationEngine(log, repository, generator, registry, &moderator)
	orchestrator := runtime.NewOrchestrator(log, supervisor, registry, engine,
		1000, time.Second, time.Second)

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	req.NoError(err)
	index := search.NewIdeaIndex(writer, log)
	timeline := sink.NewTimeline()
	orchestrator.Add(timeline, sink.NewIndexSink(index, log))

	service := services.NewFacilitationService(orchestrator, index)

	go func() {
		_ = orchestrator.Start(ctx)
	}()
	t.Cleanup(func() {
		orchestrator.Stop()
		_ = writer.Close()
		_ = db.Close()
	})

	// Given three participants attached to the session
	sessionID := domain.SessionID(uuid.NewString())
	participants := []string{"alice", "bob", "clara"}
	connections := make([]*sink.ConnectionSink, len(participants))
	for i, participantID := range participants {
		connections[i] = sink.NewConnectionSink(log, 100, time.Second)
		service.JoinSession(sessionID, participantID, connections[i])
	}
	watcher := observe(connections[0])

	// When the session runs through all six rounds
	err = service.StartSession(ctx, domain.StartSessionCommand{
		ID:           sessionID,
		Participants: participants,
	})
	req.NoError(err)

	for round := 1; round <= domain.MaxRounds; round++ {
		status, err := service.SessionStatus(ctx, sessionID)
		req.NoError(err)
		req.Equal(round, status.Round)

		for seat := range participants {
			held, ok := lo.Find(status.Sheets, func(s domain.SheetStatus) bool {
				return s.Holder == seat
			})
			req.True(ok)
			err = service.SubmitIdeas(ctx, domain.SubmitIdeasCommand{
				ID:            sessionID,
				Sheet:         held.ID,
				SubmitterSeat: seat,
				Ideas: []string{
					fmt.Sprintf("cheaper onboarding step %d", round),
					fmt.Sprintf("round %d seat %d followup", round, seat),
					fmt.Sprintf("round %d seat %d variant", round, seat),
				},
			})
			req.NoError(err)
		}
	}

	// Then the completion reaches the connected clients
	select {
	case <-watcher.done:
	case <-time.After(5 * time.Second):
		req.Fail("Timeout: completion never reached the client stream")
	}

	// And the full stream arrived: 18 triples, 5 rotations
	req.Len(watcher.named("ideas_submitted"), 18)
	req.Len(watcher.named("round_advanced"), 5)
	req.Len(watcher.named("session_started"), 1)

	// And the durable record holds all 54 ideas
	records, err := service.ListIdeas(ctx, sessionID)
	req.NoError(err)
	req.Len(records, 18)
	total := lo.SumBy(records, func(r repositories.IdeaRecord) int { return len(r.Ideas) })
	req.Equal(54, total)

	// And the timeline projection saw every triple
	req.Len(timeline.Entries(sessionID), 18)

	// And the ideas are searchable during consolidation
	hits, err := service.SearchIdeas(ctx, sessionID, "onboarding")
	req.NoError(err)
	req.NotEmpty(hits)

	// And the session is done
	status, err := service.SessionStatus(ctx, sessionID)
	req.NoError(err)
	req.Equal(domain.StateComplete, status.State)
}

func Test_Scenario_Disconnected_Seat_Is_Backfilled(t *testing.T) {
	ctx := context.Background()
	req := require.New(t)
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).
		WithLoggingLevel(badger.ERROR).
		WithValueLogFileSize(16 << 20))
	req.NoError(err)
	t.Cleanup(func() { _ = db.Close() })

	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	registry := runtime.NewRegistry(log, time.Second)
	repository := repositories.NewSessionRepository(db, log, nil)
	generator := substitute.NewResilientGenerator(nil, time.Second, log)
	engine := runtime.NewRotationEngine(log, repository, generator, registry, nil)

	// Given only two of three participants are attached
	sessionID := domain.SessionID(uuid.NewString())
	aliceSink := sink.NewConnectionSink(log, 100, time.Second)
	bobSink := sink.NewConnectionSink(log, 100, time.Second)
	registry.Subscribe(sessionID, "alice", aliceSink)
	registry.Subscribe(sessionID, "bob", bobSink)

	_, err = engine.Start(ctx, domain.StartSessionCommand{
		ID:           sessionID,
		Participants: []string{"alice", "bob", "clara"},
	})
	req.NoError(err)

	// When both attached humans submit their round 1 triple
	for seat := 0; seat < 2; seat++ {
		status, err := engine.Status(ctx, sessionID)
		req.NoError(err)
		held, ok := lo.Find(status.Sheets, func(s domain.SheetStatus) bool {
			return s.Holder == seat
		})
		req.True(ok)
		_, err = engine.SubmitIdeas(ctx, domain.SubmitIdeasCommand{
			ID:            sessionID,
			Sheet:         held.ID,
			SubmitterSeat: seat,
			Ideas:         []string{"one", "two", "three"},
		})
		req.NoError(err)
	}

	// Then clara's sheet was backfilled and the round advanced
	status, err := engine.Status(ctx, sessionID)
	req.NoError(err)
	req.Equal(2, status.Round)

	records, err := engine.ListIdeas(ctx, sessionID)
	req.NoError(err)
	generated := lo.Filter(records, func(r repositories.IdeaRecord, _ int) bool {
		return r.Generated
	})
	req.Len(generated, 1)
	req.Equal(2, generated[0].Seat)
}
