package services

import (
	"context"
	"fmt"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"ideation-lab/errors"
	"ideation-lab/repositories"
	"ideation-lab/runtime"
	"ideation-lab/search"
	"ideation-lab/substitute"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/blugelabs/bluge"
	"github.com/google/uuid"
	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

type memoryRepository struct {
	mu       sync.Mutex
	sessions map[domain.SessionID]*domain.Session
	ideas    []repositories.IdeaRecord
}

func newMemoryRepository() *memoryRepository {
	return &memoryRepository{sessions: make(map[domain.SessionID]*domain.Session)}
}

func (r *memoryRepository) StoreSession(session *domain.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[session.ID] = session
	return nil
}

func (r *memoryRepository) GetSession(id domain.SessionID) (*domain.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	session, ok := r.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}
	return session, nil
}

func (r *memoryRepository) StoreIdeas(record repositories.IdeaRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ideas = append(r.ideas, record)
	return nil
}

func (r *memoryRepository) ListIdeas(domain.SessionID) ([]repositories.IdeaRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]repositories.IdeaRecord(nil), r.ideas...), nil
}

type nullSink struct{}

func (nullSink) Consume(context.Context, event.DomainEvent) error { return nil }

func newService(t *testing.T) *FacilitationService {
	t.Helper()
	log := logs.GetLoggerFromLevel(slog.LevelError)

	writer, err := bluge.OpenWriter(bluge.InMemoryOnlyConfig())
	require.NoError(t, err)
	t.Cleanup(func() { _ = writer.Close() })

	registry := runtime.NewRegistry(log, time.Second)
	generator := substitute.NewResilientGenerator(nil, time.Second, log)
	engine := runtime.NewRotationEngine(log, newMemoryRepository(), generator, registry, nil)
	orchestrator := runtime.NewOrchestrator(log, nil, registry, engine, 256, time.Second, time.Second)
	return NewFacilitationService(orchestrator, search.NewIdeaIndex(writer, log))
}

func TestFacilitationService_Single_Seat_Lifecycle(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service := newService(t)
	sessionID := domain.SessionID(uuid.NewString())

	// Given a connected solo participant
	service.JoinSession(sessionID, "alice", nullSink{})
	req.NoError(service.StartSession(ctx, domain.StartSessionCommand{
		ID:           sessionID,
		Participants: []string{"alice"},
	}))

	status, err := service.SessionStatus(ctx, sessionID)
	req.NoError(err)
	req.Equal(domain.StateInProgress, status.State)
	req.Equal(1, status.Round)
	req.Equal(1, status.Seats)

	// When the participant writes all six rounds on the single sheet
	for round := 1; round <= domain.MaxRounds; round++ {
		status, err = service.SessionStatus(ctx, sessionID)
		req.NoError(err)
		err = service.SubmitIdeas(ctx, domain.SubmitIdeasCommand{
			ID:            sessionID,
			Sheet:         status.Sheets[0].ID,
			SubmitterSeat: 0,
			Ideas: []string{
				fmt.Sprintf("idea A round %d", round),
				fmt.Sprintf("idea B round %d", round),
				fmt.Sprintf("idea C round %d", round),
			},
		})
		req.NoError(err)
	}

	// Then the session completes with one record per round
	status, err = service.SessionStatus(ctx, sessionID)
	req.NoError(err)
	req.Equal(domain.StateComplete, status.State)

	records, err := service.ListIdeas(ctx, sessionID)
	req.NoError(err)
	req.Len(records, domain.MaxRounds)
}

func TestFacilitationService_Detached_Seat_Rounds_Are_Backfilled(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service := newService(t)
	sessionID := domain.SessionID(uuid.NewString())

	// Given two seats of which only alice ever attaches
	service.JoinSession(sessionID, "alice", nullSink{})
	req.NoError(service.StartSession(ctx, domain.StartSessionCommand{
		ID:           sessionID,
		Participants: []string{"alice", "bob"},
	}))

	// When alice writes the sheet she holds in every round
	for round := 1; round <= domain.MaxRounds; round++ {
		status, err := service.SessionStatus(ctx, sessionID)
		req.NoError(err)
		var held uuid.UUID
		for _, sheet := range status.Sheets {
			if sheet.Holder == 0 {
				held = sheet.ID
			}
		}
		err = service.SubmitIdeas(ctx, domain.SubmitIdeasCommand{
			ID:            sessionID,
			Sheet:         held,
			SubmitterSeat: 0,
			Ideas: []string{
				fmt.Sprintf("alice A round %d", round),
				fmt.Sprintf("alice B round %d", round),
				fmt.Sprintf("alice C round %d", round),
			},
		})
		req.NoError(err)
	}

	// Then bob's rounds were generated and the session completed
	status, err := service.SessionStatus(ctx, sessionID)
	req.NoError(err)
	req.Equal(domain.StateComplete, status.State)

	records, err := service.ListIdeas(ctx, sessionID)
	req.NoError(err)
	req.Len(records, 2*domain.MaxRounds)
	generated := 0
	for _, record := range records {
		if record.Generated {
			generated++
		}
	}
	req.Equal(domain.MaxRounds, generated)
}

func TestFacilitationService_Rejections_Keep_Typed_Errors(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service := newService(t)
	sessionID := domain.SessionID(uuid.NewString())

	// Starting without participants is a state error
	err := service.StartSession(ctx, domain.StartSessionCommand{ID: sessionID})
	req.ErrorIs(err, errors.ErrInvalidState)

	service.JoinSession(sessionID, "alice", nullSink{})
	req.NoError(service.StartSession(ctx, domain.StartSessionCommand{
		ID:           sessionID,
		Participants: []string{"alice"},
	}))
	status, err := service.SessionStatus(ctx, sessionID)
	req.NoError(err)

	// A short triple is a validation error
	err = service.SubmitIdeas(ctx, domain.SubmitIdeasCommand{
		ID:            sessionID,
		Sheet:         status.Sheets[0].ID,
		SubmitterSeat: 0,
		Ideas:         []string{"only one"},
	})
	req.ErrorIs(err, errors.ErrValidation)

	// Skipping a started session is a state error
	err = service.SkipSession(ctx, domain.SkipSessionCommand{ID: sessionID})
	req.ErrorIs(err, errors.ErrInvalidState)
}

func TestFacilitationService_SearchIdeas_Scopes_By_Session(t *testing.T) {
	req := require.New(t)
	ctx := context.Background()
	service := newService(t)

	req.NoError(service.index.IndexTriple("retro", 1, 0,
		[]string{"improve onboarding flow", "shorter standup", "pair fridays"}))
	req.NoError(service.index.IndexTriple("other", 1, 0,
		[]string{"onboarding swag", "new logo", "team offsite"}))

	hits, err := service.SearchIdeas(ctx, "retro", "onboarding")
	req.NoError(err)
	req.Len(hits, 1)
	req.Equal("improve onboarding flow", hits[0].Idea)
	req.Equal("retro", hits[0].SessionID)
}
