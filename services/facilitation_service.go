//go:generate go run go.uber.org/mock/mockgen -source=facilitation_service.go -destination=../mocks/mock_facilitation_service.go -package=mocks
package services

import (
	"context"
	"ideation-lab/contract"
	"ideation-lab/domain"
	"ideation-lab/repositories"
	"ideation-lab/runtime"
	"ideation-lab/search"
)

// IFacilitationService is the command surface consumed by the thin
// transport layer. Outcomes are signaled purely via typed errors; the
// transport maps them onto its own response codes.
type IFacilitationService interface {
	StartSession(ctx context.Context, cmd domain.StartSessionCommand) error
	SubmitIdeas(ctx context.Context, cmd domain.SubmitIdeasCommand) error
	BulkSubmitIdeas(ctx context.Context, cmd domain.BulkSubmitCommand) error
	SkipSession(ctx context.Context, cmd domain.SkipSessionCommand) error
	SessionStatus(ctx context.Context, id domain.SessionID) (domain.SessionStatus, error)
	ListIdeas(ctx context.Context, id domain.SessionID) ([]repositories.IdeaRecord, error)
	SearchIdeas(ctx context.Context, id domain.SessionID, rawQuery string) ([]search.Hit, error)
	JoinSession(sessionID domain.SessionID, participantID string, sink contract.EventSink)
	LeaveSession(sessionID domain.SessionID, participantID string, sink contract.EventSink)
}

type FacilitationService struct {
	orchestrator *runtime.Orchestrator
	index        *search.IdeaIndex
}

func NewFacilitationService(o *runtime.Orchestrator, index *search.IdeaIndex) *FacilitationService {
	return &FacilitationService{orchestrator: o, index: index}
}

func (s *FacilitationService) StartSession(ctx context.Context, cmd domain.StartSessionCommand) error {
	return s.orchestrator.StartSession(ctx, cmd)
}

func (s *FacilitationService) SubmitIdeas(ctx context.Context, cmd domain.SubmitIdeasCommand) error {
	return s.orchestrator.SubmitIdeas(ctx, cmd)
}

func (s *FacilitationService) BulkSubmitIdeas(ctx context.Context, cmd domain.BulkSubmitCommand) error {
	return s.orchestrator.BulkSubmitIdeas(ctx, cmd)
}

func (s *FacilitationService) SkipSession(ctx context.Context, cmd domain.SkipSessionCommand) error {
	return s.orchestrator.SkipSession(ctx, cmd)
}

func (s *FacilitationService) SessionStatus(ctx context.Context, id domain.SessionID) (domain.SessionStatus, error) {
	return s.orchestrator.SessionStatus(ctx, id)
}

func (s *FacilitationService) ListIdeas(ctx context.Context, id domain.SessionID) ([]repositories.IdeaRecord, error) {
	return s.orchestrator.ListIdeas(ctx, id)
}

func (s *FacilitationService) SearchIdeas(ctx context.Context, id domain.SessionID, rawQuery string) ([]search.Hit, error) {
	return s.index.Search(ctx, id, search.NewQuery(rawQuery))
}

func (s *FacilitationService) JoinSession(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	s.orchestrator.RegisterParticipant(sessionID, participantID, sink)
}

func (s *FacilitationService) LeaveSession(sessionID domain.SessionID, participantID string, sink contract.EventSink) {
	s.orchestrator.UnregisterParticipant(sessionID, participantID, sink)
}
