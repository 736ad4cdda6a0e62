// Package runtime coordinates the rotation engine, the connection
// registry, and the workers that bridge them. It orchestrates the
// system without containing transport or UI logic.
package runtime

import (
	"context"
	stderrors "errors"
	"fmt"
	"ideation-lab/contract"
	"ideation-lab/domain"
	"ideation-lab/domain/event"
	"ideation-lab/domain/language"
	"ideation-lab/errors"
	"ideation-lab/moderation"
	"ideation-lab/repositories"
	"ideation-lab/substitute"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// RotationEngine owns the per-session ideation state and enforces the
// round/rotation state machine. Commands for one session behave as if
// serialized: each session carries its own lock, so two sessions never
// contend while two commands on the same session always observe a
// consistent snapshot.
//
// Engine state is a cache. Every mutation is persisted to the storage
// collaborator, and a cache miss is resolved by rehydrating from
// storage, which is how reconnecting participants recover state after
// a process restart.
type RotationEngine struct {
	mu        sync.RWMutex
	sessions  map[domain.SessionID]*sessionHandle
	repo      repositories.ISessionRepository
	generator contract.IIdeaGenerator
	presence  contract.IPresence
	moderator *moderation.Moderator
	validate  *validator.Validate
	log       *slog.Logger
}

// substituteFallback is the last-resort triple source when even the
// injected generator misbehaves.
var substituteFallback = substitute.NewFallbackGenerator()

type sessionHandle struct {
	mu      sync.Mutex
	session *domain.Session
}

func NewRotationEngine(
	log *slog.Logger,
	repo repositories.ISessionRepository,
	generator contract.IIdeaGenerator,
	presence contract.IPresence,
	moderator *moderation.Moderator,
) *RotationEngine {
	return &RotationEngine{
		sessions:  make(map[domain.SessionID]*sessionHandle),
		repo:      repo,
		generator: generator,
		presence:  presence,
		moderator: moderator,
		validate:  validator.New(),
		log:       log,
	}
}

// Start creates the session with one sheet per seat, each starting in
// the hands of its originating seat, and opens round 1.
func (e *RotationEngine) Start(ctx context.Context, cmd domain.StartSessionCommand) ([]event.DomainEvent, error) {
	if len(cmd.Participants) < domain.MinSeats || len(cmd.Participants) > domain.MaxSeats {
		return nil, fmt.Errorf("%w: session takes %d to %d seats, got %d",
			errors.ErrInvalidState, domain.MinSeats, domain.MaxSeats, len(cmd.Participants))
	}
	if err := e.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[cmd.ID]; ok {
		return nil, fmt.Errorf("%w: session %s already started", errors.ErrInvalidState, cmd.ID)
	}
	if existing, err := e.repo.GetSession(cmd.ID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: session %s already exists in state %s",
			errors.ErrInvalidState, cmd.ID, existing.State)
	}

	seats := make([]domain.Seat, len(cmd.Participants))
	for i, participantID := range cmd.Participants {
		seats[i] = domain.Seat{Index: i, ParticipantID: participantID}
	}
	session := domain.NewSession(cmd.ID, seats, cmd.Language)

	events := []event.DomainEvent{event.SessionStarted{
		ID:       session.ID,
		Seats:    session.Seats,
		Language: session.Language,
		At:       time.Now().UTC(),
	}}

	// A session whose seats never see a connected human has no
	// submission to trigger a round close, so rounds are evaluated
	// here until an attended seat blocks or the rotation finishes.
	var records []repositories.IdeaRecord
	for session.State == domain.StateInProgress {
		closing, backfilled := e.closeRoundIfReady(ctx, session)
		if !closing {
			break
		}
		for _, fill := range backfilled {
			events = append(events, e.submittedEvent(session.ID, fill.sheet, fill.entry))
			records = append(records, e.ideaRecord(session.ID, fill.sheet, fill.entry))
		}
		if completed := session.AdvanceRound(); completed {
			events = append(events, event.SessionCompleted{ID: session.ID, At: time.Now().UTC()})
		} else {
			events = append(events, event.RoundAdvanced{ID: session.ID, Round: session.Round, At: time.Now().UTC()})
		}
	}

	if err := e.persist(session, records); err != nil {
		return nil, err
	}
	e.sessions[cmd.ID] = &sessionHandle{session: session}
	return events, nil
}

// SubmitIdeas appends a round's triple to a sheet. When the triple
// closes the round, every unattended seat is backfilled by the
// substitute contributor, every sheet rotates to its next holder, and
// the round counter advances. Rejected commands mutate nothing.
func (e *RotationEngine) SubmitIdeas(ctx context.Context, cmd domain.SubmitIdeasCommand) ([]event.DomainEvent, error) {
	if err := e.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	for _, idea := range cmd.Ideas {
		if strings.TrimSpace(idea) == "" {
			return nil, fmt.Errorf("%w: ideas must be non-empty", errors.ErrValidation)
		}
	}

	handle, err := e.handle(cmd.ID)
	if err != nil {
		return nil, err
	}
	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.session
	switch session.State {
	case domain.StateInProgress:
	case domain.StateComplete:
		return nil, fmt.Errorf("%w: session %s is complete after round %d",
			errors.ErrOutOfRange, session.ID, domain.MaxRounds)
	default:
		return nil, fmt.Errorf("%w: session %s is %s", errors.ErrInvalidState, session.ID, session.State)
	}
	if session.Round > domain.MaxRounds {
		return nil, fmt.Errorf("%w: round %d exceeds %d", errors.ErrOutOfRange, session.Round, domain.MaxRounds)
	}

	sheet := session.SheetByID(cmd.Sheet)
	if sheet == nil {
		return nil, fmt.Errorf("%w: unknown sheet %s in session %s", errors.ErrValidation, cmd.Sheet, session.ID)
	}
	if sheet.Holder != cmd.SubmitterSeat {
		return nil, fmt.Errorf("%w: sheet %s is held by seat %d, not seat %d",
			errors.ErrWrongHolder, sheet.ID, sheet.Holder, cmd.SubmitterSeat)
	}
	if sheet.HasRound(session.Round) {
		return nil, fmt.Errorf("%w: sheet %s already holds a triple for round %d",
			errors.ErrAlreadySubmitted, sheet.ID, session.Round)
	}

	// Mutations run on a working copy; the cache only adopts it once
	// everything is durable, so a storage failure leaves no trace and
	// the command can simply be retried.
	working := session.Clone()
	sheet = working.SheetByID(cmd.Sheet)

	entry := domain.RoundEntry{
		Round:         working.Round,
		SubmitterSeat: cmd.SubmitterSeat,
		Ideas:         e.censor(cmd.Ideas),
		At:            time.Now().UTC(),
	}
	sheet.Append(entry)

	events := []event.DomainEvent{e.submittedEvent(working.ID, sheet.ID, entry)}
	records := []repositories.IdeaRecord{e.ideaRecord(working.ID, sheet.ID, entry)}

	closing, backfilled := e.closeRoundIfReady(ctx, working)
	for _, fill := range backfilled {
		events = append(events, e.submittedEvent(working.ID, fill.sheet, fill.entry))
		records = append(records, e.ideaRecord(working.ID, fill.sheet, fill.entry))
	}
	if closing {
		if completed := working.AdvanceRound(); completed {
			events = append(events, event.SessionCompleted{ID: working.ID, At: time.Now().UTC()})
		} else {
			events = append(events, event.RoundAdvanced{ID: working.ID, Round: working.Round, At: time.Now().UTC()})
		}
	}

	if err := e.persist(working, records); err != nil {
		return nil, err
	}
	handle.session = working
	return events, nil
}

// Skip records a group opting out of structured brainwriting. Only
// legal before the session has started; it transitions straight to
// SKIPPED and produces no ideas.
func (e *RotationEngine) Skip(_ context.Context, cmd domain.SkipSessionCommand) ([]event.DomainEvent, error) {
	if err := e.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.sessions[cmd.ID]; ok {
		return nil, fmt.Errorf("%w: session %s already started", errors.ErrInvalidState, cmd.ID)
	}
	if existing, err := e.repo.GetSession(cmd.ID); err == nil && existing != nil {
		return nil, fmt.Errorf("%w: session %s already exists in state %s",
			errors.ErrInvalidState, cmd.ID, existing.State)
	}

	session := domain.NewSkippedSession(cmd.ID)
	if err := e.repo.StoreSession(session); err != nil {
		return nil, fmt.Errorf("persisting session %s: %w", cmd.ID, err)
	}
	e.sessions[cmd.ID] = &sessionHandle{session: session}
	return nil, nil
}

// BulkSubmit records manually-authored idea lists outside an active
// rotation. Holder matching is bypassed; the triple invariant is not.
func (e *RotationEngine) BulkSubmit(_ context.Context, cmd domain.BulkSubmitCommand) ([]event.DomainEvent, error) {
	if err := e.validate.Struct(cmd); err != nil {
		return nil, fmt.Errorf("%w: %v", errors.ErrValidation, err)
	}
	for _, entry := range cmd.Entries {
		for _, idea := range entry {
			if strings.TrimSpace(idea) == "" {
				return nil, fmt.Errorf("%w: ideas must be non-empty", errors.ErrValidation)
			}
		}
	}
	if cmd.Round < 1 || cmd.Round > domain.MaxRounds {
		return nil, fmt.Errorf("%w: round %d is outside 1..%d", errors.ErrOutOfRange, cmd.Round, domain.MaxRounds)
	}

	handle, err := e.handle(cmd.ID)
	if err != nil {
		return nil, err
	}
	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.session
	if session.State == domain.StateComplete {
		return nil, fmt.Errorf("%w: session %s is complete", errors.ErrInvalidState, session.ID)
	}

	var events []event.DomainEvent
	for i, ideas := range cmd.Entries {
		record := repositories.IdeaRecord{
			ID:      uuid.New(),
			Session: session.ID,
			Round:   cmd.Round,
			Seat:    i,
			Ideas:   e.censor(ideas),
			Manual:  true,
			At:      time.Now().UTC(),
		}
		if err := e.repo.StoreIdeas(record); err != nil {
			return events, fmt.Errorf("persisting manual ideas for session %s: %w", session.ID, err)
		}
		events = append(events, event.IdeasSubmitted{
			ID:            session.ID,
			Sheet:         record.Sheet,
			SubmitterSeat: record.Seat,
			Round:         record.Round,
			Ideas:         record.Ideas,
			At:            record.At,
		})
	}
	return events, nil
}

// Status returns a read-only snapshot. No mutation.
func (e *RotationEngine) Status(_ context.Context, id domain.SessionID) (domain.SessionStatus, error) {
	handle, err := e.handle(id)
	if err != nil {
		return domain.SessionStatus{}, err
	}
	handle.mu.Lock()
	defer handle.mu.Unlock()

	session := handle.session
	status := domain.SessionStatus{
		ID:    session.ID,
		State: session.State,
		Round: session.Round,
		Seats: len(session.Seats),
	}
	for _, sheet := range session.Sheets {
		status.Sheets = append(status.Sheets, domain.SheetStatus{
			ID:              sheet.ID,
			OriginSeat:      sheet.OriginSeat,
			Holder:          sheet.Holder,
			SubmittedRounds: len(sheet.Entries),
		})
	}
	return status, nil
}

// ListIdeas returns every persisted idea triple of a session, ordered
// by round then seat.
func (e *RotationEngine) ListIdeas(_ context.Context, id domain.SessionID) ([]repositories.IdeaRecord, error) {
	return e.repo.ListIdeas(id)
}

// handle resolves the per-session lock, rehydrating from storage on a
// cache miss.
func (e *RotationEngine) handle(id domain.SessionID) (*sessionHandle, error) {
	e.mu.RLock()
	handle, ok := e.sessions[id]
	e.mu.RUnlock()
	if ok {
		return handle, nil
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if handle, ok = e.sessions[id]; ok {
		return handle, nil
	}

	session, err := e.repo.GetSession(id)
	if err != nil {
		if stderrors.Is(err, errors.ErrSessionNotFound) {
			return nil, fmt.Errorf("%w: session %s", errors.ErrInvalidState, id)
		}
		return nil, err
	}
	e.log.Info("Rehydrated session from storage", "session_id", id, "state", session.State, "round", session.Round)
	handle = &sessionHandle{session: session}
	e.sessions[id] = handle
	return handle, nil
}

type backfill struct {
	sheet uuid.UUID
	entry domain.RoundEntry
}

// closeRoundIfReady decides whether the current round can close. The
// round is ready once every sheet whose holder is an attended human
// seat has its triple; the remaining sheets are then backfilled by the
// substitute contributor so no sheet round is ever left with fewer
// than three ideas. Each missed round is backfilled independently.
func (e *RotationEngine) closeRoundIfReady(ctx context.Context, session *domain.Session) (bool, []backfill) {
	var pending []*domain.Sheet
	for _, sheet := range session.Sheets {
		if sheet.HasRound(session.Round) {
			continue
		}
		seat := session.SeatByIndex(sheet.Holder)
		if seat == nil {
			return false, nil
		}
		if !seat.IsSubstitute() && e.isAttended(session.ID, seat.ParticipantID) {
			// A connected human still owes this triple; keep the round open.
			return false, nil
		}
		pending = append(pending, sheet)
	}

	lang := e.sessionLanguage(session)
	var fills []backfill
	for _, sheet := range pending {
		ideas, err := e.generator.Generate(ctx, sheet.Holder, session.Round, lang)
		if err != nil || len(ideas) != domain.IdeasPerRound {
			// The resilient generator already degrades to fallback text;
			// this second net keeps the triple invariant even with a
			// misbehaving custom generator wired in.
			ideas, _ = substituteFallback.Generate(ctx, sheet.Holder, session.Round, lang)
		}
		entry := domain.RoundEntry{
			Round:         session.Round,
			SubmitterSeat: sheet.Holder,
			Ideas:         ideas,
			Generated:     true,
			At:            time.Now().UTC(),
		}
		sheet.Append(entry)
		fills = append(fills, backfill{sheet: sheet.ID, entry: entry})
	}
	return true, fills
}

func (e *RotationEngine) isAttended(sessionID domain.SessionID, participantID string) bool {
	if e.presence == nil {
		return false
	}
	return e.presence.IsConnected(sessionID, participantID)
}

// sessionLanguage resolves the fallback language: the configured code
// when present, otherwise inferred from the human ideas written so far.
func (e *RotationEngine) sessionLanguage(session *domain.Session) language.Language {
	if session.Language != "" {
		return language.Normalize(session.Language)
	}
	var samples []string
	for _, sheet := range session.Sheets {
		for _, entry := range sheet.Entries {
			if entry.Generated {
				continue
			}
			samples = append(samples, entry.Ideas...)
		}
	}
	return language.FromSamples(samples)
}

func (e *RotationEngine) censor(ideas []string) []string {
	if e.moderator == nil {
		out := make([]string, len(ideas))
		copy(out, ideas)
		return out
	}
	return e.moderator.CensorAll(ideas)
}

func (e *RotationEngine) submittedEvent(sessionID domain.SessionID, sheetID uuid.UUID, entry domain.RoundEntry) event.IdeasSubmitted {
	return event.IdeasSubmitted{
		ID:            sessionID,
		Sheet:         sheetID,
		SubmitterSeat: entry.SubmitterSeat,
		Round:         entry.Round,
		Ideas:         entry.Ideas,
		Generated:     entry.Generated,
		At:            entry.At,
	}
}

func (e *RotationEngine) ideaRecord(sessionID domain.SessionID, sheetID uuid.UUID, entry domain.RoundEntry) repositories.IdeaRecord {
	return repositories.IdeaRecord{
		ID:        uuid.New(),
		Session:   sessionID,
		Sheet:     sheetID,
		Round:     entry.Round,
		Seat:      entry.SubmitterSeat,
		Ideas:     entry.Ideas,
		Generated: entry.Generated,
		At:        entry.At,
	}
}

func (e *RotationEngine) persist(session *domain.Session, records []repositories.IdeaRecord) error {
	if err := e.repo.StoreSession(session); err != nil {
		return fmt.Errorf("persisting session %s: %w", session.ID, err)
	}
	for _, record := range records {
		if err := e.repo.StoreIdeas(record); err != nil {
			return fmt.Errorf("persisting ideas for session %s: %w", session.ID, err)
		}
	}
	return nil
}
