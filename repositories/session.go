//go:generate go run go.uber.org/mock/mockgen -source=session.go -destination=../mocks/mock_session_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"ideation-lab/domain"
	"ideation-lab/errors"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// ISessionRepository is the storage collaborator of the rotation
// engine. It is assumed durable and strongly consistent per session;
// engine state is a cache rebuilt from here on restart.
type ISessionRepository interface {
	StoreSession(session *domain.Session) error
	GetSession(id domain.SessionID) (*domain.Session, error)
	StoreIdeas(record IdeaRecord) error
	ListIdeas(sessionID domain.SessionID) ([]IdeaRecord, error)
}

// IdeaRecord is one persisted idea triple, written once per
// (sheet, round) pair and never updated.
type IdeaRecord struct {
	ID        uuid.UUID
	Session   domain.SessionID
	Sheet     uuid.UUID
	Round     int
	Seat      int
	Ideas     []string
	Generated bool
	Manual    bool
	At        time.Time
}

type SessionRepository struct {
	db         *badger.DB
	log        *slog.Logger
	limitIdeas *int
}

func NewSessionRepository(db *badger.DB, log *slog.Logger, limitIdeas *int) SessionRepository {
	return SessionRepository{db: db, log: log, limitIdeas: limitIdeas}
}

// StoreSession persists the full session snapshot, sheets included.
// The snapshot replaces the previous one; ideas keep their own keys so
// they are listable without deserializing the snapshot.
func (r SessionRepository) StoreSession(session *domain.Session) error {
	key := fmt.Sprintf("session:%s", session.ID)
	bytes, err := json.Marshal(session)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

func (r SessionRepository) GetSession(id domain.SessionID) (*domain.Session, error) {
	key := fmt.Sprintf("session:%s", id)
	var session domain.Session
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(value []byte) error {
			return json.Unmarshal(value, &session)
		})
	})
	if stderrors.Is(err, badger.ErrKeyNotFound) {
		return nil, fmt.Errorf("%w: %s", errors.ErrSessionNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

// StoreIdeas persists one idea triple. The key is formatted as
// "idea:{session}:{round_padded}:{seat_padded}:{uuid}" to:
//  1. Ensure round/seat ordering via zero padding (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector when
//     two triples land for the same round and seat (manual entries).
func (r SessionRepository) StoreIdeas(record IdeaRecord) error {
	key := fmt.Sprintf("idea:%s:%02d:%02d:%s",
		record.Session,
		record.Round,
		record.Seat,
		record.ID,
	)
	bytes, err := json.Marshal(record)
	if err != nil {
		return err
	}
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), bytes)
	})
}

// ListIdeas retrieves every idea triple of a session using a prefix
// scan. Thanks to the padded round and seat in the key, records come
// back ordered by round, then seat. Collection stops once the
// configured limit is reached.
func (r SessionRepository) ListIdeas(sessionID domain.SessionID) ([]IdeaRecord, error) {
	var records []IdeaRecord
	err := r.db.View(func(txn *badger.Txn) error {
		prefix := []byte(fmt.Sprintf("idea:%s:", sessionID))
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if r.limitIdeas != nil && len(records) == *r.limitIdeas {
				r.log.Debug(fmt.Sprintf("Maximum of %d idea records reached", *r.limitIdeas))
				break
			}
			var record IdeaRecord
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &record)
			})
			if err != nil {
				return err
			}
			records = append(records, record)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return records, nil
}
