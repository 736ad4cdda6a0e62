// Package search maintains a full-text index over submitted ideas so
// a group can search its accumulated material during consolidation.
package search

import (
	"context"
	"fmt"
	"ideation-lab/domain"
	"log/slog"
	"strconv"

	"github.com/blugelabs/bluge"
)

// IdeaIndex wraps a bluge writer. One document per idea string, keyed
// by (session, round, seat, position) so re-indexing is idempotent.
type IdeaIndex struct {
	writer *bluge.Writer
	log    *slog.Logger
}

func NewIdeaIndex(writer *bluge.Writer, log *slog.Logger) *IdeaIndex {
	return &IdeaIndex{writer: writer, log: log}
}

// IndexTriple adds (or replaces) the three documents of one triple.
func (x *IdeaIndex) IndexTriple(sessionID domain.SessionID, round, seat int, ideas []string) error {
	for i, idea := range ideas {
		docID := fmt.Sprintf("%s:%d:%d:%d", sessionID, round, seat, i)
		doc := bluge.NewDocument(docID).
			AddField(bluge.NewTextField("idea", idea).StoreValue()).
			AddField(bluge.NewKeywordField("session_id", string(sessionID)).StoreValue()).
			AddField(bluge.NewKeywordField("seat", strconv.Itoa(seat)).StoreValue()).
			AddField(bluge.NewNumericField("round", float64(round)))
		if err := x.writer.Update(doc.ID(), doc); err != nil {
			return fmt.Errorf("indexing idea %s: %w", docID, err)
		}
	}
	return nil
}

// Hit is one idea matching a search.
type Hit struct {
	SessionID string
	Seat      string
	Idea      string
	Score     float64
}

// Search runs a match query over one session's ideas. An optional
// round filter narrows the scan; a zero round means all rounds.
func (x *IdeaIndex) Search(ctx context.Context, sessionID domain.SessionID, query *Query) ([]Hit, error) {
	reader, err := x.writer.Reader()
	if err != nil {
		return nil, fmt.Errorf("opening index reader: %w", err)
	}
	defer func() {
		if err := reader.Close(); err != nil {
			x.log.Error("Error while closing index reader", "err", err)
		}
	}()

	boolean := bluge.NewBooleanQuery().
		AddMust(bluge.NewMatchQuery(query.Terms).SetField("idea")).
		AddMust(bluge.NewTermQuery(string(sessionID)).SetField("session_id"))
	if query.Round > 0 {
		round := float64(query.Round)
		boolean.AddMust(bluge.NewNumericRangeInclusiveQuery(round, round, true, true).SetField("round"))
	}

	request := bluge.NewTopNSearch(query.Limit, boolean)
	iterator, err := reader.Search(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("searching ideas: %w", err)
	}

	var hits []Hit
	for {
		match, err := iterator.Next()
		if err != nil {
			return nil, err
		}
		if match == nil {
			break
		}
		hit := Hit{Score: match.Score}
		err = match.VisitStoredFields(func(field string, value []byte) bool {
			switch field {
			case "idea":
				hit.Idea = string(value)
			case "session_id":
				hit.SessionID = string(value)
			case "seat":
				hit.Seat = string(value)
			}
			return true
		})
		if err != nil {
			return nil, err
		}
		hits = append(hits, hit)
	}
	return hits, nil
}
