package sink

import (
	"context"
	"ideation-lab/domain/event"
	"ideation-lab/search"
	"log/slog"
)

// IndexSink feeds submitted triples into the full-text idea index.
type IndexSink struct {
	index *search.IdeaIndex
	log   *slog.Logger
}

func NewIndexSink(index *search.IdeaIndex, log *slog.Logger) IndexSink {
	return IndexSink{index: index, log: log}
}

func (s IndexSink) Consume(_ context.Context, e event.DomainEvent) error {
	submitted, ok := e.(event.IdeasSubmitted)
	if !ok {
		return nil
	}
	return s.index.IndexTriple(submitted.Session(), submitted.Round, submitted.SubmitterSeat, submitted.Ideas)
}
