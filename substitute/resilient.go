package substitute

import (
	"context"
	"fmt"
	"ideation-lab/contract"
	"ideation-lab/domain"
	"ideation-lab/domain/language"
	"log/slog"
	"time"
)

// Ensure the decorator satisfies the generator contract at compile time.
var _ contract.IIdeaGenerator = (*ResilientGenerator)(nil)

// ResilientGenerator bounds a slow upstream generator with a timeout
// and recovers every failure with deterministic fallback text. The
// rotation engine's per-session lock is therefore never held for an
// unbounded external call, and generation never surfaces an error to
// the command that triggered it.
type ResilientGenerator struct {
	inner    contract.IIdeaGenerator
	fallback FallbackGenerator
	timeout  time.Duration
	log      *slog.Logger
}

func NewResilientGenerator(inner contract.IIdeaGenerator, timeout time.Duration, log *slog.Logger) *ResilientGenerator {
	return &ResilientGenerator{
		inner:    inner,
		fallback: NewFallbackGenerator(),
		timeout:  timeout,
		log:      log,
	}
}

func (g *ResilientGenerator) Generate(ctx context.Context, seat, round int, lang language.Language) ([]string, error) {
	if g.inner == nil {
		return g.fallback.Generate(ctx, seat, round, lang)
	}

	bounded, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	ideas, err := g.inner.Generate(bounded, seat, round, lang)
	if err == nil && len(ideas) != domain.IdeasPerRound {
		err = fmt.Errorf("generator returned %d ideas instead of %d", len(ideas), domain.IdeasPerRound)
	}
	if err != nil {
		g.log.Warn("Substitute generation failed, using fallback",
			"seat", seat,
			"round", round,
			"lang", lang,
			"error", err)
		return g.fallback.Generate(ctx, seat, round, lang)
	}
	return ideas, nil
}
