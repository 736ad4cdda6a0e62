package substitute

import (
	"context"
	"fmt"
	"ideation-lab/domain/language"
	"log/slog"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestFallbackGenerator_LanguageMarkers(t *testing.T) {
	req := require.New(t)
	gen := NewFallbackGenerator()

	// When German fallback text is generated
	german, err := gen.Generate(context.Background(), 2, 4, language.German)
	req.NoError(err)
	req.Len(german, 3)

	// Then every idea carries the German marker, never the English one
	for _, idea := range german {
		req.Contains(idea, "Platzhalter-Idee")
		req.NotContains(idea, "Placeholder idea")
		req.Contains(idea, "Platz 2")
		req.Contains(idea, "Runde 4")
	}

	// And the English variant carries only the English marker
	english, err := gen.Generate(context.Background(), 0, 1, language.English)
	req.NoError(err)
	for _, idea := range english {
		req.Contains(idea, "Placeholder idea")
		req.NotContains(idea, "Platzhalter")
	}
}

func TestFallbackGenerator_Deterministic(t *testing.T) {
	req := require.New(t)
	gen := NewFallbackGenerator()

	first, err := gen.Generate(context.Background(), 3, 5, language.English)
	req.NoError(err)
	second, err := gen.Generate(context.Background(), 3, 5, language.English)
	req.NoError(err)

	req.Equal(first, second)
}

type failingGenerator struct{}

func (failingGenerator) Generate(context.Context, int, int, language.Language) ([]string, error) {
	return nil, fmt.Errorf("upstream generation unavailable")
}

type hangingGenerator struct{}

func (hangingGenerator) Generate(ctx context.Context, _, _ int, _ language.Language) ([]string, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

type shortGenerator struct{}

func (shortGenerator) Generate(context.Context, int, int, language.Language) ([]string, error) {
	return []string{"only one"}, nil
}

func TestResilientGenerator_FallsBackOnError(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	gen := NewResilientGenerator(failingGenerator{}, time.Second, log)

	ideas, err := gen.Generate(context.Background(), 1, 2, language.German)

	// Then the failure is absorbed and the fallback triple is complete
	req.NoError(err)
	req.Len(ideas, 3)
	req.Contains(ideas[0], "Platzhalter-Idee")
}

func TestResilientGenerator_FallsBackOnTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	gen := NewResilientGenerator(hangingGenerator{}, 20*time.Millisecond, log)

	start := time.Now()
	ideas, err := gen.Generate(context.Background(), 0, 1, language.English)

	req.NoError(err)
	req.Len(ideas, 3)
	req.Less(time.Since(start), time.Second)
}

func TestResilientGenerator_FallsBackOnShortTriple(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	gen := NewResilientGenerator(shortGenerator{}, time.Second, log)

	ideas, err := gen.Generate(context.Background(), 0, 1, language.English)

	req.NoError(err)
	req.Len(ideas, 3)
}

func TestResilientGenerator_NilInnerUsesFallback(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	gen := NewResilientGenerator(nil, time.Second, log)

	ideas, err := gen.Generate(context.Background(), 4, 6, language.English)

	req.NoError(err)
	req.Len(ideas, 3)
}
