// Package substitute supplies idea triples for seats that lack a live
// human submission when a round closes.
package substitute

import (
	"context"
	"fmt"
	"ideation-lab/domain"
	"ideation-lab/domain/language"
)

// FallbackGenerator produces deterministic placeholder text
// parameterized by seat, round, and language. It never fails, which
// guarantees every sheet round ends up with a full triple.
type FallbackGenerator struct{}

func NewFallbackGenerator() FallbackGenerator {
	return FallbackGenerator{}
}

func (FallbackGenerator) Generate(_ context.Context, seat, round int, lang language.Language) ([]string, error) {
	ideas := make([]string, domain.IdeasPerRound)
	for i := range ideas {
		switch lang {
		case language.German:
			ideas[i] = fmt.Sprintf("Platzhalter-Idee %d von Platz %d in Runde %d", i+1, seat, round)
		default:
			ideas[i] = fmt.Sprintf("Placeholder idea %d from seat %d in round %d", i+1, seat, round)
		}
	}
	return ideas, nil
}
