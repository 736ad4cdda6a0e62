// Package language normalizes the two-letter session language codes
// used to pick substitute-contributor fallback text.
package language

import "github.com/abadojack/whatlanggo"

type Language string

const (
	English Language = "en"
	German  Language = "de"
)

// Normalize maps a configured code onto a supported language. Unknown
// or empty codes fall back to English.
func Normalize(code string) Language {
	switch code {
	case string(German):
		return German
	default:
		return English
	}
}

// FromSamples infers a language from previously written idea text.
// Used when a session carries no configured language, so generated
// triples match what the humans are writing. Defaults to English when
// the samples are inconclusive.
func FromSamples(samples []string) Language {
	german := 0
	detected := 0
	for _, sample := range samples {
		if sample == "" {
			continue
		}
		info := whatlanggo.Detect(sample)
		if !info.IsReliable() {
			continue
		}
		detected++
		if info.Lang.Iso6391() == string(German) {
			german++
		}
	}
	if detected > 0 && german*2 > detected {
		return German
	}
	return English
}
