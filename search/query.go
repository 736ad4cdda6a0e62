package search

import (
	"strconv"
	"strings"
)

// Query represents the structured parameters for an idea search. It
// decouples the raw client input from the index engine requirements.
type Query struct {
	RawInput string // The original search string from the client
	Terms    string // The actual text to match against idea content
	Round    int    // Optional round filter, 0 means all rounds
	Limit    int    // Pagination: number of results
}

// NewQuery parses a raw string, extracting command-line style flags.
// Example: brainstorm cost --round 3 --limit 5
func NewQuery(input string) *Query {
	query := &Query{
		RawInput: input,
		Limit:    10, // Default limit
	}

	parts := strings.Fields(input)
	var textTerms []string

	for i := 0; i < len(parts); i++ {
		part := parts[i]

		// Handle flags like --round 3 or --limit 5
		if strings.HasPrefix(part, "--") && i+1 < len(parts) {
			key := strings.TrimPrefix(part, "--")
			val := parts[i+1]

			if n, err := strconv.Atoi(val); err == nil {
				switch key {
				case "round":
					query.Round = n
				case "limit":
					query.Limit = n
				}
			}
			i++ // Skip the value part in next iteration
			continue
		}

		textTerms = append(textTerms, part)
	}

	query.Terms = strings.Join(textTerms, " ")
	return query
}
