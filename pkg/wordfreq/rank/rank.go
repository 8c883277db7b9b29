package rank

import (
	"fmt"
	"sort"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
)

// DefaultTopN is the ranking size used when the caller does not ask
// for a specific one.
const DefaultTopN = 10

// Entry is one row of a ranking: a token and its count.
type Entry struct {
	Token string
	Count int
}

// Top returns the n highest-frequency entries of the table, sorted by
// count descending. Ties break on the token in lexicographic order so
// the ranking is reproducible across runs. The result length is
// min(n, distinct tokens).
//
// n <= 0 is an error wrapping internalerr.ErrInvalidInput. An empty
// table yields an empty ranking, not an error.
func Top(t freq.Table, n int) ([]Entry, error) {
	if n <= 0 {
		return nil, fmt.Errorf("top size must be positive, got %d: %w", n, internalerr.ErrInvalidInput)
	}

	entries := make([]Entry, 0, len(t))
	for tok, count := range t {
		entries = append(entries, Entry{Token: tok, Count: count})
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Count != entries[j].Count {
			return entries[i].Count > entries[j].Count
		}
		return entries[i].Token < entries[j].Token
	})

	if n < len(entries) {
		entries = entries[:n]
	}
	return entries, nil
}
