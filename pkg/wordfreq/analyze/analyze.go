package analyze

import (
	"fmt"
	"unicode/utf8"

	"github.com/cognicore/wordfreq/pkg/wordfreq/freq"
	"github.com/cognicore/wordfreq/pkg/wordfreq/internalerr"
	"github.com/cognicore/wordfreq/pkg/wordfreq/rank"
	"github.com/cognicore/wordfreq/pkg/wordfreq/stopword"
	"github.com/cognicore/wordfreq/pkg/wordfreq/tokenize"
)

// Analyzer runs the full analysis pipeline:
// text → normalization → stopword filtering → counting → ranking.
// Collaborators are injected at construction; the analyzer itself
// holds no per-run state and may be reused across inputs.
type Analyzer struct {
	stops       stopword.Set
	minTokenLen int
	topN        int
}

// New creates an analyzer with the given stopword set. minTokenLen 0
// falls back to stopword.DefaultMinTokenLen, negative values are
// rejected; topN must be positive.
func New(stops stopword.Set, minTokenLen, topN int) (*Analyzer, error) {
	if topN <= 0 {
		return nil, fmt.Errorf("top size must be positive, got %d: %w", topN, internalerr.ErrInvalidInput)
	}
	if minTokenLen < 0 {
		return nil, fmt.Errorf("minimum token length must not be negative, got %d: %w", minTokenLen, internalerr.ErrInvalidInput)
	}
	if minTokenLen == 0 {
		minTokenLen = stopword.DefaultMinTokenLen
	}
	return &Analyzer{
		stops:       stops,
		minTokenLen: minTokenLen,
		topN:        topN,
	}, nil
}

// Result aggregates one run's output. It is built once per Analyze
// call and never mutated afterwards; the report writer, the cloud
// renderer and the terminal summary all read from the same Result.
type Result struct {
	CharCount  int          // runes in the raw input, spaces included
	TokenCount int          // tokens surviving the stopword filter
	TopN       int          // requested ranking size
	Top        []rank.Entry // ranking, length min(TopN, distinct)
	Freq       freq.Table   // full frequency table
}

// Empty reports whether the input reduced to zero tokens. Empty input
// is not an error: the report states "no data" and visualization is
// skipped.
func (r *Result) Empty() bool {
	return r.TokenCount == 0
}

// Analyze runs the pipeline over one input text.
func (a *Analyzer) Analyze(text string) (*Result, error) {
	tokens := tokenize.Normalize(text)
	filtered := stopword.Filter(tokens, a.stops, a.minTokenLen)

	table := freq.Count(filtered)
	top, err := rank.Top(table, a.topN)
	if err != nil {
		return nil, err
	}

	return &Result{
		CharCount:  utf8.RuneCountInString(text),
		TokenCount: len(filtered),
		TopN:       a.topN,
		Top:        top,
		Freq:       table,
	}, nil
}
