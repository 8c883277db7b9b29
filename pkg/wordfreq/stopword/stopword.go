package stopword

import (
	"strings"
	"unicode/utf8"
)

// DefaultMinTokenLen is the minimum rune length a token must have to
// survive filtering. Single-rune tokens are almost always artifacts of
// normalization (initials, list markers, stray digits).
const DefaultMinTokenLen = 2

// indonesianTerms is the built-in Indonesian stopword list.
var indonesianTerms = []string{
	"dan", "yang", "di", "ke", "dari", "untuk", "pada", "dengan",
	"atau", "ini", "itu", "adalah",
}

// englishTerms is the built-in English stopword list.
var englishTerms = []string{
	"the", "a", "an", "and", "or", "to", "of", "in", "on", "for",
	"with", "is", "are", "was", "were",
}

// Set is an immutable stopword membership set. Terms are lowercased on
// construction so membership checks against already-normalized tokens
// are case-insensitive. Build a Set once at startup and pass it into
// the filter stage explicitly.
type Set map[string]struct{}

// New builds a Set from a list of terms. Duplicates collapse.
func New(terms []string) Set {
	s := make(Set, len(terms))
	for _, term := range terms {
		term = strings.ToLower(strings.TrimSpace(term))
		if term == "" {
			continue
		}
		s[term] = struct{}{}
	}
	return s
}

// Default returns the union of the built-in Indonesian and English
// stopword lists.
func Default() Set {
	return New(append(append([]string{}, indonesianTerms...), englishTerms...))
}

// Contains reports whether word is a member of the set.
func (s Set) Contains(word string) bool {
	_, ok := s[word]
	return ok
}

// Len returns the number of distinct terms in the set.
func (s Set) Len() int {
	return len(s)
}

// Union returns a new Set containing the terms of both sets. Neither
// receiver nor argument is mutated.
func (s Set) Union(other Set) Set {
	out := make(Set, len(s)+len(other))
	for term := range s {
		out[term] = struct{}{}
	}
	for term := range other {
		out[term] = struct{}{}
	}
	return out
}

// Terms returns the set's members as a slice, in no particular order.
func (s Set) Terms() []string {
	out := make([]string, 0, len(s))
	for term := range s {
		out = append(out, term)
	}
	return out
}

// Filter removes stopwords and too-short tokens from a normalized token
// sequence, preserving the relative order of survivors. minLen <= 0
// falls back to DefaultMinTokenLen. Filter never mutates the set and is
// idempotent: filtering an already-filtered sequence is a no-op.
func Filter(tokens []string, set Set, minLen int) []string {
	if minLen <= 0 {
		minLen = DefaultMinTokenLen
	}

	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if utf8.RuneCountInString(tok) < minLen {
			continue
		}
		if set.Contains(tok) {
			continue
		}
		out = append(out, tok)
	}
	return out
}
