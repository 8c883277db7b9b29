package stopword

import (
	"testing"
)

func TestSetBasic(t *testing.T) {
	set := New([]string{"the", "a", "and"})

	if !set.Contains("the") {
		t.Error("'the' should be a stopword")
	}
	if set.Contains("hello") {
		t.Error("'hello' should not be a stopword")
	}
}

func TestSetLowercasesTerms(t *testing.T) {
	set := New([]string{"THE", "A"})

	if !set.Contains("the") {
		t.Error("Membership should be case-insensitive against lowered tokens")
	}
	if !set.Contains("a") {
		t.Error("'a' should be a member")
	}
}

func TestSetDuplicateTerms(t *testing.T) {
	set := New([]string{"the", "the", "a", "the"})

	if set.Len() != 2 {
		t.Errorf("Expected 2 distinct terms, got %d", set.Len())
	}
}

func TestSetIgnoresBlankTerms(t *testing.T) {
	set := New([]string{"the", "", "  ", "a"})

	if set.Len() != 2 {
		t.Errorf("Blank terms should be dropped, got %d members", set.Len())
	}
}

func TestDefaultIsBilingual(t *testing.T) {
	set := Default()

	// Indonesian members
	for _, word := range []string{"dan", "yang", "adalah", "dengan"} {
		if !set.Contains(word) {
			t.Errorf("Default set should contain Indonesian stopword %q", word)
		}
	}

	// English members
	for _, word := range []string{"the", "an", "were", "with"} {
		if !set.Contains(word) {
			t.Errorf("Default set should contain English stopword %q", word)
		}
	}

	if set.Contains("kucing") {
		t.Error("'kucing' should not be a default stopword")
	}
}

func TestUnion(t *testing.T) {
	a := New([]string{"the", "a"})
	b := New([]string{"dan", "the"})

	u := a.Union(b)

	if u.Len() != 3 {
		t.Errorf("Expected union of 3 terms, got %d", u.Len())
	}
	if a.Len() != 2 || b.Len() != 2 {
		t.Error("Union must not mutate its operands")
	}
}

func TestFilterRemovesStopwords(t *testing.T) {
	set := Default()
	tokens := []string{"ini", "adalah", "contoh", "teks"}

	filtered := Filter(tokens, set, DefaultMinTokenLen)

	want := []string{"contoh", "teks"}
	if !equalTokens(filtered, want) {
		t.Errorf("Filter(%v) = %v, want %v", tokens, filtered, want)
	}
}

func TestFilterMinLength(t *testing.T) {
	set := New(nil)
	tokens := []string{"x", "ab", "c", "word"}

	filtered := Filter(tokens, set, 2)

	want := []string{"ab", "word"}
	if !equalTokens(filtered, want) {
		t.Errorf("Filter(%v) = %v, want %v", tokens, filtered, want)
	}
}

func TestFilterMinLengthCountsRunes(t *testing.T) {
	set := New(nil)

	// "é" is one rune, two bytes; must be filtered at minLen 2.
	filtered := Filter([]string{"é", "éé"}, set, 2)

	want := []string{"éé"}
	if !equalTokens(filtered, want) {
		t.Errorf("Rune-length filtering wrong: got %v, want %v", filtered, want)
	}
}

func TestFilterPreservesOrderAndDuplicates(t *testing.T) {
	set := New([]string{"dan"})
	tokens := []string{"kucing", "dan", "ikan", "kucing"}

	filtered := Filter(tokens, set, 2)

	want := []string{"kucing", "ikan", "kucing"}
	if !equalTokens(filtered, want) {
		t.Errorf("Filter(%v) = %v, want %v", tokens, filtered, want)
	}
}

func TestFilterIdempotent(t *testing.T) {
	set := Default()
	tokens := []string{"the", "cat", "sat", "on", "a", "mat"}

	once := Filter(tokens, set, 2)
	twice := Filter(once, set, 2)

	if !equalTokens(once, twice) {
		t.Errorf("Filter is not idempotent: %v vs %v", once, twice)
	}
}

func TestFilterAllStopwords(t *testing.T) {
	set := Default()
	tokens := []string{"the", "a", "an", "dan", "yang"}

	filtered := Filter(tokens, set, 2)

	if len(filtered) != 0 {
		t.Errorf("All-stopword input should filter to empty, got %v", filtered)
	}
}

func TestFilterZeroMinLenUsesDefault(t *testing.T) {
	set := New(nil)

	filtered := Filter([]string{"a", "ab"}, set, 0)

	want := []string{"ab"}
	if !equalTokens(filtered, want) {
		t.Errorf("minLen 0 should fall back to default, got %v", filtered)
	}
}

func equalTokens(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
