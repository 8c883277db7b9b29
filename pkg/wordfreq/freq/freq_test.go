package freq

import (
	"testing"
)

func TestCountBasic(t *testing.T) {
	tokens := []string{"kucing", "makan", "ikan", "kucing", "tidur"}
	table := Count(tokens)

	want := map[string]int{"kucing": 2, "makan": 1, "ikan": 1, "tidur": 1}
	if len(table) != len(want) {
		t.Fatalf("Expected %d distinct tokens, got %d", len(want), len(table))
	}
	for tok, count := range want {
		if table[tok] != count {
			t.Errorf("Count for %q = %d, want %d", tok, table[tok], count)
		}
	}
}

func TestCountTotalEqualsInputLength(t *testing.T) {
	tokens := []string{"alpha", "beta", "alpha", "gamma", "alpha", "beta"}
	table := Count(tokens)

	if table.Total() != len(tokens) {
		t.Errorf("Total() = %d, want %d", table.Total(), len(tokens))
	}
}

func TestCountEmptyInput(t *testing.T) {
	table := Count(nil)

	if len(table) != 0 {
		t.Errorf("Empty input should produce empty table, got %v", table)
	}
	if table.Total() != 0 {
		t.Errorf("Total() of empty table = %d, want 0", table.Total())
	}
}

func TestCountSkipsEmptyStrings(t *testing.T) {
	table := Count([]string{"word", "", "word"})

	if table.Total() != 2 {
		t.Errorf("Empty strings should not be counted, Total() = %d", table.Total())
	}
	if _, ok := table[""]; ok {
		t.Error("Table must not contain an empty key")
	}
}

func TestDistinct(t *testing.T) {
	table := Count([]string{"a1", "b2", "a1"})

	if table.Distinct() != 2 {
		t.Errorf("Distinct() = %d, want 2", table.Distinct())
	}
}
