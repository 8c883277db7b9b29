package freq

// Table maps each distinct token to its occurrence count. A Table is
// built once per run by Count and treated as read-only afterwards.
// Iteration order carries no meaning; ranking imposes order.
type Table map[string]int

// Count tallies a filtered token sequence into a Table. Counts are
// exact: the sum over all entries equals len(tokens).
func Count(tokens []string) Table {
	t := make(Table, len(tokens))
	for _, tok := range tokens {
		if tok == "" {
			continue
		}
		t[tok]++
	}
	return t
}

// Total returns the sum of all counts in the table.
func (t Table) Total() int {
	total := 0
	for _, count := range t {
		total += count
	}
	return total
}

// Distinct returns the number of distinct tokens in the table.
func (t Table) Distinct() int {
	return len(t)
}
