package progress

// SolvedSet is the set of problem ids that have at least one recorded
// solution. Membership is independent of language, recency, or count.
type SolvedSet map[string]struct{}

// ComputeSolvedSet returns the set of distinct owning-problem ids.
// Duplicate solutions for the same problem collapse to one entry, so the
// computation is idempotent over the same input.
func ComputeSolvedSet(solutions []Solution) SolvedSet {
	set := make(SolvedSet, len(solutions))
	for _, s := range solutions {
		set[s.ProblemID] = struct{}{}
	}
	return set
}

// Contains reports whether the problem id is in the solved set.
func (s SolvedSet) Contains(problemID string) bool {
	_, ok := s[problemID]
	return ok
}

// IDs returns the members of the set as a slice. Order is unspecified.
func (s SolvedSet) IDs() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	return ids
}

// CategoryStats holds solved/total counts for one category.
type CategoryStats struct {
	Solved int `json:"solved"`
	Total  int `json:"total"`
}

// ComputeCategoryProgress buckets problems by their category string and
// counts how many of each bucket are in the solved set. Categories with
// no problems are simply absent from the result.
func ComputeCategoryProgress(problems []Problem, solved SolvedSet) map[string]CategoryStats {
	byCategory := make(map[string]CategoryStats)
	for _, p := range problems {
		stats := byCategory[p.Category]
		stats.Total++
		if solved.Contains(p.ID) {
			stats.Solved++
		}
		byCategory[p.Category] = stats
	}
	return byCategory
}
