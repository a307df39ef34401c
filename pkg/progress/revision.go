package progress

// Revision is one denormalized per-problem record for the revision
// screen: the problem joined with all of its solutions and its note.
type Revision struct {
	Problem   Problem    `json:"problem"`
	Solutions []Solution `json:"solutions"`
	Note      *Note      `json:"note"`
}

// ComposeRevision joins problems with their solutions and note by
// problem id, producing one composite per problem. Solutions keep their
// input order; sorting by recency is a presentation concern applied
// downstream. Every problem appears, even with no solutions and no note.
func ComposeRevision(problems []Problem, solutions []Solution, notes []Note) []Revision {
	solutionsByProblem := make(map[string][]Solution)
	for _, s := range solutions {
		solutionsByProblem[s.ProblemID] = append(solutionsByProblem[s.ProblemID], s)
	}

	noteByProblem := make(map[string]Note, len(notes))
	for _, n := range notes {
		noteByProblem[n.ProblemID] = n
	}

	composites := make([]Revision, len(problems))
	for i, p := range problems {
		rev := Revision{
			Problem:   p,
			Solutions: solutionsByProblem[p.ID],
		}
		if rev.Solutions == nil {
			rev.Solutions = []Solution{}
		}
		if note, ok := noteByProblem[p.ID]; ok {
			n := note
			rev.Note = &n
		}
		composites[i] = rev
	}
	return composites
}

// FilterRevision keeps only composites that have at least one solution
// or a note. This is a display policy: problems with neither are hidden
// from the revision view, never deleted.
func FilterRevision(composites []Revision) []Revision {
	filtered := make([]Revision, 0, len(composites))
	for _, rev := range composites {
		if len(rev.Solutions) > 0 || rev.Note != nil {
			filtered = append(filtered, rev)
		}
	}
	return filtered
}
