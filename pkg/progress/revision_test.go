package progress

import (
	"testing"
	"time"
)

func TestComposeRevision_JoinsByProblemID(t *testing.T) {
	problems := []Problem{
		{ID: "p1", Category: "Arrays & Hashing", Order: 1},
		{ID: "p2", Category: "Arrays & Hashing", Order: 2},
	}
	solutions := []Solution{
		{ID: "s1", ProblemID: "p1", Language: "go"},
		{ID: "s2", ProblemID: "p1", Language: "python"},
	}
	notes := []Note{
		{ID: "n1", ProblemID: "p2", Content: "remember the edge case"},
	}

	composites := ComposeRevision(problems, solutions, notes)

	if len(composites) != 2 {
		t.Fatalf("expected one composite per problem, got %d", len(composites))
	}

	p1 := composites[0]
	if len(p1.Solutions) != 2 || p1.Solutions[0].ID != "s1" || p1.Solutions[1].ID != "s2" {
		t.Fatalf("p1 solutions must keep input order, got %+v", p1.Solutions)
	}
	if p1.Note != nil {
		t.Fatalf("p1 has no note, got %+v", p1.Note)
	}

	p2 := composites[1]
	if len(p2.Solutions) != 0 {
		t.Fatalf("p2 has no solutions, got %+v", p2.Solutions)
	}
	if p2.Note == nil || p2.Note.Content != "remember the edge case" {
		t.Fatalf("p2 note missing or wrong: %+v", p2.Note)
	}
}

func TestFilterRevision_KeepsSolutionOrNote(t *testing.T) {
	problems := []Problem{
		{ID: "p1", Order: 1},
		{ID: "p2", Order: 2},
		{ID: "p3", Order: 3},
	}
	solutions := []Solution{{ID: "s1", ProblemID: "p1"}}
	notes := []Note{{ID: "n1", ProblemID: "p2", Content: "x"}}

	filtered := FilterRevision(ComposeRevision(problems, solutions, notes))

	if len(filtered) != 2 {
		t.Fatalf("expected 2 composites, got %d", len(filtered))
	}
	if filtered[0].Problem.ID != "p1" || filtered[1].Problem.ID != "p2" {
		t.Fatalf("p3 must be excluded, got %+v", filtered)
	}
}

// Removing a problem's only solution and only note removes it from the
// next computation; there is no cache to hold a stale composite.
func TestFilterRevision_NoStaleRetention(t *testing.T) {
	problems := []Problem{{ID: "p1", Order: 1}}
	solutions := []Solution{{ID: "s1", ProblemID: "p1", CreatedAt: time.Now()}}
	notes := []Note{{ID: "n1", ProblemID: "p1", Content: "x"}}

	before := FilterRevision(ComposeRevision(problems, solutions, notes))
	if len(before) != 1 {
		t.Fatalf("expected p1 present before removal, got %d", len(before))
	}

	after := FilterRevision(ComposeRevision(problems, nil, nil))
	if len(after) != 0 {
		t.Fatalf("expected empty view after removal, got %+v", after)
	}
}

// End-to-end over the engine: one recorded solution drives the solved
// set, the activity map, and category progress consistently.
func TestEngine_EndToEnd(t *testing.T) {
	problems := []Problem{
		{ID: "p1", Category: "Arrays & Hashing", Order: 1},
		{ID: "p2", Category: "Arrays & Hashing", Order: 2},
	}
	solutions := []Solution{
		{ID: "s1", ProblemID: "p1", CreatedAt: time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)},
	}
	now := time.Date(2024, 6, 20, 0, 0, 0, 0, time.UTC)

	solved := ComputeSolvedSet(solutions)
	if len(solved) != 1 || !solved.Contains("p1") {
		t.Fatalf("expected solved set {p1}, got %v", solved.IDs())
	}

	activity := ComputeActivity(solutions, now, ist)
	if activity["2024-06-02"] != 1 || len(activity) != 1 {
		t.Fatalf("expected {2024-06-02: 1}, got %v", activity)
	}

	stats := ComputeCategoryProgress(problems, solved)
	arrays := stats["Arrays & Hashing"]
	if arrays.Solved != 1 || arrays.Total != 2 {
		t.Fatalf("expected 1/2 for Arrays & Hashing, got %d/%d", arrays.Solved, arrays.Total)
	}
}
