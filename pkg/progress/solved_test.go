package progress

import (
	"testing"
	"time"
)

func TestComputeSolvedSet_CollapsesDuplicates(t *testing.T) {
	solutions := []Solution{
		{ID: "s1", ProblemID: "p1", Language: "go"},
		{ID: "s2", ProblemID: "p1", Language: "python"},
		{ID: "s3", ProblemID: "p2", Language: "go"},
	}

	set := ComputeSolvedSet(solutions)
	if len(set) != 2 {
		t.Fatalf("expected 2 members, got %d", len(set))
	}
	if !set.Contains("p1") || !set.Contains("p2") {
		t.Fatalf("expected p1 and p2 in solved set, got %v", set.IDs())
	}
	if set.Contains("p3") {
		t.Fatalf("p3 should not be solved")
	}
}

func TestComputeSolvedSet_Idempotent(t *testing.T) {
	solutions := []Solution{
		{ID: "s1", ProblemID: "p1"},
		{ID: "s2", ProblemID: "p2"},
		{ID: "s3", ProblemID: "p1"},
	}

	first := ComputeSolvedSet(solutions)
	second := ComputeSolvedSet(solutions)

	if len(first) != len(second) {
		t.Fatalf("set sizes differ: %d vs %d", len(first), len(second))
	}
	for id := range first {
		if !second.Contains(id) {
			t.Fatalf("second computation missing %q", id)
		}
	}
}

func TestComputeSolvedSet_EmptyInput(t *testing.T) {
	set := ComputeSolvedSet(nil)
	if len(set) != 0 {
		t.Fatalf("expected empty set, got %v", set.IDs())
	}
}

func TestComputeCategoryProgress(t *testing.T) {
	problems := []Problem{
		{ID: "p1", Category: "Arrays & Hashing", Order: 1},
		{ID: "p2", Category: "Arrays & Hashing", Order: 2},
		{ID: "p3", Category: "Two Pointers", Order: 10},
	}
	solved := SolvedSet{"p1": {}}

	stats := ComputeCategoryProgress(problems, solved)

	arrays := stats["Arrays & Hashing"]
	if arrays.Solved != 1 || arrays.Total != 2 {
		t.Fatalf("Arrays & Hashing: expected 1/2, got %d/%d", arrays.Solved, arrays.Total)
	}
	pointers := stats["Two Pointers"]
	if pointers.Solved != 0 || pointers.Total != 1 {
		t.Fatalf("Two Pointers: expected 0/1, got %d/%d", pointers.Solved, pointers.Total)
	}
	for category, s := range stats {
		if s.Solved > s.Total {
			t.Fatalf("%s: solved %d exceeds total %d", category, s.Solved, s.Total)
		}
	}
}

// Scenario: one solution recorded, then deleted. Recomputing from the
// remaining snapshot must drop the problem from the solved set.
func TestComputeSolvedSet_DeletionRemovesMembership(t *testing.T) {
	created := time.Date(2024, 6, 1, 20, 0, 0, 0, time.UTC)
	solutions := []Solution{{ID: "s1", ProblemID: "p1", CreatedAt: created}}

	before := ComputeSolvedSet(solutions)
	if !before.Contains("p1") {
		t.Fatalf("expected p1 solved before deletion")
	}

	after := ComputeSolvedSet(solutions[:0])
	if after.Contains("p1") {
		t.Fatalf("expected p1 unsolved after deletion")
	}
}
