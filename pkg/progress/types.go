// Package progress computes every derived view the tracker renders:
// the solved set, per-category completion, the activity heatmap and its
// calendar grid, roadmap node states, and the revision listing.
//
// All functions are pure transformations over snapshots of the record
// store. The package defines its own record types so it stays agnostic
// of any particular storage or transport layer; callers map their
// persisted entities into these shapes.
package progress

import "time"

// Problem is the engine's view of one curated problem.
type Problem struct {
	ID         string `json:"id"`
	Slug       string `json:"slug"`
	Title      string `json:"title"`
	Difficulty string `json:"difficulty"`
	Category   string `json:"category"`
	Order      int    `json:"order"`
}

// Solution is the engine's view of one recorded solution.
type Solution struct {
	ID              string    `json:"id"`
	ProblemID       string    `json:"problem_id"`
	Name            string    `json:"name,omitempty"`
	Language        string    `json:"language"`
	Code            string    `json:"code"`
	TimeComplexity  string    `json:"time_complexity,omitempty"`
	SpaceComplexity string    `json:"space_complexity,omitempty"`
	Explanation     string    `json:"explanation,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Note is the engine's view of a problem's single note.
type Note struct {
	ID        string    `json:"id"`
	ProblemID string    `json:"problem_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Node is one static roadmap topic node.
type Node struct {
	ID       string `json:"id"`
	Label    string `json:"label"`
	Category string `json:"category"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
}

// Edge is a directed connection between two roadmap nodes.
type Edge struct {
	From string `json:"from"`
	To   string `json:"to"`
}
