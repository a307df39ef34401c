package progress

import "sort"

// NodeState classifies a roadmap node by its completion ratio.
type NodeState string

const (
	// NodeStateNeutral marks a node whose category has no problems
	// assigned. This is a configuration gap, not an error.
	NodeStateNeutral    NodeState = "neutral"
	NodeStateUnstarted  NodeState = "unstarted"
	NodeStateInProgress NodeState = "in-progress"
	NodeStateComplete   NodeState = "complete"
)

// NodeProgress is one roadmap node annotated with its completion counts.
type NodeProgress struct {
	Node
	Solved int       `json:"solved"`
	Total  int       `json:"total"`
	State  NodeState `json:"state"`
}

// ComputeRoadmap annotates every static node with solved/total counts
// for the problems whose category string-matches the node's category,
// and classifies the node's state. A category present in problem data
// but absent from the node list is simply not surfaced.
func ComputeRoadmap(nodes []Node, problems []Problem, solved SolvedSet) []NodeProgress {
	byCategory := ComputeCategoryProgress(problems, solved)

	result := make([]NodeProgress, len(nodes))
	for i, node := range nodes {
		stats := byCategory[node.Category]
		result[i] = NodeProgress{
			Node:   node,
			Solved: stats.Solved,
			Total:  stats.Total,
			State:  classifyNode(stats),
		}
	}
	return result
}

func classifyNode(stats CategoryStats) NodeState {
	switch {
	case stats.Total == 0:
		return NodeStateNeutral
	case stats.Solved == stats.Total:
		return NodeStateComplete
	case stats.Solved > 0:
		return NodeStateInProgress
	default:
		return NodeStateUnstarted
	}
}

// EdgeHighlighted reports whether an edge should be drawn highlighted
// while the given node is focused. Matching is by node id, not category:
// two nodes could in principle share a category label, and highlighting
// must not conflate them.
func EdgeHighlighted(edge Edge, focusedNodeID string) bool {
	if focusedNodeID == "" {
		return false
	}
	return edge.From == focusedNodeID || edge.To == focusedNodeID
}

// CategoryProblem is one problem in an open-category detail view.
type CategoryProblem struct {
	Problem
	Solved bool `json:"solved"`
}

// ComputeCategoryDetail returns the problems in a category sorted
// ascending by curated order, each flagged with solved-set membership.
func ComputeCategoryDetail(category string, problems []Problem, solved SolvedSet) []CategoryProblem {
	detail := make([]CategoryProblem, 0)
	for _, p := range problems {
		if p.Category != category {
			continue
		}
		detail = append(detail, CategoryProblem{
			Problem: p,
			Solved:  solved.Contains(p.ID),
		})
	}
	sort.Slice(detail, func(i, j int) bool {
		return detail[i].Order < detail[j].Order
	})
	return detail
}
