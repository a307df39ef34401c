package domain

// RoadmapNode is one topic node in the static, hand-authored study
// roadmap. Coordinates are layout positions on a 1000x1200 canvas.
// The node list is fixed configuration data, not persisted per user.
type RoadmapNode struct {
	ID       string   `json:"id"`
	Label    string   `json:"label"`
	Category Category `json:"category"`
	X        int      `json:"x"`
	Y        int      `json:"y"`
}

// RoadmapEdge is a directed connection between two roadmap nodes,
// identified by node id. Edges only drive which connections are drawn
// and highlighted; they have no effect on progress computation.
type RoadmapEdge struct {
	From string `json:"from"`
	To   string `json:"to"`
}
