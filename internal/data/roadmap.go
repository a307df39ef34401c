package data

import "github.com/neetcode-tracker/backend/internal/domain"

// RoadmapNodes is the fixed, hand-authored topic graph. Positions are
// layout coordinates on a 1000x1200 canvas; each node's category is the
// join key into the problem set.
var RoadmapNodes = []domain.RoadmapNode{
	// Level 1 - Root
	{ID: "arrays", Label: "Arrays & Hashing", Category: domain.CategoryArraysHashing, X: 500, Y: 60},

	// Level 2
	{ID: "two-pointers", Label: "Two Pointers", Category: domain.CategoryTwoPointers, X: 350, Y: 150},
	{ID: "stack", Label: "Stack", Category: domain.CategoryStack, X: 650, Y: 150},

	// Level 3
	{ID: "binary-search", Label: "Binary Search", Category: domain.CategoryBinarySearch, X: 200, Y: 240},
	{ID: "sliding-window", Label: "Sliding Window", Category: domain.CategorySlidingWindow, X: 400, Y: 240},
	{ID: "linked-list", Label: "Linked List", Category: domain.CategoryLinkedList, X: 600, Y: 240},

	// Level 4
	{ID: "trees", Label: "Trees", Category: domain.CategoryTrees, X: 400, Y: 340},

	// Level 5
	{ID: "tries", Label: "Tries", Category: domain.CategoryTries, X: 250, Y: 440},
	{ID: "backtracking", Label: "Backtracking", Category: domain.CategoryBacktracking, X: 600, Y: 440},

	// Level 6
	{ID: "heap", Label: "Heap / Priority Queue", Category: domain.CategoryHeapPQ, X: 150, Y: 540},
	{ID: "graphs", Label: "Graphs", Category: domain.CategoryGraphs, X: 400, Y: 540},
	{ID: "1d-dp", Label: "1-D DP", Category: domain.CategoryDP1D, X: 650, Y: 540},

	// Level 7
	{ID: "intervals", Label: "Intervals", Category: domain.CategoryIntervals, X: 100, Y: 640},
	{ID: "greedy", Label: "Greedy", Category: domain.CategoryGreedy, X: 250, Y: 640},
	{ID: "advanced-graphs", Label: "Advanced Graphs", Category: domain.CategoryAdvancedGraphs, X: 400, Y: 640},
	{ID: "2d-dp", Label: "2-D DP", Category: domain.CategoryDP2D, X: 550, Y: 640},
	{ID: "bit-manipulation", Label: "Bit Manipulation", Category: domain.CategoryBitManipulation, X: 700, Y: 640},

	// Level 8
	{ID: "math", Label: "Math & Geometry", Category: domain.CategoryMathGeometry, X: 550, Y: 740},
}

// RoadmapEdges connects the nodes in suggested study order. Edges are
// advisory and only affect what the roadmap view draws.
var RoadmapEdges = []domain.RoadmapEdge{
	{From: "arrays", To: "two-pointers"},
	{From: "arrays", To: "stack"},

	{From: "two-pointers", To: "binary-search"},
	{From: "two-pointers", To: "sliding-window"},

	{From: "stack", To: "linked-list"},

	{From: "binary-search", To: "trees"},
	{From: "sliding-window", To: "trees"},
	{From: "linked-list", To: "trees"},

	{From: "trees", To: "tries"},
	{From: "trees", To: "backtracking"},

	{From: "tries", To: "heap"},
	{From: "tries", To: "graphs"},

	{From: "backtracking", To: "graphs"},
	{From: "backtracking", To: "1d-dp"},

	{From: "heap", To: "intervals"},
	{From: "heap", To: "greedy"},

	{From: "graphs", To: "advanced-graphs"},
	{From: "graphs", To: "greedy"},

	{From: "1d-dp", To: "2d-dp"},
	{From: "1d-dp", To: "bit-manipulation"},

	{From: "2d-dp", To: "math"},
}
