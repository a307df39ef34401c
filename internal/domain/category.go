package domain

// Category is one of the 18 fixed roadmap topic labels. Problems and
// roadmap nodes share this type so a mismatching label is caught when
// data is loaded, not silently rendered as a zero-count node.
type Category string

const (
	CategoryArraysHashing   Category = "Arrays & Hashing"
	CategoryTwoPointers     Category = "Two Pointers"
	CategoryStack           Category = "Stack"
	CategoryBinarySearch    Category = "Binary Search"
	CategorySlidingWindow   Category = "Sliding Window"
	CategoryLinkedList      Category = "Linked List"
	CategoryTrees           Category = "Trees"
	CategoryTries           Category = "Tries"
	CategoryHeapPQ          Category = "Heap / Priority Queue"
	CategoryBacktracking    Category = "Backtracking"
	CategoryGraphs          Category = "Graphs"
	CategoryDP1D            Category = "1-D DP"
	CategoryDP2D            Category = "2-D DP"
	CategoryAdvancedGraphs  Category = "Advanced Graphs"
	CategoryGreedy          Category = "Greedy"
	CategoryIntervals       Category = "Intervals"
	CategoryBitManipulation Category = "Bit Manipulation"
	CategoryMathGeometry    Category = "Math & Geometry"
)

// AllCategories lists every known category in curated-list order
func AllCategories() []Category {
	return []Category{
		CategoryArraysHashing,
		CategoryTwoPointers,
		CategoryStack,
		CategoryBinarySearch,
		CategorySlidingWindow,
		CategoryLinkedList,
		CategoryTrees,
		CategoryTries,
		CategoryHeapPQ,
		CategoryBacktracking,
		CategoryGraphs,
		CategoryDP1D,
		CategoryDP2D,
		CategoryAdvancedGraphs,
		CategoryGreedy,
		CategoryIntervals,
		CategoryBitManipulation,
		CategoryMathGeometry,
	}
}

// Valid reports whether the category is one of the known 18 labels
func (c Category) Valid() bool {
	for _, known := range AllCategories() {
		if c == known {
			return true
		}
	}
	return false
}
