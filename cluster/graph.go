package cluster

import "github.com/tsawler/textblock/model"

// buildAdjacency computes the span-adjacency relation as an adjacency list.
// Two spans are adjacent when either rule holds:
//
//  1. The Euclidean distance between their box centers is below
//     DistanceThreshold, or
//  2. Their vertical midpoints differ by less than VerticalTolerance and
//     the gap between one span's right edge and the other's left edge is
//     below OverlapTolerance (in either direction).
//
// The second rule captures same-line fragments spread across a wide line
// whose centers are far apart but whose edges touch or overlap.
// The relation is symmetric by construction. O(n^2) in the span count.
func buildAdjacency(spans []model.Span, config Config) [][]int {
	n := len(spans)
	adjacency := make([][]int, n)

	centers := make([]model.Point, n)
	for i, span := range spans {
		centers[i] = span.BBox.Center()
	}

	for i := 0; i < n; i++ {
		boxI := spans[i].BBox

		for j := i + 1; j < n; j++ {
			boxJ := spans[j].BBox

			sameBlock := centers[i].Distance(centers[j]) < config.DistanceThreshold

			if !sameBlock {
				sameLine := absFloat(boxI.MidY()-boxJ.MidY()) < config.VerticalTolerance
				edgesClose := absFloat(boxI.Right-boxJ.Left) < config.OverlapTolerance ||
					absFloat(boxJ.Right-boxI.Left) < config.OverlapTolerance
				sameBlock = sameLine && edgesClose
			}

			if sameBlock {
				adjacency[i] = append(adjacency[i], j)
				adjacency[j] = append(adjacency[j], i)
			}
		}
	}

	return adjacency
}

// connectedComponents extracts the connected components of the adjacency
// graph via breadth-first traversal, starting each search from the lowest
// unvisited span index. Membership order within a component is traversal
// order; callers re-sort into reading order.
func connectedComponents(adjacency [][]int) [][]int {
	n := len(adjacency)
	visited := make([]bool, n)
	var components [][]int

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}

		queue := []int{start}
		visited[start] = true
		component := []int{start}

		for len(queue) > 0 {
			current := queue[0]
			queue = queue[1:]
			for _, neighbor := range adjacency[current] {
				if !visited[neighbor] {
					visited[neighbor] = true
					queue = append(queue, neighbor)
					component = append(component, neighbor)
				}
			}
		}

		components = append(components, component)
	}

	return components
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
