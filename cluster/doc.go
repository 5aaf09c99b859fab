// Package cluster groups text spans into semantic blocks.
//
// The algorithm has four steps:
//
//  1. Adjacency: every pair of spans is tested with a dual rule — center
//     proximity, or same-line edge proximity (see Config).
//  2. Components: connected components of the adjacency graph are
//     extracted by breadth-first traversal.
//  3. Merging: within each component, spans are sorted into reading order
//     and runs of very short fragments are fused into their neighbors.
//  4. Assembly: each component becomes one Block with an envelope box,
//     script-aware merged text, and a representative font style.
//
// # Configuration
//
// Behavior is controlled by [Config]:
//
//	config := cluster.DefaultConfig()
//	config.DistanceThreshold = 80
//	c := cluster.NewClustererWithConfig(config)
//	blocks, err := c.Cluster(spans)
//
// Thresholds are caller-supplied and not validated; degenerate values
// (for example a negative distance threshold) simply produce degenerate
// clustering, such as a graph with no edges.
package cluster
