// Package precedence builds the directed precedence graph over a validated
// template's steps and provides topological ordering with cycle detection.
//
// Grounded on lvlath/dfs's three-color (White/Gray/Black) depth-first
// traversal for TopologicalSort and DetectCycles, and on lvlath/core's
// adjacency-list discipline: one forward adjacency list and one reverse
// adjacency list built once at construction time, indexed by step id, with
// no back-pointers on step records. Unlike lvlath/dfs, Graph carries no mutex and TopoSort
// takes no context.Context: the solver runs single-threaded with no
// cancellation token, so the concurrency-oriented parts of lvlath/dfs's
// API are deliberately not reproduced here.
package precedence
