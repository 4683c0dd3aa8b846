// Package bfs provides breadth-first search over a graphmodel.AdjacencyMatrix,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// What
//
//   - Explore vertices in non-decreasing distance (edge count) from a start vertex.
//   - Returns a BFSResult containing:
//   - Order: visit sequence
//   - Depth: map from vertex index → distance (edges) from start
//   - Parent: map from vertex index → its predecessor in the BFS tree
//   - Supports functional hooks at three stages:
//   - OnEnqueue (before a vertex is enqueued)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Allows filtering of individual neighbor edges via WithFilterNeighbor.
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Compute unweighted shortest paths in O(n + edges) time.
//   - Find pseudo-peripheral seeds and grow balanced groups for GreedyAlgorithm.
//
// Determinism
//
//	Neighbors are visited in ascending vertex-index order (graphmodel.AdjacencyMatrix.Neighbors
//	returns a sorted slice), so the visit sequence is fully reproducible.
//
// Complexity (n = vertex count, e = edge count)
//
//   - Time:   O(n + e)
//   - Memory: O(n) (for queue, Depth map, Parent map, visited set)
//
// Usage
//
//		// Basic BFS with no options:
//		result, err := bfs.BFS(adj, 0)
//		if err != nil {
//	      // handle one of: ErrGraphNil, ErrStartVertexNotFound, ErrOptionViolation, or hook errors
//		}
//
//		// With functional options:
//		result, err := bfs.BFS(
//		    adj, 0,
//		    bfs.WithMaxDepth(3),
//		    bfs.WithFilterNeighbor(func(curr, nbr int) bool { return nbr != 4 }),
//		    bfs.WithOnVisit(func(id, depth int) error { return nil }),
//		)
//
// Options
//
//   - DefaultOptions(): background Context, no-op hooks, no depth limit, no filtering.
//   - WithContext(ctx):            set a custom context for cancellation.
//   - WithMaxDepth(d):             stop exploring beyond depth d (>0).
//   - WithFilterNeighbor(fn):      skip edges for which fn(curr,neighbor)==false.
//   - WithOnEnqueue(fn):           hook before a vertex is enqueued.
//   - WithOnDequeue(fn):           hook immediately before visiting a vertex.
//   - WithOnVisit(fn):             hook during visit; returning error aborts BFS.
package bfs
