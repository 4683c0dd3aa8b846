// Package bfs provides breadth-first search over a graphmodel.AdjacencyMatrix,
// returning unweighted shortest-path distances, parent links, and visit order.
//
// BFS explores vertices in increasing distance from a start vertex,
// with optional hooks, depth limiting, and neighbor filtering.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphpart/graphmodel"
)

// queueItem pairs a vertex index with its BFS depth and its parent's index.
type queueItem struct {
	id     int
	depth  int
	parent int // noParent for root
}

// walker encapsulates mutable BFS state.
type walker struct {
	adj     *graphmodel.AdjacencyMatrix
	opts    BFSOptions
	ctx     context.Context
	queue   []queueItem
	visited []bool
	res     *BFSResult
}

// BFS runs breadth-first search on adj starting from startIdx,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartVertexNotFound for invalid input,
// ErrOptionViolation for bad options, or any user-supplied hook error.
func BFS(adj *graphmodel.AdjacencyMatrix, startIdx int, opts ...Option) (*BFSResult, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	n := adj.N()
	if startIdx < 0 || startIdx >= n {
		return nil, ErrStartVertexNotFound
	}

	// Prepare walker
	w := &walker{
		adj:     adj,
		opts:    o,
		ctx:     o.Ctx,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &BFSResult{
			Order:  make([]int, 0, n),
			Depth:  make(map[int]int, n),
			Parent: make(map[int]int, n),
		},
	}

	// Seed queue with start vertex (no parent)
	w.enqueue(startIdx, 0, noParent)
	// Main loop
	return w.res, w.loop()
}

// enqueue marks id visited at depth d, calls OnEnqueue, records its parent,
// and adds it to the queue.
func (w *walker) enqueue(id, d, parent int) {
	w.visited[id] = true
	w.res.Depth[id] = d
	if parent != noParent {
		w.res.Parent[id] = parent
	}
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d, parent: parent})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		// cancellation check (once per loop)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)
	return item
}

// visit records the vertex in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %d: %w", item.id, err)
	}
	return nil
}

// enqueueNeighbors retrieves neighbors in ascending order, applies
// filtering and MaxDepth, and enqueues each unseen neighbor.
func (w *walker) enqueueNeighbors(item queueItem) {
	for _, nbr := range w.adj.Neighbors(item.id) {
		select {
		case <-w.ctx.Done():
			return
		default:
		}

		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		nextDepth := item.depth + 1
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}

// Eccentricity returns the maximum BFS depth reached from start — the
// farthest distance used by pseudo-peripheral vertex selection.
//
// Complexity: O(n + e).
func Eccentricity(adj *graphmodel.AdjacencyMatrix, start int) (int, error) {
	res, err := BFS(adj, start)
	if err != nil {
		return 0, err
	}
	max := 0
	for _, d := range res.Depth {
		if d > max {
			max = d
		}
	}
	return max, nil
}

// MultiSourceDistances runs a BFS seeded simultaneously from every index in
// sources and returns each vertex's distance to its nearest source. Used by
// GreedyAlgorithm to pick the next seed as the vertex farthest from every
// previously chosen seed.
//
// Complexity: O(n + e).
func MultiSourceDistances(adj *graphmodel.AdjacencyMatrix, sources []int) (map[int]int, error) {
	if adj == nil {
		return nil, ErrGraphNil
	}
	n := adj.N()
	visited := make([]bool, n)
	dist := make(map[int]int, n)
	queue := make([]int, 0, n)

	for _, s := range sources {
		if s < 0 || s >= n {
			return nil, ErrStartVertexNotFound
		}
		if !visited[s] {
			visited[s] = true
			dist[s] = 0
			queue = append(queue, s)
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, nbr := range adj.Neighbors(cur) {
			if !visited[nbr] {
				visited[nbr] = true
				dist[nbr] = dist[cur] + 1
				queue = append(queue, nbr)
			}
		}
	}
	return dist, nil
}
