// Package dijkstra implements uniform-cost (Dijkstra) search on implicit
// weighted graphs.
//
// The search keeps a min-priority frontier of (node, cumulative cost)
// entries. It repeatedly pops the cheapest entry, returns it if it is a
// goal, and otherwise pushes every successor with its cumulative cost.
// Since edge costs are non-negative, the first goal popped is optimal.
//
// Complexity (with memo, V = reachable nodes, E = their edges):
//
//   - Time:  O((V + E) log E)
//   - Each node is expanded at most once; stale frontier copies are skipped.
//   - Each improving relaxation pushes one entry: up to E pushes.
//   - Space: O(V + E)
//   - O(V) for the best-cost memo and the finalized set.
//   - O(E) worst-case entries in the frontier under “lazy decrease-key”.
//
// Without memo every path is its own frontier entry, so time and space grow
// with the number of distinct paths rather than nodes.
package dijkstra

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/heap"
	"github.com/zyedidia/generic/mapset"
	"golang.org/x/exp/constraints"
)

// Search runs uniform-cost search from start over space and returns the
// cheapest cost to any goal node.
//
// Returns:
//
//   - Result with Cost, Goal, Stats and, when WithReturnPath() is given, Path.
//   - ErrNilSpace if space is nil.
//   - ErrUnsolvable if no goal is reachable (or none within MaxCost).
//   - ErrNegativeWeight if an edge with negative cost is produced.
//   - ErrExpansionLimit if MaxExpansions is reached first.
//   - ctx.Err() (wrapped) if ctx is cancelled while searching.
//
// Search is synchronous and holds no state between calls.
func Search[N comparable, C constraints.Integer](
	ctx context.Context,
	space Space[N, C],
	start N,
	opts ...Option,
) (Result[N, C], error) {
	// 1) Build Options
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	// 2) Validate inputs
	if space == nil {
		return Result[N, C]{}, ErrNilSpace
	}
	if ctx == nil {
		ctx = context.Background()
	}

	// 3) Run
	r := newRunner[N, C](space, cfg)

	return r.run(ctx, start)
}

// item is one frontier entry: a node reached with cumulative cost.
// parent is only linked when a path was requested.
type item[N comparable, C constraints.Integer] struct {
	node   N
	cost   C
	parent *item[N, C]
}

// runner holds the mutable state for a single Search execution.
type runner[N comparable, C constraints.Integer] struct {
	space   Space[N, C]
	options Options
	best    map[N]C                 // best known cumulative cost per node (memo only)
	done    mapset.Set[N]           // nodes already expanded (memo only)
	pq      *heap.Heap[*item[N, C]] // min-heap on cumulative cost
	stats   Stats
	log     logrus.FieldLogger
}

func newRunner[N comparable, C constraints.Integer](space Space[N, C], cfg Options) *runner[N, C] {
	r := &runner[N, C]{
		space:   space,
		options: cfg,
		pq: heap.New[*item[N, C]](func(a, b *item[N, C]) bool {
			return a.cost < b.cost
		}),
		log: cfg.Logger.WithField("algo", "dijkstra"),
	}
	if cfg.Memo {
		r.best = make(map[N]C)
		r.done = mapset.New[N]()
	}

	return r
}

// run is the core loop.
//
// Loop termination conditions:
//
//   - A goal node is popped (success).
//   - The frontier becomes empty, or its minimum exceeds MaxCost (ErrUnsolvable).
//   - MaxExpansions is reached (ErrExpansionLimit).
//   - ctx is done.
func (r *runner[N, C]) run(ctx context.Context, start N) (Result[N, C], error) {
	r.log.WithFields(logrus.Fields{
		"memo":          r.options.Memo,
		"maxCost":       r.options.MaxCost,
		"maxExpansions": r.options.MaxExpansions,
	}).Debug("search started")

	r.push(&item[N, C]{node: start})

	for {
		it, ok := r.pq.Pop()
		if !ok {
			break
		}

		// 1) Honour cancellation between expansions.
		if err := ctx.Err(); err != nil {
			return Result[N, C]{Stats: r.stats}, fmt.Errorf("dijkstra: search interrupted after %d expansions: %w", r.stats.Expanded, err)
		}

		// 2) Skip stale copies of nodes already expanded at a lower cost.
		if r.options.Memo {
			if r.done.Has(it.node) {
				r.stats.Stale++
				continue
			}
			r.done.Put(it.node)
		}

		// 3) Everything left in the heap costs at least it.cost.
		if r.options.MaxCost >= 0 && int64(it.cost) > r.options.MaxCost {
			break
		}

		// 4) First goal popped is optimal.
		if r.space.IsGoal(it.node) {
			return r.finish(it), nil
		}

		if r.options.MaxExpansions > 0 && r.stats.Expanded >= r.options.MaxExpansions {
			return Result[N, C]{Stats: r.stats}, fmt.Errorf("%w: %d nodes expanded, frontier holds %d", ErrExpansionLimit, r.stats.Expanded, r.pq.Size())
		}

		// 5) Relax successors.
		if err := r.expand(it); err != nil {
			return Result[N, C]{Stats: r.stats}, err
		}
	}

	r.log.WithFields(logrus.Fields{
		"expanded": r.stats.Expanded,
		"pushed":   r.stats.Pushed,
	}).Debug("frontier exhausted")

	return Result[N, C]{Stats: r.stats}, ErrUnsolvable
}

// expand pushes every successor of it whose cumulative cost improves on the
// best known cost (memo) or unconditionally (no memo).
func (r *runner[N, C]) expand(it *item[N, C]) error {
	r.stats.Expanded++
	if r.stats.Expanded%r.options.ProgressEvery == 0 {
		r.log.WithFields(logrus.Fields{
			"expanded": r.stats.Expanded,
			"frontier": r.pq.Size(),
			"cost":     it.cost,
		}).Debug("search progress")
	}

	var e Edge[N, C]
	var next C
	for _, e = range r.space.Successors(it.node) {
		if e.Cost < 0 {
			return fmt.Errorf("%w: edge cost %d after cumulative cost %d", ErrNegativeWeight, e.Cost, it.cost)
		}
		next = it.cost + e.Cost

		if r.options.Memo {
			if r.done.Has(e.To) {
				continue
			}
			// Strict improvement only; equal-cost duplicates add nothing.
			if known, seen := r.best[e.To]; seen && next >= known {
				continue
			}
		}

		child := &item[N, C]{node: e.To, cost: next}
		if r.options.ReturnPath {
			child.parent = it
		}
		r.push(child)
	}

	return nil
}

func (r *runner[N, C]) push(it *item[N, C]) {
	if r.options.Memo {
		r.best[it.node] = it.cost
	}
	r.pq.Push(it)
	r.stats.Pushed++
}

// finish builds the Result for goal entry it.
func (r *runner[N, C]) finish(it *item[N, C]) Result[N, C] {
	res := Result[N, C]{
		Cost:  it.cost,
		Goal:  it.node,
		Stats: r.stats,
	}
	if r.options.ReturnPath {
		for cur := it; cur != nil; cur = cur.parent {
			res.Path = append(res.Path, cur.node)
		}
		for i, j := 0, len(res.Path)-1; i < j; i, j = i+1, j-1 {
			res.Path[i], res.Path[j] = res.Path[j], res.Path[i]
		}
	}

	r.log.WithFields(logrus.Fields{
		"cost":     it.cost,
		"expanded": r.stats.Expanded,
		"pushed":   r.stats.Pushed,
		"stale":    r.stats.Stale,
	}).Debug("goal reached")

	return res
}
