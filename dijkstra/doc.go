// Package dijkstra provides uniform-cost (Dijkstra) search over implicit
// weighted graphs with non-negative edge costs.
//
// Overview:
//
//   - The graph is described by a Space: Successors(n) yields the outgoing
//     edges of n and IsGoal(n) recognises terminal nodes. Nodes are any
//     comparable type, costs any integer type.
//   - The search always expands the cheapest frontier entry, so the first
//     goal it pops is reached at minimal cumulative cost.
//   - Nodes are generated lazily; only the part of the graph cheaper than the
//     answer is ever materialized.
//
// When to use:
//
//   - Puzzle and planning problems whose state graph is too large to build
//     up front but whose states are cheap to compare.
//   - Any single-source, first-goal shortest path query with integer costs.
//
// Key features:
//
//   - Functional options allow fine-tuning behavior without changing the API signature.
//   - Memo (default): best known cost per node plus a finalized set bound
//     the work to one expansion per node. WithoutMemo() turns it off.
//   - ReturnPath: rebuild the start→goal node sequence from parent links.
//   - MaxCost / MaxExpansions: stop early on cost or on work done.
//   - Structured logging of start, progress and result via logrus.
//   - Cancellation through context.Context.
//
// Error handling (sentinel errors):
//
//   - ErrNilSpace:       the Space is nil.
//   - ErrUnsolvable:     no goal is reachable (within MaxCost).
//   - ErrNegativeWeight: a Space produced a negative edge cost.
//   - ErrExpansionLimit: MaxExpansions was reached first.
//   - ErrBadMaxCost, ErrBadMaxExpansions, ErrBadProgressEvery:
//     raised (via panic) by the option constructors on invalid values.
//
// API reference:
//
//	func Search[N comparable, C constraints.Integer](
//	    ctx context.Context,
//	    space Space[N, C],
//	    start N,
//	    opts ...Option,
//	) (Result[N, C], error)
//
// Example:
//
//	res, err := dijkstra.Search[State, int](ctx, space, start, dijkstra.WithReturnPath())
//	if errors.Is(err, dijkstra.ErrUnsolvable) {
//	    // no solution
//	}
//	fmt.Println(res.Cost, len(res.Path))
package dijkstra
