package burrow

import (
	"context"
	"fmt"

	"github.com/katalvlaran/amphipod/dijkstra"
)

// space adapts the move generator and goal test to dijkstra.Space.
type space struct{}

func (space) Successors(s State) []dijkstra.Edge[State, int] {
	moves := s.Moves()
	edges := make([]dijkstra.Edge[State, int], len(moves))
	for i, m := range moves {
		edges[i] = dijkstra.Edge[State, int]{To: m.Next, Cost: m.Cost}
	}

	return edges
}

func (space) IsGoal(s State) bool { return s.IsSolved() }

// Solve returns the least total energy that brings s to a solved state.
// The error wraps dijkstra.ErrUnsolvable when no solved state is reachable,
// or whatever the options' limits and ctx produced.
func Solve(ctx context.Context, s State, opts ...dijkstra.Option) (int, error) {
	res, err := dijkstra.Search[State, int](ctx, space{}, s, opts...)
	if err != nil {
		return 0, fmt.Errorf("burrow: solve: %w", err)
	}

	return res.Cost, nil
}

// SolvePath is Solve that also returns the states visited by one cheapest
// solution, s first and the solved state last.
func SolvePath(ctx context.Context, s State, opts ...dijkstra.Option) (int, []State, error) {
	opts = append(opts[:len(opts):len(opts)], dijkstra.WithReturnPath())
	res, err := dijkstra.Search[State, int](ctx, space{}, s, opts...)
	if err != nil {
		return 0, nil, fmt.Errorf("burrow: solve: %w", err)
	}

	return res.Cost, res.Path, nil
}

// Replay recovers the moves linking consecutive states of path. Where two
// moves lead to the same state the cheaper one is reported.
func Replay(path []State) ([]Move, error) {
	if len(path) < 2 {
		return nil, nil
	}

	moves := make([]Move, 0, len(path)-1)
	for i := 1; i < len(path); i++ {
		var found bool
		var best Move
		for _, m := range path[i-1].Moves() {
			if m.Next == path[i] && (!found || m.Cost < best.Cost) {
				best, found = m, true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: step %d", ErrNotAdjacent, i)
		}
		moves = append(moves, best)
	}

	return moves, nil
}
