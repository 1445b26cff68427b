// Package dijkstra_test provides examples demonstrating uniform-cost search
// on implicit graphs. Each example is runnable via “go test -run Example”.
package dijkstra_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/amphipod/dijkstra"
)

// jugs is the two-jug puzzle: capacities 3 and 5, reach exactly 4 litres in
// the big jug. Every pour or fill costs 1.
type jugs struct{}

type levels struct{ small, big int }

func (jugs) Successors(n levels) []dijkstra.Edge[levels, int] {
	const smallCap, bigCap = 3, 5
	pourSB := min(n.small, bigCap-n.big)
	pourBS := min(n.big, smallCap-n.small)
	next := []levels{
		{smallCap, n.big}, {n.small, bigCap}, // fill
		{0, n.big}, {n.small, 0}, // empty
		{n.small - pourSB, n.big + pourSB}, // pour small → big
		{n.small + pourBS, n.big - pourBS}, // pour big → small
	}
	edges := make([]dijkstra.Edge[levels, int], 0, len(next))
	for _, to := range next {
		if to != n {
			edges = append(edges, dijkstra.Edge[levels, int]{To: to, Cost: 1})
		}
	}

	return edges
}

func (jugs) IsGoal(n levels) bool { return n.big == 4 }

// ExampleSearch solves the jug puzzle and prints the number of steps.
func ExampleSearch() {
	res, err := dijkstra.Search[levels, int](context.Background(), jugs{}, levels{}, dijkstra.WithReturnPath())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("steps:", res.Cost)
	fmt.Println("states:", len(res.Path), "last:", res.Goal)
	// Output:
	// steps: 6
	// states: 7 last: {3 4}
}
