package burrow_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/amphipod/burrow"
)

func BenchmarkMoves_Sample(b *testing.B) {
	s := mustParse(b, sampleDiagram, 2)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Moves()
	}
}

func BenchmarkSolve_Sample(b *testing.B) {
	s := mustParse(b, sampleDiagram, 2)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := burrow.Solve(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_Unfolded(b *testing.B) {
	s := mustParse(b, burrow.Unfold(sampleDiagram), 4)
	ctx := context.Background()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := burrow.Solve(ctx, s); err != nil {
			b.Fatal(err)
		}
	}
}
