package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

func mustParse(t testing.TB, diagram string, capacity int) burrow.State {
	t.Helper()
	s, err := burrow.Parse(diagram, capacity)
	require.NoError(t, err)

	return s
}

func TestMoves_SampleOpening(t *testing.T) {
	s := mustParse(t, sampleDiagram, 2)
	moves := s.Moves()

	// Four top tokens, seven resting tiles each, nothing in the hallway yet.
	require.Len(t, moves, 4*7)
	for _, m := range moves {
		require.GreaterOrEqual(t, m.From.Room, 0)
		require.Equal(t, -1, m.To.Room)
		require.False(t, burrow.IsEntrance(m.To.Index))
	}

	// B leaves room 0 (1 step) and walks to tile 3 (1 tile): 2 × 10.
	var found bool
	for _, m := range moves {
		if m.From == burrow.RoomSpot(0, 0) && m.To == burrow.HallSpot(3) {
			require.Equal(t, burrow.Bronze, m.Kind)
			require.Equal(t, 20, m.Cost)
			require.Equal(t, burrow.Bronze, m.Next.Hallway()[3])
			require.Equal(t, burrow.Empty, m.Next.Room(0).Slot(0))
			found = true
		}
	}
	require.True(t, found)

	// The original state is untouched by move generation.
	require.Equal(t, mustParse(t, sampleDiagram, 2), s)
}

func TestMoves_IntoHomeRoom(t *testing.T) {
	s := burrow.NewState(2).
		WithRoom(0, burrow.Empty, burrow.Amber).
		WithRoom(1, burrow.Bronze, burrow.Bronze).
		WithRoom(2, burrow.Copper, burrow.Copper).
		WithRoom(3, burrow.Desert, burrow.Desert).
		WithTile(10, burrow.Amber)

	moves := s.Moves()
	require.Len(t, moves, 1)
	m := moves[0]
	require.Equal(t, burrow.HallSpot(10), m.From)
	require.Equal(t, burrow.RoomSpot(0, 0), m.To)
	require.Equal(t, (8+1)*1, m.Cost)
	require.True(t, m.Next.IsSolved())
	require.Empty(t, m.Next.Moves())
	require.Equal(t, "A tile 10 -> room 0 slot 0 (9)", m.String())
}

func TestMoves_BlockedIsDeadEnd(t *testing.T) {
	// D at 3 and A at 5 each block the other's way home.
	s := burrow.NewState(1).
		WithRoom(1, burrow.Bronze).
		WithRoom(2, burrow.Copper).
		WithTile(3, burrow.Desert).
		WithTile(5, burrow.Amber)

	require.False(t, s.IsSolved())
	require.Empty(t, s.Moves())
}

func TestMoves_CrowdedHallwayStillExplorable(t *testing.T) {
	// Every resting tile but tile 1 is taken; room 0 holds a foreign B.
	s := burrow.NewState(2).
		WithRoom(0, burrow.Empty, burrow.Bronze).
		WithRoom(3, burrow.Empty, burrow.Desert).
		WithTile(0, burrow.Amber).
		WithTile(3, burrow.Amber).
		WithTile(5, burrow.Bronze).
		WithTile(7, burrow.Copper).
		WithTile(9, burrow.Copper).
		WithTile(10, burrow.Desert)

	var out bool
	for _, m := range s.Moves() {
		if m.From.Room == 0 {
			require.Equal(t, burrow.HallSpot(1), m.To)
			require.Equal(t, (2+1)*10, m.Cost)
			out = true
		}
	}
	require.True(t, out, "an unsettled room next to a free tile must yield a move")
}

// TestMoves_ReachableInvariants walks part of the reachable graph of the
// sample and checks conservation, positive costs and that settled rooms
// are never emptied.
func TestMoves_ReachableInvariants(t *testing.T) {
	start := mustParse(t, sampleDiagram, 2)
	census := start.Census()

	seen := map[burrow.State]bool{start: true}
	queue := []burrow.State{start}
	for len(queue) > 0 && len(seen) < 2000 {
		s := queue[0]
		queue = queue[1:]

		for _, m := range s.Moves() {
			require.Positive(t, m.Cost, "move %s", m)
			require.Equal(t, census, m.Next.Census(), "move %s", m)
			if m.From.Room >= 0 {
				require.False(t, s.Room(m.From.Room).IsSettled(), "move %s empties a settled room", m)
			}
			if !seen[m.Next] {
				seen[m.Next] = true
				queue = append(queue, m.Next)
			}
		}
	}
	require.GreaterOrEqual(t, len(seen), 2000)
}
