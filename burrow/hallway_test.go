package burrow_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/amphipod/burrow"
)

func TestHallway_Entrances(t *testing.T) {
	var got []int
	for tile := 0; tile < burrow.HallLength; tile++ {
		if burrow.IsEntrance(tile) {
			got = append(got, tile)
		}
	}
	require.Equal(t, []int{2, 4, 6, 8}, got)
	for r := 0; r < burrow.NumRooms; r++ {
		require.True(t, burrow.IsEntrance(burrow.Entrance(r)))
	}
}

func TestHallway_PathCost(t *testing.T) {
	var h burrow.Hallway
	h[1] = burrow.Amber
	h[7] = burrow.Desert

	cases := []struct {
		name     string
		from, to int
		fromRoom bool
		want     int
	}{
		{"same tile", 3, 3, false, 0},
		{"room to resting tile", 4, 5, true, 1},
		{"room to entrance tile", 4, 6, true, 0},
		{"room to occupied tile", 2, 1, true, 0},
		{"room past occupied tile", 2, 0, true, 0},
		{"room walks left", 6, 3, true, 3},
		{"room blocked on the right", 6, 9, true, 0},
		{"tile to entrance", 1, 2, false, 1},
		{"tile to entrance far", 7, 2, false, 5},
		{"tile to entrance past token", 3, 0, false, 0},
		// The origin is never part of the path.
		{"occupied origin", 1, 4, false, 3},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, h.PathCost(tc.from, tc.to, tc.fromRoom))
		})
	}
}

func TestHallway_CostHelpers(t *testing.T) {
	var h burrow.Hallway
	require.True(t, h.IsEmpty())
	require.Equal(t, 2, h.CostFromRoom(0, 0))
	require.Equal(t, 8, h.CostToRoom(10, 0))

	h[5] = burrow.Copper
	require.False(t, h.IsEmpty())
	require.Zero(t, h.CostToRoom(10, 0))
	require.Zero(t, h.CostFromRoom(3, 0))
}
