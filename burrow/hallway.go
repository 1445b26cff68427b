package burrow

// HallLength is the number of hallway tiles.
const HallLength = 11

// NumRooms is the number of side rooms hanging off the hallway.
const NumRooms = NumKinds

// Hallway is the corridor connecting every room. Tiles in front of a room
// entrance can be walked through but never stopped on.
type Hallway [HallLength]Kind

// Entrance returns the hallway tile directly above room's entrance.
func Entrance(room int) int { return 2 + 2*room }

// IsEntrance reports whether tile sits above a room entrance.
func IsEntrance(tile int) bool {
	return tile >= Entrance(0) && tile <= Entrance(NumRooms-1) && tile%2 == 0
}

// IsEmpty reports whether no token stands in the hallway.
func (h Hallway) IsEmpty() bool {
	for _, k := range h {
		if k != Empty {
			return false
		}
	}

	return true
}

// PathCost returns the number of tiles walked from tile from to tile to, or
// 0 when the walk is impossible: from == to, a tile on the way (destination
// included, origin excluded) is occupied, or fromRoom is set and the
// destination is an entrance tile where tokens may not stop.
func (h Hallway) PathCost(from, to int, fromRoom bool) int {
	if fromRoom && IsEntrance(to) {
		return 0
	}
	if from == to {
		return 0
	}

	lo, hi, cost := from+1, to, to-from
	if from > to {
		lo, hi, cost = to, from-1, from-to
	}
	for t := lo; t <= hi; t++ {
		if h[t] != Empty {
			return 0
		}
	}

	return cost
}

// CostToRoom is the walk from a hallway tile to the entrance tile of room.
func (h Hallway) CostToRoom(tile, room int) int {
	return h.PathCost(tile, Entrance(room), false)
}

// CostFromRoom is the walk from the entrance tile of room to a resting tile.
func (h Hallway) CostFromRoom(room, tile int) int {
	return h.PathCost(Entrance(room), tile, true)
}
