// Package burrow models the amphipod burrow rearrangement puzzle and solves
// it with uniform-cost search.
//
// A burrow is a hallway of HallLength tiles with NumRooms side rooms below
// it. Each room belongs to one token kind (Amber, Bronze, Copper, Desert)
// and holds Capacity tokens. Moving a token costs its kind's step cost
// (1, 10, 100, 1000) per tile walked. The puzzle is solved when every token
// sits in its own room.
//
// Rules enforced by the move generator:
//
//   - A token never stops on a hallway tile directly above a room entrance.
//   - A token in the hallway only walks into its own room, and only when no
//     foreign token is left inside.
//   - A token leaving a room stops in the hallway; it never walks straight
//     into another room.
//   - Paths may not cross occupied tiles.
//
// States are comparable values, so the search engine uses them as map keys
// directly, and every move yields a fresh copy.
//
// Example:
//
//	s, err := burrow.Parse(diagram, 2)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, err := burrow.Solve(context.Background(), s)
package burrow
