package burrow

import "fmt"

// Spot is a token position: a slot of a room, or a hallway tile when Room is -1.
type Spot struct {
	Room  int // room index, or -1 for the hallway
	Index int // slot depth (0 = entrance side) or hallway tile
}

// HallSpot returns the Spot for hallway tile t.
func HallSpot(t int) Spot { return Spot{Room: -1, Index: t} }

// RoomSpot returns the Spot for slot i of room r.
func RoomSpot(r, i int) Spot { return Spot{Room: r, Index: i} }

func (p Spot) String() string {
	if p.Room < 0 {
		return fmt.Sprintf("tile %d", p.Index)
	}

	return fmt.Sprintf("room %d slot %d", p.Room, p.Index)
}

// Move relocates one token. Next is the resulting state; Cost is the number
// of tiles walked times the kind's step cost and is always positive.
type Move struct {
	Kind     Kind
	From, To Spot
	Cost     int
	Next     State
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s -> %s (%d)", m.Kind, m.From, m.To, m.Cost)
}

// Moves lists every legal move out of s. Tokens in the hallway may only walk
// into their own room, and only once it holds no foreign token. Tokens in a
// room may only walk out to a resting hallway tile. A solved state has no
// moves; an unsolved state may also have none when every path is blocked.
func (s State) Moves() []Move {
	if s.IsSolved() {
		return nil
	}

	var moves []Move
	for i := range s.rooms {
		moves = s.appendMovesIn(moves, i)
		moves = s.appendMovesOut(moves, i)
	}

	return moves
}

// appendMovesIn adds every hallway→room move into room i.
func (s State) appendMovesIn(moves []Move, i int) []Move {
	for tile, k := range s.hall {
		if k == Empty || !s.rooms[i].Accepts(k) {
			continue
		}
		walk := s.hall.CostToRoom(tile, i)
		if walk == 0 {
			continue
		}

		next := s
		next.hall[tile] = Empty
		depth := next.rooms[i].Accept(k)
		moves = append(moves, Move{
			Kind: k,
			From: HallSpot(tile),
			To:   RoomSpot(i, depth-1),
			Cost: (walk + depth) * k.StepCost(),
			Next: next,
		})
	}

	return moves
}

// appendMovesOut adds every room→hallway move out of room i.
func (s State) appendMovesOut(moves []Move, i int) []Move {
	room := s.rooms[i]
	depth, k, ok := room.Take()
	if !ok {
		return moves
	}

	for tile := 0; tile < HallLength; tile++ {
		walk := s.hall.CostFromRoom(i, tile)
		if walk == 0 {
			continue
		}

		next := s
		next.rooms[i] = room
		next.hall[tile] = k
		moves = append(moves, Move{
			Kind: k,
			From: RoomSpot(i, depth-1),
			To:   HallSpot(tile),
			Cost: (depth + walk) * k.StepCost(),
			Next: next,
		})
	}

	return moves
}
