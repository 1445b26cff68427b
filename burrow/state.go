package burrow

// State is one configuration of the burrow. It is a comparable value: it can
// key a map directly, and assigning it copies every room and tile, so a
// State handed out is never changed behind the holder's back.
type State struct {
	rooms [NumRooms]Room
	hall  Hallway
}

// NewState returns an empty burrow whose rooms hold capacity tokens each.
// Room i targets kind Amber+i. It panics on a capacity outside 1..MaxCapacity.
func NewState(capacity int) State {
	var s State
	for i := range s.rooms {
		s.rooms[i] = NewRoom(Kind(i+1), capacity)
	}

	return s
}

// WithRoom returns a copy of s with room i filled with slots, listed from
// the entrance inward.
func (s State) WithRoom(i int, slots ...Kind) State {
	s.rooms[i] = NewRoom(s.rooms[i].target, s.rooms[i].capacity, slots...)

	return s
}

// WithTile returns a copy of s with k standing on hallway tile t.
func (s State) WithTile(t int, k Kind) State {
	s.hall[t] = k

	return s
}

func (s State) Room(i int) Room  { return s.rooms[i] }
func (s State) Hallway() Hallway { return s.hall }
func (s State) Capacity() int    { return s.rooms[0].capacity }

// Census counts tokens per kind over rooms and hallway, indexed by Kind.
// Index Empty counts free room slots and free hallway tiles.
func (s State) Census() [NumKinds + 1]int {
	var c [NumKinds + 1]int
	for _, r := range s.rooms {
		for i := 0; i < r.capacity; i++ {
			c[r.slots[i]]++
		}
	}
	for _, k := range s.hall {
		c[k]++
	}

	return c
}

// IsSolved reports whether the hallway is empty and every room is settled.
func (s State) IsSolved() bool {
	if !s.hall.IsEmpty() {
		return false
	}
	for _, r := range s.rooms {
		if !r.IsSettled() {
			return false
		}
	}

	return true
}
