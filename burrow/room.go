package burrow

import "fmt"

// MaxCapacity is the deepest room supported. Rooms are fixed-size arrays so
// that State stays comparable and is copied by value.
const MaxCapacity = 8

// Room is a side room holding up to Capacity tokens. Slot 0 is next to the
// entrance; slot Capacity-1 is against the back wall.
type Room struct {
	target   Kind
	capacity int
	slots    [MaxCapacity]Kind
}

// NewRoom builds a room for target with the given capacity. slots are
// listed from the entrance inward; missing trailing slots are empty.
// It panics on a capacity outside 1..MaxCapacity or too many slots.
func NewRoom(target Kind, capacity int, slots ...Kind) Room {
	if capacity < 1 || capacity > MaxCapacity {
		panic(fmt.Sprintf("burrow: room capacity %d out of range 1..%d", capacity, MaxCapacity))
	}
	if len(slots) > capacity {
		panic(fmt.Sprintf("burrow: %d slots exceed room capacity %d", len(slots), capacity))
	}
	r := Room{target: target, capacity: capacity}
	copy(r.slots[:], slots)

	return r
}

func (r Room) Target() Kind  { return r.target }
func (r Room) Capacity() int { return r.capacity }

// Slot returns the token at depth i (0 = entrance side).
func (r Room) Slot(i int) Kind { return r.slots[i] }

// Count returns how many slots hold k.
func (r Room) Count(k Kind) int {
	n := 0
	for i := 0; i < r.capacity; i++ {
		if r.slots[i] == k {
			n++
		}
	}

	return n
}

// IsSettled reports whether every occupied slot holds the target kind.
func (r Room) IsSettled() bool {
	for i := 0; i < r.capacity; i++ {
		if r.slots[i] != Empty && r.slots[i] != r.target {
			return false
		}
	}

	return true
}

// IsComplete reports whether the room is full of its target kind.
func (r Room) IsComplete() bool {
	return r.Count(r.target) == r.capacity
}

// Accepts reports whether k may enter: it must be the target kind and no
// foreign token may still be inside.
func (r Room) Accepts(k Kind) bool {
	return k != Empty && k == r.target && r.IsSettled() && r.slots[0] == Empty
}

// Accept drops k into the deepest empty slot and returns the number of
// steps taken from the entrance. Calling it when Accepts(k) is false is a
// bug in the caller and panics.
func (r *Room) Accept(k Kind) int {
	if !r.Accepts(k) {
		panic(fmt.Sprintf("burrow: room %s cannot accept %s", r.target, k))
	}
	for i := r.capacity - 1; i >= 0; i-- {
		if r.slots[i] == Empty {
			r.slots[i] = k
			return i + 1
		}
	}
	panic("burrow: accept on a full room")
}

// Take removes the token nearest the entrance if it has a reason to leave:
// it is foreign, or a foreign token is trapped beneath it. It returns the
// steps to the entrance and the removed kind. A settled or empty room
// yields ok == false.
func (r *Room) Take() (cost int, k Kind, ok bool) {
	for i := 0; i < r.capacity; i++ {
		if r.slots[i] == Empty {
			continue
		}
		if r.slots[i] == r.target && !r.foreignBelow(i) {
			return 0, Empty, false
		}
		k = r.slots[i]
		r.slots[i] = Empty

		return i + 1, k, true
	}

	return 0, Empty, false
}

func (r *Room) foreignBelow(i int) bool {
	for j := i + 1; j < r.capacity; j++ {
		if r.slots[j] != Empty && r.slots[j] != r.target {
			return true
		}
	}

	return false
}
