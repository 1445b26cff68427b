package burrow

// Kind is the species of a token; Empty marks a free slot or tile.
type Kind uint8

const (
	Empty Kind = iota
	Amber
	Bronze
	Copper
	Desert
)

// NumKinds is the number of token kinds, one per room.
const NumKinds = 4

var (
	stepCosts = [NumKinds + 1]int{0, 1, 10, 100, 1000}
	kindRunes = [NumKinds + 1]byte{'.', 'A', 'B', 'C', 'D'}
)

// StepCost is the energy spent per tile moved. Empty costs nothing.
func (k Kind) StepCost() int {
	if k > Desert {
		return 0
	}

	return stepCosts[k]
}

// Rune returns the diagram character for k.
func (k Kind) Rune() rune {
	if k > Desert {
		return '?'
	}

	return rune(kindRunes[k])
}

func (k Kind) String() string { return string(k.Rune()) }

// Home is the index of the room whose target is k, or -1 for Empty.
func (k Kind) Home() int { return int(k) - 1 }

// KindFromRune parses a diagram character; '.' yields Empty.
func KindFromRune(r rune) (Kind, bool) {
	switch r {
	case '.':
		return Empty, true
	case 'A':
		return Amber, true
	case 'B':
		return Bronze, true
	case 'C':
		return Copper, true
	case 'D':
		return Desert, true
	}

	return Empty, false
}
