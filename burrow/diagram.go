package burrow

import (
	"fmt"
	"strings"
)

// Diagram layout: a top wall, the hallway row, one row per room depth, the
// bottom wall. Room r's slot sits at column roomColumn(r) of its row.
//
//	#############
//	#...........#
//	###B#C#B#D###
//	  #A#D#C#A#
//	  #########
const (
	hallRow      = 1
	firstRoomRow = 2
)

func roomColumn(r int) int { return 3 + 2*r }

// Rows inserted by Unfold after the first room row.
var unfoldRows = []string{
	"  #D#C#B#A#",
	"  #D#B#A#C#",
}

// Parse reads a burrow diagram whose rooms hold capacity tokens each.
//
// Errors (wrapped with the offending line):
//
//   - ErrBadCapacity if capacity is outside 1..MaxCapacity or the diagram
//     does not have exactly capacity room rows.
//   - ErrMalformedDiagram if a row is too short, a token stands on an
//     entrance tile, or a token floats above an empty slot.
//   - ErrUnknownToken for characters other than '.' and A–D in token cells.
//   - ErrConservation if a kind does not appear exactly capacity times.
func Parse(diagram string, capacity int) (State, error) {
	if capacity < 1 || capacity > MaxCapacity {
		return State{}, fmt.Errorf("%w: %d not in 1..%d", ErrBadCapacity, capacity, MaxCapacity)
	}

	lines := diagramLines(diagram)
	if rows := countRoomRows(lines); rows != capacity {
		return State{}, fmt.Errorf("%w: diagram has %d room rows, want %d", ErrBadCapacity, rows, capacity)
	}

	s := NewState(capacity)
	if err := parseHall(&s, lines[hallRow]); err != nil {
		return State{}, err
	}
	for d := 0; d < capacity; d++ {
		if err := parseRoomRow(&s, d, lines[firstRoomRow+d]); err != nil {
			return State{}, err
		}
	}

	if err := s.validate(); err != nil {
		return State{}, err
	}

	return s, nil
}

// ParseAuto reads a burrow diagram, taking the room capacity from the
// number of room rows.
func ParseAuto(diagram string) (State, error) {
	return Parse(diagram, countRoomRows(diagramLines(diagram)))
}

// Unfold turns a capacity-2 diagram into its capacity-4 variant by
// inserting two fixed rows below the first room row.
func Unfold(diagram string) string {
	lines := diagramLines(diagram)
	if len(lines) <= firstRoomRow {
		return diagram
	}
	out := make([]string, 0, len(lines)+len(unfoldRows))
	out = append(out, lines[:firstRoomRow+1]...)
	out = append(out, unfoldRows...)
	out = append(out, lines[firstRoomRow+1:]...)

	return strings.Join(out, "\n")
}

// String renders s in diagram form; Parse(s.String(), s.Capacity()) == s.
func (s State) String() string {
	var b strings.Builder
	b.WriteString(strings.Repeat("#", HallLength+2))
	b.WriteString("\n#")
	for _, k := range s.hall {
		b.WriteRune(k.Rune())
	}
	b.WriteString("#\n")

	for d := 0; d < s.Capacity(); d++ {
		if d == 0 {
			b.WriteString("###")
		} else {
			b.WriteString("  #")
		}
		for r := range s.rooms {
			b.WriteRune(s.rooms[r].slots[d].Rune())
			b.WriteByte('#')
		}
		if d == 0 {
			b.WriteString("##")
		}
		b.WriteByte('\n')
	}
	b.WriteString("  " + strings.Repeat("#", 2*NumRooms+1))

	return b.String()
}

// diagramLines splits the diagram and drops blank lines around it.
func diagramLines(diagram string) []string {
	lines := strings.Split(strings.ReplaceAll(diagram, "\r\n", "\n"), "\n")
	for len(lines) > 0 && strings.TrimSpace(lines[0]) == "" {
		lines = lines[1:]
	}
	for len(lines) > 0 && strings.TrimSpace(lines[len(lines)-1]) == "" {
		lines = lines[:len(lines)-1]
	}

	return lines
}

// countRoomRows counts consecutive rows after the hallway that carry a
// token cell in the first room column.
func countRoomRows(lines []string) int {
	n := 0
	for i := firstRoomRow; i < len(lines); i++ {
		line := lines[i]
		if len(line) <= roomColumn(0) || line[roomColumn(0)] == '#' || line[roomColumn(0)] == ' ' {
			break
		}
		n++
	}

	return n
}

func parseHall(s *State, line string) error {
	if len(line) < HallLength+2 || line[0] != '#' || line[HallLength+1] != '#' {
		return fmt.Errorf("%w: hallway row %q", ErrMalformedDiagram, line)
	}
	for t := 0; t < HallLength; t++ {
		k, ok := KindFromRune(rune(line[t+1]))
		if !ok {
			return fmt.Errorf("%w: %q at hallway tile %d", ErrUnknownToken, line[t+1], t)
		}
		if k != Empty && IsEntrance(t) {
			return fmt.Errorf("%w: %s stands on entrance tile %d", ErrMalformedDiagram, k, t)
		}
		s.hall[t] = k
	}

	return nil
}

func parseRoomRow(s *State, depth int, line string) error {
	if len(line) <= roomColumn(NumRooms-1) {
		return fmt.Errorf("%w: room row %d %q too short", ErrMalformedDiagram, depth, line)
	}
	for r := range s.rooms {
		c := line[roomColumn(r)]
		k, ok := KindFromRune(rune(c))
		if !ok {
			return fmt.Errorf("%w: %q in room %d row %d", ErrUnknownToken, c, r, depth)
		}
		s.rooms[r].slots[depth] = k
	}

	return nil
}

// validate checks the invariants the move generator relies on: no token
// floats above an empty slot and each kind appears capacity times.
func (s State) validate() error {
	for r, room := range s.rooms {
		for d := 1; d < room.capacity; d++ {
			if room.slots[d-1] != Empty && room.slots[d] == Empty {
				return fmt.Errorf("%w: room %d slot %d floats above an empty slot", ErrMalformedDiagram, r, d-1)
			}
		}
	}

	census := s.Census()
	for k := Amber; k <= Desert; k++ {
		if census[k] != s.Capacity() {
			return fmt.Errorf("%w: %d × %s, want %d", ErrConservation, census[k], k, s.Capacity())
		}
	}

	return nil
}
