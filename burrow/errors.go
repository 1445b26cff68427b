package burrow

import "errors"

var (
	// ErrMalformedDiagram indicates the diagram does not have the burrow shape.
	ErrMalformedDiagram = errors.New("burrow: malformed diagram")
	// ErrBadCapacity indicates a room capacity outside 1..MaxCapacity, or a
	// diagram whose number of room rows differs from the requested capacity.
	ErrBadCapacity = errors.New("burrow: bad room capacity")
	// ErrUnknownToken indicates a character that is neither a wall, '.' nor A–D.
	ErrUnknownToken = errors.New("burrow: unknown token")
	// ErrConservation indicates a kind whose total count differs from the room capacity.
	ErrConservation = errors.New("burrow: token count does not match room capacity")
	// ErrNotAdjacent indicates two consecutive states of a path that no single move connects.
	ErrNotAdjacent = errors.New("burrow: states are not one move apart")
)
