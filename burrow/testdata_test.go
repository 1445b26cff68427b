package burrow_test

// sampleDiagram is the canonical capacity-2 puzzle.
const sampleDiagram = `#############
#...........#
###B#C#B#D###
  #A#D#C#A#
  #########`

const (
	sampleCost         = 12521
	sampleUnfoldedCost = 44169
)
