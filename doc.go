// Package amphipod is the root of the burrow solver module: an amphipod
// rearrangement puzzle model and the uniform-cost search that solves it.
//
// What is in here?
//
//	burrow/   — Kind, Room, Hallway and State; the legal-move generator,
//	            the goal test, the diagram parser/renderer and Solve.
//	dijkstra/ — generic uniform-cost search over implicit graphs
//	            (any comparable node, any integer cost).
//	examples/ — a runnable program solving both room depths.
//
// Quick ASCII example:
//
//	#############
//	#...........#
//	###B#C#B#D###   ← rooms of depth 2, one per kind A–D
//	  #A#D#C#A#
//	  #########
//
// takes 12521 energy to sort; unfolded to depth 4 it takes 44169.
//
//	go get github.com/katalvlaran/amphipod
package amphipod
