package board

var (
	notFileALane = Broadcast(NotFileA)
	notFileHLane = Broadcast(NotFileH)
)

// Compass shifts. East/west components are masked so nothing leaving one
// edge file reappears on the opposite file of a neighbouring rank.

// North shifts every slot one rank toward rank 8.
func (l Lane) North() Lane { return shl4(l, 8) }

// South shifts every slot one rank toward rank 1.
func (l Lane) South() Lane { return shr4(l, 8) }

// East shifts every slot one file toward the h-file.
func (l Lane) East() Lane { return and4(shl4(l, 1), notFileALane) }

// West shifts every slot one file toward the a-file.
func (l Lane) West() Lane { return and4(shr4(l, 1), notFileHLane) }

// NorthEast shifts every slot one square toward h8.
func (l Lane) NorthEast() Lane { return and4(shl4(l, 9), notFileALane) }

// NorthWest shifts every slot one square toward a8.
func (l Lane) NorthWest() Lane { return and4(shl4(l, 7), notFileHLane) }

// SouthEast shifts every slot one square toward h1.
func (l Lane) SouthEast() Lane { return and4(shr4(l, 7), notFileALane) }

// SouthWest shifts every slot one square toward a1.
func (l Lane) SouthWest() Lane { return and4(shr4(l, 9), notFileHLane) }
