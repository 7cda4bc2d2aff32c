package board

// GenerateMoves returns the pseudo-legal moves of the side to move in one
// slot. Only occupancy is checked: no check or pin filtering, no castling,
// en passant or promotion.
//
// Order is fixed: pawns, leapers, sliders, king; within each class by
// ascending origin square, then ascending destination square.
func GenerateMoves(p *Position, slot int) *MoveList {
	ml := NewMoveList()
	GenerateMovesInto(ml, p, slot)
	return ml
}

// GenerateMovesInto appends the moves of GenerateMoves to ml.
func GenerateMovesInto(ml *MoveList, p *Position, slot int) {
	s := p.Slot(slot)
	stm := s.SideToMove()
	us, them := s.Pieces(stm), s.Pieces(stm.Other())
	empty := ^s.Occupied()

	for pawns := s.Pawns & us; pawns != 0; {
		from := pawns.PopLowBit()
		addMoves(ml, from, pawnTargets(from, stm, empty, them))
	}

	for leapers := s.Leapers & us; leapers != 0; {
		from := leapers.PopLowBit()
		targets := Broadcast(from).KnightAttacks().Extract(0)
		addMoves(ml, from, targets&^us)
	}

	emptyLane := Broadcast(empty)
	for sliders := s.Sliders & us; sliders != 0; {
		from := sliders.PopLowBit()
		gen := Broadcast(from)
		var targets Lane
		if from&s.Diagonal != 0 {
			targets = targets.Or(gen.DiagonalAttacks(emptyLane))
		}
		if from&s.Orthogonal != 0 {
			targets = targets.Or(gen.OrthogonalAttacks(emptyLane))
		}
		addMoves(ml, from, targets.Extract(0)&^us)
	}

	for kings := s.Kings & us; kings != 0; {
		from := kings.PopLowBit()
		targets := Broadcast(from).KingAttacks().Extract(0)
		addMoves(ml, from, targets&^us)
	}
}

// pawnTargets merges single push, double push from the home rank (both
// squares must be empty) and diagonal captures onto enemy pieces.
func pawnTargets(from Bitboard, stm Color, empty, them Bitboard) Bitboard {
	if stm == White {
		push := from.North() & empty
		var double Bitboard
		if from&Rank2 != 0 {
			double = push.North() & empty
		}
		return push | double | (from.NorthWest()|from.NorthEast())&them
	}
	push := from.South() & empty
	var double Bitboard
	if from&Rank7 != 0 {
		double = push.South() & empty
	}
	return push | double | (from.SouthWest()|from.SouthEast())&them
}

func addMoves(ml *MoveList, from, targets Bitboard) {
	for targets != 0 {
		ml.Add(LaneMove{From: from, To: targets.PopLowBit()})
	}
}
