package board

var turnLane = Broadcast(metaTurnMask)

// ApplyMove plays a batched move in all four slots at once.
//
// Every plane goes through the same read-clear-set sequence in every slot:
// membership of the origin square is snapshotted for all planes first, then
// origin and destination are cleared everywhere (which removes any captured
// piece), then the destination is set in exactly the planes the mover was
// in. A slot whose move is zero comes out unchanged. The side to move flips
// in every slot regardless.
//
// Castling rook moves, en-passant captures and promotions are not handled.
func (p *Position) ApplyMove(m Move) {
	from, to := m.From, m.To

	isPawn := p.Pawns.And(from).IsNotZeroMask()
	isLeaper := p.Leapers.And(from).IsNotZeroMask()
	isSlider := p.Sliders.And(from).IsNotZeroMask()
	isKing := p.Kings.And(from).IsNotZeroMask()
	isWhite := p.White.And(from).IsNotZeroMask()
	isBlack := p.Black.And(from).IsNotZeroMask()
	isDiag := p.Diagonal.And(from).IsNotZeroMask()
	isOrtho := p.Orthogonal.And(from).IsNotZeroMask()

	vacate := from.Or(to)
	p.Pawns = p.Pawns.AndNot(vacate).Or(to.And(isPawn))
	p.Leapers = p.Leapers.AndNot(vacate).Or(to.And(isLeaper))
	p.Sliders = p.Sliders.AndNot(vacate).Or(to.And(isSlider))
	p.Kings = p.Kings.AndNot(vacate).Or(to.And(isKing))
	p.White = p.White.AndNot(vacate).Or(to.And(isWhite))
	p.Black = p.Black.AndNot(vacate).Or(to.And(isBlack))
	p.Diagonal = p.Diagonal.AndNot(vacate).Or(to.And(isDiag))
	p.Orthogonal = p.Orthogonal.AndNot(vacate).Or(to.And(isOrtho))

	p.Metadata = p.Metadata.Xor(turnLane)
}

// ApplyLaneMove plays the same half-move in every slot.
func (p *Position) ApplyLaneMove(m LaneMove) {
	p.ApplyMove(m.Broadcast())
}
