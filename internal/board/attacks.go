package board

// Attacks returns, per slot, every square attacked by the pieces of us:
// pawn diagonals (forward for the given color), knight and king patterns,
// and slider rays gated by their traits. Own-occupied targets are included,
// so this is for scoring, not for move legality.
func Attacks(p *Position, us Lane, white bool) Lane {
	empty := p.Empty()

	pawns := p.Pawns.And(us)
	var attacks Lane
	if white {
		attacks = pawns.NorthEast().Or(pawns.NorthWest())
	} else {
		attacks = pawns.SouthEast().Or(pawns.SouthWest())
	}

	attacks = attacks.Or(p.Leapers.And(us).KnightAttacks())

	sliders := p.Sliders.And(us)
	attacks = attacks.Or(sliders.And(p.Diagonal).DiagonalAttacks(empty))
	attacks = attacks.Or(sliders.And(p.Orthogonal).OrthogonalAttacks(empty))

	return attacks.Or(p.Kings.And(us).KingAttacks())
}
