package board

// Kogge-Stone occluded fills. Each fill extends the generator squares through
// the empty set by 1, 2 and then 4 steps, so a ray of up to 7 squares is
// covered with three propagation rounds. The result holds the generators and
// the empty squares they slide over, not the blocker: shift it once more in
// the same direction to get the attack set.

func fill(g, empty Lane, step func(Lane) Lane) Lane {
	g = g.Or(empty.And(step(g)))
	e := empty.And(step(empty))
	g = g.Or(e.And(step(step(g))))
	e = e.And(step(step(e)))
	return g.Or(e.And(step(step(step(step(g))))))
}

// FillNorth floods the generator toward rank 8 through empty squares.
func (l Lane) FillNorth(empty Lane) Lane { return fill(l, empty, Lane.North) }

// FillSouth floods the generator toward rank 1 through empty squares.
func (l Lane) FillSouth(empty Lane) Lane { return fill(l, empty, Lane.South) }

// FillEast floods the generator toward the h-file through empty squares.
func (l Lane) FillEast(empty Lane) Lane { return fill(l, empty, Lane.East) }

// FillWest floods the generator toward the a-file through empty squares.
func (l Lane) FillWest(empty Lane) Lane { return fill(l, empty, Lane.West) }

// FillNorthEast floods the generator toward h8 through empty squares.
func (l Lane) FillNorthEast(empty Lane) Lane { return fill(l, empty, Lane.NorthEast) }

// FillNorthWest floods the generator toward a8 through empty squares.
func (l Lane) FillNorthWest(empty Lane) Lane { return fill(l, empty, Lane.NorthWest) }

// FillSouthEast floods the generator toward h1 through empty squares.
func (l Lane) FillSouthEast(empty Lane) Lane { return fill(l, empty, Lane.SouthEast) }

// FillSouthWest floods the generator toward a1 through empty squares.
func (l Lane) FillSouthWest(empty Lane) Lane { return fill(l, empty, Lane.SouthWest) }

// DiagonalAttacks returns the bishop-style rays from every set square,
// stopping on (and including) the first blocker.
func (l Lane) DiagonalAttacks(empty Lane) Lane {
	return l.FillNorthEast(empty).NorthEast().
		Or(l.FillNorthWest(empty).NorthWest()).
		Or(l.FillSouthEast(empty).SouthEast()).
		Or(l.FillSouthWest(empty).SouthWest())
}

// OrthogonalAttacks returns the rook-style rays from every set square,
// stopping on (and including) the first blocker.
func (l Lane) OrthogonalAttacks(empty Lane) Lane {
	return l.FillNorth(empty).North().
		Or(l.FillSouth(empty).South()).
		Or(l.FillEast(empty).East()).
		Or(l.FillWest(empty).West())
}

// KnightAttacks returns the knight pattern of every set square.
func (l Lane) KnightAttacks() Lane {
	n, s, e, w := l.North(), l.South(), l.East(), l.West()
	return n.NorthEast().Or(n.NorthWest()).
		Or(s.SouthEast()).Or(s.SouthWest()).
		Or(e.NorthEast()).Or(e.SouthEast()).
		Or(w.NorthWest()).Or(w.SouthWest())
}

// KingAttacks returns the king pattern of every set square.
func (l Lane) KingAttacks() Lane {
	n, s, e, w := l.North(), l.South(), l.East(), l.West()
	return n.Or(s).Or(e).Or(w).
		Or(n.East()).Or(n.West()).
		Or(s.East()).Or(s.West())
}
