package statespace

// Ahead returns the State reached by advancing from s, regardless of
// whether the target cell is open.
func Ahead(s State) State {
	dr, dc := s.Heading.Delta()
	return State{Pos: s.Pos.Add(dr, dc), Heading: s.Heading}
}

// Moves enumerates the legal transitions out of s, in the order
// advance (if open), rotate-left, rotate-right.
// Illegal advances are omitted rather than reported.
func Moves(m Opener, s State, c Costs) []Move {
	return AppendMoves(make([]Move, 0, 3), m, s, c)
}

// AppendMoves is Moves appending into dst, so a search loop can reuse one buffer.
func AppendMoves(dst []Move, m Opener, s State, c Costs) []Move {
	if next := Ahead(s); m.IsOpen(next.Pos) {
		dst = append(dst, Move{Kind: Advance, To: next, Delta: c.Step})
	}
	dst = append(dst,
		Move{Kind: RotateLeft, To: State{Pos: s.Pos, Heading: s.Heading.Left()}, Delta: c.Turn},
		Move{Kind: RotateRight, To: State{Pos: s.Pos, Heading: s.Heading.Right()}, Delta: c.Turn},
	)

	return dst
}
