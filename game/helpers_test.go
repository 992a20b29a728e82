package game

func on(owner Owner, face Face, x, y int) Piece {
	p := NewPiece(0, owner, face.Cube(), face)
	p.Place(Coord{x, y})
	return p
}

func inHand(owner Owner, face Face) Piece {
	return NewPiece(0, owner, face.Cube(), face)
}

// position builds a state with Black to move from the given pieces, in order.
func position(pieces ...Piece) *GameState {
	gs := &GameState{Turn: Black, Difficulty: 2, History: History{}}
	for i, p := range pieces {
		p.ID = i
		gs.Pieces = append(gs.Pieces, p)
	}
	return gs
}

func destinations(moves []Relocation) []Coord {
	out := make([]Coord, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.To)
	}
	return out
}
