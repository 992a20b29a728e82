package game

// Chebyshev is the king-move distance between two cells.
func Chebyshev(a, b Coord) int {
	return max(abs(a.X-b.X), abs(a.Y-b.Y))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// anchoredKi finds the owner's on-board Ki cubes that are connected to its
// King: within 2 of the King, or adjacent to another anchored Ki. Just BFS.
func anchoredKi(gs *GameState, owner Owner) []Coord {
	king, hasKing := gs.KingPos(owner)
	if !hasKing {
		return nil
	}

	var kis []Coord
	for _, p := range gs.Pieces {
		if p.OnBoard && p.Owner == owner && p.Cube == KiCube {
			kis = append(kis, p.Pos)
		}
	}
	if len(kis) == 0 {
		return nil
	}

	visited := make([]bool, len(kis))
	var queue, anchored []Coord
	for i, at := range kis {
		if Chebyshev(at, king) <= 2 {
			visited[i] = true
			queue = append(queue, at)
		}
	}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		anchored = append(anchored, current)
		for i, at := range kis {
			if !visited[i] && Chebyshev(at, current) == 1 {
				visited[i] = true
				queue = append(queue, at)
			}
		}
	}
	return anchored
}

// IsSupported reports whether a non-King piece of the given cube may stand on
// a cell for owner. Computed from scratch on every call.
func IsSupported(gs *GameState, owner Owner, at Coord, cube Cube) bool {
	reach := 1
	if cube == KiCube {
		reach = 2
	}
	if king, ok := gs.KingPos(owner); ok && Chebyshev(at, king) <= reach {
		return true
	}
	for _, ki := range anchoredKi(gs, owner) {
		if Chebyshev(at, ki) == 1 {
			return true
		}
	}
	return false
}

// PieceSupported is IsSupported for a piece where it stands. Kings and hand
// pieces are always supported.
func PieceSupported(gs *GameState, i int) bool {
	p := gs.Pieces[i]
	if !p.OnBoard || p.Cube == GyokuCube {
		return true
	}
	return IsSupported(gs, p.Owner, p.Pos, p.Cube)
}
