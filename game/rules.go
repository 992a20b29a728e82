package game

// NoCapture marks a relocation onto an empty cell.
const NoCapture = -1

// Relocation is a legal destination for a board piece.
type Relocation struct {
	To      Coord
	Capture int // Index of the captured piece, NoCapture if none
}

func (r Relocation) IsCapture() bool {
	return r.Capture != NoCapture
}

// attacks reports whether the piece at index i reaches target, walking its
// vectors and stopping at occupied cells.
func attacks(gs *GameState, board map[Coord]int, i int, target Coord) bool {
	p := gs.Pieces[i]
	for _, v := range Vectors(p.Face, p.Owner) {
		for dist := 1; dist <= v.Reach(); dist++ {
			at := p.Pos.Add(v.DX*dist, v.DY*dist)
			if at == target {
				return true
			}
			if _, occupied := board[at]; occupied {
				break
			}
		}
	}
	return false
}

// IsInCheck reports whether any opposing piece can reach owner's King. A
// King that is not on the board is never in check.
func IsInCheck(gs *GameState, owner Owner) bool {
	king, ok := gs.KingPos(owner)
	if !ok {
		return false
	}
	board := gs.BoardMap()
	opponent := owner.Opponent()
	for i, p := range gs.Pieces {
		if p.Owner != opponent || !p.OnBoard {
			continue
		}
		if attacks(gs, board, i, king) {
			return true
		}
	}
	return false
}

// wouldBeLegal plays the relocation on gs, tests it and restores gs before
// returning, even if a test panics.
func wouldBeLegal(gs *GameState, i int, to Coord, capture int) bool {
	mover := &gs.Pieces[i]
	origPos, origOnBoard, origFace := mover.Pos, mover.OnBoard, mover.Face

	var capPos Coord
	var capOnBoard bool
	if capture != NoCapture {
		capPos, capOnBoard = gs.Pieces[capture].Pos, gs.Pieces[capture].OnBoard
	}

	defer func() {
		p := &gs.Pieces[i]
		p.Pos, p.OnBoard, p.Face = origPos, origOnBoard, origFace
		if capture != NoCapture {
			gs.Pieces[capture].Pos, gs.Pieces[capture].OnBoard = capPos, capOnBoard
		}
	}()

	mover.Place(to)
	if capture != NoCapture {
		gs.Pieces[capture].Lift()
	} else if mover.Cube != GyokuCube {
		mover.Face = mover.Face.Opposite()
	}

	owner := mover.Owner
	if mover.Cube == GyokuCube {
		// Kings keep exactly two cells apart.
		if other, ok := gs.KingPos(owner.Opponent()); ok && Chebyshev(to, other) != 2 {
			return false
		}
	} else {
		exempt := capture != NoCapture &&
			(gs.Pieces[capture].Cube == GyokuCube || gs.Pieces[capture].Cube == KiCube)
		if !exempt && !IsSupported(gs, owner, to, mover.Cube) {
			return false
		}
	}

	return !IsInCheck(gs, owner)
}

// LegalMoves lists the legal relocations of the board piece at index i.
func LegalMoves(gs *GameState, i int) []Relocation {
	p := gs.Pieces[i]
	if !p.OnBoard {
		return nil
	}
	board := gs.BoardMap()
	var moves []Relocation
	for _, v := range Vectors(p.Face, p.Owner) {
		for dist := 1; dist <= v.Reach(); dist++ {
			to := p.Pos.Add(v.DX*dist, v.DY*dist)
			if ti, occupied := board[to]; occupied {
				if gs.Pieces[ti].Owner != p.Owner && wouldBeLegal(gs, i, to, ti) {
					moves = append(moves, Relocation{To: to, Capture: ti})
				}
				break
			}
			if wouldBeLegal(gs, i, to, NoCapture) {
				moves = append(moves, Relocation{To: to, Capture: NoCapture})
			}
		}
	}
	return moves
}

// withTemporaryPiece runs fn with an extra piece placed on the board, then
// removes it.
func withTemporaryPiece(gs *GameState, owner Owner, face Face, at Coord, fn func() bool) bool {
	temp := NewPiece(-1, owner, face.Cube(), face)
	temp.Place(at)
	n := len(gs.Pieces)
	gs.Pieces = append(gs.Pieces, temp)
	defer func() { gs.Pieces = gs.Pieces[:n] }()
	return fn()
}

// LegalDrops lists the cells where owner may drop a hand piece showing face.
func LegalDrops(gs *GameState, owner Owner, face Face) []Coord {
	king, ok := gs.KingPos(owner)
	if !ok {
		return nil
	}
	opponent := owner.Opponent()
	oppKing, oppPlaced := gs.KingPos(opponent)
	oppInCheck := IsInCheck(gs, opponent)

	reach := 1
	if face.Cube() == KiCube {
		reach = 2
	}

	var drops []Coord
	for dx := -reach; dx <= reach; dx++ {
		for dy := -reach; dy <= reach; dy++ {
			if dx == 0 && dy == 0 {
				continue
			}
			at := king.Add(dx, dy)
			if _, occupied := gs.PieceAt(at); occupied {
				continue
			}
			if oppPlaced && Chebyshev(at, oppKing) <= 1 {
				continue
			}
			legal := withTemporaryPiece(gs, owner, face, at, func() bool {
				// A drop may not give a fresh check, and must not leave
				// the dropper in check.
				if !oppInCheck && IsInCheck(gs, opponent) {
					return false
				}
				return !IsInCheck(gs, owner)
			})
			if legal {
				drops = append(drops, at)
			}
		}
	}
	return drops
}

// HandleStranding captures every unsupported non-King piece of the side that
// just moved (gs.Turn). Stranded pieces go to the opponent's hand showing
// their base face.
func HandleStranding(gs *GameState) []int {
	mover := gs.Turn
	var stranded []int
	for i, p := range gs.Pieces {
		if p.Owner == mover && p.OnBoard && p.Cube != GyokuCube && !IsSupported(gs, p.Owner, p.Pos, p.Cube) {
			stranded = append(stranded, i)
		}
	}
	for _, i := range stranded {
		p := &gs.Pieces[i]
		p.Lift()
		p.Owner = mover.Opponent()
		p.Face = p.Cube.BaseFace()
	}
	return stranded
}

// HasLegalAction reports whether owner can move a board piece or drop a hand
// piece with any face.
func HasLegalAction(gs *GameState, owner Owner) bool {
	for _, i := range gs.BoardPieces(owner) {
		if len(LegalMoves(gs, i)) > 0 {
			return true
		}
	}
	for _, i := range gs.HandPieces(owner) {
		for _, face := range CubeFaces(gs.Pieces[i].Cube) {
			if len(LegalDrops(gs, owner, face)) > 0 {
				return true
			}
		}
	}
	return false
}

// WhiteKingPositions lists where White's King may be set up: exactly two
// cells from Black's King.
func WhiteKingPositions(gs *GameState) []Coord {
	black, ok := gs.KingPos(Black)
	if !ok {
		return nil
	}
	var out []Coord
	for dx := -2; dx <= 2; dx++ {
		for dy := -2; dy <= 2; dy++ {
			if max(abs(dx), abs(dy)) == 2 {
				out = append(out, black.Add(dx, dy))
			}
		}
	}
	return out
}
