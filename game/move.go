package game

// ActionKind distinguishes board relocations from drops.
type ActionKind int

const (
	MoveAction ActionKind = iota
	DropAction
)

// Action is a move of a board piece or a drop of a hand piece.
type Action struct {
	Kind    ActionKind
	Piece   int   // Index of the acting piece in GameState.Pieces
	To      Coord // Destination cell
	Capture int   // Captured piece index for moves, NoCapture otherwise
	Promote Face  // Chosen promotion for capturing moves, NoFace if none
	Face    Face  // Face shown by a dropped piece
}

func NewMove(piece int, r Relocation, promote Face) Action {
	return Action{Kind: MoveAction, Piece: piece, To: r.To, Capture: r.Capture, Promote: promote}
}

func NewDrop(piece int, face Face, to Coord) Action {
	return Action{Kind: DropAction, Piece: piece, To: to, Capture: NoCapture, Face: face}
}

func (a Action) IsCapture() bool {
	return a.Kind == MoveAction && a.Capture != NoCapture
}

// CapturesKing reports whether the action takes the opposing King.
func (a Action) CapturesKing(gs *GameState) bool {
	return a.IsCapture() && gs.Pieces[a.Capture].Cube == GyokuCube
}

// Undo records what Apply changed so Revert can restore it exactly.
type Undo struct {
	pos        Coord
	onBoard    bool
	face       Face
	capture    int
	capPos     Coord
	capOnBoard bool
	capOwner   Owner
	capFace    Face
}

// Apply plays the action on gs without any end-of-turn processing. A
// non-capturing move flips the mover (Kings never flip); a capture applies
// the chosen promotion and hands the captured piece to the mover, except a
// King, which only leaves the board and never promotes the taker.
func Apply(gs *GameState, a Action) Undo {
	p := &gs.Pieces[a.Piece]
	u := Undo{pos: p.Pos, onBoard: p.OnBoard, face: p.Face, capture: NoCapture}

	switch a.Kind {
	case MoveAction:
		if a.Capture != NoCapture {
			c := &gs.Pieces[a.Capture]
			u.capture = a.Capture
			u.capPos, u.capOnBoard, u.capOwner, u.capFace = c.Pos, c.OnBoard, c.Owner, c.Face
			c.Lift()
			if c.Cube != GyokuCube {
				c.Owner = p.Owner
			}
			p.Place(a.To)
			if a.Promote != NoFace && c.Cube != GyokuCube {
				p.Face = a.Promote
			}
		} else {
			p.Place(a.To)
			if p.Cube != GyokuCube {
				p.Face = p.Face.Opposite()
			}
		}
	case DropAction:
		p.Face = a.Face
		p.Place(a.To)
	}
	return u
}

// Revert undoes Apply.
func Revert(gs *GameState, a Action, u Undo) {
	p := &gs.Pieces[a.Piece]
	p.Pos, p.OnBoard, p.Face = u.pos, u.onBoard, u.face
	if u.capture != NoCapture {
		c := &gs.Pieces[u.capture]
		c.Pos, c.OnBoard, c.Owner, c.Face = u.capPos, u.capOnBoard, u.capOwner, u.capFace
	}
}

// AllActions enumerates every legal action for owner: board moves first, a
// capture expanded once per promotion choice, then drops of every hand piece
// with every face of its cube. Taking the King ends the game, so it never
// carries a promotion.
func AllActions(gs *GameState, owner Owner) []Action {
	var actions []Action
	for _, i := range gs.BoardPieces(owner) {
		p := gs.Pieces[i]
		for _, r := range LegalMoves(gs, i) {
			promos := p.Face.Promotions()
			if r.IsCapture() && p.Cube != GyokuCube && gs.Pieces[r.Capture].Cube != GyokuCube && len(promos) > 0 {
				for _, promo := range promos {
					actions = append(actions, NewMove(i, r, promo))
				}
				continue
			}
			actions = append(actions, NewMove(i, r, NoFace))
		}
	}

	for _, i := range gs.HandPieces(owner) {
		for _, face := range CubeFaces(gs.Pieces[i].Cube) {
			for _, to := range LegalDrops(gs, owner, face) {
				actions = append(actions, NewDrop(i, face, to))
			}
		}
	}
	return actions
}
