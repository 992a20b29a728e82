package game

import "kishogi/meta"

// Coord is a cell on the unbounded board.
type Coord struct {
	X, Y int
}

func (c Coord) Add(dx, dy int) Coord {
	return Coord{c.X + dx, c.Y + dy}
}

// Piece is a cube owned by a side. A piece that is not OnBoard is held in
// its owner's hand and Pos is meaningless.
type Piece struct {
	ID      int
	Owner   Owner
	Cube    Cube
	Face    Face
	Pos     Coord
	OnBoard bool
}

func NewPiece(id int, owner Owner, cube Cube, face Face) Piece {
	return Piece{ID: id, Owner: owner, Cube: cube, Face: face}
}

func (p *Piece) Place(at Coord) {
	p.Pos = at
	p.OnBoard = true
}

func (p *Piece) Lift() {
	p.Pos = Coord{}
	p.OnBoard = false
}

// MoveLogEntry is one committed action in the in-memory move log.
type MoveLogEntry struct {
	Num      int
	Owner    Owner
	Text     string
	Face     Face
	From     Coord
	HasFrom  bool
	To       Coord
	Snapshot []Piece
}

// GameState is the full dynamic state of a game. Search works on a Copy, so
// nothing here may be shared between copies.
type GameState struct {
	Pieces     []Piece // Indexed by action piece references
	Turn       Owner   // The side to move
	UseKi      bool    // Whether Ki cubes are in play
	Difficulty int     // Computer strength, 1..5
	History    History // Fingerprint occurrences, one per completed turn
	Log        []MoveLogEntry
	MoveNum    int
	LastFrom   *Coord
	LastTo     *Coord
}

// NewGameState creates the opening material, every cube in hand and
// Black to move.
func NewGameState(useKi bool) *GameState {
	gs := &GameState{
		Turn:       Black,
		UseKi:      useKi,
		Difficulty: meta.DIFFICULTY,
		History:    History{},
	}
	id := 0
	for _, owner := range []Owner{Black, White} {
		cubes := []Cube{GyokuCube, HiCube, KakuCube}
		if useKi {
			cubes = append(cubes, KiCube)
		}
		for _, cube := range cubes {
			gs.Pieces = append(gs.Pieces, NewPiece(id, owner, cube, cube.BaseFace()))
			id++
		}
	}
	return gs
}

// Copy returns a deep copy that shares nothing with gs.
func (gs *GameState) Copy() *GameState {
	piecesCopy := make([]Piece, len(gs.Pieces))
	copy(piecesCopy, gs.Pieces)

	logCopy := make([]MoveLogEntry, len(gs.Log))
	for i, entry := range gs.Log {
		entry.Snapshot = append([]Piece(nil), entry.Snapshot...)
		logCopy[i] = entry
	}

	return &GameState{
		Pieces:     piecesCopy,
		Turn:       gs.Turn,
		UseKi:      gs.UseKi,
		Difficulty: gs.Difficulty,
		History:    gs.History.Copy(),
		Log:        logCopy,
		MoveNum:    gs.MoveNum,
		LastFrom:   copyCoord(gs.LastFrom),
		LastTo:     copyCoord(gs.LastTo),
	}
}

func copyCoord(c *Coord) *Coord {
	if c == nil {
		return nil
	}
	v := *c
	return &v
}

// BoardMap indexes on-board pieces by cell.
func (gs *GameState) BoardMap() map[Coord]int {
	m := make(map[Coord]int, len(gs.Pieces))
	for i, p := range gs.Pieces {
		if p.OnBoard {
			m[p.Pos] = i
		}
	}
	return m
}

// PieceAt returns the index of the piece on a cell.
func (gs *GameState) PieceAt(at Coord) (int, bool) {
	for i, p := range gs.Pieces {
		if p.OnBoard && p.Pos == at {
			return i, true
		}
	}
	return -1, false
}

// King returns the index of an owner's King piece, placed or not.
func (gs *GameState) King(owner Owner) (int, bool) {
	for i, p := range gs.Pieces {
		if p.Owner == owner && p.Cube == GyokuCube {
			return i, true
		}
	}
	return -1, false
}

// KingPos returns where an owner's King stands, if it is on the board.
func (gs *GameState) KingPos(owner Owner) (Coord, bool) {
	ki, ok := gs.King(owner)
	if !ok || !gs.Pieces[ki].OnBoard {
		return Coord{}, false
	}
	return gs.Pieces[ki].Pos, true
}

// HandPieces lists the indices of the non-King pieces an owner holds in hand.
func (gs *GameState) HandPieces(owner Owner) []int {
	var out []int
	for i, p := range gs.Pieces {
		if p.Owner == owner && !p.OnBoard && p.Cube != GyokuCube {
			out = append(out, i)
		}
	}
	return out
}

// BoardPieces lists the indices of an owner's on-board pieces.
func (gs *GameState) BoardPieces(owner Owner) []int {
	var out []int
	for i, p := range gs.Pieces {
		if p.Owner == owner && p.OnBoard {
			out = append(out, i)
		}
	}
	return out
}

func (gs *GameState) SwitchTurn() {
	gs.Turn = gs.Turn.Opponent()
}

// Snapshot copies the piece collection.
func (gs *GameState) Snapshot() []Piece {
	return append([]Piece(nil), gs.Pieces...)
}
