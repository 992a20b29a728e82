package searcher

import "kishogi/game"

func on(owner game.Owner, face game.Face, x, y int) game.Piece {
	p := game.NewPiece(0, owner, face.Cube(), face)
	p.Place(game.Coord{X: x, Y: y})
	return p
}

func inHand(owner game.Owner, face game.Face) game.Piece {
	return game.NewPiece(0, owner, face.Cube(), face)
}

func position(difficulty int, pieces ...game.Piece) *game.GameState {
	gs := &game.GameState{Turn: game.Black, Difficulty: difficulty, History: game.History{}}
	for i, p := range pieces {
		p.ID = i
		gs.Pieces = append(gs.Pieces, p)
	}
	return gs
}

// kingInReach has Black's boar next to White's King.
func kingInReach(difficulty int) *game.GameState {
	return position(difficulty,
		on(game.Black, game.Gyoku, 0, 0),
		on(game.White, game.Gyoku, 0, 2),
		on(game.Black, game.Cho, 0, 1),
	)
}

// opening is a freshly set up game without Ki.
func opening(difficulty int) *game.GameState {
	gs := game.NewGameState(false)
	gs.Difficulty = difficulty
	bk, _ := gs.King(game.Black)
	wk, _ := gs.King(game.White)
	gs.Pieces[bk].Place(game.Coord{})
	gs.Pieces[wk].Place(game.Coord{X: 0, Y: 2})
	return gs
}

func move(piece, x, y int) game.Action {
	return game.NewMove(piece, game.Relocation{To: game.Coord{X: x, Y: y}, Capture: game.NoCapture}, game.NoFace)
}
