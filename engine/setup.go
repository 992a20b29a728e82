package engine

import (
	"fmt"

	"kishogi/game"

	"github.com/rs/zerolog/log"
)

// PlaceKing puts a King on the board during setup. Black goes first and may
// stand anywhere; White must stand exactly two cells from Black.
func (e *Engine) PlaceKing(owner game.Owner, at game.Coord) error {
	if e.ready {
		return fmt.Errorf("place %s king: %w", owner, ErrIllegalAction)
	}
	ki, ok := e.State.King(owner)
	if !ok {
		panic(fmt.Sprintf("no %s king in state", owner))
	}
	_, blackPlaced := e.State.KingPos(game.Black)
	if (owner == game.White) != blackPlaced {
		return fmt.Errorf("place %s king: %w", owner, ErrNotYourTurn)
	}
	if owner == game.White {
		found := false
		for _, c := range game.WhiteKingPositions(e.State) {
			found = found || c == at
		}
		if !found {
			return fmt.Errorf("place white king at %s: %w", at, ErrIllegalAction)
		}
	}

	e.State.Pieces[ki].Place(at)
	e.record(owner, game.PlacementText(game.Gyoku, at), game.Gyoku, nil, at)

	if owner == game.White {
		e.ready = true
		e.State.Turn = game.Black
		log.Info().Msgf("game %s set up, %s to move", e.name, e.State.Turn)
	}
	return nil
}

// Setup places Black's King at the origin and White's at a random legal cell.
func (e *Engine) Setup() error {
	if err := e.PlaceKing(game.Black, game.Coord{}); err != nil {
		return err
	}
	ring := game.WhiteKingPositions(e.State)
	return e.PlaceKing(game.White, ring[e.rng.Intn(len(ring))])
}

// record appends to the move log and tracks the last move.
func (e *Engine) record(owner game.Owner, text string, face game.Face, from *game.Coord, to game.Coord) {
	gs := e.State
	gs.MoveNum++
	entry := game.MoveLogEntry{
		Num:      gs.MoveNum,
		Owner:    owner,
		Text:     text,
		Face:     face,
		To:       to,
		Snapshot: gs.Snapshot(),
	}
	if from != nil {
		entry.From, entry.HasFrom = *from, true
	}
	gs.Log = append(gs.Log, entry)
	gs.LastFrom = from
	gs.LastTo = &to
	log.Debug().Msgf("%d. %s %s", entry.Num, owner, text)
}
