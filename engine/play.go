package engine

import (
	"fmt"
	"slices"

	"kishogi/game"
	"kishogi/utils"

	"github.com/rs/zerolog/log"
)

// resolvePromotion fills in or checks the promotion of a capture. A single
// choice is applied without asking; several need the action to name one.
// Taking the King offers none.
func resolvePromotion(gs *game.GameState, a game.Action) (game.Action, error) {
	if a.Kind != game.MoveAction {
		return a, nil
	}
	p := gs.Pieces[a.Piece]
	var promos []game.Face
	if a.IsCapture() && p.Cube != game.GyokuCube && !a.CapturesKing(gs) {
		promos = p.Face.Promotions()
	}

	switch {
	case len(promos) == 0 && a.Promote != game.NoFace:
		return a, fmt.Errorf("%s to %s: %w", p.Face, a.Promote, ErrInvalidPromotion)
	case len(promos) == 0:
		return a, nil
	case a.Promote == game.NoFace && len(promos) == 1:
		a.Promote = promos[0]
		return a, nil
	case a.Promote == game.NoFace:
		return a, fmt.Errorf("%s offers %v: %w", p.Face, promos, ErrPromotionRequired)
	case !slices.Contains(promos, a.Promote):
		return a, fmt.Errorf("%s to %s: %w", p.Face, a.Promote, ErrInvalidPromotion)
	}
	return a, nil
}

// Play commits an action for the side to move and runs the end of the turn.
func (e *Engine) Play(a game.Action) error {
	if e.outcome != nil {
		return ErrGameOver
	}
	if !e.ready {
		return ErrSetupIncomplete
	}
	gs := e.State
	if a.Piece < 0 || a.Piece >= len(gs.Pieces) {
		return fmt.Errorf("piece %d: %w", a.Piece, ErrIllegalAction)
	}
	if a.IsCapture() && (a.Capture < 0 || a.Capture >= len(gs.Pieces)) {
		return fmt.Errorf("capture %d: %w", a.Capture, ErrIllegalAction)
	}
	mover := gs.Pieces[a.Piece]
	if mover.Owner != gs.Turn {
		return fmt.Errorf("%s piece on %s's turn: %w", mover.Owner, gs.Turn, ErrNotYourTurn)
	}

	a, err := resolvePromotion(gs, a)
	if err != nil {
		return err
	}
	if utils.FindIndex(game.AllActions(gs, gs.Turn), a) < 0 {
		return fmt.Errorf("%+v: %w", a, ErrIllegalAction)
	}

	text := game.Describe(gs, a)
	kingTaken := a.CapturesKing(gs)
	var from *game.Coord
	if a.Kind == game.MoveAction {
		pos := mover.Pos
		from = &pos
	}
	game.Apply(gs, a)
	e.record(mover.Owner, text, mover.Face, from, a.To)
	e.turns++

	if kingTaken {
		e.finish(Outcome{Winner: mover.Owner, Reason: KingCaptured})
		return nil
	}
	e.endTurn()
	return nil
}

// endTurn strands unsupported pieces of the side that moved, passes the turn
// and checks for the end of the game.
func (e *Engine) endTurn() {
	gs := e.State
	mover := gs.Turn
	for _, i := range game.HandleStranding(gs) {
		log.Debug().Msgf("%s %s stranded at end of turn", mover, gs.Pieces[i].Cube)
	}
	gs.Log[len(gs.Log)-1].Snapshot = gs.Snapshot()
	gs.SwitchTurn()
	e.advisory = game.Ongoing

	if !game.HasLegalAction(gs, gs.Turn) {
		e.finish(Outcome{Winner: mover, Reason: NoLegalAction})
		return
	}

	inCheck := game.IsInCheck(gs, gs.Turn)
	if inCheck {
		log.Debug().Msgf("%s is in check", gs.Turn)
	}

	switch c := gs.History.Record(game.Fingerprint(gs), inCheck); c {
	case game.PerpetualCheckLoss:
		e.finish(Outcome{Winner: gs.Turn, Reason: PerpetualCheck})
		return
	case game.Sennichite:
		e.finish(Outcome{Draw: true, Reason: Sennichite})
		return
	case game.PerpetualCheckWarning, game.RepetitionWarning:
		e.advisory = c
		log.Warn().Msgf("game %s: %s", e.name, c)
	}

	if e.turns >= e.maxTurns {
		e.finish(Outcome{Draw: true, Reason: TurnLimit})
	}
}

func (e *Engine) finish(o Outcome) {
	e.outcome = &o
	log.Info().Msgf("game %s over after %d turns: %s", e.name, e.turns, o)
}
