package engine

import (
	"context"
	"fmt"
	"time"

	"kishogi/experiments/metrics"
	"kishogi/game"
	"kishogi/searcher/agent"

	"github.com/rs/zerolog/log"
)

type thought struct {
	action game.Action
	ok     bool
	metric metrics.SearchMetric
}

// think runs the agent on a private copy of the state. A result that arrives
// after ctx is done is dropped; the agent stays busy until then.
func (e *Engine) think(ctx context.Context, a agent.Agent) (thought, error) {
	snapshot := e.State.Copy()
	done := make(chan thought, 1)
	go func() {
		action, ok, metric := a.FindAction(snapshot)
		done <- thought{action: action, ok: ok, metric: metric}
	}()

	select {
	case <-ctx.Done():
		return thought{}, ctx.Err()
	case t := <-done:
		return t, nil
	}
}

// Run plays the game to the end with the engine's agents, setting up the
// Kings first if needed. When ctx is cancelled mid-search the agent keeps
// searching in the background, so the agents of a cancelled Run must not be
// used again.
func (e *Engine) Run(ctx context.Context) (Outcome, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{Name: e.name, StartTime: time.Now()}
	var moveMetrics []metrics.MoveMetric

	if !e.ready {
		if err := e.Setup(); err != nil {
			return Outcome{}, gameMetric, nil, fmt.Errorf("setup: %w", err)
		}
	}
	log.Info().Msgf("game %s started, %s to move", e.name, e.State.Turn)

	for e.outcome == nil {
		if err := ctx.Err(); err != nil {
			return Outcome{}, gameMetric, moveMetrics, err
		}

		owner := e.State.Turn
		t, err := e.think(ctx, e.Agents[owner])
		if err != nil {
			return Outcome{}, gameMetric, moveMetrics, err
		}
		if !t.ok {
			return Outcome{}, gameMetric, moveMetrics, fmt.Errorf("%s: %w", owner, ErrNoAction)
		}

		if err := e.Play(bestPromotion(e.State, t.action)); err != nil {
			return Outcome{}, gameMetric, moveMetrics, fmt.Errorf("%s agent: %w", owner, err)
		}
		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.turns,
			Player:       owner.String(),
			Action:       e.State.Log[len(e.State.Log)-1].Text,
			SearchMetric: t.metric,
		})
	}

	outcome := *e.outcome
	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.turns
	gameMetric.Reason = string(outcome.Reason)
	if !outcome.Draw {
		gameMetric.Winner = outcome.Winner.String()
	}
	return outcome, gameMetric, moveMetrics, nil
}

// bestPromotion picks the highest-valued promotion for a capture that left
// the choice open.
func bestPromotion(gs *game.GameState, a game.Action) game.Action {
	if !a.IsCapture() || a.Promote != game.NoFace || a.Piece < 0 || a.Piece >= len(gs.Pieces) ||
		a.Capture < 0 || a.Capture >= len(gs.Pieces) {
		return a
	}
	p := gs.Pieces[a.Piece]
	if p.Cube == game.GyokuCube || a.CapturesKing(gs) {
		return a
	}
	if best, ok := p.Face.BestPromotion(); ok {
		a.Promote = best
	}
	return a
}
