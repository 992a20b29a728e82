package game

// Material adjustments used by Evaluate.
const (
	SupportedBonus   = 10
	UnsupportedMalus = 20
	ProximityRadius  = 5
	CheckBonus       = 30
)

// Evaluate scores the position from owner's point of view: material with a
// bonus for supported pieces and a heavy malus for pieces about to be
// stranded, closeness of owner's pieces to the opposing King, and check.
func Evaluate(gs *GameState, owner Owner) int {
	opponent := owner.Opponent()
	score := 0

	for i, p := range gs.Pieces {
		if p.Cube == GyokuCube {
			continue
		}
		sign := 1
		if p.Owner != owner {
			sign = -1
		}
		val := p.Face.Value()
		switch {
		case !p.OnBoard:
			score += sign * val
		case PieceSupported(gs, i):
			score += sign * (val + SupportedBonus)
		default:
			score -= sign * (val + UnsupportedMalus)
		}
	}

	if king, ok := gs.KingPos(opponent); ok {
		for _, p := range gs.Pieces {
			if p.Owner == owner && p.OnBoard && p.Cube != GyokuCube {
				score += max(0, ProximityRadius-Chebyshev(p.Pos, king))
			}
		}
	}

	if IsInCheck(gs, opponent) {
		score += CheckBonus
	}
	if IsInCheck(gs, owner) {
		score -= CheckBonus
	}
	return score
}
