package game

import "fmt"

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// PlacementText is the notation for putting a face on a cell from hand.
func PlacementText(face Face, at Coord) string {
	return fmt.Sprintf("%s↓%s", face.Kanji(), at)
}

// Describe renders an action in move-log notation. It must be called before
// the action is applied.
func Describe(gs *GameState, a Action) string {
	p := gs.Pieces[a.Piece]
	if a.Kind == DropAction {
		return PlacementText(a.Face, a.To)
	}

	if a.Capture != NoCapture {
		captured := gs.Pieces[a.Capture]
		text := fmt.Sprintf("%s%s×%s%s", p.Face.Kanji(), p.Pos, captured.Face.Kanji(), a.To)
		if a.Promote != NoFace && captured.Cube != GyokuCube {
			text += "→" + a.Promote.Kanji()
		}
		return text
	}

	text := fmt.Sprintf("%s%s→%s", p.Face.Kanji(), p.Pos, a.To)
	if p.Cube != GyokuCube {
		if flipped := p.Face.Opposite(); flipped != p.Face {
			text += "=" + flipped.Kanji()
		}
	}
	return text
}
