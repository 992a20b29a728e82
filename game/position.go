package game

import (
	"fmt"
	"sort"
	"strings"
)

// PositionRecord is one occurrence of a position. InCheck tells whether the
// side to move was left in check by the move that produced it.
type PositionRecord struct {
	InCheck bool
}

// History maps position fingerprints to their occurrences.
type History map[string][]PositionRecord

func (h History) Copy() History {
	out := make(History, len(h))
	for key, records := range h {
		out[key] = append([]PositionRecord(nil), records...)
	}
	return out
}

// Lookup returns the recorded occurrences of a fingerprint.
func (h History) Lookup(key string) []PositionRecord {
	return h[key]
}

// Record appends an occurrence and classifies the fingerprint's history.
func (h History) Record(key string, inCheck bool) Classification {
	h[key] = append(h[key], PositionRecord{InCheck: inCheck})
	return Classify(h[key])
}

// Classification is the verdict on a fingerprint's occurrence list.
type Classification int

const (
	Ongoing Classification = iota
	RepetitionWarning
	PerpetualCheckWarning
	Sennichite         // Draw by repetition
	PerpetualCheckLoss // The side that just moved loses
)

func (c Classification) String() string {
	switch c {
	case Ongoing:
		return "ongoing"
	case RepetitionWarning:
		return "repetition warning"
	case PerpetualCheckWarning:
		return "perpetual check warning"
	case Sennichite:
		return "sennichite"
	case PerpetualCheckLoss:
		return "perpetual check"
	default:
		return "unknown"
	}
}

// Terminal reports whether the classification ends the game.
func (c Classification) Terminal() bool {
	return c == Sennichite || c == PerpetualCheckLoss
}

// AllChecks reports whether every record was a check. Empty lists count as
// all checks.
func AllChecks(records []PositionRecord) bool {
	for _, r := range records {
		if !r.InCheck {
			return false
		}
	}
	return true
}

// Classify applies the repetition rules to one fingerprint's occurrences.
func Classify(records []PositionRecord) Classification {
	n := len(records)
	switch {
	case n >= 4 && AllChecks(records):
		return PerpetualCheckLoss
	case n >= 4:
		return Sennichite
	case n == 3 && AllChecks(records):
		return PerpetualCheckWarning
	case n == 3:
		return RepetitionWarning
	default:
		return Ongoing
	}
}

// Fingerprint is the canonical key of a position: the side to move, board
// pieces as offsets from Black's King and hand contents, both sorted. It is
// empty while Black's King is missing.
func Fingerprint(gs *GameState) string {
	bk, ok := gs.King(Black)
	if !ok {
		return ""
	}
	origin := gs.Pieces[bk].Pos

	var board, hand []string
	for _, p := range gs.Pieces {
		if p.OnBoard {
			board = append(board, fmt.Sprintf("%d,%d,%s,%s", p.Pos.X-origin.X, p.Pos.Y-origin.Y, p.Owner, p.Face))
		} else {
			hand = append(hand, fmt.Sprintf("%s,%s,%s", p.Owner, p.Cube, p.Face))
		}
	}
	sort.Strings(board)
	sort.Strings(hand)

	return fmt.Sprintf("%s|%s|%s", gs.Turn, strings.Join(board, ";"), strings.Join(hand, ";"))
}
