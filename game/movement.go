package game

// SlideLimit caps how far a slide is walked on the unbounded board.
const SlideLimit = 20

type MoveMode int

const (
	Step MoveMode = iota
	Slide
)

// Vector is a resolved movement direction.
type Vector struct {
	DX, DY int
	Slide  bool
}

// Reach is the number of cells a vector may be walked.
func (v Vector) Reach() int {
	if v.Slide {
		return SlideLimit
	}
	return 1
}

// MoveComponent groups the directions sharing a mode.
type MoveComponent struct {
	Mode MoveMode
	Dirs []Coord
}

// direction categories, relative to the owner
type dirCategory int

const (
	dirFO  dirCategory = iota // forward
	dirBO                     // backward
	dirLO                     // left
	dirRO                     // right
	dirFD                     // forward diagonals
	dirBD                     // backward diagonals
	dirO                      // orthogonals
	dirD                      // diagonals
	dirJO                     // orthogonal jumps
	dirJD                     // diagonal jumps
	dirJFO                    // forward jump
	dirJBO                    // backward jump
	dirJBD                    // backward diagonal jumps
	dirFK                     // forward knight
	dirBK                     // backward knight
)

func resolve(cat dirCategory, owner Owner) []Coord {
	f := owner.Forward()
	l := owner.Left()
	switch cat {
	case dirFO:
		return []Coord{{0, f}}
	case dirBO:
		return []Coord{{0, -f}}
	case dirLO:
		return []Coord{{l, 0}}
	case dirRO:
		return []Coord{{-l, 0}}
	case dirFD:
		return []Coord{{l, f}, {-l, f}}
	case dirBD:
		return []Coord{{l, -f}, {-l, -f}}
	case dirO:
		return []Coord{{0, f}, {0, -f}, {l, 0}, {-l, 0}}
	case dirD:
		return []Coord{{l, f}, {-l, f}, {l, -f}, {-l, -f}}
	case dirJO:
		return []Coord{{0, 2 * f}, {0, -2 * f}, {2 * l, 0}, {-2 * l, 0}}
	case dirJD:
		return []Coord{{2 * l, 2 * f}, {-2 * l, 2 * f}, {2 * l, -2 * f}, {-2 * l, -2 * f}}
	case dirJFO:
		return []Coord{{0, 2 * f}}
	case dirJBO:
		return []Coord{{0, -2 * f}}
	case dirJBD:
		return []Coord{{2 * l, -2 * f}, {-2 * l, -2 * f}}
	case dirFK:
		return []Coord{{l, 2 * f}, {-l, 2 * f}}
	case dirBK:
		return []Coord{{l, -2 * f}, {-l, -2 * f}}
	default:
		panic("unknown direction category")
	}
}

type moveSpec struct {
	mode MoveMode
	cats []dirCategory
}

func faceMoveSpec(face Face) []moveSpec {
	switch face {
	case Gyoku:
		return []moveSpec{{Step, []dirCategory{dirO, dirD}}}
	case Hi:
		return []moveSpec{{Slide, []dirCategory{dirO}}}
	case Cho:
		return []moveSpec{{Step, []dirCategory{dirO}}}
	case Han:
		return []moveSpec{{Slide, []dirCategory{dirFO, dirBO}}}
	case Chuu:
		return []moveSpec{{Step, []dirCategory{dirFO, dirBO}}}
	case Ou:
		return []moveSpec{{Step, []dirCategory{dirFO, dirBO}}, {Slide, []dirCategory{dirLO, dirRO}}}
	case Shu:
		return []moveSpec{{Step, []dirCategory{dirLO, dirRO}}, {Slide, []dirCategory{dirFO, dirBO}}}
	case Kaku:
		return []moveSpec{{Slide, []dirCategory{dirD}}}
	case Myou:
		return []moveSpec{{Step, []dirCategory{dirD}}}
	case Hon:
		return []moveSpec{{Slide, []dirCategory{dirBO, dirFD}}}
	case Ga:
		return []moveSpec{{Step, []dirCategory{dirBO, dirFD}}}
	case Zou:
		return []moveSpec{{Slide, []dirCategory{dirBD, dirFO}}}
	case Ken:
		return []moveSpec{{Step, []dirCategory{dirBD, dirFO}}}
	case Ki:
		return []moveSpec{{Step, []dirCategory{dirD, dirJO}}}
	case Hou:
		return []moveSpec{{Step, []dirCategory{dirO, dirJD}}}
	case Ro:
		return []moveSpec{{Step, []dirCategory{dirLO, dirRO, dirJFO, dirJBO}}}
	case Ja:
		return []moveSpec{{Step, []dirCategory{dirLO, dirRO, dirJFO, dirJBD}}}
	case Ba:
		return []moveSpec{{Step, []dirCategory{dirFK, dirBK}}}
	case Ryuu:
		return []moveSpec{{Step, []dirCategory{dirJD}}}
	default:
		panic("no movement for face " + face.String())
	}
}

// Vectors returns the movement vectors of a face for the given owner. Move
// generation and check detection both walk these.
func Vectors(face Face, owner Owner) []Vector {
	var out []Vector
	for _, spec := range faceMoveSpec(face) {
		for _, cat := range spec.cats {
			for _, dir := range resolve(cat, owner) {
				out = append(out, Vector{DX: dir.X, DY: dir.Y, Slide: spec.mode == Slide})
			}
		}
	}
	return out
}

// MoveComponents keeps the step/slide grouping, for movement diagrams.
func MoveComponents(face Face, owner Owner) []MoveComponent {
	specs := faceMoveSpec(face)
	out := make([]MoveComponent, 0, len(specs))
	for _, spec := range specs {
		var dirs []Coord
		for _, cat := range spec.cats {
			dirs = append(dirs, resolve(cat, owner)...)
		}
		out = append(out, MoveComponent{Mode: spec.mode, Dirs: dirs})
	}
	return out
}
