package game

// Owner is one of the two sides.
type Owner int

const (
	Black Owner = iota
	White
)

func (o Owner) Opponent() Owner {
	if o == Black {
		return White
	}
	return Black
}

// Forward is the sign of the forward axis (+y for Black).
func (o Owner) Forward() int {
	if o == Black {
		return 1
	}
	return -1
}

// Left is the sign of the lateral axis pointing to the owner's left.
func (o Owner) Left() int {
	if o == Black {
		return -1
	}
	return 1
}

func (o Owner) String() string {
	if o == Black {
		return "Black"
	}
	return "White"
}

// Cube is the fixed category of a piece.
type Cube int

const (
	GyokuCube Cube = iota // King
	HiCube
	KakuCube
	KiCube // connective
)

func (c Cube) String() string {
	switch c {
	case GyokuCube:
		return "Gyoku"
	case HiCube:
		return "Hi"
	case KakuCube:
		return "Kaku"
	case KiCube:
		return "Ki"
	default:
		return "Unknown"
	}
}

// BaseFace is the unpromoted face a cube shows when it changes hands by stranding.
func (c Cube) BaseFace() Face {
	switch c {
	case HiCube:
		return Hi
	case KakuCube:
		return Kaku
	case KiCube:
		return Ki
	default:
		return Gyoku
	}
}

// Face is the current orientation of a piece within its cube. The zero value
// is NoFace and never appears on a piece.
type Face int

const (
	NoFace Face = iota
	Gyoku
	Hi
	Cho
	Han
	Chuu
	Ou
	Shu
	Kaku
	Myou
	Hon
	Ga
	Zou
	Ken
	Ki
	Hou
	Ro
	Ja
	Ba
	Ryuu
)

type faceInfo struct {
	name     string
	kanji    string
	english  string
	cube     Cube
	opposite Face
	promos   []Face
	value    int
}

var faces = [...]faceInfo{
	NoFace: {name: "None"},
	Gyoku:  {"Gyoku", "玉", "Jewel", GyokuCube, NoFace, nil, 0},
	Hi:     {"Hi", "飛", "Flying", HiCube, Cho, []Face{Chuu}, 80},
	Cho:    {"Cho", "猪", "Boar", HiCube, Hi, []Face{Ou, Shu}, 30},
	Han:    {"Han", "反", "Reverse", HiCube, Chuu, []Face{Shu}, 50},
	Chuu:   {"Chuu", "仲", "Between", HiCube, Han, []Face{Cho, Han, Ou}, 15},
	Ou:     {"Ou", "横", "Side", HiCube, Shu, []Face{Hi}, 55},
	Shu:    {"Shu", "竪", "Vertical", HiCube, Ou, []Face{Hi}, 55},
	Kaku:   {"Kaku", "角", "Horns", KakuCube, Myou, []Face{Ga, Ken}, 80},
	Myou:   {"Myou", "猫", "Cat", KakuCube, Kaku, []Face{Kaku}, 30},
	Hon:    {"Hon", "奔", "Flee", KakuCube, Ga, []Face{Kaku}, 60},
	Ga:     {"Ga", "瓦", "Tile", KakuCube, Hon, []Face{Hon, Myou}, 20},
	Zou:    {"Zou", "雑", "Misc", KakuCube, Ken, []Face{Kaku}, 60},
	Ken:    {"Ken", "犬", "Dog", KakuCube, Zou, []Face{Zou, Myou}, 20},
	Ki:     {"Ki", "麒", "Unicorn", KiCube, Hou, []Face{Ryuu, Ba}, 45},
	Hou:    {"Hou", "鳳", "Phoenix", KiCube, Ki, []Face{Ryuu, Ba}, 45},
	Ro:     {"Ro", "驢", "Donkey", KiCube, Ja, []Face{Ki, Hou}, 25},
	Ja:     {"Ja", "蛇", "Snake", KiCube, Ro, []Face{Ki, Hou}, 25},
	Ba:     {"Ba", "馬", "Horse", KiCube, Ryuu, []Face{Ja, Ro}, 20},
	Ryuu:   {"Ryuu", "龍", "Dragon", KiCube, Ba, []Face{Ja, Ro}, 20},
}

var cubeFaces = [...][]Face{
	GyokuCube: {Gyoku},
	HiCube:    {Hi, Cho, Han, Chuu, Ou, Shu},
	KakuCube:  {Kaku, Myou, Hon, Ga, Zou, Ken},
	KiCube:    {Ki, Hou, Ro, Ja, Ba, Ryuu},
}

// AllFaces lists every real face in declaration order.
func AllFaces() []Face {
	out := make([]Face, 0, len(faces)-1)
	for f := Gyoku; f <= Ryuu; f++ {
		out = append(out, f)
	}
	return out
}

// CubeFaces returns the faces of a cube in fixed order, base face first.
func CubeFaces(c Cube) []Face {
	return cubeFaces[c]
}

func (f Face) String() string  { return faces[f].name }
func (f Face) Kanji() string   { return faces[f].kanji }
func (f Face) English() string { return faces[f].english }
func (f Face) Cube() Cube      { return faces[f].cube }

// Value is the heuristic material value used by evaluation and ordering.
func (f Face) Value() int { return faces[f].value }

// Opposite is the face shown after a non-capturing move. The King has none
// and returns NoFace.
func (f Face) Opposite() Face { return faces[f].opposite }

// Promotions are the faces offered after this face captures.
func (f Face) Promotions() []Face { return faces[f].promos }

// BestPromotion picks the highest-valued promotion, the last listed on ties.
func (f Face) BestPromotion() (Face, bool) {
	promos := f.Promotions()
	if len(promos) == 0 {
		return NoFace, false
	}
	best := promos[0]
	for _, p := range promos[1:] {
		if p.Value() >= best.Value() {
			best = p
		}
	}
	return best, true
}
