package combat

//Element is the damage type of a character
type Element string

//elements
const (
	Physical  Element = "物理"
	Fire      Element = "火"
	Ice       Element = "冰"
	Lightning Element = "雷"
	Wind      Element = "風"
	Quantum   Element = "量子"
	Imaginary Element = "虛數"
)

var Elements = []Element{Physical, Fire, Ice, Lightning, Wind, Quantum, Imaginary}

//Path is the affinity shared by characters and light cones
type Path string

//paths
const (
	Destruction  Path = "毀滅"
	Hunt         Path = "巡獵"
	Erudition    Path = "智識"
	Harmony      Path = "同諧"
	Nihility     Path = "虛無"
	Preservation Path = "存護"
	Abundance    Path = "豐饒"
	Remembrance  Path = "記憶"
)

var Paths = []Path{Destruction, Hunt, Erudition, Harmony, Nihility, Preservation, Abundance, Remembrance}

func (e Element) Valid() bool {
	for _, v := range Elements {
		if v == e {
			return true
		}
	}
	return false
}

func (p Path) Valid() bool {
	for _, v := range Paths {
		if v == p {
			return true
		}
	}
	return false
}
