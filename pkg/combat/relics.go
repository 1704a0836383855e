package combat

import "go.uber.org/zap"

//Slot identifies the gear slot
type Slot string

//gear slots
const (
	Head   Slot = "head"
	Hands  Slot = "hands"
	Body   Slot = "body"
	Feet   Slot = "feet"
	Sphere Slot = "sphere"
	Rope   Slot = "rope"
)

//Slots in the order they are summed; map iteration is never used for sums
var Slots = []Slot{Head, Hands, Body, Feet, Sphere, Rope}

//MaxSubstats per gear piece
const MaxSubstats = 4

func (s Slot) Valid() bool {
	for _, v := range Slots {
		if v == s {
			return true
		}
	}
	return false
}

//Stat represents one main or sub stat line
type Stat struct {
	Type  string `yaml:"Type"`
	Value Value  `yaml:"Value"`
}

//GearPiece is the main stat and substats rolled on one slot
type GearPiece struct {
	Main Stat   `yaml:"Main"`
	Sub  []Stat `yaml:"Sub"`
}

//MainStatOptions lists the main stats each slot can roll
var MainStatOptions = map[Slot][]string{
	Head:   {"HP"},
	Hands:  {"ATK"},
	Body:   {"HP%", "ATK%", "DEF%", "暴擊率", "暴擊傷害", "治療量加成", "效果命中"},
	Feet:   {"HP%", "ATK%", "DEF%", "速度"},
	Sphere: {"HP%", "ATK%", "DEF%", "元素傷害加成"},
	Rope:   {"HP%", "ATK%", "DEF%", "擊破特攻", "能量恢復效率"},
}

//SubStatOptions lists the stats a substat line can roll
var SubStatOptions = []string{
	"固定HP", "固定ATK", "固定DEF", "HP%", "ATK%", "DEF%",
	"暴擊率", "暴擊傷害", "效果命中", "效果抵抗", "擊破特攻", "速度",
}

var mainStatValues = map[string]Value{
	"HP":     "705",
	"ATK":    "352",
	"HP%":    "43.2",
	"ATK%":   "43.2",
	"DEF%":   "54",
	"暴擊率":    "32.4",
	"暴擊傷害":   "64.8",
	"治療量加成":  "34.5",
	"效果命中":   "43.2",
	"速度":     "25",
	"元素傷害加成": "38.8",
	"擊破特攻":   "64.8",
	"能量恢復效率": "19.4",
}

//DefaultMainStat returns the max level value for a main stat, "" if unknown
func DefaultMainStat(t string) Value {
	return mainStatValues[t]
}

//ValidMainStat reports whether slot s can roll main stat t
func ValidMainStat(s Slot, t string) bool {
	for _, v := range MainStatOptions[s] {
		if v == t {
			return true
		}
	}
	return false
}

//AggregateRelics sums main stats and substats of every slot into one delta.
//Unknown stat types are logged and ignored.
func AggregateRelics(gear map[Slot]GearPiece, log *zap.SugaredLogger) Delta {
	var d Delta
	for _, s := range Slots {
		p, ok := gear[s]
		if !ok {
			continue
		}
		if p.Main.Type != "" {
			if !ValidMainStat(s, p.Main.Type) {
				log.Warnw("main stat not valid for slot", "slot", s, "stat", p.Main.Type)
			}
			addStat(&d, p.Main, log)
		}
		if len(p.Sub) > MaxSubstats {
			log.Warnw("too many substats, extra lines ignored", "slot", s, "count", len(p.Sub))
		}
		for i, sub := range p.Sub {
			if i == MaxSubstats {
				break
			}
			addStat(&d, sub, log)
		}
	}
	return d
}

func addStat(d *Delta, st Stat, log *zap.SugaredLogger) {
	if st.Type == "" || st.Value.Absent() {
		return
	}
	t := StrToStatType(st.Type)
	if t < 0 {
		log.Debugw("unknown stat type ignored", "type", st.Type, "value", st.Value)
		return
	}
	d.AddValue(t, st.Value)
}
