package combat

import (
	"fmt"
	"strings"
)

//StatType indexes a stat bucket
type StatType int

//stat types; percent buckets hold percent points (43.2 == 43.2%)
const (
	ATKP StatType = iota
	ATK
	HPP
	HP
	DEFP
	DEF
	SPDP
	SPD
	CR
	CD
	DmgP
	Vuln
	DefRed
	ResPen
	BE
	Heal
	EHR
	EffRES
	ERR
	EndStatType
)

var StatTypeString = [...]string{
	"atk%",
	"atk",
	"hp%",
	"hp",
	"def%",
	"def",
	"spd%",
	"spd",
	"cr",
	"cd",
	"dmg%",
	"vuln",
	"def-",
	"res-",
	"be",
	"heal",
	"ehr",
	"eff res",
	"err",
}

func (s StatType) String() string {
	if s < 0 || s >= EndStatType {
		return "invalid"
	}
	return StatTypeString[s]
}

//statLabels maps every label used by the tables and gear onto a bucket. Both
//the relic stat names and the effect type names live here; they overlap.
var statLabels = map[string]StatType{
	//relic main/sub stats
	"ATK%":   ATKP,
	"ATK":    ATK,
	"固定ATK":  ATK,
	"HP%":    HPP,
	"HP":     HP,
	"固定HP":   HP,
	"DEF%":   DEFP,
	"DEF":    DEF,
	"固定DEF":  DEF,
	"速度":     SPD,
	"暴擊率":    CR,
	"暴擊傷害":   CD,
	"元素傷害加成": DmgP,
	"擊破特攻":   BE,
	"治療量加成":  Heal,
	"效果命中":   EHR,
	"效果抵抗":   EffRES,
	"能量恢復效率": ERR,
	//effect types
	"攻擊力":    ATKP,
	"增攻":     ATKP,
	"增傷":     DmgP,
	"爆擊率":    CR,
	"爆擊傷害":   CD,
	"減防":     DefRed,
	"生命值":    HPP,
	"防禦力":    DEFP,
	"速度%":    SPDP,
	"抗穿":     ResPen,
	"易傷":     Vuln,
	"固定速度":   SPD,
	"效果抗性":   EffRES,
}

//StrToStatType resolves a table label; returns -1 when unknown
func StrToStatType(s string) StatType {
	if t, ok := statLabels[strings.TrimSpace(s)]; ok {
		return t
	}
	for i, v := range StatTypeString {
		if v == s {
			return StatType(i)
		}
	}
	return -1
}

//Delta accumulates stat contributions by bucket
type Delta [EndStatType]float64

//Add folds another delta into d
func (d *Delta) Add(o Delta) {
	for i := range d {
		d[i] += o[i]
	}
}

//AddValue folds a raw value into bucket t. Absent or unparseable values
//contribute nothing; returns whether anything was added.
func (d *Delta) AddValue(t StatType, v Value) bool {
	if t < 0 || t >= EndStatType {
		return false
	}
	f, ok := v.Float()
	if !ok {
		return false
	}
	d[t] += f
	return true
}

func (d Delta) String() string {
	var sb strings.Builder
	for i, v := range d {
		if v != 0 {
			sb.WriteString(fmt.Sprintf("%v: %.3f ", StatType(i), v))
		}
	}
	return sb.String()
}
