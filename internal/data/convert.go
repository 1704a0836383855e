package data

import (
	"errors"
	"fmt"

	"github.com/srliao/hsrcalc/pkg/combat"
)

//numbered effect slots per table
const (
	MaxLightConeEffects = 19
	MaxRelicEffects     = 5
)

//structured effect column suffixes, e.g. 效果3類型
const (
	colKind      = "類型"
	colScope     = "範圍"
	colTarget    = "對象"
	colCond      = "條件"
	colCondValue = "條件值"
	colValue     = "數值"
)

func effectCol(n int, suffix string) string {
	return fmt.Sprintf("效果%d%s", n, suffix)
}

//legacy light cone columns: value column, the effect kind it folds as and the
//column holding the attack types it is restricted to ("" for unconditional).
//The legacy 抗穿 column has always counted as vulnerability.
var legacyLightCone = []struct {
	col, kind, typeCol string
}{
	{"攻擊力", "攻擊力", ""},
	{"增攻", "增攻", "增攻類型"},
	{"增傷", "增傷", "增傷類型"},
	{"爆擊率", "爆擊率", ""},
	{"爆擊傷害", "爆擊傷害", ""},
	{"減防", "減防", "減防類型"},
	{"抗穿", "易傷", "抗穿類型"},
}

//legacy relic columns are 2p增傷 ... 4p減防
var legacyRelicKinds = []string{"增傷", "增攻", "爆擊率", "減防"}

var errNoName = errors.New("empty name")

func firstOf(r row, cols ...string) string {
	for _, c := range cols {
		if v := r.get(c); v != "" {
			return v
		}
	}
	return ""
}

func parseCharacter(r row) (combat.Character, error) {
	c := combat.Character{
		Name:      r.text("角色"),
		Path:      combat.Path(r.get("命途")),
		Element:   combat.Element(r.get("屬性")),
		Rarity:    parseInt(r.get("星數"), 0),
		BaseHP:    parseFloat(firstOf(r, "生命值", "基礎生命值")),
		BaseAtk:   parseFloat(firstOf(r, "攻擊力", "基礎攻擊力")),
		BaseDef:   parseFloat(firstOf(r, "防禦力", "基礎防禦力")),
		BaseSpeed: parseFloat(firstOf(r, "速度", "基礎速度")),
		EnergyMax: parseFloat(r.get("能量上限")),
	}
	if c.Name == "" {
		return c, errNoName
	}
	if c.Element != "" && !c.Element.Valid() {
		return c, fmt.Errorf("character %v has unknown element %q", c.Name, c.Element)
	}
	c.Multipliers = make(map[combat.AttackCategory]combat.Value)
	for _, a := range combat.AttackCategories {
		v := combat.Value(r.get(combat.MultiplierColumns[a]))
		if !v.Absent() {
			c.Multipliers[a] = v
		}
	}
	for i, col := range combat.TraceColumns {
		c.Traces[i] = combat.Value(r.get(col))
	}
	return c, nil
}

func parseLightCone(r row) (combat.LightCone, error) {
	l := combat.LightCone{
		Name:   r.text("光錐"),
		Path:   combat.Path(r.get("命途")),
		Rarity: parseInt(r.get("星數"), 0),
		Atk:    parseFloat(r.get("攻擊力白值")),
		HP:     parseFloat(r.get("生命值白值")),
		Def:    parseFloat(r.get("防禦力白值")),
	}
	if l.Name == "" {
		return l, errNoName
	}
	for _, c := range legacyLightCone {
		v := combat.Value(r.get(c.col))
		if v.Absent() {
			continue
		}
		e := combat.EffectDescriptor{Kind: c.kind, Value: v, Family: combat.FamilyLegacy}
		if c.typeCol != "" {
			e.Condition = combat.CondAttack
			e.ConditionValue = r.get(c.typeCol)
		}
		l.Effects = append(l.Effects, e)
	}
	l.Effects = append(l.Effects, structuredEffects(r, MaxLightConeEffects, false)...)
	return l, nil
}

func parseRelic(r row) (combat.Relic, error) {
	rel := combat.Relic{
		Name: r.text("儀器"),
		Kind: combat.RelicKind(r.get("種類")),
	}
	if rel.Name == "" {
		return rel, errNoName
	}
	for _, sc := range []combat.Scope{combat.Scope2P, combat.Scope4P} {
		prefix := "2p"
		if sc == combat.Scope4P {
			prefix = "4p"
		}
		for _, k := range legacyRelicKinds {
			v := combat.Value(r.get(prefix + k))
			if v.Absent() {
				continue
			}
			rel.Effects = append(rel.Effects, combat.EffectDescriptor{Kind: k, Scope: sc, Value: v, Family: combat.FamilyLegacy})
		}
	}
	rel.Effects = append(rel.Effects, structuredEffects(r, MaxRelicEffects, true)...)
	return rel, nil
}

//structuredEffects reads the numbered 效果N columns. Slots without a kind or
//value are dropped here; everything else is kept as is and judged when the
//effect is accumulated.
func structuredEffects(r row, max int, scoped bool) []combat.EffectDescriptor {
	var out []combat.EffectDescriptor
	for n := 1; n <= max; n++ {
		e := combat.EffectDescriptor{
			Kind:           r.get(effectCol(n, colKind)),
			Target:         r.get(effectCol(n, colTarget)),
			Condition:      r.get(effectCol(n, colCond)),
			ConditionValue: r.get(effectCol(n, colCondValue)),
			Value:          combat.Value(r.get(effectCol(n, colValue))),
			Family:         combat.FamilyStructured,
		}
		if e.Kind == "" || e.Kind == "0" || e.Value.Absent() {
			continue
		}
		if scoped {
			e.Scope = parseScope(r.get(effectCol(n, colScope)))
		}
		out = append(out, e)
	}
	return out
}

func parseScope(s string) combat.Scope {
	switch s {
	case "2P", "2p", "2":
		return combat.Scope2P
	case "4P", "4p", "4":
		return combat.Scope4P
	}
	return combat.Scope(s)
}

func parseRating(r row) combat.SubstatRating {
	return combat.SubstatRating{
		Stat: r.get("詞條"),
		Coeffs: map[combat.Priority]float64{
			combat.Important: parseFloat(r.get("重要")),
			combat.Secondary: parseFloat(r.get("次要")),
			combat.Unneeded:  parseFloat(r.get("不需要")),
		},
	}
}
