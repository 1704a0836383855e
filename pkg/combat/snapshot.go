package combat

//StatBlock is the resolved stat sheet of a build. Bonus fields are percent
//points. CritRate is stored unclamped; it is capped only when the expected
//damage is computed.
type StatBlock struct {
	BaseAtk   float64
	BaseHP    float64
	BaseDef   float64
	BaseSpeed float64

	TotalAtk   float64
	TotalHP    float64
	TotalDef   float64
	TotalSpeed float64

	AtkBonus   float64
	HPBonus    float64
	DefBonus   float64
	SpeedBonus float64

	DmgBonus            float64
	CritRate            float64
	CritDmg             float64
	Vulnerability       float64
	DefReduction        float64
	ResistanceReduction float64
	BreakEffect         float64
	HealingBonus        float64
	EffectHit           float64
	EffectRes           float64
	EnergyRegen         float64

	SkillMultiplier float64
}

//base crit stats every character starts with
const (
	BaseCritRate = 5
	BaseCritDmg  = 50
)

//snapshot combines base values with a delta: total = base*(1+bonus/100)+flat
func snapshot(baseAtk, baseHP, baseDef, baseSpeed float64, d Delta) StatBlock {
	s := StatBlock{
		BaseAtk:   baseAtk,
		BaseHP:    baseHP,
		BaseDef:   baseDef,
		BaseSpeed: baseSpeed,

		AtkBonus:   d[ATKP],
		HPBonus:    d[HPP],
		DefBonus:   d[DEFP],
		SpeedBonus: d[SPDP],

		DmgBonus:            d[DmgP],
		CritRate:            BaseCritRate + d[CR],
		CritDmg:             BaseCritDmg + d[CD],
		Vulnerability:       d[Vuln],
		DefReduction:        d[DefRed],
		ResistanceReduction: d[ResPen],
		BreakEffect:         d[BE],
		HealingBonus:        d[Heal],
		EffectHit:           d[EHR],
		EffectRes:           d[EffRES],
		EnergyRegen:         d[ERR],
	}
	s.TotalAtk = baseAtk*(1+d[ATKP]/100) + d[ATK]
	s.TotalHP = baseHP*(1+d[HPP]/100) + d[HP]
	s.TotalDef = baseDef*(1+d[DEFP]/100) + d[DEF]
	s.TotalSpeed = baseSpeed*(1+d[SPDP]/100) + d[SPD]
	return s
}

//snapshotStats maps the names numeric conditions may read onto the block
var snapshotStats = map[string]func(s *StatBlock) float64{
	"速度":     func(s *StatBlock) float64 { return s.TotalSpeed },
	"攻擊力":    func(s *StatBlock) float64 { return s.TotalAtk },
	"生命值":    func(s *StatBlock) float64 { return s.TotalHP },
	"防禦力":    func(s *StatBlock) float64 { return s.TotalDef },
	"暴擊率":    func(s *StatBlock) float64 { return s.CritRate },
	"爆擊率":    func(s *StatBlock) float64 { return s.CritRate },
	"暴擊傷害":   func(s *StatBlock) float64 { return s.CritDmg },
	"爆擊傷害":   func(s *StatBlock) float64 { return s.CritDmg },
	"擊破特攻":   func(s *StatBlock) float64 { return s.BreakEffect },
	"效果命中":   func(s *StatBlock) float64 { return s.EffectHit },
	"效果抵抗":   func(s *StatBlock) float64 { return s.EffectRes },
	"治療量加成":  func(s *StatBlock) float64 { return s.HealingBonus },
	"能量恢復效率": func(s *StatBlock) float64 { return s.EnergyRegen },
	"增傷":     func(s *StatBlock) float64 { return s.DmgBonus },
	"攻擊力加成":  func(s *StatBlock) float64 { return s.AtkBonus },
}

//Lookup returns a stat by condition name
func (s *StatBlock) Lookup(name string) (float64, bool) {
	f, ok := snapshotStats[name]
	if !ok {
		return 0, false
	}
	return f(s), true
}
