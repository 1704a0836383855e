package combat

import (
	"math"

	"go.uber.org/zap"
)

//CharLvl is the attacker level used by the defense formula
const CharLvl = 80

//DamageResult is the non crit, full crit and expected damage of one hit
type DamageResult struct {
	Base    float64
	Crit    float64
	Average float64
}

//Presenter renders a finished calculation
type Presenter interface {
	Present(dmg DamageResult, stats StatBlock, effectiveRes float64)
}

//DefenseMultiplier for an enemy level and a defense reduction in percent
func DefenseMultiplier(enemyLvl int, defReduction float64) float64 {
	c := float64(200 + 10*CharLvl)
	return c / (float64(200+10*enemyLvl)*(1-defReduction/100) + c)
}

//CalcDamage applies the damage formula. It also returns the effective
//resistance after the weakness check.
func CalcDamage(s StatBlock, e EnemyConfig, el Element, a AttackCategory, log *zap.SugaredLogger) (DamageResult, float64) {
	res := e.EffectiveResistance(el)
	defmod := DefenseMultiplier(e.Level, s.DefReduction)
	//resistance past 100% floors the hit at 0 rather than healing the target
	resmod := math.Max(0, 1-res/100+s.ResistanceReduction/100)
	tmod := e.ToughnessMultiplier()

	base := s.TotalAtk * (s.SkillMultiplier / 100)
	base *= 1 + s.DmgBonus/100
	base *= 1 + s.Vulnerability/100
	base *= defmod
	base *= resmod
	base *= tmod
	base = math.Max(0, base)

	log.Debugw("\t\tcalc", "total atk", s.TotalAtk, "mult", s.SkillMultiplier, "dmg%", s.DmgBonus, "vuln", s.Vulnerability)
	log.Debugw("\t\tcalc", "def mod", defmod, "res", res, "res mod", resmod, "toughness mod", tmod, "base", base)

	if a.IsDoT() {
		return DamageResult{Base: base, Crit: base, Average: base}, res
	}

	cr := math.Min(s.CritRate, 100)
	if cr < 0 {
		cr = 0
	}
	r := DamageResult{
		Base:    base,
		Crit:    base * (1 + s.CritDmg/100),
		Average: base * (1 + cr/100*s.CritDmg/100),
	}
	log.Debugw("\t\tcalc", "cr", cr, "cd", s.CritDmg, "crit", r.Crit, "average", r.Average)
	return r, res
}
