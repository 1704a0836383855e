package combat

//EnemyConfig describes the target
type EnemyConfig struct {
	Level           int       `yaml:"Level"`
	Resistance      float64   `yaml:"Resistance"` //percent; past 100 after the weakness check the hit deals 0
	Weaknesses      []Element `yaml:"Weaknesses"`
	ToughnessBroken bool      `yaml:"ToughnessBroken"`
}

const (
	DefaultEnemyLevel = 90
	//resistance added when the attacker's element is not a weakness
	NonWeaknessRes = 20
	//damage reduction while toughness is not broken
	ToughnessReduction = 10
)

//IsWeakTo reports whether e is listed as a weakness
func (e EnemyConfig) IsWeakTo(el Element) bool {
	for _, w := range e.Weaknesses {
		if w == el {
			return true
		}
	}
	return false
}

//EffectiveResistance is the enemy resistance after the weakness check. An
//empty element never pays the penalty.
func (e EnemyConfig) EffectiveResistance(el Element) float64 {
	res := e.Resistance
	if el != "" && !e.IsWeakTo(el) {
		res += NonWeaknessRes
	}
	return res
}

//ToughnessMultiplier is 0.9 while toughness stands, 1 once broken
func (e EnemyConfig) ToughnessMultiplier() float64 {
	if e.ToughnessBroken {
		return 1
	}
	return 1 - float64(ToughnessReduction)/100
}
