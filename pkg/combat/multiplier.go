package combat

//MultiplierColumns are the character table headers of the multiplier strings
var MultiplierColumns = map[AttackCategory]string{
	ActionAttack:         "普攻(攻擊)倍率",
	ActionEnhancedAttack: "強化普攻(攻擊)倍率",
	ActionSkill:          "戰技(攻擊)倍率",
	ActionEnhancedSkill:  "強化戰技(攻擊)倍率",
	ActionBurst:          "終結技(攻擊)倍率",
	ActionFollowUp:       "追加攻擊(攻擊)倍率",
	ActionEnhancedFollow: "強化追加攻擊(攻擊)倍率",
	ActionDoT:            "dot攻擊(攻擊)倍率",
	ActionMemosprite:     "憶靈攻擊(攻擊)倍率",
	ActionEnhancedMemo:   "強化憶靈攻擊(攻擊)倍率",
}

//eidolon rank at which the second multiplier entry applies; 0 means never
var eidolonThreshold = map[AttackCategory]int{
	ActionAttack:         3,
	ActionEnhancedAttack: 3,
	ActionBurst:          3,
	ActionSkill:          5,
	ActionEnhancedSkill:  5,
	ActionFollowUp:       5,
	ActionEnhancedFollow: 5,
	ActionMemosprite:     5,
	ActionEnhancedMemo:   5,
	ActionDoT:            0,
}

//SkillMultiplier returns the multiplier in percent for an attack category at
//an eidolon rank. Missing values give 0. One entry lists apply at every rank.
func SkillMultiplier(c *Character, a AttackCategory, eidolon int) float64 {
	v, ok := c.Multipliers[a]
	if !ok || v.Absent() {
		return 0
	}
	idx := 0
	if t := eidolonThreshold[a]; t > 0 && eidolon >= t {
		idx = 1
	}
	f, ok := v.Rank(idx).Float()
	if !ok {
		return 0
	}
	return f
}
