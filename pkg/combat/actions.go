package combat

//AttackCategory is the kind of attack being calculated
type AttackCategory string

//attack categories
const (
	ActionAttack         AttackCategory = "普攻"
	ActionEnhancedAttack AttackCategory = "強化普攻"
	ActionSkill          AttackCategory = "戰技"
	ActionEnhancedSkill  AttackCategory = "強化戰技"
	ActionBurst          AttackCategory = "終結技"
	ActionFollowUp       AttackCategory = "追加攻擊"
	ActionEnhancedFollow AttackCategory = "強化追加攻擊"
	ActionDoT            AttackCategory = "dot攻擊"
	ActionMemosprite     AttackCategory = "憶靈攻擊"
	ActionEnhancedMemo   AttackCategory = "強化憶靈攻擊"
)

//broad types used by effect conditions
const (
	TypeNormal     = "普通攻擊"
	TypeSkill      = "戰技"
	TypeBurst      = "終結技"
	TypeFollowUp   = "追加攻擊"
	TypeDoT        = "dot攻擊"
	TypeMemosprite = "憶靈攻擊"
)

var AttackCategories = []AttackCategory{
	ActionAttack,
	ActionEnhancedAttack,
	ActionSkill,
	ActionEnhancedSkill,
	ActionBurst,
	ActionFollowUp,
	ActionEnhancedFollow,
	ActionDoT,
	ActionMemosprite,
	ActionEnhancedMemo,
}

var broadType = map[AttackCategory]string{
	ActionAttack:         TypeNormal,
	ActionEnhancedAttack: TypeNormal,
	ActionSkill:          TypeSkill,
	ActionEnhancedSkill:  TypeSkill,
	ActionBurst:          TypeBurst,
	ActionFollowUp:       TypeFollowUp,
	ActionEnhancedFollow: TypeFollowUp,
	ActionDoT:            TypeDoT,
	ActionMemosprite:     TypeMemosprite,
	ActionEnhancedMemo:   TypeMemosprite,
}

//BroadType maps an attack category onto the type named by effect conditions.
//Returns "" for unknown categories.
func (a AttackCategory) BroadType() string {
	return broadType[a]
}

func (a AttackCategory) Valid() bool {
	_, ok := broadType[a]
	return ok
}

func (a AttackCategory) IsDoT() bool {
	return a == ActionDoT
}
