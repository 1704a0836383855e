package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func condCtx(a AttackCategory) *Context {
	char := &Character{Name: "火人", Element: Fire, Path: Hunt, BaseAtk: 700, Rarity: 5}
	snap := snapshot(700, 1000, 500, 100, Delta{SPD: 30, ATKP: 20})
	return &Context{
		Char:   char,
		Enemy:  EnemyConfig{Weaknesses: []Element{Ice, Quantum}},
		Attack: a,
		Snap:   &snap,
		Log:    nopLog(),
	}
}

func TestEvalConditionEmpty(t *testing.T) {
	ctx := condCtx(ActionAttack)
	assert.True(t, EvalCondition("", "", FamilyStructured, ctx))
	assert.True(t, EvalCondition("無", "whatever", FamilyStructured, ctx))
	assert.True(t, EvalCondition("  ", "", FamilyStructured, ctx))
}

func TestEvalConditionAtomic(t *testing.T) {
	ctx := condCtx(ActionEnhancedAttack)
	cases := []struct {
		name string
		cond string
		val  string
		fam  Family
		want bool
	}{
		{"element match", CondElement, "火", FamilyStructured, true},
		{"element mismatch", CondElement, "冰", FamilyStructured, false},
		{"weakness listed", CondWeakness, "量子", FamilyStructured, true},
		{"weakness not listed", CondWeakness, "火", FamilyStructured, false},
		{"attack structured equal", CondAttack, "普通攻擊", FamilyStructured, true},
		{"attack structured list", CondAttack, "普通攻擊/戰技", FamilyStructured, false},
		{"attack legacy contains", CondAttack, "普通攻擊、戰技", FamilyLegacy, true},
		{"attack legacy raw category", CondAttack, "普攻", FamilyLegacy, false},
		{"attack empty", CondAttack, "", FamilyLegacy, false},
		{"toughness unbroken", CondToughness, "unbroken", FamilyStructured, true},
		{"toughness broken", CondToughness, "已擊破", FamilyStructured, false},
		{"toughness junk", CondToughness, "maybe", FamilyStructured, false},
		{"unknown kind", "天氣", "晴", FamilyStructured, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.Equal(t, c.want, EvalCondition(c.cond, c.val, c.fam, ctx))
		})
	}
}

func TestEvalConditionCompound(t *testing.T) {
	ctx := condCtx(ActionSkill)
	assert.True(t, EvalCondition("屬性/弱點", "火/冰", FamilyStructured, ctx))
	assert.False(t, EvalCondition("屬性/弱點", "火/火", FamilyStructured, ctx))
	assert.True(t, EvalCondition("屬性/攻擊類型", "火/戰技", FamilyStructured, ctx))
	//arity mismatch evaluates the whole string as one unknown condition
	assert.False(t, EvalCondition("屬性/弱點", "火", FamilyStructured, ctx))
	assert.False(t, EvalCondition("屬性/弱點", "火/冰/量子", FamilyStructured, ctx))
}

func TestEvalConditionNumeric(t *testing.T) {
	ctx := condCtx(ActionAttack)
	//speed 130, atk 840
	cases := []struct {
		cond string
		val  string
		want bool
	}{
		{"值(速度)>=", "120", true},
		{"值(速度)>", "130", false},
		{"值(速度)>=", "130", true},
		{"值(速度)<", "120", false},
		{"值(速度)<=", "130", true},
		{"值(攻擊力)>", "839", true},
		{"值(攻擊力)<", "841", true},
		{"值(速度)=", "130", true},
		{"值(速度)==", "131", false},
		{"值(攻擊力加成)>=", "20%", true},
		{"值(暴擊率)==", "5", true},
		{"值(基礎攻擊力)==", "700", true},
		{"值(星數)>=", "5", true},
		{"值(未知)<", "1", true},
		{"值(未知)>", "0", false},
		{"值(速度)>=", "fast", false},
	}
	for _, c := range cases {
		t.Run(c.cond+c.val, func(t *testing.T) {
			assert.Equal(t, c.want, EvalCondition(c.cond, c.val, FamilyStructured, ctx))
		})
	}
}

func TestEvalConditionNoSnapshot(t *testing.T) {
	ctx := condCtx(ActionAttack)
	ctx.Snap = nil
	ctx.Log = nil
	assert.True(t, EvalCondition("值(基礎攻擊力)>=", "700", FamilyStructured, ctx))
	assert.False(t, EvalCondition("值(速度)>", "0", FamilyStructured, ctx))
	assert.False(t, EvalCondition("天氣", "晴", FamilyStructured, ctx))
}

func TestRegisterConditionFuncDuplicate(t *testing.T) {
	assert.Panics(t, func() {
		RegisterConditionFunc(CondElement, condElement)
	})
}
