package combat

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest"
)

func nopLog() *zap.SugaredLogger {
	return zap.NewNop().Sugar()
}

func testLog(t *testing.T) *zap.SugaredLogger {
	return zaptest.NewLogger(t).Sugar()
}

//testStore holds a small table set:
//  火人: hunt/fire, 700 atk
//  巡獵光錐: hunt, +crit rate per rank
//  毀滅光錐: destruction, atk and crit rate that must never apply to 火人
//  R: 2P atk 10%, 4P crit rate 8%; S: 2P atk 6%; I (inner): 2P dmg 12%
func testStore(t *testing.T) *Store {
	t.Helper()
	s := NewStore()
	require.NoError(t, s.AddCharacter(Character{
		Name:      "火人",
		Path:      Hunt,
		Element:   Fire,
		Rarity:    5,
		BaseHP:    1000,
		BaseAtk:   700,
		BaseDef:   500,
		BaseSpeed: 100,
		Multipliers: map[AttackCategory]Value{
			ActionAttack: "100%/110%",
			ActionSkill:  "200%/220%",
			ActionBurst:  "300%",
			ActionDoT:    "50%/60%",
		},
	}))
	require.NoError(t, s.AddCharacter(Character{
		Name:      "冰人",
		Path:      Destruction,
		Element:   Ice,
		BaseAtk:   700,
		BaseSpeed: 100,
		Multipliers: map[AttackCategory]Value{
			ActionAttack: "100%",
		},
	}))
	require.NoError(t, s.AddLightCone(LightCone{
		Name: "巡獵光錐",
		Path: Hunt,
		Atk:  100,
		Effects: []EffectDescriptor{
			{Kind: "爆擊率", Value: "10%/12%/14%/16%/18%"},
		},
	}))
	require.NoError(t, s.AddLightCone(LightCone{
		Name: "毀滅光錐",
		Path: Destruction,
		Effects: []EffectDescriptor{
			{Kind: "增攻", Value: "50%"},
			{Kind: "爆擊率", Value: "20%"},
		},
	}))
	require.NoError(t, s.AddRelic(Relic{
		Name: "R",
		Kind: Outer,
		Effects: []EffectDescriptor{
			{Kind: "增攻", Scope: Scope2P, Value: "10%"},
			{Kind: "爆擊率", Scope: Scope4P, Value: "8%"},
		},
	}))
	require.NoError(t, s.AddRelic(Relic{
		Name: "S",
		Kind: Outer,
		Effects: []EffectDescriptor{
			{Kind: "增攻", Scope: Scope2P, Value: "6%"},
		},
	}))
	require.NoError(t, s.AddRelic(Relic{
		Name: "I",
		Kind: Inner,
		Effects: []EffectDescriptor{
			{Kind: "增傷", Scope: Scope2P, Value: "12%"},
		},
	}))
	return s
}

func testCalc(t *testing.T, s *Store) *Calculator {
	t.Helper()
	c, err := New(s, testLog(t))
	require.NoError(t, err)
	return c
}

//baseBuild is 火人 with nothing equipped against a broken, resistless enemy
func baseBuild() BuildConfig {
	return BuildConfig{
		Character:   "火人",
		Superimpose: 1,
		AttackType:  ActionAttack,
		Enemy: EnemyConfig{
			Level:           90,
			ToughnessBroken: true,
		},
	}
}
