package main

import (
	"bytes"
	"testing"

	"github.com/srliao/hsrcalc/pkg/combat"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTextPresenter(t *testing.T) {
	var buf bytes.Buffer
	p := &TextPresenter{Out: &buf, Decimals: 1}
	p.Present(combat.DamageResult{Base: 266.666, Crit: 400, Average: 273.333}, combat.StatBlock{TotalAtk: 700, CritRate: 5, CritDmg: 50}, 20)

	out := buf.String()
	assert.Contains(t, out, "non crit: 266.7")
	assert.Contains(t, out, "crit: 400.0")
	assert.Contains(t, out, "expected: 273.3")
	assert.Contains(t, out, "enemy res: 20.0%")
}

func TestTextPresenterExtras(t *testing.T) {
	s := combat.NewStore()
	require.NoError(t, s.AddRelic(combat.Relic{Name: "R", Kind: combat.Outer}))
	require.NoError(t, s.AddRelicDesc(combat.RelicDesc{Name: "R", Desc2P: "二件", Desc4P: "四件"}))
	require.NoError(t, s.AddLightConeDesc("L", "光錐描述"))
	r, _ := s.Relic("R", combat.Outer)

	var buf bytes.Buffer
	p := &TextPresenter{Out: &buf, Decimals: 2}
	p.Sets([]combat.SetActivation{{Relic: &r, Scopes: []combat.Scope{combat.Scope2P, combat.Scope4P}}}, s)
	p.LightCone("L", false, s)
	p.Rating(combat.Rating{Slots: map[combat.Slot]float64{combat.Head: 6.5, combat.Rope: 1}, Total: 7.5})
	p.Recommendations([]string{"L"}, nil)

	out := buf.String()
	assert.Contains(t, out, "R 2P 二件")
	assert.Contains(t, out, "R 4P 四件")
	assert.Contains(t, out, "inactive (path mismatch)")
	assert.Contains(t, out, "光錐描述")
	assert.Contains(t, out, "head: 6.5")
	assert.Contains(t, out, "total: 7.5")
	assert.Contains(t, out, "recommended light cones: L")
	assert.NotContains(t, out, "recommended relics")
}
