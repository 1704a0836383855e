package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/srliao/hsrcalc/pkg/combat"
)

//TextPresenter prints results as plain text
type TextPresenter struct {
	Out      io.Writer
	Decimals int
}

var _ combat.Presenter = (*TextPresenter)(nil)

func (t *TextPresenter) f(v float64) string {
	return fmt.Sprintf("%.*f", t.Decimals, v)
}

//Present implements combat.Presenter
func (t *TextPresenter) Present(dmg combat.DamageResult, s combat.StatBlock, res float64) {
	fmt.Fprintf(t.Out, "stats:\n")
	fmt.Fprintf(t.Out, "\tatk: %v (base %v, +%v%%)\n", t.f(s.TotalAtk), t.f(s.BaseAtk), t.f(s.AtkBonus))
	fmt.Fprintf(t.Out, "\thp: %v\tdef: %v\tspd: %v\n", t.f(s.TotalHP), t.f(s.TotalDef), t.f(s.TotalSpeed))
	fmt.Fprintf(t.Out, "\tcrit: %v%% / %v%%\n", t.f(s.CritRate), t.f(s.CritDmg))
	fmt.Fprintf(t.Out, "\tdmg%%: %v\tvuln: %v\tdef shred: %v\tres pen: %v\n", t.f(s.DmgBonus), t.f(s.Vulnerability), t.f(s.DefReduction), t.f(s.ResistanceReduction))
	fmt.Fprintf(t.Out, "\tbreak: %v\tehr: %v\teff res: %v\theal: %v\terr: %v\n", t.f(s.BreakEffect), t.f(s.EffectHit), t.f(s.EffectRes), t.f(s.HealingBonus), t.f(s.EnergyRegen))
	fmt.Fprintf(t.Out, "\tmultiplier: %v%%\tenemy res: %v%%\n", t.f(s.SkillMultiplier), t.f(res))
	fmt.Fprintf(t.Out, "damage:\n")
	fmt.Fprintf(t.Out, "\tnon crit: %v\n\tcrit: %v\n\texpected: %v\n", t.f(dmg.Base), t.f(dmg.Crit), t.f(dmg.Average))
}

//Sets lists the active set thresholds with their descriptions
func (t *TextPresenter) Sets(act []combat.SetActivation, s *combat.Store) {
	if len(act) == 0 {
		return
	}
	fmt.Fprintf(t.Out, "sets:\n")
	for _, a := range act {
		d, _ := s.RelicDesc(a.Relic.Name)
		for _, sc := range a.Scopes {
			text := d.Desc2P
			if sc == combat.Scope4P {
				text = d.Desc4P
			}
			fmt.Fprintf(t.Out, "\t%v %v %v\n", a.Relic.Name, sc, text)
		}
	}
}

//LightCone prints the light cone and whether its effects are active
func (t *TextPresenter) LightCone(name string, active bool, s *combat.Store) {
	if name == "" {
		return
	}
	state := "active"
	if !active {
		state = "inactive (path mismatch)"
	}
	fmt.Fprintf(t.Out, "light cone: %v %v\n", name, state)
	if d := s.LightConeDesc(name); d != "" {
		fmt.Fprintf(t.Out, "\t%v\n", d)
	}
}

//Rating prints the relic score per slot in slot order
func (t *TextPresenter) Rating(r combat.Rating) {
	fmt.Fprintf(t.Out, "relic rating:\n")
	for _, s := range combat.Slots {
		if v, ok := r.Slots[s]; ok {
			fmt.Fprintf(t.Out, "\t%v: %.1f\n", s, v)
		}
	}
	fmt.Fprintf(t.Out, "\ttotal: %.1f\n", r.Total)
}

//Recommendations prints the recommended light cones and relics
func (t *TextPresenter) Recommendations(lc, relics []string) {
	if len(lc) > 0 {
		fmt.Fprintf(t.Out, "recommended light cones: %v\n", strings.Join(lc, ", "))
	}
	if len(relics) > 0 {
		fmt.Fprintf(t.Out, "recommended relics: %v\n", strings.Join(relics, ", "))
	}
}

//Weights prints a stat weight table
func (t *TextPresenter) Weights(w []combat.StatWeight) {
	for _, v := range w {
		fmt.Fprintf(t.Out, "Increasing %v by %v; new expected dmg: %v; increased %0.4f%%\n", v.Stat, t.f(v.Bump), t.f(v.Average), v.Gain)
	}
}
