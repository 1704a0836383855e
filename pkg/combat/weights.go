package combat

//StatWeight is the expected damage gain from one extra stat bump
type StatWeight struct {
	Stat    string
	Bump    float64
	Average float64
	Gain    float64 //percent change of the expected damage
}

//DefaultBumps are one average 5 star substat roll per stat, times rolls
func DefaultBumps(rolls float64) []Stat {
	avg := []struct {
		t string
		v float64
	}{
		{"固定ATK", 19.05},
		{"ATK%", 3.888},
		{"暴擊率", 2.916},
		{"暴擊傷害", 5.832},
		{"速度", 2.3},
		{"擊破特攻", 5.832},
		{"效果命中", 3.888},
	}
	var bumps []Stat
	for _, a := range avg {
		bumps = append(bumps, Stat{Type: a.t, Value: Value(formatFloat(a.v * rolls))})
	}
	return bumps
}

//StatWeights recalculates the build once per bump and reports how much each
//one moves the expected damage
func (c *Calculator) StatWeights(cfg BuildConfig, bumps []Stat) ([]StatWeight, error) {
	ref, err := c.Calculate(cfg)
	if err != nil {
		return nil, err
	}
	var out []StatWeight
	for _, b := range bumps {
		var extra Delta
		t := StrToStatType(b.Type)
		if t < 0 || !extra.AddValue(t, b.Value) {
			c.Log.Warnw("stat weight bump ignored", "stat", b.Type, "value", b.Value)
			continue
		}
		r, err := c.calculate(cfg, extra)
		if err != nil {
			return nil, err
		}
		w := StatWeight{Stat: b.Type, Bump: extra[t], Average: r.Damage.Average}
		if ref.Damage.Average > 0 {
			w.Gain = (r.Damage.Average/ref.Damage.Average - 1) * 100
		}
		c.Log.Debugw("stat weight", "stat", b.Type, "bump", w.Bump, "gain", w.Gain)
		out = append(out, w)
	}
	return out, nil
}
