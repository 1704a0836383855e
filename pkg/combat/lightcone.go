package combat

//LightCone is one light cone row. Atk/HP/Def are the flat white values.
type LightCone struct {
	Name    string
	Path    Path
	Rarity  int
	Atk     float64
	HP      float64
	Def     float64
	Effects []EffectDescriptor
}

//MaxSuperimpose is the highest superimposition rank
const MaxSuperimpose = 5

//SuperimposeIndex maps rank 1-5 onto a rank list index 0-4
func SuperimposeIndex(rank int) int {
	i := rank - 1
	if i < 0 {
		i = 0
	}
	if i > MaxSuperimpose-1 {
		i = MaxSuperimpose - 1
	}
	return i
}

//PathMatches reports whether the light cone effects apply to c
func (l *LightCone) PathMatches(c *Character) bool {
	return c.Path != "" && l.Path != "" && c.Path == l.Path
}

//LightConeEffects folds the light cone's effects for the given rank. A path
//mismatch grants nothing.
func LightConeEffects(l *LightCone, superimpose int, ctx *Context) Delta {
	if l == nil {
		return Delta{}
	}
	if !l.PathMatches(ctx.Char) {
		ctx.debugw("\tlight cone path mismatch, effects ignored", "light cone", l.Name, "path", l.Path, "char path", ctx.Char.Path)
		return Delta{}
	}
	return Accumulate(l.Effects, AnyScope, SuperimposeIndex(superimpose), ctx)
}
