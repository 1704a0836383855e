package combat

//RelicKind separates outer (4 piece) from inner (2 piece) relic sets
type RelicKind string

const (
	Outer RelicKind = "外圈"
	Inner RelicKind = "內圈"
)

//Relic is one set definition with its 2P/4P effect slots
type Relic struct {
	Name    string
	Kind    RelicKind
	Effects []EffectDescriptor
}

//SetActivation is one relic with the thresholds it grants
type SetActivation struct {
	Relic  *Relic
	Scopes []Scope
}

//ResolveSets determines the active thresholds from the equipped set names.
//A single outer set, or the same outer set twice, grants 2P and 4P. Two
//different outer sets grant 2P each. The inner set grants 2P.
func ResolveSets(outer1, outer2, inner string, store DataStore) ([]SetActivation, error) {
	var act []SetActivation

	hasOuter1 := outer1 != ""
	hasOuter2 := outer2 != ""
	isSameOuter := hasOuter1 && hasOuter2 && outer1 == outer2
	isSingleOuter := hasOuter1 && !hasOuter2

	lookup := func(name string, kind RelicKind) (*Relic, error) {
		r, ok := store.Relic(name, kind)
		if !ok {
			return nil, missing("relic", name)
		}
		return &r, nil
	}

	switch {
	case isSingleOuter || isSameOuter:
		r, err := lookup(outer1, Outer)
		if err != nil {
			return nil, err
		}
		act = append(act, SetActivation{Relic: r, Scopes: []Scope{Scope2P, Scope4P}})
	case hasOuter1 && hasOuter2:
		r1, err := lookup(outer1, Outer)
		if err != nil {
			return nil, err
		}
		r2, err := lookup(outer2, Outer)
		if err != nil {
			return nil, err
		}
		act = append(act,
			SetActivation{Relic: r1, Scopes: []Scope{Scope2P}},
			SetActivation{Relic: r2, Scopes: []Scope{Scope2P}},
		)
	case hasOuter2:
		//second slot only: 2P, never 4P
		r, err := lookup(outer2, Outer)
		if err != nil {
			return nil, err
		}
		act = append(act, SetActivation{Relic: r, Scopes: []Scope{Scope2P}})
	}

	if inner != "" {
		r, err := lookup(inner, Inner)
		if err != nil {
			return nil, err
		}
		act = append(act, SetActivation{Relic: r, Scopes: []Scope{Scope2P}})
	}
	return act, nil
}

//accumulateSets folds every activation through the effect accumulator
func accumulateSets(act []SetActivation, ctx *Context) Delta {
	var d Delta
	for _, a := range act {
		ctx.debugw("\tset bonus", "relic", a.Relic.Name, "scopes", a.Scopes)
		d.Add(Accumulate(a.Relic.Effects, OnlyScopes(a.Scopes...), 0, ctx))
	}
	return d
}
