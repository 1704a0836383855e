package combat

import "strings"

//Scope is the set threshold an effect belongs to; light cone effects have none
type Scope string

const (
	ScopeNone Scope = ""
	Scope2P   Scope = "2P"
	Scope4P   Scope = "4P"
)

//EffectDescriptor is one numbered effect slot of a light cone or relic
type EffectDescriptor struct {
	Kind           string
	Scope          Scope
	Target         string
	Condition      string
	ConditionValue string
	Value          Value
	Family         Family
}

//ScopeFilter decides which scopes are active for an accumulation
type ScopeFilter func(Scope) bool

//AnyScope accepts every effect
func AnyScope(Scope) bool { return true }

//OnlyScopes accepts the listed scopes
func OnlyScopes(scopes ...Scope) ScopeFilter {
	return func(s Scope) bool {
		for _, v := range scopes {
			if v == s {
				return true
			}
		}
		return false
	}
}

//targets that affect the wearer's own stat sheet
var selfTargets = map[string]bool{
	"":     true,
	"自身":   true,
	"裝備者":  true,
	"我方":   true,
	"我方全體": true,
	"全體":   true,
	"self": true,
	"ally": true,
}

//IsSelfTarget reports whether an effect aimed at target lands on the wearer
func IsSelfTarget(target string) bool {
	return selfTargets[strings.TrimSpace(target)]
}

//Accumulate folds every eligible effect into a delta. Effects are skipped when
//kind or value is missing, the scope is inactive, the target is not the wearer
//or an ally, or the condition fails. Rank list values are indexed by rank.
//Malformed values and unknown kinds contribute zero.
func Accumulate(effects []EffectDescriptor, scope ScopeFilter, rank int, ctx *Context) Delta {
	var d Delta
	for i, e := range effects {
		kind := strings.TrimSpace(e.Kind)
		if kind == "" || kind == "0" || e.Value.Absent() {
			continue
		}
		if !scope(e.Scope) {
			continue
		}
		if !IsSelfTarget(e.Target) {
			ctx.debugw("\teffect skipped, target not self", "index", i, "kind", kind, "target", e.Target)
			continue
		}
		t := StrToStatType(kind)
		if t < 0 {
			ctx.debugw("\tunknown effect type ignored", "index", i, "kind", kind)
			continue
		}
		if !EvalCondition(e.Condition, e.ConditionValue, e.Family, ctx) {
			ctx.debugw("\teffect condition not met", "index", i, "kind", kind, "cond", e.Condition, "val", e.ConditionValue)
			continue
		}
		v := e.Value.Rank(rank)
		if !d.AddValue(t, v) {
			ctx.debugw("\tmalformed effect value, no contribution", "index", i, "kind", kind, "value", e.Value)
			continue
		}
		ctx.debugw("\teffect applied", "index", i, "kind", kind, "stat", t, "value", v)
	}
	return d
}

func (c *Context) debugw(msg string, kv ...interface{}) {
	if c.Log != nil {
		c.Log.Debugw(msg, kv...)
	}
}
