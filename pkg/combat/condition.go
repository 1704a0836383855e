package combat

import (
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.uber.org/zap"
)

//Family selects how attack type conditions are matched. The legacy light cone
//columns match by substring, structured effects by equality.
type Family int

const (
	FamilyStructured Family = iota
	FamilyLegacy
)

//Context is everything a condition may read
type Context struct {
	Char   *Character
	Enemy  EnemyConfig
	Attack AttackCategory
	Snap   *StatBlock
	Log    *zap.SugaredLogger
}

//ConditionFunc evaluates one atomic condition against its value
type ConditionFunc func(val string, fam Family, ctx *Context) bool

var (
	condMu  sync.RWMutex
	condMap = make(map[string]ConditionFunc)
)

//RegisterConditionFunc adds an atomic condition kind
func RegisterConditionFunc(name string, f ConditionFunc) {
	condMu.Lock()
	defer condMu.Unlock()
	if _, dup := condMap[name]; dup {
		panic("combat: RegisterConditionFunc called twice for condition " + name)
	}
	condMap[name] = f
}

//condition names
const (
	CondNone      = "無"
	CondElement   = "屬性"
	CondWeakness  = "弱點"
	CondAttack    = "攻擊類型"
	CondToughness = "韌性"
)

func init() {
	RegisterConditionFunc(CondElement, condElement)
	RegisterConditionFunc(CondWeakness, condWeakness)
	RegisterConditionFunc(CondAttack, condAttack)
	RegisterConditionFunc(CondToughness, condToughness)
}

//EvalCondition evaluates a single or slash compound condition. Compound
//conditions need the same number of values; otherwise the whole string is
//evaluated as one condition.
func EvalCondition(cond, val string, fam Family, ctx *Context) bool {
	cond = strings.TrimSpace(cond)
	if cond == "" || cond == CondNone {
		return true
	}
	conds := strings.Split(cond, "/")
	vals := strings.Split(val, "/")
	if len(conds) > 1 && len(conds) == len(vals) {
		for i := range conds {
			if !evalAtomic(strings.TrimSpace(conds[i]), strings.TrimSpace(vals[i]), fam, ctx) {
				return false
			}
		}
		return true
	}
	return evalAtomic(cond, strings.TrimSpace(val), fam, ctx)
}

func evalAtomic(cond, val string, fam Family, ctx *Context) bool {
	if cond == "" || cond == CondNone {
		return true
	}
	if m := numericCond.FindStringSubmatch(cond); m != nil {
		return evalNumeric(m[1], m[2], val, ctx)
	}
	condMu.RLock()
	f, ok := condMap[cond]
	condMu.RUnlock()
	if !ok {
		ctx.debugw("\tunknown condition, treated as false", "cond", cond, "val", val)
		return false
	}
	return f(val, fam, ctx)
}

var numericCond = regexp.MustCompile(`^值\((.+)\)(<=|>=|==|<|>|=)$`)

func evalNumeric(name, op, val string, ctx *Context) bool {
	want, err := strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(val), "%"), 64)
	if err != nil {
		ctx.debugw("\tinvalid numeric condition value", "stat", name, "val", val)
		return false
	}
	have := statValue(name, ctx)
	switch op {
	case "<":
		return have < want
	case ">":
		return have > want
	case "<=":
		return have <= want
	case ">=":
		return have >= want
	case "=", "==":
		return have == want
	}
	return false
}

//statValue reads the snapshot first, then the raw character row; unknown is 0
func statValue(name string, ctx *Context) float64 {
	name = strings.TrimSpace(name)
	if ctx.Snap != nil {
		if v, ok := ctx.Snap.Lookup(name); ok {
			return v
		}
	}
	if ctx.Char != nil {
		if v, ok := ctx.Char.field(name); ok {
			return v
		}
	}
	return 0
}

func condElement(val string, fam Family, ctx *Context) bool {
	return ctx.Char != nil && ctx.Char.Element != "" && string(ctx.Char.Element) == val
}

func condWeakness(val string, fam Family, ctx *Context) bool {
	return ctx.Enemy.IsWeakTo(Element(val))
}

func condAttack(val string, fam Family, ctx *Context) bool {
	mapped := ctx.Attack.BroadType()
	if mapped == "" || val == "" {
		return false
	}
	if fam == FamilyLegacy {
		return strings.Contains(val, mapped)
	}
	return val == mapped
}

func condToughness(val string, fam Family, ctx *Context) bool {
	switch val {
	case "broken", "已擊破":
		return ctx.Enemy.ToughnessBroken
	case "unbroken", "未擊破":
		return !ctx.Enemy.ToughnessBroken
	}
	return false
}
