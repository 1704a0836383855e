package combat

import "go.uber.org/zap"

//Character is one row of the character table. Immutable once loaded; keyed by
//Name everywhere.
type Character struct {
	Name      string
	Path      Path
	Element   Element
	Rarity    int
	BaseHP    float64
	BaseAtk   float64
	BaseDef   float64
	BaseSpeed float64
	EnergyMax float64
	//multiplier strings per attack category, each a slash delimited eidolon list
	Multipliers map[AttackCategory]Value
	Traces      Traces
}

//Trace identifies one of the fixed trace bonus columns
type Trace int

const (
	TraceAtk Trace = iota
	TraceHP
	TraceDef
	TraceSpeed
	TraceCR
	TraceCD
	TraceDmg
	TraceBE
	TraceEHR
	TraceRES
	EndTrace
)

//Traces holds the raw values of the trace columns
type Traces [EndTrace]Value

//TraceColumns are the table headers of the trace columns
var TraceColumns = [EndTrace]string{
	"行跡(攻擊)",
	"行跡(生命)",
	"行跡(防禦)",
	"行跡(速度)",
	"行跡(爆率)",
	"行跡(爆傷)",
	"行跡(增傷)",
	"行跡(擊破特攻)",
	"行跡(效果命中)",
	"行跡(效果抗性)",
}

var traceStat = [EndTrace]StatType{
	TraceAtk:   ATKP,
	TraceHP:    HPP,
	TraceDef:   DEFP,
	TraceSpeed: SPD,
	TraceCR:    CR,
	TraceCD:    CD,
	TraceDmg:   DmgP,
	TraceBE:    BE,
	TraceEHR:   EHR,
	TraceRES:   EffRES,
}

//Stat returns the bucket a trace folds into
func (t Trace) Stat() StatType {
	return traceStat[t]
}

//ApplyTraces folds the character's trace bonuses into d. Traces are always
//additive and unconditional.
func (c *Character) ApplyTraces(d *Delta, log *zap.SugaredLogger) {
	for i, v := range c.Traces {
		if d.AddValue(traceStat[i], v) {
			log.Debugw("\ttrace", "column", TraceColumns[i], "stat", traceStat[i], "value", v)
		}
	}
}

//raw character fields readable by numeric conditions
func (c *Character) field(name string) (float64, bool) {
	switch name {
	case "基礎生命值", "生命值白值":
		return c.BaseHP, true
	case "基礎攻擊力", "攻擊力白值":
		return c.BaseAtk, true
	case "基礎防禦力", "防禦力白值":
		return c.BaseDef, true
	case "基礎速度":
		return c.BaseSpeed, true
	case "能量上限":
		return c.EnergyMax, true
	case "星數":
		return float64(c.Rarity), true
	}
	return 0, false
}
