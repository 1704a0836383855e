package combat

import (
	"fmt"

	"go.uber.org/zap"
)

type stage int

const (
	stageInit stage = iota
	stageBaseAssembled
	stageProvisionalComputed
	stageEffectsResolved
	stageFinal
)

var stageString = [...]string{
	"init",
	"base assembled",
	"provisional computed",
	"effects resolved",
	"final",
}

func (s stage) String() string {
	return stageString[s]
}

//composition walks one build through the stages in order. Light cone
//conditions see gear and traces only; set bonus conditions also see the
//light cone. Nothing flows back the other way.
type composition struct {
	log   *zap.SugaredLogger
	stage stage

	cfg  BuildConfig
	char *Character
	lc   *LightCone
	sets []SetActivation

	baseAtk, baseHP, baseDef, baseSpeed float64

	relic       Delta
	lcDelta     Delta
	setDelta    Delta
	provisional StatBlock
	final       StatBlock
}

func (c *composition) advance(next stage) {
	if next != c.stage+1 {
		panic(fmt.Sprintf("combat: composition stage %v after %v", next, c.stage))
	}
	c.stage = next
	c.log.Debugw("stage", "stage", next, "character", c.char.Name)
}

func (c *composition) ctx(snap *StatBlock) *Context {
	return &Context{
		Char:   c.char,
		Enemy:  c.cfg.Enemy,
		Attack: c.cfg.AttackType,
		Snap:   snap,
		Log:    c.log,
	}
}

//assemble reads the base stats and adds the light cone white values
func (c *composition) assemble() {
	c.baseAtk = c.char.BaseAtk
	c.baseHP = c.char.BaseHP
	c.baseDef = c.char.BaseDef
	c.baseSpeed = c.char.BaseSpeed
	if c.lc != nil {
		c.baseAtk += c.lc.Atk
		c.baseHP += c.lc.HP
		c.baseDef += c.lc.Def
	}
	c.advance(stageBaseAssembled)
	c.log.Debugw("\tbase", "atk", c.baseAtk, "hp", c.baseHP, "def", c.baseDef, "spd", c.baseSpeed)
}

//computeProvisional sums gear and traces and snapshots the result
func (c *composition) computeProvisional(extra Delta) {
	c.relic = AggregateRelics(c.cfg.Gear, c.log)
	c.char.ApplyTraces(&c.relic, c.log)
	c.relic.Add(extra)
	c.provisional = snapshot(c.baseAtk, c.baseHP, c.baseDef, c.baseSpeed, c.relic)
	c.advance(stageProvisionalComputed)
	c.log.Debugw("\trelic stats", "delta", c.relic.String())
}

//resolveEffects runs the light cone against the provisional snapshot, then
//the set bonuses against provisional plus light cone
func (c *composition) resolveEffects() {
	if c.lc != nil {
		c.lcDelta = LightConeEffects(c.lc, c.cfg.Superimpose, c.ctx(&c.provisional))
		c.log.Debugw("\tlight cone", "name", c.lc.Name, "delta", c.lcDelta.String())
	}

	withLC := c.relic
	withLC.Add(c.lcDelta)
	snap := snapshot(c.baseAtk, c.baseHP, c.baseDef, c.baseSpeed, withLC)
	c.setDelta = accumulateSets(c.sets, c.ctx(&snap))
	c.log.Debugw("\tset bonuses", "delta", c.setDelta.String())

	c.advance(stageEffectsResolved)
}

//finalize merges every delta and resolves the skill multiplier
func (c *composition) finalize() {
	total := c.relic
	total.Add(c.lcDelta)
	total.Add(c.setDelta)
	c.final = snapshot(c.baseAtk, c.baseHP, c.baseDef, c.baseSpeed, total)
	c.final.SkillMultiplier = SkillMultiplier(c.char, c.cfg.AttackType, c.cfg.Eidolon)
	c.advance(stageFinal)
}
