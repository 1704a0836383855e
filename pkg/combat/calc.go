package combat

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

//Calculator resolves builds against one record store. It holds no per build
//state; Calculate may be called concurrently.
type Calculator struct {
	Log   *zap.SugaredLogger
	store DataStore
}

//Result is the outcome of one calculation
type Result struct {
	Stats               StatBlock
	Damage              DamageResult
	EffectiveResistance float64
	Sets                []SetActivation
	LightConeActive     bool
}

//New creates a calculator. Stores that can report readiness must be ready.
func New(store DataStore, log *zap.SugaredLogger) (*Calculator, error) {
	if store == nil {
		return nil, fmt.Errorf("%w: no data store", ErrDataLoad)
	}
	if r, ok := store.(interface{ Ready() error }); ok {
		if err := r.Ready(); err != nil {
			return nil, err
		}
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Calculator{Log: log, store: store}, nil
}

//NewLogger builds the development logger used by the binaries
func NewLogger(p LogConfig) (*zap.SugaredLogger, error) {
	config := zap.NewDevelopmentConfig()
	config.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	switch p.LogLevel {
	case "debug":
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	case "info":
		config.Level = zap.NewAtomicLevelAt(zapcore.InfoLevel)
	case "warn", "":
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	case "error":
		config.Level = zap.NewAtomicLevelAt(zapcore.ErrorLevel)
	default:
		return nil, fmt.Errorf("invalid log level %q", p.LogLevel)
	}
	config.EncoderConfig.TimeKey = ""
	config.EncoderConfig.StacktraceKey = ""
	if !p.LogShowCaller {
		config.EncoderConfig.CallerKey = ""
	}
	if p.LogFile != "" {
		config.OutputPaths = []string{p.LogFile}
	}
	logger, err := config.Build()
	if err != nil {
		return nil, err
	}
	return logger.Sugar(), nil
}

//Calculate resolves the build into a stat block and the damage triple
func (c *Calculator) Calculate(cfg BuildConfig) (Result, error) {
	return c.calculate(cfg, Delta{})
}

//calculate runs the composition; extra is folded in with the relic stats
func (c *Calculator) calculate(cfg BuildConfig, extra Delta) (Result, error) {
	if err := cfg.Validate(); err != nil {
		return Result{}, err
	}
	comp, err := c.prepare(cfg)
	if err != nil {
		return Result{}, err
	}
	comp.assemble()
	comp.computeProvisional(extra)
	comp.resolveEffects()
	comp.finalize()

	dmg, res := CalcDamage(comp.final, cfg.Enemy, comp.char.Element, cfg.AttackType, c.Log)
	c.Log.Debugw("calculation done", "character", cfg.Character, "attack", cfg.AttackType, "base", dmg.Base, "crit", dmg.Crit, "average", dmg.Average)

	return Result{
		Stats:               comp.final,
		Damage:              dmg,
		EffectiveResistance: res,
		Sets:                comp.sets,
		LightConeActive:     comp.lc != nil && comp.lc.PathMatches(comp.char),
	}, nil
}

//prepare looks up every record the build references so a missing one aborts
//before anything is computed
func (c *Calculator) prepare(cfg BuildConfig) (*composition, error) {
	char, ok := c.store.Character(cfg.Character)
	if !ok {
		return nil, missing("character", cfg.Character)
	}
	comp := &composition{
		log:  c.Log,
		cfg:  cfg,
		char: &char,
	}
	if cfg.LightCone != "" {
		lc, ok := c.store.LightCone(cfg.LightCone)
		if !ok {
			return nil, missing("light cone", cfg.LightCone)
		}
		comp.lc = &lc
	}
	sets, err := ResolveSets(cfg.Outer1, cfg.Outer2, cfg.Inner, c.store)
	if err != nil {
		return nil, err
	}
	comp.sets = sets
	return comp, nil
}
