package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/srliao/hsrcalc/internal/config"
	"github.com/srliao/hsrcalc/internal/data"
	"github.com/srliao/hsrcalc/pkg/combat"
)

func main() {
	pPtr := flag.String("p", "config.yaml", "which profile to use")
	debugPtr := flag.String("d", "", "output level: debug, info, warn, error")
	f := flag.String("o", "", "detailed log file")
	showCaller := flag.Bool("c", false, "show caller in debug log")
	dataPtr := flag.String("data", "", "directory holding the csv tables")
	decimals := flag.Int("decimals", 0, "decimals shown in the results")
	w := flag.Float64("w", 0, "stat weights: bump each substat by this many average rolls")
	flag.Parse()

	cfg, err := combat.LoadProfile(*pPtr)
	if err != nil {
		log.Fatal(err)
	}
	e, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}
	e.Apply(&cfg)

	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) { set[f.Name] = true })
	if set["d"] {
		cfg.LogConfig.LogLevel = *debugPtr
	}
	if set["o"] {
		cfg.LogConfig.LogFile = *f
	}
	if set["c"] {
		cfg.LogConfig.LogShowCaller = *showCaller
	}
	if set["decimals"] {
		cfg.Decimals = *decimals
	}
	dir := e.DataDir
	if set["data"] {
		dir = *dataPtr
	}

	if cfg.LogConfig.LogFile != "" {
		os.Remove(cfg.LogConfig.LogFile)
	}
	logger, err := combat.NewLogger(cfg.LogConfig)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	start := time.Now()

	store, err := data.NewLoader(dir, logger).Load(context.Background())
	if err != nil {
		log.Fatal(err)
	}
	calc, err := combat.New(store, logger)
	if err != nil {
		log.Fatal(err)
	}
	build, err := cfg.BuildConfig()
	if err != nil {
		log.Fatal(err)
	}

	out := &TextPresenter{Out: os.Stdout, Decimals: cfg.Decimals}

	if *w > 0 {
		fmt.Printf("Testing stat weights for %v (%v rolls per stat)\n", build.Character, *w)
		weights, err := calc.StatWeights(build, combat.DefaultBumps(*w))
		if err != nil {
			log.Fatal(err)
		}
		out.Weights(weights)
		fmt.Printf("Finished in %s\n", time.Since(start))
		return
	}

	res, err := calc.Calculate(build)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("%v: %v %v (e%v)\n", cfg.Label, build.Character, build.AttackType, build.Eidolon)
	out.Present(res.Damage, res.Stats, res.EffectiveResistance)
	out.LightCone(build.LightCone, res.LightConeActive, store)
	out.Sets(res.Sets, store)
	if p, ok := store.StatPriority(build.Character); ok {
		out.Rating(combat.RateRelics(build.Gear, p, store))
	}
	out.Recommendations(store.LightConeRecommendations(build.Character), store.RelicRecommendations(build.Character))

	fmt.Printf("Running profile %v took %s\n", *pPtr, time.Since(start))
}
