package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/srliao/hsrcalc/internal/config"
	"github.com/srliao/hsrcalc/internal/data"
	"github.com/srliao/hsrcalc/pkg/combat"
	"github.com/srliao/hsrcalc/pkg/monte"
)

func main() {
	t := flag.Int64("t", 100000, "how many iterations")
	prf := flag.String("p", "config.yaml", "which profile to use")
	worker := flag.Int64("w", 0, "number of workers, defaults to HSR_WORKERS")
	bin := flag.Int64("b", 100, "bin size")
	luck := flag.Float64("l", 0, "chance of a top tier roll, 0 to 1")
	seed := flag.Int64("s", 0, "rng seed, 0 seeds from the clock")
	out := flag.String("o", "out.html", "output file")
	flag.Parse()

	cfg, err := combat.LoadProfile(*prf)
	if err != nil {
		log.Fatal(err)
	}
	e, err := config.ParseEnv()
	if err != nil {
		log.Fatal(err)
	}
	e.Apply(&cfg)
	if *worker <= 0 {
		*worker = int64(e.Workers)
	}

	logger, err := combat.NewLogger(cfg.LogConfig)
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	store, err := data.NewLoader(e.DataDir, logger).Load(context.Background())
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

	start := time.Now()
	sim, err := monte.New(calc, build, logger)
	if err != nil {
		log.Fatal(err)
	}
	sim.Luck = *luck
	sim.Seed = *seed
	sim.Progress = os.Stdout

	r, err := sim.SimDmgDist(*t, *bin, *worker)
	if err != nil {
		log.Fatal(err)
	}
	elapsed := time.Since(start)
	fmt.Printf("Profile %v done in %s\n", *prf, elapsed)

	graph, err := os.Create(*out)
	if err != nil {
		log.Fatal(err)
	}
	defer graph.Close()
	if err := render(graph, r, fmt.Sprintf("%v (n = %v)", *prf, *t), *bin); err != nil {
		log.Fatal(err)
	}
}

//render writes the histogram page; the legend carries the summary stats
func render(w io.Writer, r monte.SimResult, title string, binSize int64) error {
	page := components.NewPage()
	page.PageTitle = "simulation results"

	var bins []int64
	var items []opts.LineData
	var cumul, med float64
	med = -1

	for i, v := range r.Hist {
		bins = append(bins, r.BinStart+binSize*int64(i))
		items = append(items, opts.LineData{Value: v})
		cumul += v / float64(r.N)
		if cumul >= 0.5 && med == -1 {
			med = float64(i)
		}
	}

	med = float64(r.BinStart) + med*float64(binSize)
	label := fmt.Sprintf("min: %.2f, max %.2f, mean: %.2f, med: %.2f, sd: %.2f", r.Min, r.Max, r.Mean, med, r.SD)

	lineChart := charts.NewLine()
	lineChart.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name: "Freq",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name: "Expected dmg",
		}),
		charts.WithLegendOpts(opts.Legend{Show: true, Top: "5%", Right: "0%", Orient: "vertical", Data: []string{label}}),
	)
	lineChart.AddSeries(label, items)
	lineChart.SetXAxis(bins)

	page.AddCharts(
		lineChart,
	)
	return page.Render(w)
}
