package monte

import (
	"errors"
	"fmt"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/srliao/hsrcalc/pkg/combat"
	"go.uber.org/zap"
)

//Simulator rolls random relic substats for a fixed build and collects the
//expected damage of every roll
type Simulator struct {
	Log *zap.SugaredLogger
	//Luck is the chance in [0, 1] that a roll lands on the top tier
	Luck float64
	//Seed for the worker rngs; 0 seeds from the clock
	Seed int64
	//Progress receives a dotted progress line, nil disables it
	Progress io.Writer

	calc *combat.Calculator
	cfg  combat.BuildConfig
}

//New checks the build once before any rolling
func New(calc *combat.Calculator, cfg combat.BuildConfig, log *zap.SugaredLogger) (*Simulator, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	if _, err := calc.Calculate(cfg); err != nil {
		return nil, err
	}
	return &Simulator{
		Log:  log,
		calc: calc,
		cfg:  cfg.Clone(),
	}, nil
}

type SimResult struct {
	Hist     []float64
	BinStart int64
	Min      float64
	Max      float64
	Mean     float64
	SD       float64
	N        int64
}

type result struct {
	val float64
	err error
}

//SimDmgDist runs n random gear sets over w workers and bins the average
//damage by b
func (s *Simulator) SimDmgDist(n, b, w int64) (SimResult, error) {
	r := SimResult{N: n}
	if n <= 0 || b <= 0 || w <= 0 {
		return r, errors.New("iterations, bin size and workers must be positive")
	}

	s.Log.Debugw("starting dmg sim", "n", n, "b", b, "w", w, "luck", s.Luck)

	var progress float64
	data := make([]float64, 0, n)

	count := n

	resp := make(chan result, n)
	req := make(chan bool)
	done := make(chan bool)
	for i := 0; i < int(w); i++ {
		go s.worker(int64(i), resp, req, done)
	}

	//hand out a job whenever a worker is free
	go func() {
		var wip int64
		for wip < n {
			select {
			case req <- true:
				wip++
			case <-done:
				return
			}
		}
	}()

	s.progressf("\tProgress: 0")

	var err error
	for count > 0 {
		v := <-resp
		count--
		if v.err != nil {
			err = v.err
			break
		}

		data = append(data, v.val)

		if (1 - float64(count)/float64(n)) > (progress + 0.01) {
			progress = (1 - float64(count)/float64(n))
			s.progressf(".%.0f", 100*progress)
		}
	}
	close(done)
	if err != nil {
		return r, err
	}
	s.progressf("...100%%\n")

	r.bin(data, b)
	s.Log.Debugw("dmg sim done", "min", r.Min, "max", r.Max, "mean", r.Mean, "sd", r.SD)

	return r, nil
}

//bin fills the summary stats and the histogram. Bins are floored so negative
//samples land in the bin below zero.
func (r *SimResult) bin(data []float64, b int64) {
	r.Min = math.MaxFloat64
	r.Max = -math.MaxFloat64
	var sum, ss float64
	for _, v := range data {
		sum += v
		if v < r.Min {
			r.Min = v
		}
		if v > r.Max {
			r.Max = v
		}
	}
	if len(data) == 0 {
		r.Min, r.Max = 0, 0
		r.Hist = nil
		return
	}
	r.Mean = sum / float64(len(data))

	bf := float64(b)
	r.BinStart = int64(math.Floor(r.Min/bf)) * b
	binMax := (int64(math.Floor(r.Max/bf)) + 1) * b
	numBin := ((binMax - r.BinStart) / b) + 1

	r.Hist = make([]float64, numBin)
	for _, v := range data {
		ss += (v - r.Mean) * (v - r.Mean)
		steps := int64(math.Floor((v - float64(r.BinStart)) / bf))
		r.Hist[steps]++
	}
	r.SD = math.Sqrt(ss / float64(len(data)))
}

func (s *Simulator) progressf(format string, a ...interface{}) {
	if s.Progress != nil {
		fmt.Fprintf(s.Progress, format, a...)
	}
}

func (s *Simulator) worker(id int64, resp chan result, req chan bool, done chan bool) {
	seed := s.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rand := rand.New(rand.NewSource(seed + id))

	for {
		select {
		case <-req:
			cfg := s.cfg.Clone()
			for _, slot := range combat.Slots {
				cfg.Gear[slot] = RandPiece(slot, cfg.Gear[slot].Main, s.Luck, rand)
			}
			res, err := s.calc.Calculate(cfg)
			resp <- result{val: res.Damage.Average, err: err}
		case <-done:
			return
		}
	}
}
