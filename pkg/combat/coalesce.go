package combat

import "sync"

//Coalescer recalculates on every submitted build but never queues: while a
//calculation runs, newer submissions replace each other and only the latest
//is calculated next.
type Coalescer struct {
	calc *Calculator
	out  func(BuildConfig, Result, error)

	mu      sync.Mutex
	pending *BuildConfig
	running bool
	wg      sync.WaitGroup
}

func NewCoalescer(c *Calculator, out func(BuildConfig, Result, error)) *Coalescer {
	return &Coalescer{calc: c, out: out}
}

//Submit schedules cfg, superseding anything not yet started
func (co *Coalescer) Submit(cfg BuildConfig) {
	cfg = cfg.Clone()
	co.mu.Lock()
	co.pending = &cfg
	if co.running {
		co.mu.Unlock()
		return
	}
	co.running = true
	co.wg.Add(1)
	co.mu.Unlock()
	go co.loop()
}

func (co *Coalescer) loop() {
	defer co.wg.Done()
	for {
		co.mu.Lock()
		if co.pending == nil {
			co.running = false
			co.mu.Unlock()
			return
		}
		cfg := *co.pending
		co.pending = nil
		co.mu.Unlock()

		r, err := co.calc.Calculate(cfg)
		co.out(cfg, r, err)
	}
}

//Wait blocks until no calculation is running or pending
func (co *Coalescer) Wait() {
	co.wg.Wait()
}
