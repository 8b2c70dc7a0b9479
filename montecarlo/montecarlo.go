package montecarlo

import (
	"errors"
	"runtime"
	"sync"

	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/crosswalk/sample"
	"github.com/katalvlaran/crosswalk/sim"
)

// ErrNoTrials indicates a non-positive trial count.
var ErrNoTrials = errors.New("montecarlo: trial count must be positive")

// Options configures a batch run.
type Options struct {
	// Trials is the number of independent walks to simulate.
	Trials int
	// Seed is the base seed; 0 maps to the sampler's fixed default.
	// Per-trial streams are derived from it, never shared.
	Seed int64
	// Workers bounds the parallel fan-out; <=0 means one per CPU.
	Workers int
	// Bounds are the sampling intervals for every trial.
	Bounds sample.Bounds
}

// DefaultOptions mirrors the reference driver: a thousand trials on all CPUs
// with the canonical bounds.
func DefaultOptions() Options {
	return Options{
		Trials: 1000,
		Bounds: sample.DefaultBounds(),
	}
}

// Trial is the collected output of one terminated walk: the walker's patience
// echoed for correlation, and the mean wait per signal actually waited at.
// MeanWait is meaningful only when MeanValid is true.
type Trial struct {
	Index     int
	Patience  float64
	MeanWait  float64
	MeanValid bool
	Waits     int
	Clock     float64
}

// Summary aggregates a batch.
type Summary struct {
	Trials           int
	MeanPatience     float64
	MeanWaitPerLight float64
	// PatienceWaitCorr is the Pearson correlation between patience and mean
	// wait across trials with a defined mean.
	PatienceWaitCorr float64
}

// Run executes opts.Trials independent walks and returns one Trial per walk,
// ordered by index. Results depend only on (Seed, Bounds, Trials), not on the
// worker count.
// Complexity: O(Trials × walk length) work, O(Trials) memory.
func Run(opts Options) ([]Trial, error) {
	if opts.Trials <= 0 {
		return nil, ErrNoTrials
	}
	base, err := sample.NewWithBounds(opts.Seed, opts.Bounds)
	if err != nil {
		return nil, err
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > opts.Trials {
		workers = opts.Trials
	}

	trials := make([]Trial, opts.Trials)
	indices := make(chan int)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range indices {
				src := base.Derive(uint64(i))
				walk, werr := sim.NewWalk(src)
				if werr == nil {
					werr = walk.Run()
				}
				if werr != nil {
					mu.Lock()
					if firstErr == nil {
						firstErr = werr
					}
					mu.Unlock()
					continue
				}
				res := walk.Result()
				trials[i] = Trial{
					Index:     i,
					Patience:  res.Patience,
					MeanWait:  res.MeanWait,
					MeanValid: res.MeanValid,
					Waits:     res.Waits,
					Clock:     res.Clock,
				}
			}
		}()
	}
	for i := 0; i < opts.Trials; i++ {
		indices <- i
	}
	close(indices)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return trials, nil
}

// Summarize reduces trials to means and the patience/wait correlation.
// Trials without a defined mean wait are excluded from the wait statistics.
// Complexity: O(len(trials)).
func Summarize(trials []Trial) Summary {
	patience := make([]float64, 0, len(trials))
	waits := make([]float64, 0, len(trials))
	for _, tr := range trials {
		if !tr.MeanValid {
			continue
		}
		patience = append(patience, tr.Patience)
		waits = append(waits, tr.MeanWait)
	}
	s := Summary{Trials: len(trials)}
	if len(patience) == 0 {
		return s
	}
	s.MeanPatience = stat.Mean(patience, nil)
	s.MeanWaitPerLight = stat.Mean(waits, nil)
	if len(patience) > 1 {
		s.PatienceWaitCorr = stat.Correlation(patience, waits, nil)
	}
	return s
}
