// Command crosswalk runs a batch of crosswalk walk trials and reports how
// walker patience relates to the mean wait per signal. Optionally writes the
// raw trials as CSV and a patience-vs-wait scatter plot as PNG.
package main

import (
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/crosswalk/montecarlo"
	"github.com/katalvlaran/crosswalk/sample"
)

func main() {
	var (
		trials     = flag.Int("n", 1000, "number of independent trials")
		seed       = flag.Int64("seed", 0, "base seed (0 = fixed default)")
		workers    = flag.Int("workers", 0, "parallel workers (0 = one per CPU)")
		configPath = flag.String("config", "", "optional YAML file overriding sampling bounds")
		csvPath    = flag.String("csv", "", "optional path for raw trial CSV output")
		plotPath   = flag.String("plot", "", "optional path for a patience/wait scatter PNG")
	)
	flag.Parse()

	bounds := sample.DefaultBounds()
	if *configPath != "" {
		b, err := loadBounds(*configPath, bounds)
		if err != nil {
			log.Fatalf("config: %v", err)
		}
		bounds = b
	}

	results, err := montecarlo.Run(montecarlo.Options{
		Trials:  *trials,
		Seed:    *seed,
		Workers: *workers,
		Bounds:  bounds,
	})
	if err != nil {
		log.Fatalf("run: %v", err)
	}

	s := montecarlo.Summarize(results)
	log.Printf("trials=%d mean_patience=%.2fs mean_wait_per_light=%.2fs corr=%.3f",
		s.Trials, s.MeanPatience, s.MeanWaitPerLight, s.PatienceWaitCorr)

	if *csvPath != "" {
		if err := writeCSV(*csvPath, results); err != nil {
			log.Fatalf("csv: %v", err)
		}
		log.Printf("wrote %s", *csvPath)
	}
	if *plotPath != "" {
		if err := writeScatter(*plotPath, results); err != nil {
			log.Fatalf("plot: %v", err)
		}
		log.Printf("wrote %s", *plotPath)
	}
}

// intervalConfig and boundsConfig are the YAML mirror of sample.Bounds;
// omitted sections keep their defaults.
type intervalConfig struct {
	Lo float64 `yaml:"lo"`
	Hi float64 `yaml:"hi"`
}

type boundsConfig struct {
	CrossingLength *intervalConfig `yaml:"crossing_length"`
	SignalDuration *intervalConfig `yaml:"signal_duration"`
	SidewalkLength *intervalConfig `yaml:"sidewalk_length"`
	WalkerVelocity *intervalConfig `yaml:"walker_velocity"`
	WalkerPatience *intervalConfig `yaml:"walker_patience"`
	GridExtent     *intervalConfig `yaml:"grid_extent"`
}

func loadBounds(path string, defaults sample.Bounds) (sample.Bounds, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return defaults, err
	}
	var cfg boundsConfig
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return defaults, err
	}
	b := defaults
	apply := func(dst *sample.Interval, src *intervalConfig) {
		if src != nil {
			*dst = sample.Interval{Lo: src.Lo, Hi: src.Hi}
		}
	}
	apply(&b.CrossingLength, cfg.CrossingLength)
	apply(&b.SignalDuration, cfg.SignalDuration)
	apply(&b.SidewalkLength, cfg.SidewalkLength)
	apply(&b.WalkerVelocity, cfg.WalkerVelocity)
	apply(&b.WalkerPatience, cfg.WalkerPatience)
	apply(&b.GridExtent, cfg.GridExtent)
	if err := b.Validate(); err != nil {
		return defaults, err
	}
	return b, nil
}

func writeCSV(path string, trials []montecarlo.Trial) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"trial", "patience", "mean_wait", "waits", "clock"}); err != nil {
		return err
	}
	for _, tr := range trials {
		mean := "" // undefined when no wait was ever accrued
		if tr.MeanValid {
			mean = strconv.FormatFloat(tr.MeanWait, 'f', -1, 64)
		}
		rec := []string{
			strconv.Itoa(tr.Index),
			strconv.FormatFloat(tr.Patience, 'f', -1, 64),
			mean,
			strconv.Itoa(tr.Waits),
			strconv.FormatFloat(tr.Clock, 'f', -1, 64),
		}
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

func writeScatter(path string, trials []montecarlo.Trial) error {
	pts := make(plotter.XYs, 0, len(trials))
	for _, tr := range trials {
		if !tr.MeanValid {
			continue
		}
		pts = append(pts, plotter.XY{X: tr.Patience, Y: tr.MeanWait})
	}
	if len(pts) == 0 {
		return fmt.Errorf("no trials with a defined mean wait")
	}

	p := plot.New()
	p.Title.Text = "wait tolerance vs. mean wait per light"
	p.X.Label.Text = "patience (s)"
	p.Y.Label.Text = "mean wait per light (s)"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	sc.GlyphStyle.Radius = vg.Points(1.5)
	p.Add(sc)

	return p.Save(6*vg.Inch, 4*vg.Inch, path)
}
