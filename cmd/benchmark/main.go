package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/bindparty/internal/benchconfig"
	"github.com/delaneyj/bindparty/internal/logging"
	"github.com/delaneyj/bindparty/observable"
	"github.com/delaneyj/bindparty/property"
	"github.com/goccy/go-json"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	configKey  = "config"
	jsonKey    = "json"
	profileKey = "cpuprofile"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark",
		Usage: "Measure how fast a write propagates through chains of bindings",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: configKey, Usage: "TOML or YAML scenario file"},
			&cli.StringFlag{Name: jsonKey, Usage: "Also write the results as JSON to this file"},
			&cli.StringFlag{Name: profileKey, Usage: "CPU profile output", Value: "default.pgo"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type result struct {
	Mode   string        `json:"mode"`
	Width  int           `json:"width"`
	Height int           `json:"height"`
	Avg    time.Duration `json:"avg"`
	Min    time.Duration `json:"min"`
	P75    time.Duration `json:"p75"`
	P99    time.Duration `json:"p99"`
	Max    time.Duration `json:"max"`
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := benchconfig.Load(cmd.String(configKey))
	if err != nil {
		return err
	}
	log, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		return err
	}

	if path := cmd.String(profileKey); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return err
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}

	log.Info().Msg("warming up")
	if _, err := benchmarkPropagation(log, "eager", benchconfig.PropagationConfig{
		Widths: []int{10}, Heights: []int{10}, Iterations: cfg.Propagation.Iterations,
	}, false); err != nil {
		return err
	}

	var results []result
	for _, mode := range []string{"eager", "lazy"} {
		rs, err := benchmarkPropagation(log, mode, cfg.Propagation, true)
		if err != nil {
			return err
		}
		results = append(results, rs...)
	}

	if path := cmd.String(jsonKey); path != "" {
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		if err := os.WriteFile(path, b, 0644); err != nil {
			return err
		}
		log.Info().Str("path", path).Int("results", len(results)).Msg("wrote report")
	}
	return nil
}

func addOne(v int) int {
	return v + 1
}

// chains hangs w chains of h bindings off src and returns the leaves.
func chains(src *property.Property[int], w, h int) []*property.Binding[int] {
	leaves := make([]*property.Binding[int], 0, w)
	for range w {
		var last observable.ObservableValue[int] = src
		var leaf *property.Binding[int]
		for range h {
			leaf = property.Map(last, addOne)
			last = leaf
		}
		leaves = append(leaves, leaf)
	}
	return leaves
}

// benchmarkPropagation times writes to a single source. In eager mode every
// leaf has a change listener, so each write recomputes every chain before Set
// returns. In lazy mode leaves only hear invalidations and are read back
// after the write.
func benchmarkPropagation(log zerolog.Logger, mode string, cfg benchconfig.PropagationConfig, shouldRender bool) ([]result, error) {
	tbl := table.NewWriter()
	tbl.SetTitle("Binding propagation (" + mode + ")")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	var results []result
	for _, w := range cfg.Widths {
		for _, h := range cfg.Heights {
			tach := tachymeter.New(&tachymeter.Config{Size: cfg.Iterations})

			src := property.New(1)
			leaves := chains(src, w, h)
			seen := 0
			for _, leaf := range leaves {
				if mode == "eager" {
					observable.OnChanged[int](leaf, func(_ observable.ObservableValue[int], _, v int) {
						seen = v
					})
				} else {
					observable.OnInvalidated(leaf, func(observable.Observable) {})
				}
			}

			for range cfg.Iterations {
				start := time.Now()
				if err := src.Set(src.Value() + 1); err != nil {
					return nil, err
				}
				if mode == "lazy" {
					for _, leaf := range leaves {
						seen = leaf.Value()
					}
				}
				tach.AddTime(time.Since(start))
			}

			if want := src.Value() + h; seen != want {
				return nil, fmt.Errorf("propagate %d * %d (%s): leaf saw %d, want %d", w, h, mode, seen, want)
			}
			runtime.KeepAlive(leaves)

			calc := tach.Calc()
			log.Debug().Str("mode", mode).Int("width", w).Int("height", h).Dur("avg", calc.Time.Avg).Msg("scenario done")
			results = append(results, result{
				Mode: mode, Width: w, Height: h,
				Avg: calc.Time.Avg, Min: calc.Time.Min, P75: calc.Time.P75, P99: calc.Time.P99, Max: calc.Time.Max,
			})
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
	return results, nil
}
