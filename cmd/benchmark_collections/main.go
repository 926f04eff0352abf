package main

import (
	"context"
	"encoding/binary"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/delaneyj/bindparty/collections"
	"github.com/delaneyj/bindparty/internal/benchconfig"
	"github.com/delaneyj/bindparty/internal/logging"
	"github.com/delaneyj/bindparty/observable"
	"github.com/delaneyj/bindparty/property"
	"github.com/dustin/go-humanize"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v3"
)

const (
	configKey = "config"
	jsonKey   = "json"
)

func main() {
	cmd := &cli.Command{
		Name:  "benchmark_collections",
		Usage: "Measure list changes flowing through filtered and sorted views",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: configKey, Usage: "TOML or YAML scenario file"},
			&cli.StringFlag{Name: jsonKey, Usage: "Also write the results as JSON to this file"},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type item struct {
	id    int
	score *property.Property[int]
}

func itemScore(it *item) []observable.Observable {
	return []observable.Observable{it.score}
}

func byScore(a, b *item) int {
	if d := a.score.Value() - b.score.Value(); d != 0 {
		return d
	}
	return a.id - b.id
}

// pipeline is source -> filtered -> sorted.
type pipeline struct {
	source   *collections.ArrayList[*item]
	filtered *collections.FilteredList[*item]
	sorted   *collections.SortedList[*item]
	changes  int
}

func newPipeline() *pipeline {
	p := &pipeline{source: collections.NewArrayListWithExtractor(itemScore)}
	p.filtered = collections.NewFilteredList[*item](p.source, func(it *item) bool {
		return it.score.Value()%3 != 0
	})
	p.sorted = collections.NewSortedList[*item](p.filtered, byScore)
	collections.OnListChanged[*item](p.sorted, func(*collections.Change[*item]) {
		p.changes++
	})
	return p
}

// digest hashes the ids in the sorted view, so repeats can be checked
// against each other.
func (p *pipeline) digest() uint64 {
	h := xxhash.New()
	var buf [8]byte
	for i := range p.sorted.Len() {
		binary.LittleEndian.PutUint64(buf[:], uint64(p.sorted.Get(i).id))
		h.Write(buf[:])
	}
	return h.Sum64()
}

type scenario struct {
	name string
	run  func(p *pipeline, rng *rand.Rand, n int, fraction float64) (ops int)
}

var scenarios = []scenario{
	{name: "bulk insert", run: func(p *pipeline, rng *rand.Rand, n int, _ float64) int {
		p.source.Add(makeItems(rng, n)...)
		return n
	}},
	{name: "single inserts", run: func(p *pipeline, rng *rand.Rand, n int, _ float64) int {
		for _, it := range makeItems(rng, n) {
			p.source.Insert(rng.Intn(p.source.Len()+1), it)
		}
		return n
	}},
	{name: "element updates", run: func(p *pipeline, rng *rand.Rand, n int, fraction float64) int {
		p.source.Add(makeItems(rng, n)...)
		k := int(float64(n) * fraction)
		for range k {
			it := p.source.Get(rng.Intn(n))
			if err := it.score.Set(rng.Intn(n * 10)); err != nil {
				panic(err)
			}
		}
		return k
	}},
	{name: "comparator swap", run: func(p *pipeline, rng *rand.Rand, n int, _ float64) int {
		p.source.Add(makeItems(rng, n)...)
		if err := p.sorted.SetComparator(collections.Reversed(collections.Comparator[*item](byScore))); err != nil {
			panic(err)
		}
		return p.sorted.Len()
	}},
	{name: "remove if", run: func(p *pipeline, rng *rand.Rand, n int, _ float64) int {
		p.source.Add(makeItems(rng, n)...)
		return p.source.RemoveIf(func(it *item) bool { return it.id%2 == 0 })
	}},
}

func makeItems(rng *rand.Rand, n int) []*item {
	items := make([]*item, n)
	for i := range items {
		items[i] = &item{id: i, score: property.New(rng.Intn(n * 10))}
	}
	return items
}

type result struct {
	Scenario string        `json:"scenario"`
	Size     int           `json:"size"`
	Ops      int           `json:"ops"`
	Best     time.Duration `json:"best"`
	View     int           `json:"view"`
	Changes  int           `json:"changes"`
	Digest   string        `json:"digest"`
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
	log.Info().Msg("starting collections benchmark, please wait...")
	defer log.Info().Msg("finished collections benchmark")

	tbl := tablewriter.NewWriter(os.Stdout)
	tbl.SetHeader([]string{"scenario", "size", "ops", "best", "ops/ms", "view", "changes", "digest"})

	var results []result
	for _, sc := range scenarios {
		for _, n := range cfg.Collections.Sizes {
			r, err := measure(log, sc, n, cfg.Collections)
			if err != nil {
				return err
			}
			results = append(results, r)

			rate := float64(r.Ops) / (float64(r.Best) / float64(time.Millisecond))
			tbl.Append([]string{
				r.Scenario,
				humanize.Comma(int64(r.Size)),
				humanize.Comma(int64(r.Ops)),
				fmt.Sprint(r.Best),
				humanize.Comma(int64(rate)),
				humanize.Comma(int64(r.View)),
				fmt.Sprint(r.Changes),
				r.Digest,
			})
		}
	}
	tbl.Render()

	if path := cmd.String(jsonKey); path != "" {
		b, err := json.MarshalIndent(results, "", "  ")
		if err != nil {
			return err
		}
		return os.WriteFile(path, b, 0644)
	}
	return nil
}

// measure runs sc on a fresh pipeline cfg.Repeats times, after one warm up
// run, and keeps the fastest. Every run uses the same seed so every run must
// end with the same view.
func measure(log zerolog.Logger, sc scenario, n int, cfg benchconfig.CollectionsConfig) (result, error) {
	once := func() (result, uint64) {
		p := newPipeline()
		rng := rand.New(rand.NewSource(cfg.Seed))
		start := time.Now()
		ops := sc.run(p, rng, n, cfg.UpdateFraction)
		took := time.Since(start)
		return result{
			Scenario: sc.name, Size: n, Ops: ops, Best: took,
			View: p.sorted.Len(), Changes: p.changes,
		}, p.digest()
	}

	best, want := once()
	best.Best = time.Hour
	for i := range cfg.Repeats {
		log.Debug().Str("scenario", sc.name).Int("size", n).Msgf("repeat %d/%d", i+1, cfg.Repeats)
		r, digest := once()
		if digest != want {
			return result{}, fmt.Errorf("%s (%d): view digest %x differs from %x", sc.name, n, digest, want)
		}
		if r.Best < best.Best {
			best = r
		}
	}
	best.Digest = fmt.Sprintf("%016x", want)
	return best, nil
}
