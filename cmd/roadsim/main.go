// Command roadsim drives seeded sessions headlessly with the autopilot and
// reports how far each one got.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"sort"
	"text/tabwriter"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/golangdaddy/swerve/pkg/config"
	"github.com/golangdaddy/swerve/pkg/logging"
	"github.com/golangdaddy/swerve/pkg/sim"
)

// tickMs is the fixed step, one 60 Hz frame.
const tickMs = 1000.0 / 60

type result struct {
	Episode  int
	Seed     uint64
	Ticks    int
	Distance float64
	Score    int
	Crashed  bool
}

func main() {
	var (
		configPath = flag.String("config", "", "path to a YAML config file")
		logLevel   = flag.String("log-level", "", "log level (debug, info, warn, error); overrides the config")
		episodes   = flag.Int("episodes", 8, "number of sessions to run")
		ticks      = flag.Int("ticks", 60*120, "tick limit per session")
		seed       = flag.String("seed", "swerve", "seed phrase or number; episode i uses seed+i")
		workers    = flag.Int("workers", 0, "parallel sessions (0 = one per episode)")
	)
	flag.Parse()

	cfg, err := config.LoadFile(*configPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	results, err := run(context.Background(), cfg, logger, sim.SeedFromPhrase(*seed), *episodes, *ticks, *workers)
	if err != nil {
		logger.Fatal("run failed", zap.Error(err))
	}
	report(results)
}

// run plays the episodes in parallel. Each has its own session and RNG.
func run(ctx context.Context, cfg config.Config, logger *zap.Logger, base uint64, episodes, ticks, workers int) ([]result, error) {
	stats := sim.CarStats(cfg.Car)
	results := make([]result, episodes)

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i := 0; i < episodes; i++ {
		g.Go(func() error {
			seed := base + uint64(i)
			epLog := logger.With(zap.Int("episode", i), zap.Uint64("seed", seed))
			s := sim.NewSession(cfg, stats, sim.NewRand(seed), epLog)
			pilot := sim.NewAutopilot()
			for t := 0; t < ticks && !s.GameOver(); t++ {
				if t%1024 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				s.Update(pilot.Controls(s), tickMs)
			}
			results[i] = result{
				Episode:  i,
				Seed:     seed,
				Ticks:    s.Ticks(),
				Distance: s.Distance(),
				Score:    s.Score(),
				Crashed:  s.GameOver(),
			}
			epLog.Info("episode done", zap.Int("score", s.Score()), zap.Bool("crashed", s.GameOver()))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("episodes: %w", err)
	}
	return results, nil
}

func report(results []result) {
	sort.Slice(results, func(i, j int) bool { return results[i].Score > results[j].Score })
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "EPISODE\tSEED\tTICKS\tDISTANCE\tSCORE\tCRASHED")
	for _, r := range results {
		fmt.Fprintf(w, "%d\t%d\t%d\t%.0f\t%d\t%v\n", r.Episode, r.Seed, r.Ticks, r.Distance, r.Score, r.Crashed)
	}
	w.Flush()
}
