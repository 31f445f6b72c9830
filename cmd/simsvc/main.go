package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/rs/zerolog/log"

	"tactics_ai/internal/ability"
	"tactics_ai/internal/combat"
	"tactics_ai/internal/config"
	"tactics_ai/internal/logger"
	"tactics_ai/internal/util"
)

func main() {
	var cfgDir, scenario, out, level string
	var seed int64
	var n, workers int
	var saveLog bool
	flag.StringVar(&cfgDir, "config", "assets", "config dir")
	flag.StringVar(&scenario, "scenario", "ambush", "scenario name under <config>/scenarios")
	flag.StringVar(&out, "out", "out.json", "output file (single) or summary file (batch)")
	flag.Int64Var(&seed, "seed", 12345, "seed")
	flag.IntVar(&n, "n", 1, "number of evaluations")
	flag.IntVar(&workers, "workers", 8, "parallel workers for batch runs")
	flag.BoolVar(&saveLog, "log", true, "save full event log when n==1")
	flag.StringVar(&level, "level", "", "log level (defaults to LOG_LEVEL or info)")
	flag.Parse()

	logger.Init(level)

	abilities, sc, err := config.LoadAll(cfgDir, scenario)
	if err != nil {
		log.Fatal().Err(err).Str("config", cfgDir).Str("scenario", scenario).Msg("load config")
	}
	book := ability.NewBook(abilities)

	if n <= 1 {
		env := &combat.Env{Rng: util.New(seed)}
		battle, err := combat.Build(sc, book, env.Rng)
		if err != nil {
			log.Fatal().Err(err).Msg("build battle")
		}
		res := combat.RunSingle(env, battle, saveLog)
		if err := os.WriteFile(out, combat.MarshalPretty(res), 0644); err != nil {
			log.Fatal().Err(err).Str("out", out).Msg("write result")
		}
		log.Info().Str("battle", res.Battle).Str("victor", res.Victor).Int("options", len(res.Options)).
			Str("out", out).Msg("single evaluation finished")
		return
	}

	type tally struct {
		Runs       int
		Executable int
		SumScore   int
		Moves      map[string]int
	}
	stats := map[string]*tally{}
	for _, od := range sc.Options {
		stats[od.ID] = &tally{Moves: map[string]int{}}
	}
	decided := 0

	if workers < 1 {
		workers = 1
	}
	var mu sync.Mutex
	var wg sync.WaitGroup
	jobs := make(chan int, n)
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				// Each job owns its battle, so casters are never shared across workers.
				env := &combat.Env{Time: float64(i), Rng: util.New(util.JobSeed(seed, i))}
				battle, err := combat.Build(sc, book, env.Rng)
				if err != nil {
					log.Error().Err(err).Int("job", i).Msg("build battle")
					continue
				}
				res := combat.RunSingle(env, battle, false)

				mu.Lock()
				if len(res.Options) == 0 {
					decided++
				}
				for _, or := range res.Options {
					st := stats[or.ID]
					st.Runs++
					st.SumScore += or.Score
					if or.Executable {
						st.Executable++
						st.Moves[fmt.Sprintf("%d,%d", or.BestMove.X, or.BestMove.Y)]++
					}
				}
				mu.Unlock()
			}
		}()
	}
	for i := 0; i < n; i++ {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	options := map[string]any{}
	for id, st := range stats {
		avg := 0.0
		if st.Runs > 0 {
			avg = float64(st.SumScore) / float64(st.Runs)
		}
		moves := map[string]any{}
		for k, v := range st.Moves {
			moves[k] = map[string]any{"count": v, "ratio": float64(v) / float64(st.Executable)}
		}
		options[id] = map[string]any{
			"runs":       st.Runs,
			"executable": st.Executable,
			"avg_score":  avg,
			"best_moves": moves,
		}
	}
	summary := map[string]any{
		"battle":  sc.ID,
		"runs":    n,
		"decided": decided,
		"options": options,
	}
	if err := os.WriteFile(out, combat.MarshalPretty(summary), 0644); err != nil {
		log.Fatal().Err(err).Str("out", out).Msg("write summary")
	}
	log.Info().Int("runs", n).Int("workers", workers).Str("out", filepath.Base(out)).Msg("batch finished")
}
