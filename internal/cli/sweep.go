package cli

import (
	"fmt"
	"runtime"
	"sort"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"text-ca/pkg/life"
	"text-ca/pkg/rule"
)

type sweepResult struct {
	seed     int64
	finalPop int
	peakPop  int
	turnover int
	extinct  uint64 // generation the grid died out; 0 means it survived
}

// NewSweepCommand creates the sweep command.
func NewSweepCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		width   int
		height  int
		ruleArg string
		edgeArg string
		gens    uint64
		seeds   int
		start   int64
		workers int
		top     int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Run many seeds in parallel and rank the outcomes",
		Long: `Sweep runs the same automaton from a range of soup seeds, in
parallel, and ranks the seeds by how much of the grid is still alive
at the end. Useful for hunting long-lived or dense starting soups.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSweep(cmd, width, height, ruleArg, edgeArg, gens, seeds, start, workers, top)
		},
	}

	f := cmd.Flags()
	f.IntVar(&width, "width", 64, "grid width in cells")
	f.IntVar(&height, "height", 64, "grid height in cells")
	f.StringVar(&ruleArg, "rule", "life", "rule preset or B/S notation")
	f.StringVar(&edgeArg, "edge", "wrap", "edge mode: wrap, dead or alive")
	f.Uint64Var(&gens, "gens", 256, "generations to run per seed")
	f.IntVar(&seeds, "seeds", 64, "number of seeds to sweep")
	f.Int64Var(&start, "start", 1, "first seed; seed 0 is the canonical start pattern")
	f.IntVar(&workers, "workers", runtime.NumCPU(), "number of worker goroutines")
	f.IntVar(&top, "top", 5, "how many results to report")

	return cmd
}

func runSweep(cmd *cobra.Command, width, height int, ruleArg, edgeArg string, gens uint64, seeds int, start int64, workers, top int) error {
	r, err := rule.Resolve(ruleArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "resolve rule", err)
	}
	edge, err := life.ParseEdgeMode(edgeArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "parse edge mode", err)
	}
	if seeds <= 0 {
		return NewExitError(ExitCommandError, "sweep needs at least one seed")
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if top <= 0 {
		top = 5
	}

	cfg := life.Config{Width: width, Height: height, Rule: r, Edge: edge}
	if _, err := life.NewWithConfig(cfg); err != nil {
		return WrapExitError(ExitCommandError, "configure universe", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Sweeping %d seeds (%d workers, %d generations, rule %s, %dx%d %s)\n",
		seeds, workers, gens, r, width, height, edge)

	jobs := make(chan int64)
	results := make(chan sweepResult)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for seed := range jobs {
				results <- sweepSeed(cfg, seed, gens)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for i := 0; i < seeds; i++ {
			jobs <- start + int64(i)
		}
		close(jobs)
	}()

	began := time.Now()
	var all []sweepResult
	for res := range results {
		all = append(all, res)
	}

	sort.Slice(all, func(i, j int) bool {
		if all[i].finalPop != all[j].finalPop {
			return all[i].finalPop > all[j].finalPop
		}
		if all[i].peakPop != all[j].peakPop {
			return all[i].peakPop > all[j].peakPop
		}
		return all[i].seed < all[j].seed
	})
	elapsed := time.Since(began)

	fmt.Fprintf(out, "\nTop %d results (elapsed %s):\n", top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(all) && i < top; i++ {
		res := all[i]
		extinct := "-"
		if res.extinct > 0 {
			extinct = fmt.Sprintf("%d", res.extinct)
		}
		fmt.Fprintf(out, "%2d) seed=%-7d final=%-6d peak=%-6d turnover=%-9d extinct=%s\n",
			i+1, res.seed, res.finalPop, res.peakPop, res.turnover, extinct)
	}
	return nil
}

// sweepSeed runs one seed to its generation budget. Runs stop early
// once the grid dies out, unless the rule births on zero neighbors.
func sweepSeed(cfg life.Config, seed int64, gens uint64) sweepResult {
	cfg.Seed = seed
	u, err := life.NewWithConfig(cfg)
	if err != nil {
		return sweepResult{seed: seed}
	}

	stopOnExtinct := !u.Rule().Born(0)
	res := sweepResult{seed: seed, finalPop: u.Population()}
	res.peakPop = res.finalPop

	for g := uint64(0); g < gens; g++ {
		u.Step()
		c := u.Census()
		res.turnover += c.Born + c.Died
		res.finalPop = c.Population
		if c.Population > res.peakPop {
			res.peakPop = c.Population
		}
		if c.Population == 0 && stopOnExtinct {
			res.extinct = c.Generation
			break
		}
	}
	return res
}
