package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"slices"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/SortVis/internal/config"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/formatter"
	"github.com/yildizm/SortVis/internal/logger"
	"github.com/yildizm/SortVis/internal/sorting"
	"golang.org/x/sync/errgroup"
)

type benchOptions struct {
	algorithms  []string
	arrangement string
	size        int
	seed        uint64
	maxTicks    int
	parallel    int
	outputFile  string
}

func newBenchCommand() *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Compare algorithms on the same array",
		Long: `Run several algorithms on copies of one starting array and compare their
steps, comparisons and array accesses.

Every algorithm gets its own session; sessions run concurrently but each is
driven by a single goroutine. Runs that exceed --max-ticks are reported as
"gave up", which is the usual outcome for bogo sort on large arrays.

Examples:
  sortvis bench
  sortvis bench --size 8 --algorithms bubble,selection,bogo
  sortvis bench --arrangement reversed -o csv`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts)
		},
	}

	supported := make([]string, 0, len(sorting.SupportedKinds()))
	for _, k := range sorting.SupportedKinds() {
		supported = append(supported, k.String())
	}

	cmd.Flags().StringSliceVar(&opts.algorithms, "algorithms", supported, "algorithms to compare")
	cmd.Flags().StringVar(&opts.arrangement, "arrangement", "", "initial arrangement")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 64, "number of values")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed shared by every run (0 picks one)")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 1_000_000, "give up on a run after this many ticks")
	cmd.Flags().IntVar(&opts.parallel, "parallel", runtime.NumCPU(), "maximum concurrent runs")
	cmd.Flags().StringVar(&opts.outputFile, "output-file", "", "save the report to a file instead of stdout")

	return cmd
}

func runBench(cmd *cobra.Command, opts *benchOptions) error {
	cfg, err := GetGlobalConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if opts.size < 1 {
		return fmt.Errorf("size must be at least 1")
	}

	base := cfg.Run
	if cmd.Flags().Changed("arrangement") {
		base.Arrangement = opts.arrangement
	}
	base.Countdown = 0
	base.Seed = opts.seed
	if base.Seed == 0 {
		base.Seed = uint64(time.Now().UnixNano())
	}

	runs, err := benchRunConfigs(cfg, base, opts.algorithms)
	if err != nil {
		return err
	}

	initial, err := driver.Prepare(runs[0], opts.size, headlessHeight)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	log := newLogger("bench")
	reports := make([]*driver.Report, len(runs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, opts.parallel))
	for i, rc := range runs {
		g.Go(func() error {
			r, err := benchOne(ctx, rc, slices.Clone(initial), opts.maxTicks, log)
			if err != nil {
				return err
			}
			reports[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	log.InfoWithFields("bench complete", []logger.Field{logger.Count(len(reports)), logger.F("seed", base.Seed)})

	if getOutputFormat(cfg) == "text" && opts.outputFile == "" {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), formatter.BenchTable(reports))
		return err
	}
	return writeReports(cmd, cfg, reports, opts.outputFile)
}

// benchRunConfigs builds one run configuration per requested algorithm
func benchRunConfigs(cfg *config.Config, base config.RunConfig, algorithms []string) ([]driver.RunConfig, error) {
	if len(algorithms) == 0 {
		return nil, fmt.Errorf("no algorithms to compare")
	}
	runs := make([]driver.RunConfig, 0, len(algorithms))
	for _, name := range algorithms {
		c := *cfg
		c.Run = base
		c.Run.Algorithm = name
		rc, err := c.ToRunConfig()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		runs = append(runs, rc)
	}
	return runs, nil
}

// benchOne drives a single session as fast as possible. Tick limits and
// invariant failures end up in the report rather than failing the bench.
func benchOne(ctx context.Context, rc driver.RunConfig, values []int, maxTicks int, log *logger.Logger) (*driver.Report, error) {
	s, err := driver.NewSession(rc, values, driver.Collaborators{}, log)
	if err != nil {
		return nil, err
	}
	runErr := driver.Run(ctx, s, driver.RunOptions{MaxTicks: maxTicks, NoDelay: true})
	if runErr != nil && !errors.Is(runErr, driver.ErrTickLimit) && s.Phase() != driver.PhaseFailed {
		return nil, runErr
	}

	r := s.Report()
	if runErr != nil && r.Error == "" {
		r.Error = runErr.Error()
	}
	return r, nil
}
