package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"github.com/yildizm/SortVis/internal/config"
	"github.com/yildizm/SortVis/internal/driver"
	"github.com/yildizm/SortVis/internal/formatter"
	"github.com/yildizm/SortVis/internal/logger"
	"github.com/yildizm/SortVis/internal/ui"
)

const (
	// headlessSize and headlessHeight shape the array when no terminal
	// decides it
	headlessSize   = 50
	headlessHeight = 100
)

type runOptions struct {
	algorithm     string
	arrangement   string
	interval      time.Duration
	sweepInterval time.Duration
	barWidth      int
	size          int
	seed          uint64
	countdown     int

	headless   bool
	noDelay    bool
	maxTicks   int
	noSound    bool
	noWatch    bool
	logFile    string
	outputFile string
}

func newRunCommand() *cobra.Command {
	opts := &runOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Visualize a sorting algorithm",
		Long: `Run one sorting algorithm on a freshly arranged array.

By default the run is animated in the terminal. With --headless the run is
driven without a UI and a report is printed when it ends.

Examples:
  sortvis run
  sortvis run --algorithm selection --interval 5ms
  sortvis run --arrangement reversed --bar-width 2
  sortvis run --headless --no-delay --size 200 -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRun(cmd, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.algorithm, "algorithm", "a", "", "algorithm (bubble, selection, bogo)")
	cmd.Flags().StringVar(&opts.arrangement, "arrangement", "", "initial arrangement (random, reversed, nearly-sorted, few-unique, sorted)")
	cmd.Flags().DurationVarP(&opts.interval, "interval", "i", 0, "delay between ticks")
	cmd.Flags().DurationVar(&opts.sweepInterval, "sweep-interval", 0, "delay between completion sweep ticks")
	cmd.Flags().IntVar(&opts.barWidth, "bar-width", 0, "terminal cells per bar")
	cmd.Flags().IntVarP(&opts.size, "size", "n", 0, "number of bars (0 fits the terminal)")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "random seed (0 picks one)")
	cmd.Flags().IntVar(&opts.countdown, "countdown", 0, "countdown seconds before the run starts")
	cmd.Flags().BoolVar(&opts.headless, "headless", false, "run without the terminal UI and print a report")
	cmd.Flags().BoolVar(&opts.noDelay, "no-delay", false, "headless: skip the delay between ticks")
	cmd.Flags().IntVar(&opts.maxTicks, "max-ticks", 0, "headless: give up after this many ticks (0 is unbounded)")
	cmd.Flags().BoolVar(&opts.noSound, "no-sound", false, "disable tones")
	cmd.Flags().BoolVar(&opts.noWatch, "no-watch", false, "do not reload the config file when it changes")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "write logs here while the terminal UI runs")
	cmd.Flags().StringVar(&opts.outputFile, "output-file", "", "headless: save the report to a file instead of stdout")

	return cmd
}

// applyRunFlags copies explicitly set flags over the loaded configuration
func applyRunFlags(cmd *cobra.Command, opts *runOptions, base *config.Config) *config.Config {
	cfg := *base
	flags := cmd.Flags()

	if flags.Changed("algorithm") {
		cfg.Run.Algorithm = opts.algorithm
	}
	if flags.Changed("arrangement") {
		cfg.Run.Arrangement = opts.arrangement
	}
	if flags.Changed("interval") {
		cfg.Run.TickInterval = opts.interval
	}
	if flags.Changed("sweep-interval") {
		cfg.Run.SweepInterval = opts.sweepInterval
	}
	if flags.Changed("bar-width") {
		cfg.Run.BarWidth = opts.barWidth
	}
	if flags.Changed("size") {
		cfg.Run.Size = opts.size
	}
	if flags.Changed("seed") {
		cfg.Run.Seed = opts.seed
	}
	if flags.Changed("countdown") {
		cfg.Run.Countdown = opts.countdown
	} else if opts.headless {
		// nobody watches a headless countdown
		cfg.Run.Countdown = 0
	}
	if opts.noSound {
		cfg.Sound.Enabled = false
	}
	if flags.Changed("log-file") {
		cfg.Logging.File = opts.logFile
	}
	return &cfg
}

func runRun(cmd *cobra.Command, opts *runOptions) error {
	base, err := GetGlobalConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	cfg := applyRunFlags(cmd, opts, base)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid run settings: %w", err)
	}

	if opts.headless {
		return runHeadless(cmd, opts, cfg)
	}
	return runTUI(cfg, opts)
}

func runHeadless(cmd *cobra.Command, opts *runOptions, cfg *config.Config) error {
	log := newLogger("run")

	rc, err := cfg.ToRunConfig()
	if err != nil {
		return err
	}
	size := cfg.Run.Size
	if size <= 0 {
		size = headlessSize
	}
	values, err := driver.Prepare(rc, size, headlessHeight)
	if err != nil {
		return err
	}
	session, err := driver.NewSession(rc, values, driver.Collaborators{Sound: cfg.ToneEmitter()}, log)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	runErr := driver.Run(ctx, session, driver.RunOptions{MaxTicks: opts.maxTicks, NoDelay: opts.noDelay})
	report := session.Report()
	if runErr != nil && report.Error == "" {
		report.Error = runErr.Error()
	}

	if err := writeReports(cmd, cfg, []*driver.Report{report}, opts.outputFile); err != nil {
		return err
	}
	if runErr != nil && !errors.Is(runErr, context.Canceled) {
		return runErr
	}
	return nil
}

// writeReports formats reports and sends them to stdout or outputFile
func writeReports(cmd *cobra.Command, cfg *config.Config, reports []*driver.Report, outputFile string) error {
	f, err := formatter.New(getOutputFormat(cfg), useColor(cfg))
	if err != nil {
		return err
	}
	out, err := f.Format(reports)
	if err != nil {
		return fmt.Errorf("failed to format report: %w", err)
	}

	if outputFile == "" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	if err := os.WriteFile(filepath.Clean(outputFile), out, 0o600); err != nil {
		return fmt.Errorf("failed to write output to file: %w", err)
	}
	if isVerbose() {
		fmt.Fprintf(cmd.ErrOrStderr(), "Output saved to: %s\n", outputFile)
	}
	return nil
}

func runTUI(cfg *config.Config, opts *runOptions) error {
	if _, err := cfg.ToRunConfig(); err != nil {
		return err
	}

	// the terminal belongs to the UI; logs go to a file or nowhere
	restore, err := redirectLogs(cfg.Logging.File)
	if err != nil {
		return err
	}
	defer restore()

	if !useColor(cfg) {
		_ = os.Setenv("NO_COLOR", "1")
	}

	log := newLogger("tui")
	var watcher *config.Watcher
	if !opts.noWatch {
		watcher = startWatcher(log)
		if watcher != nil {
			defer func() { _ = watcher.Close() }()
		}
	}

	return ui.Run(ui.Options{
		Config:  cfg,
		Watcher: watcher,
		Sound:   cfg.ToneEmitter(),
		Logger:  log,
	})
}

// redirectLogs points the logger at path, or discards logs when path is
// empty. The returned func restores stderr.
func redirectLogs(path string) (func(), error) {
	if path == "" {
		logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(os.Stderr) }, nil
	}

	// #nosec G304 - the log file is chosen by the user
	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	logger.SetOutput(f)
	return func() {
		logger.SetOutput(os.Stderr)
		_ = f.Close()
	}, nil
}

// startWatcher watches the config file in use, if there is one
func startWatcher(log *logger.Logger) *config.Watcher {
	path := cfgFile
	if path == "" {
		found, ok := config.FindConfigFile()
		if !ok {
			return nil
		}
		path = found
	}
	w, err := config.NewWatcher(path)
	if err != nil {
		log.Warn("config reload disabled: %v", err)
		return nil
	}
	log.Debug("watching %s", w.Path())
	return w
}
