package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/yildizm/SortVis/internal/config"
	"github.com/yildizm/SortVis/internal/driver"
	"gopkg.in/yaml.v3"
)

const envPrefix = "SORTVIS_"

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Manage run defaults stored in YAML files",
		Long: `Manage the YAML files that hold SortVis run defaults.

A config file sets the algorithm, arrangement, tick and sweep intervals,
bar width, countdown, sound and output format used when a run starts.
Flags passed to "sortvis run" or "sortvis bench" override it.`,
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a sample config file",
		Long: `Write a sample SortVis config file.

The full sample documents every run, output, sound and logging setting.
--minimal writes only the algorithm, arrangement and tick interval.`,
		Example: `  # Sample config in the current directory
  sortvis config init

  # Only the run basics
  sortvis config init --minimal

  # User-wide defaults
  sortvis config init --output ~/.config/sortvis/config.yaml`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".sortvis.yaml"
			}
			if !force && fileExists(outputPath) {
				return fmt.Errorf("config file already exists at %s (use --force to overwrite)", outputPath)
			}

			if dir := filepath.Dir(outputPath); dir != "." && dir != "/" {
				if err := os.MkdirAll(dir, 0o750); err != nil {
					return fmt.Errorf("failed to create directory %s: %w", dir, err)
				}
			}

			content := config.SampleConfig()
			if minimal {
				content = config.MinimalSampleConfig()
			}
			if err := os.WriteFile(outputPath, []byte(content), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Configuration file created at: %s\n", GetEmoji("success"), outputPath)
			fmt.Fprintf(out, "Try it with: sortvis --config %s run\n", outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "where to write the file (default: .sortvis.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "write only the run basics")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "replace an existing file")

	return initCmd
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged configuration",
		Long: `Print the configuration a run would start from: built-in defaults,
then config files, then SORTVIS_* environment variables.`,
		Example: `  sortvis config show
  sortvis config show --format json
  SORTVIS_RUN_ALGORITHM=selection sortvis config show`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.NewLoader().LoadConfig(cfgFile)
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode config as %s: %w", format, err)
			}
			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml, json)")

	return showCmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check that the configuration can start a run",
		Long: `Load the merged configuration and check it the way "sortvis run" does.

A file that parses can still be unusable: merge sort is a known algorithm
but is not implemented, and tick intervals under 1ms are rejected.`,
		Example: `  sortvis config validate
  sortvis --config ./slow.yaml config validate`,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			loader := config.NewLoader()
			cfg, err := loader.LoadConfig(cfgFile)
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n   %v\n", GetEmoji("error"), err)
				return err
			}
			runCfg, err := cfg.ToRunConfig()
			if err != nil {
				fmt.Fprintf(out, "%s Configuration loads but cannot start a run:\n   %v\n", GetEmoji("warning"), err)
				return err
			}

			fmt.Fprintf(out, "%s Configuration is valid\n", GetEmoji("success"))
			printRunSummary(out, cfg, runCfg)
			fmt.Fprintf(out, "   Sources: %d file(s)\n", len(loader.Sources()))
			return nil
		},
	}
}

func printRunSummary(out io.Writer, cfg *config.Config, rc driver.RunConfig) {
	size := "fit terminal"
	if cfg.Run.Size > 0 {
		size = fmt.Sprint(cfg.Run.Size)
	}
	sweep := rc.SweepInterval
	if sweep == 0 {
		sweep = rc.TickInterval
	}
	fmt.Fprintf(out, "%s Next run:\n", GetEmoji("algorithm"))
	fmt.Fprintf(out, "   Algorithm: %s on %s input, %s bars\n", rc.Algorithm.DisplayName(), cfg.Run.Arrangement, size)
	fmt.Fprintf(out, "   Tick: %v, sweep: %v, countdown: %ds\n", rc.TickInterval, sweep, rc.Countdown)
	fmt.Fprintf(out, "   Report format: %s\n", cfg.Output.DefaultFormat)
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List the config files SortVis reads",
		Long: `List the config file locations. Every file that exists is merged, and a
file earlier in the list overrides the ones after it. SORTVIS_* environment
variables override all files.`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()

			tbl := table.NewWriter()
			tbl.SetStyle(table.StyleLight)
			tbl.AppendHeader(table.Row{"#", "Path", "Found"})
			for i, path := range config.GetConfigPaths() {
				tbl.AppendRow(table.Row{i + 1, path, GetSupportEmoji(fileExists(path))})
			}
			fmt.Fprintln(out, tbl.Render())

			if cfgFile != "" {
				fmt.Fprintf(out, "--config overrides the search: %s\n", cfgFile)
			} else if found, ok := config.FindConfigFile(); ok {
				fmt.Fprintf(out, "Watched while running: %s\n", found)
			} else {
				fmt.Fprintln(out, "No config file found, runs use built-in defaults")
			}

			set := envOverrides()
			if len(set) == 0 {
				fmt.Fprintf(out, "%s No %s* variables set\n", GetEmoji("info"), envPrefix)
				return
			}
			fmt.Fprintf(out, "%s Environment overrides:\n", GetEmoji("info"))
			for _, kv := range set {
				fmt.Fprintf(out, "   %s\n", kv)
			}
		},
	}
}

// envOverrides returns the SORTVIS_ variables in the environment, sorted
func envOverrides() []string {
	var set []string
	for _, kv := range os.Environ() {
		if strings.HasPrefix(kv, envPrefix) {
			set = append(set, kv)
		}
	}
	sort.Strings(set)
	return set
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
