package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ToineBo/brackets"
	"github.com/ToineBo/brackets/internal/config"
	"github.com/ToineBo/brackets/internal/output"
	"github.com/ToineBo/brackets/internal/prefs"
)

var (
	flagFailOnProblems bool
	flagLanguage       string
)

var checkCmd = &cobra.Command{
	Use:   "check <path>...",
	Short: "Inspect one or more files and report problems",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().BoolVar(&flagFailOnProblems, "fail-on-problems", false, "Exit with code 1 if any problems are found")
	checkCmd.Flags().StringVar(&flagLanguage, "language", "", "Override language detection (e.g. markdown, json, yaml)")
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	ctx, cancel := contextWithInterrupt()
	defer cancel()

	failOn := flagFailOnProblems
	anyProblems := false

	for _, path := range args {
		cfg := loadCheckConfig(cmd, path)
		if cfg.FailOnProblems != nil && !cmd.Flags().Changed("fail-on-problems") {
			failOn = *cfg.FailOnProblems
		}

		report, err := brackets.Check(ctx, path, checkOptions(cfg)...)
		if err != nil {
			return err
		}

		if err := writeOutput(cmd, report); err != nil {
			return err
		}
		if report.HasProblems() || report.Aborted {
			anyProblems = true
		}
	}

	if failOn && anyProblems {
		os.Exit(1)
	}
	return nil
}

// loadCheckConfig reads .inspect.yml next to the target and lets explicit
// flags win over config values.
func loadCheckConfig(cmd *cobra.Command, targetPath string) config.Config {
	cfg, err := config.Load(targetPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "brackets-inspect: warning: %v\n", err)
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	return cfg
}

// checkOptions translates CLI flags and file config into library options.
func checkOptions(cfg config.Config) []brackets.Option {
	opts := []brackets.Option{
		brackets.WithEnabled(cfg.EnabledOrDefault()),
		brackets.WithPrefsPath(resolvePrefsPath(cfg)),
	}
	if flagLanguage != "" {
		opts = append(opts, brackets.WithLanguage(flagLanguage))
	}

	disabled := append([]string{}, flagDisable...)
	for name, ovr := range cfg.Providers {
		if ovr.Disabled {
			disabled = append(disabled, name)
		}
	}
	if len(disabled) > 0 {
		opts = append(opts, brackets.WithDisabledProviders(disabled...))
	}
	return opts
}

func resolvePrefsPath(cfg config.Config) string {
	if flagPrefsPath != "" {
		return flagPrefsPath
	}
	if cfg.PrefsPath != "" {
		return cfg.PrefsPath
	}
	return prefs.DefaultPath()
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

func writeOutput(cmd *cobra.Command, report *brackets.Report) error {
	output.ToolVersion = Version

	var formatter output.Formatter
	switch strings.ToLower(flagFormat) {
	case "json":
		formatter = &output.JSONFormatter{}
	case "sarif":
		formatter = &output.SARIFFormatter{}
	case "markdown", "md":
		formatter = &output.MarkdownFormatter{}
	default:
		formatter = &output.TerminalFormatter{NoColor: flagNoColor, Verbose: flagVerbose}
	}

	w := cmd.OutOrStdout()
	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return fmt.Errorf("creating output file: %w", err)
		}
		defer func() { _ = f.Close() }()
		w = f
	}

	return formatter.Format(w, report)
}
