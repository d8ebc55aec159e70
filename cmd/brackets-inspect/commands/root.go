package commands

import (
	"github.com/spf13/cobra"
)

var (
	flagFormat    string
	flagOutput    string
	flagNoColor   bool
	flagVerbose   bool
	flagPrefsPath string
	flagDisable   []string
)

var rootCmd = &cobra.Command{
	Use:   "brackets-inspect",
	Short: "Run code inspection providers against a file",
	Long:  `brackets-inspect coordinates pluggable per-language inspection providers: it selects the providers matching a file's language, runs them, and renders the merged problem report.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "terminal", "Output format (terminal, json, sarif, markdown)")
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", "", "Output file path (default: stdout)")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Show full messages and end positions")
	rootCmd.PersistentFlags().StringVar(&flagPrefsPath, "prefs", "", "Path to preferences file (default: ~/.brackets-inspect/prefs.json)")
	rootCmd.PersistentFlags().StringSliceVar(&flagDisable, "disable", nil, "Provider names to disable for this run (comma-separated, repeatable)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
