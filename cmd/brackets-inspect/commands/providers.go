package commands

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ToineBo/brackets"
)

var providersCmd = &cobra.Command{
	Use:   "providers",
	Short: "List registered inspection providers",
	RunE:  runProviders,
}

func init() {
	rootCmd.AddCommand(providersCmd)
}

func runProviders(cmd *cobra.Command, args []string) error {
	opts := []brackets.Option{
		brackets.WithPrefsPath(resolvePrefsPath(loadConfigBestEffort())),
	}
	if len(flagDisable) > 0 {
		opts = append(opts, brackets.WithDisabledProviders(flagDisable...))
	}

	infos, err := brackets.ListProviders(opts...)
	if err != nil {
		return err
	}

	if strings.EqualFold(flagFormat, "json") {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(infos)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "LANGUAGE\tPROVIDER\tENABLED")
	for _, info := range infos {
		fmt.Fprintf(tw, "%s\t%s\t%v\n", info.Language, info.Name, info.Enabled)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d providers registered\n", len(infos))
	return nil
}
