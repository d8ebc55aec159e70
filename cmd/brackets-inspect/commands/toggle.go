package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ToineBo/brackets/internal/config"
	"github.com/ToineBo/brackets/internal/prefs"
)

var enableCmd = &cobra.Command{
	Use:   "enable <provider>",
	Short: "Enable a provider (persisted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProviderEnabled(cmd, args[0], true)
	},
}

var disableCmd = &cobra.Command{
	Use:   "disable <provider>",
	Short: "Disable a provider (persisted)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setProviderEnabled(cmd, args[0], false)
	},
}

func init() {
	rootCmd.AddCommand(enableCmd)
	rootCmd.AddCommand(disableCmd)
}

// setProviderEnabled flips the persisted enabled flag for a provider name.
// The key is derived from the name alone: if two registered providers share a
// name, this setting applies to both.
func setProviderEnabled(cmd *cobra.Command, name string, enabled bool) error {
	store := prefs.New(resolvePrefsPath(loadConfigBestEffort()))
	if err := store.Load(); err != nil {
		return fmt.Errorf("loading preferences: %w", err)
	}

	store.SetBool(prefs.ProviderKey(name), enabled)
	if err := store.Save(); err != nil {
		return fmt.Errorf("saving preferences: %w", err)
	}

	state := "disabled"
	if enabled {
		state = "enabled"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Provider %s %s\n", name, state)
	return nil
}

// loadConfigBestEffort reads .inspect.yml from the working directory; a
// missing or broken config is not fatal for preference commands.
func loadConfigBestEffort() config.Config {
	cfg, _ := config.Load(".")
	return cfg
}
