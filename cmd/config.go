package cmd

import (
	"fmt"
	"os"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage hmc-scheduler configuration",
	Long:  "View or edit your local configuration settings (catalog file, term, conflict handling, theme).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		changed := false

		if setCatalog, _ := cmd.Flags().GetString("set-catalog"); setCatalog != "" {
			if _, err := os.Stat(setCatalog); err != nil {
				return fmt.Errorf("cannot read catalog file: %w", err)
			}
			cfg.CatalogPath = setCatalog
			fmt.Printf("✅ Catalog file set to: %s\n", setCatalog)
			changed = true
		}

		if setTerm, _ := cmd.Flags().GetString("set-term"); setTerm != "" {
			cfg.Term = setTerm
			fmt.Printf("✅ Term set to: %s\n", setTerm)
			changed = true
		}

		if cmd.Flags().Changed("allow-conflicts") {
			allow, _ := cmd.Flags().GetBool("allow-conflicts")
			cfg.AllowConflicts = allow
			fmt.Printf("✅ Allow conflicts is now: %t\n", allow)
			changed = true
		}

		if changed {
			return config.Save(cfg)
		}

		// If no flags are given, launch the interactive TUI flow
		return tui.RunConfigTUI()
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().String("set-catalog", "", "Set the path to your downloaded catalog JSON")
	configCmd.Flags().String("set-term", "", "Set the term designator used for section dates")
	configCmd.Flags().Bool("allow-conflicts", false, "Keep schedules with time conflicts by default")
}
