package cmd

import (
	"fmt"
	"sort"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"

	"github.com/spf13/cobra"
)

var schedulesCmd = &cobra.Command{
	Use:   "schedules",
	Short: "Manage your saved schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSchedules()
	},
}

var schedulesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your saved schedules",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listSchedules()
	},
}

func listSchedules() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(cfg.SavedSchedules) == 0 {
		fmt.Println("No saved schedules yet. Save one from the schedule browser or 'hmc-scheduler generate'.")
		return nil
	}

	names := make([]string, 0, len(cfg.SavedSchedules))
	for name := range cfg.SavedSchedules {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s (%d meetings/week)\n", name, len(cfg.SavedSchedules[name]))
	}
	return nil
}

var schedulesShowCmd = &cobra.Command{
	Use:   "show <name>",
	Short: "Print a saved schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		s, ok := cfg.SavedSchedules[args[0]]
		if !ok {
			return fmt.Errorf("no saved schedule named %q", args[0])
		}

		fmt.Println(s.Format())
		return nil
	},
}

var schedulesDeleteCmd = &cobra.Command{
	Use:   "delete <name>",
	Short: "Delete a saved schedule",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !cfg.DeleteSchedule(args[0]) {
			return fmt.Errorf("no saved schedule named %q", args[0])
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Deleted saved schedule: %s\n", args[0])
		return nil
	},
}

func init() {
	rootCmd.AddCommand(schedulesCmd)
	schedulesCmd.AddCommand(schedulesListCmd)
	schedulesCmd.AddCommand(schedulesShowCmd)
	schedulesCmd.AddCommand(schedulesDeleteCmd)
}
