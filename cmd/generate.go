package cmd

import (
	"fmt"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate every possible schedule from your active courses",
	Long: `Combine one section of each active course into every possible weekly
schedule, drop the combinations with time conflicts, and print the results.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		allowConflicts := cfg.AllowConflicts
		if cmd.Flags().Changed("allow-conflicts") {
			allowConflicts, _ = cmd.Flags().GetBool("allow-conflicts")
		}
		page, _ := cmd.Flags().GetInt("page")

		var schedules []schedule.Schedule
		_ = spinner.New().
			Title("Combining sections into possible schedules...").
			Action(func() {
				schedules = schedule.Generate(cfg.Courses, allowConflicts)
			}).
			Run()

		if len(schedules) == 0 {
			return fmt.Errorf("every section combination has a time conflict; try --allow-conflicts")
		}

		if page > 0 {
			if page > len(schedules) {
				return fmt.Errorf("schedule %d does not exist; only %d schedule(s) were generated", page, len(schedules))
			}
			printSchedule(cfg, schedules[page-1], page, len(schedules))
			return nil
		}

		for i, s := range schedules {
			printSchedule(cfg, s, i+1, len(schedules))
		}
		return nil
	},
}

func printSchedule(cfg *config.AppConfig, s schedule.Schedule, page, total int) {
	fmt.Printf("--- Schedule %d of %d ---\n", page, total)
	fmt.Println(s.Format())
	if credits, ok := schedule.TotalCredits(cfg.Courses); ok {
		fmt.Printf("Total credits: %g\n", credits)
	}
	fmt.Println()
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().BoolP("allow-conflicts", "c", false, "Keep schedules with time conflicts")
	generateCmd.Flags().IntP("page", "p", 0, "Print only the Nth schedule (1-based)")
}
