package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/exporter"
	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Directly export a schedule to an ICS file",
	Long: `Export one generated schedule (or a previously saved one) to an ICS
file without using the interactive TUI. Each distinct weekly meeting pattern
becomes a recurring calendar event bounded by its section's term dates.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		if !strings.HasSuffix(output, ".ics") {
			output += ".ics"
		}

		s, err := resolveSchedule(cmd, cfg)
		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		if err := exporter.GenerateICS(s, file); err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported schedule to %s\n", output)
		return nil
	},
}

// resolveSchedule picks the schedule to operate on: a saved one when --saved
// is given, the Nth generated one otherwise.
func resolveSchedule(cmd *cobra.Command, cfg *config.AppConfig) (schedule.Schedule, error) {
	if name, _ := cmd.Flags().GetString("saved"); name != "" {
		s, ok := cfg.SavedSchedules[name]
		if !ok {
			return nil, fmt.Errorf("no saved schedule named %q", name)
		}
		return s, nil
	}

	page, _ := cmd.Flags().GetInt("page")
	allowConflicts := cfg.AllowConflicts
	if cmd.Flags().Changed("allow-conflicts") {
		allowConflicts, _ = cmd.Flags().GetBool("allow-conflicts")
	}

	var schedules []schedule.Schedule
	_ = spinner.New().
		Title("Combining sections into possible schedules...").
		Action(func() {
			schedules = schedule.Generate(cfg.Courses, allowConflicts)
		}).
		Run()

	if len(schedules) == 0 {
		return nil, fmt.Errorf("every section combination has a time conflict; try --allow-conflicts")
	}
	if page < 1 || page > len(schedules) {
		return nil, fmt.Errorf("schedule %d does not exist; only %d schedule(s) were generated", page, len(schedules))
	}
	return schedules[page-1], nil
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().IntP("page", "p", 1, "Which generated schedule to export (1-based)")
	exportCmd.Flags().StringP("saved", "s", "", "Export a saved schedule by name instead")
	exportCmd.Flags().BoolP("allow-conflicts", "c", false, "Keep schedules with time conflicts")
	exportCmd.Flags().StringP("output", "o", "schedule.ics", "Output file path")
}
