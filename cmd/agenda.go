package cmd

import (
	"fmt"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/exporter"

	"github.com/spf13/cobra"
)

var agendaCmd = &cobra.Command{
	Use:   "agenda",
	Short: "List the concrete upcoming meetings of a schedule",
	Long: `Expand a schedule's weekly meeting patterns into dated occurrences
within a window, honoring each section's term dates. Defaults to the next
two weeks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		s, err := resolveSchedule(cmd, cfg)
		if err != nil {
			return err
		}

		from := time.Now()
		to := from.AddDate(0, 0, 14)
		if v, _ := cmd.Flags().GetString("from"); v != "" {
			if from, err = time.Parse("2006-01-02", v); err != nil {
				return fmt.Errorf("invalid --from date: %w", err)
			}
			to = from.AddDate(0, 0, 14)
		}
		if v, _ := cmd.Flags().GetString("to"); v != "" {
			if to, err = time.Parse("2006-01-02", v); err != nil {
				return fmt.Errorf("invalid --to date: %w", err)
			}
		}

		occurrences, err := exporter.ExpandAgenda(s, from, to)
		if err != nil {
			return err
		}
		if len(occurrences) == 0 {
			fmt.Println("No meetings in that window.")
			return nil
		}

		for _, occ := range occurrences {
			fmt.Printf("%s  %s - %s  %s (%s)\n",
				occ.Start.Format("Mon Jan 2"),
				occ.Start.Format("3:04pm"), occ.End.Format("3:04pm"),
				occ.CourseName, occ.Location)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(agendaCmd)

	agendaCmd.Flags().IntP("page", "p", 1, "Which generated schedule to expand (1-based)")
	agendaCmd.Flags().StringP("saved", "s", "", "Expand a saved schedule by name instead")
	agendaCmd.Flags().BoolP("allow-conflicts", "c", false, "Keep schedules with time conflicts")
	agendaCmd.Flags().String("from", "", "Window start date (YYYY-MM-DD, default today)")
	agendaCmd.Flags().String("to", "", "Window end date (YYYY-MM-DD, default two weeks out)")
}
