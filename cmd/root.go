package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "hmc-scheduler",
	Short: "A CLI and TUI for building HMC course schedules",
	Long: `hmc-scheduler is an application for students at Harvey Mudd College
to combine their course sections into every possible conflict-free weekly
schedule and export the result to an .ics file.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
