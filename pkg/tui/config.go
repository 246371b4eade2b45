package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing configurations
func RunConfigTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Configuration Settings").
					Options(
						huh.NewOption("Set Accent Color (Theme)", "theme"),
						huh.NewOption("Set Catalog File Path", "catalog"),
						huh.NewOption("Set Term", "term"),
						huh.NewOption("Allow Conflicting Schedules", "conflicts"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		if action == "back" {
			return nil
		}

		if action == "theme" {
			err = runSetThemeTUI(cfg)
		} else if action == "catalog" {
			err = runSetCatalogTUI(cfg)
		} else if action == "term" {
			err = runSetTermTUI(cfg)
		} else if action == "conflicts" {
			err = runSetConflictsTUI(cfg)
		} else if action == "view" {
			fmt.Println(accentStyle.Render("\n--- Current Configuration (~/.hmc-scheduler.json) ---"))
			if cfg.CatalogPath == "" {
				fmt.Println("Catalog File: Not set")
			} else {
				fmt.Printf("Catalog File: %s\n", cfg.CatalogPath)
			}
			if cfg.Term == "" {
				fmt.Println("Term: Not set")
			} else {
				fmt.Printf("Term: %s\n", cfg.Term)
			}
			fmt.Printf("Allow Conflicts: %t\n", cfg.AllowConflicts)
			fmt.Printf("Courses: %d\n", len(cfg.Courses))
			fmt.Printf("Saved Schedules: %d\n", len(cfg.SavedSchedules))
			fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
			fmt.Println()
		}

		if err != nil {
			return err
		}
	}
}

func runSetCatalogTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the path to your downloaded catalog JSON").
				Description("This is the courses.json payload saved from the portal API.").
				Placeholder("e.g. ~/Downloads/courses.json").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "" {
		fmt.Println("Operation cancelled: No path provided.")
		return nil
	}

	if _, err := os.Stat(input); err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ Cannot read %s: %v", input, err)))
		return nil
	}

	cfg.CatalogPath = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Successfully saved catalog path: %s\n", input)))
	return nil
}

func runSetTermTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Enter the term designator").
				Description("Sections carry dates per term, e.g. SP2017 or FA2026.").
				Placeholder("e.g. SP2017").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	cfg.Term = input
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Term set to: %s\n", input)))
	return nil
}

func runSetConflictsTUI(cfg *config.AppConfig) error {
	allow := cfg.AllowConflicts

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title("Keep schedules with time conflicts?").
				Description("When enabled, generation skips the conflict filter entirely.").
				Value(&allow),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.AllowConflicts = allow
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Allow conflicts is now: %t\n", allow)))
	return nil
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI(cfg *config.AppConfig) error {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color for hmc-scheduler").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Mudd Gold", colorBlock("208")), "208"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(func(str string) error {
						if len(str) != 7 || !strings.HasPrefix(str, "#") {
							return fmt.Errorf("must be a valid 6-character hex code starting with #")
						}
						return nil
					}),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("\n✅ Beautiful! The theme color is now saved.\n"))
	return nil
}
