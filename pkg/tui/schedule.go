package tui

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/exporter"
	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunScheduleTUI runs the interactive flow for picking courses, generating
// every conflict-free schedule, and browsing through the results.
func RunScheduleTUI() error {
	fmt.Println(accentStyle.Render("Welcome to the HMC Schedule Generator!"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(cfg.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses on file yet! Add some under Manage Courses first."))
		return nil
	}

	var courseOptions []huh.Option[string]
	for _, c := range cfg.Courses {
		opt := huh.NewOption(c.Name, c.Name)
		if c.Selected {
			opt = opt.Selected(true)
		}
		courseOptions = append(courseOptions, opt)
	}

	var selectedCourses []string
	allowConflicts := cfg.AllowConflicts

	courseForm := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to schedule").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedCourses).
				Filterable(true).
				Height(12),

			huh.NewConfirm().
				Title("Keep schedules with time conflicts?").
				Value(&allowConflicts),
		),
	).WithTheme(GetTheme())

	if err := courseForm.Run(); err != nil {
		return err
	}

	if len(selectedCourses) == 0 {
		fmt.Println(errorStyle.Render("No courses selected!"))
		return nil
	}

	// Persist the selection so CLI runs and the next session agree with it
	selectedMap := make(map[string]bool)
	for _, name := range selectedCourses {
		selectedMap[name] = true
	}
	for _, c := range cfg.Courses {
		c.Selected = selectedMap[c.Name]
	}
	cfg.AllowConflicts = allowConflicts
	if err := config.Save(cfg); err != nil {
		return err
	}

	var schedules []schedule.Schedule

	_ = spinner.New().
		Title("Combining sections into possible schedules...").
		Action(func() {
			schedules = schedule.Generate(cfg.Courses, allowConflicts)
		}).
		Run()

	if len(schedules) == 0 {
		fmt.Println(errorStyle.Render("Every section combination has a time conflict! Try fewer courses or allow conflicts."))
		return nil
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nFound %d possible schedule(s).\n", len(schedules))))

	return browseSchedules(cfg, schedules)
}

// browseSchedules pages through generated schedules one at a time and offers
// per-schedule actions.
func browseSchedules(cfg *config.AppConfig, schedules []schedule.Schedule) error {
	page := 0

	for {
		fmt.Println(accentStyle.Render(fmt.Sprintf("--- Schedule %d of %d ---", page+1, len(schedules))))
		fmt.Println(schedules[page].Format())
		if credits, ok := schedule.TotalCredits(cfg.Courses); ok {
			fmt.Printf("Total credits: %g\n\n", credits)
		}

		var action string
		actionForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("What next?").
					Options(
						huh.NewOption("Next schedule", "next"),
						huh.NewOption("Previous schedule", "prev"),
						huh.NewOption("Save this schedule", "save"),
						huh.NewOption("Export this schedule (.ics)", "export"),
						huh.NewOption("Show upcoming meetings", "agenda"),
						huh.NewOption("Quit", "quit"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := actionForm.Run(); err != nil {
			return err
		}

		switch action {
		case "next":
			page = (page + 1) % len(schedules)
		case "prev":
			page = (page - 1 + len(schedules)) % len(schedules)
		case "save":
			if err := saveScheduleTUI(cfg, schedules[page]); err != nil {
				return err
			}
		case "export":
			if err := exportScheduleTUI(schedules[page]); err != nil {
				return err
			}
		case "agenda":
			printAgenda(schedules[page])
		case "quit":
			return nil
		}
	}
}

func saveScheduleTUI(cfg *config.AppConfig, s schedule.Schedule) error {
	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name for this schedule").
				Placeholder("e.g. spring draft").
				Value(&name).
				Validate(func(str string) error {
					if str == "" {
						return fmt.Errorf("name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.SaveSchedule(name, s)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Saved schedule as '%s'.\n", name)))
	return nil
}

func exportScheduleTUI(s schedule.Schedule) error {
	var outputFile string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Output file name").
				Value(&outputFile).
				Validate(func(str string) error {
					if str == "" {
						return fmt.Errorf("file name cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	// Defaults
	outputFile = "schedule.ics"

	if err := form.Run(); err != nil {
		return err
	}

	if !strings.HasSuffix(outputFile, ".ics") {
		outputFile += ".ics"
	}

	file, err := os.Create(outputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	if err := exporter.GenerateICS(s, file); err != nil {
		return fmt.Errorf("failed to generate ICS: %w", err)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\nSuccess! Exported schedule to %s\n", outputFile)))
	return nil
}

// printAgenda shows the next two weeks of concrete meetings for a schedule.
func printAgenda(s schedule.Schedule) {
	from := time.Now()
	to := from.AddDate(0, 0, 14)

	occurrences, err := exporter.ExpandAgenda(s, from, to)
	if err != nil {
		fmt.Println(errorStyle.Render(fmt.Sprintf("Could not expand agenda: %v", err)))
		return
	}
	if len(occurrences) == 0 {
		fmt.Println(errorStyle.Render("No meetings in the next two weeks. The term may be over (or not started)."))
		return
	}

	fmt.Println(accentStyle.Render("\nUpcoming meetings:"))
	for _, occ := range occurrences {
		fmt.Printf("  %s  %s - %s  %s (%s)\n",
			occ.Start.Format("Mon Jan 2"),
			occ.Start.Format("3:04pm"), occ.End.Format("3:04pm"),
			occ.CourseName, occ.Location)
	}
	fmt.Println()
}
