package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/hmc-portal2/hmc-scheduler/pkg/catalog"
	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
)

// RunCoursesTUI launches the interactive experience for managing the course list
func RunCoursesTUI() error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Manage Courses").
					Options(
						huh.NewOption("Add Course Manually", "add"),
						huh.NewOption("Import from Course Catalog", "catalog"),
						huh.NewOption("Import a Saved Portal Page", "portal"),
						huh.NewOption("Choose Active Courses", "select"),
						huh.NewOption("Remove a Course", "remove"),
						huh.NewOption("View Course List", "view"),
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

		switch action {
		case "add":
			err = runAddCourseTUI(cfg)
		case "catalog":
			err = runCatalogImportTUI(cfg)
		case "portal":
			err = runPortalImportTUI(cfg)
		case "select":
			err = runSelectCoursesTUI(cfg)
		case "remove":
			err = runRemoveCourseTUI(cfg)
		case "view":
			printCourseList(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printCourseList(cfg *config.AppConfig) {
	if len(cfg.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses on file yet."))
		return
	}

	fmt.Println(accentStyle.Render("\n--- Course List ---"))
	for _, c := range cfg.Courses {
		marker := " "
		if c.Selected {
			marker = "*"
		}
		fmt.Printf("[%s] %s", marker, c.Name)
		if c.Number != "" {
			fmt.Printf(" (%s)", c.Number)
		}
		fmt.Println()
		for _, line := range strings.Split(c.Times, "\n") {
			if line != "" {
				fmt.Printf("      %s\n", line)
			}
		}
	}
	if credits, ok := schedule.TotalCredits(cfg.Courses); ok {
		fmt.Printf("\nTotal credits (active courses): %g\n", credits)
	}
	fmt.Println()
}

func runAddCourseTUI(cfg *config.AppConfig) error {
	var name, times string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Course name").
				Placeholder("e.g. Principles of Computer Science").
				Value(&name).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("course name cannot be empty")
					}
					return nil
				}),

			huh.NewText().
				Title("Meeting times").
				Description("One section per line, e.g.\nCSCI060-01 (Dodds): MWF 9:00-9:50AM; Shanahan 1234").
				Value(&times),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	course := &schedule.Course{Name: name, Times: times, Selected: true}
	if variants := schedule.Parse(course); len(variants) == 0 && times != "" {
		fmt.Println(errorStyle.Render("Warning: none of those lines parse as meeting times. The course will be skipped during generation."))
	}

	cfg.AddCourse(course)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Added course: %s\n", name)))
	return nil
}

func runCatalogImportTUI(cfg *config.AppConfig) error {
	if cfg.CatalogPath == "" {
		fmt.Println(errorStyle.Render("No catalog file configured! Set one under Settings first."))
		return nil
	}

	var cat *catalog.Catalog
	var loadErr error

	_ = spinner.New().
		Title("Reading course catalog...").
		Action(func() {
			cat, loadErr = catalog.Load(cfg.CatalogPath)
		}).
		Run()

	if loadErr != nil {
		return fmt.Errorf("failed to load catalog: %w", loadErr)
	}

	var courseOptions []huh.Option[string]
	for _, rec := range cat.Data {
		label := fmt.Sprintf("%s  %s", rec.CourseNumber, catalog.DisplayTitle(rec.CourseTitle))
		courseOptions = append(courseOptions, huh.NewOption(label, rec.CourseNumber))
	}

	var selectedNumbers []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Select courses to import").
				Description("Space = toggle, Enter = confirm. Start typing to filter.").
				Options(courseOptions...).
				Value(&selectedNumbers).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if len(selectedNumbers) == 0 {
		fmt.Println(errorStyle.Render("No courses selected!"))
		return nil
	}

	for _, number := range selectedNumbers {
		rec, ok := cat.FindCourse(number)
		if !ok {
			continue
		}
		course := catalog.BuildCourse(rec, cfg.Term)
		course.Selected = true
		cfg.AddCourse(course)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Imported %d course(s) from the catalog.\n", len(selectedNumbers))))
	return nil
}

func runPortalImportTUI(cfg *config.AppConfig) error {
	var path string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Path to a saved portal schedule page").
				Placeholder("e.g. ~/Downloads/portal.html").
				Value(&path).
				Validate(func(s string) error {
					if s == "" {
						return fmt.Errorf("path cannot be empty")
					}
					return nil
				}),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("failed to open portal page: %w", err)
	}
	defer file.Close()

	sections, err := catalog.ParsePortalTable(file)
	if err != nil {
		return fmt.Errorf("failed to parse portal page: %w", err)
	}

	courses := catalog.CoursesFromPortal(sections)
	if len(courses) == 0 {
		fmt.Println(errorStyle.Render("No class rows found in that page!"))
		return nil
	}

	for _, course := range courses {
		course.Selected = true
		cfg.AddCourse(course)
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Imported %d course(s) from the portal page.\n", len(courses))))
	return nil
}

func runSelectCoursesTUI(cfg *config.AppConfig) error {
	if len(cfg.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses on file yet."))
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

	var selected []string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[string]().
				Title("Choose your active courses").
				Description("Only active courses enter schedule generation.\nSpace = toggle, Enter = confirm.").
				Options(courseOptions...).
				Value(&selected).
				Filterable(true).
				Height(12),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	selectedMap := make(map[string]bool)
	for _, name := range selected {
		selectedMap[name] = true
	}
	for _, c := range cfg.Courses {
		c.Selected = selectedMap[c.Name]
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ %d course(s) are now active.\n", len(selected))))
	return nil
}

func runRemoveCourseTUI(cfg *config.AppConfig) error {
	if len(cfg.Courses) == 0 {
		fmt.Println(errorStyle.Render("No courses on file yet."))
		return nil
	}

	var courseOptions []huh.Option[string]
	for _, c := range cfg.Courses {
		courseOptions = append(courseOptions, huh.NewOption(c.Name, c.Name))
	}

	var name string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Remove which course?").
				Options(courseOptions...).
				Value(&name),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	if !cfg.RemoveCourse(name) {
		fmt.Println(errorStyle.Render("Course not found!"))
		return nil
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Removed course: %s\n", name)))
	return nil
}
