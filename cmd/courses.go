package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/hmc-portal2/hmc-scheduler/pkg/catalog"
	"github.com/hmc-portal2/hmc-scheduler/pkg/config"
	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"

	"github.com/spf13/cobra"
)

var coursesCmd = &cobra.Command{
	Use:   "courses",
	Short: "Manage your course list",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCourses()
	},
}

var coursesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List your courses",
	RunE: func(cmd *cobra.Command, args []string) error {
		return listCourses()
	},
}

func listCourses() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if len(cfg.Courses) == 0 {
		fmt.Println("No courses on file yet. Add one with 'hmc-scheduler courses add'.")
		return nil
	}

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
	return nil
}

var coursesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a course with free-text meeting times",
	Long: `Add a course by name. Meeting times follow the section-per-line
convention, e.g.

  hmc-scheduler courses add "Intro CS" --times "CSCI060-01 (Dodds): MWF 9:00-9:50AM; Shanahan 1234"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		times, _ := cmd.Flags().GetString("times")
		course := &schedule.Course{Name: args[0], Times: times, Selected: true}

		if variants := schedule.Parse(course); len(variants) == 0 && times != "" {
			fmt.Println("Warning: none of those lines parse as meeting times; the course will be skipped during generation.")
		}

		cfg.AddCourse(course)
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Added course: %s\n", args[0])
		return nil
	},
}

var coursesRemoveCmd = &cobra.Command{
	Use:   "remove <name>",
	Short: "Remove a course by name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if !cfg.RemoveCourse(args[0]) {
			return fmt.Errorf("no course named %q", args[0])
		}
		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("Removed course: %s\n", args[0])
		return nil
	},
}

var coursesSelectCmd = &cobra.Command{
	Use:   "select <name>",
	Short: "Mark a course active for schedule generation",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSelected(args[0], true)
	},
}

var coursesDeselectCmd = &cobra.Command{
	Use:   "deselect <name>",
	Short: "Mark a course inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return setSelected(args[0], false)
	},
}

func setSelected(name string, selected bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	course, ok := cfg.FindCourse(name)
	if !ok {
		return fmt.Errorf("no course named %q", name)
	}
	course.Selected = selected

	if err := config.Save(cfg); err != nil {
		return err
	}

	state := "inactive"
	if selected {
		state = "active"
	}
	fmt.Printf("Course %s is now %s.\n", name, state)
	return nil
}

var coursesImportCmd = &cobra.Command{
	Use:   "import",
	Short: "Import courses from a catalog file or a saved portal page",
	Long: `Import courses from the downloaded catalog JSON (--number, repeatable)
or from a portal schedule page saved as HTML (--portal).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		if portalPath, _ := cmd.Flags().GetString("portal"); portalPath != "" {
			return importPortal(cfg, portalPath)
		}

		numbers, _ := cmd.Flags().GetStringSlice("number")
		if len(numbers) == 0 {
			return fmt.Errorf("nothing to import: pass --number or --portal")
		}

		catalogPath, _ := cmd.Flags().GetString("file")
		if catalogPath == "" {
			catalogPath = cfg.CatalogPath
		}
		if catalogPath == "" {
			return fmt.Errorf("no catalog file configured; pass --file or set one with 'hmc-scheduler config --set-catalog'")
		}

		term, _ := cmd.Flags().GetString("term")
		if term == "" {
			term = cfg.Term
		}

		cat, err := catalog.Load(catalogPath)
		if err != nil {
			return err
		}

		for _, number := range numbers {
			rec, ok := cat.FindCourse(number)
			if !ok {
				return fmt.Errorf("no course numbered %q in the catalog", number)
			}
			course := catalog.BuildCourse(rec, term)
			course.Selected = true
			cfg.AddCourse(course)
			fmt.Printf("Imported %s (%s)\n", course.Name, course.Number)
		}

		return config.Save(cfg)
	},
}

func importPortal(cfg *config.AppConfig, path string) error {
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
		return fmt.Errorf("no class rows found in %s", path)
	}

	for _, course := range courses {
		course.Selected = true
		cfg.AddCourse(course)
		fmt.Printf("Imported %s (%s)\n", course.Name, course.Number)
	}

	return config.Save(cfg)
}

func init() {
	rootCmd.AddCommand(coursesCmd)
	coursesCmd.AddCommand(coursesListCmd)
	coursesCmd.AddCommand(coursesAddCmd)
	coursesCmd.AddCommand(coursesRemoveCmd)
	coursesCmd.AddCommand(coursesSelectCmd)
	coursesCmd.AddCommand(coursesDeselectCmd)
	coursesCmd.AddCommand(coursesImportCmd)

	coursesAddCmd.Flags().StringP("times", "t", "", "Meeting times, one section per line")
	coursesImportCmd.Flags().StringSliceP("number", "n", nil, "Catalog number(s) to import (e.g. 'CSCI060 HM')")
	coursesImportCmd.Flags().StringP("file", "f", "", "Catalog JSON file (defaults to the configured path)")
	coursesImportCmd.Flags().String("term", "", "Term designator for section dates (defaults to the configured term)")
	coursesImportCmd.Flags().String("portal", "", "Import from a portal schedule page saved as HTML")
}
