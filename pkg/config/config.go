package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/hmc-portal2/hmc-scheduler/pkg/schedule"
)

// AppConfig holds all user-defined persistent state: settings plus the
// course list and any saved schedules.
type AppConfig struct {
	CatalogPath    string                       `json:"catalog_path,omitempty"`
	Term           string                       `json:"term,omitempty"`
	AllowConflicts bool                         `json:"allow_conflicts,omitempty"`
	AccentColor    string                       `json:"accent_color,omitempty"`
	Courses        []*schedule.Course           `json:"courses,omitempty"`
	SavedSchedules map[string]schedule.Schedule `json:"saved_schedules,omitempty"`
}

// getConfigPath returns the absolute path to ~/.hmc-scheduler.json
func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".hmc-scheduler.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// FindCourse looks a stored course up by name.
func (c *AppConfig) FindCourse(name string) (*schedule.Course, bool) {
	for _, course := range c.Courses {
		if course.Name == name {
			return course, true
		}
	}
	return nil, false
}

// AddCourse appends a course, replacing any stored course of the same name.
func (c *AppConfig) AddCourse(course *schedule.Course) {
	for i, existing := range c.Courses {
		if existing.Name == course.Name {
			c.Courses[i] = course
			return
		}
	}
	c.Courses = append(c.Courses, course)
}

// RemoveCourse deletes a stored course by name. Returns false if no course
// of that name exists.
func (c *AppConfig) RemoveCourse(name string) bool {
	for i, course := range c.Courses {
		if course.Name == name {
			c.Courses = append(c.Courses[:i], c.Courses[i+1:]...)
			return true
		}
	}
	return false
}

// SaveSchedule stores a generated schedule under a name for later export.
func (c *AppConfig) SaveSchedule(name string, s schedule.Schedule) {
	if c.SavedSchedules == nil {
		c.SavedSchedules = make(map[string]schedule.Schedule)
	}
	c.SavedSchedules[name] = s
}

// DeleteSchedule removes a saved schedule by name. Returns false if no
// schedule of that name exists.
func (c *AppConfig) DeleteSchedule(name string) bool {
	if _, ok := c.SavedSchedules[name]; !ok {
		return false
	}
	delete(c.SavedSchedules, name)
	return true
}
