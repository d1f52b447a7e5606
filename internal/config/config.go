package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/pelletier/go-toml/v2"
	"github.com/sheetr/sheetr/internal/timesheet"
	"github.com/shopspring/decimal"
)

// Config mirrors the TOML configuration file. String fields stay in
// their human-editable form here; Plan converts and validates them.
type Config struct {
	Weeks    int       `toml:"weeks" json:"weeks" jsonschema:"minimum=1,description=Number of weeks to generate (5 weekdays each)"`
	PTOHours float64   `toml:"pto_hours" json:"pto_hours" jsonschema:"minimum=0,description=Paid time off in hours deducted equally from every project"`
	Workday  Workday   `toml:"workday" json:"workday"`
	Projects []Project `toml:"projects" json:"projects"`
	Schedule Schedule  `toml:"schedule" json:"schedule"`
}

type Workday struct {
	Start      string `toml:"start" json:"start" jsonschema:"example=9:00 AM,description=Workday start time (H:MM AM/PM)"`
	LunchStart string `toml:"lunch_start" json:"lunch_start" jsonschema:"example=12:00 PM"`
	LunchEnd   string `toml:"lunch_end" json:"lunch_end" jsonschema:"example=1:00 PM"`
	End        string `toml:"end" json:"end" jsonschema:"example=5:00 PM"`
}

type Project struct {
	Name  string  `toml:"name" json:"name"`
	Hours float64 `toml:"hours" json:"hours" jsonschema:"minimum=0,description=Total hours allocated to this project"`
	Tasks []Task  `toml:"tasks" json:"tasks"`
}

type Task struct {
	Name    string  `toml:"name" json:"name"`
	Percent float64 `toml:"percent" json:"percent" jsonschema:"minimum=0,maximum=100,description=Share of the project's hours; must sum to 100 per project"`
}

// Schedule maps each weekday to the project worked that day.
type Schedule struct {
	Monday    string `toml:"monday" json:"monday"`
	Tuesday   string `toml:"tuesday" json:"tuesday"`
	Wednesday string `toml:"wednesday" json:"wednesday"`
	Thursday  string `toml:"thursday" json:"thursday"`
	Friday    string `toml:"friday" json:"friday"`
}

func DefaultConfig() Config {
	return Config{
		Weeks:    2,
		PTOHours: 0,
		Workday: Workday{
			Start:      "9:00 AM",
			LunchStart: "12:00 PM",
			LunchEnd:   "1:00 PM",
			End:        "5:00 PM",
		},
		Projects: []Project{
			{
				Name:  "Alpha",
				Hours: 70,
				Tasks: []Task{
					{Name: "Development", Percent: 80},
					{Name: "Meetings", Percent: 20},
				},
			},
		},
		Schedule: Schedule{
			Monday:    "Alpha",
			Tuesday:   "Alpha",
			Wednesday: "Alpha",
			Thursday:  "Alpha",
			Friday:    "Alpha",
		},
	}
}

func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".config", "sheetr"), nil
}

func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

func EnsureConfigDir() error {
	dir, err := ConfigDir()
	if err != nil {
		return err
	}
	return os.MkdirAll(dir, 0755)
}

// Load reads the config file at path, layering it over the defaults
// and applying environment overrides. A missing file yields the
// defaults so a first run still produces a timesheet.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(&cfg)
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	applyEnvOverrides(&cfg)

	return &cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("SHEETR_WEEKS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Weeks = n
		}
	}
	if v := os.Getenv("SHEETR_PTO_HOURS"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.PTOHours = f
		}
	}
}

// Plan converts the raw file values into the validated domain plan
// the allocation engine consumes.
func (c *Config) Plan() (*timesheet.Plan, error) {
	workday, err := parseWorkday(c.Workday)
	if err != nil {
		return nil, err
	}

	projects := make([]timesheet.Project, 0, len(c.Projects))
	for _, p := range c.Projects {
		tasks := make([]timesheet.Task, 0, len(p.Tasks))
		for _, t := range p.Tasks {
			tasks = append(tasks, timesheet.Task{
				Name:    t.Name,
				Percent: decimal.NewFromFloat(t.Percent),
			})
		}
		projects = append(projects, timesheet.Project{
			Name:  p.Name,
			Hours: decimal.NewFromFloat(p.Hours),
			Tasks: tasks,
		})
	}

	plan := &timesheet.Plan{
		Projects: projects,
		Workday:  workday,
		Weekdays: map[time.Weekday]string{
			time.Monday:    c.Schedule.Monday,
			time.Tuesday:   c.Schedule.Tuesday,
			time.Wednesday: c.Schedule.Wednesday,
			time.Thursday:  c.Schedule.Thursday,
			time.Friday:    c.Schedule.Friday,
		},
		PTOHours: decimal.NewFromFloat(c.PTOHours),
		Weeks:    c.Weeks,
	}

	if err := plan.Validate(); err != nil {
		return nil, err
	}
	return plan, nil
}

func parseWorkday(w Workday) (timesheet.Workday, error) {
	var parsed timesheet.Workday
	for _, f := range []struct {
		field string
		value string
		dst   *timesheet.Clock
	}{
		{"workday.start", w.Start, &parsed.Start},
		{"workday.lunch_start", w.LunchStart, &parsed.LunchStart},
		{"workday.lunch_end", w.LunchEnd, &parsed.LunchEnd},
		{"workday.end", w.End, &parsed.End},
	} {
		clock, err := timesheet.ParseClock(f.value)
		if err != nil {
			return timesheet.Workday{}, &timesheet.ConfigError{Field: f.field, Reason: err.Error()}
		}
		*f.dst = clock
	}
	return parsed, nil
}
