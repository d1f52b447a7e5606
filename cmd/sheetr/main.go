package main

import (
	"fmt"
	"os"
	"time"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/tj/go-naturaldate"

	"github.com/sheetr/sheetr/internal/config"
	"github.com/sheetr/sheetr/internal/export"
	"github.com/sheetr/sheetr/internal/render"
	"github.com/sheetr/sheetr/internal/timesheet"
)

var debug bool

var rootCmd = &cobra.Command{
	Use:   "sheetr",
	Short: "Generate a day-by-day timesheet from configured project hours",
	Long: "sheetr distributes configured per-project hours across tasks, applies the\n" +
		"fixed daily schedule and PTO deduction, and emits a day-by-day timesheet\n" +
		"for the configured number of weeks.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if debug {
			log.SetLevel(log.DebugLevel)
		} else {
			log.SetLevel(log.ErrorLevel)
		}
	},
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the timesheet from the config file",
	RunE:  runGenerate,
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Regenerate the config file if missing and open it in your editor",
	RunE:  runConfig,
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the config file",
	RunE:  runSchema,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false,
		"enable verbose diagnostic reporting of intermediate allocation values")

	generateCmd.Flags().String("start", "", `first day of the span, natural language allowed (e.g. "next monday")`)
	generateCmd.Flags().StringP("output", "o", "", "write the rendered timesheet to a file instead of stdout")
	generateCmd.Flags().String("ical", "", "also export the span as an iCalendar file")
	generateCmd.Flags().String("db", "", "also export the span into a SQLite database file")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(schemaCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadPlan runs the two-phase pipeline: regenerate the config artifact
// when missing, then load and validate it.
func loadPlan() (*timesheet.Plan, error) {
	if err := config.EnsureConfigDir(); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}
	path, err := config.ConfigPath()
	if err != nil {
		return nil, err
	}
	if err := config.WriteDefault(path); err != nil {
		return nil, fmt.Errorf("regenerating config: %w", err)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}
	return cfg.Plan()
}

func resolveStart(expr string) (time.Time, error) {
	if expr == "" {
		return nextMonday(time.Now()), nil
	}
	t, err := naturaldate.Parse(expr, time.Now(), naturaldate.WithDirection(naturaldate.Future))
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing start date %q: %w", expr, err)
	}
	return t, nil
}

func nextMonday(now time.Time) time.Time {
	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for day.Weekday() != time.Monday {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

func runGenerate(cmd *cobra.Command, args []string) error {
	plan, err := loadPlan()
	if err != nil {
		return err
	}

	startExpr, _ := cmd.Flags().GetString("start")
	start, err := resolveStart(startExpr)
	if err != nil {
		return err
	}

	gen := timesheet.NewGenerator(plan)
	records, warnings, err := gen.Generate(start)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		log.WithField("project", w.Project).Warn(w.String())
	}

	summary, err := render.Summary(plan, gen.Engine())
	if err != nil {
		return err
	}
	out := render.Timesheet(records) + "\n" + summary

	if path, _ := cmd.Flags().GetString("output"); path != "" {
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("writing timesheet: %w", err)
		}
	} else {
		fmt.Print(out)
	}

	if path, _ := cmd.Flags().GetString("ical"); path != "" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating calendar file: %w", err)
		}
		defer f.Close()
		if err := export.WriteICal(f, records, plan.Workday); err != nil {
			return err
		}
	}

	if path, _ := cmd.Flags().GetString("db"); path != "" {
		db, err := export.OpenSQLite(path)
		if err != nil {
			return err
		}
		defer db.Close()
		if err := db.WriteDays(records); err != nil {
			return err
		}
	}

	return nil
}

func runConfig(cmd *cobra.Command, args []string) error {
	if err := config.EnsureConfigDir(); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	configPath, err := config.ConfigPath()
	if err != nil {
		return err
	}
	if err := config.WriteDefault(configPath); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}

	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}

	fmt.Printf("Opening %s with %s...\n", configPath, editor)

	proc := os.ProcAttr{
		Files: []*os.File{os.Stdin, os.Stdout, os.Stderr},
	}
	process, err := os.StartProcess(editor, []string{editor, configPath}, &proc)
	if err != nil {
		// If editor fails, just print the path
		fmt.Printf("Could not open editor. Config file is at: %s\n", configPath)
		return nil
	}
	_, err = process.Wait()
	return err
}

func runSchema(cmd *cobra.Command, args []string) error {
	data, err := config.Schema()
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
