// Command lifedash is a terminal companion for the LifeDash calendar:
// it prints the aggregated agenda, reschedules items, and exports the
// timeline as an iCalendar file.
package main

import (
	"fmt"
	"os"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	calendar "github.com/lifedash/lifedash-go"
	"github.com/lifedash/lifedash-go/internal/config"
)

var (
	baseURL string
	userID  string
	debug   bool

	withContents   bool
	withTasks      bool
	withJobs       bool
	withLeads      bool
	withMilestones bool
)

func main() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		log.Error().Err(err).Msg("command failed")
		os.Exit(1)
	}
}

// NewRootCmd constructs the root CLI command; exposed for unit testing.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "lifedash",
		Short: "LifeDash calendar from the terminal",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
			log.Logger = log.Output(zerolog.ConsoleWriter{
				Out:        os.Stderr,
				TimeFormat: "2006-01-02 15:04:05",
				NoColor:    true,
			})
			if debug {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
				_ = os.Setenv("LIFEDASH_DEBUG", "true")
			} else {
				zerolog.SetGlobalLevel(zerolog.InfoLevel)
			}
		},
	}

	cfg, err := config.Load()
	if err != nil {
		log.Warn().Err(err).Msg("bad environment configuration, using defaults")
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&baseURL, "base-url", cfg.BaseURL, "Base URL of the LifeDash backend")
	pf.StringVar(&userID, "user", cfg.UserID, "Authenticated user id")
	pf.BoolVarP(&debug, "debug", "d", false, "Enable verbose debug output")
	pf.BoolVar(&withContents, "contents", true, "Include the content calendar")
	pf.BoolVar(&withTasks, "tasks", false, "Include task due dates")
	pf.BoolVar(&withJobs, "jobs", false, "Include job interviews")
	pf.BoolVar(&withLeads, "leads", false, "Include lead follow-ups")
	pf.BoolVar(&withMilestones, "milestones", false, "Include skill milestones")

	rootCmd.AddCommand(newAgendaCmd())
	rootCmd.AddCommand(newRescheduleCmd())
	rootCmd.AddCommand(newExportCmd())

	return rootCmd
}

func newEngine() *calendar.Engine {
	return calendar.New(baseURL, userID, calendar.WithFilters(calendar.Filters{
		Contents:   withContents,
		Tasks:      withTasks,
		Jobs:       withJobs,
		Leads:      withLeads,
		Milestones: withMilestones,
	}))
}

func newAgendaCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "agenda [date]",
		Short: "Print the items scheduled for a day (default: today)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			if err := eng.Refetch(cmd.Context()); err != nil {
				return err
			}
			date := time.Now().Format("2006-01-02")
			if len(args) == 1 {
				date = args[0]
			}
			items := eng.ItemsForDate(date)
			if len(items) == 0 {
				fmt.Printf("nothing scheduled on %s\n", date)
				return nil
			}
			for _, it := range items {
				fmt.Printf("%-10s  %-12s  %s\n", it.Date, it.Type, it.Title)
			}
			return nil
		},
	}
}

func newRescheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "reschedule <item-id> <date>",
		Short: "Move a calendar item to a new date",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			itemID, date := args[0], args[1]
			eng := newEngine()
			if err := eng.Refetch(cmd.Context()); err != nil {
				return err
			}
			for _, it := range eng.Items() {
				if it.ID != itemID {
					continue
				}
				if !eng.Reschedule(cmd.Context(), it, date) {
					return fmt.Errorf("reschedule of %s failed", itemID)
				}
				fmt.Printf("moved %q to %s\n", it.Title, date)
				return nil
			}
			return fmt.Errorf("no item with id %s in the current aggregate", itemID)
		},
	}
}

func newExportCmd() *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export the aggregate as an iCalendar file",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng := newEngine()
			if err := eng.Refetch(cmd.Context()); err != nil {
				return err
			}

			cal := ical.NewCalendar()
			cal.SetMethod(ical.MethodPublish)
			cal.SetProductId("-//lifedash//calendar//EN")
			for _, it := range eng.Items() {
				day, err := time.Parse("2006-01-02", it.Date)
				if err != nil {
					continue
				}
				ev := cal.AddEvent(it.ID + "@lifedash")
				ev.SetSummary(it.Title)
				ev.SetAllDayStartAt(day)
				ev.SetAllDayEndAt(day.AddDate(0, 0, 1))
				ev.SetDtStampTime(time.Now())
			}

			if err := os.WriteFile(out, []byte(cal.Serialize()), 0o644); err != nil {
				return err
			}
			log.Info().Str("file", out).Int("items", len(eng.Items())).Msg("exported")
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "lifedash.ics", "Output .ics path")
	return cmd
}
